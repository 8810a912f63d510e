// Package label resolves the {#line}, {@variable} and {%literal} placeholders of a program.
package label

import (
	"strconv"

	"github.com/shibukawa/preic"
)

// Kind is the closed set of label variants
type Kind int

const (
	Line Kind = iota
	Variable
	Literal
)

// Sigils of the label kinds and the frequent marker of variables
const (
	LineSigil      = '#'
	VariableSigil  = '@'
	LiteralSigil   = '%'
	FrequentMarker = '!'
)

// Sigil returns the character that follows the opening brace of the label
func (k Kind) Sigil() byte {
	switch k {
	case Variable:
		return VariableSigil
	case Literal:
		return LiteralSigil
	default:
		return LineSigil
	}
}

func (k Kind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Literal:
		return "literal"
	default:
		return "line"
	}
}

// KindOf returns the label kind of a sigil
func KindOf(sigil byte) (Kind, bool) {
	switch sigil {
	case LineSigil:
		return Line, true
	case VariableSigil:
		return Variable, true
	case LiteralSigil:
		return Literal, true
	default:
		return 0, false
	}
}

// Label is a symbol of the program. Only the fields of its Kind are used.
type Label struct {
	Kind Kind
	Name string

	// Line
	LineNumber int

	// Variable, BasicName includes the type postfix
	BasicName string
	Type      preic.VariableType
	Frequent  bool

	// Literal
	Value string
}

// Key returns the label as written in source without the frequent marker
func (l *Label) Key() string {
	return Key(l.Kind, l.Name)
}

// Key builds the lookup key of a label
func Key(kind Kind, name string) string {
	return "{" + string(kind.Sigil()) + name + "}"
}

// Output returns the text a reference to the label is replaced with
func (l *Label) Output() string {
	switch l.Kind {
	case Variable:
		return l.BasicName
	case Literal:
		return l.Value
	default:
		return strconv.Itoa(l.LineNumber)
	}
}
