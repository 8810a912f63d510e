package preic

import (
	"fmt"
	"strings"
)

// SourceLine represents a single line of BASIC source together with its origin.
// File and Number point at the physical line the content came from, they are
// empty for lines synthesized by the pre-processor.
type SourceLine struct {
	File    string
	Number  int
	Content string
}

// WithContent returns a copy of the line with new content and the same origin
func (l SourceLine) WithContent(content string) SourceLine {
	l.Content = content
	return l
}

// Location returns "file:line" of the line, or "<generated>" for synthesized lines
func (l SourceLine) Location() string {
	if l.File == "" {
		return "<generated>"
	}

	return fmt.Sprintf("%s:%d", l.File, l.Number)
}

// String returns the location and the quoted content, used in error messages
func (l SourceLine) String() string {
	return l.Location() + "\n\"" + l.Content + "\""
}

// VariableType represents the value type of a BASIC variable, derived from its name postfix
type VariableType int

const (
	FloatVariable VariableType = iota
	IntegerVariable
	StringVariable
)

// VariableTypeOf splits the type postfix off a variable name
func VariableTypeOf(name string) (base string, varType VariableType) {
	switch {
	case strings.HasSuffix(name, "$"):
		return name[:len(name)-1], StringVariable
	case strings.HasSuffix(name, "%"):
		return name[:len(name)-1], IntegerVariable
	default:
		return name, FloatVariable
	}
}

// Postfix returns the BASIC name postfix of the type
func (t VariableType) Postfix() string {
	switch t {
	case StringVariable:
		return "$"
	case IntegerVariable:
		return "%"
	default:
		return ""
	}
}

// ZeroValue returns the literal a variable of this type is initialised with
func (t VariableType) ZeroValue() string {
	if t == StringVariable {
		return `""`
	}

	return "0"
}

// String returns the string representation of VariableType
func (t VariableType) String() string {
	switch t {
	case StringVariable:
		return "string"
	case IntegerVariable:
		return "integer"
	default:
		return "float"
	}
}
