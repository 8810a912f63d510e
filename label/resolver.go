package label

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/shibukawa/preic"
)

// MaxIterations bounds the substitution rounds of a line, nested labels need
// one round per level
const MaxIterations = 100

var (
	tokenPattern    = regexp.MustCompile(`\{([#@%])([^{}]*)\}`)
	variablePattern = regexp.MustCompile(`\{@(!?)([^{}]*)\}`)
)

// NameAllocator hands out short BASIC variable names
type NameAllocator interface {
	Allocate(name string, varType preic.VariableType) (string, error)
}

// Resolver defines and substitutes the labels of a program
type Resolver struct {
	table *Table
	names NameAllocator
}

// NewResolver creates a Resolver storing labels into table
func NewResolver(table *Table, names NameAllocator) *Resolver {
	return &Resolver{table: table, names: names}
}

// Table returns the label table of the resolver
func (r *Resolver) Table() *Table {
	return r.table
}

type variableUse struct {
	name     string
	frequent bool
	line     preic.SourceLine
}

// AllocateVariables creates a variable label for every {@name} in the program.
// Variables marked as frequent ({@!name} anywhere) get their names first and are
// initialised by a line prepended to the program.
func (r *Resolver) AllocateVariables(lines []preic.SourceLine) ([]preic.SourceLine, error) {
	var uses []*variableUse

	index := map[string]*variableUse{}

	for _, line := range lines {
		for _, match := range variablePattern.FindAllStringSubmatch(line.Content, -1) {
			name := match[2]
			if base, _ := preic.VariableTypeOf(strings.TrimSpace(name)); strings.TrimSpace(base) == "" {
				return nil, preic.NewSourceError(preic.ErrBlankLabel, line, "%s", match[0])
			}

			use, ok := index[name]
			if !ok {
				use = &variableUse{name: name, line: line}
				index[name] = use
				uses = append(uses, use)
			}

			use.frequent = use.frequent || match[1] != ""
		}
	}

	slices.SortStableFunc(uses, func(a, b *variableUse) int {
		return cmp.Compare(rank(a.frequent), rank(b.frequent))
	})

	var initialisers []string

	for _, use := range uses {
		base, varType := preic.VariableTypeOf(use.name)

		basicName, err := r.names.Allocate(base, varType)
		if err != nil {
			return nil, preic.NewSourceError(preic.ErrVariableNamesExhausted, use.line, "").WithCause(err)
		}

		l := &Label{
			Kind:      Variable,
			Name:      use.name,
			BasicName: basicName + varType.Postfix(),
			Type:      varType,
			Frequent:  use.frequent,
		}

		if err := r.table.Define(l); err != nil {
			return nil, preic.NewSourceError(preic.ErrDuplicateLabel, use.line, "").WithCause(err)
		}

		if use.frequent {
			initialisers = append(initialisers, l.BasicName+"="+varType.ZeroValue())
		}
	}

	if len(initialisers) == 0 {
		return lines, nil
	}

	result := make([]preic.SourceLine, 0, len(lines)+1)
	result = append(result, preic.SourceLine{Content: strings.Join(initialisers, ":")})

	return append(result, lines...), nil
}

func rank(frequent bool) int {
	if frequent {
		return 0
	}

	return 1
}

// DefineLiterals consumes literal definitions: a line starting with {%name}=value
// or consisting of {%name=value}. A literal label at the start of a line without
// a value is a use.
func (r *Resolver) DefineLiterals(lines []preic.SourceLine) ([]preic.SourceLine, error) {
	result := make([]preic.SourceLine, 0, len(lines))

	for _, line := range lines {
		content := line.Content
		if !strings.HasPrefix(content, "{"+string(LiteralSigil)) {
			result = append(result, line)
			continue
		}

		end := strings.IndexByte(content, '}')
		if end < 0 {
			return nil, preic.NewSourceError(preic.ErrUnbalancedLabelBlock, line, "")
		}

		inner := content[2:end]
		rest := strings.TrimSpace(content[end+1:])

		var name, value string

		switch {
		case strings.Contains(inner, "="):
			if rest != "" {
				return nil, preic.NewSourceError(preic.ErrTrailingLiteralText, line, "%s", rest)
			}

			name, value, _ = strings.Cut(inner, "=")
		case strings.HasPrefix(rest, "="):
			name, value = inner, rest[1:]
		default:
			result = append(result, line)
			continue
		}

		l := &Label{Kind: Literal, Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)}
		if err := r.define(l, line); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// DefineLineLabels defines every line label at the start of the content bound
// to number and returns the rest of the content
func (r *Resolver) DefineLineLabels(line preic.SourceLine, content string, number int) (string, error) {
	prefix := "{" + string(LineSigil)

	for strings.HasPrefix(content, prefix) {
		end := strings.IndexByte(content, '}')
		if end < 0 {
			return "", preic.NewSourceError(preic.ErrUnbalancedLabelBlock, line, "")
		}

		l := &Label{Kind: Line, Name: strings.TrimSpace(content[2:end]), LineNumber: number}
		if err := r.define(l, line); err != nil {
			return "", err
		}

		content = strings.TrimSpace(content[end+1:])
	}

	return content, nil
}

// RetargetLineLabels moves line labels bound to from to the line number to
func (r *Resolver) RetargetLineLabels(from, to int) {
	r.table.Retarget(from, to)
}

func (r *Resolver) define(l *Label, line preic.SourceLine) error {
	if l.Name == "" {
		return preic.NewSourceError(preic.ErrBlankLabel, line, "%s", Key(l.Kind, ""))
	}

	if err := r.table.Define(l); err != nil {
		return preic.NewSourceError(preic.ErrDuplicateLabel, line, "%s", l.Key())
	}

	return nil
}

// Substitute replaces the labels of the given kinds with their output, labels
// of other kinds are kept. Every kind is replaced when kinds is empty.
func (r *Resolver) Substitute(lines []preic.SourceLine, kinds ...Kind) ([]preic.SourceLine, error) {
	if len(kinds) == 0 {
		kinds = []Kind{Line, Variable, Literal}
	}

	result := make([]preic.SourceLine, len(lines))

	for i, line := range lines {
		if err := CheckBlocks(line); err != nil {
			return nil, err
		}

		content, err := r.substituteLine(line, kinds)
		if err != nil {
			return nil, err
		}

		result[i] = line.WithContent(content)
	}

	return result, nil
}

func (r *Resolver) substituteLine(line preic.SourceLine, kinds []Kind) (string, error) {
	content := line.Content

	for iteration := 0; ; iteration++ {
		var failed error

		replaced := false
		content = tokenPattern.ReplaceAllStringFunc(content, func(token string) string {
			kind, _ := KindOf(token[1])
			if failed != nil || !slices.Contains(kinds, kind) {
				return token
			}

			name := token[2 : len(token)-1]
			if kind == Variable {
				name = strings.TrimPrefix(name, string(FrequentMarker))
			}

			l, ok := r.table.Lookup(Key(kind, name))
			if !ok {
				failed = preic.NewSourceError(preic.ErrUndefinedLabel, line, "%s", token)
				return token
			}

			replaced = true

			return l.Output()
		})

		if failed != nil {
			return "", failed
		}

		if !replaced {
			return content, nil
		}

		if iteration >= MaxIterations {
			return "", preic.NewSourceError(preic.ErrLabelIterationLimit, line, "")
		}
	}
}

// CheckBlocks verifies that every { of the line is closed before the next one opens
func CheckBlocks(line preic.SourceLine) error {
	open := false

	for _, c := range line.Content {
		switch c {
		case '{':
			if open {
				return preic.NewSourceError(preic.ErrUnbalancedLabelBlock, line, "")
			}

			open = true
		case '}':
			if !open {
				return preic.NewSourceError(preic.ErrUnbalancedLabelBlock, line, "")
			}

			open = false
		}
	}

	if open {
		return preic.NewSourceError(preic.ErrUnbalancedLabelBlock, line, "")
	}

	return nil
}
