package label

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/preic"
	"github.com/shibukawa/preic/varname"
)

func lines(contents ...string) []preic.SourceLine {
	result := make([]preic.SourceLine, len(contents))
	for i, content := range contents {
		result[i] = preic.SourceLine{File: "main.bas", Number: i + 1, Content: content}
	}

	return result
}

func contents(lines []preic.SourceLine) []string {
	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = line.Content
	}

	return result
}

func newResolver(shortNames bool) *Resolver {
	return NewResolver(NewTable(), varname.NewRepository(shortNames))
}

func TestLabelOutput(t *testing.T) {
	tests := []struct {
		name     string
		label    Label
		key      string
		expected string
	}{
		{name: "line", label: Label{Kind: Line, Name: "loop", LineNumber: 42}, key: "{#loop}", expected: "42"},
		{name: "variable", label: Label{Kind: Variable, Name: "name$", BasicName: "na$"}, key: "{@name$}", expected: "na$"},
		{name: "literal", label: Label{Kind: Literal, Name: "screen", Value: "1024"}, key: "{%screen}", expected: "1024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.label.Key())
			assert.Equal(t, tt.expected, tt.label.Output())
		})
	}
}

func TestTable(t *testing.T) {
	table := NewTable()
	assert.NoError(t, table.Define(&Label{Kind: Line, Name: "a", LineNumber: 5}))
	assert.NoError(t, table.Define(&Label{Kind: Variable, Name: "a", BasicName: "a"}))
	assert.NoError(t, table.Define(&Label{Kind: Line, Name: "b", LineNumber: 1}))
	assert.IsError(t, table.Define(&Label{Kind: Line, Name: "a"}), preic.ErrDuplicateLabel)
	assert.IsError(t, table.Define(&Label{Kind: Literal}), preic.ErrBlankLabel)

	table.Retarget(5, 7)

	l, ok := table.Lookup("{#a}")
	assert.True(t, ok)
	assert.Equal(t, 7, l.LineNumber)
	assert.Equal(t, 3, table.Len())

	sorted := table.SortedLabels(Line)
	assert.Equal(t, "b", sorted[0].Name)
	assert.Equal(t, "a", sorted[1].Name)
}

func TestAllocateVariables(t *testing.T) {
	resolver := newResolver(false)

	result, err := resolver.AllocateVariables(lines(
		`{@count}=0`,
		`{@name$}="x":{@!index%}={@count}`,
		`print {@!total}`,
		`{@index%}=1`,
	))
	assert.NoError(t, err)

	assert.Equal(t, []string{
		`in%=0:tp=0`,
		`{@count}=0`,
		`{@name$}="x":{@!index%}={@count}`,
		`print {@!total}`,
		`{@index%}=1`,
	}, contents(result))

	index, ok := resolver.Table().Lookup("{@index%}")
	assert.True(t, ok)
	assert.True(t, index.Frequent)
	assert.Equal(t, preic.IntegerVariable, index.Type)

	count, _ := resolver.Table().Lookup("{@count}")
	assert.Equal(t, "co", count.BasicName)
	assert.False(t, count.Frequent)
	assert.Equal(t, "", result[0].File)
}

func TestAllocateVariablesFrequentFirst(t *testing.T) {
	resolver := newResolver(true)

	result, err := resolver.AllocateVariables(lines(`{@slow}=1`, `{@!fast$}="a"`))
	assert.NoError(t, err)
	assert.Equal(t, `a$=""`, result[0].Content)

	slow, _ := resolver.Table().Lookup("{@slow}")
	assert.Equal(t, "a", slow.BasicName)
}

func TestAllocateVariablesBlankName(t *testing.T) {
	for _, line := range []string{`print {@}`, `print {@ }`, `a$={@$}`, `a%={@!%}`} {
		t.Run(line, func(t *testing.T) {
			_, err := newResolver(false).AllocateVariables(lines(line))
			assert.IsError(t, err, preic.ErrBlankLabel)
		})
	}
}

func TestDefineLiterals(t *testing.T) {
	resolver := newResolver(false)

	result, err := resolver.DefineLiterals(lines(
		`{%screen}=1024`,
		`{%border = 53280}`,
		`{%color}`,
		`poke {%border},0`,
	))
	assert.NoError(t, err)
	assert.Equal(t, []string{`{%color}`, `poke {%border},0`}, contents(result))

	screen, ok := resolver.Table().Lookup("{%screen}")
	assert.True(t, ok)
	assert.Equal(t, "1024", screen.Value)

	border, ok := resolver.Table().Lookup("{%border}")
	assert.True(t, ok)
	assert.Equal(t, "53280", border.Value)
}

func TestDefineLiteralsErrors(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected error
	}{
		{name: "duplicate", lines: []string{"{%a}=1", "{%a}=2"}, expected: preic.ErrDuplicateLabel},
		{name: "blank", lines: []string{"{%}=1"}, expected: preic.ErrBlankLabel},
		{name: "unclosed", lines: []string{"{%a=1"}, expected: preic.ErrUnbalancedLabelBlock},
		{name: "text after compact definition", lines: []string{"{%a=1} print 2"}, expected: preic.ErrTrailingLiteralText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newResolver(false).DefineLiterals(lines(tt.lines...))
			assert.IsError(t, err, tt.expected)
		})
	}
}

func TestDefineLineLabels(t *testing.T) {
	resolver := newResolver(false)

	rest, err := resolver.DefineLineLabels(preic.SourceLine{}, "{#a} {#b}print 1", 10)
	assert.NoError(t, err)
	assert.Equal(t, "print 1", rest)

	rest, err = resolver.DefineLineLabels(preic.SourceLine{}, "{#c}", 11)
	assert.NoError(t, err)
	assert.Equal(t, "", rest)

	resolver.RetargetLineLabels(11, 20)

	b, _ := resolver.Table().Lookup("{#b}")
	c, _ := resolver.Table().Lookup("{#c}")
	assert.Equal(t, 10, b.LineNumber)
	assert.Equal(t, 20, c.LineNumber)

	_, err = resolver.DefineLineLabels(preic.SourceLine{}, "{#a}", 12)
	assert.IsError(t, err, preic.ErrDuplicateLabel)

	_, err = resolver.DefineLineLabels(preic.SourceLine{}, "{# }", 12)
	assert.IsError(t, err, preic.ErrBlankLabel)
}

func TestSubstitute(t *testing.T) {
	resolver := newResolver(false)
	table := resolver.Table()
	assert.NoError(t, table.Define(&Label{Kind: Line, Name: "loop", LineNumber: 3}))
	assert.NoError(t, table.Define(&Label{Kind: Variable, Name: "x", BasicName: "x"}))
	assert.NoError(t, table.Define(&Label{Kind: Literal, Name: "target", Value: "{#loop}"}))
	assert.NoError(t, table.Define(&Label{Kind: Literal, Name: "jump", Value: "goto {%target}"}))

	src := lines(`{@!x}={@x}+1:{%jump}`, `print "{rvon}a{rvof}"`)

	partial, err := resolver.Substitute(src, Variable, Literal)
	assert.NoError(t, err)
	assert.Equal(t, []string{`x=x+1:goto {#loop}`, `print "{rvon}a{rvof}"`}, contents(partial))

	final, err := resolver.Substitute(partial)
	assert.NoError(t, err)
	assert.Equal(t, []string{`x=x+1:goto 3`, `print "{rvon}a{rvof}"`}, contents(final))

	again, err := resolver.Substitute(final)
	assert.NoError(t, err)
	assert.Equal(t, contents(final), contents(again))
}

func TestSubstituteErrors(t *testing.T) {
	resolver := newResolver(false)
	table := resolver.Table()
	assert.NoError(t, table.Define(&Label{Kind: Literal, Name: "a", Value: "{%b}"}))
	assert.NoError(t, table.Define(&Label{Kind: Literal, Name: "b", Value: "{%a}"}))

	tests := []struct {
		name     string
		line     string
		expected error
	}{
		{name: "undefined", line: "goto {#nowhere}", expected: preic.ErrUndefinedLabel},
		{name: "recursive", line: "print {%a}", expected: preic.ErrLabelIterationLimit},
		{name: "nested braces", line: "print {{%a}}", expected: preic.ErrUnbalancedLabelBlock},
		{name: "unclosed", line: "print {%a", expected: preic.ErrUnbalancedLabelBlock},
		{name: "unopened", line: "print a}", expected: preic.ErrUnbalancedLabelBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolver.Substitute(lines(tt.line))
			assert.IsError(t, err, tt.expected)
		})
	}
}

func TestConvertHexadecimal(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{name: "single", line: "poke $$d020,0", expected: "poke 53280,0"},
		{name: "many", line: "data $$ff,$$10,$$0", expected: "data 255,16,0"},
		{name: "upper case", line: "sys $$C000", expected: "sys 49152"},
		{name: "single dollar is kept", line: `a$="$$" + "{$a0}"`, expected: `a$="$$" + "{$a0}"`},
		{name: "nested", line: "print $$$$1f", expected: "print 49"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ConvertHexadecimal(lines(tt.line))
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result[0].Content)
		})
	}

	_, err := ConvertHexadecimal(lines("poke $$d0g0,1"))
	assert.IsError(t, err, preic.ErrInvalidHexNumber)
}
