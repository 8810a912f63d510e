package numbering

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/preic"
	"github.com/shibukawa/preic/label"
	"github.com/shibukawa/preic/varname"
)

func lines(contents ...string) []preic.SourceLine {
	result := make([]preic.SourceLine, len(contents))
	for i, content := range contents {
		result[i] = preic.SourceLine{File: "main.bas", Number: i + 1, Content: content}
	}

	return result
}

func assign(t *testing.T, contents ...string) ([]string, *label.Table, error) {
	t.Helper()

	table := label.NewTable()
	resolver := label.NewResolver(table, varname.NewRepository(false))

	numbered, err := NewAssigner(resolver).Assign(lines(contents...))
	if err != nil {
		return nil, table, err
	}

	result := make([]string, len(numbered))
	for i, line := range numbered {
		result[i] = line.String()
	}

	return result, table, nil
}

func TestAssign(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []string
		labels   map[string]int
	}{
		{
			name:     "sequential",
			lines:    []string{`print "a"`, `print "b"`},
			expected: []string{`0 print "a"`, `1 print "b"`},
		},
		{
			name:     "label on the line",
			lines:    []string{`{#loop} print "hi"`, `goto {#loop}`},
			expected: []string{`0 print "hi"`, `1 goto {#loop}`},
			labels:   map[string]int{"{#loop}": 0},
		},
		{
			name:     "label only line does not take a number",
			lines:    []string{`{#start}`, `{#again}`, `print 1`},
			expected: []string{`0 print 1`},
			labels:   map[string]int{"{#start}": 0, "{#again}": 0},
		},
		{
			name:     "explicit number",
			lines:    []string{`a=1`, `100 b=2`, `c=3`},
			expected: []string{`0 a=1`, `100 b=2`, `101 c=3`},
		},
		{
			name:     "explicit number retargets pending labels",
			lines:    []string{`a=1`, `{#sub}`, `1000 {#other} return`},
			expected: []string{`0 a=1`, `1000 return`},
			labels:   map[string]int{"{#sub}": 1000, "{#other}": 1000},
		},
		{
			name:     "same number as counter",
			lines:    []string{`a=1`, `1 b=2`},
			expected: []string{`0 a=1`, `1 b=2`},
		},
		{
			name:     "highest line number",
			lines:    []string{`63999 end`},
			expected: []string{`63999 end`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, table, err := assign(t, tt.lines...)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, actual)

			for key, number := range tt.labels {
				l, ok := table.Lookup(key)
				assert.True(t, ok, key)
				assert.Equal(t, number, l.LineNumber, key)
			}
		})
	}
}

func TestAssignErrors(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected error
	}{
		{name: "decreasing", lines: []string{"10 a=1", "5 b=2"}, expected: preic.ErrLineNumberDecreasing},
		{name: "explicit number too high", lines: []string{"64000 a=1"}, expected: preic.ErrLineNumberOverflow},
		{name: "huge number", lines: []string{strings.Repeat("9", 30) + " a=1"}, expected: preic.ErrLineNumberOverflow},
		{name: "counter overflow", lines: []string{"63999 a=1", "b=2"}, expected: preic.ErrLineNumberOverflow},
		{name: "duplicate line label", lines: []string{"{#a} x=1", "{#a} y=2"}, expected: preic.ErrDuplicateLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := assign(t, tt.lines...)
			assert.IsError(t, err, tt.expected)
		})
	}
}
