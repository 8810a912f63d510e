package testhelper

import (
	"strings"
	"testing"
)

// TrimIndent turns an indented raw string literal into a source file: the
// leading line break and the trailing indentation line are dropped, the indent
// shared by every non-blank line is removed and the result ends with a line break
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(strings.TrimPrefix(src, "\n"), "\n")
	if last := len(lines) - 1; last >= 0 && strings.TrimSpace(lines[last]) == "" {
		lines = lines[:last]
	}

	indent := ""
	first := true

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		current := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

		switch {
		case first:
			indent = current
			first = false
		case !strings.HasPrefix(current, indent):
			indent = commonPrefix(indent, current)
		}
	}

	var b strings.Builder

	for _, line := range lines {
		b.WriteString(strings.TrimPrefix(line, indent))
		b.WriteString("\n")
	}

	return b.String()
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return a[:i]
		}
	}

	return a[:n]
}
