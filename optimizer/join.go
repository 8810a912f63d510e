package optimizer

import (
	"regexp"
	"strings"

	"github.com/shibukawa/preic"
	"github.com/shibukawa/preic/tokenizer"
)

// MaxLineLength is the longest line the BASIC editor accepts
const MaxLineLength = 256

// joinBlockers are commands that change the flow of execution, any statement
// after them on the same line could be skipped
var joinBlockers = []string{"goto", "go to", "gosub", "if", "then", "return", "rem", "end", "stop", "next"}

var (
	// a line that is a jump target or has an explicit number starts a new line
	unjoinableStart = regexp.MustCompile(`^(\{[#%]|[0-9])`)
	// bare number or line label, followed by a space instead of a colon
	onlyLineLabelOrNumber = regexp.MustCompile(`^(\{#[^}]*\}|[0-9]+)\s*$`)
)

// joinLines merges consecutive lines with ":" as long as the result is safe to run
func joinLines(lines []preic.SourceLine) []preic.SourceLine {
	result := make([]preic.SourceLine, 0, len(lines))

	var current *preic.SourceLine

	flush := func(line preic.SourceLine) {
		if current != nil {
			result = append(result, *current)
		}

		current = &line
	}

	for _, line := range lines {
		if current == nil || !canJoin(current.Content, line.Content) {
			flush(line)
			continue
		}

		separator := ":"
		if onlyLineLabelOrNumber.MatchString(current.Content) {
			separator = " "
		}

		current.Content = current.Content + separator + line.Content
	}

	if current != nil {
		result = append(result, *current)
	}

	return result
}

func canJoin(current, next string) bool {
	if unjoinableStart.MatchString(next) {
		return false
	}

	if len(current)+1+len(next) > MaxLineLength {
		return false
	}

	if tokenizer.QuoteParity(current) != 0 {
		return false
	}

	code := tokenizer.CodeText(current)
	for _, blocker := range joinBlockers {
		if strings.Contains(code, blocker) {
			return false
		}
	}

	return true
}
