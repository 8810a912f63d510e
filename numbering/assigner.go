// Package numbering assigns BASIC line numbers.
package numbering

import (
	"strconv"
	"strings"

	"github.com/shibukawa/preic"
)

// MaxLineNumber is the highest line number the interpreter accepts
const MaxLineNumber = 63999

// Line is a program line with its BASIC line number
type Line struct {
	preic.SourceLine
	BasicNumber int
}

// String returns the line as it is written to the program file
func (l Line) String() string {
	return strconv.Itoa(l.BasicNumber) + " " + l.Content
}

// LabelBinder defines line labels while numbers are assigned
type LabelBinder interface {
	DefineLineLabels(line preic.SourceLine, content string, number int) (string, error)
	RetargetLineLabels(from, to int)
}

// Assigner numbers lines from 0 upwards. An explicit number at the start of a
// line moves the counter forward.
type Assigner struct {
	binder  LabelBinder
	counter int
}

// NewAssigner creates an Assigner that binds line labels with binder
func NewAssigner(binder LabelBinder) *Assigner {
	return &Assigner{binder: binder}
}

// Assign numbers the lines, lines that end up empty are dropped
func (a *Assigner) Assign(lines []preic.SourceLine) ([]Line, error) {
	result := make([]Line, 0, len(lines))

	for _, line := range lines {
		content, err := a.consumeLineNumber(line)
		if err != nil {
			return nil, err
		}

		content, err = a.binder.DefineLineLabels(line, content, a.counter)
		if err != nil {
			return nil, err
		}

		if content == "" {
			continue
		}

		if a.counter > MaxLineNumber {
			return nil, preic.NewSourceError(preic.ErrLineNumberOverflow, line, "valid range: 0-%d", MaxLineNumber)
		}

		result = append(result, Line{SourceLine: line.WithContent(content), BasicNumber: a.counter})
		a.counter++
	}

	return result, nil
}

// consumeLineNumber applies an explicit line number and returns the rest of the line
func (a *Assigner) consumeLineNumber(line preic.SourceLine) (string, error) {
	content := line.Content

	end := strings.IndexFunc(content, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(content)
	}

	if end == 0 {
		return content, nil
	}

	number, err := strconv.Atoi(content[:end])
	if err != nil || number > MaxLineNumber {
		return "", preic.NewSourceError(preic.ErrLineNumberOverflow, line, "valid range: 0-%d", MaxLineNumber)
	}

	if number < a.counter {
		return "", preic.NewSourceError(preic.ErrLineNumberDecreasing, line, "current line number: %d", a.counter)
	}

	if number > a.counter {
		a.binder.RetargetLineLabels(a.counter, number)
		a.counter = number
	}

	return strings.TrimSpace(content[end:]), nil
}
