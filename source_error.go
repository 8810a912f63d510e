package preic

import (
	"errors"
	"fmt"
	"strings"
)

// SourceError is a fatal processing error tied to a source line.
// Err is one of the sentinel errors of this package so callers can use errors.Is.
type SourceError struct {
	Err    error
	Detail string
	Line   SourceLine
	// Cause is an optional lower level error, e.g. from strconv
	Cause error
}

// NewSourceError creates a SourceError for the given line
func NewSourceError(err error, line SourceLine, detail string, args ...any) *SourceError {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}

	return &SourceError{Err: err, Detail: detail, Line: line}
}

// WithCause attaches a lower level error
func (e *SourceError) WithCause(cause error) *SourceError {
	e.Cause = cause
	return e
}

func (e *SourceError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	b.WriteString("\n")
	b.WriteString(e.Line.Location())

	if e.Line.Content != "" {
		b.WriteString("\n\"")
		b.WriteString(e.Line.Content)
		b.WriteString("\"")
	}

	return b.String()
}

func (e *SourceError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}

	return []error{e.Err}
}

// Describe splits an error chain into printable layers: the error itself and up to
// depth-1 wrapped causes. Each layer only contains the text it adds to its cause.
// A SourceError ends the chain since its message already contains its sentinel.
func Describe(err error, depth int) []string {
	var layers []string

	for err != nil && len(layers) < depth {
		if sourceErr, ok := err.(*SourceError); ok {
			layers = append(layers, sourceErr.Error())
			if sourceErr.Cause != nil && len(layers) < depth {
				layers = append(layers, sourceErr.Cause.Error())
			}

			break
		}

		inner := errors.Unwrap(err)
		if inner == nil {
			layers = append(layers, err.Error())
			break
		}

		message := strings.TrimSuffix(err.Error(), inner.Error())
		message = strings.TrimSuffix(message, ": ")
		layers = append(layers, message)
		err = inner
	}

	return layers
}
