// Package directive recognises pre-processing directive lines and splits their parameters.
package directive

import (
	"strings"
	"unicode"
)

// Kind identifies a pre-processing directive
type Kind int

const (
	// None is a plain BASIC line
	None Kind = iota
	Define
	Undef
	Ifdef
	Else
	Endif
	Include
	Function
	Call
	Frequent
	EndFrequent
)

var keywords = map[string]Kind{
	"#define":      Define,
	"#undef":       Undef,
	"#ifdef":       Ifdef,
	"#else":        Else,
	"#endif":       Endif,
	"#include":     Include,
	"#function":    Function,
	"#call":        Call,
	"#frequent":    Frequent,
	"#endfrequent": EndFrequent,
}

// String returns the directive keyword
func (k Kind) String() string {
	for keyword, kind := range keywords {
		if kind == k {
			return keyword
		}
	}

	return "plain line"
}

// Directive is a classified line
type Directive struct {
	Kind Kind
	// Parameter is the trimmed text after the keyword
	Parameter string
}

// Classify returns the directive of the line. The first whitespace separated
// word must match a directive keyword exactly, otherwise the line is plain.
func Classify(line string) Directive {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "#") {
		return Directive{Kind: None}
	}

	end := strings.IndexFunc(line, unicode.IsSpace)
	if end < 0 {
		end = len(line)
	}

	kind, ok := keywords[line[:end]]
	if !ok {
		return Directive{Kind: None}
	}

	return Directive{Kind: kind, Parameter: strings.TrimSpace(line[end:])}
}

// Is reports whether the line is the given directive
func Is(line string, kind Kind) bool {
	return Classify(line).Kind == kind
}
