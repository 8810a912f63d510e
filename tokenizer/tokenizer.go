package tokenizer

import (
	"iter"
	"strings"
)

// RemarkCommand starts a comment that runs until the end of the line
const RemarkCommand = "rem"

// TokenIterator uses Go 1.23 iterator pattern
type TokenIterator iter.Seq[Token]

// LineTokenizer splits a single BASIC line into segments.
// BASIC v2 recognises keywords anywhere outside strings, so "rem" starts a remark
// even in the middle of a word.
type LineTokenizer struct {
	input string
}

// NewLineTokenizer creates a new LineTokenizer
func NewLineTokenizer(input string) *LineTokenizer {
	return &LineTokenizer{input: input}
}

// Tokens returns an iterator of tokens
func (t *LineTokenizer) Tokens() TokenIterator {
	return func(yield func(Token) bool) {
		position := 0
		for position < len(t.input) {
			token := t.nextToken(position)
			if !yield(token) {
				return
			}

			position = token.End()
		}
	}
}

// AllTokens gets all tokens as a slice
func (t *LineTokenizer) AllTokens() []Token {
	tokens := make([]Token, 0, 8)
	for token := range t.Tokens() {
		tokens = append(tokens, token)
	}

	return tokens
}

// nextToken reads the token starting at position
func (t *LineTokenizer) nextToken(position int) Token {
	rest := t.input[position:]

	switch {
	case rest[0] == '"':
		return t.readDelimited(position, STRING, '"')
	case rest[0] == '{':
		return t.readDelimited(position, LABEL, '}')
	case isSpace(rest[0]):
		end := position
		for end < len(t.input) && isSpace(t.input[end]) {
			end++
		}

		return Token{Type: WHITESPACE, Value: t.input[position:end], Offset: position}
	case strings.HasPrefix(rest, RemarkCommand):
		return Token{Type: REMARK, Value: rest, Offset: position}
	}

	end := position + 1
	for end < len(t.input) {
		c := t.input[end]
		if c == '"' || c == '{' || isSpace(c) || strings.HasPrefix(t.input[end:], RemarkCommand) {
			break
		}
		end++
	}

	return Token{Type: CODE, Value: t.input[position:end], Offset: position}
}

// readDelimited reads a segment up to and including the closing delimiter,
// or to the end of the line when the delimiter is missing
func (t *LineTokenizer) readDelimited(position int, tokenType TokenType, closing byte) Token {
	end := strings.IndexByte(t.input[position+1:], closing)
	if end < 0 {
		return Token{Type: tokenType, Value: t.input[position:], Offset: position}
	}

	return Token{Type: tokenType, Value: t.input[position : position+end+2], Offset: position}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f'
}

// Tokenize is a shortcut for NewLineTokenizer(line).AllTokens()
func Tokenize(line string) []Token {
	return NewLineTokenizer(line).AllTokens()
}

// IsProtected reports whether the byte at offset lies inside a string or label,
// or at or after the start of a remark
func IsProtected(line string, offset int) bool {
	for token := range NewLineTokenizer(line).Tokens() {
		if token.Type == REMARK && offset >= token.Offset {
			return true
		}

		if offset >= token.Offset && offset < token.End() {
			return token.Protected()
		}
	}

	return false
}

// CodeText returns the line without strings and labels; remarks are kept
// so keyword lookups still see the "rem" command
func CodeText(line string) string {
	var builder strings.Builder

	for token := range NewLineTokenizer(line).Tokens() {
		if token.Type == STRING || token.Type == LABEL {
			builder.WriteByte(' ')
			continue
		}

		builder.WriteString(token.Value)
	}

	return builder.String()
}

// RemarkStart returns the byte offset of the remark command, or -1
func RemarkStart(line string) int {
	for token := range NewLineTokenizer(line).Tokens() {
		if token.Type == REMARK {
			return token.Offset
		}
	}

	return -1
}

// QuoteParity returns the number of double quotes in s modulo 2
func QuoteParity(s string) int {
	return strings.Count(s, `"`) % 2
}
