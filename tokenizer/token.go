package tokenizer

// TokenType represents the type of a line segment
type TokenType int

const (
	// CODE is any run of program text outside strings, labels and remarks
	CODE TokenType = iota
	WHITESPACE
	STRING // "text", unterminated strings run to the end of the line
	LABEL  // {...} placeholder or control token outside strings
	REMARK // rem command and everything after it
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case CODE:
		return "CODE"
	case WHITESPACE:
		return "WHITESPACE"
	case STRING:
		return "STRING"
	case LABEL:
		return "LABEL"
	case REMARK:
		return "REMARK"
	default:
		return "UNKNOWN"
	}
}

// Token represents one segment of a BASIC line
type Token struct {
	Type   TokenType
	Value  string
	Offset int // byte offset of the segment in the line
}

// End returns the byte offset right after the token
func (t Token) End() int {
	return t.Offset + len(t.Value)
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}

// Protected reports whether the optimiser must leave the segment untouched
func (t Token) Protected() bool {
	return t.Type == STRING || t.Type == LABEL || t.Type == REMARK
}
