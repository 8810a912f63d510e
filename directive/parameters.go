package directive

import (
	"errors"
	"fmt"
	"strings"

	pc "github.com/shibukawa/parsercombinator"

	"github.com/shibukawa/preic"
)

// character classes of a parameter list
const (
	commaToken     = "comma"
	quoteToken     = "quote"
	openToken      = "open"
	closeToken     = "close"
	textToken      = "text"
	parameterToken = "parameter"
)

func primitive(name, tokenType string) pc.Parser[string] {
	return func(pctx *pc.ParseContext[string], tokens []pc.Token[string]) (int, []pc.Token[string], error) {
		if len(tokens) == 0 {
			return 0, nil, pc.NewErrNotMatch(name, "", nil)
		}

		if tokens[0].Type != tokenType {
			return 0, nil, pc.NewErrNotMatch(name, tokens[0].Raw, tokens[0].Pos)
		}

		return 1, tokens[:1], nil
	}
}

var (
	comma  = primitive("','", commaToken)
	quote  = primitive("'\"'", quoteToken)
	open   = primitive("'('", openToken)
	closer = primitive("')'", closeToken)
	text   = primitive("text", textToken)

	// stringLiteral = '"' { any but '"' } '"'
	stringLiteral = pc.SeqWithLabel("string",
		quote,
		pc.ZeroOrMore("string content", pc.Or(text, comma, open, closer)),
		quote,
	)

	// group = "(" { text | "," | string | group } ")"
	group pc.Parser[string]

	// item = text | string | group
	item = pc.Or(text, stringLiteral, pc.Lazy(func() pc.Parser[string] { return group }))

	// parameter = { item }, merged into one trimmed parameter token
	parameter = pc.Trans(pc.ZeroOrMore("parameter", item), mergeParameter)

	// parameters = parameter { "," parameter }
	parameters = pc.Seq(parameter, pc.ZeroOrMore("parameters", pc.Seq(pc.Drop(comma), parameter)))

	parameterList = pc.Seq(parameters, pc.EOS[string]())
)

func init() {
	group = pc.SeqWithLabel("group",
		open,
		pc.ZeroOrMore("group content", pc.Or(text, comma, stringLiteral, pc.Lazy(func() pc.Parser[string] { return group }))),
		closer,
	)
}

func mergeParameter(pctx *pc.ParseContext[string], tokens []pc.Token[string]) ([]pc.Token[string], error) {
	var b strings.Builder
	for _, token := range tokens {
		b.WriteString(token.Raw)
	}

	value := strings.TrimSpace(b.String())

	return []pc.Token[string]{{Type: parameterToken, Raw: value, Val: value}}, nil
}

// lex classifies the characters of a parameter list, runs of other
// characters become a single text token
func lex(input string) []pc.Token[string] {
	var tokens []pc.Token[string]

	emit := func(tokenType string, start, end int) {
		tokens = append(tokens, pc.Token[string]{
			Type: tokenType,
			Pos:  &pc.Pos{Line: 1, Col: start + 1, Index: start, Length: end - start},
			Raw:  input[start:end],
			Val:  input[start:end],
		})
	}

	start := 0

	for i := 0; i < len(input); i++ {
		var tokenType string

		switch input[i] {
		case ',':
			tokenType = commaToken
		case '"':
			tokenType = quoteToken
		case '(':
			tokenType = openToken
		case ')':
			tokenType = closeToken
		default:
			continue
		}

		if i > start {
			emit(textToken, start, i)
		}

		emit(tokenType, i, i+1)
		start = i + 1
	}

	if start < len(input) {
		emit(textToken, start, len(input))
	}

	return tokens
}

// Parameters splits a comma separated parameter list. Commas inside double
// quotes or parentheses do not separate parameters, every parameter is trimmed
// and empty parameters are kept so positional parameters can be skipped.
// An empty input yields no parameters. Unterminated strings and unbalanced
// parentheses are rejected with preic.ErrInvalidParameter.
func Parameters(input string) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		return []string{}, nil
	}

	tokens := lex(input)
	pctx := pc.NewParseContext[string]()

	_, parsed, err := parameterList(pctx, tokens)
	if err != nil {
		if !errors.Is(err, pc.ErrNotMatch) {
			return nil, fmt.Errorf("%w: %w", preic.ErrInvalidParameter, err)
		}

		return nil, rejection(input, tokens)
	}

	params := make([]string, 0, len(parsed))

	for _, token := range parsed {
		if token.Type == parameterToken {
			params = append(params, token.Val)
		}
	}

	return params, nil
}

// rejection describes the first token the parameter grammar could not consume
func rejection(input string, tokens []pc.Token[string]) error {
	consumed, _, err := parameters(pc.NewParseContext[string](), tokens)
	if err != nil || consumed >= len(tokens) {
		return fmt.Errorf("%w: %s", preic.ErrInvalidParameter, input)
	}

	token := tokens[consumed]

	reason := fmt.Sprintf("unexpected %q", token.Raw)

	switch token.Type {
	case quoteToken:
		reason = "unterminated string"
	case openToken:
		reason = "unclosed parenthesis"
	case closeToken:
		reason = "unmatched parenthesis"
	}

	return fmt.Errorf("%w: %s at column %d", preic.ErrInvalidParameter, reason, token.Pos.Col)
}
