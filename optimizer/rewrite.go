package optimizer

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shibukawa/preic/tokenizer"
)

var (
	remarkCommand    = regexp.MustCompile(`(^[0-9]*rem|[\s:]rem)`)
	gotoAfterThen    = regexp.MustCompile(`(then|else)\s*(go\s*to)`)
	nonZeroCheck     = regexp.MustCompile(`if\s*([a-z][a-z0-9]?)\s*<\s*>\s*0\s*then`)
	numberLiteral    = regexp.MustCompile(`[0-9]*\.?[0-9]+`)
	jumpTargetPrefix = regexp.MustCompile(`(goto|go\s*to|gosub|then|else|run|list|restore)[\s0-9,]*$`)
)

// removeRemarks cuts the line at the first rem command outside strings and labels.
// A leading line number is kept.
func (o *Optimizer) removeRemarks(content string) string {
	for _, match := range remarkCommand.FindAllStringIndex(content, -1) {
		if insideLiteral(content, match[1]-len(tokenizer.RemarkCommand)) {
			continue
		}

		if match[0] == 0 {
			// only the line number survives, if there is one
			return content[:match[1]-len(tokenizer.RemarkCommand)]
		}

		return strings.TrimRight(content[:match[0]], " \t:")
	}

	return content
}

// insideLiteral reports whether the offset is inside a string or a label
func insideLiteral(content string, offset int) bool {
	for token := range tokenizer.NewLineTokenizer(content).Tokens() {
		if offset >= token.Offset && offset < token.End() {
			return token.Type == tokenizer.STRING || token.Type == tokenizer.LABEL
		}
	}

	return false
}

// removeGotoAfterThen turns "then goto 10" into "then 10"
func (o *Optimizer) removeGotoAfterThen(content string) string {
	return rewriteMatches(content, gotoAfterThen, func(content string, match []int) string {
		keywordEnd := match[0] + len("then")
		return content[:keywordEnd] + content[match[1]:]
	})
}

// simplifyNonZeroCheck turns "if a<>0 then" into "if a then"
func (o *Optimizer) simplifyNonZeroCheck(content string) string {
	return rewriteMatches(content, nonZeroCheck, func(content string, match []int) string {
		variable := content[match[2]:match[3]]
		return content[:match[0]] + "if " + variable + " then" + content[match[1]:]
	})
}

// shortenLeadingZero turns 0 into . and 0.5 into .5, jump targets, line
// numbers and DATA items are left alone
func (o *Optimizer) shortenLeadingZero(content string) string {
	return rewriteMatches(content, numberLiteral, func(content string, match []int) string {
		start, end := match[0], match[1]
		literal := content[start:end]

		if start == 0 || (literal[0] != '0' && literal[0] != '.') {
			return content
		}

		if isNamePart(content[start-1]) || (end < len(content) && isNamePart(content[end])) {
			return content
		}

		if isExponent(content, start) {
			return content
		}

		prefix := tokenizer.CodeText(content[:start])
		if jumpTargetPrefix.MatchString(prefix) || inDataStatement(prefix) {
			return content
		}

		shortened, ok := shortenNumber(literal)
		if !ok {
			return content
		}

		return content[:start] + shortened + content[end:]
	})
}

// shortenNumber returns the shortest form of a number literal with a leading zero
func shortenNumber(literal string) (string, bool) {
	value, err := decimal.NewFromString(literal)
	if err != nil {
		return "", false
	}

	shortened := value.String()

	switch {
	case shortened == "0":
		shortened = "."
	case strings.HasPrefix(shortened, "0."):
		shortened = shortened[1:]
	}

	if len(shortened) >= len(literal) {
		return "", false
	}

	return shortened, true
}

// isExponent reports whether the number at start is the exponent of a number
// such as 1e-05 or 2.5E+07
func isExponent(content string, start int) bool {
	if start < 3 || (content[start-1] != '-' && content[start-1] != '+') {
		return false
	}

	if content[start-2] != 'e' && content[start-2] != 'E' {
		return false
	}

	mantissa := content[start-3]

	return (mantissa >= '0' && mantissa <= '9') || mantissa == '.'
}

func isNamePart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '$' || c == '%' || c == '.'
}

// inDataStatement reports whether the code text ends inside a DATA statement
func inDataStatement(code string) bool {
	statement := code[strings.LastIndexByte(code, ':')+1:]
	statement = strings.TrimLeft(statement, " \t0123456789")

	return strings.HasPrefix(statement, "data")
}
