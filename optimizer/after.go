package optimizer

import (
	"strings"
	"unicode"

	"github.com/shibukawa/preic"
	"github.com/shibukawa/preic/tokenizer"
)

const dataCommand = "data"

// stripDataQuotes removes quotes around DATA items that read the same without them
func (o *Optimizer) stripDataQuotes(content string) string {
	var b strings.Builder

	statementStart := true

	for i := 0; i < len(content); {
		c := content[i]

		switch {
		case c == '"' || c == '{':
			closing := byte('"')
			if c == '{' {
				closing = '}'
			}

			end := strings.IndexByte(content[i+1:], closing)
			if end < 0 {
				b.WriteString(content[i:])
				return b.String()
			}

			b.WriteString(content[i : i+end+2])
			i += end + 2
			statementStart = false

		case strings.HasPrefix(content[i:], tokenizer.RemarkCommand):
			b.WriteString(content[i:])
			return b.String()

		case statementStart && strings.HasPrefix(content[i:], dataCommand):
			b.WriteString(dataCommand)
			i = o.copyDataItems(&b, content, i+len(dataCommand))
			statementStart = false

		default:
			b.WriteByte(c)
			i++

			switch {
			case c == ':':
				statementStart = true
			case !unicode.IsSpace(rune(c)):
				statementStart = false
			}
		}
	}

	return b.String()
}

// copyDataItems copies the items of one DATA statement starting at i and
// returns the offset of the statement end
func (o *Optimizer) copyDataItems(b *strings.Builder, content string, i int) int {
	for {
		end := i
		quoted := false

		for end < len(content) {
			c := content[end]
			if c == '"' {
				quoted = !quoted
			} else if !quoted && (c == ',' || c == ':') {
				break
			}

			end++
		}

		b.WriteString(o.stripDataItem(content[i:end]))

		if end >= len(content) || content[end] == ':' {
			return end
		}

		b.WriteByte(',')
		i = end + 1
	}
}

func (o *Optimizer) stripDataItem(item string) string {
	open := strings.IndexByte(item, '"')
	if open < 0 || strings.TrimSpace(item[:open]) != "" {
		return item
	}

	closing := strings.LastIndexByte(item, '"')
	if closing == open || strings.TrimSpace(item[closing+1:]) != "" {
		return item
	}

	text := item[open+1 : closing]
	if text == "" || strings.ContainsAny(text, `",:{}`) || unicode.IsSpace(rune(text[0])) {
		return item
	}

	if o.flags.Has(preic.RemoveWhiteSpace) && strings.ContainsFunc(text, unicode.IsSpace) {
		return item
	}

	return item[:open] + text + item[closing+1:]
}

// stripTrailingQuote removes the closing quote at the end of the line, the
// interpreter closes open strings at the end of the line
func (o *Optimizer) stripTrailingQuote(content string) string {
	if !strings.HasSuffix(content, `"`) || tokenizer.QuoteParity(content) != 0 {
		return content
	}

	if tokenizer.RemarkStart(content) >= 0 {
		return content
	}

	return content[:len(content)-1]
}

// removeWhiteSpace drops white space outside strings and labels up to the first remark
func (o *Optimizer) removeWhiteSpace(content string) string {
	var b strings.Builder

	remark := false

	for token := range tokenizer.NewLineTokenizer(content).Tokens() {
		remark = remark || token.Type == tokenizer.REMARK
		if token.Type == tokenizer.WHITESPACE && !remark {
			continue
		}

		b.WriteString(token.Value)
	}

	return b.String()
}
