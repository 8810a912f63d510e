package label

import (
	"regexp"
	"strconv"

	"github.com/shibukawa/preic"
)

var hexNumber = regexp.MustCompile(`\$\$([0-9A-Za-z_]+)`)

// ConvertHexadecimal replaces $$<hex> numbers with their decimal value
func ConvertHexadecimal(lines []preic.SourceLine) ([]preic.SourceLine, error) {
	result := make([]preic.SourceLine, len(lines))

	for i, line := range lines {
		content, err := convertLine(line)
		if err != nil {
			return nil, err
		}

		result[i] = line.WithContent(content)
	}

	return result, nil
}

func convertLine(line preic.SourceLine) (string, error) {
	content := line.Content

	for iteration := 0; hexNumber.MatchString(content); iteration++ {
		if iteration >= MaxIterations {
			return "", preic.NewSourceError(preic.ErrLabelIterationLimit, line, "hexadecimal numbers")
		}

		var failed error

		content = hexNumber.ReplaceAllStringFunc(content, func(match string) string {
			value, err := strconv.ParseUint(match[2:], 16, 64)
			if err != nil {
				if failed == nil {
					failed = preic.NewSourceError(preic.ErrInvalidHexNumber, line, "%s", match).WithCause(err)
				}

				return match
			}

			return strconv.FormatUint(value, 10)
		})

		if failed != nil {
			return "", failed
		}
	}

	return content, nil
}
