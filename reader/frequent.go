package reader

import (
	"github.com/shibukawa/preic"
	"github.com/shibukawa/preic/directive"
)

// extractFrequentSections moves the lines between #frequent and #endfrequent
// to the frequent stream
func extractFrequentSections(source, frequent []preic.SourceLine) ([]preic.SourceLine, []preic.SourceLine, error) {
	normal := make([]preic.SourceLine, 0, len(source))

	var opened *preic.SourceLine

	for _, line := range source {
		switch directive.Classify(line.Content).Kind {
		case directive.Frequent:
			if opened != nil {
				return nil, nil, preic.NewSourceError(preic.ErrNestedFrequent, line, "")
			}

			opened = &line

		case directive.EndFrequent:
			if opened == nil {
				return nil, nil, preic.NewSourceError(preic.ErrUnmatchedEndFrequent, line, "")
			}

			opened = nil

		default:
			if opened != nil {
				frequent = append(frequent, line)
			} else {
				normal = append(normal, line)
			}
		}
	}

	if opened != nil {
		return nil, nil, preic.NewSourceError(preic.ErrUnterminatedFrequent, *opened, "")
	}

	return normal, frequent, nil
}
