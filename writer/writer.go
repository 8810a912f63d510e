// Package writer renders the processed program and the label dump.
package writer

import (
	"bufio"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shibukawa/preic"
	"github.com/shibukawa/preic/label"
	"github.com/shibukawa/preic/numbering"
)

// WriteSource writes one "<number> <code>" line per program line
func WriteSource(w io.Writer, lines []numbering.Line) error {
	bw := bufio.NewWriter(w)

	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteLabels writes the label dump in the given format (text or yaml)
func WriteLabels(w io.Writer, table *label.Table, format string) error {
	switch format {
	case preic.LabelFormatYAML:
		return writeLabelsYAML(w, table)
	case preic.LabelFormatText, "":
		return writeLabelsText(w, table)
	default:
		return fmt.Errorf("%w: label format '%s'", preic.ErrUnknownFlag, format)
	}
}

func writeLabelsText(w io.Writer, table *label.Table) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Label count: %d\n", table.Len())

	fmt.Fprintln(bw, "\nLine labels:")

	for _, l := range table.SortedLabels(label.Line) {
		fmt.Fprintf(bw, "%d: %s\n", l.LineNumber, l.Name)
	}

	fmt.Fprintln(bw, "\nVariable labels:")

	for _, l := range table.SortedLabels(label.Variable) {
		if l.Frequent {
			fmt.Fprintf(bw, "%s: %s - frequent\n", l.BasicName, l.Name)
		} else {
			fmt.Fprintf(bw, "%s: %s\n", l.BasicName, l.Name)
		}
	}

	fmt.Fprintln(bw, "\nLiteral labels:")

	for _, l := range table.SortedLabels(label.Literal) {
		fmt.Fprintf(bw, "%s: %s\n", l.Name, l.Value)
	}

	return bw.Flush()
}

type lineEntry struct {
	Name   string `yaml:"name"`
	Number int    `yaml:"number"`
}

type variableEntry struct {
	Name      string `yaml:"name"`
	BasicName string `yaml:"basic_name"`
	Type      string `yaml:"type"`
	Frequent  bool   `yaml:"frequent,omitempty"`
}

type literalEntry struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type labelDump struct {
	Count     int             `yaml:"count"`
	Lines     []lineEntry     `yaml:"lines"`
	Variables []variableEntry `yaml:"variables"`
	Literals  []literalEntry  `yaml:"literals"`
}

func writeLabelsYAML(w io.Writer, table *label.Table) error {
	dump := labelDump{
		Count:     table.Len(),
		Lines:     []lineEntry{},
		Variables: []variableEntry{},
		Literals:  []literalEntry{},
	}

	for _, l := range table.SortedLabels(label.Line) {
		dump.Lines = append(dump.Lines, lineEntry{Name: l.Name, Number: l.LineNumber})
	}

	for _, l := range table.SortedLabels(label.Variable) {
		dump.Variables = append(dump.Variables, variableEntry{
			Name:      l.Name,
			BasicName: l.BasicName,
			Type:      l.Type.String(),
			Frequent:  l.Frequent,
		})
	}

	for _, l := range table.SortedLabels(label.Literal) {
		dump.Literals = append(dump.Literals, literalEntry{Name: l.Name, Value: l.Value})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(dump); err != nil {
		return fmt.Errorf("failed to encode label dump: %w", err)
	}

	return encoder.Close()
}
