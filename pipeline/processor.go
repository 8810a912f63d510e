// Package pipeline runs the pre-processing stages of one program.
package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/shibukawa/preic"
	"github.com/shibukawa/preic/label"
	"github.com/shibukawa/preic/numbering"
	"github.com/shibukawa/preic/optimizer"
	"github.com/shibukawa/preic/reader"
	"github.com/shibukawa/preic/varname"
	"github.com/shibukawa/preic/writer"
)

// FrequentSkipLabel marks the first line after the hoisted frequent sections
const FrequentSkipLabel = "{#preic_skip_frequent_sections}"

// Stage is the line count after a processing stage, reported in verbose mode
type Stage struct {
	Name  string
	Lines int
}

// Result is a processed program
type Result struct {
	Lines  []numbering.Line
	Labels *label.Table
	Stages []Stage
}

// Processor holds the state of one run: label table, variable names and line counter
type Processor struct {
	options   preic.Options
	table     *label.Table
	resolver  *label.Resolver
	optimizer *optimizer.Optimizer
	stages    []Stage
}

// New creates a Processor for the options
func New(options preic.Options) *Processor {
	table := label.NewTable()
	names := varname.NewRepository(options.Processing.Has(preic.ShortVariableNames))

	return &Processor{
		options:   options,
		table:     table,
		resolver:  label.NewResolver(table, names),
		optimizer: optimizer.New(options.Optimizations),
	}
}

func (p *Processor) stage(name string, lines int) {
	p.stages = append(p.stages, Stage{Name: name, Lines: lines})
}

// Process reads the input file and returns the numbered program
func (p *Processor) Process() (*Result, error) {
	flags := reader.NewFlagSet(p.options.Defines...)

	normal, frequent, err := reader.New(p.options.LibraryDir).Read(p.options.InputFile, flags)
	if err != nil {
		return nil, err
	}

	p.stage("read", len(normal)+len(frequent))

	lines := hoistFrequentSections(normal, frequent)

	if p.options.Processing.Has(preic.ConvertHexadecimalNumbers) {
		lines, err = label.ConvertHexadecimal(lines)
		if err != nil {
			return nil, err
		}
	}

	lines, err = p.resolver.AllocateVariables(lines)
	if err != nil {
		return nil, err
	}

	lines, err = p.resolver.DefineLiterals(lines)
	if err != nil {
		return nil, err
	}

	lines, err = p.resolver.Substitute(lines, label.Variable, label.Literal)
	if err != nil {
		return nil, err
	}

	p.stage("labels", len(lines))

	lines = p.optimizer.BeforeNumbering(lines)
	p.stage("optimise", len(lines))

	numbered, err := numbering.NewAssigner(p.resolver).Assign(lines)
	if err != nil {
		return nil, err
	}

	p.stage("numbering", len(numbered))

	numbered = p.optimizer.AfterNumbering(numbered)

	numbered, err = p.resolveLineLabels(numbered)
	if err != nil {
		return nil, err
	}

	return &Result{Lines: numbered, Labels: p.table, Stages: p.stages}, nil
}

func (p *Processor) resolveLineLabels(numbered []numbering.Line) ([]numbering.Line, error) {
	lines := make([]preic.SourceLine, len(numbered))
	for i, line := range numbered {
		lines[i] = line.SourceLine
	}

	resolved, err := p.resolver.Substitute(lines)
	if err != nil {
		return nil, err
	}

	result := make([]numbering.Line, len(numbered))
	for i, line := range resolved {
		result[i] = numbering.Line{SourceLine: line, BasicNumber: numbered[i].BasicNumber}
	}

	return result, nil
}

// hoistFrequentSections puts the frequent sections in front of the program with
// a jump over them, so they get the lowest line numbers
func hoistFrequentSections(normal, frequent []preic.SourceLine) []preic.SourceLine {
	if len(frequent) == 0 {
		return normal
	}

	lines := make([]preic.SourceLine, 0, len(normal)+len(frequent)+2)
	lines = append(lines, preic.SourceLine{Content: "goto " + FrequentSkipLabel})
	lines = append(lines, frequent...)
	lines = append(lines, preic.SourceLine{Content: FrequentSkipLabel})

	return append(lines, normal...)
}

// Run processes the program and writes the output and the label dump. Nothing
// is written unless every stage succeeded. stdout receives the program when
// no output file is set.
func Run(options preic.Options, stdout io.Writer) (*Result, error) {
	result, err := New(options).Process()
	if err != nil {
		return nil, err
	}

	var source bytes.Buffer
	if err := writer.WriteSource(&source, result.Lines); err != nil {
		return nil, err
	}

	var labels bytes.Buffer
	if options.LabelFile != "" {
		if err := writer.WriteLabels(&labels, result.Labels, options.LabelFormat); err != nil {
			return nil, err
		}
	}

	if options.OutputFile == "" {
		if _, err := stdout.Write(source.Bytes()); err != nil {
			return nil, err
		}
	} else if err := os.WriteFile(options.OutputFile, source.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write output file: %w", err)
	}

	if options.LabelFile != "" {
		if err := os.WriteFile(options.LabelFile, labels.Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write label file: %w", err)
		}
	}

	return result, nil
}
