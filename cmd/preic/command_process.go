package main

import (
	"fmt"
	"slices"

	"github.com/fatih/color"

	"github.com/shibukawa/preic"
	"github.com/shibukawa/preic/pipeline"
)

// StageFlags are the processing options shared by the process and check commands
type StageFlags struct {
	LibraryDir string   `help:"Directory searched for included files" short:"L"`
	Optimize   string   `help:"Optimisation flag letters, see the flags command" short:"o"`
	Processing string   `help:"Processing flag letters, see the flags command" short:"p" name:"process"`
	Define     []string `help:"Pre-processing flag to define, repeatable" short:"d"`
}

// options converts the flags into processing options for one input file
func (f *StageFlags) options(input string) (preic.Options, error) {
	optimizations, err := preic.ParseOptimizationLetters(f.Optimize)
	if err != nil {
		return preic.Options{}, err
	}

	processing, err := preic.ParseProcessingLetters(f.Processing)
	if err != nil {
		return preic.Options{}, err
	}

	return preic.Options{
		InputFile:     input,
		LibraryDir:    f.LibraryDir,
		Optimizations: optimizations,
		Processing:    processing,
		Defines:       slices.Clone(f.Define),
	}, nil
}

// ProcessCmd pre-processes one source file
type ProcessCmd struct {
	Input       string     `arg:"" help:"BASIC source file with pre-processing directives and labels"`
	Output      string     `arg:"" optional:"" help:"Output file, standard output when omitted"`
	Labels      string     `help:"Write the label table to this file" short:"l"`
	LabelFormat string     `help:"Label file format: text or yaml"`
	Stage       StageFlags `embed:""`
}

// Run executes the process command
func (cmd *ProcessCmd) Run(ctx *Context) error {
	options, err := cmd.options()
	if err != nil {
		return err
	}

	config, err := preic.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	err = config.ApplyTo(&options)
	if err != nil {
		return fmt.Errorf("failed to apply config: %w", err)
	}

	if ctx.Verbose {
		printOptions(ctx, options)
	}

	result, err := pipeline.Run(options, ctx.Stdout)
	if err != nil {
		return err
	}

	if ctx.Verbose {
		for _, stage := range result.Stages {
			color.New(color.FgBlue).Fprintf(ctx.Stderr, "%-10s %d lines\n", stage.Name+":", stage.Lines)
		}
	}

	if !ctx.Quiet && options.OutputFile != "" {
		color.New(color.FgGreen).Fprintf(ctx.Stderr, "Wrote %d lines to %s\n", len(result.Lines), options.OutputFile)
	}

	return nil
}

func (cmd *ProcessCmd) options() (preic.Options, error) {
	options, err := cmd.Stage.options(cmd.Input)
	if err != nil {
		return preic.Options{}, err
	}

	options.OutputFile = cmd.Output
	options.LabelFile = cmd.Labels
	options.LabelFormat = cmd.LabelFormat

	return options, nil
}

func printOptions(ctx *Context, options preic.Options) {
	info := color.New(color.FgBlue)

	info.Fprintf(ctx.Stderr, "Input: %s\n", options.InputFile)

	if options.LibraryDir != "" {
		info.Fprintf(ctx.Stderr, "Library directory: %s\n", options.LibraryDir)
	}

	for _, flag := range preic.AllOptimizationFlags() {
		if options.Optimizations.Has(flag) {
			info.Fprintf(ctx.Stderr, "Optimisation: %s\n", flag)
		}
	}

	for _, flag := range preic.AllProcessingFlags() {
		if options.Processing.Has(flag) {
			info.Fprintf(ctx.Stderr, "Processing: %s\n", flag)
		}
	}

	for _, define := range options.Defines {
		info.Fprintf(ctx.Stderr, "Defined: %s\n", define)
	}
}
