package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/shibukawa/preic"
	"github.com/shibukawa/preic/label"
	"github.com/shibukawa/preic/pipeline"
)

// CheckCmd runs every processing stage without writing any file
type CheckCmd struct {
	Inputs []string   `arg:"" help:"BASIC source files to check"`
	Stage  StageFlags `embed:""`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	config, err := preic.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	failed := 0

	for _, input := range cmd.Inputs {
		options, err := cmd.Stage.options(input)
		if err != nil {
			return err
		}

		err = config.ApplyTo(&options)
		if err != nil {
			return fmt.Errorf("failed to apply config: %w", err)
		}

		if ctx.Verbose {
			color.New(color.FgBlue).Fprintf(ctx.Stderr, "Checking %s\n", input)
		}

		result, err := pipeline.New(options).Process()
		if err != nil {
			failed++

			reportError(ctx.Stderr, err)

			continue
		}

		if !ctx.Quiet {
			color.New(color.FgGreen).Fprintf(ctx.Stdout, "%s: %d lines, %d line labels, %d variables, %d literals\n",
				input, len(result.Lines),
				len(result.Labels.SortedLabels(label.Line)),
				len(result.Labels.SortedLabels(label.Variable)),
				len(result.Labels.SortedLabels(label.Literal)))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrCheckFailed, failed, len(cmd.Inputs))
	}

	return nil
}
