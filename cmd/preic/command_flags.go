package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/shibukawa/preic"
)

// FlagsCmd lists the optimisation and processing flags
type FlagsCmd struct{}

// Run executes the flags command
func (cmd *FlagsCmd) Run(ctx *Context) error {
	header := color.New(color.FgBlue, color.Bold)

	header.Fprintln(ctx.Stdout, "Optimisation flags (-o):")

	for _, flag := range preic.AllOptimizationFlags() {
		fmt.Fprintf(ctx.Stdout, "  %c  %-28s %s\n", flag.Letter(), flag, flag.Description())
	}

	fmt.Fprintln(ctx.Stdout)
	header.Fprintln(ctx.Stdout, "Processing flags (-p):")

	for _, flag := range preic.AllProcessingFlags() {
		fmt.Fprintf(ctx.Stdout, "  %c  %-28s %s\n", flag.Letter(), flag, flag.Description())
	}

	return nil
}
