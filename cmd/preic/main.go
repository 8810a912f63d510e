package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/shibukawa/preic"
)

const version = "0.3.0"

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
	Stdout  io.Writer
	Stderr  io.Writer
}

var CLI struct {
	Config  string           `help:"Configuration file path" default:"preic.yaml"`
	Verbose bool             `help:"Enable verbose output" short:"v"`
	Quiet   bool             `help:"Suppress output" short:"q"`
	Version kong.VersionFlag `help:"Show version information"`
	Process ProcessCmd       `cmd:"" default:"withargs" help:"Pre-process a BASIC source file"`
	Check   CheckCmd         `cmd:"" help:"Check BASIC source files without writing output"`
	Flags   FlagsCmd         `cmd:"" help:"List optimisation and processing flags"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("preic"),
		kong.Description("Pre-processor for line numbered BASIC programs"),
		kong.Vars{"version": "preic v" + version},
	)

	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints the error and up to two of its causes
func reportError(w io.Writer, err error) {
	layers := preic.Describe(err, 3)
	if len(layers) == 0 {
		return
	}

	color.New(color.FgRed, color.Bold).Fprintf(w, "ERROR: %s\n", layers[0])

	for _, cause := range layers[1:] {
		color.New(color.FgRed).Fprintf(w, " Cause: %s\n", cause)
	}
}
