package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shibukawa/preic"
	"github.com/shibukawa/preic/testhelper"
)

func init() {
	color.NoColor = true
}

func newContext(dir string) (*Context, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	return &Context{
		Config: filepath.Join(dir, "preic.yaml"),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func TestProcessCmdStdout(t *testing.T) {
	dir := testhelper.WriteFiles(t, map[string]string{
		"main.bas": "#ifdef FAST\nprint \"fast\"\n#else\nprint \"slow\"\n#endif\n",
	})

	ctx, stdout, stderr := newContext(dir)
	cmd := &ProcessCmd{Input: filepath.Join(dir, "main.bas"), Stage: StageFlags{Define: []string{"FAST"}}}

	err := cmd.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0 print \"fast\"\n", stdout.String())
	assert.Equal(t, "", stderr.String())
}

func TestProcessCmdConfig(t *testing.T) {
	dir := testhelper.WriteFiles(t, map[string]string{
		"main.bas":   "rem hello\n#include v.bas\nprint {%value}\n",
		"lib/v.bas":  "{%value}=0.5\n",
		"preic.yaml": "library_dir: ${PREIC_TEST_LIB}\noptimizations:\n  - remove_remarks\n  - shorten_leading_zero\n",
	})
	t.Setenv("PREIC_TEST_LIB", filepath.Join(dir, "lib"))

	ctx, _, stderr := newContext(dir)
	ctx.Verbose = true

	output := filepath.Join(dir, "out.bas")
	cmd := &ProcessCmd{Input: filepath.Join(dir, "main.bas"), Output: output}

	err := cmd.Run(ctx)
	require.NoError(t, err)

	actual, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "0 print .5\n", string(actual))
	assert.Contains(t, stderr.String(), "Library directory: "+filepath.Join(dir, "lib"))
	assert.Contains(t, stderr.String(), "Optimisation: remove_remarks")
	assert.Contains(t, stderr.String(), "Wrote 1 lines to "+output)
}

func TestProcessCmdInvalidFlag(t *testing.T) {
	dir := testhelper.WriteFiles(t, map[string]string{"main.bas": "print 1\n"})

	ctx, stdout, _ := newContext(dir)
	cmd := &ProcessCmd{Input: filepath.Join(dir, "main.bas"), Stage: StageFlags{Optimize: "x"}}

	err := cmd.Run(ctx)
	assert.ErrorIs(t, err, preic.ErrUnknownFlag)
	assert.Equal(t, "", stdout.String())
}

func TestFlagsCmd(t *testing.T) {
	ctx, stdout, _ := newContext(t.TempDir())

	err := (&FlagsCmd{}).Run(ctx)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Optimisation flags (-o):")
	assert.Contains(t, stdout.String(), "j  join_lines")
	assert.Contains(t, stdout.String(), "$  convert_hexadecimal_numbers")
}

func TestReportError(t *testing.T) {
	dir := testhelper.WriteFiles(t, map[string]string{"main.bas": "goto {#nowhere}\n"})

	ctx, _, _ := newContext(dir)
	err := (&ProcessCmd{Input: filepath.Join(dir, "main.bas")}).Run(ctx)
	require.Error(t, err)

	var out bytes.Buffer
	reportError(&out, err)
	assert.Contains(t, out.String(), "ERROR: undefined label: {#nowhere}")

	out.Reset()
	reportError(&out, fmt.Errorf("failed to load config: %w", preic.ErrConfigValidation))
	assert.Equal(t, "ERROR: failed to load config\n Cause: configuration validation failed\n", out.String())
}

func TestCheckCmd(t *testing.T) {
	dir := testhelper.WriteFiles(t, map[string]string{
		"good.bas": "{#top} {@total}=1\ngoto {#top}\n",
		"bad.bas":  "goto {#missing}\n",
	})

	ctx, stdout, stderr := newContext(dir)

	err := (&CheckCmd{Inputs: []string{filepath.Join(dir, "good.bas")}}).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "good.bas")+": 2 lines, 1 line labels, 1 variables, 0 literals\n", stdout.String())

	err = (&CheckCmd{Inputs: []string{filepath.Join(dir, "good.bas"), filepath.Join(dir, "bad.bas")}}).Run(ctx)
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, err.Error(), "1 of 2 files")
	assert.Contains(t, stderr.String(), "ERROR: undefined label: {#missing}")
}

func TestCheckCmdOptimised(t *testing.T) {
	dir := testhelper.WriteFiles(t, map[string]string{"good.bas": "{#top} {@total}=1\ngoto {#top}\n"})

	ctx, stdout, _ := newContext(dir)
	cmd := &CheckCmd{Inputs: []string{filepath.Join(dir, "good.bas")}, Stage: StageFlags{Optimize: "j"}}

	err := cmd.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "good.bas")+": 1 lines, 1 line labels, 1 variables, 0 literals\n", stdout.String())

	cmd.Stage.Optimize = "x"
	assert.ErrorIs(t, cmd.Run(ctx), preic.ErrUnknownFlag)
}
