// Package optimizer rewrites BASIC lines to run faster and take less memory.
// Every pass leaves string literals, label tokens and remark text untouched.
package optimizer

import (
	"regexp"
	"slices"

	"github.com/shibukawa/preic"
	"github.com/shibukawa/preic/numbering"
	"github.com/shibukawa/preic/tokenizer"
)

// Optimizer runs the enabled optimisation passes
type Optimizer struct {
	flags preic.OptimizationSet
}

// New creates an Optimizer running the passes in flags
func New(flags preic.OptimizationSet) *Optimizer {
	if flags == nil {
		flags = preic.OptimizationSet{}
	}

	return &Optimizer{flags: flags}
}

type linePass struct {
	flag    preic.OptimizationFlag
	rewrite func(o *Optimizer, content string) string
}

var beforeNumbering = []linePass{
	{preic.RemoveRemarks, (*Optimizer).removeRemarks},
	{preic.RemoveGotoAfterThen, (*Optimizer).removeGotoAfterThen},
	{preic.SimplifyNonZeroCheck, (*Optimizer).simplifyNonZeroCheck},
	{preic.ShortenLeadingZero, (*Optimizer).shortenLeadingZero},
}

var afterNumbering = []linePass{
	{preic.StripDataQuotes, (*Optimizer).stripDataQuotes},
	{preic.StripTrailingQuote, (*Optimizer).stripTrailingQuote},
	{preic.RemoveWhiteSpace, (*Optimizer).removeWhiteSpace},
}

// BeforeNumbering runs the passes that work on unnumbered lines, including line joining.
// Lines that become empty are dropped.
func (o *Optimizer) BeforeNumbering(lines []preic.SourceLine) []preic.SourceLine {
	for _, pass := range beforeNumbering {
		if !o.flags.Has(pass.flag) {
			continue
		}

		result := make([]preic.SourceLine, 0, len(lines))
		for _, line := range lines {
			content := pass.rewrite(o, line.Content)
			if content != "" {
				result = append(result, line.WithContent(content))
			}
		}

		lines = result
	}

	if o.flags.Has(preic.JoinLines) {
		lines = joinLines(lines)
	}

	return lines
}

// AfterNumbering runs the passes that work on numbered lines
func (o *Optimizer) AfterNumbering(lines []numbering.Line) []numbering.Line {
	lines = slices.Clone(lines)

	for _, pass := range afterNumbering {
		if !o.flags.Has(pass.flag) {
			continue
		}

		for i := range lines {
			lines[i].Content = pass.rewrite(o, lines[i].Content)
		}
	}

	return lines
}

// rewriteMatches calls replace for every match of pattern outside strings,
// labels and remarks. Matches are processed last first so earlier offsets stay valid.
func rewriteMatches(content string, pattern *regexp.Regexp, replace func(content string, match []int) string) string {
	matches := pattern.FindAllStringSubmatchIndex(content, -1)

	for _, match := range slices.Backward(matches) {
		if tokenizer.IsProtected(content, match[0]) {
			continue
		}

		content = replace(content, match)
	}

	return content
}
