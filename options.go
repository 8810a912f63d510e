package preic

import (
	"fmt"
	"slices"
	"strings"
)

// OptimizationFlag selects one optimisation pass
type OptimizationFlag int

const (
	RemoveRemarks OptimizationFlag = iota
	RemoveGotoAfterThen
	SimplifyNonZeroCheck
	ShortenLeadingZero
	JoinLines
	StripDataQuotes
	StripTrailingQuote
	RemoveWhiteSpace
)

// ProcessingFlag selects an optional processing step
type ProcessingFlag int

const (
	ConvertHexadecimalNumbers ProcessingFlag = iota
	ShortVariableNames
)

type flagInfo struct {
	letter      rune
	name        string
	description string
}

var optimizationFlags = map[OptimizationFlag]flagInfo{
	RemoveRemarks:        {'r', "remove_remarks", "Remove REM BASIC commands from source to make it run faster and occupy less memory."},
	RemoveGotoAfterThen:  {'t', "remove_goto_after_then", "Remove GOTO BASIC command after THEN and ELSE commands which is unnecessary for jumping to a line."},
	SimplifyNonZeroCheck: {'i', "simplify_non_zero_check", "Simplify `if x<>0 then` conditions to `if x then`."},
	ShortenLeadingZero:   {'z', "shorten_leading_zero", "Replace zero and zero-leading decimal numbers with the decimal point shorthand, e.g. `0.5` with `.5`."},
	JoinLines:            {'j', "join_lines", "Join BASIC lines, when set then processing attempts to join as many lines as safely possible."},
	StripDataQuotes:      {'d', "strip_data_quotes", "Remove quotes around DATA string items where not required."},
	StripTrailingQuote:   {'q', "strip_trailing_quote", "Remove the closing quote of a string at the end of a line."},
	RemoveWhiteSpace:     {'w', "remove_white_space", "Remove white space from lines where not required, white space remains unchanged after `REM` command and inside strings."},
}

var processingFlags = map[ProcessingFlag]flagInfo{
	ConvertHexadecimalNumbers: {'$', "convert_hexadecimal_numbers", "Convert hexadecimal numbers to decimal, hexadecimal numbers should be prefixed with double dollar signs ($$)."},
	ShortVariableNames:        {'v', "short_variable_names", "Use as many one character long names as possible instead of trying to keep any resemblance with the original variable names."},
}

// Letter returns the command line letter of the flag
func (f OptimizationFlag) Letter() rune { return optimizationFlags[f].letter }

// String returns the configuration name of the flag
func (f OptimizationFlag) String() string { return optimizationFlags[f].name }

// Description returns the help text of the flag
func (f OptimizationFlag) Description() string { return optimizationFlags[f].description }

// Letter returns the command line letter of the flag
func (f ProcessingFlag) Letter() rune { return processingFlags[f].letter }

// String returns the configuration name of the flag
func (f ProcessingFlag) String() string { return processingFlags[f].name }

// Description returns the help text of the flag
func (f ProcessingFlag) Description() string { return processingFlags[f].description }

// AllOptimizationFlags returns every optimisation flag in pass order
func AllOptimizationFlags() []OptimizationFlag {
	return []OptimizationFlag{
		RemoveRemarks, RemoveGotoAfterThen, SimplifyNonZeroCheck, ShortenLeadingZero,
		JoinLines, StripDataQuotes, StripTrailingQuote, RemoveWhiteSpace,
	}
}

// AllProcessingFlags returns every processing flag
func AllProcessingFlags() []ProcessingFlag {
	return []ProcessingFlag{ConvertHexadecimalNumbers, ShortVariableNames}
}

// OptimizationSet is a set of enabled optimisation passes
type OptimizationSet map[OptimizationFlag]bool

// Has reports whether the pass is enabled
func (s OptimizationSet) Has(flag OptimizationFlag) bool { return s[flag] }

// ProcessingSet is a set of enabled processing steps
type ProcessingSet map[ProcessingFlag]bool

// Has reports whether the step is enabled
func (s ProcessingSet) Has(flag ProcessingFlag) bool { return s[flag] }

// ParseOptimizationLetters converts command line letters (e.g. "jrw") into a set
func ParseOptimizationLetters(letters string) (OptimizationSet, error) {
	result := OptimizationSet{}

	for _, letter := range letters {
		idx := slices.IndexFunc(AllOptimizationFlags(), func(f OptimizationFlag) bool { return f.Letter() == letter })
		if idx < 0 {
			return nil, fmt.Errorf("%w: optimisation flag '%c'", ErrUnknownFlag, letter)
		}

		result[AllOptimizationFlags()[idx]] = true
	}

	return result, nil
}

// ParseProcessingLetters converts command line letters (e.g. "$v") into a set
func ParseProcessingLetters(letters string) (ProcessingSet, error) {
	result := ProcessingSet{}

	for _, letter := range letters {
		idx := slices.IndexFunc(AllProcessingFlags(), func(f ProcessingFlag) bool { return f.Letter() == letter })
		if idx < 0 {
			return nil, fmt.Errorf("%w: processing flag '%c'", ErrUnknownFlag, letter)
		}

		result[AllProcessingFlags()[idx]] = true
	}

	return result, nil
}

// ParseOptimizationNames converts configuration names into a set
func ParseOptimizationNames(names []string) (OptimizationSet, error) {
	result := OptimizationSet{}

	for _, name := range names {
		idx := slices.IndexFunc(AllOptimizationFlags(), func(f OptimizationFlag) bool { return f.String() == strings.TrimSpace(name) })
		if idx < 0 {
			return nil, fmt.Errorf("%w: optimisation '%s'", ErrUnknownFlag, name)
		}

		result[AllOptimizationFlags()[idx]] = true
	}

	return result, nil
}

// ParseProcessingNames converts configuration names into a set
func ParseProcessingNames(names []string) (ProcessingSet, error) {
	result := ProcessingSet{}

	for _, name := range names {
		idx := slices.IndexFunc(AllProcessingFlags(), func(f ProcessingFlag) bool { return f.String() == strings.TrimSpace(name) })
		if idx < 0 {
			return nil, fmt.Errorf("%w: processing '%s'", ErrUnknownFlag, name)
		}

		result[AllProcessingFlags()[idx]] = true
	}

	return result, nil
}

// Options holds the parameters of one processing run
type Options struct {
	InputFile     string
	OutputFile    string // empty means standard output
	LibraryDir    string
	LabelFile     string
	LabelFormat   string
	Optimizations OptimizationSet
	Processing    ProcessingSet
	Defines       []string
}
