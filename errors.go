package preic

import "errors"

// Common errors used throughout the pre-processor
var (
	// ErrMissingParameter is returned when a directive requires a parameter but has none.
	// Directive errors
	ErrMissingParameter = errors.New("parameter is missing for pre-processing directive")
	// ErrUnknownIncludeMethod indicates an #include method other than code, data, print or remark.
	ErrUnknownIncludeMethod = errors.New("unknown include directive method")
	// ErrInvalidParameter indicates a parameter list with an unterminated string or unbalanced parentheses.
	ErrInvalidParameter = errors.New("invalid directive parameter list")
	// ErrUnrecognisedParameter indicates surplus directive parameters.
	ErrUnrecognisedParameter = errors.New("unrecognised directive parameters")
	// ErrOffsetNotAllowed indicates offsets were given for a code include.
	ErrOffsetNotAllowed = errors.New("code include does not support offset parameters")
	// ErrInvalidOffset indicates a binary include offset that is not a number or is out of range.
	ErrInvalidOffset = errors.New("invalid offset for include directive")
	// ErrZeroByteInRemark indicates REM embedded binary data containing a zero byte.
	ErrZeroByteInRemark = errors.New("included binary file contains zero bytes that cause issues with BASIC REM command, use print method instead")
	// ErrDuplicateFunction indicates a #function name declared twice.
	ErrDuplicateFunction = errors.New("function already declared")
	// ErrUndefinedFunction indicates a #call to a function that was never declared.
	ErrUndefinedFunction = errors.New("call directive without function definition")
	// ErrArityMismatch indicates a #call whose argument count differs from the declaration.
	ErrArityMismatch = errors.New("call directive parameter list doesn't match target function")

	// ErrUnmatchedElse is returned for an #else without #ifdef.
	// Control structure errors
	ErrUnmatchedElse = errors.New("#else directive without matching #ifdef")
	// ErrUnmatchedEndif is returned for an #endif without #ifdef.
	ErrUnmatchedEndif = errors.New("#endif directive without matching #ifdef")
	// ErrUnterminatedIfdef is returned when a file ends inside an #ifdef block.
	ErrUnterminatedIfdef = errors.New("unfinished #ifdef-#endif pre-processing directive structure")
	// ErrNestedFrequent is returned for #frequent inside a frequent section.
	ErrNestedFrequent = errors.New("section already marked as frequent")
	// ErrUnmatchedEndFrequent is returned for #endfrequent without #frequent.
	ErrUnmatchedEndFrequent = errors.New("#endfrequent directive without matching #frequent")
	// ErrUnterminatedFrequent is returned when a file ends inside a frequent section.
	ErrUnterminatedFrequent = errors.New("#frequent directive was not closed")

	// ErrDuplicateLabel indicates a label defined more than once.
	// Label errors
	ErrDuplicateLabel = errors.New("duplicate label")
	// ErrBlankLabel indicates a label token without a name.
	ErrBlankLabel = errors.New("blank label")
	// ErrUnbalancedLabelBlock indicates unmatched { or } in a line.
	ErrUnbalancedLabelBlock = errors.New("unmatched label block")
	// ErrTrailingLiteralText indicates text after a {%name=value} literal definition.
	ErrTrailingLiteralText = errors.New("unexpected text after literal definition")
	// ErrUndefinedLabel indicates a reference to a label that was never defined.
	ErrUndefinedLabel = errors.New("undefined label")
	// ErrLabelIterationLimit indicates substitution did not settle, usually recursive labels.
	ErrLabelIterationLimit = errors.New("maximum number of label processing iterations reached, possible recursive labels")
	// ErrInvalidHexNumber indicates a $$ literal that is not a valid hexadecimal number.
	ErrInvalidHexNumber = errors.New("error while parsing hexadecimal number")

	// ErrLineNumberDecreasing indicates an explicit line number below the running counter.
	// Numbering errors
	ErrLineNumberDecreasing = errors.New("BASIC line number is lower than current line number")
	// ErrLineNumberOverflow indicates the line number range was exceeded.
	ErrLineNumberOverflow = errors.New("maximum BASIC line number exceeded")

	// ErrVariableNamesExhausted indicates every short name of a type is in use.
	// Allocation errors
	ErrVariableNamesExhausted = errors.New("too many variable names have been generated")

	// ErrFileNotFound indicates a source or binary file could not be located.
	// File errors
	ErrFileNotFound = errors.New("file could not be found")

	// ErrUnknownFlag indicates an unrecognised optimisation or processing flag.
	// Configuration errors
	ErrUnknownFlag = errors.New("unrecognized flag")
	// ErrConfigValidation is returned when configuration validation fails
	ErrConfigValidation = errors.New("configuration validation failed")
)
