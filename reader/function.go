package reader

import (
	"strings"

	"github.com/shibukawa/preic"
	"github.com/shibukawa/preic/directive"
)

// Function is a subroutine declared with #function
type Function struct {
	Name       string
	Parameters []string
}

// declareFunction registers the function and returns its entry line label
func (r *Reader) declareFunction(d directive.Directive, line preic.SourceLine) (preic.SourceLine, error) {
	params, err := parameters(d, line)
	if err != nil {
		return preic.SourceLine{}, err
	}

	name := params[0]
	if _, ok := r.functions[name]; ok {
		return preic.SourceLine{}, preic.NewSourceError(preic.ErrDuplicateFunction, line, "`%s`", name)
	}

	r.functions[name] = Function{Name: name, Parameters: params[1:]}

	return line.WithContent("{#" + name + "}"), nil
}

// resolveCalls expands #call lines into parameter assignments and a gosub
func (r *Reader) resolveCalls(lines []preic.SourceLine) ([]preic.SourceLine, error) {
	result := make([]preic.SourceLine, 0, len(lines))

	for _, line := range lines {
		d := directive.Classify(line.Content)
		if d.Kind != directive.Call {
			result = append(result, line)
			continue
		}

		params, err := parameters(d, line)
		if err != nil {
			return nil, err
		}

		function, ok := r.functions[params[0]]
		if !ok {
			return nil, preic.NewSourceError(preic.ErrUndefinedFunction, line, "target function: `%s`", params[0])
		}

		args := params[1:]
		if len(args) != len(function.Parameters) {
			return nil, preic.NewSourceError(preic.ErrArityMismatch, line, "%s(%s)", function.Name, strings.Join(function.Parameters, ","))
		}

		for i, arg := range args {
			result = append(result, line.WithContent("{@"+function.Parameters[i]+"}="+arg))
		}

		result = append(result, line.WithContent("gosub {#"+function.Name+"}"))
	}

	return result, nil
}
