package reader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shibukawa/preic"
	"github.com/shibukawa/preic/directive"
)

// IncludeMethod selects how an included file is turned into BASIC lines
type IncludeMethod int

const (
	// IncludeCode reads the file as source code
	IncludeCode IncludeMethod = iota
	// IncludeData embeds the bytes as DATA statements
	IncludeData
	// IncludePrint embeds the bytes as PRINT statements of screen characters
	IncludePrint
	// IncludeRemark embeds the bytes as hex escapes in REM statements
	IncludeRemark
)

var includeMethods = map[string]IncludeMethod{
	"code":   IncludeCode,
	"data":   IncludeData,
	"print":  IncludePrint,
	"remark": IncludeRemark,
}

func (m IncludeMethod) String() string {
	for id, method := range includeMethods {
		if method == m {
			return id
		}
	}

	return "unknown"
}

// include handles #include file[,method[,start[,end]]]
func (r *Reader) include(d directive.Directive, line preic.SourceLine, flags *FlagSet) ([]preic.SourceLine, []preic.SourceLine, error) {
	params, err := parameters(d, line)
	if err != nil {
		return nil, nil, err
	}

	if len(params) > 4 {
		return nil, nil, preic.NewSourceError(preic.ErrUnrecognisedParameter, line, "%v", params[4:])
	}

	params = append(params, make([]string, 4-len(params))...)
	fileName := params[0]

	method := IncludeCode
	if params[1] != "" {
		var ok bool
		if method, ok = includeMethods[params[1]]; !ok {
			return nil, nil, preic.NewSourceError(preic.ErrUnknownIncludeMethod, line, "%s", params[1])
		}
	}

	start, err := parseOffset(params[2], line)
	if err != nil {
		return nil, nil, err
	}

	end, err := parseOffset(params[3], line)
	if err != nil {
		return nil, nil, err
	}

	if method == IncludeCode {
		if start != nil || end != nil {
			return nil, nil, preic.NewSourceError(preic.ErrOffsetNotAllowed, line, "")
		}

		return r.readSource(fileName, flags)
	}

	data, err := r.readBinaryFile(fileName, start, end, line)
	if err != nil {
		return nil, nil, err
	}

	var contents []string

	switch method {
	case IncludeData:
		contents = dataLines(data)
	case IncludePrint:
		contents = printLines(data)
	case IncludeRemark:
		contents, err = remarkLines(data, line)
		if err != nil {
			return nil, nil, err
		}
	}

	embedded := make([]preic.SourceLine, len(contents))
	for i, content := range contents {
		embedded[i] = line.WithContent(content)
	}

	return embedded, nil, nil
}

// parseOffset converts an offset parameter, an empty parameter means absent
func parseOffset(param string, line preic.SourceLine) (*int, error) {
	if param == "" {
		return nil, nil
	}

	offset, err := strconv.Atoi(param)
	if err != nil {
		return nil, preic.NewSourceError(preic.ErrInvalidOffset, line, "failed to parse include file offset '%s'", param).WithCause(err)
	}

	return &offset, nil
}

// readBinaryFile reads the included file and slices it by the offsets
func (r *Reader) readBinaryFile(fileName string, start, end *int, line preic.SourceLine) ([]byte, error) {
	path, err := r.findFile(fileName)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read binary file: %s: %w", fileName, err)
	}

	from, to := 0, len(data)
	if start != nil {
		from = *start
	}

	if end != nil {
		to = *end
	}

	if from < 0 || from >= len(data) {
		return nil, preic.NewSourceError(preic.ErrInvalidOffset, line, "start offset %d, must be in range (0 .. %d)", from, len(data)-1)
	}

	if to <= from || to > len(data) {
		return nil, preic.NewSourceError(preic.ErrInvalidOffset, line, "end offset %d, must be in range (%d .. %d)", to, from+1, len(data))
	}

	return data[from:to], nil
}
