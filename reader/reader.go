// Package reader reads BASIC source files, resolving pre-processing directives.
package reader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shibukawa/preic"
	"github.com/shibukawa/preic/directive"
)

// Reader reads a source tree. A Reader keeps the declared functions of one
// read and must not be reused for another program.
type Reader struct {
	libraryDir string
	functions  map[string]Function
}

// New creates a Reader that falls back to libraryDir for files not found as given
func New(libraryDir string) *Reader {
	return &Reader{
		libraryDir: libraryDir,
		functions:  make(map[string]Function),
	}
}

// Read reads the file with its includes and returns the normal lines and the
// lines of frequently called sections. #call directives of both streams are
// expanded after the whole tree was read, so calls may precede the function.
func (r *Reader) Read(path string, flags *FlagSet) (normal, frequent []preic.SourceLine, err error) {
	normal, frequent, err = r.readSource(path, flags)
	if err != nil {
		return nil, nil, err
	}

	normal, err = r.resolveCalls(normal)
	if err != nil {
		return nil, nil, err
	}

	frequent, err = r.resolveCalls(frequent)
	if err != nil {
		return nil, nil, err
	}

	return normal, frequent, nil
}

func (r *Reader) readSource(fileName string, flags *FlagSet) ([]preic.SourceLine, []preic.SourceLine, error) {
	path, err := r.findFile(fileName)
	if err != nil {
		return nil, nil, err
	}

	normal, frequent, err := r.readFile(path, flags)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read source file: %s: %w", fileName, err)
	}

	return normal, frequent, nil
}

func (r *Reader) readFile(path string, flags *FlagSet) ([]preic.SourceLine, []preic.SourceLine, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	location := path
	if abs, err := filepath.Abs(path); err == nil {
		location = abs
	}

	var (
		source   []preic.SourceLine
		frequent []preic.SourceLine
		frames   []conditionalFrame
		skipped  int
		number   int
	)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		number++
		line := preic.SourceLine{
			File:    location,
			Number:  number,
			Content: strings.TrimSpace(stripComment(scanner.Text())),
		}

		skip := len(frames) > 0 && frames[len(frames)-1].skips(flags)
		d := directive.Classify(line.Content)

		switch {
		case d.Kind == directive.Ifdef && skip:
			skipped++

		case d.Kind == directive.Else:
			if skipped > 0 {
				continue
			}

			if len(frames) == 0 {
				return nil, nil, preic.NewSourceError(preic.ErrUnmatchedElse, line, "")
			}

			frames[len(frames)-1].whenPresent = !frames[len(frames)-1].whenPresent

		case d.Kind == directive.Endif:
			if skipped > 0 {
				skipped--
				continue
			}

			if len(frames) == 0 {
				return nil, nil, preic.NewSourceError(preic.ErrUnmatchedEndif, line, "")
			}

			frames = frames[:len(frames)-1]

		case skip, line.Content == "":

		case d.Kind == directive.Define:
			name, err := requireParameter(d, line)
			if err != nil {
				return nil, nil, err
			}

			flags.Define(name)

		case d.Kind == directive.Undef:
			name, err := requireParameter(d, line)
			if err != nil {
				return nil, nil, err
			}

			flags.Undef(name)

		case d.Kind == directive.Ifdef:
			name, err := requireParameter(d, line)
			if err != nil {
				return nil, nil, err
			}

			frames = append(frames, conditionalFrame{name: name, whenPresent: true})

		case d.Kind == directive.Include:
			included, includedFrequent, err := r.include(d, line, flags)
			if err != nil {
				return nil, nil, err
			}

			source = append(source, included...)
			frequent = append(frequent, includedFrequent...)

		case d.Kind == directive.Function:
			declared, err := r.declareFunction(d, line)
			if err != nil {
				return nil, nil, err
			}

			source = append(source, declared)

		default:
			source = append(source, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	if len(frames) > 0 || skipped > 0 {
		return nil, nil, preic.NewSourceError(preic.ErrUnterminatedIfdef, preic.SourceLine{File: location, Number: number}, "")
	}

	normal, frequent, err := extractFrequentSections(source, frequent)
	if err != nil {
		return nil, nil, err
	}

	return normal, frequent, nil
}

// findFile resolves the file as given, then under the library directory
func (r *Reader) findFile(fileName string) (string, error) {
	if fileExists(fileName) {
		return fileName, nil
	}

	if r.libraryDir == "" {
		return "", fmt.Errorf("%w: %s", preic.ErrFileNotFound, fileName)
	}

	path := filepath.Join(r.libraryDir, fileName)
	if !fileExists(path) {
		return "", fmt.Errorf("%w: %s, also searched in: %s", preic.ErrFileNotFound, fileName, r.libraryDir)
	}

	return path, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// stripComment cuts the line at the first // that is not inside a string
func stripComment(line string) string {
	quoted := false

	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '"':
			quoted = !quoted
		case !quoted && strings.HasPrefix(line[i:], "//"):
			return line[:i]
		}
	}

	return line
}

func requireParameter(d directive.Directive, line preic.SourceLine) (string, error) {
	if d.Parameter == "" {
		return "", preic.NewSourceError(preic.ErrMissingParameter, line, "%s", d.Kind)
	}

	return d.Parameter, nil
}

// parameters splits the directive parameters, at least one is required
func parameters(d directive.Directive, line preic.SourceLine) ([]string, error) {
	if _, err := requireParameter(d, line); err != nil {
		return nil, err
	}

	params, err := directive.Parameters(d.Parameter)
	if err != nil {
		return nil, preic.NewSourceError(preic.ErrInvalidParameter, line, "%s", d.Kind).WithCause(err)
	}

	if params[0] == "" {
		return nil, preic.NewSourceError(preic.ErrMissingParameter, line, "%s", d.Kind)
	}

	return params, nil
}
