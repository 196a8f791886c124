package parser

import (
	"context"
	"strings"

	"golang.org/x/exp/slices"
)

// File holds the functions extracted from one source buffer.
type File struct {
	Filename  string
	Source    []byte
	Functions []*Function
	Lines     int // Line count as seen by the scanner
}

// Function looks up a function by name, ignoring case as AutoIt does.
func (f *File) Function(name string) *Function {
	i := slices.IndexFunc(f.Functions, func(fn *Function) bool {
		return strings.EqualFold(fn.Name, name)
	})
	if i < 0 {
		return nil
	}
	return f.Functions[i]
}

// ParseFunctions scans data and extracts every Func ... EndFunc declaration.
//
// Scanning does not stop at the first problem. Error tokens between
// functions are recorded as *LexError, declarations that cannot be
// extracted as *StructuralError, and scanning resumes after them. The File
// is returned in every case except cancellation; if anything failed the
// error is an *ErrorList.
func ParseFunctions(ctx context.Context, filename string, data []byte) (*File, error) {
	internerCap := len(data) / 200
	if internerCap < 64 {
		internerCap = 64
	}

	s := NewScanner(data)
	x := newExtractor(s, filename, NewInterner(internerCap))

	file := &File{
		Filename: filename,
		Source:   data,
	}

	var errs []error
	for {
		tok := s.Next()

		switch tok.Kind {
		case End:
			file.Lines = s.Line()
			if len(errs) > 0 {
				return file, &ErrorList{Errors: errs}
			}
			return file, nil

		case Error:
			errs = append(errs, newLexError(filename, data, tok))

		case Func:
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			fn, err := x.function()
			if err != nil {
				errs = append(errs, err)
				continue
			}
			file.Functions = append(file.Functions, fn)
		}
	}
}

// ParseString is a convenience wrapper around ParseFunctions.
func ParseString(ctx context.Context, filename, source string) (*File, error) {
	return ParseFunctions(ctx, filename, []byte(source))
}
