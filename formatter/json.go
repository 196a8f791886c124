package formatter

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/robinvdvleuten/au3/parser"
)

// JSONFile is the JSON representation of a parsed file.
type JSONFile struct {
	File      string         `json:"file"`
	Lines     int            `json:"lines"`
	Functions []JSONFunction `json:"functions"`
}

// JSONFunction is the JSON representation of a function.
type JSONFunction struct {
	Name      string          `json:"name"`
	StartLine int             `json:"start_line"`
	EndLine   int             `json:"end_line"`
	Start     int             `json:"start"`
	End       int             `json:"end"`
	Signature string          `json:"signature"`
	Params    []JSONParameter `json:"params"`
}

// JSONParameter is the JSON representation of a parameter.
type JSONParameter struct {
	Name    string `json:"name"`
	Const   bool   `json:"const,omitempty"`
	ByRef   bool   `json:"byref,omitempty"`
	Default string `json:"default,omitempty"`
}

// NewJSONFile converts a parsed file. Empty lists are kept as [] rather
// than null.
func (f *Formatter) NewJSONFile(file *parser.File) JSONFile {
	out := JSONFile{
		File:      file.Filename,
		Lines:     file.Lines,
		Functions: make([]JSONFunction, 0, len(file.Functions)),
	}

	for _, fn := range f.functions(file) {
		jf := JSONFunction{
			Name:      fn.Name,
			StartLine: fn.StartLine,
			EndLine:   fn.EndLine,
			Start:     fn.Start,
			End:       fn.End,
			Signature: Signature(fn, file.Source),
			Params:    make([]JSONParameter, 0, len(fn.Params)),
		}
		for _, p := range fn.Params {
			jf.Params = append(jf.Params, JSONParameter{
				Name:    p.Name,
				Const:   p.Const,
				ByRef:   p.ByRef,
				Default: DefaultValue(p, file.Source),
			})
		}
		out.Functions = append(out.Functions, jf)
	}

	return out
}

// FormatJSON writes the file's functions as indented JSON.
func (f *Formatter) FormatJSON(file *parser.File, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false) // & is the AutoIt concatenation operator
	return enc.Encode(f.NewJSONFile(file))
}
