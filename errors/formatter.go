// Package errors provides structured output for AutoIt scan and extraction
// errors. ErrorJSON values carry JSON tags and are encoded by the caller.
package errors

import (
	stderrors "errors"
	"strconv"

	"github.com/robinvdvleuten/au3/parser"
)

// JSONFormatter formats errors as JSON.
type JSONFormatter struct {
	source []byte
}

// JSONFormatterOption configures a JSONFormatter.
type JSONFormatterOption func(*JSONFormatter)

// WithSource sets the source the errors were found in. With it, lexical
// errors carry the text of the offending token.
func WithSource(source []byte) JSONFormatterOption {
	return func(jf *JSONFormatter) {
		jf.source = source
	}
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts ...JSONFormatterOption) *JSONFormatter {
	jf := &JSONFormatter{}
	for _, opt := range opts {
		opt(jf)
	}
	return jf
}

// ErrorJSON represents an error in JSON format.
type ErrorJSON struct {
	Type     string            `json:"type"`
	Message  string            `json:"message"`
	Position *PositionJSON     `json:"position,omitempty"`
	Details  map[string]string `json:"details,omitempty"`
}

// PositionJSON represents a file position in JSON format.
type PositionJSON struct {
	Filename string `json:"filename,omitempty"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// FormatAllToSlice returns errors as a slice of ErrorJSON structs. An
// *parser.ErrorList contributes one entry per error it holds.
func (jf *JSONFormatter) FormatAllToSlice(errs []error) []ErrorJSON {
	result := make([]ErrorJSON, 0, len(errs))
	for _, err := range errs {
		var list *parser.ErrorList
		if stderrors.As(err, &list) {
			result = append(result, jf.FormatAllToSlice(list.Errors)...)
			continue
		}
		result = append(result, jf.toJSON(err))
	}
	return result
}

// toJSON converts an error to ErrorJSON.
func (jf *JSONFormatter) toJSON(err error) ErrorJSON {
	errJSON := ErrorJSON{
		Type:    "error",
		Message: err.Error(),
	}

	var structErr *parser.StructuralError
	var lexErr *parser.LexError
	switch {
	case stderrors.As(err, &structErr):
		errJSON.Type = "structural"
		errJSON.Position = positionJSON(structErr.Pos)
		errJSON.Details = map[string]string{
			"expected":  structErr.Expected.String(),
			"got":       structErr.Got.Kind.String(),
			"func_line": strconv.Itoa(structErr.FuncPos.Line),
		}
		if structErr.Func != "" {
			errJSON.Details["func"] = structErr.Func
		}

	case stderrors.As(err, &lexErr):
		errJSON.Type = "lexical"
		errJSON.Position = positionJSON(lexErr.Pos)
		if jf.source != nil && lexErr.Token.End <= len(jf.source) {
			errJSON.Details = map[string]string{"token": lexErr.Token.String(jf.source)}
		}
	}

	return errJSON
}

func positionJSON(pos parser.Position) *PositionJSON {
	return &PositionJSON{
		Filename: pos.Filename,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
