package errors

import (
	stderrors "errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/goccy/go-json"

	"github.com/robinvdvleuten/au3/parser"
)

func TestJSONFormatter_FormatLexError(t *testing.T) {
	source := []byte("$x = 1 ! 2")
	err := &parser.LexError{
		Pos:     parser.Position{Filename: "a.au3", Line: 1, Column: 8},
		Token:   parser.Token{Kind: parser.Error, Start: 7, End: 8, Line: 1, Column: 8},
		Message: "unexpected character '!'",
	}

	data, jsonErr := json.Marshal(NewJSONFormatter(WithSource(source)).FormatAllToSlice([]error{err})[0])
	assert.NoError(t, jsonErr)

	expected := `{"type":"lexical","message":"a.au3:1:8: unexpected character '!'",` +
		`"position":{"filename":"a.au3","line":1,"column":8},"details":{"token":"!"}}`
	assert.Equal(t, expected, string(data))
}

func TestJSONFormatter_FormatStructuralError(t *testing.T) {
	err := &parser.StructuralError{
		Pos:      parser.Position{Line: 4, Column: 1},
		FuncPos:  parser.Position{Line: 3, Column: 1},
		Func:     "B",
		Expected: parser.ClosedParen,
		Got:      parser.Token{Kind: parser.End},
	}

	result := NewJSONFormatter().FormatAllToSlice([]error{err})
	assert.Equal(t, 1, len(result))
	assert.Equal(t, "structural", result[0].Type)
	assert.Equal(t, &PositionJSON{Line: 4, Column: 1}, result[0].Position)
	assert.Equal(t, map[string]string{
		"expected":  "ClosedParen",
		"got":       "End",
		"func_line": "3",
		"func":      "B",
	}, result[0].Details)
}

func TestJSONFormatter_FormatPlainError(t *testing.T) {
	data, err := json.Marshal(NewJSONFormatter().FormatAllToSlice([]error{stderrors.New("read failed")}))
	assert.NoError(t, err)
	assert.Equal(t, `[{"type":"error","message":"read failed"}]`, string(data))
}

func TestJSONFormatter_FormatAllFlattensErrorList(t *testing.T) {
	list := &parser.ErrorList{Errors: []error{
		&parser.LexError{Pos: parser.Position{Line: 1, Column: 1}, Message: "unterminated string"},
		stderrors.New("other"),
	}}

	result := NewJSONFormatter().FormatAllToSlice([]error{list})
	assert.Equal(t, 2, len(result))
	assert.Equal(t, "lexical", result[0].Type)
	assert.Zero(t, result[0].Details)
	assert.Equal(t, "error", result[1].Type)
}

func TestJSONFormatter_FormatAllEmpty(t *testing.T) {
	result := NewJSONFormatter().FormatAllToSlice(nil)
	assert.True(t, result != nil)
	assert.Equal(t, 0, len(result))
}
