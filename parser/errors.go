package parser

import (
	"bytes"
	"fmt"
)

// LexError reports an Error token: a byte the scanner does not recognize, or
// a string, directive or block comment that runs off the end of the buffer.
type LexError struct {
	Pos     Position
	Token   Token
	Message string
}

// newLexError describes an Error token scanned from source.
func newLexError(filename string, source []byte, tok Token) *LexError {
	text := tok.Bytes(source)

	var msg string
	switch {
	case len(text) == 0:
		msg = "invalid token"
	case text[0] == '"' || text[0] == '\'':
		msg = "unterminated string"
	case bytes.HasPrefix(text, []byte("#cs")) || bytes.HasPrefix(text, []byte("#comment-start")):
		msg = "unterminated block comment, missing #ce"
	case text[0] == '#':
		msg = "directive is not terminated by a line feed"
	default:
		msg = fmt.Sprintf("unexpected character %q", text[0])
	}

	return &LexError{
		Pos:     tok.Pos(filename),
		Token:   tok,
		Message: msg,
	}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// GetPosition returns where the invalid token starts.
func (e *LexError) GetPosition() Position {
	return e.Pos
}

// StructuralError reports a Func declaration that could not be extracted:
// the token stream hit an Error or End before a required token, or a
// parameter modifier was not followed by its variable.
type StructuralError struct {
	Pos      Position // Where the search for Expected stopped
	FuncPos  Position // Position of the Func keyword
	Func     string   // Function name, empty if the name itself is missing
	Expected Kind
	Got      Token // The token that stopped the search
	Cause    error // *LexError when Got is an Error token
}

func (e *StructuralError) Error() string {
	name := e.Func
	if name == "" {
		name = "<unnamed>"
	}

	var reached string
	switch e.Got.Kind {
	case End:
		reached = "reached end of input"
	case Error:
		reached = "hit an invalid token"
	default:
		reached = "got " + e.Got.Kind.String()
	}

	return fmt.Sprintf("%s: Func %s (line %d): expected %s, %s",
		e.Pos, name, e.FuncPos.Line, e.Expected, reached)
}

// GetPosition returns where the extraction stopped.
func (e *StructuralError) GetPosition() Position {
	return e.Pos
}

func (e *StructuralError) Unwrap() error {
	return e.Cause
}

// ErrorList collects every error found in one file.
type ErrorList struct {
	Errors []error
}

func (e *ErrorList) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors occurred", len(e.Errors))
}

// Unwrap returns the underlying errors for error unwrapping
func (e *ErrorList) Unwrap() []error {
	return e.Errors
}
