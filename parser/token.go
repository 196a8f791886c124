package parser

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Kind identifies the lexical category of a token.
type Kind uint8

const (
	// Special tokens
	Start Kind = iota
	End
	Space
	LineFeed

	// Numbers
	Decimals // 123
	Hex      // 0x1F

	// Keywords
	False
	True
	ContinueCase
	ContinueLoop
	Default
	Dim
	ReDim
	Global
	Local
	Const
	ByRef
	Do
	Until
	Enum
	Exit
	ExitLoop
	For
	To
	In
	Step
	Next
	Func
	Return
	EndFunc
	If
	Then
	ElseIf
	Else
	EndIf
	Null
	Select
	Case
	EndSelect
	Static
	Switch
	EndSwitch
	While
	WEnd
	With
	EndWith

	Word // any non-keyword identifier

	// Symbols
	OpenedParen  // (
	ClosedParen  // )
	OpenedSquare // [
	ClosedSquare // ]
	LessThan     // <
	GreaterThan  // >
	Equal        // =
	Plus         // +
	Minus        // -
	Asterisk     // *
	Slash        // /
	Power        // ^

	// Sigil-introduced tokens
	AutoItCommand // #include <File.au3>
	Variable      // $name
	Object        // .Property
	Multiline     // _ before a line break

	Comma        // ,
	Colon        // :
	String       // "text" or 'text'
	Comment      // ; text
	MultiComment // #cs ... #ce
	Concatenate  // &
	Questionmark // ?
	Macro        // @ScriptDir
	Error

	kindCount
)

var kindNames = [kindCount]string{
	Start:    "Start",
	End:      "End",
	Space:    "Space",
	LineFeed: "LineFeed",
	Decimals: "Decimals",
	Hex:      "Hex",

	False:        "False",
	True:         "True",
	ContinueCase: "ContinueCase",
	ContinueLoop: "ContinueLoop",
	Default:      "Default",
	Dim:          "Dim",
	ReDim:        "ReDim",
	Global:       "Global",
	Local:        "Local",
	Const:        "Const",
	ByRef:        "ByRef",
	Do:           "Do",
	Until:        "Until",
	Enum:         "Enum",
	Exit:         "Exit",
	ExitLoop:     "ExitLoop",
	For:          "For",
	To:           "To",
	In:           "In",
	Step:         "Step",
	Next:         "Next",
	Func:         "Func",
	Return:       "Return",
	EndFunc:      "EndFunc",
	If:           "If",
	Then:         "Then",
	ElseIf:       "ElseIf",
	Else:         "Else",
	EndIf:        "EndIf",
	Null:         "Null",
	Select:       "Select",
	Case:         "Case",
	EndSelect:    "EndSelect",
	Static:       "Static",
	Switch:       "Switch",
	EndSwitch:    "EndSwitch",
	While:        "While",
	WEnd:         "WEnd",
	With:         "With",
	EndWith:      "EndWith",

	Word: "Word",

	OpenedParen:  "OpenedParen",
	ClosedParen:  "ClosedParen",
	OpenedSquare: "OpenedSquare",
	ClosedSquare: "ClosedSquare",
	LessThan:     "LessThan",
	GreaterThan:  "GreaterThan",
	Equal:        "Equal",
	Plus:         "Plus",
	Minus:        "Minus",
	Asterisk:     "Asterisk",
	Slash:        "Slash",
	Power:        "Power",

	AutoItCommand: "AutoItCommand",
	Variable:      "Variable",
	Object:        "Object",
	Multiline:     "Multiline",

	Comma:        "Comma",
	Colon:        "Colon",
	String:       "String",
	Comment:      "Comment",
	MultiComment: "MultiComment",
	Concatenate:  "Concatenate",
	Questionmark: "Questionmark",
	Macro:        "Macro",
	Error:        "Error",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= False && k <= EndWith
}

// Token is one lexical unit. It does not hold any text: Start and End are
// byte offsets into the source buffer the token was scanned from, and the
// text is recovered with String or Bytes.
type Token struct {
	Kind   Kind
	Start  int // Byte offset into source buffer
	End    int // End offset (exclusive)
	Line   int // Line number (1-indexed)
	Column int // Byte column (1-indexed)
}

// String materializes the token text from the source buffer.
func (t Token) String(source []byte) string {
	if t.Start < 0 || t.End > len(source) || t.Start > t.End {
		return ""
	}
	return string(source[t.Start:t.End])
}

// Bytes returns a zero-copy view of the token text.
func (t Token) Bytes(source []byte) []byte {
	if t.Start < 0 || t.End > len(source) || t.Start > t.End {
		return nil
	}
	return source[t.Start:t.End]
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}

func (t Token) Is(kind Kind) bool    { return t.Kind == kind }
func (t Token) IsNot(kind Kind) bool { return t.Kind != kind }

// IsOneOf reports whether the token's kind is any of kinds.
func (t Token) IsOneOf(kinds ...Kind) bool {
	return slices.Contains(kinds, t.Kind)
}

// Pos returns the position of the token's first byte.
func (t Token) Pos(filename string) Position {
	return Position{
		Filename: filename,
		Offset:   t.Start,
		Line:     t.Line,
		Column:   t.Column,
	}
}

// Position represents a location in a source file.
type Position struct {
	Filename string
	Offset   int // Byte offset
	Line     int // Line number (1-indexed)
	Column   int // Column number (1-indexed)
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
