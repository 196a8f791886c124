package output

import (
	"bytes"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/muesli/termenv"

	"github.com/robinvdvleuten/au3/parser"
)

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	assert.NotZero(t, styles)
	assert.NotZero(t, styles.Output())
}

func TestStylesPlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	// A buffer is not a terminal, so no escape sequences are emitted
	assert.Equal(t, termenv.Ascii, styles.Output().Profile)

	tests := []struct {
		name  string
		style func(string) string
	}{
		{"Success", styles.Success},
		{"Error", styles.Error},
		{"Warning", styles.Warning},
		{"FilePath", styles.FilePath},
		{"Keyword", styles.Keyword},
		{"FuncName", styles.FuncName},
		{"Variable", styles.Variable},
		{"Literal", styles.Literal},
		{"Dim", styles.Dim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "Func _Main", tt.style("Func _Main"))
		})
	}
}

func TestStylesToken(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	for kind := parser.Start; kind <= parser.Error; kind++ {
		t.Run(kind.String(), func(t *testing.T) {
			assert.Equal(t, "text", styles.Token(kind, "text"))
		})
	}
}

func TestStylesColoured(t *testing.T) {
	var buf bytes.Buffer
	styles := &Styles{output: termenv.NewOutput(&buf, termenv.WithProfile(termenv.ANSI))}

	keyword := styles.Token(parser.Func, "Func")
	assert.Contains(t, keyword, "Func")
	assert.NotEqual(t, "Func", keyword)

	// Plain identifiers are never styled
	assert.Equal(t, "MsgBox", styles.Token(parser.Word, "MsgBox"))
	assert.Equal(t, "(", styles.Token(parser.OpenedParen, "("))
}
