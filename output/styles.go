// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/robinvdvleuten/au3/parser"
)

// Styles provides styled output helpers for the CLI.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer. Colours are
// only emitted when the writer is a terminal that supports them.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

func (s *Styles) fg(text, color string) termenv.Style {
	return s.output.String(text).Foreground(s.output.Color(color))
}

// Success returns a styled success string (green + bold).
func (s *Styles) Success(text string) string {
	return s.fg(text, "2").Bold().String()
}

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string {
	return s.fg(text, "1").Bold().String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.fg(text, "3").Bold().String()
}

// FilePath returns a styled file path (cyan).
func (s *Styles) FilePath(text string) string {
	return s.fg(text, "6").String()
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).Bold().String()
}

// FuncName returns a styled function name (blue + bold).
func (s *Styles) FuncName(text string) string {
	return s.fg(text, "4").Bold().String()
}

// Variable returns a styled variable or macro (yellow).
func (s *Styles) Variable(text string) string {
	return s.fg(text, "3").String()
}

// Literal returns a styled string or number literal (magenta).
func (s *Styles) Literal(text string) string {
	return s.fg(text, "5").String()
}

// Dim returns dimmed text (for secondary information).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).Faint().String()
}

// Token styles text according to the kind of token it was scanned as.
func (s *Styles) Token(kind parser.Kind, text string) string {
	if kind.IsKeyword() {
		return s.Keyword(text)
	}

	switch kind {
	case parser.Variable, parser.Macro, parser.Object:
		return s.Variable(text)
	case parser.String, parser.Decimals, parser.Hex:
		return s.Literal(text)
	case parser.Comment, parser.MultiComment, parser.Multiline:
		return s.Dim(text)
	case parser.AutoItCommand:
		return s.FilePath(text)
	case parser.Error:
		return s.Error(text)
	default:
		return text
	}
}

// Output returns the underlying termenv Output for advanced usage.
func (s *Styles) Output() *termenv.Output {
	return s.output
}
