package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/au3/parser"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"}).TabWidth(lipgloss.NoTabConversion)
	errFuncStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
)

const (
	contextBefore = 2 // Source lines shown above the error line
	contextAfter  = 1 // Source lines shown below the error line
	contextIndent = "   "
)

// positioned is implemented by *parser.LexError and *parser.StructuralError.
type positioned interface {
	GetPosition() parser.Position
	Error() string
}

// ErrorRenderer renders errors with terminal styling and source context.
type ErrorRenderer struct {
	lines []string
}

// NewErrorRenderer creates a renderer with source content for context.
// Without source, errors render as their message only.
func NewErrorRenderer(source []byte) *ErrorRenderer {
	r := &ErrorRenderer{}
	if source != nil {
		r.lines = strings.Split(string(source), "\n")
	}
	return r
}

// Render formats a single error with styling and context. An
// *parser.ErrorList renders every error it holds.
func (r *ErrorRenderer) Render(err error) string {
	var list *parser.ErrorList
	if errors.As(err, &list) {
		return r.RenderAll(list.Errors)
	}

	var e positioned
	if !errors.As(err, &e) || r.lines == nil {
		return err.Error()
	}

	var buf strings.Builder
	buf.WriteString(errorStyle.Render(e.Error()))
	buf.WriteString("\n\n")

	pos := e.GetPosition()

	// A declaration that runs off the end of the file is easier to place
	// from its Func line
	var structErr *parser.StructuralError
	if errors.As(err, &structErr) && structErr.Got.Kind == parser.End && structErr.FuncPos.Line != pos.Line {
		r.writeContext(&buf, structErr.FuncPos)
		buf.WriteString(contextIndent)
		buf.WriteString(errFuncStyle.Render("..."))
		buf.WriteByte('\n')
	}

	r.writeContext(&buf, pos)
	return buf.String()
}

// RenderAll formats multiple errors, separating them with blank lines.
func (r *ErrorRenderer) RenderAll(errs []error) string {
	var buf strings.Builder
	for i, err := range errs {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(strings.TrimRight(r.Render(err), "\n"))
		buf.WriteString("\n")
	}
	return buf.String()
}

// writeContext writes the lines around pos and a caret under its column.
func (r *ErrorRenderer) writeContext(buf *strings.Builder, pos parser.Position) {
	target := pos.Line - 1
	first := max(target-contextBefore, 0)
	last := min(target+contextAfter, len(r.lines)-1)

	for i := first; i <= last; i++ {
		line := strings.TrimRight(r.lines[i], "\r")

		if line != "" {
			buf.WriteString(contextIndent)
			buf.WriteString(errContextStyle.Render(line))
		}
		buf.WriteByte('\n')

		if i == target && pos.Column > 0 {
			buf.WriteString(contextIndent)
			buf.WriteString(caretIndent(line, pos.Column))
			buf.WriteString(errCaretStyle.Render("^"))
			buf.WriteByte('\n')
		}
	}
}

// caretIndent returns the padding that puts a caret under the byte at
// column col of line. Tabs are kept so the caret lines up however the
// terminal expands them.
func caretIndent(line string, col int) string {
	prefix := line[:min(col-1, len(line))]

	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}
