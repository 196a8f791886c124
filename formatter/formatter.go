// Package formatter renders the functions extracted from AutoIt sources.
//
// Four layouts are available: a per-function summary listing every
// parameter on its own line (Format), one declaration line per function
// (FormatSignatures), the verbatim Func ... EndFunc text (FormatSource) and
// JSON (FormatJSON).
package formatter

import (
	"io"
	"strconv"
	"strings"

	"github.com/maruel/natural"
	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/au3/parser"
)

const (
	// DefaultIndentation is the indentation of parameter lines in the summary.
	DefaultIndentation = 4

	// lineNumberSpacing separates line numbers from signatures.
	lineNumberSpacing = 2
)

// Order selects the order functions are rendered in.
type Order int

const (
	// OrderSource keeps declaration order.
	OrderSource Order = iota
	// OrderName sorts by name, case-insensitively, with numbers compared by
	// value so _Step2 comes before _Step10.
	OrderName
)

// Formatter renders extracted functions.
type Formatter struct {
	// Indentation is the number of spaces before each parameter line.
	Indentation int

	// NameWidth is the width the parameter declarations of the summary are
	// padded to before " = default". If 0, each function is aligned to its
	// widest parameter that has a default.
	NameWidth int

	// LineNumbers prefixes each function with the line it starts on.
	LineNumbers bool

	// Order is the order functions are rendered in.
	Order Order
}

// Option is a functional option for configuring a Formatter.
type Option func(*Formatter)

// WithIndentation sets the indentation of parameter lines.
func WithIndentation(n int) Option {
	return func(f *Formatter) {
		f.Indentation = n
	}
}

// WithNameWidth sets a fixed width for parameter declarations.
func WithNameWidth(n int) Option {
	return func(f *Formatter) {
		f.NameWidth = n
	}
}

// WithLineNumbers enables or disables line number prefixes.
func WithLineNumbers(enabled bool) Option {
	return func(f *Formatter) {
		f.LineNumbers = enabled
	}
}

// WithOrder sets the order functions are rendered in.
func WithOrder(order Order) Option {
	return func(f *Formatter) {
		f.Order = order
	}
}

// New creates a new Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		Indentation: DefaultIndentation,
		LineNumbers: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Format writes the summary of every function followed by the file's line
// count:
//
//	12: Func _Add
//	    $a
//	    $b = 1
//
//	Lines: 15
func (f *Formatter) Format(file *parser.File, w io.Writer) error {
	var buf strings.Builder
	buf.Grow(len(file.Functions) * 64)

	indent := strings.Repeat(" ", f.Indentation)

	for _, fn := range f.functions(file) {
		if f.LineNumbers {
			buf.WriteString(strconv.Itoa(fn.StartLine))
			buf.WriteString(": ")
		}
		buf.WriteString("Func ")
		buf.WriteString(fn.Name)
		buf.WriteByte('\n')

		heads := make([]string, len(fn.Params))
		width := f.NameWidth
		for i, p := range fn.Params {
			heads[i] = paramHead(p)
			if f.NameWidth == 0 && p.HasDefault() {
				width = max(width, runewidth.StringWidth(heads[i]))
			}
		}

		for i, p := range fn.Params {
			buf.WriteString(indent)
			if !p.HasDefault() {
				buf.WriteString(heads[i])
				buf.WriteByte('\n')
				continue
			}
			buf.WriteString(runewidth.FillRight(heads[i], width))
			buf.WriteString(" = ")
			buf.WriteString(DefaultValue(p, file.Source))
			buf.WriteByte('\n')
		}

		buf.WriteByte('\n')
	}

	buf.WriteString("Lines: ")
	buf.WriteString(strconv.Itoa(file.Lines))
	buf.WriteByte('\n')

	_, err := io.WriteString(w, buf.String())
	return err
}

// FormatSignatures writes one declaration line per function. With line
// numbers enabled the numbers are right-aligned in a shared column.
func (f *Formatter) FormatSignatures(file *parser.File, w io.Writer) error {
	functions := f.functions(file)

	numWidth := 0
	if f.LineNumbers {
		for _, fn := range functions {
			numWidth = max(numWidth, len(strconv.Itoa(fn.StartLine)))
		}
	}

	var buf strings.Builder
	for _, fn := range functions {
		if f.LineNumbers {
			buf.WriteString(runewidth.FillLeft(strconv.Itoa(fn.StartLine), numWidth))
			buf.WriteString(strings.Repeat(" ", lineNumberSpacing))
		}
		buf.WriteString(Signature(fn, file.Source))
		buf.WriteByte('\n')
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// FormatSource writes the verbatim text of every function, separated by
// blank lines.
func (f *Formatter) FormatSource(file *parser.File, w io.Writer) error {
	var buf strings.Builder
	for i, fn := range f.functions(file) {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(fn.Source(file.Source))
		buf.WriteByte('\n')
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// functions returns the file's functions in the configured order.
func (f *Formatter) functions(file *parser.File) []*parser.Function {
	if f.Order != OrderName {
		return file.Functions
	}

	sorted := slices.Clone(file.Functions)
	slices.SortStableFunc(sorted, func(a, b *parser.Function) int {
		x, y := strings.ToLower(a.Name), strings.ToLower(b.Name)
		switch {
		case natural.Less(x, y):
			return -1
		case natural.Less(y, x):
			return 1
		}
		return 0
	})
	return sorted
}

// Signature renders a function declaration on one line, normalizing the
// whitespace inside the parameter list:
//
//	Func _Resize(ByRef $aItems, Const $iSize = UBound($aItems) * 2)
func Signature(fn *parser.Function, source []byte) string {
	var buf strings.Builder
	buf.WriteString("Func ")
	buf.WriteString(fn.Name)
	buf.WriteByte('(')
	for i, p := range fn.Params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(Parameter(p, source))
	}
	buf.WriteByte(')')
	return buf.String()
}

// Parameter renders one parameter declaration, such as "Const ByRef $b = 1".
func Parameter(p *parser.Parameter, source []byte) string {
	head := paramHead(p)
	if !p.HasDefault() {
		return head
	}
	return head + " = " + DefaultValue(p, source)
}

// DefaultValue renders a parameter's default value on a single line. Runs of
// blanks, line continuations and comments collapse into one space.
func DefaultValue(p *parser.Parameter, source []byte) string {
	var buf strings.Builder
	pending := false

	for _, tok := range p.Default {
		if tok.IsOneOf(parser.Space, parser.LineFeed, parser.Multiline, parser.Comment) {
			pending = buf.Len() > 0
			continue
		}
		if pending {
			buf.WriteByte(' ')
			pending = false
		}
		buf.Write(tok.Bytes(source))
	}

	return buf.String()
}

func paramHead(p *parser.Parameter) string {
	var head string
	if p.Const {
		head += "Const "
	}
	if p.ByRef {
		head += "ByRef "
	}
	return head + "$" + p.Name
}
