package parser

import (
	"strings"
)

// TokenSource is a forward-only stream of tokens. *Scanner implements it.
type TokenSource interface {
	// Next returns the next token.
	Next() Token
	// NextKind skips ahead to the next token of kind, or to an Error or End.
	NextKind(kind Kind) Token
	// Current returns the token most recently returned by Next or NextKind.
	Current() Token
	// Source returns the buffer the tokens point into.
	Source() []byte
}

var _ TokenSource = (*Scanner)(nil)

// Span is a half-open byte range in the source buffer.
type Span struct {
	Start int // Starting byte offset (inclusive)
	End   int // Ending byte offset (exclusive)
}

// Text extracts the source text for this span.
func (s Span) Text(source []byte) string {
	if s.Start < 0 || s.End <= s.Start || s.End > len(source) {
		return ""
	}
	return string(source[s.Start:s.End])
}

// Parameter is one entry of a function's parameter list.
//
// Example:
//
//	Const ByRef $aItems = Default
type Parameter struct {
	Name  string // Variable name without the $ sigil
	Token Token  // The Variable token
	Const bool
	ByRef bool

	// Default holds the raw tokens after "=", whitespace included, up to the
	// comma or closing parenthesis that ends the parameter.
	Default []Token
}

// HasDefault reports whether the parameter declares a default value.
func (p *Parameter) HasDefault() bool {
	return len(p.Default) > 0
}

// DefaultText returns the default value expression as written, without the
// surrounding whitespace.
func (p *Parameter) DefaultText(source []byte) string {
	if len(p.Default) == 0 {
		return ""
	}
	span := Span{Start: p.Default[0].Start, End: p.Default[len(p.Default)-1].End}
	return strings.TrimSpace(span.Text(source))
}

// Function describes one Func ... EndFunc declaration.
type Function struct {
	Name      string
	NameToken Token
	Start     int // Offset of the Func keyword
	End       int // Offset just past the EndFunc keyword
	StartLine int
	EndLine   int
	Params    []*Parameter
}

// Span returns the byte range from Func to the end of EndFunc.
func (f *Function) Span() Span {
	return Span{Start: f.Start, End: f.End}
}

// Source returns the full text of the declaration.
func (f *Function) Source(source []byte) string {
	return f.Span().Text(source)
}

// Param looks up a parameter by name, ignoring case. The $ sigil is optional.
func (f *Function) Param(name string) *Parameter {
	name = strings.TrimPrefix(name, "$")
	for _, p := range f.Params {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// ExtractFunction reads one function declaration from src. The source must be
// positioned at a Func token or before one; on success it is left on the
// matching EndFunc.
//
// If the stream reaches an Error or End token before the name, the opening
// parenthesis, a complete parameter list or EndFunc, a *StructuralError is
// returned and no Function.
func ExtractFunction(src TokenSource) (*Function, error) {
	return newExtractor(src, "", NewInterner(16)).function()
}

// extractor assembles Function records from a token stream.
type extractor struct {
	src      TokenSource
	source   []byte
	filename string
	interner *Interner

	// State of the declaration being extracted, for error reporting
	funcTok Token
	name    string
}

func newExtractor(src TokenSource, filename string, interner *Interner) *extractor {
	return &extractor{
		src:      src,
		source:   src.Source(),
		filename: filename,
		interner: interner,
	}
}

func (x *extractor) function() (*Function, error) {
	x.funcTok = x.src.Current()
	x.name = ""

	if x.funcTok.IsNot(Func) {
		x.funcTok = x.src.NextKind(Func)
		if x.funcTok.IsNot(Func) {
			return nil, x.fail(Func, x.funcTok)
		}
	}

	name := x.src.NextKind(Word)
	if name.IsNot(Word) {
		return nil, x.fail(Word, name)
	}
	x.name = x.interner.InternBytes(name.Bytes(x.source))

	if tok := x.src.NextKind(OpenedParen); tok.IsNot(OpenedParen) {
		return nil, x.fail(OpenedParen, tok)
	}

	params, err := x.parameters()
	if err != nil {
		return nil, err
	}

	end := x.src.NextKind(EndFunc)
	if end.IsNot(EndFunc) {
		return nil, x.fail(EndFunc, end)
	}

	return &Function{
		Name:      x.name,
		NameToken: name,
		Start:     x.funcTok.Start,
		End:       end.End,
		StartLine: x.funcTok.Line,
		EndLine:   end.Line,
		Params:    params,
	}, nil
}

// parameters reads parameter declarations until the ")" that closes the
// list. Parentheses that are not part of a default value are balanced with
// depth; any other token between parameters is skipped.
func (x *extractor) parameters() ([]*Parameter, error) {
	var params []*Parameter
	depth := 0

	for {
		tok := x.src.Next()

		switch tok.Kind {
		case Error, End:
			return nil, x.fail(ClosedParen, tok)

		case OpenedParen:
			depth++

		case ClosedParen:
			if depth == 0 {
				return params, nil
			}
			depth--

		case Const, ByRef, Variable:
			param, err := x.parameter()
			if err != nil {
				return nil, err
			}
			params = append(params, param)

			// The parameter stopped on a Comma or on the list's ")"
			if x.src.Current().Is(ClosedParen) {
				return params, nil
			}
		}
	}
}

// parameter reads one parameter starting at the current token, which is a
// Const, ByRef or Variable token. It returns positioned on the Comma or
// ClosedParen that ends the parameter. Modifiers must be followed by a
// Variable before the parameter ends.
func (x *extractor) parameter() (*Parameter, error) {
	p := &Parameter{}

	tok := x.src.Current()
	for tok.IsNot(Variable) {
		switch tok.Kind {
		case Const:
			p.Const = true
		case ByRef:
			p.ByRef = true
		case Comma, ClosedParen, Error, End:
			return nil, x.fail(Variable, tok)
		}
		tok = x.src.Next()
	}

	p.Token = tok
	p.Name = x.interner.InternBytes(tok.Bytes(x.source)[1:])

	// Either "=" introduces a default value, or the parameter ends here
	for {
		tok = x.src.Next()
		if tok.Is(Equal) {
			break
		}
		switch tok.Kind {
		case Comma, ClosedParen:
			return p, nil
		case Error, End:
			return nil, x.fail(ClosedParen, tok)
		}
	}

	depth := 0
	for {
		tok = x.src.Next()

		switch tok.Kind {
		case Error, End:
			return nil, x.fail(ClosedParen, tok)
		case Comma:
			if depth == 0 {
				return p, nil
			}
		case OpenedParen:
			depth++
		case ClosedParen:
			if depth == 0 {
				return p, nil
			}
			depth--
		}

		p.Default = append(p.Default, tok)
	}
}

func (x *extractor) fail(expected Kind, got Token) error {
	err := &StructuralError{
		Pos:      got.Pos(x.filename),
		FuncPos:  x.funcTok.Pos(x.filename),
		Func:     x.name,
		Expected: expected,
		Got:      got,
	}
	if got.Is(Error) {
		err.Cause = newLexError(x.filename, x.source, got)
	}
	return err
}
