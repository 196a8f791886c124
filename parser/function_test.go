package parser

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

// nonSpaceKinds drops whitespace tokens from a default-value sequence.
func nonSpaceKinds(tokens []Token) []Kind {
	var kinds []Kind
	for _, tok := range tokens {
		if tok.IsOneOf(Space, LineFeed) {
			continue
		}
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func extract(t *testing.T, source string) (*Function, []byte) {
	t.Helper()
	src := []byte(source)
	fn, err := ExtractFunction(NewScanner(src))
	assert.NoError(t, err)
	return fn, src
}

func TestExtractFunctionSignature(t *testing.T) {
	fn, source := extract(t, "Func Foo($a, Const ByRef $b = 1 + 2)\nEndFunc")

	assert.Equal(t, "Foo", fn.Name)
	assert.Equal(t, 1, fn.StartLine)
	assert.Equal(t, 2, fn.EndLine)
	assert.Equal(t, 0, fn.Start)
	assert.Equal(t, len(source), fn.End)
	assert.Equal(t, 2, len(fn.Params))

	a := fn.Params[0]
	assert.Equal(t, "a", a.Name)
	assert.Equal(t, "$a", a.Token.String(source))
	assert.False(t, a.Const)
	assert.False(t, a.ByRef)
	assert.False(t, a.HasDefault())

	b := fn.Params[1]
	assert.Equal(t, "b", b.Name)
	assert.True(t, b.Const)
	assert.True(t, b.ByRef)
	assert.True(t, b.HasDefault())
	assert.Equal(t, []Kind{Decimals, Plus, Decimals}, nonSpaceKinds(b.Default))
	assert.Equal(t, "1 + 2", b.DefaultText(source))
}

func TestExtractFunctionNestedDefault(t *testing.T) {
	fn, source := extract(t, "Func F($a = (1+2), $b)\nEndFunc")

	assert.Equal(t, 2, len(fn.Params))

	a := fn.Params[0]
	assert.Equal(t, []Kind{OpenedParen, Decimals, Plus, Decimals, ClosedParen}, nonSpaceKinds(a.Default))
	assert.Equal(t, "(1+2)", a.DefaultText(source))

	assert.Equal(t, "b", fn.Params[1].Name)
	assert.False(t, fn.Params[1].HasDefault())
}

func TestExtractFunctionParameters(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		params   []string
		defaults []string
	}{
		{
			name:   "no parameters",
			source: "Func Main()\nEndFunc",
		},
		{
			name:   "space before paren",
			source: "Func Main ()\nEndFunc",
		},
		{
			name:     "call in default",
			source:   "Func Log($sMsg, $iLevel = Max(1, 2))\nEndFunc",
			params:   []string{"sMsg", "iLevel"},
			defaults: []string{"", "Max(1, 2)"},
		},
		{
			name:     "string and macro defaults",
			source:   "Func Open($sPath = @ScriptDir & \"\\a,b\", $sMode = 'r')\nEndFunc",
			params:   []string{"sPath", "sMode"},
			defaults: []string{`@ScriptDir & "\a,b"`, "'r'"},
		},
		{
			name:     "keyword default",
			source:   "Func Show($hWnd = Default, $bVisible = True)\nEndFunc",
			params:   []string{"hWnd", "bVisible"},
			defaults: []string{"Default", "True"},
		},
		{
			name:     "negative hex default",
			source:   "Func Mask($i = -0xFF)\nEndFunc",
			params:   []string{"i"},
			defaults: []string{"-0xFF"},
		},
		{
			name:     "continuation lines",
			source:   "Func Wide($a, _\n\t\t$b = 2, _\n\t\t$c)\nEndFunc",
			params:   []string{"a", "b", "c"},
			defaults: []string{"", "2", ""},
		},
		{
			name:     "comment between parameters",
			source:   "Func C($a, ; first\n$b)\nEndFunc",
			params:   []string{"a", "b"},
			defaults: []string{"", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, source := extract(t, tt.source)

			assert.Equal(t, len(tt.params), len(fn.Params))
			for i, p := range fn.Params {
				assert.Equal(t, tt.params[i], p.Name)
				assert.Equal(t, tt.defaults[i], p.DefaultText(source))
			}
		})
	}
}

func TestExtractFunctionModifiers(t *testing.T) {
	fn, _ := extract(t, "Func M(ByRef $a, Const $b, ByRef Const $c, Const Const $d)\nEndFunc")

	assert.Equal(t, 4, len(fn.Params))

	want := []struct{ isConst, isByRef bool }{
		{false, true},
		{true, false},
		{true, true},
		{true, false},
	}
	for i, p := range fn.Params {
		assert.Equal(t, want[i].isConst, p.Const, "param %s", p.Name)
		assert.Equal(t, want[i].isByRef, p.ByRef, "param %s", p.Name)
	}
}

func TestExtractFunctionBounds(t *testing.T) {
	source := []byte("; header\n\nFunc Body($x)\n\tReturn $x * 2\nEndFunc ; trailing\n")
	s := NewScanner(source)

	fn, err := ExtractFunction(s)
	assert.NoError(t, err)

	assert.Equal(t, 3, fn.StartLine)
	assert.Equal(t, 5, fn.EndLine)
	assert.Equal(t, "Func Body($x)\n\tReturn $x * 2\nEndFunc", fn.Source(source))
	assert.Equal(t, "Body", fn.NameToken.String(source))

	// The scanner is left on EndFunc
	assert.Equal(t, EndFunc, s.Current().Kind)
}

func TestExtractFunctionFromFuncToken(t *testing.T) {
	s := NewScanner([]byte("Func A()\nEndFunc\nFunc B($x)\nEndFunc"))

	assert.Equal(t, Func, s.NextKind(Func).Kind)
	first, err := ExtractFunction(s)
	assert.NoError(t, err)
	assert.Equal(t, "A", first.Name)

	second, err := ExtractFunction(s)
	assert.NoError(t, err)
	assert.Equal(t, "B", second.Name)
	assert.Equal(t, 3, second.StartLine)
}

func TestExtractFunctionParamLookup(t *testing.T) {
	fn, _ := extract(t, "Func P($hWnd, $sText)\nEndFunc")

	assert.Equal(t, "hWnd", fn.Param("HWND").Name)
	assert.Equal(t, "sText", fn.Param("$stext").Name)
	assert.Zero(t, fn.Param("missing"))
}

func TestExtractFunctionErrors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected Kind
		got      Kind
		funcName string
	}{
		{"no func", "Local $a", Func, End, ""},
		{"missing name", "Func", Word, End, ""},
		{"missing paren", "Func Foo", OpenedParen, End, "Foo"},
		{"unclosed list", "Func Foo($a", ClosedParen, End, "Foo"},
		{"unclosed default", "Func Foo($a = (1", ClosedParen, End, "Foo"},
		{"modifier without variable", "Func Foo(ByRef", Variable, End, "Foo"},
		{"modifier before paren", "Func Foo(Const)\nLocal $x = 1\nEndFunc", Variable, ClosedParen, "Foo"},
		{"modifier before comma", "Func Foo(ByRef, $b)\nEndFunc", Variable, Comma, "Foo"},
		{"missing endfunc", "Func Foo()\n\tReturn 1\n", EndFunc, End, "Foo"},
		{"invalid byte in list", "Func Foo($a !)\nEndFunc", ClosedParen, Error, "Foo"},
		{"invalid byte in body", "Func Foo()\n\t$a = ~1\nEndFunc", EndFunc, Error, "Foo"},
		{"unterminated string default", "Func Foo($a = \"x)\nEndFunc", ClosedParen, Error, "Foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := ExtractFunction(NewScanner([]byte(tt.source)))
			assert.Error(t, err)
			assert.Zero(t, fn)

			var structErr *StructuralError
			assert.True(t, errors.As(err, &structErr))
			assert.Equal(t, tt.expected, structErr.Expected)
			assert.Equal(t, tt.got, structErr.Got.Kind)
			assert.Equal(t, tt.funcName, structErr.Func)

			var lexErr *LexError
			assert.Equal(t, tt.got == Error, errors.As(err, &lexErr))
		})
	}
}

func TestExtractFunctionInterning(t *testing.T) {
	source := []byte("Func A($hWnd)\nEndFunc\nFunc B($hWnd)\nEndFunc")
	s := NewScanner(source)
	x := newExtractor(s, "", NewInterner(4))

	s.NextKind(Func)
	a, err := x.function()
	assert.NoError(t, err)

	s.NextKind(Func)
	b, err := x.function()
	assert.NoError(t, err)

	assert.Equal(t, a.Params[0].Name, b.Params[0].Name)
	assert.Equal(t, 3, x.interner.Size()) // A, B, hWnd
}
