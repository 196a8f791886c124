package parser

import (
	"bytes"
)

var (
	blockCommentStart = [][]byte{[]byte("#cs"), []byte("#comment-start")}
	blockCommentEnd   = [][]byte{[]byte("#ce"), []byte("#comment-end")}
)

// Scanner is a single-pass, pull-based tokenizer for AutoIt source.
//
// Tokens store byte offsets rather than text, so scanning never copies the
// source. Every token except End consumes at least one byte, and the
// concatenation of all token texts equals the input.
type Scanner struct {
	source    []byte // Source buffer, never modified
	pos       int    // Current byte position
	line      int    // Current line (1-indexed)
	lineStart int    // Offset of the first byte of the current line
	current   Token  // Most recently produced token
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{
		source:  source,
		line:    1,
		current: Token{Kind: Start, Line: 1, Column: 1},
	}
}

// Next scans one token and advances past it. Once the end of the source is
// reached every call returns the same End token.
func (s *Scanner) Next() Token {
	s.current = s.scan()
	return s.current
}

// NextKind scans until it finds a token of the given kind, an Error or End,
// and returns that token. Everything in between is discarded.
func (s *Scanner) NextKind(kind Kind) Token {
	for {
		tok := s.Next()
		if tok.IsOneOf(kind, Error, End) {
			return tok
		}
	}
}

// Current returns the most recently produced token, or a Start token if
// Next was never called.
func (s *Scanner) Current() Token {
	return s.current
}

// Line returns the line the scanner is currently on.
func (s *Scanner) Line() int {
	return s.line
}

// Source returns the buffer being scanned.
func (s *Scanner) Source() []byte {
	return s.source
}

// ScanAll scans the remaining source and returns every token up to and
// including End. Error tokens are kept and scanning resumes after them.
func (s *Scanner) ScanAll() []Token {
	// Empirically around one token per four bytes of AutoIt source
	tokens := make([]Token, 0, (len(s.source)-s.pos)/4+1)
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == End {
			return tokens
		}
	}
}

// scan dispatches on the current byte. Each scan helper advances the cursor
// and reports the kind; the span is always [start, s.pos).
func (s *Scanner) scan() Token {
	start := s.pos
	line := s.line
	col := start - s.lineStart + 1

	kind := s.scanKind()

	return Token{
		Kind:   kind,
		Start:  start,
		End:    s.pos,
		Line:   line,
		Column: col,
	}
}

func (s *Scanner) scanKind() Kind {
	if s.pos >= len(s.source) {
		return End
	}

	ch := s.source[s.pos]
	next := s.peek(1)

	switch {
	case isSpace(ch):
		return s.scanSpace()

	// 0x must be checked before plain digits
	case ch == '0' && (next == 'x' || next == 'X'):
		return s.scanHex()

	case isDigit(ch):
		return s.scanDecimals()

	// Line continuation: "_" right before a blank or line break
	case ch == '_' && (isSpace(next) || next == '\n'):
		s.pos++
		return Multiline

	case isIdentChar(ch):
		return s.scanIdentifier()
	}

	switch ch {
	case '\'', '"':
		return s.scanString(ch)
	case '@':
		return s.scanSigil(Macro)
	case '$':
		return s.scanSigil(Variable)
	case '.':
		return s.scanSigil(Object)
	case ';':
		return s.scanComment()
	case '#':
		if s.restOfLineHasPrefix(blockCommentStart) {
			return s.scanMultiComment()
		}
		return s.scanCommand()
	case '\n':
		s.advance()
		return LineFeed
	}

	if kind := singles[ch]; kind != Start {
		s.pos++
		return kind
	}

	// Unrecognized byte; the next call resumes right after it
	s.pos++
	return Error
}

// scanSpace scans a run of blanks.
func (s *Scanner) scanSpace() Kind {
	for s.pos < len(s.source) && isSpace(s.source[s.pos]) {
		s.pos++
	}
	return Space
}

// scanHex scans 0x followed by a run of hex digits.
func (s *Scanner) scanHex() Kind {
	s.pos += 2 // 0x
	for s.pos < len(s.source) && isHexDigit(s.source[s.pos]) {
		s.pos++
	}
	return Hex
}

// scanDecimals scans a run of decimal digits. Signs and fractions are
// separate tokens.
func (s *Scanner) scanDecimals() Kind {
	for s.pos < len(s.source) && isDigit(s.source[s.pos]) {
		s.pos++
	}
	return Decimals
}

// scanIdentifier scans an identifier run and resolves keywords.
func (s *Scanner) scanIdentifier() Kind {
	start := s.pos
	for s.pos < len(s.source) && isIdentChar(s.source[s.pos]) {
		s.pos++
	}
	return LookupKeyword(s.source[start:s.pos])
}

// scanSigil scans a sigil ($, @ or .) followed by an identifier run. A bare
// sigil is a valid one-byte token.
func (s *Scanner) scanSigil(kind Kind) Kind {
	s.pos++
	for s.pos < len(s.source) && isIdentChar(s.source[s.pos]) {
		s.pos++
	}
	return kind
}

// scanString scans a quoted string up to and including the matching quote.
// There are no escape sequences. A string that runs off the end of the
// buffer is an Error covering the unterminated text.
func (s *Scanner) scanString(quote byte) Kind {
	s.pos++ // opening quote
	for s.pos < len(s.source) {
		if s.advance() == quote {
			return String
		}
	}
	return Error
}

// scanComment scans a ";" comment up to, but excluding, the line feed.
func (s *Scanner) scanComment() Kind {
	s.pos += s.lineLength()
	return Comment
}

// scanCommand scans a "#" directive up to, but excluding, the line feed. A
// directive without a terminating line feed is an Error.
func (s *Scanner) scanCommand() Kind {
	n := s.lineLength()
	terminated := s.pos+n < len(s.source)
	s.pos += n
	if !terminated {
		return Error
	}
	return AutoItCommand
}

// scanMultiComment scans a #cs/#comment-start region through the end of the
// line holding the matching #ce/#comment-end marker. The line feed after the
// marker is left for the next token.
func (s *Scanner) scanMultiComment() Kind {
	for s.pos < len(s.source) {
		if s.source[s.pos] == '#' && s.restOfLineHasPrefix(blockCommentEnd) {
			s.pos += s.lineLength()
			return MultiComment
		}
		s.advance()
	}
	return Error
}

// Helper methods

// peek returns the byte n positions ahead of the cursor, or 0 past the end
// of the buffer.
func (s *Scanner) peek(n int) byte {
	if s.pos+n >= len(s.source) {
		return 0
	}
	return s.source[s.pos+n]
}

// advance consumes one byte and keeps line tracking in sync.
func (s *Scanner) advance() byte {
	ch := s.source[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.lineStart = s.pos
	}
	return ch
}

// lineLength returns the number of bytes from the cursor to the next line
// feed, or to the end of the buffer.
func (s *Scanner) lineLength() int {
	if i := bytes.IndexByte(s.source[s.pos:], '\n'); i >= 0 {
		return i
	}
	return len(s.source) - s.pos
}

// restOfLineHasPrefix reports whether the text from the cursor to the end of
// the line starts with any of the prefixes. Matching is case-sensitive.
func (s *Scanner) restOfLineHasPrefix(prefixes [][]byte) bool {
	rest := s.source[s.pos : s.pos+s.lineLength()]
	for _, prefix := range prefixes {
		if bytes.HasPrefix(rest, prefix) {
			return true
		}
	}
	return false
}
