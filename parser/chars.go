package parser

// Character classes. Everything is classified per byte: the scanner does no
// UTF-8 decoding, so non-ASCII bytes outside strings and comments are errors.

// isSpace reports blanks that form a Space token. A line feed is a token of
// its own.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

// singles maps one-byte operators and punctuation to their kinds.
var singles = [256]Kind{
	'(': OpenedParen,
	')': ClosedParen,
	'[': OpenedSquare,
	']': ClosedSquare,
	'<': LessThan,
	'>': GreaterThan,
	'=': Equal,
	'+': Plus,
	'-': Minus,
	'*': Asterisk,
	'/': Slash,
	'^': Power,
	',': Comma,
	':': Colon,
	'&': Concatenate,
	'?': Questionmark,
}
