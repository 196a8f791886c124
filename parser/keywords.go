package parser

import "strings"

// maxKeywordLen is the length of the longest reserved word
// (ContinueCase, ContinueLoop).
const maxKeywordLen = 12

// keywords maps the lower-cased spelling of every reserved word to its kind.
var keywords = func() map[string]Kind {
	m := make(map[string]Kind, EndWith-False+1)
	for k := False; k <= EndWith; k++ {
		m[strings.ToLower(kindNames[k])] = k
	}
	return m
}()

// LookupKeyword resolves an identifier run to its keyword kind, or Word if
// the run is not a reserved word. AutoIt keywords are case-insensitive, so
// "FUNC", "Func" and "func" all yield Func.
func LookupKeyword(word []byte) Kind {
	if len(word) == 0 || len(word) > maxKeywordLen {
		return Word
	}

	// Lower-case into a stack buffer; the map index with string(buf) does
	// not allocate.
	var buf [maxKeywordLen]byte
	for i, c := range word {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		buf[i] = c
	}

	if kind, ok := keywords[string(buf[:len(word)])]; ok {
		return kind
	}
	return Word
}
