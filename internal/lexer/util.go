package lexer

import "unicode/utf8"

// byteClass bits; identifiers and numbers are ASCII only.
const (
	classIdentStart uint8 = 1 << iota
	classDigit
	classHex
)

var byteClasses = func() (t [256]uint8) {
	t['_'] = classIdentStart
	for c := 'a'; c <= 'z'; c++ {
		t[c] = classIdentStart
		t[c-'a'+'A'] = classIdentStart
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = classDigit | classHex
	}
	for c := 'a'; c <= 'f'; c++ {
		t[c] |= classHex
		t[c-'a'+'A'] |= classHex
	}
	return t
}()

func isIdentStartByte(b byte) bool    { return byteClasses[b]&classIdentStart != 0 }
func isIdentContinueByte(b byte) bool { return byteClasses[b]&(classIdentStart|classDigit) != 0 }
func isDec(b byte) bool               { return byteClasses[b]&classDigit != 0 }

// hexVal returns the value of an ASCII hex digit.
func hexVal(b byte) (uint32, bool) {
	if byteClasses[b]&classHex == 0 {
		return 0, false
	}
	if isDec(b) {
		return uint32(b - '0'), true
	}
	return uint32(b|0x20-'a') + 10, true
}

// peekRune decodes the rune under the cursor. Invalid UTF-8 yields
// utf8.RuneError of width 1; size is 0 only at EOF.
func (lx *Lexer) peekRune() (r rune, size int) {
	rest := lx.cursor.Rest()
	switch {
	case len(rest) == 0:
		return utf8.RuneError, 0
	case rest[0] < utf8.RuneSelf:
		return rune(rest[0]), 1
	}
	return utf8.DecodeRune(rest)
}

func (lx *Lexer) bumpRune() rune {
	r, size := lx.peekRune()
	lx.cursor.Advance(size)
	return r
}

// isNumberAfterDot: ".5" starts a float.
func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

// pushByte moves the current byte into the scratch buffer.
func (lx *Lexer) pushByte() {
	lx.buf = append(lx.buf, lx.cursor.Bump())
}
