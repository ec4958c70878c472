package lexer

import (
	"fmt"
	"unicode/utf8"

	"tungsten/internal/source"
)

const (
	lineSeparator      = '\u2028'
	paragraphSeparator = '\u2029'
	maxCodePoint       = 0x10FFFF
)

// readEscape decodes one escape sequence starting at '\' into lx.buf.
func (lx *Lexer) readEscape() *lexError {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		return &lexError{cause: causeUnterminatedString}
	}

	r := lx.bumpRune()
	switch r {
	case '\n', lineSeparator, paragraphSeparator:
		// продолжение строки
	case '\r':
		lx.cursor.Eat('\n')
	case '\'', '"', '\\':
		lx.buf = append(lx.buf, byte(r))
	case 'b':
		lx.buf = append(lx.buf, '\b')
	case 'f':
		lx.buf = append(lx.buf, '\f')
	case 'n':
		lx.buf = append(lx.buf, '\n')
	case 'r':
		lx.buf = append(lx.buf, '\r')
	case 't':
		lx.buf = append(lx.buf, '\t')
	case 'v':
		lx.buf = append(lx.buf, '\v')
	case 'x':
		hi, err := lx.readHexDigit(start)
		if err != nil {
			return err
		}
		lo, err := lx.readHexDigit(start)
		if err != nil {
			return err
		}
		lx.buf = utf8.AppendRune(lx.buf, rune(hi<<4|lo))
	case 'u':
		ch, err := lx.readUnicodeEscape(start)
		if err != nil {
			return err
		}
		lx.buf = utf8.AppendRune(lx.buf, ch)
	default:
		if lx.opts.LenientEscapes {
			lx.buf = utf8.AppendRune(lx.buf, r)
			return nil
		}
		return lx.escapeError(causeInvalidEscape, start)
	}
	return nil
}

// readUnicodeEscape handles \uXXXX and \u{X...}.
func (lx *Lexer) readUnicodeEscape(start Mark) (rune, *lexError) {
	if !lx.cursor.Eat('{') {
		var value uint32
		for range 4 {
			d, err := lx.readHexDigit(start)
			if err != nil {
				return 0, err
			}
			value = value<<4 | d
		}
		return lx.codePointToRune(value, start)
	}

	value, err := lx.readHexDigit(start)
	if err != nil {
		return 0, err
	}
	tooLarge := false
	for {
		if lx.cursor.EOF() {
			return 0, lx.escapeError(causeInvalidEscape, start)
		}
		d, ok := hexVal(lx.cursor.Peek())
		if !ok {
			break
		}
		lx.cursor.Bump()
		if !tooLarge {
			value = value<<4 | d
			tooLarge = value > maxCodePoint
		}
	}
	if !lx.cursor.Eat('}') {
		return 0, lx.escapeError(causeInvalidEscape, start)
	}
	if tooLarge {
		return 0, lx.escapeError(causeInvalidUnicode, start)
	}
	return lx.codePointToRune(value, start)
}

func (lx *Lexer) codePointToRune(value uint32, start Mark) (rune, *lexError) {
	switch {
	case value >= 0xD800 && value <= 0xDFFF:
		return 0, lx.escapeError(causeSurrogate, start)
	case value > maxCodePoint:
		return 0, lx.escapeError(causeInvalidUnicode, start)
	}
	return rune(value), nil // #nosec G115 -- value <= 0x10FFFF
}

// readHexDigit consumes one hex digit. A non-hex character is left unread
// so the string scanner can still see a closing quote or newline.
func (lx *Lexer) readHexDigit(start Mark) (uint32, *lexError) {
	if lx.cursor.EOF() {
		return 0, lx.escapeError(causeInvalidEscape, start)
	}
	if d, ok := hexVal(lx.cursor.Peek()); ok {
		lx.cursor.Bump()
		return d, nil
	}
	r, size := lx.peekRune()
	return 0, errIllegalChar(r, ctxHexDigit, lx.cursor.SpanAt(uint32(size))) // #nosec G115 -- size <= 4
}

// escapeError covers the escape from its backslash to the cursor.
func (lx *Lexer) escapeError(cause errCause, start Mark) *lexError {
	sp := lx.cursor.SpanFrom(start)
	return &lexError{cause: cause, span: sp, text: lx.escapeText(sp)}
}

func (lx *Lexer) escapeText(sp source.Span) string {
	text := lx.file.Content[sp.Start:sp.End]
	if !utf8.Valid(text) {
		return fmt.Sprintf("%q", text)
	}
	return string(text)
}
