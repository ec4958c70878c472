package lexer

import (
	"tungsten/internal/token"
)

// scanString читает "..." без переводов строк. Каждая ошибка в escape
// репортится, чтение продолжается до закрывающей кавычки; при любой ошибке
// токен становится Illegal без значения.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	lx.buf = lx.buf[:0]
	failed := false

	for {
		if lx.cursor.EOF() {
			return lx.unterminated(start)
		}
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			if failed {
				return lx.illegal(sp)
			}
			return lx.makeToken(token.StringLit, sp, token.StringValue(lx.bufString()))

		case '\r', '\n':
			return lx.unterminated(start)

		case '\\':
			err := lx.readEscape()
			if err == nil {
				continue
			}
			if err.cause == causeUnterminatedString {
				return lx.unterminated(start)
			}
			lx.report(err)
			failed = true

		default:
			// сырые байты, включая не-ASCII, копируются как есть
			_, size := lx.peekRune()
			from := lx.cursor.Off
			lx.cursor.Advance(size)
			lx.buf = append(lx.buf, lx.file.Content[from:lx.cursor.Off]...)
		}
	}
}

// unterminated reports E002 over the literal read so far; the newline, if
// any, stays unread.
func (lx *Lexer) unterminated(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.report(&lexError{cause: causeUnterminatedString, span: sp})
	return lx.illegal(sp)
}
