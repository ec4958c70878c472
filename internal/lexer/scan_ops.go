package lexer

import (
	"unicode/utf8"

	"tungsten/internal/token"
)

// scanOperatorOrPunct берёт самый длинный оператор из token.Operators.
// Всё, что не совпало, становится Illegal с диагностикой.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	if op, ok := token.MatchOperator(lx.cursor.Rest()); ok {
		lx.cursor.Advance(len(op.Text))
		kind := op.Kind
		// "|>" совпадает как оператор, но это ключевое слово
		if kw, isKw := token.LookupKeyword(op.Text); isKw {
			kind = kw
		}
		return lx.makeToken(kind, lx.cursor.SpanFrom(start), token.Value{})
	}

	ch := lx.cursor.Peek()
	if ch == '$' {
		// только "$$" допустим
		sp := lx.cursor.SpanAt(1)
		lx.report(errIllegalChar('$', ctxOperator, sp))
		lx.cursor.Bump()
		return lx.illegal(sp)
	}

	if ch >= utf8.RuneSelf {
		r := lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.report(&lexError{cause: causeNonASCII, ch: r, span: sp})
		return lx.illegal(sp)
	}

	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	lx.report(&lexError{cause: causeUnexpectedChar, ch: rune(ch), span: sp})
	return lx.illegal(sp)
}
