package lexer

import (
	"tungsten/internal/token"
)

// scanIdentOrKeyword сканирует [_a-zA-Z][_a-zA-Z0-9]* и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые. true/false становятся BoolLit.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	switch text {
	case "true":
		return lx.makeToken(token.BoolLit, sp, token.BoolValue(true))
	case "false":
		return lx.makeToken(token.BoolLit, sp, token.BoolValue(false))
	}

	if k, ok := token.LookupKeyword(text); ok {
		return lx.makeToken(k, sp, token.Value{})
	}
	return lx.makeToken(token.Ident, sp, token.StringValue(text))
}
