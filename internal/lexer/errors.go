package lexer

import (
	"fmt"

	"tungsten/internal/source"
)

// errCause is the proximate reason a scan failed.
type errCause uint8

const (
	causeNonASCII errCause = iota
	causeUnexpectedChar
	causeUnterminatedString
	causeInvalidEscape
	causeIllegalChar
	causeUnexpectedEnd
	causeInvalidUnicode
	causeSurrogate
	causeOverflow
)

// Fixed context labels for illegal-character and unexpected-end errors.
const (
	ctxNumber   = "number"
	ctxHexDigit = "hex digit"
	ctxOperator = "operator"
)

// lexError is a scanner-local failure. It is turned into a diagnostic by
// report and never leaves the lexer.
type lexError struct {
	cause errCause
	ctx   string
	ch    rune
	span  source.Span
	// text is the escape sequence or literal the error is about.
	text string
}

func (e *lexError) Error() string {
	switch e.cause {
	case causeNonASCII:
		return fmt.Sprintf("encountered non-ascii character %q", e.ch)
	case causeUnexpectedChar:
		return fmt.Sprintf("unexpected character %q", e.ch)
	case causeUnterminatedString:
		return "unterminated string literal"
	case causeInvalidEscape:
		return fmt.Sprintf("invalid string escape sequence %q", e.text)
	case causeIllegalChar:
		return fmt.Sprintf("illegal character %q in %s", e.ch, e.ctx)
	case causeUnexpectedEnd:
		return "unexpected end in " + e.ctx
	case causeInvalidUnicode:
		return fmt.Sprintf("invalid unicode code point %s", e.text)
	case causeSurrogate:
		return fmt.Sprintf("unicode escape of surrogate %s", e.text)
	case causeOverflow:
		return fmt.Sprintf("numeric literal %s out of range", e.text)
	default:
		return "lex error"
	}
}

func errIllegalChar(ch rune, ctx string, sp source.Span) *lexError {
	return &lexError{cause: causeIllegalChar, ch: ch, ctx: ctx, span: sp}
}

func errUnexpectedEnd(ctx string, sp source.Span) *lexError {
	return &lexError{cause: causeUnexpectedEnd, ctx: ctx, span: sp}
}
