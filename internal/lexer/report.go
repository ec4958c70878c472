package lexer

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"

	"tungsten/internal/diag"
)

// report converts a scanner error into exactly one diagnostic.
func (lx *Lexer) report(e *lexError) {
	lx.errCount++
	if lx.opts.Reporter == nil {
		return
	}

	var b *diag.ReportBuilder
	r := lx.opts.Reporter
	switch e.cause {
	case causeNonASCII:
		b = diag.ReportError(r, diag.LexNonASCIIChar, e.span,
			fmt.Sprintf("Encountered non-ASCII character `%c`", e.ch)).
			WithLabel("illegal character found here").
			WithNote("Make sure you only use ASCII-compliant characters in the source code").
			WithNote(fmt.Sprintf("`%c` is not a ASCII character (%s)", e.ch, describeRune(e.ch)))

	case causeUnexpectedChar:
		b = diag.ReportError(r, diag.LexNonASCIIChar, e.span,
			fmt.Sprintf("Encountered unexpected character %s", quoteChar(e.ch))).
			WithLabel("illegal character found here").
			WithNote(fmt.Sprintf("%s cannot start a token", describeRune(e.ch)))

	case causeUnterminatedString:
		b = diag.ReportError(r, diag.LexUnterminatedString, e.span,
			"Encountered an unterminated string literal").
			WithLabel("unterminated string literal here").
			WithNote("Make sure there are no unmatched string quotes in any string literal in the source")

	case causeInvalidEscape:
		b = diag.ReportError(r, diag.LexInvalidEscape, e.span,
			fmt.Sprintf("Encountered an invalid escape sequence in string literal `%s`", e.text)).
			WithLabel("invalid escape sequence here").
			WithNote("Make sure you use a valid escape sequence")

	case causeIllegalChar:
		b = diag.ReportError(r, diag.LexIllegalChar, e.span,
			fmt.Sprintf("Encountered illegal character %s in %s", quoteChar(e.ch), e.ctx)).
			WithLabel("illegal character found here")

	case causeUnexpectedEnd:
		b = diag.ReportError(r, diag.LexUnexpectedEnd, e.span,
			"Encountered unexpected end in "+e.ctx).
			WithLabel("unexpected end here")

	case causeInvalidUnicode:
		b = diag.ReportError(r, diag.LexInvalidUnicode, e.span,
			fmt.Sprintf("Encountered invalid unicode codepoint `%s`", e.text)).
			WithLabel("invalid unicode codepoint found here").
			WithNote("Unicode scalar values end at U+10FFFF")

	case causeSurrogate:
		b = diag.ReportError(r, diag.LexInvalidUnicode, e.span,
			fmt.Sprintf("Encountered unicode escape of a surrogate codepoint `%s`", e.text)).
			WithLabel("surrogate codepoint found here").
			WithNote("Codepoints U+D800 through U+DFFF are reserved for UTF-16 surrogates and cannot be escaped")

	case causeOverflow:
		b = diag.ReportError(r, diag.LexNumberOverflow, e.span,
			fmt.Sprintf("Numeric literal `%s` is out of range", e.text)).
			WithLabel("literal does not fit in 64 bits")

	default:
		b = diag.ReportError(r, diag.UnknownCode, e.span, e.Error())
	}
	b.Emit()
}

// describeRune renders "U+00E9 LATIN SMALL LETTER E WITH ACUTE".
func describeRune(ch rune) string {
	name := runenames.Name(ch)
	if name == "" || strings.HasPrefix(name, "<") {
		return fmt.Sprintf("U+%04X", ch)
	}
	return fmt.Sprintf("U+%04X %s", ch, name)
}

// quoteChar wraps printable characters in backticks and spells out the rest.
func quoteChar(ch rune) string {
	if ch < 0x20 || ch == 0x7f {
		return fmt.Sprintf("`%s`", strings.Trim(fmt.Sprintf("%q", ch), "'"))
	}
	return fmt.Sprintf("`%c`", ch)
}
