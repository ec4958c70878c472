package lexer

import (
	"strconv"

	"tungsten/internal/token"
)

// scanNumber читает десятичный литерал:
//
//	.5  .5e3  0  0.  0.25  0e1  42  1_000  4.2e-1
//
// '_' допустим только между цифрами и в lx.buf не попадает. Точка после
// цифр всегда забирается в литерал: "1..2" это 1. и .2.
// Float или Int определяется только наличием точки или экспоненты.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	lx.buf = lx.buf[:0]

	kind, err := lx.readNumber()
	sp := lx.cursor.SpanFrom(start)
	if err != nil {
		lx.report(err)
		return lx.illegal(sp)
	}

	var value token.Value
	switch kind {
	case token.FloatLit:
		f, perr := strconv.ParseFloat(lx.bufString(), 64)
		if perr != nil {
			lx.report(&lexError{cause: causeOverflow, span: sp, text: string(lx.file.Content[sp.Start:sp.End])})
			return lx.illegal(sp)
		}
		value = token.FloatValue(f)
	default:
		n, perr := strconv.ParseUint(lx.bufString(), 10, 64)
		if perr != nil {
			lx.report(&lexError{cause: causeOverflow, span: sp, text: string(lx.file.Content[sp.Start:sp.End])})
			return lx.illegal(sp)
		}
		value = token.IntValue(n)
	}
	return lx.makeToken(kind, sp, value)
}

func (lx *Lexer) readNumber() (token.Kind, *lexError) {
	switch lx.cursor.Peek() {
	case '.':
		lx.pushByte()
		if err := lx.readDecimalDigits(); err != nil {
			return token.Illegal, err
		}
		if _, err := lx.readOptionalExponent(); err != nil {
			return token.Illegal, err
		}
		return token.FloatLit, nil

	case '0':
		// ведущий ноль не продолжается цифрами: "07" это 0 и 7
		lx.pushByte()
		switch {
		case lx.atDecimalPoint():
			lx.pushByte()
			return lx.readFloatAfterPoint()
		case lx.atExponent():
			lx.pushByte()
			if err := lx.readExponentBody(); err != nil {
				return token.Illegal, err
			}
			return token.FloatLit, nil
		}
		return token.IntLit, nil
	}

	lx.pushByte()
	if err := lx.readDigitsAfterFirst(); err != nil {
		return token.Illegal, err
	}
	if lx.atDecimalPoint() {
		lx.pushByte()
		return lx.readFloatAfterPoint()
	}
	hasExp, err := lx.readOptionalExponent()
	if err != nil {
		return token.Illegal, err
	}
	if hasExp {
		return token.FloatLit, nil
	}
	return token.IntLit, nil
}

func (lx *Lexer) atDecimalPoint() bool {
	return lx.cursor.Peek() == '.'
}

func (lx *Lexer) atExponent() bool {
	b := lx.cursor.Peek()
	return b == 'e' || b == 'E'
}

// readFloatAfterPoint: digits are optional after the point, exponent too.
func (lx *Lexer) readFloatAfterPoint() (token.Kind, *lexError) {
	if isDec(lx.cursor.Peek()) {
		lx.pushByte()
		if err := lx.readDigitsAfterFirst(); err != nil {
			return token.Illegal, err
		}
	}
	if _, err := lx.readOptionalExponent(); err != nil {
		return token.Illegal, err
	}
	return token.FloatLit, nil
}

// readDecimalDigits requires at least one digit.
func (lx *Lexer) readDecimalDigits() *lexError {
	if err := lx.expectDigit(); err != nil {
		return err
	}
	lx.pushByte()
	return lx.readDigitsAfterFirst()
}

func (lx *Lexer) readDigitsAfterFirst() *lexError {
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); {
		case b == '_':
			lx.cursor.Bump()
			if err := lx.expectDigit(); err != nil {
				return err
			}
			lx.pushByte()
		case isDec(b):
			lx.pushByte()
		default:
			return nil
		}
	}
	return nil
}

func (lx *Lexer) readOptionalExponent() (bool, *lexError) {
	if !lx.atExponent() {
		return false, nil
	}
	lx.pushByte()
	return true, lx.readExponentBody()
}

func (lx *Lexer) readExponentBody() *lexError {
	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		lx.pushByte()
	}
	return lx.readDecimalDigits()
}

// expectDigit checks the byte under the cursor without consuming it.
func (lx *Lexer) expectDigit() *lexError {
	if lx.cursor.EOF() {
		return errUnexpectedEnd(ctxNumber, lx.cursor.SpanFrom(lx.start))
	}
	if isDec(lx.cursor.Peek()) {
		return nil
	}
	r, size := lx.peekRune()
	return errIllegalChar(r, ctxNumber, lx.cursor.SpanAt(uint32(size))) // #nosec G115 -- size <= 4
}
