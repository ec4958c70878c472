package token

import (
	"tungsten/internal/source"
)

// Token is one classified lexeme. Tokens are values and are never mutated after the lexer returns them.
type Token struct {
	Kind   Kind
	Span   source.Span    // leading whitespace excluded
	Pos    source.LineCol // position of Span.Start
	Text   string         // exact source slice
	Lexeme source.StringID
	Value  Value
}

// IsLiteral reports whether the token is a string, boolean or numeric literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a reserved keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool { return t.Kind.IsPunctOrOp() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
