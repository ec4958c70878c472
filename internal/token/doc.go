// Package token defines the lexical vocabulary of tungsten: token kinds, literal values,
// the keyword table and the longest-match operator table.
//
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Token.Value is set only for literal kinds and identifiers.
//   - "|>" is matched as an operator shape but classified as the keyword KwReturn.
//   - Primitive type kinds (TyVoid ... TyStr) are reserved. The lexer emits type names as Ident.
package token
