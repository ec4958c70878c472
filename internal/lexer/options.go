package lexer

import (
	"tungsten/internal/diag"
	"tungsten/internal/source"
)

type Options struct {
	// Reporter может быть nil: ошибки тогда отбрасываются, лексинг продолжается.
	Reporter diag.Reporter
	// Strings interns lexemes. Lexers of one build share a table; nil gives
	// the lexer a private one.
	Strings *source.Interner
	// EmitEOF makes Tokenize append the EOF token.
	EmitEOF bool
	// LenientEscapes passes unknown escapes like \q through as the bare
	// character instead of reporting them.
	LenientEscapes bool
}
