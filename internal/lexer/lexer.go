package lexer

import (
	"tungsten/internal/source"
	"tungsten/internal/token"
)

// Lexer turns one source file into tokens. It is not safe for concurrent use;
// run one Lexer per file.
type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	strings *source.Interner
	tracker source.Tracker
	look    *token.Token // 1 элементный буфер для токена
	start   Mark         // начало текущего токена
	// buf is scratch space for literal values, reset before each literal.
	buf      []byte
	errCount int
}

func New(file *source.File, opts Options) *Lexer {
	strs := opts.Strings
	if strs == nil {
		strs = source.NewInterner()
	}
	return &Lexer{
		file:    file,
		cursor:  NewCursor(file),
		opts:    opts,
		strings: strs,
		tracker: source.NewTracker(file.Content),
		buf:     make([]byte, 0, 64),
	}
}

// Tokenize runs a fresh lexer over file until the input is exhausted.
// The EOF token is included only when opts.EmitEOF is set.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	return lx.All()
}

// All drains the lexer.
func (lx *Lexer) All() []token.Token {
	tokens := make([]token.Token, 0, len(lx.file.Content)/4+1)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			if lx.opts.EmitEOF {
				tokens = append(tokens, tok)
			}
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipWhitespace()
	lx.start = lx.cursor.Mark()

	if lx.cursor.EOF() {
		return lx.makeToken(token.EOF, lx.cursor.SpanAt(0), token.Value{})
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		// ".5"
		return lx.scanNumber()

	case ch == '"':
		return lx.scanString()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// Strings exposes the interner holding this lexer's lexemes.
func (lx *Lexer) Strings() *source.Interner {
	return lx.strings
}

// ErrorCount is the number of lexical errors found so far.
func (lx *Lexer) ErrorCount() int {
	return lx.errCount
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\n':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

// makeToken fills in text, interned lexeme and position for sp.
func (lx *Lexer) makeToken(kind token.Kind, sp source.Span, value token.Value) token.Token {
	text := string(lx.file.Content[sp.Start:sp.End])
	return token.Token{
		Kind:   kind,
		Span:   sp,
		Pos:    lx.tracker.Advance(sp.Start),
		Text:   text,
		Lexeme: lx.strings.Intern(text),
		Value:  value,
	}
}

func (lx *Lexer) illegal(sp source.Span) token.Token {
	return lx.makeToken(token.Illegal, sp, token.Value{})
}

// bufString copies the scratch buffer out so tokens never alias it.
func (lx *Lexer) bufString() string {
	return string(lx.buf)
}
