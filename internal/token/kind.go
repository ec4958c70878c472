package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Illegal marks a region the lexer could not classify; a diagnostic was reported for it.
	Illegal Kind = iota
	// EOF marks the end of the source input.
	EOF

	// односимвольные
	Colon     // :
	Comma     // ,
	Dot       // .
	Semicolon // ;
	Minus     // -
	Lt        // <
	Gt        // >
	Plus      // +
	Star      // *
	Assign    // =
	Bang      // !
	At        // @
	Hash      // #
	Percent   // %
	Amp       // &
	Slash     // /
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Question  // ?
	Pipe      // |
	Tilde     // ~
	Caret     // ^

	// двухсимвольные
	EqEq          // ==
	BangEq        // !=
	AndAnd        // &&
	OrOr          // ||
	SlashSlash    // //
	StarStar      // **
	LtEq          // <=
	GtEq          // >=
	PlusPlus      // ++
	MinusMinus    // --
	Shl           // <<
	Shr           // >>
	FatArrow      // =>
	Arrow         // ->
	LBracePipe    // {|
	PipeRBrace    // |}
	LParenPipe    // (|
	PipeRParen    // |)
	DollarDollar  // $$
	CaretAssign   // ^=
	AmpAssign     // &=
	PipeAssign    // |=
	PlusAssign    // +=
	MinusAssign   // -=
	SlashAssign   // /=
	PercentAssign // %=
	StarAssign    // *=
	ColonColon    // ::
	DotDot        // ..
	LtGt          // <>

	// трёхсимвольные
	DotDotDot        // ...
	ShrAssign        // >>=
	ShlAssign        // <<=
	StarStarAssign   // **=
	SlashSlashAssign // //=
	DotDotEq         // ..=

	// литералы
	StringLit
	BoolLit
	IntLit
	FloatLit

	// ключевые слова
	KwDefer
	KwFunc
	KwReturn // spelled "|>"
	KwDo
	KwBreak
	KwContinue
	KwIf
	KwElse
	KwFor
	KwIn
	KwLoop
	KwWhile
	KwRepeat
	KwUntil
	KwMatch
	KwSizeof
	KwPub
	KwModule
	KwImport
	KwConst
	KwVar

	// Primitive type names are reserved; the lexer currently emits them as Ident.
	TyVoid
	TyNil
	TyUint
	TyInt
	TyFloat
	TyBool
	TyStr

	// Ident represents an identifier token.
	Ident

	kindCount
)

var kindNames = [kindCount]string{
	Illegal: "Illegal",
	EOF:     "EOF",

	Colon:     "Colon",
	Comma:     "Comma",
	Dot:       "Dot",
	Semicolon: "Semicolon",
	Minus:     "Minus",
	Lt:        "Lt",
	Gt:        "Gt",
	Plus:      "Plus",
	Star:      "Star",
	Assign:    "Assign",
	Bang:      "Bang",
	At:        "At",
	Hash:      "Hash",
	Percent:   "Percent",
	Amp:       "Amp",
	Slash:     "Slash",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	Question:  "Question",
	Pipe:      "Pipe",
	Tilde:     "Tilde",
	Caret:     "Caret",

	EqEq:          "EqEq",
	BangEq:        "BangEq",
	AndAnd:        "AndAnd",
	OrOr:          "OrOr",
	SlashSlash:    "SlashSlash",
	StarStar:      "StarStar",
	LtEq:          "LtEq",
	GtEq:          "GtEq",
	PlusPlus:      "PlusPlus",
	MinusMinus:    "MinusMinus",
	Shl:           "Shl",
	Shr:           "Shr",
	FatArrow:      "FatArrow",
	Arrow:         "Arrow",
	LBracePipe:    "LBracePipe",
	PipeRBrace:    "PipeRBrace",
	LParenPipe:    "LParenPipe",
	PipeRParen:    "PipeRParen",
	DollarDollar:  "DollarDollar",
	CaretAssign:   "CaretAssign",
	AmpAssign:     "AmpAssign",
	PipeAssign:    "PipeAssign",
	PlusAssign:    "PlusAssign",
	MinusAssign:   "MinusAssign",
	SlashAssign:   "SlashAssign",
	PercentAssign: "PercentAssign",
	StarAssign:    "StarAssign",
	ColonColon:    "ColonColon",
	DotDot:        "DotDot",
	LtGt:          "LtGt",

	DotDotDot:        "DotDotDot",
	ShrAssign:        "ShrAssign",
	ShlAssign:        "ShlAssign",
	StarStarAssign:   "StarStarAssign",
	SlashSlashAssign: "SlashSlashAssign",
	DotDotEq:         "DotDotEq",

	StringLit: "StringLit",
	BoolLit:   "BoolLit",
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",

	KwDefer:    "KwDefer",
	KwFunc:     "KwFunc",
	KwReturn:   "KwReturn",
	KwDo:       "KwDo",
	KwBreak:    "KwBreak",
	KwContinue: "KwContinue",
	KwIf:       "KwIf",
	KwElse:     "KwElse",
	KwFor:      "KwFor",
	KwIn:       "KwIn",
	KwLoop:     "KwLoop",
	KwWhile:    "KwWhile",
	KwRepeat:   "KwRepeat",
	KwUntil:    "KwUntil",
	KwMatch:    "KwMatch",
	KwSizeof:   "KwSizeof",
	KwPub:      "KwPub",
	KwModule:   "KwModule",
	KwImport:   "KwImport",
	KwConst:    "KwConst",
	KwVar:      "KwVar",

	TyVoid:  "TyVoid",
	TyNil:   "TyNil",
	TyUint:  "TyUint",
	TyInt:   "TyInt",
	TyFloat: "TyFloat",
	TyBool:  "TyBool",
	TyStr:   "TyStr",

	Ident: "Ident",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool { return k < kindCount }

// IsEOF reports whether the kind terminates the stream.
func (k Kind) IsEOF() bool { return k == EOF }

// IsLiteral reports whether tokens of this kind carry a literal Value.
func (k Kind) IsLiteral() bool { return k >= StringLit && k <= FloatLit }

// IsKeyword reports whether k is a reserved keyword, including "|>".
func (k Kind) IsKeyword() bool { return k >= KwDefer && k <= KwVar }

// IsPrimitiveType reports whether k is one of the reserved primitive type kinds.
func (k Kind) IsPrimitiveType() bool { return k >= TyVoid && k <= TyStr }

// IsPunctOrOp reports whether k is punctuation or an operator.
func (k Kind) IsPunctOrOp() bool { return k >= Colon && k <= DotDotEq }
