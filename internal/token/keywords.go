package token

var keywords = map[string]Kind{
	"defer":    KwDefer,
	"func":     KwFunc,
	"|>":       KwReturn,
	"do":       KwDo,
	"break":    KwBreak,
	"continue": KwContinue,
	"if":       KwIf,
	"else":     KwElse,
	"for":      KwFor,
	"in":       KwIn,
	"loop":     KwLoop,
	"while":    KwWhile,
	"repeat":   KwRepeat,
	"until":    KwUntil,
	"match":    KwMatch,
	"sizeof":   KwSizeof,
	"pub":      KwPub,
	"module":   KwModule,
	"import":   KwImport,
	"const":    KwConst,
	"var":      KwVar,
}

var primitives = map[string]Kind{
	"void":  TyVoid,
	"nil":   TyNil,
	"uint":  TyUint,
	"int":   TyInt,
	"float": TyFloat,
	"bool":  TyBool,
	"str":   TyStr,
}

// LookupKeyword возвращает тип ключевого слова. Регистрозависимо.
// "|>" тоже ключевое слово: оператор возврата.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}

// IsKeyword reports whether text is reserved.
func IsKeyword(text string) bool {
	_, ok := keywords[text]
	return ok
}

// LookupPrimitive maps a primitive type name to its reserved kind.
// The lexer does not call it; type names stay identifiers until a later stage decides otherwise.
func LookupPrimitive(text string) (Kind, PrimitiveType, bool) {
	k, ok := primitives[text]
	if !ok {
		return Illegal, PrimNone, false
	}
	return k, primitiveOf(k), true
}

func primitiveOf(k Kind) PrimitiveType {
	switch k {
	case TyStr:
		return PrimString
	case TyBool:
		return PrimBoolean
	case TyUint:
		return PrimUnsignedInteger
	case TyInt:
		return PrimSignedInteger
	case TyFloat:
		return PrimFloat
	default:
		return PrimNone
	}
}
