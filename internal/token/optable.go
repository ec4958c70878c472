package token

import "sort"

// Operator is one entry of the punctuation table.
type Operator struct {
	Text string
	Kind Kind
}

// Operators lists every punctuation and operator shape, longest first.
// Within one length the order is irrelevant: two shapes of equal length never share a prefix match.
var Operators = sortedOperators([]Operator{
	{"...", DotDotDot},
	{">>=", ShrAssign},
	{"<<=", ShlAssign},
	{"**=", StarStarAssign},
	{"//=", SlashSlashAssign},
	{"..=", DotDotEq},

	{"::", ColonColon},
	{"^=", CaretAssign},
	{"+=", PlusAssign},
	{"-=", MinusAssign},
	{"**", StarStar},
	{"//", SlashSlash},
	{"<<", Shl},
	{">>", Shr},
	{"<=", LtEq},
	{">=", GtEq},
	{"=>", FatArrow},
	{"->", Arrow},
	{"{|", LBracePipe},
	{"|}", PipeRBrace},
	{"(|", LParenPipe},
	{"|)", PipeRParen},
	{"$$", DollarDollar},
	{"&=", AmpAssign},
	{"|=", PipeAssign},
	{"!=", BangEq},
	{"==", EqEq},
	{"&&", AndAnd},
	{"||", OrOr},
	{"++", PlusPlus},
	{"--", MinusMinus},
	{"<>", LtGt},
	{"%=", PercentAssign},
	{"*=", StarAssign},
	{"/=", SlashAssign},
	{"..", DotDot},
	{"|>", Illegal}, // kind comes from the keyword table

	{",", Comma},
	{";", Semicolon},
	{"@", At},
	{"#", Hash},
	{"[", LBracket},
	{"]", RBracket},
	{")", RParen},
	{"}", RBrace},
	{"?", Question},
	{"~", Tilde},
	{":", Colon},
	{"^", Caret},
	{"+", Plus},
	{"-", Minus},
	{"%", Percent},
	{"!", Bang},
	{"(", LParen},
	{"{", LBrace},
	{"&", Amp},
	{"|", Pipe},
	{"*", Star},
	{"/", Slash},
	{">", Gt},
	{"=", Assign},
	{"<", Lt},
	{".", Dot},
})

// operatorStarts indexes Operators by first byte.
var operatorStarts = buildOperatorStarts(Operators)

func sortedOperators(ops []Operator) []Operator {
	sort.SliceStable(ops, func(i, j int) bool { return len(ops[i].Text) > len(ops[j].Text) })
	return ops
}

func buildOperatorStarts(ops []Operator) map[byte][]Operator {
	out := make(map[byte][]Operator)
	for _, op := range ops {
		out[op.Text[0]] = append(out[op.Text[0]], op)
	}
	return out
}

// MatchOperator returns the longest operator that prefixes src.
// The returned kind for "|>" is KwReturn; callers that classify through
// the keyword table get the same answer.
func MatchOperator(src []byte) (Operator, bool) {
	if len(src) == 0 {
		return Operator{}, false
	}
	for _, op := range operatorStarts[src[0]] {
		if len(src) >= len(op.Text) && string(src[:len(op.Text)]) == op.Text {
			return op, true
		}
	}
	return Operator{}, false
}

// StartsOperator reports whether b can begin some operator shape.
func StartsOperator(b byte) bool {
	_, ok := operatorStarts[b]
	return ok
}
