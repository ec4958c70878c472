package lexer_test

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"tungsten/internal/diag"
	"tungsten/internal/lexer"
	"tungsten/internal/source"
	"tungsten/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(d diag.Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

func (r *testReporter) codes() []string {
	out := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code.ID())
	}
	return out
}

// ErrorMessages возвращает сообщения в виде "[E001] ERROR: ..."
func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

func newFile(input string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.tg", []byte(input))
	return fs.Get(id)
}

// tokenize прогоняет лексер и возвращает токены без EOF и все диагностики
func tokenize(t *testing.T, input string) ([]token.Token, *testReporter) {
	t.Helper()
	rep := &testReporter{}
	toks := lexer.Tokenize(newFile(input), lexer.Options{Reporter: rep})
	return toks, rep
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...token.Kind) []token.Token {
	t.Helper()
	toks, rep := tokenize(t, input)
	if got := kinds(toks); !reflect.DeepEqual(got, want) {
		t.Fatalf("%q: kinds = %v, want %v (diags: %v)", input, got, want, rep.ErrorMessages())
	}
	return toks
}

func expectNoDiags(t *testing.T, input string, rep *testReporter) {
	t.Helper()
	if len(rep.diagnostics) != 0 {
		t.Fatalf("%q: unexpected diagnostics %v", input, rep.ErrorMessages())
	}
}

func TestIntegerLiterals(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"42", 42},
		{"0", 0},
		{"1_000", 1000},
		{"1_2_3", 123},
		{"18446744073709551615", math.MaxUint64},
	}
	for _, tc := range cases {
		toks, rep := tokenize(t, tc.in)
		expectNoDiags(t, tc.in, rep)
		if len(toks) != 1 || toks[0].Kind != token.IntLit {
			t.Fatalf("%q: got %v", tc.in, kinds(toks))
		}
		if v, ok := toks[0].Value.AsInt(); !ok || v != tc.want {
			t.Errorf("%q: value %v, want %d", tc.in, toks[0].Value, tc.want)
		}
		if toks[0].Text != tc.in {
			t.Errorf("%q: text %q", tc.in, toks[0].Text)
		}
	}
}

func TestFloatLiterals(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"42.0", 42},
		{"0.5e1", 5},
		{".5", 0.5},
		{".25e2", 25},
		{"0.", 0},
		{"7.", 7},
		{"0e1", 0},
		{"1e3", 1000},
		{"2E+2", 200},
		{"4.2e-1", 0.42},
		{"1_0.0_1", 10.01},
	}
	for _, tc := range cases {
		toks, rep := tokenize(t, tc.in)
		expectNoDiags(t, tc.in, rep)
		if len(toks) != 1 || toks[0].Kind != token.FloatLit {
			t.Fatalf("%q: got %v", tc.in, kinds(toks))
		}
		if v, ok := toks[0].Value.AsFloat(); !ok || v != tc.want {
			t.Errorf("%q: value %v, want %g", tc.in, toks[0].Value, tc.want)
		}
	}
}

func TestNumberBoundaries(t *testing.T) {
	// ведущий ноль не продолжается цифрами
	expectKinds(t, "07", token.IntLit, token.IntLit)
	// точка после цифр всегда переходит во float, даже перед другой точкой
	toks := expectKinds(t, "1..2", token.FloatLit, token.FloatLit)
	if toks[0].Text != "1." || toks[1].Text != ".2" {
		t.Fatalf("1..2 split as %q %q", toks[0].Text, toks[1].Text)
	}
	expectKinds(t, "0..", token.FloatLit, token.Dot)
	expectKinds(t, "7...", token.FloatLit, token.DotDot)
	expectKinds(t, "1 ..10", token.IntLit, token.DotDot, token.IntLit)
	toks = expectKinds(t, "1.5.2", token.FloatLit, token.FloatLit)
	if toks[1].Text != ".2" {
		t.Fatalf("second literal %q", toks[1].Text)
	}
	expectKinds(t, "3.x", token.FloatLit, token.Ident)
	expectKinds(t, "-1", token.Minus, token.IntLit)
	expectKinds(t, "x.0", token.Ident, token.FloatLit)
}

func TestNumberErrors(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		kinds     []token.Kind
		illegal   string
		code      diag.Code
		diagStart uint32
		diagEnd   uint32
		message   string
	}{
		{"trailing underscore", "1_", []token.Kind{token.Illegal}, "1_", diag.LexUnexpectedEnd, 0, 2, "Encountered unexpected end in number"},
		{"underscore then letter", "1_x", []token.Kind{token.Illegal, token.Ident}, "1_", diag.LexIllegalChar, 2, 3, "Encountered illegal character `x` in number"},
		{"double underscore", "1__0", []token.Kind{token.Illegal, token.Ident}, "1_", diag.LexIllegalChar, 2, 3, "Encountered illegal character `_` in number"},
		{"bare exponent", "1e", []token.Kind{token.Illegal}, "1e", diag.LexUnexpectedEnd, 0, 2, "Encountered unexpected end in number"},
		{"signed bare exponent", "2.5e-", []token.Kind{token.Illegal}, "2.5e-", diag.LexUnexpectedEnd, 0, 5, "Encountered unexpected end in number"},
		{"exponent letter", "1ex", []token.Kind{token.Illegal, token.Ident}, "1e", diag.LexIllegalChar, 2, 3, "Encountered illegal character `x` in number"},
		{"exponent space", "0e 1", []token.Kind{token.Illegal, token.IntLit}, "0e", diag.LexIllegalChar, 2, 3, "Encountered illegal character ` ` in number"},
		{"int overflow", "18446744073709551616", []token.Kind{token.Illegal}, "18446744073709551616", diag.LexNumberOverflow, 0, 20, "Numeric literal `18446744073709551616` is out of range"},
		{"float overflow", "1e400", []token.Kind{token.Illegal}, "1e400", diag.LexNumberOverflow, 0, 5, "Numeric literal `1e400` is out of range"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, rep := tokenize(t, tc.in)
			if got := kinds(toks); !reflect.DeepEqual(got, tc.kinds) {
				t.Fatalf("kinds = %v, want %v", got, tc.kinds)
			}
			if toks[0].Text != tc.illegal || !toks[0].Value.IsNone() {
				t.Fatalf("illegal token %q value %v", toks[0].Text, toks[0].Value)
			}
			if len(rep.diagnostics) != 1 {
				t.Fatalf("want exactly one diagnostic, got %v", rep.ErrorMessages())
			}
			d := rep.diagnostics[0]
			if d.Code != tc.code || d.Severity != diag.SevError {
				t.Fatalf("diag %s %s, want %s", d.Code.ID(), d.Severity, tc.code.ID())
			}
			if d.Primary.Start != tc.diagStart || d.Primary.End != tc.diagEnd {
				t.Fatalf("diag span %d..%d, want %d..%d", d.Primary.Start, d.Primary.End, tc.diagStart, tc.diagEnd)
			}
			if d.Message != tc.message {
				t.Fatalf("message %q, want %q", d.Message, tc.message)
			}
		})
	}
}

func TestStringLiterals(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `"hello"`, "hello"},
		{"empty", `""`, ""},
		{"newline escape", `"a\nb"`, "a\nb"},
		{"simple escapes", `"\\\"\'\b\f\r\t\v"`, "\\\"'\b\f\r\t\v"},
		{"hex", `"\x41\x7e"`, "A~"},
		{"hex high", `"\xff"`, "\u00ff"},
		{"unicode 4", `"\u0041\u00e9"`, "Aé"},
		{"unicode braces", `"\u{1F600}"`, "\U0001F600"},
		{"unicode braces short", `"\u{41}"`, "A"},
		{"raw unicode", `"héllo → мир"`, "héllo → мир"},
		{"line continuation", "\"a\\\nb\"", "ab"},
		{"crlf continuation", "\"a\\\r\nb\"", "ab"},
		{"cr continuation", "\"a\\\rb\"", "ab"},
		{"line separator", "\"a\\\u2028b\"", "ab"},
		{"paragraph separator", "\"a\\\u2029b\"", "ab"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, rep := tokenize(t, tc.in)
			expectNoDiags(t, tc.in, rep)
			if len(toks) != 1 || toks[0].Kind != token.StringLit {
				t.Fatalf("got %v", kinds(toks))
			}
			if v, ok := toks[0].Value.AsString(); !ok || v != tc.want {
				t.Fatalf("value %q, want %q", v, tc.want)
			}
			if toks[0].Text != tc.in {
				t.Fatalf("text %q, want the raw literal", toks[0].Text)
			}
		})
	}
}

func TestUnicodeEscapeIsOneCodepoint(t *testing.T) {
	toks, _ := tokenize(t, `"\u{1F600}"`)
	v, _ := toks[0].Value.AsString()
	if runes := []rune(v); len(runes) != 1 || runes[0] != 0x1F600 {
		t.Fatalf("decoded %U", runes)
	}
}

func TestStringErrors(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		kinds   []token.Kind
		codes   []string
		spans   [][2]uint32
		message string
	}{
		{"eof", `"abc`, []token.Kind{token.Illegal}, []string{"E002"}, [][2]uint32{{0, 4}}, "Encountered an unterminated string literal"},
		{"newline", "\"ab\ncd", []token.Kind{token.Illegal, token.Ident}, []string{"E002"}, [][2]uint32{{0, 3}}, ""},
		{"carriage return", "\"ab\rcd", []token.Kind{token.Illegal, token.Ident}, []string{"E002"}, [][2]uint32{{0, 3}}, ""},
		{"backslash at eof", `"ab\`, []token.Kind{token.Illegal}, []string{"E002"}, [][2]uint32{{0, 4}}, ""},
		{"surrogate", `"\uD800"`, []token.Kind{token.Illegal}, []string{"E006"}, [][2]uint32{{1, 7}}, "Encountered unicode escape of a surrogate codepoint `\\uD800`"},
		{"braced surrogate", `"\u{DFFF}"`, []token.Kind{token.Illegal}, []string{"E006"}, [][2]uint32{{1, 9}}, ""},
		{"above max", `"\u{110000}"`, []token.Kind{token.Illegal}, []string{"E006"}, [][2]uint32{{1, 11}}, "Encountered invalid unicode codepoint `\\u{110000}`"},
		{"huge", `"\u{FFFFFFFFFF}"`, []token.Kind{token.Illegal}, []string{"E006"}, [][2]uint32{{1, 15}}, ""},
		{"unknown escape", `"\q"`, []token.Kind{token.Illegal}, []string{"E003"}, [][2]uint32{{1, 3}}, "Encountered an invalid escape sequence in string literal `\\q`"},
		{"every escape reported", `"\q\z"`, []token.Kind{token.Illegal}, []string{"E003", "E003"}, [][2]uint32{{1, 3}, {3, 5}}, ""},
		{"bad hex digit", `"\xZZ"`, []token.Kind{token.Illegal}, []string{"E004"}, [][2]uint32{{3, 4}}, "Encountered illegal character `Z` in hex digit"},
		{"hex before quote", `"\x4"`, []token.Kind{token.Illegal}, []string{"E004"}, [][2]uint32{{4, 5}}, "Encountered illegal character `\"` in hex digit"},
		{"short unicode", `"\u12"`, []token.Kind{token.Illegal}, []string{"E004"}, [][2]uint32{{5, 6}}, ""},
		{"empty braces", `"\u{}"`, []token.Kind{token.Illegal}, []string{"E004"}, [][2]uint32{{4, 5}}, ""},
		{"missing brace", `"\u{41"`, []token.Kind{token.Illegal}, []string{"E003"}, [][2]uint32{{1, 6}}, ""},
		{"hex at eof", `"\x4`, []token.Kind{token.Illegal}, []string{"E003", "E002"}, [][2]uint32{{1, 4}, {0, 4}}, ""},
		{"braced at eof", `"\u{41`, []token.Kind{token.Illegal}, []string{"E003", "E002"}, [][2]uint32{{1, 6}, {0, 6}}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, rep := tokenize(t, tc.in)
			if got := kinds(toks); !reflect.DeepEqual(got, tc.kinds) {
				t.Fatalf("kinds = %v, want %v", got, tc.kinds)
			}
			if !toks[0].Value.IsNone() {
				t.Fatalf("failed literal carries value %v", toks[0].Value)
			}
			if got := rep.codes(); !reflect.DeepEqual(got, tc.codes) {
				t.Fatalf("codes = %v, want %v (%v)", got, tc.codes, rep.ErrorMessages())
			}
			for i, sp := range tc.spans {
				p := rep.diagnostics[i].Primary
				if p.Start != sp[0] || p.End != sp[1] {
					t.Fatalf("diag %d span %d..%d, want %d..%d", i, p.Start, p.End, sp[0], sp[1])
				}
			}
			if tc.message != "" && rep.diagnostics[0].Message != tc.message {
				t.Fatalf("message %q, want %q", rep.diagnostics[0].Message, tc.message)
			}
		})
	}
}

func TestUnterminatedStringResumesOnNextLine(t *testing.T) {
	toks, rep := tokenize(t, "\"ab\ncd \"")
	if got := kinds(toks); !reflect.DeepEqual(got, []token.Kind{token.Illegal, token.Ident, token.Illegal}) {
		t.Fatalf("kinds = %v", got)
	}
	if toks[1].Pos != (source.LineCol{Line: 2, Col: 1}) {
		t.Fatalf("ident position %+v", toks[1].Pos)
	}
	if got := rep.codes(); !reflect.DeepEqual(got, []string{"E002", "E002"}) {
		t.Fatalf("codes = %v", got)
	}
}

func TestLenientEscapes(t *testing.T) {
	rep := &testReporter{}
	toks := lexer.Tokenize(newFile(`"\q\é"`), lexer.Options{Reporter: rep, LenientEscapes: true})
	expectNoDiags(t, "lenient", rep)
	if v, _ := toks[0].Value.AsString(); toks[0].Kind != token.StringLit || v != "qé" {
		t.Fatalf("got %v %q", toks[0].Kind, v)
	}

	// остальные ошибки по-прежнему репортятся
	lexer.Tokenize(newFile(`"\uD800"`), lexer.Options{Reporter: rep, LenientEscapes: true})
	if got := rep.codes(); !reflect.DeepEqual(got, []string{"E006"}) {
		t.Fatalf("codes = %v", got)
	}
}

func TestLongestMatchOperators(t *testing.T) {
	expectKinds(t, ">>=", token.ShrAssign)
	expectKinds(t, "|>", token.KwReturn)
	expectKinds(t, ">>", token.Shr)
	expectKinds(t, ">>==", token.ShrAssign, token.Assign)
	expectKinds(t, "<>=", token.LtGt, token.Assign)
	expectKinds(t, "**==", token.StarStarAssign, token.Assign)
	expectKinds(t, "{|a|}", token.LBracePipe, token.Ident, token.PipeRBrace)
	expectKinds(t, "(|x|)", token.LParenPipe, token.Ident, token.PipeRParen)
	expectKinds(t, "a|>b", token.Ident, token.KwReturn, token.Ident)
	expectKinds(t, "||=", token.OrOr, token.Assign)
	expectKinds(t, "a::b", token.Ident, token.ColonColon, token.Ident)
	expectKinds(t, "x ..= y", token.Ident, token.DotDotEq, token.Ident)
	expectKinds(t, "> >=", token.Gt, token.GtEq)
}

func TestEveryOperatorLexesAlone(t *testing.T) {
	for _, op := range token.Operators {
		toks, rep := tokenize(t, op.Text)
		expectNoDiags(t, op.Text, rep)
		if len(toks) != 1 || toks[0].Kind != op.Kind || toks[0].Text != op.Text {
			t.Errorf("%q: got %v", op.Text, kinds(toks))
		}
	}
}

func TestDollar(t *testing.T) {
	expectKinds(t, "$$", token.DollarDollar)

	toks, rep := tokenize(t, "$a")
	if got := kinds(toks); !reflect.DeepEqual(got, []token.Kind{token.Illegal, token.Ident}) {
		t.Fatalf("kinds = %v", got)
	}
	d := rep.diagnostics[0]
	if d.Code != diag.LexIllegalChar || d.Message != "Encountered illegal character `$` in operator" {
		t.Fatalf("diag %s %q", d.Code.ID(), d.Message)
	}
	if d.Primary.Start != 0 || d.Primary.End != 1 || d.Label != "illegal character found here" {
		t.Fatalf("diag span/label %v %q", d.Primary, d.Label)
	}

	expectKinds(t, "$$$", token.DollarDollar, token.Illegal)
}

func TestNonASCIICharacter(t *testing.T) {
	toks, rep := tokenize(t, "a → b")
	if got := kinds(toks); !reflect.DeepEqual(got, []token.Kind{token.Ident, token.Illegal, token.Ident}) {
		t.Fatalf("kinds = %v", got)
	}
	if toks[1].Text != "→" || toks[1].Span.Len() != 3 {
		t.Fatalf("illegal token %q span %v", toks[1].Text, toks[1].Span)
	}
	if len(rep.diagnostics) != 1 {
		t.Fatalf("diags %v", rep.ErrorMessages())
	}
	d := rep.diagnostics[0]
	if d.Code != diag.LexNonASCIIChar || d.Message != "Encountered non-ASCII character `→`" {
		t.Fatalf("diag %s %q", d.Code.ID(), d.Message)
	}
	if len(d.Notes) != 2 || !strings.Contains(d.Notes[1], "U+2192 RIGHTWARDS ARROW") {
		t.Fatalf("notes %q", d.Notes)
	}
	if d.Primary != toks[1].Span {
		t.Fatalf("label span %v, token span %v", d.Primary, toks[1].Span)
	}
}

func TestUnexpectedASCIICharacter(t *testing.T) {
	toks, rep := tokenize(t, `a \ b`)
	if got := kinds(toks); !reflect.DeepEqual(got, []token.Kind{token.Ident, token.Illegal, token.Ident}) {
		t.Fatalf("kinds = %v", got)
	}
	d := rep.diagnostics[0]
	if d.Code != diag.LexNonASCIIChar || d.Message != "Encountered unexpected character `\\`" {
		t.Fatalf("diag %s %q", d.Code.ID(), d.Message)
	}

	_, rep = tokenize(t, "\x00")
	if got := rep.diagnostics[0].Message; got != "Encountered unexpected character `\\x00`" {
		t.Fatalf("control char message %q", got)
	}
}

func TestInvalidUTF8(t *testing.T) {
	toks, rep := tokenize(t, "a\xffb")
	if got := kinds(toks); !reflect.DeepEqual(got, []token.Kind{token.Ident, token.Illegal, token.Ident}) {
		t.Fatalf("kinds = %v", got)
	}
	if toks[1].Span.Len() != 1 {
		t.Fatalf("invalid byte should be one byte wide, got %v", toks[1].Span)
	}
	if !strings.Contains(rep.diagnostics[0].Message, "\uFFFD") {
		t.Fatalf("message %q", rep.diagnostics[0].Message)
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := expectKinds(t, "func", token.KwFunc)
	if !toks[0].Value.IsNone() {
		t.Fatal("keywords carry no value")
	}

	toks = expectKinds(t, "func2", token.Ident)
	if v, _ := toks[0].Value.AsString(); v != "func2" || toks[0].Text != "func2" {
		t.Fatalf("ident value %q text %q", v, toks[0].Text)
	}

	for text, want := range map[string]bool{"true": true, "false": false} {
		toks = expectKinds(t, text, token.BoolLit)
		if v, ok := toks[0].Value.AsBool(); !ok || v != want {
			t.Fatalf("%s: value %v", text, toks[0].Value)
		}
	}

	expectKinds(t, "_", token.Ident)
	expectKinds(t, "__x1", token.Ident)
	expectKinds(t, "Func TRUE", token.Ident, token.Ident)
	// типы пока обычные идентификаторы
	expectKinds(t, "int str void nil", token.Ident, token.Ident, token.Ident, token.Ident)
	expectKinds(t, "var x = 1", token.KwVar, token.Ident, token.Assign, token.IntLit)
	expectKinds(t, "if x |> y else", token.KwIf, token.Ident, token.KwReturn, token.Ident, token.KwElse)
	expectKinds(t, "a1b", token.Ident)
	expectKinds(t, "1a", token.IntLit, token.Ident)
}

func TestPositions(t *testing.T) {
	toks := expectKinds(t, "a\nbb", token.Ident, token.Ident)
	if toks[1].Pos != (source.LineCol{Line: 2, Col: 1}) {
		t.Fatalf("bb at %+v, want 2:1", toks[1].Pos)
	}

	toks = expectKinds(t, "\t x\r\n  y  \n\n z", token.Ident, token.Ident, token.Ident)
	want := []source.LineCol{{Line: 1, Col: 3}, {Line: 2, Col: 3}, {Line: 4, Col: 2}}
	for i, tok := range toks {
		if tok.Pos != want[i] {
			t.Errorf("token %d (%q) at %+v, want %+v", i, tok.Text, tok.Pos, want[i])
		}
	}
}

func TestPositionsMatchFileSet(t *testing.T) {
	input := "var s = \"a\\q\"\n  x = 1_ + $ é 0.5 |>\n\"open\n\ty >>= 2e10"
	file := newFile(input)
	toks := lexer.Tokenize(file, lexer.Options{})
	for _, tok := range toks {
		if want := file.Position(tok.Span.Start); tok.Pos != want {
			t.Errorf("%q: pos %+v, want %+v", tok.Text, tok.Pos, want)
		}
	}
}

func TestSpanRoundTripAndOrdering(t *testing.T) {
	input := "pub func f(a, b) -> int {\n  |> a ** 2 + b // 3 \"s\\t\" \"bad\\q\" 1_ é $ 1e400\n}\n\"unterminated"
	file := newFile(input)
	toks := lexer.Tokenize(file, lexer.Options{})
	if len(toks) == 0 {
		t.Fatal("no tokens")
	}
	var prevEnd uint32
	for i, tok := range toks {
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Fatalf("token %d: source slice %q != text %q", i, got, tok.Text)
		}
		if tok.Span.Empty() {
			t.Fatalf("token %d (%v) has an empty span", i, tok.Kind)
		}
		if i > 0 && tok.Span.Start < prevEnd {
			t.Fatalf("token %d overlaps the previous one", i)
		}
		if strings.TrimLeft(tok.Text, " \t\r\n") != tok.Text {
			t.Fatalf("token %d includes leading whitespace: %q", i, tok.Text)
		}
		prevEnd = tok.Span.End
	}
}

func TestDeterminism(t *testing.T) {
	input := "var x = \"a\\u{1F600}\" + 1_000 $ é \"\\q\" 1e |> {|y|}"
	toks1, rep1 := tokenize(t, input)
	toks2, rep2 := tokenize(t, input)
	if !reflect.DeepEqual(toks1, toks2) {
		t.Fatal("token streams differ between runs")
	}
	if !reflect.DeepEqual(rep1.diagnostics, rep2.diagnostics) {
		t.Fatal("diagnostics differ between runs")
	}
}

func TestEOFHandling(t *testing.T) {
	toks, _ := tokenize(t, "x ")
	if len(toks) != 1 || toks[0].Kind != token.Ident {
		t.Fatalf("Tokenize must not include EOF by default: %v", kinds(toks))
	}

	toks = lexer.Tokenize(newFile("x "), lexer.Options{EmitEOF: true})
	if got := kinds(toks); !reflect.DeepEqual(got, []token.Kind{token.Ident, token.EOF}) {
		t.Fatalf("kinds = %v", got)
	}
	eof := toks[1]
	if eof.Span.Start != 2 || !eof.Span.Empty() || eof.Pos != (source.LineCol{Line: 1, Col: 3}) {
		t.Fatalf("eof token %+v", eof)
	}

	lx := lexer.New(newFile(""), lexer.Options{})
	for range 3 {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("Next after end = %v", tok.Kind)
		}
	}
	if toks, _ := tokenize(t, " \t\r\n "); len(toks) != 0 {
		t.Fatalf("whitespace produced %v", kinds(toks))
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx := lexer.New(newFile("a b"), lexer.Options{})
	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1.Text != "a" || p2.Text != "a" {
		t.Fatalf("peek %q %q", p1.Text, p2.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("next after peek %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("second token %q", n.Text)
	}
}

func TestScratchBufferIsNotAliased(t *testing.T) {
	toks := expectKinds(t, `"first" "second" 12 "x"`, token.StringLit, token.StringLit, token.IntLit, token.StringLit)
	want := []string{"first", "second", "", "x"}
	for i, w := range want {
		if w == "" {
			continue
		}
		if v, _ := toks[i].Value.AsString(); v != w {
			t.Fatalf("token %d value %q, want %q", i, v, w)
		}
	}
}

func TestSharedInterner(t *testing.T) {
	strs := source.NewInterner()
	a := lexer.Tokenize(newFile("foo bar"), lexer.Options{Strings: strs})
	b := lexer.Tokenize(newFile("bar foo"), lexer.Options{Strings: strs})
	if a[0].Lexeme != b[1].Lexeme || a[1].Lexeme != b[0].Lexeme {
		t.Fatal("same lexeme interned to different ids")
	}
	if strs.MustLookup(a[0].Lexeme) != "foo" {
		t.Fatalf("lookup %q", strs.MustLookup(a[0].Lexeme))
	}
}

func TestDiagnosticLabelsAndNotes(t *testing.T) {
	_, rep := tokenize(t, `"abc`)
	d := rep.diagnostics[0]
	if d.Label != "unterminated string literal here" {
		t.Fatalf("label %q", d.Label)
	}
	if len(d.Notes) != 1 || d.Notes[0] != "Make sure there are no unmatched string quotes in any string literal in the source" {
		t.Fatalf("notes %q", d.Notes)
	}

	_, rep = tokenize(t, `"\q"`)
	d = rep.diagnostics[0]
	if d.Label != "invalid escape sequence here" || len(d.Notes) != 1 {
		t.Fatalf("escape diag %+v", d)
	}
}

func TestNilReporterStillCounts(t *testing.T) {
	lx := lexer.New(newFile(`$ "x`), lexer.Options{})
	toks := lx.All()
	if len(toks) != 2 || lx.ErrorCount() != 2 {
		t.Fatalf("tokens %v errors %d", kinds(toks), lx.ErrorCount())
	}
}
