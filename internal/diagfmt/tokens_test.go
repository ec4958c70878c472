package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"tungsten/internal/lexer"
	"tungsten/internal/source"
)

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.tg", []byte("x = 42\n|> \"s\""))
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{EmitEOF: true})

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	want := "" +
		"  1: Ident           \"x\" at 1:1-1:2\n" +
		"  2: Assign          \"=\" at 1:3-1:4\n" +
		"  3: IntLit          \"42\" at 1:5-1:7 = 42\n" +
		"  4: KwReturn        \"|>\" at 2:1-2:3\n" +
		"  5: StringLit       \"\\\"s\\\"\" at 2:4-2:7 = \"s\"\n" +
		"  6: EOF             at 2:7-2:7\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.tg", []byte("a\n 1.5"))
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{})

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if len(out) != 2 {
		t.Fatalf("got %d tokens", len(out))
	}
	if out[0].Kind != "Ident" || out[0].Value != "" {
		t.Errorf("ident entry %+v", out[0])
	}
	if out[1].Kind != "FloatLit" || out[1].Value != "1.5" || out[1].Line != 2 || out[1].Col != 2 {
		t.Errorf("float entry %+v", out[1])
	}
}

func TestFormatFileTokensJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatFileTokensJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[]\n" {
		t.Fatalf("empty run should encode as [], got %q", buf.String())
	}

	fs := source.NewFileSet()
	id := fs.AddVirtual("a.tg", []byte("var"))
	files := []FileTokens{{Path: "a.tg", Cached: true, Tokens: BuildTokenOutput(lexer.Tokenize(fs.Get(id), lexer.Options{}))}}
	buf.Reset()
	if err := FormatFileTokensJSON(&buf, files); err != nil {
		t.Fatal(err)
	}
	var out []FileTokens
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out) != 1 || out[0].Path != "a.tg" || !out[0].Cached || len(out[0].Tokens) != 1 || out[0].Tokens[0].Kind != "KwVar" {
		t.Fatalf("unexpected output %+v", out)
	}
}
