package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"tungsten/internal/source"
	"tungsten/internal/token"
)

type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Span  source.Span `json:"span"`
	Line  uint32      `json:"line"`
	Col   uint32      `json:"col"`
	Value string      `json:"value,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
		if !tok.Value.IsNone() && tok.Kind.IsLiteral() {
			fmt.Fprintf(w, " = %s", tok.Value)
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// BuildTokenOutput converts tokens into their JSON shape, stopping after EOF.
func BuildTokenOutput(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
			Line: tok.Pos.Line,
			Col:  tok.Pos.Col,
		}
		if !tok.Value.IsNone() && tok.Kind.IsLiteral() {
			out.Value = tok.Value.String()
		}
		output = append(output, out)

		if tok.Kind == token.EOF {
			break
		}
	}
	return output
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokenOutput(tokens))
}

// FileTokens groups the tokens of one file for directory output.
type FileTokens struct {
	Path   string        `json:"path"`
	Cached bool          `json:"cached,omitempty"`
	Tokens []TokenOutput `json:"tokens"`
}

// FormatFileTokensJSON writes one JSON array with an entry per file.
func FormatFileTokensJSON(w io.Writer, files []FileTokens) error {
	if files == nil {
		files = []FileTokens{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(files)
}
