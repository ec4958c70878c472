package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"tungsten/internal/source"
	"tungsten/internal/token"
)

// CheckTokenInvariants runs the span invariants every token stream must hold:
// 1) every span belongs to sf and lies within its content
// 2) spans are strictly increasing and do not overlap
// 3) Text is exactly the source slice and Pos is the position of Span.Start
// 4) only the trailing EOF token may be empty
func CheckTokenInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range toks {
		sp := tok.Span
		if !tok.Kind.IsValid() {
			return fmt.Errorf("token %d: invalid kind %d", i, tok.Kind)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.Start > sp.End || sp.End > size {
			return fmt.Errorf("token %d: span %d..%d outside content of %d bytes", i, sp.Start, sp.End, size)
		}
		if i > 0 && sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %d..%d overlaps previous end %d", i, sp.Start, sp.End, prevEnd)
		}
		if tok.Kind.IsEOF() {
			if i != len(toks)-1 {
				return fmt.Errorf("token %d: EOF before end of stream", i)
			}
		} else if sp.Start == sp.End {
			return fmt.Errorf("token %d (%s): empty span at %d", i, tok.Kind, sp.Start)
		}
		if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token %d: text %q does not match source %q", i, tok.Text, got)
		}
		if want := sf.Position(sp.Start); tok.Pos != want {
			return fmt.Errorf("token %d: position %d:%d, want %d:%d", i, tok.Pos.Line, tok.Pos.Col, want.Line, want.Col)
		}
		prevEnd = sp.End
	}
	return nil
}
