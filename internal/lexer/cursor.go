package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"tungsten/internal/source"
)

// Cursor reads one file byte by byte. Off never exceeds len(src).
type Cursor struct {
	src  []byte
	file source.FileID
	Off  uint32
}

// NewCursor panics on files larger than 4 GiB; FileSet.Add rejects them first.
func NewCursor(f *source.File) Cursor {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("file %s: %w", f.Path, err))
	}
	return Cursor{src: f.Content, file: f.ID}
}

func (c *Cursor) end() uint32 { return uint32(len(c.src)) } // #nosec G115 -- checked in NewCursor

func (c *Cursor) EOF() bool { return c.Off >= c.end() }

// PeekAt returns the byte n positions ahead; ok is false past the end.
func (c *Cursor) PeekAt(n uint32) (b byte, ok bool) {
	if i := c.Off + n; i < c.end() {
		return c.src[i], true
	}
	return 0, false
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	b, _ := c.PeekAt(0)
	return b
}

// Peek2 needs both bytes to exist.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if b1, ok = c.PeekAt(1); !ok {
		return 0, 0, false
	}
	return c.src[c.Off], b1, true
}

// Rest is the unread tail, nil at EOF.
func (c *Cursor) Rest() []byte {
	if c.EOF() {
		return nil
	}
	return c.src[c.Off:]
}

// Bump consumes and returns one byte; at EOF it returns 0 and stays put.
func (c *Cursor) Bump() byte {
	b, ok := c.PeekAt(0)
	if ok {
		c.Off++
	}
	return b
}

// Eat consumes the next byte only if it equals b.
func (c *Cursor) Eat(b byte) bool {
	if next, ok := c.PeekAt(0); ok && next == b {
		c.Off++
		return true
	}
	return false
}

// Advance skips n bytes, stopping at EOF.
func (c *Cursor) Advance(n int) {
	step, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("cursor advance: %w", err))
	}
	c.Off = min(c.Off+step, c.end())
}

// Mark is a saved offset; the scanners take one before every token.
type Mark uint32

func (c *Cursor) Mark() Mark { return Mark(c.Off) }

func (c *Cursor) Reset(m Mark) { c.Off = uint32(m) }

// SpanFrom covers everything consumed since m.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.file, Start: uint32(m), End: c.Off}
}

// SpanAt covers the next n bytes, clamped to the end of the file.
func (c *Cursor) SpanAt(n uint32) source.Span {
	return source.Span{File: c.file, Start: c.Off, End: min(c.Off+n, c.end())}
}
