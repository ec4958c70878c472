package source

// Tracker computes positions incrementally for offsets that only move forward.
// It produces the same result as File.Position in linear total time.
type Tracker struct {
	content   []byte
	off       uint32
	line      uint32
	lineStart uint32
}

// NewTracker returns a tracker positioned at the beginning of content.
func NewTracker(content []byte) Tracker {
	return Tracker{content: content, line: 1}
}

// Advance moves the tracker to off and returns its position.
// Offsets behind the current one are resolved from scratch.
func (t *Tracker) Advance(off uint32) LineCol {
	if n := uint32(len(t.content)); off > n { // #nosec G115 -- bounded by FileSet.Add
		off = n
	}
	if off < t.off {
		t.off, t.line, t.lineStart = 0, 1, 0
	}
	for i := t.off; i < off; i++ {
		if t.content[i] == '\n' {
			t.line++
			t.lineStart = i + 1
		}
	}
	t.off = off
	return LineCol{Line: t.line, Col: off - t.lineStart + 1}
}

// Pos returns the position of the last offset passed to Advance.
func (t *Tracker) Pos() LineCol {
	return LineCol{Line: t.line, Col: t.off - t.lineStart + 1}
}
