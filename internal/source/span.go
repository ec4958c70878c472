package source

import "fmt"

// Span is a half-open byte range [Start, End) inside one file.
type Span struct {
	File       FileID
	Start, End uint32
}

func (s Span) Empty() bool { return s.Start >= s.End }

func (s Span) Len() uint32 {
	if s.Empty() {
		return 0
	}
	return s.End - s.Start
}

// String renders "file:start-end"; used in test failures and traces.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}
