package diagfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"tungsten/internal/source"
)

const tabWidth = 4

// displayWidth measures s in terminal cells; tabs count as tabWidth.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		if r == '\t' {
			w += tabWidth
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// markerRange is the part of one source line covered by a label, in cells.
type markerRange struct {
	pad   int
	width int
}

// lineMarker computes where the underline for line ln goes. Empty spans and
// spans at end of file still get one caret.
func lineMarker(f *source.File, ln uint32, sp source.Span, firstLine, lastLine uint32) (markerRange, bool) {
	if ln < firstLine || ln > lastLine {
		return markerRange{}, false
	}
	lineStart, lineEnd, ok := f.LineBounds(ln)
	if !ok {
		return markerRange{}, false
	}
	segStart, segEnd := lineStart, lineEnd
	if ln == firstLine {
		segStart = min(max(sp.Start, lineStart), lineEnd)
	}
	if ln == lastLine {
		segEnd = min(max(sp.End, segStart), lineEnd)
	}
	pad := displayWidth(string(f.Content[lineStart:segStart]))
	width := displayWidth(string(f.Content[segStart:segEnd]))
	if width == 0 {
		width = 1
	}
	return markerRange{pad: pad, width: width}, true
}

// labelLines returns the first and last line touched by sp. A span that
// stops right after a newline does not pull in the following line.
func labelLines(f *source.File, sp source.Span) (first, last uint32) {
	start := f.Position(sp.Start)
	end := f.Position(sp.End)
	first, last = start.Line, end.Line
	if last > first && end.Col == 1 {
		last--
	}
	return first, last
}

func truncateLine(s string, width uint8) string {
	if width == 0 || runewidth.StringWidth(s) <= int(width) {
		return s
	}
	return runewidth.Truncate(s, int(width), "...")
}
