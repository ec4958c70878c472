package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"tungsten/internal/source"
)

// shortLine is one rendered row; Line == 0 means the diagnostic has no file.
type shortLine struct {
	sev, code, path string
	line, col       uint32
	msg             string
}

func (l shortLine) String() string {
	if l.line == 0 {
		return fmt.Sprintf("%s %s %s %s", l.sev, l.code, l.path, l.msg)
	}
	return fmt.Sprintf("%s %s %s:%d:%d %s", l.sev, l.code, l.path, l.line, l.col, l.msg)
}

// FormatGoldenDiagnostics renders one line per diagnostic (and per note when
// includeNotes is set) for golden files. Paths are relative to the FileSet
// base directory and diagnostics without a file are skipped.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	return renderLines(diags, fs, includeNotes, "relative", false)
}

// FormatShortDiagnostics is the CLI variant: paths stay as given and fileless
// diagnostics (I/O failures) are printed with "-" as their location.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	return renderLines(diags, fs, includeNotes, "", true)
}

func renderLines(diags []Diagnostic, fs *source.FileSet, includeNotes bool, pathMode string, keepFileless bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	lines := make([]shortLine, 0, len(diags))
	for i := range diags {
		d := &diags[i]
		at, ok := locate(fs, d.Primary, pathMode)
		if !ok && !keepFileless {
			continue
		}
		at.sev, at.code, at.msg = d.Severity.Word(), d.Code.ID(), oneLine(d.Message)
		lines = append(lines, at)
		if !includeNotes {
			continue
		}
		// заметки без собственного span привязываем к основному
		for _, note := range d.Notes {
			n := at
			n.sev, n.msg = "note", oneLine(note)
			lines = append(lines, n)
		}
	}

	slices.SortStableFunc(lines, func(a, b shortLine) int {
		return cmp.Or(
			strings.Compare(a.path, b.path),
			cmp.Compare(a.line, b.line),
			cmp.Compare(a.col, b.col),
			strings.Compare(a.sev, b.sev),
			strings.Compare(a.code, b.code),
		)
	})

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return strings.Join(out, "\n")
}

// locate fills path, line and column; fileless spans get "-".
func locate(fs *source.FileSet, span source.Span, pathMode string) (shortLine, bool) {
	file, ok := fs.Lookup(span.File)
	if !ok {
		return shortLine{path: "-"}, false
	}
	pos := file.Position(span.Start)
	path := filepath.ToSlash(file.FormatPath(pathMode, fs.BaseDir()))
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	return shortLine{path: path, line: pos.Line, col: pos.Col}, true
}

// oneLine folds line breaks so every entry stays on a single row.
func oneLine(msg string) string {
	msg = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(msg)
	return strings.TrimSpace(msg)
}
