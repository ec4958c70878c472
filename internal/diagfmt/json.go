package diagfmt

import (
	"encoding/json"
	"io"

	"tungsten/internal/diag"
	"tungsten/internal/source"
)

// LocationJSON locates a diagnostic. Line and column fields are present only
// when JSONOpts.IncludePositions is set.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Title    string       `json:"title"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Label    string       `json:"label,omitempty"`
	Notes    []string     `json:"notes,omitempty"`
}

// DiagnosticsOutput is the top-level object written by JSON.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func (opts JSONOpts) location(span source.Span, fs *source.FileSet) LocationJSON {
	loc := LocationJSON{StartByte: span.Start, EndByte: span.End}
	f, ok := fs.Lookup(span.File)
	if !ok {
		// NoFileID и прочие диагностики без файла
		return loc
	}
	loc.File = displayPath(f, fs, opts.PathMode)
	if opts.IncludePositions {
		start, end := f.Position(span.Start), f.Position(span.End)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

func (opts JSONOpts) convert(d *diag.Diagnostic, fs *source.FileSet) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Title:    d.Code.Title(),
		Message:  d.Message,
		Location: opts.location(d.Primary, fs),
		Label:    d.Label,
	}
	// timing notes are the payload of OBS201, so they are never hidden
	if len(d.Notes) > 0 && (opts.IncludeNotes || d.Code == diag.ObsTimings) {
		out.Notes = append([]string(nil), d.Notes...)
	}
	return out
}

// BuildDiagnosticsOutput converts at most opts.Max diagnostics (all when Max <= 0).
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, len(items)), Count: len(items)}
	for i := range items {
		out.Diagnostics[i] = opts.convert(&items[i], fs)
	}
	return out
}

// JSON writes the diagnostics as one indented JSON document.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}

// Short prints one line per diagnostic: "error E002 path:line:col message".
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, includeNotes bool) error {
	out := diag.FormatShortDiagnostics(bag.Items(), fs, includeNotes)
	if out == "" {
		return nil
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}
