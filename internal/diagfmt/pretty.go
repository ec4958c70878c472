package diagfmt

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"tungsten/internal/diag"
	"tungsten/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	gutter          *color.Color
	bold            *color.Color
	note            *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		gutter: color.New(color.FgBlue, color.Bold),
		bold:   color.New(color.Bold),
		note:   color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.gutter, p.bold, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	error[E002]: <Message>
//	  --> <path>:<line>:<col>
//	   |
//	 1 | <source>
//	   |     ^^^^ <label>
//	   |
//	   = note: <note>
//
// Контекст: opts.Context строк до и после метки.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	items := bag.Items()
	var buf bytes.Buffer
	p := newPalette(opts.Color)
	for i := range items {
		renderDiagnostic(&buf, &items[i], fs, opts, p)
	}
	_, _ = w.Write(buf.Bytes())
}

func renderDiagnostic(w *bytes.Buffer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	sevColor := p.severity(d.Severity)
	fmt.Fprintf(w, "%s%s\n",
		sevColor.Sprintf("%s[%s]", d.Severity.Word(), d.Code.ID()),
		p.bold.Sprintf(": %s", d.Message))

	var file *source.File
	if fs != nil {
		file, _ = fs.Lookup(d.Primary.File)
	}
	if file == nil {
		renderNotes(w, d, opts, p, 1)
		w.WriteByte('\n')
		return
	}

	start := file.Position(d.Primary.Start)
	firstLine, lastLine := labelLines(file, d.Primary)

	ctx := uint32(max(opts.Context, 0)) // #nosec G115 -- non-negative int8
	from := uint32(1)
	if firstLine > ctx {
		from = firstLine - ctx
	}
	to := min(lastLine+ctx, max(file.LineCount(), lastLine))
	width := len(strconv.FormatUint(uint64(to), 10))
	blank := strings.Repeat(" ", width+1)

	fmt.Fprintf(w, "%s%s %s:%d:%d\n", strings.Repeat(" ", width), p.gutter.Sprint("-->"),
		displayPath(file, fs, opts.PathMode), start.Line, start.Col)
	fmt.Fprintf(w, "%s%s\n", blank, p.gutter.Sprint("|"))

	for ln := from; ln <= to; ln++ {
		text := truncateLine(expandTabs(file.GetLine(ln)), opts.Width)
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", width, ln), text)

		m, ok := lineMarker(file, ln, d.Primary, firstLine, lastLine)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s%s %s%s", blank, p.gutter.Sprint("|"),
			strings.Repeat(" ", m.pad), sevColor.Sprint(strings.Repeat("^", m.width)))
		if ln == lastLine && d.Label != "" {
			fmt.Fprintf(w, " %s", sevColor.Sprint(d.Label))
		}
		w.WriteByte('\n')
	}
	fmt.Fprintf(w, "%s%s\n", blank, p.gutter.Sprint("|"))

	renderNotes(w, d, opts, p, width+1)
	w.WriteByte('\n')
}

func renderNotes(w *bytes.Buffer, d *diag.Diagnostic, opts PrettyOpts, p palette, indent int) {
	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		fmt.Fprintf(w, "%s%s %s\n", strings.Repeat(" ", indent), p.note.Sprint("= note:"), note)
	}
}

func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	default:
		return f.FormatPath(mode.String(), "")
	}
}
