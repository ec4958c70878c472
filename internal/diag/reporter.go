package diag

import "tungsten/internal/source"

// Reporter receives diagnostics from a pass. The lexer depends on nothing else.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter stores into Bag; a nil Bag discards.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// MultiReporter forwards to every non-nil reporter in order.
type MultiReporter []Reporter

func (m MultiReporter) Report(d Diagnostic) {
	for _, r := range m {
		if r != nil {
			r.Report(d)
		}
	}
}

type ReporterFunc func(Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) {
	if f != nil {
		f(d)
	}
}

// ReportBuilder fills in label and notes before the diagnostic reaches its
// Reporter. All methods accept a nil receiver.
type ReportBuilder struct {
	sink Reporter
	d    Diagnostic
	sent bool
}

// ReportError starts an error-level diagnostic; nothing is reported until Emit.
func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{sink: r, d: NewError(code, primary, msg)}
}

func (b *ReportBuilder) WithLabel(label string) *ReportBuilder {
	if b != nil {
		b.d.Label = label
	}
	return b
}

func (b *ReportBuilder) WithNote(note string) *ReportBuilder {
	if b != nil {
		b.d.Notes = append(b.d.Notes, note)
	}
	return b
}

// Emit reports the diagnostic; later calls do nothing.
func (b *ReportBuilder) Emit() {
	if b == nil || b.sent {
		return
	}
	b.sent = true
	if b.sink != nil {
		b.sink.Report(b.d)
	}
}
