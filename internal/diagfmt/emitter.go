package diagfmt

import (
	"bytes"
	"io"
	"sync"

	"tungsten/internal/diag"
	"tungsten/internal/source"
)

// Emitter queues diagnostics and renders them on Flush. It satisfies
// diag.Reporter so a lexer can report straight into it.
type Emitter struct {
	mu    sync.Mutex
	w     io.Writer
	fs    *source.FileSet
	opts  PrettyOpts
	queue []diag.Diagnostic
}

func NewEmitter(w io.Writer, fs *source.FileSet, opts PrettyOpts) *Emitter {
	return &Emitter{w: w, fs: fs, opts: opts}
}

// Add enqueues d.
func (e *Emitter) Add(d diag.Diagnostic) {
	e.mu.Lock()
	e.queue = append(e.queue, d)
	e.mu.Unlock()
}

func (e *Emitter) Report(d diag.Diagnostic) {
	e.Add(d)
}

// Len returns the number of queued diagnostics.
func (e *Emitter) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

// Flush renders everything queued so far in insertion order and empties the
// queue. Flushing an empty queue writes nothing.
func (e *Emitter) Flush() error {
	e.mu.Lock()
	queue := e.queue
	e.queue = nil
	e.mu.Unlock()

	if len(queue) == 0 {
		return nil
	}
	var buf bytes.Buffer
	p := newPalette(e.opts.Color)
	for i := range queue {
		renderDiagnostic(&buf, &queue[i], e.fs, e.opts, p)
	}
	_, err := e.w.Write(buf.Bytes())
	return err
}
