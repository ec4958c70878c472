package driver

import (
	"context"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"tungsten/internal/source"
)

func TestTokenizeDirOrderAndProgress(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.tg", "b $")
	writeSource(t, dir, "a.tg", "a")
	writeSource(t, dir, "nested/c.tg", "c c c")
	writeSource(t, dir, "notes.txt", "ignored")

	var mu sync.Mutex
	var events []ProgressEvent
	sink := ProgressFunc(func(ev ProgressEvent) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	})

	strs := source.NewInterner()
	fs, results, err := TokenizeDir(context.Background(), dir, DirOptions{
		Options:  Options{MaxDiagnostics: 5, Strings: strs},
		Jobs:     2,
		Progress: sink,
	})
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}

	wantPaths := []string{
		filepath.Join(dir, "a.tg"),
		filepath.Join(dir, "b.tg"),
		filepath.Join(dir, "nested", "c.tg"),
	}
	var gotPaths []string
	for _, r := range results {
		gotPaths = append(gotPaths, r.Path)
	}
	if !slices.Equal(gotPaths, wantPaths) {
		t.Fatalf("paths = %v, want %v", gotPaths, wantPaths)
	}

	if n := len(results[2].Tokens); n != 3 {
		t.Fatalf("c.tg tokens = %d", n)
	}
	if !results[1].Bag.HasErrors() || results[0].Bag.HasErrors() {
		t.Fatal("only b.tg has a lexical error")
	}
	// общий интернер: одинаковые лексемы в разных файлах дают один id
	if results[2].Tokens[0].Lexeme != results[2].Tokens[1].Lexeme {
		t.Fatal("lexemes of one file differ")
	}
	if fs.Len() != 3 || fs.Get(results[0].FileID).Path != filepath.ToSlash(wantPaths[0]) {
		t.Fatalf("file set has %d files", fs.Len())
	}

	final := make(map[string]ProgressEvent)
	for _, ev := range events {
		final[ev.File] = ev
	}
	if ev := final[wantPaths[1]]; ev.Status != StatusError || ev.Stage != StageLex {
		t.Fatalf("b.tg final event %+v", ev)
	}
	if ev := final[wantPaths[0]]; ev.Status != StatusDone {
		t.Fatalf("a.tg final event %+v", ev)
	}
}

func TestTokenizeDirEmpty(t *testing.T) {
	fs, results, err := TokenizeDir(context.Background(), t.TempDir(), DirOptions{})
	if err != nil || results != nil || fs.Len() != 0 {
		t.Fatalf("empty dir: %v %v", results, err)
	}
}

func TestTokenizeDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.tg", "a")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := TokenizeDir(ctx, dir, DirOptions{}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestTokenizeDirMissing(t *testing.T) {
	if _, _, err := TokenizeDir(context.Background(), filepath.Join(t.TempDir(), "nope"), DirOptions{}); err == nil {
		t.Fatal("expected walk error")
	}
}

func TestChannelSink(t *testing.T) {
	ch := make(chan ProgressEvent, 1)
	ChannelSink{Ch: ch}.OnEvent(ProgressEvent{File: "x"})
	if ev := <-ch; ev.File != "x" {
		t.Fatalf("got %+v", ev)
	}
	ChannelSink{}.OnEvent(ProgressEvent{})
}
