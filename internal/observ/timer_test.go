package observ

import (
	"testing"
	"time"
)

// fakeClock сдвигается на step при каждом вызове.
func fakeClock(step time.Duration) func() time.Time {
	cur := time.Unix(0, 0)
	return func() time.Time {
		cur = cur.Add(step)
		return cur
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(time.Millisecond)

	load := tm.Begin("load")
	tm.End(load, "")
	done := tm.Track("lex")
	done("3 files")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %d", len(r.Phases))
	}
	if r.Phases[0].DurationMS != 1 || r.Phases[1].DurationMS != 1 || r.TotalMS != 2 {
		t.Fatalf("unexpected durations %+v", r)
	}
	if r.Phases[1].Note != "3 files" {
		t.Fatalf("note = %q", r.Phases[1].Note)
	}

	want := "timings:\n" +
		"  load                    1.00 ms\n" +
		"  lex                     1.00 ms  // 3 files\n" +
		"  total                   2.00 ms\n"
	if got := tm.Summary(); got != want {
		t.Fatalf("summary:\n%q\nwant\n%q", got, want)
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Fatalf("unexpected report %+v", r)
	}
}
