package diag

import (
	"cmp"
	"math"
	"slices"

	"fortio.org/safecast"

	"tungsten/internal/source"
)

// Bag collects diagnostics up to a fixed limit. Items past the limit are
// dropped and Add reports false.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag creates a bag holding at most limit diagnostics; limit is clamped to uint16.
func NewBag(limit int) *Bag {
	capped := clampLimit(limit)
	return &Bag{
		items: make([]Diagnostic, 0, min(int(capped), 64)),
		max:   capped,
	}
}

func clampLimit(n int) uint16 {
	limit, err := safecast.Conv[uint16](n)
	switch {
	case err == nil:
		return limit
	case n < 0:
		return 0
	default:
		return math.MaxUint16
	}
}

func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 { return b.max }

func (b *Bag) Len() int { return len(b.items) }

// Items exposes the backing slice; callers must not modify it.
func (b *Bag) Items() []Diagnostic { return b.items }

func (b *Bag) countAtLeast(sev Severity) int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity >= sev {
			n++
		}
	}
	return n
}

func (b *Bag) ErrorCount() int { return b.countAtLeast(SevError) }

func (b *Bag) HasErrors() bool { return b.ErrorCount() > 0 }

// HasWarnings is true for warnings and anything more severe.
func (b *Bag) HasWarnings() bool { return b.countAtLeast(SevWarning) > 0 }

// Merge appends everything from other, raising the limit when needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.max = max(b.max, clampLimit(len(b.items)+len(other.items)))
	for _, d := range other.items {
		b.Add(d)
	}
}

// Sort orders by file, start, end, then severity (most severe first) and code.
// Equal diagnostics keep their report order.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup keeps the first diagnostic for every (code, span) pair.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span source.Span
	}
	seen := make(map[key]struct{}, len(b.items))
	b.Filter(func(d Diagnostic) bool {
		k := key{d.Code, d.Primary}
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// Filter keeps diagnostics for which keep returns true.
func (b *Bag) Filter(keep func(Diagnostic) bool) {
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool { return !keep(d) })
}
