package diag

import (
	"sort"
)

// Bag collects diagnostics with an optional capacity limit.
type Bag struct {
	items   []Diagnostic
	cap     int
	dropped int
}

// NewBag creates a bag. maxCount <= 0 means unlimited.
func NewBag(maxCount int) *Bag {
	return &Bag{cap: maxCount}
}

// Add appends a diagnostic. It returns false when the bag is full and the
// diagnostic was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if b.cap > 0 && len(b.items) >= b.cap {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Len reports the number of collected diagnostics.
func (b *Bag) Len() int { return len(b.items) }

// Dropped reports how many diagnostics were rejected due to the cap.
func (b *Bag) Dropped() int { return b.dropped }

// Items returns the collected diagnostics. The slice is owned by the bag.
func (b *Bag) Items() []Diagnostic { return b.items }

// HasErrors reports whether any collected diagnostic is an error.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any collected diagnostic is a warning.
func (b *Bag) HasWarnings() bool {
	for _, d := range b.items {
		if d.Severity == SevWarning {
			return true
		}
	}
	return false
}

// Merge moves all diagnostics from other into b, honoring b's cap.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	for _, d := range other.items {
		b.Add(d)
	}
	b.dropped += other.dropped
}

// Sort orders diagnostics by file, start offset, end offset, then by
// descending severity and ascending code. The order is deterministic for
// stable output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup removes adjacent duplicates after sorting. Two diagnostics are
// duplicates when code, severity, primary span, and message all match.
func (b *Bag) Dedup() {
	if len(b.items) < 2 {
		return
	}
	b.Sort()
	out := b.items[:1]
	for _, d := range b.items[1:] {
		last := out[len(out)-1]
		if d.Code == last.Code && d.Severity == last.Severity &&
			d.Primary == last.Primary && d.Message == last.Message {
			continue
		}
		out = append(out, d)
	}
	b.items = out
}
