// Package diag collects positional lexical errors for rendering.
// Tokenization has a single error kind (unexpected character), so a
// diagnostic here is just a span plus its message.
package diag

import (
	"sort"

	"plexer/internal/source"
)

// Diagnostic is one reported lexical error.
type Diagnostic struct {
	Span    source.Span
	Message string
}

// Bag accumulates diagnostics up to a fixed limit.
type Bag struct {
	items   []Diagnostic
	max     int
	dropped int
}

// NewBag creates a Bag that keeps at most max diagnostics.
func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   max,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Len returns the number of kept diagnostics.
func (b *Bag) Len() int {
	return len(b.items)
}

// Dropped returns how many diagnostics were discarded over the limit.
func (b *Bag) Dropped() int {
	return b.dropped
}

// HasErrors reports whether any diagnostic was recorded (kept or dropped).
func (b *Bag) HasErrors() bool {
	return len(b.items) > 0 || b.dropped > 0
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge объединяет диагностики из другого Bag.
// Увеличивает max, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if newTotal > b.max {
		b.max = newTotal
	}
	b.items = append(b.items, other.items...)
	b.dropped += other.dropped
}

// Sort сортирует диагностики по (file, start, end) для стабильного вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Span.File != dj.Span.File {
			return di.Span.File < dj.Span.File
		}
		if di.Span.Start != dj.Span.Start {
			return di.Span.Start < dj.Span.Start
		}
		return di.Span.End < dj.Span.End
	})
}
