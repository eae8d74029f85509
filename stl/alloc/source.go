package alloc

import (
	"fmt"

	"github.com/joshuapare/stlkit/internal/buf"
)

// Source is the untyped half of an allocator. It approves and accounts for
// requests of n objects of size bytes each; For turns it into a typed
// Allocator.
type Source interface {
	// Acquire reserves room for n objects of the given size.
	// A non-nil error means nothing was reserved.
	Acquire(n int, size uintptr) error

	// Release returns room previously reserved by Acquire with the same arguments.
	Release(n int, size uintptr)
}

// Stats summarizes the activity of an accounting Source.
type Stats struct {
	LiveBytes int // bytes currently acquired
	PeakBytes int // high-water mark of LiveBytes
	Acquires  int // successful Acquire calls
	Releases  int // Release calls
	Failures  int // Acquire calls refused
}

// Heap is the default Source. It accepts every request that does not
// overflow and keeps no state.
type Heap struct{}

// Acquire implements Source.
func (Heap) Acquire(n int, size uintptr) error {
	if _, err := buf.SlotBytes(n, size); err != nil {
		return fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return nil
}

// Release implements Source.
func (Heap) Release(int, uintptr) {}

// Budget is a Source with a fixed byte limit. Requests that would push the
// live total past the limit fail with ErrNoSpace, which makes the rollback
// paths of the containers observable.
type Budget struct {
	limit int
	stats Stats
}

// NewBudget creates a Budget that allows at most limit live bytes.
func NewBudget(limit int) *Budget {
	return &Budget{limit: limit}
}

// Acquire implements Source.
func (b *Budget) Acquire(n int, size uintptr) error {
	need, err := buf.SlotBytes(n, size)
	if err != nil {
		b.stats.Failures++
		return fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	total, ok := buf.AddOverflowSafe(b.stats.LiveBytes, need)
	if !ok || total > b.limit {
		b.stats.Failures++
		return fmt.Errorf("%w: need %d bytes, %d of %d in use",
			ErrNoSpace, need, b.stats.LiveBytes, b.limit)
	}
	b.stats.LiveBytes = total
	b.stats.PeakBytes = max(b.stats.PeakBytes, total)
	b.stats.Acquires++
	return nil
}

// Release implements Source.
func (b *Budget) Release(n int, size uintptr) {
	freed, err := buf.SlotBytes(n, size)
	if err != nil {
		return
	}
	b.stats.LiveBytes -= freed
	b.stats.Releases++
}

// Stats returns a snapshot of the budget's counters.
func (b *Budget) Stats() Stats {
	return b.stats
}

// Remaining returns how many bytes can still be acquired.
func (b *Budget) Remaining() int {
	return b.limit - b.stats.LiveBytes
}

// SetLimit changes the byte limit. Live bytes above a lowered limit stay
// acquired; only new requests are refused.
func (b *Budget) SetLimit(limit int) {
	b.limit = limit
}

var (
	_ Source = Heap{}
	_ Source = (*Budget)(nil)
)
