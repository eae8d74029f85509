package alloc

import (
	"fmt"
	"sync"

	"github.com/joshuapare/stlkit/internal/buf"
)

// Mmap is a Source whose blocks live in anonymous memory mappings outside the
// Go heap. Only pointer-free element types are mapped; For silently falls back
// to the heap for anything else, while still accounting through the Mmap.
//
// Large vectors of plain numbers are the intended use: their storage is
// returned to the operating system as soon as the vector reallocates.
// Containers still have to release their blocks (Destroy) since the garbage
// collector never unmaps; the counters are guarded because a vector that
// was dropped releases its block from a cleanup goroutine.
type Mmap struct {
	pageSize int

	mu    sync.Mutex
	stats Stats
}

// NewMmap creates an Mmap source using the platform page size.
func NewMmap() *Mmap {
	return &Mmap{pageSize: pageSize()}
}

// Acquire implements Source.
func (m *Mmap) Acquire(n int, size uintptr) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	need, err := buf.SlotBytes(n, size)
	if err != nil {
		m.stats.Failures++
		return fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	m.stats.LiveBytes += need
	m.stats.PeakBytes = max(m.stats.PeakBytes, m.stats.LiveBytes)
	m.stats.Acquires++
	return nil
}

// Release implements Source.
func (m *Mmap) Release(n int, size uintptr) {
	freed, err := buf.SlotBytes(n, size)
	if err != nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.LiveBytes -= freed
	m.stats.Releases++
}

// Map implements Mapper. The mapping is rounded up to whole pages.
func (m *Mmap) Map(bytes int) ([]byte, error) {
	mem, err := mapAnon(m.roundUp(bytes))
	if err != nil {
		return nil, fmt.Errorf("alloc: map %d bytes: %w", bytes, err)
	}
	return mem, nil
}

// Unmap implements Mapper. mem must start where a mapping returned by Map
// starts; its length is rounded the same way Map rounded it.
func (m *Mmap) Unmap(mem []byte) error {
	if len(mem) == 0 {
		return nil
	}
	return unmapAnon(mem, m.roundUp(len(mem)))
}

// PageSize returns the mapping granularity.
func (m *Mmap) PageSize() int {
	return m.pageSize
}

// Stats returns a snapshot of the source's counters.
func (m *Mmap) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

func (m *Mmap) roundUp(n int) int {
	p := m.pageSize
	return (n + p - 1) / p * p
}

var (
	_ Source = (*Mmap)(nil)
	_ Mapper = (*Mmap)(nil)
)
