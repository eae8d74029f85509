package alloc

const (
	// defaultMinChunk is the number of nodes in a slab's first chunk.
	defaultMinChunk = 8

	// defaultMaxChunk caps chunk growth so a long list does not request one huge block.
	defaultMaxChunk = 1024
)

// SlabOptions configures chunk sizing for a Slab.
//
// Use DefaultSlabOptions() for production defaults.
type SlabOptions struct {
	// MinChunk is the number of nodes in the first chunk.
	// Default: 8
	MinChunk int

	// MaxChunk is the largest chunk the slab will request. Each new chunk
	// doubles the previous one until this cap is reached.
	// Default: 1024
	// Recommendation: 1 when every node allocation must hit the Source
	// (failure-injection tests).
	MaxChunk int
}

// DefaultSlabOptions returns the default chunk sizing.
func DefaultSlabOptions() SlabOptions {
	return SlabOptions{
		MinChunk: defaultMinChunk,
		MaxChunk: defaultMaxChunk,
	}
}

// SlabStats reports slab activity.
type SlabStats struct {
	Chunks int // chunks obtained from the allocator
	Gets   int // nodes handed out
	Puts   int // nodes released into this slab
	Reused int // Gets served from the free list
	Free   int // nodes currently on the free list
}

// Slab hands out individual nodes of type N carved from chunks allocated by an
// Allocator[N]. Released nodes are zeroed and kept on a free list.
//
// A node may be released into a different slab than the one it came from;
// nodes are plain memory and only their owner changes.
type Slab[N any] struct {
	alloc Allocator[N]
	opts  SlabOptions

	chunk []N // current chunk
	used  int // nodes carved from chunk so far
	free  []*N

	stats SlabStats
}

// NewSlab creates a slab drawing chunks from a. Zero fields in opts take their
// defaults.
func NewSlab[N any](a Allocator[N], opts SlabOptions) *Slab[N] {
	if opts.MinChunk <= 0 {
		opts.MinChunk = defaultMinChunk
	}
	if opts.MaxChunk <= 0 {
		opts.MaxChunk = max(defaultMaxChunk, opts.MinChunk)
	}
	opts.MinChunk = min(opts.MinChunk, opts.MaxChunk)
	return &Slab[N]{alloc: a, opts: opts}
}

// Get returns an unconstructed (zero) node.
func (s *Slab[N]) Get() (*N, error) {
	if k := len(s.free); k > 0 {
		n := s.free[k-1]
		s.free[k-1] = nil
		s.free = s.free[:k-1]
		s.stats.Gets++
		s.stats.Reused++
		return n, nil
	}
	if s.used == len(s.chunk) {
		if err := s.grow(); err != nil {
			return nil, err
		}
	}
	n := &s.chunk[s.used]
	s.used++
	s.stats.Gets++
	return n, nil
}

// Put zeroes n and keeps it for reuse. The value held by n must already have
// been destroyed.
func (s *Slab[N]) Put(n *N) {
	var zero N
	*n = zero
	s.free = append(s.free, n)
	s.stats.Puts++
}

// Stats returns a snapshot of the slab's counters.
func (s *Slab[N]) Stats() SlabStats {
	st := s.stats
	st.Free = len(s.free)
	return st
}

// grow replaces the exhausted chunk with a new one. When the preferred size is
// refused, a single-node chunk is tried before giving up so a tight budget
// can still be used to the last byte.
func (s *Slab[N]) grow() error {
	size := s.opts.MinChunk
	if len(s.chunk) > 0 {
		size = min(len(s.chunk)*2, s.opts.MaxChunk)
	}
	c, err := s.alloc.Allocate(size)
	if err != nil && size > 1 {
		c, err = s.alloc.Allocate(1)
	}
	if err != nil {
		return err
	}
	s.chunk, s.used = c, 0
	s.stats.Chunks++
	return nil
}
