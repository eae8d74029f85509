package list

import (
	"fmt"
	"iter"
	"slices"

	"github.com/joshuapare/stlkit/stl/alloc"
	"github.com/joshuapare/stlkit/stl/iterator"
	"github.com/joshuapare/stlkit/stl/memory"
	"github.com/joshuapare/stlkit/stl/verify"
)

type node[T any] struct {
	next, prev *node[T]
	value      T
}

// link inserts n just before pos.
func link[T any](pos, n *node[T]) {
	n.prev = pos.prev
	n.next = pos
	pos.prev.next = n
	pos.prev = n
}

// unlink detaches n from its ring. n's own links are left dangling.
func unlink[T any](n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// Options configures a new List.
//
// Use DefaultOptions() for production defaults.
type Options struct {
	// Source supplies node storage.
	// Default: nil (alloc.Heap)
	Source alloc.Source

	// Slab controls how many nodes are allocated at once.
	// Default: alloc.DefaultSlabOptions()
	Slab alloc.SlabOptions
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{Slab: alloc.DefaultSlabOptions()}
}

// List is a doubly linked list. The zero value is an empty list using the heap.
type List[T any] struct {
	root  node[T] // sentinel; root.next is the front, root.prev the back
	nodes *alloc.Slab[node[T]]
	opts  Options
}

// New returns an empty list using the heap.
func New[T any]() *List[T] {
	return new(List[T]).init()
}

// NewWithOptions returns an empty list configured by opts.
func NewWithOptions[T any](opts Options) *List[T] {
	l := &List[T]{opts: opts}
	return l.init()
}

// Of returns a list holding copies of vals.
func Of[T any](vals ...T) (*List[T], error) {
	l := New[T]()
	if _, err := l.Insert(l.End(), vals...); err != nil {
		return nil, err
	}
	return l, nil
}

// Filled returns a list holding n copies of val.
func Filled[T any](n int, val T) (*List[T], error) {
	l := New[T]()
	if _, err := l.InsertN(l.End(), n, val); err != nil {
		return nil, err
	}
	return l, nil
}

// FromRange returns a list holding copies of the values in [first, last).
func FromRange[T any, I iterator.Cursor[T, I]](first, last I) (*List[T], error) {
	l := New[T]()
	if _, err := l.insertSeq(&l.root, iterator.Seq[T](first, last)); err != nil {
		return nil, err
	}
	return l, nil
}

// init closes the ring of a zero List.
func (l *List[T]) init() *List[T] {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
	return l
}

func (l *List[T]) slab() *alloc.Slab[node[T]] {
	if l.nodes == nil {
		l.nodes = alloc.NewSlab(alloc.For[node[T]](l.opts.Source), l.opts.Slab)
	}
	return l.nodes
}

func (l *List[T]) newNode(v T) (*node[T], error) {
	n, err := l.slab().Get()
	if err != nil {
		return nil, err
	}
	if err := memory.Construct(&n.value, v); err != nil {
		l.nodes.Put(n)
		return nil, err
	}
	return n, nil
}

func (l *List[T]) newNodeWith(build func(*T) error) (*node[T], error) {
	n, err := l.slab().Get()
	if err != nil {
		return nil, err
	}
	if err := memory.ConstructWith(&n.value, build); err != nil {
		l.nodes.Put(n)
		return nil, err
	}
	return n, nil
}

func (l *List[T]) erase(n *node[T]) {
	unlink(n)
	memory.Destroy(&n.value)
	l.slab().Put(n)
}

// NodeStats reports the activity of the list's node slab.
func (l *List[T]) NodeStats() alloc.SlabStats {
	return l.slab().Stats()
}

// Begin returns the position of the first element.
func (l *List[T]) Begin() Iterator[T] {
	l.init()
	return Iterator[T]{n: l.root.next}
}

// End returns the sentinel position after the last element.
func (l *List[T]) End() Iterator[T] {
	l.init()
	return Iterator[T]{n: &l.root}
}

// RBegin returns a reverse cursor on the last element.
func (l *List[T]) RBegin() iterator.Reverse[T, Iterator[T]] {
	return iterator.NewReverse[T](l.End())
}

// REnd returns the reverse cursor before the first element.
func (l *List[T]) REnd() iterator.Reverse[T, Iterator[T]] {
	return iterator.NewReverse[T](l.Begin())
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.root.next == nil || l.root.next == &l.root
}

// Len counts the elements. It takes linear time, which keeps every splice
// constant time.
func (l *List[T]) Len() int {
	l.init()
	n := 0
	for x := l.root.next; x != &l.root; x = x.next {
		n++
	}
	return n
}

// Front returns the address of the first element. The list must not be empty.
func (l *List[T]) Front() *T { return &l.root.next.value }

// Back returns the address of the last element. The list must not be empty.
func (l *List[T]) Back() *T { return &l.root.prev.value }

// insertSeq inserts a copy of each value of seq before pos and returns the
// first inserted node, or pos if seq was empty. On failure every node
// inserted by this call is erased again.
func (l *List[T]) insertSeq(pos *node[T], seq iter.Seq[T]) (*node[T], error) {
	l.init()
	first := pos
	var err error
	for v := range seq {
		var n *node[T]
		if n, err = l.newNode(v); err != nil {
			break
		}
		link(pos, n)
		if first == pos {
			first = n
		}
	}
	if err != nil {
		for first != pos {
			next := first.next
			l.erase(first)
			first = next
		}
		return pos, err
	}
	return first, nil
}

// Insert inserts copies of vals before pos and returns the position of the
// first inserted element, or pos if vals is empty.
func (l *List[T]) Insert(pos Iterator[T], vals ...T) (Iterator[T], error) {
	n, err := l.insertSeq(pos.n, slices.Values(vals))
	return Iterator[T]{n: n}, err
}

// InsertN inserts n copies of val before pos.
func (l *List[T]) InsertN(pos Iterator[T], n int, val T) (Iterator[T], error) {
	if n < 0 {
		return pos, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	first, err := l.insertSeq(pos.n, repeat(n, val))
	return Iterator[T]{n: first}, err
}

// InsertSeq inserts the values of seq before pos. seq is drained before
// anything is linked, so it may walk l itself.
func (l *List[T]) InsertSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	return l.Insert(pos, slices.Collect(seq)...)
}

// InsertRange inserts copies of the values in [first, last) before pos. The
// range may belong to l itself.
func InsertRange[T any, I iterator.Cursor[T, I]](l *List[T], pos Iterator[T], first, last I) (Iterator[T], error) {
	return l.Insert(pos, iterator.Collect[T](first, last)...)
}

// Emplace constructs an element with build and links it before pos.
func (l *List[T]) Emplace(pos Iterator[T], build func(*T) error) (Iterator[T], error) {
	n, err := l.newNodeWith(build)
	if err != nil {
		return pos, err
	}
	link(pos.n, n)
	return Iterator[T]{n: n}, nil
}

// PushBack appends a copy of val.
func (l *List[T]) PushBack(val T) error {
	_, err := l.Insert(l.End(), val)
	return err
}

// PushFront prepends a copy of val.
func (l *List[T]) PushFront(val T) error {
	_, err := l.Insert(l.Begin(), val)
	return err
}

// EmplaceBack constructs a new last element with build.
func (l *List[T]) EmplaceBack(build func(*T) error) error {
	_, err := l.Emplace(l.End(), build)
	return err
}

// EmplaceFront constructs a new first element with build.
func (l *List[T]) EmplaceFront(build func(*T) error) error {
	_, err := l.Emplace(l.Begin(), build)
	return err
}

// PopBack removes the last element. The list must not be empty.
func (l *List[T]) PopBack() {
	l.erase(l.root.prev)
}

// PopFront removes the first element. The list must not be empty.
func (l *List[T]) PopFront() {
	l.erase(l.root.next)
}

// Erase removes the element at pos and returns the position that followed it.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	next := pos.n.next
	l.erase(pos.n)
	return Iterator[T]{n: next}
}

// EraseRange removes the elements in [first, last) and returns last.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	for first.n != last.n {
		first = l.Erase(first)
	}
	return last
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.EraseRange(l.Begin(), l.End())
}

// Destroy removes every element. Node chunks stay with the slab since
// spliced nodes may still live in other lists.
func (l *List[T]) Destroy() {
	l.Clear()
}

// Resize sets the length to n, erasing surplus elements from the back or
// appending copies of fill.
func (l *List[T]) Resize(n int, fill T) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	it := l.Begin()
	for ; n > 0 && it.n != &l.root; n-- {
		it = it.Next()
	}
	if n == 0 {
		l.EraseRange(it, l.End())
		return nil
	}
	_, err := l.insertSeq(&l.root, repeat(n, fill))
	return err
}

// assign builds the new contents in a detached ring and swaps it in only
// once every copy succeeded.
func (l *List[T]) assign(seq iter.Seq[T]) error {
	tmp := (&List[T]{nodes: l.slab(), opts: l.opts}).init()
	if _, err := tmp.insertSeq(&tmp.root, seq); err != nil {
		return err
	}
	l.Swap(tmp)
	tmp.Clear()
	return nil
}

// Assign replaces the contents with copies of vals.
func (l *List[T]) Assign(vals ...T) error {
	return l.assign(slices.Values(vals))
}

// AssignN replaces the contents with n copies of val.
func (l *List[T]) AssignN(n int, val T) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	return l.assign(repeat(n, val))
}

// AssignSeq replaces the contents with the values of seq.
func (l *List[T]) AssignSeq(seq iter.Seq[T]) error {
	return l.assign(seq)
}

// AssignRange replaces the contents of l with copies of the values in
// [first, last). The range may belong to l itself.
func AssignRange[T any, I iterator.Cursor[T, I]](l *List[T], first, last I) error {
	return l.Assign(iterator.Collect[T](first, last)...)
}

// Swap exchanges the contents of l and other.
func (l *List[T]) Swap(other *List[T]) {
	l.init()
	other.init()
	ln, lp := l.root.next, l.root.prev
	on, op := other.root.next, other.root.prev
	rehome(&l.root, on, op, &other.root)
	rehome(&other.root, ln, lp, &l.root)
	l.nodes, other.nodes = other.nodes, l.nodes
	l.opts, other.opts = other.opts, l.opts
}

// rehome makes root the sentinel of the chain front..back that used to hang
// off old.
func rehome[T any](root, front, back, old *node[T]) {
	if front == old {
		root.next, root.prev = root, root
		return
	}
	root.next, root.prev = front, back
	front.prev = root
	back.next = root
}

// Clone returns a copy of l with its own slab on the same Source.
func (l *List[T]) Clone() (*List[T], error) {
	c := NewWithOptions[T](l.opts)
	if _, err := c.insertSeq(&c.root, l.Values()); err != nil {
		return nil, err
	}
	return c, nil
}

// All yields the position index and value of each element from front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		l.init()
		i := 0
		for x := l.root.next; x != &l.root; x = x.next {
			if !yield(i, x.value) {
				return
			}
			i++
		}
	}
}

// Values yields each element from front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.init()
		for x := l.root.next; x != &l.root; x = x.next {
			if !yield(x.value) {
				return
			}
		}
	}
}

// Backward yields the position index and value of each element from back to
// front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.Len() - 1
		for x := l.root.prev; x != &l.root; x = x.prev {
			if !yield(i, x.value) {
				return
			}
			i--
		}
	}
}

// Verify checks that every node agrees with its neighbours and that the ring
// closes at the sentinel.
func (l *List[T]) Verify() error {
	l.init()
	_, err := verify.Ring(&l.root,
		func(n *node[T]) *node[T] { return n.next },
		func(n *node[T]) *node[T] { return n.prev })
	return err
}

func repeat[T any](n int, v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for range n {
			if !yield(v) {
				return
			}
		}
	}
}
