package flist

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
	next  *node[T]
	value T
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

// List is a singly linked list. The zero value is an empty list using the heap.
type List[T any] struct {
	head  node[T] // before-begin sentinel
	nodes *alloc.Slab[node[T]]
	opts  Options
}

// New returns an empty list using the heap.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewWithOptions returns an empty list configured by opts.
func NewWithOptions[T any](opts Options) *List[T] {
	return &List[T]{opts: opts}
}

// Of returns a list holding copies of vals.
func Of[T any](vals ...T) (*List[T], error) {
	l := New[T]()
	if _, err := l.InsertAfter(l.BeforeBegin(), vals...); err != nil {
		return nil, err
	}
	return l, nil
}

// Filled returns a list holding n copies of val.
func Filled[T any](n int, val T) (*List[T], error) {
	l := New[T]()
	if _, err := l.InsertAfterN(l.BeforeBegin(), n, val); err != nil {
		return nil, err
	}
	return l, nil
}

// FromRange returns a list holding copies of the values in [first, last).
func FromRange[T any, I iterator.Cursor[T, I]](first, last I) (*List[T], error) {
	l := New[T]()
	if _, err := l.insertSeqAfter(&l.head, iterator.Seq[T](first, last)); err != nil {
		return nil, err
	}
	return l, nil
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

func (l *List[T]) freeNode(n *node[T]) {
	memory.Destroy(&n.value)
	l.slab().Put(n)
}

// NodeStats reports the activity of the list's node slab.
func (l *List[T]) NodeStats() alloc.SlabStats {
	return l.slab().Stats()
}

// BeforeBegin returns the sentinel position before the first element.
// It may only be used as an "after" position.
func (l *List[T]) BeforeBegin() Iterator[T] { return Iterator[T]{n: &l.head} }

// Begin returns the position of the first element.
func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{n: l.head.next} }

// End returns the position after the last element.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{} }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.head.next == nil }

// Len counts the elements. It takes linear time.
func (l *List[T]) Len() int {
	n := 0
	for x := l.head.next; x != nil; x = x.next {
		n++
	}
	return n
}

// Front returns the address of the first element. The list must not be empty.
func (l *List[T]) Front() *T { return &l.head.next.value }

// insertSeqAfter links a copy of each value of seq after pos, in order, and
// returns the last node inserted. On failure every node inserted by this
// call is erased again and pos is returned.
func (l *List[T]) insertSeqAfter(pos *node[T], seq iter.Seq[T]) (*node[T], error) {
	cur := pos
	var err error
	for v := range seq {
		var n *node[T]
		if n, err = l.newNode(v); err != nil {
			break
		}
		n.next = cur.next
		cur.next = n
		cur = n
	}
	if err != nil {
		l.eraseAfterRange(pos, cur.next)
		return pos, err
	}
	return cur, nil
}

// InsertAfter inserts copies of vals after pos and returns the position of
// the last inserted element, or pos if vals is empty.
func (l *List[T]) InsertAfter(pos Iterator[T], vals ...T) (Iterator[T], error) {
	n, err := l.insertSeqAfter(pos.n, slices.Values(vals))
	return Iterator[T]{n: n}, err
}

// InsertAfterN inserts n copies of val after pos.
func (l *List[T]) InsertAfterN(pos Iterator[T], n int, val T) (Iterator[T], error) {
	if n < 0 {
		return pos, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	last, err := l.insertSeqAfter(pos.n, repeat(n, val))
	return Iterator[T]{n: last}, err
}

// InsertAfterSeq inserts the values of seq after pos. seq is drained before
// anything is linked, so it may walk l itself.
func (l *List[T]) InsertAfterSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	return l.InsertAfter(pos, slices.Collect(seq)...)
}

// InsertAfterRange inserts copies of the values in [first, last) after pos.
// The range may belong to l itself.
func InsertAfterRange[T any, I iterator.Cursor[T, I]](l *List[T], pos Iterator[T], first, last I) (Iterator[T], error) {
	return l.InsertAfter(pos, iterator.Collect[T](first, last)...)
}

// EmplaceAfter constructs an element with build and links it after pos.
func (l *List[T]) EmplaceAfter(pos Iterator[T], build func(*T) error) (Iterator[T], error) {
	n, err := l.newNodeWith(build)
	if err != nil {
		return pos, err
	}
	n.next = pos.n.next
	pos.n.next = n
	return Iterator[T]{n: n}, nil
}

// EmplaceFront constructs a new first element with build.
func (l *List[T]) EmplaceFront(build func(*T) error) error {
	_, err := l.EmplaceAfter(l.BeforeBegin(), build)
	return err
}

// PushFront inserts a copy of val at the front.
func (l *List[T]) PushFront(val T) error {
	_, err := l.InsertAfter(l.BeforeBegin(), val)
	return err
}

// PopFront removes the first element. The list must not be empty.
func (l *List[T]) PopFront() {
	l.eraseAfter(&l.head)
}

func (l *List[T]) eraseAfter(pos *node[T]) {
	n := pos.next
	pos.next = n.next
	l.freeNode(n)
}

// eraseAfterRange erases the nodes strictly between first and last.
func (l *List[T]) eraseAfterRange(first, last *node[T]) {
	for first.next != last {
		l.eraseAfter(first)
	}
}

// EraseAfter removes the element after pos and returns the position that
// follows the removed element.
func (l *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	l.eraseAfter(pos.n)
	return Iterator[T]{n: pos.n.next}
}

// EraseAfterRange removes the elements strictly between first and last and
// returns last.
func (l *List[T]) EraseAfterRange(first, last Iterator[T]) Iterator[T] {
	l.eraseAfterRange(first.n, last.n)
	return last
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.eraseAfterRange(&l.head, nil)
}

// Destroy removes every element. Node chunks stay with the slab since
// spliced nodes may still live in other lists.
func (l *List[T]) Destroy() {
	l.Clear()
}

// Resize sets the length to n, erasing surplus elements or appending copies
// of fill.
func (l *List[T]) Resize(n int, fill T) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	prev := &l.head
	for ; n > 0 && prev.next != nil; n-- {
		prev = prev.next
	}
	if n == 0 {
		l.eraseAfterRange(prev, nil)
		return nil
	}
	_, err := l.insertSeqAfter(prev, repeat(n, fill))
	return err
}

// assign builds the new contents in a detached chain and swaps it in only
// once every copy succeeded.
func (l *List[T]) assign(seq iter.Seq[T]) error {
	tmp := &List[T]{nodes: l.slab(), opts: l.opts}
	if _, err := tmp.insertSeqAfter(&tmp.head, seq); err != nil {
		return err
	}
	l.Clear()
	l.head.next, tmp.head.next = tmp.head.next, nil
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
	l.head.next, other.head.next = other.head.next, l.head.next
	l.nodes, other.nodes = other.nodes, l.nodes
	l.opts, other.opts = other.opts, l.opts
}

// Clone returns a copy of l with its own slab on the same Source.
func (l *List[T]) Clone() (*List[T], error) {
	c := NewWithOptions[T](l.opts)
	if _, err := c.insertSeqAfter(&c.head, l.Values()); err != nil {
		return nil, err
	}
	return c, nil
}

// All yields the position index and value of each element.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for x := l.head.next; x != nil; x = x.next {
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
		for x := l.head.next; x != nil; x = x.next {
			if !yield(x.value) {
				return
			}
		}
	}
}

// Verify checks that the chain ends at nil without a cycle.
func (l *List[T]) Verify() error {
	_, err := verify.Chain(&l.head, func(n *node[T]) *node[T] { return n.next })
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
