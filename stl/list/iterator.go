package list

import "github.com/joshuapare/stlkit/stl/iterator"

// Iterator is a bidirectional position in a List.
type Iterator[T any] struct {
	n *node[T]
}

// Category implements iterator.Cursor.
func (it Iterator[T]) Category() iterator.Category { return iterator.Bidirectional }

// Value returns the element at it.
func (it Iterator[T]) Value() T { return it.n.value }

// Ptr returns the address of the element at it.
func (it Iterator[T]) Ptr() *T { return &it.n.value }

// Next implements iterator.Cursor.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{n: it.n.next} }

// Prev implements iterator.BidiCursor.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{n: it.n.prev} }

// Equal implements iterator.Cursor.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.n == other.n }

var _ iterator.BidiCursor[int, Iterator[int]] = Iterator[int]{}
