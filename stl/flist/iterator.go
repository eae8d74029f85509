package flist

import "github.com/joshuapare/stlkit/stl/iterator"

// Iterator is a forward position in a List. The zero Iterator is End.
type Iterator[T any] struct {
	n *node[T]
}

// Category implements iterator.Cursor.
func (it Iterator[T]) Category() iterator.Category { return iterator.Forward }

// Value returns the element at it.
func (it Iterator[T]) Value() T { return it.n.value }

// Ptr returns the address of the element at it.
func (it Iterator[T]) Ptr() *T { return &it.n.value }

// Next implements iterator.Cursor.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{n: it.n.next} }

// Equal implements iterator.Cursor.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.n == other.n }

var _ iterator.Cursor[int, Iterator[int]] = Iterator[int]{}
