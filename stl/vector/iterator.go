package vector

import "github.com/joshuapare/stlkit/stl/iterator"

// Iterator is a random-access position in a Vector.
type Iterator[T any] struct {
	v *Vector[T]
	i int
}

// Category implements iterator.Cursor.
func (it Iterator[T]) Category() iterator.Category { return iterator.RandomAccess }

// Value returns the element at it.
func (it Iterator[T]) Value() T { return it.v.block[it.i] }

// Ptr returns the address of the element at it.
func (it Iterator[T]) Ptr() *T { return &it.v.block[it.i] }

// Index returns the position of it from the front.
func (it Iterator[T]) Index() int { return it.i }

// Next implements iterator.Cursor.
func (it Iterator[T]) Next() Iterator[T] {
	it.i++
	return it
}

// Prev implements iterator.BidiCursor.
func (it Iterator[T]) Prev() Iterator[T] {
	it.i--
	return it
}

// Add implements iterator.RandomCursor.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.i += n
	return it
}

// Sub implements iterator.RandomCursor.
func (it Iterator[T]) Sub(other Iterator[T]) int { return it.i - other.i }

// Equal implements iterator.Cursor.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.v == other.v && it.i == other.i
}

// Less reports whether it is before other.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.i < other.i }

var _ iterator.RandomCursor[int, Iterator[int]] = Iterator[int]{}
