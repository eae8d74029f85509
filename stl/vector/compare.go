package vector

import (
	"cmp"
	"slices"

	"github.com/joshuapare/stlkit/stl/compare"
)

// Compare orders two vectors lexicographically and returns -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// CompareFunc orders two vectors lexicographically using less.
func CompareFunc[T any](a, b *Vector[T], less func(x, y T) bool) int {
	return compare.Lexicographic(a.Values(), b.Values(), less)
}

// Equal reports whether both vectors hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// Less reports whether a orders before b lexicographically. A proper prefix
// orders before the longer vector.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessFunc reports whether a orders before b lexicographically using less.
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	return CompareFunc(a, b, less) < 0
}
