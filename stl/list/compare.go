package list

import (
	"cmp"

	"github.com/joshuapare/stlkit/stl/compare"
)

// Compare orders two lists lexicographically and returns -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return compare.Lexicographic(a.Values(), b.Values(), cmp.Less[T])
}

// CompareFunc orders two lists lexicographically using less.
func CompareFunc[T any](a, b *List[T], less func(x, y T) bool) int {
	return compare.Lexicographic(a.Values(), b.Values(), less)
}

// Equal reports whether both lists hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	a.init()
	b.init()
	x, y := a.root.next, b.root.next
	for ; x != &a.root && y != &b.root; x, y = x.next, y.next {
		if x.value != y.value {
			return false
		}
	}
	return x == &a.root && y == &b.root
}
