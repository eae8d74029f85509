// Package compare builds the ordering predicates accepted by the containers.
//
// A predicate less(a, b) reports whether a strictly precedes b. Sorting and
// merging only ever ask less, so equality of two elements means neither
// precedes the other.
package compare

import (
	"cmp"
	"iter"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Less is the default predicate, a < b.
func Less[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// Greater orders in descending order.
func Greater[T cmp.Ordered](a, b T) bool {
	return cmp.Less(b, a)
}

// Reverse inverts less.
func Reverse[T any](less func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool { return less(b, a) }
}

// Equivalent reports whether neither a nor b precedes the other.
func Equivalent[T any](less func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool { return !less(a, b) && !less(b, a) }
}

// ThreeWay turns less into a -1/0/+1 comparison.
func ThreeWay[T any](less func(a, b T) bool) func(a, b T) int {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// By orders values by a derived key.
func By[T any, K cmp.Ordered](key func(T) K) func(a, b T) bool {
	return func(a, b T) bool { return cmp.Less(key(a), key(b)) }
}

// Collator orders strings by the collation rules of tag. The returned
// predicate shares one collate.Collator and must not be used concurrently.
func Collator(tag language.Tag, opts ...collate.Option) func(a, b string) bool {
	c := collate.New(tag, opts...)
	return func(a, b string) bool {
		return c.CompareString(a, b) < 0
	}
}

// Lexicographic compares two sequences element by element and returns -1, 0
// or +1. A proper prefix orders before the longer sequence.
func Lexicographic[T any](a, b iter.Seq[T], less func(x, y T) bool) int {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()
	for {
		x, okA := nextA()
		y, okB := nextB()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		case less(x, y):
			return -1
		case less(y, x):
			return 1
		}
	}
}
