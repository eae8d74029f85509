package iterator

import "iter"

// Cursor is a position yielding values of type T. I is the concrete cursor
// type itself, so moves return values of the same type.
//
// Cursors are small values; Next returns a new cursor and leaves the receiver
// unchanged. Reading the end position is undefined.
type Cursor[T, I any] interface {
	Category() Category
	Value() T
	Next() I
	Equal(other I) bool
}

// BidiCursor is a Cursor that can also step backward.
type BidiCursor[T, I any] interface {
	Cursor[T, I]
	Prev() I
}

// RandomCursor is a BidiCursor with constant-time offsets.
type RandomCursor[T, I any] interface {
	BidiCursor[T, I]
	// Add returns the cursor n positions away; n may be negative.
	Add(n int) I
	// Sub returns the number of steps from other to the receiver.
	Sub(other I) int
}

// Advance moves it by n positions. Negative n requires a bidirectional
// cursor; asking a forward cursor to move backward panics.
func Advance[T any, I Cursor[T, I]](it I, n int) I {
	switch c := it.Category(); {
	case c.Has(RandomAccess):
		return any(it).(RandomCursor[T, I]).Add(n)
	case n < 0 && c.Has(Bidirectional):
		for ; n < 0; n++ {
			it = any(it).(BidiCursor[T, I]).Prev()
		}
		return it
	case n < 0:
		panic("iterator: negative advance of a " + c.String() + " cursor")
	}
	for ; n > 0; n-- {
		it = it.Next()
	}
	return it
}

// Distance returns the number of steps from first to last. For anything
// weaker than random access, last must be reachable from first.
func Distance[T any, I Cursor[T, I]](first, last I) int {
	if first.Category().Has(RandomAccess) {
		return any(last).(RandomCursor[T, I]).Sub(first)
	}
	n := 0
	for ; !first.Equal(last); first = first.Next() {
		n++
	}
	return n
}

// Next returns the cursor n positions after it.
func Next[T any, I Cursor[T, I]](it I, n int) I {
	return Advance[T](it, n)
}

// Prev returns the cursor n positions before it.
func Prev[T any, I BidiCursor[T, I]](it I, n int) I {
	return Advance[T](it, -n)
}

// Seq yields the values in [first, last).
func Seq[T any, I Cursor[T, I]](first, last I) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := first; !it.Equal(last); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Collect returns the values in [first, last) as a slice.
func Collect[T any, I Cursor[T, I]](first, last I) []T {
	var out []T
	if first.Category().Has(RandomAccess) {
		out = make([]T, 0, Distance[T](first, last))
	}
	for it := first; !it.Equal(last); it = it.Next() {
		out = append(out, it.Value())
	}
	return out
}
