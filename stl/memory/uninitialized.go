package memory

import "iter"

// prefix tracks the values constructed so far by a bulk operation. Unless the
// operation marks it done, unwind destroys them; this also runs when a
// constructor panics.
type prefix[T any] struct {
	dst  []T
	n    int
	done bool
}

func (g *prefix[T]) unwind() {
	if !g.done {
		DestroyRange(g.dst[:g.n])
	}
}

// UninitializedCopy constructs copies of src into the first len(src) slots of
// dst, which must be unconstructed and at least as long as src. It returns the
// number of values constructed. On error nothing remains constructed.
func UninitializedCopy[T any](src, dst []T) (int, error) {
	g := prefix[T]{dst: dst}
	defer g.unwind()
	for i := range src {
		if err := Construct(&dst[i], src[i]); err != nil {
			return 0, err
		}
		g.n++
	}
	g.done = true
	return g.n, nil
}

// UninitializedCopyN constructs up to n values drawn from seq into dst and
// returns how many were constructed, which is less than n only if seq ends
// early. On error nothing remains constructed.
func UninitializedCopyN[T any](seq iter.Seq[T], n int, dst []T) (int, error) {
	g := prefix[T]{dst: dst}
	defer g.unwind()
	if n <= 0 {
		g.done = true
		return 0, nil
	}
	var err error
	for v := range seq {
		if err = Construct(&dst[g.n], v); err != nil {
			break
		}
		g.n++
		if g.n == n {
			break
		}
	}
	if err != nil {
		return 0, err
	}
	g.done = true
	return g.n, nil
}

// UninitializedFill constructs a copy of v in every slot of dst.
// On error nothing remains constructed.
func UninitializedFill[T any](dst []T, v T) error {
	_, err := UninitializedFillN(dst, len(dst), v)
	return err
}

// UninitializedFillN constructs n copies of v at the start of dst and returns
// n. On error nothing remains constructed.
func UninitializedFillN[T any](dst []T, n int, v T) (int, error) {
	g := prefix[T]{dst: dst}
	defer g.unwind()
	for i := range max(n, 0) {
		if err := Construct(&dst[i], v); err != nil {
			return 0, err
		}
		g.n++
	}
	g.done = true
	return g.n, nil
}

// UninitializedMove moves src into the unconstructed slots at the start of
// dst and leaves src unconstructed. src and dst must not overlap.
// It returns len(src).
func UninitializedMove[T any](src, dst []T) int {
	n := copy(dst, src[:len(src):len(src)])
	clear(src[:n])
	return n
}

// Move shifts the n values at s[from:] down to s[to:], to <= from, and leaves
// the vacated tail s[max(to+n, from):from+n] unconstructed. The destination
// slots must hold no live values other than those being moved.
func Move[T any](s []T, from, to, n int) {
	if n <= 0 || from == to {
		return
	}
	copy(s[to:to+n], s[from:from+n])
	clear(s[max(to+n, from) : from+n])
}

// MoveBackward shifts the n values at s[from:] up to s[to:], to >= from,
// copying from the back so overlapping runs are preserved, and leaves the
// vacated head s[from:min(to, from+n)] unconstructed.
func MoveBackward[T any](s []T, from, to, n int) {
	if n <= 0 || from == to {
		return
	}
	copy(s[to:to+n], s[from:from+n])
	clear(s[from:min(to, from+n)])
}
