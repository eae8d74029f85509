package list

import "cmp"

// Splice moves every element of other before pos. other is left empty.
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) {
	if other == l || other.Empty() {
		return
	}
	l.SpliceRange(pos, other, other.Begin(), other.End())
}

// SpliceOne moves the element at it, which belongs to other, before pos.
// other may be l.
func (l *List[T]) SpliceOne(pos Iterator[T], other *List[T], it Iterator[T]) {
	if pos.n == it.n || pos.n == it.n.next {
		return
	}
	unlink(it.n)
	link(pos.n, it.n)
}

// SpliceRange moves the elements in [first, last), which belong to other,
// before pos, keeping their order. other may be l as long as pos is not
// inside the range.
func (l *List[T]) SpliceRange(pos Iterator[T], other *List[T], first, last Iterator[T]) {
	if first.n == last.n {
		return
	}
	f, b, p := first.n, last.n.prev, pos.n

	f.prev.next = last.n
	last.n.prev = f.prev

	f.prev = p.prev
	b.next = p
	p.prev.next = f
	p.prev = b
}

// MergeFunc merges the sorted list other into the sorted list l by splicing
// its nodes one at a time, leaving other empty. It is stable: for equivalent
// elements those from l come first.
func (l *List[T]) MergeFunc(other *List[T], less func(a, b T) bool) {
	if other == l {
		return
	}
	a, end := l.Begin(), l.End()
	b, oend := other.Begin(), other.End()
	for !a.Equal(end) && !b.Equal(oend) {
		if less(b.Value(), a.Value()) {
			next := b.Next()
			l.SpliceOne(a, other, b)
			b = next
		} else {
			a = a.Next()
		}
	}
	if !b.Equal(oend) {
		l.SpliceRange(end, other, b, oend)
	}
}

// Merge merges sorted other into sorted l using <.
func Merge[T cmp.Ordered](l, other *List[T]) {
	l.MergeFunc(other, cmp.Less[T])
}

// SortFunc sorts the list with a stable merge sort that relinks nodes and
// never allocates.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	l.init()
	sortRange(l.root.next, &l.root, less)
}

// Sort sorts the list using <.
func Sort[T cmp.Ordered](l *List[T]) {
	l.SortFunc(cmp.Less[T])
}

// sortRange sorts [first, last) in place and returns the node now first.
func sortRange[T any](first, last *node[T], less func(a, b T) bool) *node[T] {
	if first == last || first.next == last {
		return first
	}
	mid := divide(first, last)
	first = sortRange(first, mid, less)
	mid = sortRange(mid, last, less)
	return mergeInside(first, mid, last, less)
}

// divide returns the start of the second half of [first, last), found by a
// slow and a fast walker. The first half is never longer than the second.
func divide[T any](first, last *node[T]) *node[T] {
	slow, fast := first, first
	for fast != last && fast.next != last {
		slow = slow.next
		fast = fast.next.next
	}
	return slow
}

// mergeInside merges the adjacent sorted runs [a, b) and [b, last) in place
// and returns the node now first. A node of the right run only moves ahead
// of a strictly greater node, which keeps the merge stable.
func mergeInside[T any](a, b, last *node[T], less func(a, b T) bool) *node[T] {
	head := a
	if less(b.value, a.value) {
		head = b
	}
	for a != b && b != last {
		if less(b.value, a.value) {
			next := b.next
			unlink(b)
			link(a, b)
			b = next
		} else {
			a = a.next
		}
	}
	return head
}

// RemoveIf erases every element for which pred is true and returns how many
// were erased.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	removed := 0
	for it, end := l.Begin(), l.End(); !it.Equal(end); {
		if pred(it.Value()) {
			it = l.Erase(it)
			removed++
		} else {
			it = it.Next()
		}
	}
	return removed
}

// Remove erases every element equal to val.
func Remove[T comparable](l *List[T], val T) int {
	return l.RemoveIf(func(x T) bool { return x == val })
}

// UniqueFunc erases every element equal, per eq, to the element kept just
// before it, so each run of consecutive duplicates keeps only its first
// element.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) int {
	if l.Empty() {
		return 0
	}
	removed := 0
	end := l.End()
	for kept, it := l.Begin(), l.Begin().Next(); !it.Equal(end); {
		if eq(kept.Value(), it.Value()) {
			it = l.Erase(it)
			removed++
		} else {
			kept, it = it, it.Next()
		}
	}
	return removed
}

// Unique erases consecutive duplicates using ==.
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(func(a, b T) bool { return a == b })
}

// Reverse reverses the order of the elements by swapping the links of every
// node, the sentinel included.
func (l *List[T]) Reverse() {
	l.init()
	n := &l.root
	for {
		n.next, n.prev = n.prev, n.next
		n = n.prev
		if n == &l.root {
			return
		}
	}
}
