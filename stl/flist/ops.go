package flist

import "cmp"

// SpliceAfter moves every element of other after pos. other is left empty.
func (l *List[T]) SpliceAfter(pos Iterator[T], other *List[T]) {
	if other == l || other.Empty() {
		return
	}
	l.SpliceAfterRange(pos, other, other.BeforeBegin(), other.End())
}

// SpliceAfterOne moves the element after it, which belongs to other, to
// just after pos. other may be l.
func (l *List[T]) SpliceAfterOne(pos Iterator[T], other *List[T], it Iterator[T]) {
	p, prev := pos.n, it.n
	if p == prev || p == prev.next {
		return
	}
	n := prev.next
	prev.next = n.next
	n.next = p.next
	p.next = n
}

// SpliceAfterRange moves the elements strictly between first and last, which
// belong to other, to just after pos, keeping their order. Only links change;
// finding the last moved node costs one pass over the range. other may be l
// as long as pos is not inside the range.
func (l *List[T]) SpliceAfterRange(pos Iterator[T], other *List[T], first, last Iterator[T]) {
	f, e := first.n, last.n
	if f == e || f.next == e {
		return
	}
	tail := f.next
	for tail.next != e {
		tail = tail.next
	}
	start := f.next
	f.next = e
	tail.next = pos.n.next
	pos.n.next = start
}

// MergeFunc merges the sorted list other into the sorted list l, leaving
// other empty. It is stable: for equivalent elements those from l come
// first.
func (l *List[T]) MergeFunc(other *List[T], less func(a, b T) bool) {
	if other == l {
		return
	}
	prev := &l.head
	for prev.next != nil && other.head.next != nil {
		if o := other.head.next; less(o.value, prev.next.value) {
			other.head.next = o.next
			o.next = prev.next
			prev.next = o
		}
		prev = prev.next
	}
	if other.head.next != nil {
		prev.next = other.head.next
		other.head.next = nil
	}
}

// Merge merges sorted other into sorted l using <.
func Merge[T cmp.Ordered](l, other *List[T]) {
	l.MergeFunc(other, cmp.Less[T])
}

// SortFunc sorts the list with a stable merge sort that relinks nodes and
// never allocates.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	l.head.next = sortChain(l.head.next, less)
}

// Sort sorts the list using <.
func Sort[T cmp.Ordered](l *List[T]) {
	l.SortFunc(cmp.Less[T])
}

func sortChain[T any](h *node[T], less func(a, b T) bool) *node[T] {
	if h == nil || h.next == nil {
		return h
	}
	second := divide(h)
	return mergeChains(sortChain(h, less), sortChain(second, less), less)
}

// divide cuts the chain at h in the middle and returns the second half.
// The first half keeps the extra node when the length is odd.
func divide[T any](h *node[T]) *node[T] {
	slow, fast := h, h.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	second := slow.next
	slow.next = nil
	return second
}

// mergeChains merges two sorted nil-terminated chains, preferring a on ties.
func mergeChains[T any](a, b *node[T], less func(a, b T) bool) *node[T] {
	var head node[T]
	tail := &head
	for a != nil && b != nil {
		if less(b.value, a.value) {
			tail.next, b = b, b.next
		} else {
			tail.next, a = a, a.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return head.next
}

// RemoveIf erases every element for which pred is true and returns how many
// were erased.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	removed := 0
	prev := &l.head
	for prev.next != nil {
		if pred(prev.next.value) {
			l.eraseAfter(prev)
			removed++
		} else {
			prev = prev.next
		}
	}
	return removed
}

// Remove erases every element equal to val.
func Remove[T comparable](l *List[T], val T) int {
	return l.RemoveIf(func(x T) bool { return x == val })
}

// UniqueFunc erases every element equal, per eq, to the element just before
// it, so each run of consecutive duplicates keeps only its first element.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) int {
	removed := 0
	cur := l.head.next
	if cur == nil {
		return 0
	}
	for cur.next != nil {
		if eq(cur.value, cur.next.value) {
			l.eraseAfter(cur)
			removed++
		} else {
			cur = cur.next
		}
	}
	return removed
}

// Unique erases consecutive duplicates using ==.
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(func(a, b T) bool { return a == b })
}

// Reverse reverses the order of the elements in place.
func (l *List[T]) Reverse() {
	var prev *node[T]
	cur := l.head.next
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev, cur = cur, next
	}
	l.head.next = prev
}
