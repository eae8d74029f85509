package flist

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/stlkit/stl/alloc"
	"github.com/joshuapare/stlkit/stl/iterator"
)

func mustOf[T any](t *testing.T, vals ...T) *List[T] {
	t.Helper()
	l, err := Of(vals...)
	require.NoError(t, err)
	return l
}

func values[T any](l *List[T]) []T {
	return slices.Collect(l.Values())
}

// TestList_ZeroValue tests that the zero value is a usable empty list.
func TestList_ZeroValue(t *testing.T) {
	var l List[int]
	assert.True(t, l.Empty())
	assert.Zero(t, l.Len())
	assert.True(t, l.Begin().Equal(l.End()))

	require.NoError(t, l.PushFront(2))
	require.NoError(t, l.PushFront(1))
	assert.Equal(t, []int{1, 2}, values(&l))
	assert.Equal(t, 1, *l.Front())
	require.NoError(t, l.Verify())
}

// TestInsertAfter tests batch insertion and the returned position.
func TestInsertAfter(t *testing.T) {
	l := mustOf(t, 1, 5)

	it, err := l.InsertAfter(l.Begin(), 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, it.Value(), "should return the last inserted element")
	assert.Equal(t, []int{1, 2, 3, 4, 5}, values(l))

	it, err = l.InsertAfter(l.Begin())
	require.NoError(t, err)
	assert.True(t, it.Equal(l.Begin()), "empty insert returns pos")

	_, err = l.InsertAfterN(l.BeforeBegin(), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 2, 3, 4, 5}, values(l))

	_, err = l.InsertAfterN(l.BeforeBegin(), -1, 0)
	require.ErrorIs(t, err, ErrNegativeCount)

	_, err = l.InsertAfterSeq(l.BeforeBegin(), slices.Values([]int{-2, -1}))
	require.NoError(t, err)
	assert.Equal(t, []int{-2, -1, 0, 0, 1, 2, 3, 4, 5}, values(l))
	require.NoError(t, l.Verify())
}

// TestInsertAfterRange_Self tests inserting a list's own range into itself.
func TestInsertAfterRange_Self(t *testing.T) {
	l := mustOf(t, 1, 2, 3)

	_, err := InsertAfterRange(l, l.Begin(), l.Begin(), l.End())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 3, 2, 3}, values(l))
}

// TestInsertAfterSeq_Self tests inserting a list's own sequence into itself.
// The sequence is read once, so the call ends with one copy of each element
// even on a budget that could not hold a runaway insert.
func TestInsertAfterSeq_Self(t *testing.T) {
	budget := alloc.NewBudget(1 << 14)
	l := NewWithOptions[int](Options{Source: budget})
	_, err := l.InsertAfter(l.BeforeBegin(), 1, 2)
	require.NoError(t, err)

	it, err := l.InsertAfterSeq(l.Begin(), l.Values())
	require.NoError(t, err)
	assert.Equal(t, 2, it.Value(), "should return the last inserted element")
	assert.Equal(t, []int{1, 1, 2, 2}, values(l))

	_, err = l.InsertAfterSeq(l.BeforeBegin(), l.Values())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 2, 1, 1, 2, 2}, values(l))
	require.NoError(t, l.Verify())
}

// TestEmplace tests in-place construction at the front and after a position.
func TestEmplace(t *testing.T) {
	l := New[string]()

	require.NoError(t, l.EmplaceFront(func(p *string) error {
		*p = "b"
		return nil
	}))
	it, err := l.EmplaceAfter(l.Begin(), func(p *string) error {
		*p = "c"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "c", it.Value())

	boom := errors.New("boom")
	_, err = l.EmplaceAfter(l.BeforeBegin(), func(p *string) error { return boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"b", "c"}, values(l))
	assert.Equal(t, 1, l.NodeStats().Free, "failed node should be recycled")
}

// TestEraseAfter tests single and exclusive-range erasure.
func TestEraseAfter(t *testing.T) {
	l := mustOf(t, 1, 2, 3, 4, 5, 6)

	it := l.EraseAfter(l.Begin())
	assert.Equal(t, 3, it.Value())
	assert.Equal(t, []int{1, 3, 4, 5, 6}, values(l))

	first := l.Begin()
	last := iterator.Advance[int](l.Begin(), 3)
	require.Equal(t, 5, last.Value())
	it = l.EraseAfterRange(first, last)
	assert.Equal(t, 5, it.Value())
	assert.Equal(t, []int{1, 5, 6}, values(l))

	l.EraseAfterRange(l.BeforeBegin(), l.End())
	assert.True(t, l.Empty())
	require.NoError(t, l.Verify())
}

// TestPopFront tests removing from the front.
func TestPopFront(t *testing.T) {
	l := mustOf(t, 1, 2)
	l.PopFront()
	assert.Equal(t, []int{2}, values(l))
	l.PopFront()
	assert.True(t, l.Empty())
}

// TestResize tests growing and shrinking.
func TestResize(t *testing.T) {
	l := mustOf(t, 1, 2, 3)

	require.NoError(t, l.Resize(5, 9))
	assert.Equal(t, []int{1, 2, 3, 9, 9}, values(l))
	require.NoError(t, l.Resize(2, 0))
	assert.Equal(t, []int{1, 2}, values(l))
	require.NoError(t, l.Resize(2, 0))
	assert.Equal(t, []int{1, 2}, values(l))
	require.NoError(t, l.Resize(0, 0))
	assert.True(t, l.Empty())
	require.ErrorIs(t, l.Resize(-1, 0), ErrNegativeCount)
}

// TestAssign tests the assign family.
func TestAssign(t *testing.T) {
	l := mustOf(t, 1, 2, 3)

	require.NoError(t, l.Assign(7, 8))
	assert.Equal(t, []int{7, 8}, values(l))

	require.NoError(t, l.AssignN(3, 1))
	assert.Equal(t, []int{1, 1, 1}, values(l))

	require.NoError(t, l.AssignSeq(slices.Values([]int{4, 5})))
	assert.Equal(t, []int{4, 5}, values(l))

	require.NoError(t, AssignRange(l, l.Begin().Next(), l.End()))
	assert.Equal(t, []int{5}, values(l))

	require.ErrorIs(t, l.AssignN(-1, 0), ErrNegativeCount)
	assert.Equal(t, []int{5}, values(l))
}

// TestConstructors tests Filled, FromRange and Clone.
func TestConstructors(t *testing.T) {
	f, err := Filled(2, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x"}, values(f))

	src := mustOf(t, 1, 2, 3)
	r, err := FromRange[int](src.Begin().Next(), src.End())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, values(r))

	c, err := src.Clone()
	require.NoError(t, err)
	require.NoError(t, c.PushFront(0))
	assert.Equal(t, []int{1, 2, 3}, values(src))
	assert.Equal(t, []int{0, 1, 2, 3}, values(c))
}

// TestSwap tests exchanging contents.
func TestSwap(t *testing.T) {
	a := mustOf(t, 1, 2)
	b := mustOf(t, 3)

	a.Swap(b)
	assert.Equal(t, []int{3}, values(a))
	assert.Equal(t, []int{1, 2}, values(b))
	require.NoError(t, a.Verify())
	require.NoError(t, b.Verify())
}

// TestIteration tests positional sequences and early exit.
func TestIteration(t *testing.T) {
	l := mustOf(t, "a", "b", "c")

	var got []string
	for i, s := range l.All() {
		if i == 2 {
			break
		}
		got = append(got, s)
	}
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 3, iterator.Distance[string](l.Begin(), l.End()))

	*l.Begin().Ptr() = "z"
	assert.Equal(t, "z", *l.Front())
}

// TestCompare tests lexicographic ordering and equality.
func TestCompare(t *testing.T) {
	a := mustOf(t, 1, 2, 3)
	b := mustOf(t, 1, 3)
	c := mustOf(t, 1, 2)

	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 1, Compare(a, c))
	assert.Equal(t, 0, Compare(a, a))
	assert.Equal(t, 1, CompareFunc(a, b, func(x, y int) bool { return x > y }))
	assert.True(t, Equal(a, mustOf(t, 1, 2, 3)))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(c, a))
}
