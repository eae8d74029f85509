package flist

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/stlkit/internal/testutil"
	"github.com/joshuapare/stlkit/stl/alloc"
	"github.com/joshuapare/stlkit/stl/iterator"
)

// TestSort_Scenario tests sorting a list with duplicates.
func TestSort_Scenario(t *testing.T) {
	l := mustOf(t, 2, 3, 3, 6, 6, 4, 1, 9, 0, 5)
	Sort(l)
	assert.Equal(t, []int{0, 1, 2, 3, 3, 4, 5, 6, 6, 9}, values(l))
	require.NoError(t, l.Verify())

	l.SortFunc(func(a, b int) bool { return a > b })
	assert.Equal(t, []int{9, 6, 6, 5, 4, 3, 3, 2, 1, 0}, values(l))
}

// TestSort_Small tests the base cases.
func TestSort_Small(t *testing.T) {
	for _, in := range [][]int{{}, {1}, {2, 1}, {1, 2}, {3, 1, 2}} {
		l := mustOf(t, in...)
		Sort(l)
		assert.Equal(t, testutil.Sorted(in), append([]int{}, values(l)...), "input %v", in)
	}
}

// TestSort_Stable tests that equal keys keep their relative order.
func TestSort_Stable(t *testing.T) {
	l := mustOf(t, testutil.Items(5, 1, 3, 1, 5, 3, 1, 2)...)
	l.SortFunc(testutil.LessKey)
	assert.True(t, testutil.IsStable(values(l)), "got %v", values(l))
}

// TestSort_NoAllocation tests that sorting only relinks nodes.
func TestSort_NoAllocation(t *testing.T) {
	l := mustOf(t, 5, 4, 3, 2, 1)
	before := l.NodeStats()
	first := l.Begin().n

	Sort(l)
	assert.Equal(t, before, l.NodeStats())
	assert.Same(t, first, iterator.Advance[int](l.Begin(), 4).n, "the node holding 5 should be reused as the last node")
}

// TestMerge tests merging two sorted lists.
func TestMerge(t *testing.T) {
	a := mustOf(t, 1, 4, 6, 9)
	b := mustOf(t, 0, 2, 4, 10, 11)

	Merge(a, b)
	assert.Equal(t, []int{0, 1, 2, 4, 4, 6, 9, 10, 11}, values(a))
	assert.True(t, b.Empty())
	require.NoError(t, a.Verify())
	require.NoError(t, b.Verify())

	empty := New[int]()
	Merge(empty, a)
	assert.Equal(t, []int{0, 1, 2, 4, 4, 6, 9, 10, 11}, values(empty))

	Merge(empty, empty)
	assert.Equal(t, 9, empty.Len(), "merging with itself is a no-op")
}

// TestMerge_Stable tests that ties keep the receiver's elements first.
func TestMerge_Stable(t *testing.T) {
	a := mustOf(t, testutil.Items(1, 2, 2, 3)...)
	items := testutil.Items(0, 0, 0, 0, 2, 2, 3, 5)
	b := mustOf(t, items[4:]...) // Seq 4.. so b's items sort after a's on ties

	a.MergeFunc(b, testutil.LessKey)
	got := values(a)
	assert.True(t, testutil.IsStable(got), "got %v", got)
	assert.Len(t, got, 8)
}

// TestSpliceAfterRange tests moving an exclusive range between lists.
func TestSpliceAfterRange(t *testing.T) {
	a := mustOf(t, 1, 2, 3)
	b := mustOf(t, 10, 20, 30, 40)
	gets := a.NodeStats().Gets + b.NodeStats().Gets

	a.SpliceAfterRange(a.Begin(), b, b.Begin(), iterator.Advance[int](b.Begin(), 3))
	assert.Equal(t, []int{1, 20, 30, 2, 3}, values(a))
	assert.Equal(t, []int{10, 40}, values(b))
	assert.Equal(t, gets, a.NodeStats().Gets+b.NodeStats().Gets, "splicing must not allocate")

	// Empty ranges do nothing.
	a.SpliceAfterRange(a.BeforeBegin(), b, b.Begin(), b.Begin().Next())
	assert.Equal(t, []int{10, 40}, values(b))

	// Spliced nodes are recycled by their new owner.
	a.PopFront()
	a.PopFront()
	assert.Equal(t, 2, a.NodeStats().Free)
	require.NoError(t, a.Verify())
	require.NoError(t, b.Verify())
}

// TestSpliceAfter tests moving a whole list and a single node.
func TestSpliceAfter(t *testing.T) {
	a := mustOf(t, 1, 5)
	b := mustOf(t, 2, 3, 4)

	a.SpliceAfter(a.Begin(), b)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, values(a))
	assert.True(t, b.Empty())

	a.SpliceAfter(a.Begin(), a)
	assert.Equal(t, 5, a.Len())

	// Move 4 to the front within the same list.
	before4 := iterator.Advance[int](a.Begin(), 2)
	a.SpliceAfterOne(a.BeforeBegin(), a, before4)
	assert.Equal(t, []int{4, 1, 2, 3, 5}, values(a))

	// No-ops: pos is it, or pos is the node being moved.
	a.SpliceAfterOne(a.Begin(), a, a.Begin())
	a.SpliceAfterOne(a.Begin().Next(), a, a.Begin())
	assert.Equal(t, []int{4, 1, 2, 3, 5}, values(a))

	a.SpliceAfterOne(b.BeforeBegin(), a, a.BeforeBegin())
	assert.Equal(t, []int{1, 2, 3, 5}, values(a))
	assert.Equal(t, []int{4}, values(b))
	require.NoError(t, a.Verify())
}

// TestRemoveAndUnique tests filtering operations.
func TestRemoveAndUnique(t *testing.T) {
	l := mustOf(t, 1, 1, 2, 2, 3)
	assert.Equal(t, 2, Unique(l))
	assert.Equal(t, []int{1, 2, 3}, values(l))

	l = mustOf(t, 1, 2, 1)
	assert.Zero(t, Unique(l))
	assert.Equal(t, []int{1, 2, 1}, values(l))

	assert.Equal(t, 2, Remove(l, 1))
	assert.Equal(t, []int{2}, values(l))

	l = mustOf(t, 1, 2, 3, 4, 5, 6)
	assert.Equal(t, 3, l.RemoveIf(func(x int) bool { return x%2 == 0 }))
	assert.Equal(t, []int{1, 3, 5}, values(l))

	near := func(a, b int) bool { return b-a < 2 }
	l = mustOf(t, 1, 2, 3, 5, 6, 9)
	assert.Equal(t, 2, l.UniqueFunc(near), "comparisons are against the kept element")
	assert.Equal(t, []int{1, 3, 5, 9}, values(l))

	assert.Zero(t, Unique(New[int]()))
}

// TestReverse tests in-place reversal.
func TestReverse(t *testing.T) {
	for _, in := range [][]int{nil, {1}, {1, 2}, {1, 2, 3, 4, 5}} {
		l := mustOf(t, in...)
		l.Reverse()
		want := slices.Clone(in)
		slices.Reverse(want)
		assert.Equal(t, want, values(l), "input %v", in)
		require.NoError(t, l.Verify())
	}
}

// TestInsertAfter_CloneFailureRollsBack tests that a failed batch erases the
// nodes this call inserted, wherever the batch started.
func TestInsertAfter_CloneFailureRollsBack(t *testing.T) {
	for pos := range 4 {
		for failAt := 1; failAt <= 3; failAt++ {
			life := testutil.NewLifecycle()
			l := mustOf(t, life.Values(1, 2, 3)...)

			at := iterator.Advance[testutil.Tracked](l.BeforeBegin(), pos)
			life.FailOn(failAt)
			it, err := l.InsertAfter(at, life.Values(7, 8, 9)...)
			require.ErrorIs(t, err, testutil.ErrCloneFailed)
			assert.True(t, it.Equal(at))

			assert.Equal(t, []int{1, 2, 3}, testutil.Ints(values(l)), "pos=%d failAt=%d", pos, failAt)
			testutil.RequireLive(t, life, 3)
			require.NoError(t, l.Verify())

			l.Clear()
			testutil.RequireNoLeaks(t, life)
		}
	}
}

// TestInsertAfter_AllocationFailureRollsBack tests rollback when the node
// source runs out.
func TestInsertAfter_AllocationFailureRollsBack(t *testing.T) {
	var sample node[int64]
	size := int(sizeOf(sample))
	budget := alloc.NewBudget(4 * size)
	l := NewWithOptions[int64](Options{
		Source: budget,
		Slab:   alloc.SlabOptions{MinChunk: 1, MaxChunk: 1},
	})

	_, err := l.InsertAfter(l.BeforeBegin(), 1, 2)
	require.NoError(t, err)

	_, err = l.InsertAfter(l.Begin(), 7, 8, 9)
	require.ErrorIs(t, err, alloc.ErrNoSpace)
	assert.Equal(t, []int64{1, 2}, values(l))
	assert.Equal(t, 2, l.NodeStats().Free, "rolled back nodes should be kept for reuse")

	_, err = l.InsertAfter(l.Begin(), 7, 8)
	require.NoError(t, err, "recycled nodes need no new storage")
	assert.Equal(t, []int64{1, 7, 8, 2}, values(l))

	require.ErrorIs(t, l.Resize(5, 0), alloc.ErrNoSpace)
	assert.Equal(t, []int64{1, 7, 8, 2}, values(l))
}

// TestAssign_FailureKeepsContents tests that Assign is all or nothing.
func TestAssign_FailureKeepsContents(t *testing.T) {
	life := testutil.NewLifecycle()
	l := mustOf(t, life.Values(1, 2)...)

	life.FailOn(3)
	require.Error(t, l.Assign(life.Values(4, 5, 6)...))
	assert.Equal(t, []int{1, 2}, testutil.Ints(values(l)))
	testutil.RequireLive(t, life, 2)

	require.NoError(t, l.Assign(life.Values(4, 5, 6)...))
	testutil.RequireLive(t, life, 3)
	assert.Equal(t, []int{4, 5, 6}, testutil.Ints(values(l)))
}
