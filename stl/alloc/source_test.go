package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeap_AcceptsEverything tests that Heap only rejects overflow.
func TestHeap_AcceptsEverything(t *testing.T) {
	var h Heap
	require.NoError(t, h.Acquire(1<<20, 8))
	require.ErrorIs(t, h.Acquire(-1, 8), ErrOverflow)
	h.Release(1<<20, 8)
}

// TestBudget_Limit tests that the budget refuses requests past its limit.
func TestBudget_Limit(t *testing.T) {
	b := NewBudget(100)

	require.NoError(t, b.Acquire(10, 8)) // 80
	assert.Equal(t, 20, b.Remaining())

	err := b.Acquire(3, 8) // 24 > 20
	require.ErrorIs(t, err, ErrNoSpace)
	assert.Contains(t, err.Error(), "need 24 bytes")

	require.NoError(t, b.Acquire(5, 4)) // exactly 100
	assert.Equal(t, 0, b.Remaining())

	st := b.Stats()
	assert.Equal(t, 100, st.LiveBytes)
	assert.Equal(t, 100, st.PeakBytes)
	assert.Equal(t, 2, st.Acquires)
	assert.Equal(t, 1, st.Failures)
}

// TestBudget_Release tests that released bytes become available again.
func TestBudget_Release(t *testing.T) {
	b := NewBudget(64)

	require.NoError(t, b.Acquire(8, 8))
	require.Error(t, b.Acquire(1, 8))

	b.Release(8, 8)
	assert.Equal(t, 64, b.Remaining())
	require.NoError(t, b.Acquire(1, 8))

	st := b.Stats()
	assert.Equal(t, 8, st.LiveBytes)
	assert.Equal(t, 64, st.PeakBytes, "peak should survive releases")
	assert.Equal(t, 1, st.Releases)
}

// TestBudget_SetLimit tests lowering and raising the limit.
func TestBudget_SetLimit(t *testing.T) {
	b := NewBudget(64)
	require.NoError(t, b.Acquire(4, 8))

	b.SetLimit(16)
	require.ErrorIs(t, b.Acquire(1, 8), ErrNoSpace)
	assert.Equal(t, 32, b.Stats().LiveBytes, "live bytes stay acquired after lowering the limit")

	b.SetLimit(1 << 10)
	require.NoError(t, b.Acquire(1, 8))
}

// TestBudget_ZeroSize tests that zero-size objects never exhaust a budget.
func TestBudget_ZeroSize(t *testing.T) {
	b := NewBudget(0)
	require.NoError(t, b.Acquire(1000, 0))
	assert.Equal(t, 0, b.Stats().LiveBytes)
}
