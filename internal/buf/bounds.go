// Package buf contains overflow-safe arithmetic for sizing slot blocks.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This is essential for count * elementSize calculations when sizing blocks.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// For positive numbers, check if result would overflow
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	// For negative numbers
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	// Mixed signs - check against MinInt
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// SlotBytes returns the byte size of count slots of elemSize bytes each, or an
// error describing the specific failure (negative input or overflow).
//
// This is the recommended way to size a block before asking a source for it:
//
//	n, err := buf.SlotBytes(count, unsafe.Sizeof(zero))
//	if err != nil {
//	    return nil, fmt.Errorf("alloc: %w", err)
//	}
func SlotBytes(count int, elemSize uintptr) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elemSize > math.MaxInt {
		return 0, fmt.Errorf("element size too large: %d", elemSize)
	}
	total, ok := MulOverflowSafe(count, int(elemSize))
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elemSize)
	}
	return total, nil
}

// GrowCapacity returns the capacity produced by doubling cur (starting from 1
// when cur is zero) until it reaches need. When doubling would overflow, need
// itself is returned. ok is false only for a negative need.
func GrowCapacity(cur, need int) (int, bool) {
	if need < 0 {
		return 0, false
	}
	c := max(cur, 1)
	for c < need {
		if c > math.MaxInt/2 {
			return need, true
		}
		c *= 2
	}
	return c, true
}
