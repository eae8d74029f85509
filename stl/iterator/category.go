// Package iterator defines the position types containers hand out and the
// generic operations that move them.
//
// A cursor names one position in a container. Its Category declares which
// moves it supports; Advance and Distance pick the constant-time or the
// step-by-step algorithm from that declaration alone.
package iterator

import "fmt"

// Category is the capability level of a cursor. Each level includes the
// capabilities of the levels below it.
type Category int

const (
	// Input cursors can be read and stepped forward once.
	Input Category = iota + 1
	// Forward cursors can be copied and traversed again.
	Forward
	// Bidirectional cursors can also step backward.
	Bidirectional
	// RandomAccess cursors can jump by any offset and be subtracted.
	RandomAccess
)

func (c Category) String() string {
	switch c {
	case Input:
		return "input"
	case Forward:
		return "forward"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random-access"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Has reports whether c provides every capability of want.
func (c Category) Has(want Category) bool {
	return c >= want
}
