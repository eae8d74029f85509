package verify

import "fmt"

// ValidationError describes a violated structural invariant.
type ValidationError struct {
	Type    string
	Message string
	Offset  int
	Details map[string]any
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at %d: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Bounds validates start <= finish <= end for a contiguous block.
func Bounds(start, finish, end int) error {
	if start < 0 || start > finish {
		return &ValidationError{
			Type:    "Bounds",
			Message: fmt.Sprintf("start %d beyond finish %d", start, finish),
			Offset:  start,
			Details: map[string]any{"start": start, "finish": finish, "end": end},
		}
	}
	if finish > end {
		return &ValidationError{
			Type:    "Bounds",
			Message: fmt.Sprintf("finish %d beyond end of storage %d", finish, end),
			Offset:  finish,
			Details: map[string]any{"start": start, "finish": finish, "end": end},
		}
	}
	return nil
}

// Chain walks the singly linked chain after head and returns the number of
// nodes before the terminating zero value (nil). A cycle is reported with the
// position at which it was detected.
func Chain[N comparable](head N, next func(N) N) (int, error) {
	var zero N
	slow, fast := head, head
	n := 0
	for {
		for range 2 {
			fast = next(fast)
			if fast == zero {
				return n, nil
			}
			n++
		}
		slow = next(slow)
		if slow == fast {
			return n, &ValidationError{
				Type:    "Chain",
				Message: "cycle in node chain",
				Offset:  n,
			}
		}
	}
}

// Ring walks the circular doubly linked ring starting after root and returns
// the number of nodes other than root. Every node, root included, must be the
// prev of its next and the next of its prev.
func Ring[N comparable](root N, next, prev func(N) N) (int, error) {
	var zero N
	n := 0
	for node := root; ; n++ {
		nx, pv := next(node), prev(node)
		if nx == zero || pv == zero {
			return n, &ValidationError{
				Type:    "Ring",
				Message: "nil link",
				Offset:  n,
				Details: map[string]any{"nextNil": nx == zero, "prevNil": pv == zero},
			}
		}
		if prev(nx) != node {
			return n, &ValidationError{
				Type:    "Ring",
				Message: "next node does not link back",
				Offset:  n,
			}
		}
		if next(pv) != node {
			return n, &ValidationError{
				Type:    "Ring",
				Message: "prev node does not link forward",
				Offset:  n,
			}
		}
		if nx == root {
			return n, nil
		}
		node = nx
	}
}
