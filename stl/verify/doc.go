// Package verify checks the structural invariants of container storage.
//
// # Overview
//
// The containers expose Verify methods built on these helpers. They are
// mostly used in tests, after operations that relink nodes or move the
// bounds of a block, to confirm the structure is still well formed.
//
// Checks:
//   - Bounds: a block's live prefix fits inside its capacity
//   - Chain: a singly linked chain ends at nil and contains no cycle
//   - Ring: every node of a circular doubly linked ring agrees with its
//     neighbours, so the walk returns to the sentinel
//
// # ValidationError
//
// All checks return *ValidationError on failure:
//
//	type ValidationError struct {
//	    Type    string         // check that failed ("Bounds", "Chain", "Ring")
//	    Message string         // human-readable description
//	    Offset  int            // node position or slot index (-1 if N/A)
//	    Details map[string]any // additional context
//	}
//
// Example:
//
//	n, err := verify.Chain(head, func(n *node) *node { return n.next })
//	if err != nil {
//	    var verr *verify.ValidationError
//	    if errors.As(err, &verr) {
//	        fmt.Printf("%s at node %d: %s\n", verr.Type, verr.Offset, verr.Message)
//	    }
//	}
package verify
