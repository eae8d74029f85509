package testutil

// Item pairs a sort key with its original position so stability can be
// checked after sorting or merging.
type Item struct {
	Key int
	Seq int
}

// Items numbers keys in order.
func Items(keys ...int) []Item {
	out := make([]Item, len(keys))
	for i, k := range keys {
		out[i] = Item{Key: k, Seq: i}
	}
	return out
}

// LessKey orders items by Key only.
func LessKey(a, b Item) bool {
	return a.Key < b.Key
}

// IsStable reports whether items with equal keys appear in increasing Seq
// order and keys are non-decreasing.
func IsStable(items []Item) bool {
	for i := 1; i < len(items); i++ {
		a, b := items[i-1], items[i]
		if b.Key < a.Key || (a.Key == b.Key && b.Seq < a.Seq) {
			return false
		}
	}
	return true
}
