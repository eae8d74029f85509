package testutil

import (
	"errors"
	"fmt"
)

// ErrCloneFailed is returned by Tracked.Clone once the lifecycle's failure
// countdown reaches zero.
var ErrCloneFailed = errors.New("testutil: clone failed")

// Lifecycle counts the live copies of Tracked values that share it.
//
// Only copies made by Clone are counted. Values created with New are the
// caller's originals and never need destroying.
type Lifecycle struct {
	Live      int // copies made by Clone and not yet destroyed
	Clones    int // successful Clone calls
	Destroyed int // Destroy calls on counted copies

	// FailAfter is the number of Clone calls that succeed before one fails.
	// Negative means never fail.
	FailAfter int
}

// NewLifecycle returns a lifecycle that never fails.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{FailAfter: -1}
}

// FailOn makes the n-th Clone from now (1-based) fail.
func (l *Lifecycle) FailOn(n int) {
	l.FailAfter = n - 1
}

// New returns an original value bound to l.
func (l *Lifecycle) New(v int) Tracked {
	return Tracked{V: v, life: l}
}

// Values returns originals for each of vs.
func (l *Lifecycle) Values(vs ...int) []Tracked {
	out := make([]Tracked, len(vs))
	for i, v := range vs {
		out[i] = l.New(v)
	}
	return out
}

// Tracked is an element type whose copies are counted by a Lifecycle.
// It implements memory.Cloner[Tracked] and memory.Destroyer.
type Tracked struct {
	V       int
	life    *Lifecycle
	counted bool
}

// Clone implements memory.Cloner.
func (t Tracked) Clone() (Tracked, error) {
	l := t.life
	if l == nil {
		return t, nil
	}
	if l.FailAfter == 0 {
		l.FailAfter = -1
		return Tracked{}, fmt.Errorf("%w: value %d", ErrCloneFailed, t.V)
	}
	if l.FailAfter > 0 {
		l.FailAfter--
	}
	l.Live++
	l.Clones++
	return Tracked{V: t.V, life: l, counted: true}, nil
}

// Destroy implements memory.Destroyer.
func (t *Tracked) Destroy() {
	if t.life == nil || !t.counted {
		return
	}
	t.life.Live--
	t.life.Destroyed++
	t.counted = false
}

// Ints returns the plain values of ts.
func Ints(ts []Tracked) []int {
	out := make([]int, len(ts))
	for i, t := range ts {
		out[i] = t.V
	}
	return out
}

// LessTracked orders Tracked values by V.
func LessTracked(a, b Tracked) bool {
	return a.V < b.V
}
