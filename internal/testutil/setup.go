// Package testutil holds fixtures shared by the container tests.
package testutil

import (
	"math/rand/v2"
	"slices"
	"testing"
)

// Seed is the default seed for property tests so failures reproduce.
const Seed uint64 = 0x5eed

// Rand returns a deterministic generator for property tests.
func Rand(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(Seed, uint64(len(t.Name()))))
}

// RandomInts returns n values in [0, bound).
func RandomInts(r *rand.Rand, n, bound int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.IntN(bound)
	}
	return out
}

// Sorted returns a sorted copy of vs.
func Sorted(vs []int) []int {
	out := slices.Clone(vs)
	slices.Sort(out)
	return out
}

// RequireNoLeaks fails the test if any counted copy is still live.
func RequireNoLeaks(t *testing.T, l *Lifecycle) {
	t.Helper()
	if l.Live != 0 {
		t.Fatalf("%d tracked values still live (%d clones, %d destroyed)", l.Live, l.Clones, l.Destroyed)
	}
}

// RequireLive fails the test unless exactly want counted copies are live.
func RequireLive(t *testing.T, l *Lifecycle, want int) {
	t.Helper()
	if l.Live != want {
		t.Fatalf("live tracked values = %d, want %d", l.Live, want)
	}
}
