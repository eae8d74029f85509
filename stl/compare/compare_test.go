package compare

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestPredicates(t *testing.T) {
	assert.True(t, Less(1, 2))
	assert.False(t, Less(2, 2))
	assert.True(t, Greater("b", "a"))

	rev := Reverse(Less[int])
	assert.True(t, rev(3, 1))
	assert.False(t, rev(1, 3))

	eq := Equivalent(func(a, b int) bool { return a/10 < b/10 })
	assert.True(t, eq(11, 19))
	assert.False(t, eq(11, 21))

	three := ThreeWay(Less[int])
	assert.Equal(t, -1, three(1, 2))
	assert.Equal(t, 0, three(2, 2))
	assert.Equal(t, 1, three(3, 2))

	byLen := By(func(s string) int { return len(s) })
	assert.True(t, byLen("ab", "abc"))
	assert.False(t, byLen("abc", "xyz"))
}

// TestCollator tests locale-aware ordering against byte ordering.
func TestCollator(t *testing.T) {
	words := []string{"zebra", "Äpfel", "apple", "Zoo"}

	bytewise := slices.Clone(words)
	slices.SortFunc(bytewise, ThreeWay(Less[string]))
	assert.Equal(t, []string{"Zoo", "apple", "zebra", "Äpfel"}, bytewise)

	less := Collator(language.German, collate.IgnoreCase)
	collated := slices.Clone(words)
	slices.SortStableFunc(collated, ThreeWay(less))
	assert.Equal(t, []string{"Äpfel", "apple", "zebra", "Zoo"}, collated)
}

func TestLexicographic(t *testing.T) {
	cases := []struct {
		name string
		a, b []int
		want int
	}{
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, 0},
		{"both empty", nil, nil, 0},
		{"less at first difference", []int{1, 2, 9}, []int{1, 3}, -1},
		{"greater at first difference", []int{2}, []int{1, 9, 9}, 1},
		{"prefix is less", []int{1, 2}, []int{1, 2, 3}, -1},
		{"longer is greater", []int{1, 2, 3}, []int{1, 2}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Lexicographic(slices.Values(tc.a), slices.Values(tc.b), Less[int])
			assert.Equal(t, tc.want, got)
		})
	}
}
