package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMerge(t *testing.T) {
	tests := []struct {
		name    string
		order   ordering
		presort bool
		args    []string
		want    string
		wantErr string
	}{
		{
			name:  "numeric",
			order: ordering{numeric: true},
			args:  []string{"1,3,5", "2,3,4,9"},
			want:  "1 2 3 3 4 5 9\n",
		},
		{
			name: "strings",
			args: []string{"apple,pear", "fig"},
			want: "apple fig pear\n",
		},
		{
			name:  "descending",
			order: ordering{numeric: true, desc: true},
			args:  []string{"9,4", "5,1"},
			want:  "9 5 4 1\n",
		},
		{
			name: "empty first",
			args: []string{"", "a,b"},
			want: "a b\n",
		},
		{
			name:    "presorted",
			presort: true,
			args:    []string{"pear,apple", "kiwi,fig"},
			want:    "apple fig kiwi pear\n",
		},
		{
			name:    "unsorted input",
			args:    []string{"b,a", "c"},
			wantErr: "input 1 is not sorted",
		},
		{
			name:    "bad number in second",
			order:   ordering{numeric: true},
			args:    []string{"1", "x"},
			wantErr: "second input",
		},
		{
			name:    "wrong arg count",
			args:    []string{"a"},
			wantErr: "expected 2 argument(s)",
		},
	}

	for _, c := range allContainers {
		for _, tt := range tests {
			t.Run(c+"/"+tt.name, func(t *testing.T) {
				resetFlags()
				mergeContainer = c
				mergeOrder = tt.order
				mergePresort = tt.presort

				output, err := captureOutput(t, func() error {
					return runMerge(tt.args)
				})
				if tt.wantErr != "" {
					require.Error(t, err)
					assert.Contains(t, err.Error(), tt.wantErr)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, output)
			})
		}
	}
}

func TestMergeIn_TiesKeepFirstInputFirst(t *testing.T) {
	type tagged struct {
		key  int
		from string
	}
	less := func(a, b tagged) bool { return a.key < b.key }
	a := []tagged{{1, "a"}, {2, "a"}, {2, "a"}}
	b := []tagged{{2, "b"}, {3, "b"}}

	for _, c := range allContainers {
		t.Run(c, func(t *testing.T) {
			got, err := mergeIn(c, a, b, less)
			require.NoError(t, err)
			assert.Equal(t, []tagged{{1, "a"}, {2, "a"}, {2, "a"}, {2, "b"}, {3, "b"}}, got)
		})
	}
}
