package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountPairs(t *testing.T) {
	tests := []struct {
		name string
		ids  []int64
		want map[Pair]int
	}{
		{
			name: "empty",
			ids:  nil,
			want: map[Pair]int{},
		},
		{
			name: "single token has no pairs",
			ids:  []int64{42},
			want: map[Pair]int{},
		},
		{
			name: "overlapping occurrences all count",
			ids:  []int64{97, 97, 97, 97},
			want: map[Pair]int{{97, 97}: 3},
		},
		{
			name: "mixed sequence",
			ids:  []int64{97, 98, 97, 98, 99},
			want: map[Pair]int{
				{97, 98}: 2,
				{98, 97}: 1,
				{98, 99}: 1,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, countPairs(tc.ids))
		})
	}
}

func TestMaxPair(t *testing.T) {
	t.Run("empty counts", func(t *testing.T) {
		p, c := maxPair(map[Pair]int{})
		assert.Equal(t, Pair{}, p)
		assert.Equal(t, 0, c)
	})

	t.Run("clear winner", func(t *testing.T) {
		p, c := maxPair(countPairs([]int64{97, 98, 97, 98, 99}))
		assert.Equal(t, Pair{97, 98}, p)
		assert.Equal(t, 2, c)
	})

	t.Run("tie breaks to smallest pair", func(t *testing.T) {
		// Three pairs share the top count; the winner must be the pair
		// with the smallest A, then smallest B, regardless of map
		// iteration order.
		counts := map[Pair]int{
			{300, 1}: 3,
			{2, 500}: 3,
			{2, 400}: 3,
			{1, 1}:   2,
		}
		p, c := maxPair(counts)
		assert.Equal(t, Pair{2, 400}, p)
		assert.Equal(t, 3, c)
	})
}

func TestReplacePairInPlace(t *testing.T) {
	tests := []struct {
		name  string
		ids   []int64
		pair  Pair
		newID int64
		want  []int64
	}{
		{
			name:  "run of four merges twice",
			ids:   []int64{97, 97, 97, 97},
			pair:  Pair{97, 97},
			newID: 300,
			want:  []int64{300, 300},
		},
		{
			name:  "run of three leaves a trailing token",
			ids:   []int64{97, 97, 97},
			pair:  Pair{97, 97},
			newID: 300,
			want:  []int64{300, 97},
		},
		{
			name:  "no occurrence leaves sequence unchanged",
			ids:   []int64{1, 2, 3},
			pair:  Pair{9, 9},
			newID: 300,
			want:  []int64{1, 2, 3},
		},
		{
			name:  "pair at the end",
			ids:   []int64{5, 97, 98},
			pair:  Pair{97, 98},
			newID: 256,
			want:  []int64{5, 256},
		},
		{
			name:  "interleaved occurrences",
			ids:   []int64{97, 98, 99, 97, 98},
			pair:  Pair{97, 98},
			newID: 256,
			want:  []int64{256, 99, 256},
		},
		{
			name:  "empty input",
			ids:   nil,
			pair:  Pair{1, 2},
			newID: 256,
			want:  nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := replacePairInPlace(tc.ids, tc.pair, tc.newID)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReplacePairReusesBackingArray(t *testing.T) {
	ids := []int64{97, 98, 99}
	got := replacePairInPlace(ids, Pair{97, 98}, 256)
	require.NotEmpty(t, got)
	assert.Same(t, &ids[0], &got[0])
}
