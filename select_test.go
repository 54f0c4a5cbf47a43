package rangetree

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedIndicesOn(pts []Point, axis int) []int {
	sorted := clonePoints(pts)
	slices.SortFunc(sorted, func(a, b Point) int {
		switch {
		case lessOn(&a, &b, axis):
			return -1
		case lessOn(&b, &a, axis):
			return 1
		}
		return 0
	})
	idx := make([]int, len(sorted))
	for i := range sorted {
		idx[i] = sorted[i].Index
	}
	return idx
}

func TestSelectNth(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for _, bound := range []int{3, 1000} {
		for _, n := range []int{1, 2, 3, 10, 101} {
			pts, _, err := makePoints(randomPoints(rng, n, 2, bound))
			require.NoError(t, err)
			want := sortedIndicesOn(pts, 1)

			for k := 0; k < n; k++ {
				work := clonePoints(pts)
				selectNth(work, k, 1)
				require.Equal(t, want[k], work[k].Index, "n=%d k=%d bound=%d", n, k, bound)
				for i := 0; i < k; i++ {
					assert.True(t, lessOn(&work[i], &work[k], 1), "n=%d k=%d: element %d not below", n, k, i)
				}
				for i := k + 1; i < n; i++ {
					assert.True(t, lessOn(&work[k], &work[i], 1), "n=%d k=%d: element %d not above", n, k, i)
				}
			}
		}
	}
}

func TestSplitMedian(t *testing.T) {
	rng := rand.New(rand.NewSource(37))
	pts, _, err := makePoints(randomPoints(rng, 40, 3, 5))
	require.NoError(t, err)

	// Split the sub-range [10, 31): 21 points, 10 go left.
	mid, key := splitMedian(pts, 10, 31, 0)
	assert.Equal(t, 20, mid)
	assert.Equal(t, pts[mid].Coords[0], key)
	for i := 10; i < mid; i++ {
		assert.True(t, lessOn(&pts[i], &pts[mid], 0))
	}
	for i := mid + 1; i < 31; i++ {
		assert.True(t, lessOn(&pts[mid], &pts[i], 0))
	}
}

func TestSplitMedian_KeyIsRightMinimum(t *testing.T) {
	// With duplicates the key can equal coordinates on the left; the total
	// order still puts the median first on the right.
	pts, _, err := makePoints([][]float64{{1, 0}, {1, 0}, {1, 0}, {0, 0}, {2, 0}})
	require.NoError(t, err)

	mid, key := splitMedian(pts, 0, len(pts), 0)
	assert.Equal(t, 2, mid)
	assert.Equal(t, 1.0, key)
	assert.Same(t, extremeOn(pts[mid:], 0, true), &pts[mid])
}

func TestNodeCount(t *testing.T) {
	tests := []struct {
		m, leafSize, want int
	}{
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 3},
		{640, 10, 127},
		{4, 1, 7},
		{5, 1, 9},
		{3, 2, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nodeCount(tt.m, tt.leafSize), "m=%d leafSize=%d", tt.m, tt.leafSize)
	}
}
