package rangetree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_CountBatch_MatchesCount(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	points := randomPoints(rng, 500, 3, 25)
	tree := buildTree(t, points, 4)
	queries := randomPoints(rng, 97, 3, 26)

	want := make([]int, len(queries))
	for i, q := range queries {
		want[i] = mustCount(t, tree, q)
	}

	for _, workers := range []int{0, 1, 2, 4, 7, 200} {
		got, err := tree.CountBatch(queries, workers)
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestTree_CountBatch_Empty(t *testing.T) {
	tree := buildTree(t, [][]float64{{1, 2}, {3, 4}}, 1)
	got, err := tree.CountBatch(nil, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTree_CountBatch_RejectsBadQuery(t *testing.T) {
	tree := buildTree(t, [][]float64{{1, 2}, {3, 4}}, 1)
	queries := [][]float64{{1, 2}, {3, 4}, {5}}

	got, err := tree.CountBatch(queries, 2)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.ErrorContains(t, err, "query 2")
	assert.Nil(t, got)
}

func TestTree_ConcurrentQueries(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	points := randomPoints(rng, 300, 4, 10)
	tree := buildTree(t, points, 3)
	queries := randomPoints(rng, 40, 4, 11)

	want := make([]int, len(queries))
	for i, q := range queries {
		want[i] = bruteCount(points, q)
	}

	done := make(chan []int, 8)
	for g := 0; g < 8; g++ {
		go func() {
			got := make([]int, len(queries))
			for i, q := range queries {
				n, _ := tree.Count(q)
				got[i] = n
			}
			done <- got
		}()
	}
	for g := 0; g < 8; g++ {
		assert.Equal(t, want, <-done)
	}
}
