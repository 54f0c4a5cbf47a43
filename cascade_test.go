package rangetree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCascade(t *testing.T, rows [][]float64, leafSize int) *cascadeTree {
	t.Helper()
	pts, dims, err := makePoints(rows)
	require.NoError(t, err)
	c, err := buildCascade(pts, layout{dims: dims}, leafSize)
	require.NoError(t, err)
	return c
}

// --- Merge ---

func TestMergeCascade(t *testing.T) {
	left := []cascadeEntry{
		{value: 1, index: 0, left: noEntry, right: noEntry},
		{value: 3, index: 3, left: noEntry, right: noEntry},
	}
	right := []cascadeEntry{
		{value: 1, index: 2, left: noEntry, right: noEntry},
		{value: 2, index: 1, left: noEntry, right: noEntry},
	}

	got, err := mergeCascade(left, right)
	require.NoError(t, err)
	want := []cascadeEntry{
		{value: 1, index: 0, left: 0, right: -1},
		{value: 1, index: 2, left: 0, right: 0},
		{value: 2, index: 1, left: 0, right: 1},
		{value: 3, index: 3, left: 1, right: 1},
	}
	assert.Equal(t, want, got)
}

func TestMergeCascade_OneSideEmpty(t *testing.T) {
	right := []cascadeEntry{
		{value: 4, index: 1, left: noEntry, right: noEntry},
		{value: 5, index: 0, left: noEntry, right: noEntry},
	}
	got, err := mergeCascade(nil, right)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, noEntry, got[1].left)
	assert.Equal(t, int32(1), got[1].right)
}

func TestMergeCascade_RejectsSharedPoint(t *testing.T) {
	left := []cascadeEntry{{value: 1, index: 7}}
	right := []cascadeEntry{{value: 1, index: 7}}
	_, err := mergeCascade(left, right)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestMergeCascade_RejectsUnsortedChild(t *testing.T) {
	left := []cascadeEntry{{value: 5, index: 0}, {value: 1, index: 1}}
	_, err := mergeCascade(left, nil)
	assert.ErrorIs(t, err, ErrCorrupt)
}

// --- Built structure ---

func TestCascade_EntriesAreSortedMembers(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	c := newTestCascade(t, randomPoints(rng, 300, 2, 12), 3)

	for id := range c.nodes {
		n := &c.nodes[id]
		want := sortedIndicesOn(c.points[n.lo:n.hi], c.valAxis)
		require.Len(t, n.entries, len(want), "node %d", id)
		for j := range n.entries {
			assert.Equal(t, want[j], n.entries[j].index, "node %d entry %d", id, j)
		}
	}
}

func TestCascade_PointersCountChildPrefix(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	c := newTestCascade(t, randomPoints(rng, 257, 2, 9), 2)

	// Every pointer must equal the number of child entries at or before the
	// parent entry, minus one.
	prefix := func(child []cascadeEntry, e *cascadeEntry) int32 {
		k := int32(0)
		for i := range child {
			if entryLess(e, &child[i]) {
				break
			}
			k++
		}
		return k - 1
	}
	for id := range c.nodes {
		n := &c.nodes[id]
		if n.leaf {
			continue
		}
		left, right := c.nodes[n.left].entries, c.nodes[n.right].entries
		for j := range n.entries {
			e := &n.entries[j]
			assert.Equal(t, prefix(left, e), e.left, "node %d entry %d", id, j)
			assert.Equal(t, prefix(right, e), e.right, "node %d entry %d", id, j)
		}
	}
}

func TestCascade_Axes(t *testing.T) {
	c := newTestCascade(t, [][]float64{{0, 1, 2, 3}, {4, 5, 6, 7}}, 1)
	assert.Equal(t, 2, c.keyAxis)
	assert.Equal(t, 3, c.valAxis)
	assert.Equal(t, 2, c.level())
}

func TestCascade_Query_Example(t *testing.T) {
	// Four points, one per leaf:
	//   (1,1) (1,3) | (2,2) (3,1), root key 2.
	c := newTestCascade(t, [][]float64{{1, 1}, {2, 2}, {3, 1}, {1, 3}}, 1)
	require.Len(t, c.nodes, 7)
	assert.Equal(t, 2.0, c.nodes[0].key)

	tests := []struct {
		q    []float64
		want int
	}{
		{[]float64{2, 2}, 2},
		{[]float64{0, 0}, 0},
		{[]float64{3, 3}, 4},
		{[]float64{3, 0.5}, 0},
		{[]float64{1.5, 10}, 2},
		{[]float64{10, 1}, 2},
	}
	for _, tt := range tests {
		var acc tally
		c.query(tt.q, &acc)
		assert.Equal(t, tt.want, acc.count, "q=%v", tt.q)
	}
}

func TestCascade_FindSplit(t *testing.T) {
	c := newTestCascade(t, [][]float64{{1, 1}, {2, 2}, {3, 1}, {1, 3}}, 1)

	assert.Equal(t, int32(0), c.findSplit(2))
	assert.Equal(t, int32(0), c.findSplit(100))
	// Below the root key the search moves into the left subtree.
	split := c.findSplit(1.5)
	assert.Equal(t, c.nodes[0].left, split)
}
