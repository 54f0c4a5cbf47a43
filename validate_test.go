package rangetree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_Validate(t *testing.T) {
	rng := rand.New(rand.NewSource(47))
	for dims := 2; dims <= 5; dims++ {
		for _, leafSize := range []int{1, 3, 10} {
			tree := buildTree(t, randomPoints(rng, 120, dims, 8), leafSize)
			assert.NoError(t, tree.Validate(), "dims=%d leafSize=%d", dims, leafSize)
		}
	}
}

// --- Corruption is detected ---

func corruptCascade(t *testing.T) (*Tree, *cascadeTree) {
	t.Helper()
	rng := rand.New(rand.NewSource(53))
	tree := buildTree(t, randomPoints(rng, 100, 2, 1000), 3)
	return tree, tree.root.(*cascadeTree)
}

func TestTree_Validate_DetectsBadPointer(t *testing.T) {
	tree, c := corruptCascade(t)
	c.nodes[0].entries[0].left = 5
	assert.ErrorIs(t, tree.Validate(), ErrCorrupt)
}

func TestTree_Validate_DetectsUnorderedEntries(t *testing.T) {
	tree, c := corruptCascade(t)
	e := c.nodes[0].entries
	e[0], e[1] = e[1], e[0]
	assert.ErrorIs(t, tree.Validate(), ErrCorrupt)
}

func TestTree_Validate_DetectsWrongKey(t *testing.T) {
	tree, c := corruptCascade(t)
	c.nodes[0].key = -1
	assert.ErrorIs(t, tree.Validate(), ErrCorrupt)
}

func TestTree_Validate_DetectsPointerOnLeaf(t *testing.T) {
	tree, c := corruptCascade(t)
	for i := range c.nodes {
		if c.nodes[i].leaf {
			c.nodes[i].entries[0].right = 0
			break
		}
	}
	assert.ErrorIs(t, tree.Validate(), ErrCorrupt)
}

func TestTree_Validate_DetectsPointsAcrossSplit(t *testing.T) {
	tree, c := corruptCascade(t)
	root := &c.nodes[0]
	l, r := &c.nodes[root.left], &c.nodes[root.right]
	c.points[l.lo], c.points[r.hi-1] = c.points[r.hi-1], c.points[l.lo]
	assert.ErrorIs(t, tree.Validate(), ErrCorrupt)
}

func TestTree_Validate_DetectsMissingAssoc(t *testing.T) {
	rng := rand.New(rand.NewSource(59))
	tree := buildTree(t, randomPoints(rng, 100, 3, 1000), 3)
	rt := tree.root.(*rangeTree)
	rt.nodes[0].assoc = nil
	assert.ErrorIs(t, tree.Validate(), ErrCorrupt)
}

func TestTree_Validate_DetectsAssocOverOtherPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(61))
	tree := buildTree(t, randomPoints(rng, 100, 3, 1000), 3)
	rt := tree.root.(*rangeTree)
	left := &rt.nodes[rt.nodes[0].left]
	require.False(t, left.leaf)
	rt.nodes[0].assoc = left.assoc
	assert.ErrorIs(t, tree.Validate(), ErrCorrupt)
}

func TestTree_Validate_DetectsWrongLeafSize(t *testing.T) {
	tree, c := corruptCascade(t)
	c.leafSize = 1
	assert.ErrorIs(t, tree.Validate(), ErrCorrupt)
}
