package rangetree

// structure is one level of the tree of trees: a range tree over one axis
// whose internal nodes point at structures one level lower, or the cascade
// tree that forms the 2D floor.
type structure interface {
	// query adds the points dominated by q to acc.
	query(q []float64, acc *tally)

	// size returns the number of points the structure covers.
	size() int

	// level returns the recursion level, 2 for the cascade floor.
	level() int

	// height returns the number of edges on the longest root-to-leaf path.
	height() int

	// members returns the points the structure covers, in its own order.
	members() []Point

	// collect adds the structure and everything nested in it to st.
	collect(st *Stats)

	// validate checks the structure and everything nested in it.
	validate() error
}

// span is the part of a node shared by both tree kinds. Nodes live in a
// per-structure arena and refer to their children by position in it.
type span struct {
	leaf        bool
	key         float64 // median coordinate on the tree's axis; unused on leaves
	left, right int32   // child ids, -1 on leaves
	lo, hi      int     // the node's view into the structure's points
}

func (s *span) count() int { return s.hi - s.lo }

func leafSpan(lo, hi int) span {
	return span{leaf: true, left: -1, right: -1, lo: lo, hi: hi}
}

// subtreeHeight returns the number of edges on the longest path from id to a
// leaf.
func subtreeHeight(node func(int32) *span, id int32) int {
	s := node(id)
	if s.leaf {
		return 0
	}
	return 1 + max(subtreeHeight(node, s.left), subtreeHeight(node, s.right))
}
