package rangetree

type rangeNode struct {
	span
	assoc structure // internal nodes only
}

// rangeTree is a median-split binary tree on one axis. Every internal node
// owns an associated structure over the same points for the next level down.
type rangeTree struct {
	lvl      int
	axis     int
	points   []Point
	nodes    []rangeNode
	leafSize int
}

func newRangeTree(points []Point, lvl int, lay layout, leafSize int) *rangeTree {
	t := &rangeTree{
		lvl:      lvl,
		axis:     lay.axis(lvl),
		points:   points,
		nodes:    make([]rangeNode, 0, nodeCount(len(points), leafSize)),
		leafSize: leafSize,
	}
	t.partitionNode(0, len(points))
	return t
}

// partitionNode lays out the subtree over points[lo:hi] and returns its id.
// Associated structures are attached afterwards by the builder; partitioning
// only reorders points within a node's range, so each range still holds the
// same set once the whole tree is laid out.
func (t *rangeTree) partitionNode(lo, hi int) int32 {
	id := int32(len(t.nodes))
	t.nodes = append(t.nodes, rangeNode{span: leafSpan(lo, hi)})
	if hi-lo <= t.leafSize {
		return id
	}

	mid, key := splitMedian(t.points, lo, hi, t.axis)
	left := t.partitionNode(lo, mid)
	right := t.partitionNode(mid, hi)

	n := &t.nodes[id]
	n.leaf = false
	n.key = key
	n.left, n.right = left, right
	return id
}

func (t *rangeTree) node(id int32) *span { return &t.nodes[id].span }

func (t *rangeTree) size() int { return len(t.points) }

func (t *rangeTree) level() int { return t.lvl }

func (t *rangeTree) height() int { return subtreeHeight(t.node, 0) }

func (t *rangeTree) members() []Point { return t.points }

func (t *rangeTree) findSplit(qk float64) int32 {
	var id int32
	for n := &t.nodes[id]; !n.leaf && qk < n.key; n = &t.nodes[id] {
		id = n.left
	}
	return id
}

// query finds the split node on this tree's axis, counts its left subtree
// whole, then walks the right boundary counting every left child that lies
// at or below the query. Whole subtrees are resolved one level down.
func (t *rangeTree) query(q []float64, acc *tally) {
	qk := q[t.axis]

	id := t.findSplit(qk)
	n := &t.nodes[id]
	if n.leaf {
		acc.scan(t.points[n.lo:n.hi], q)
		return
	}
	t.queryWhole(n.left, q, acc)

	id = n.right
	for n = &t.nodes[id]; !n.leaf; n = &t.nodes[id] {
		if qk >= n.key {
			t.queryWhole(n.left, q, acc)
			id = n.right
		} else {
			id = n.left
		}
	}
	acc.scan(t.points[n.lo:n.hi], q)
}

// queryWhole handles a subtree already dominated on this tree's axis.
func (t *rangeTree) queryWhole(id int32, q []float64, acc *tally) {
	n := &t.nodes[id]
	if n.leaf {
		acc.scan(t.points[n.lo:n.hi], q)
		return
	}
	n.assoc.query(q, acc)
}

func (t *rangeTree) collect(st *Stats) {
	st.Structures++
	st.Nodes += len(t.nodes)
	for i := range t.nodes {
		if t.nodes[i].leaf {
			st.Leaves++
			continue
		}
		t.nodes[i].assoc.collect(st)
	}
	st.MaxHeight = max(st.MaxHeight, t.height())
}
