package rangetree

import "sort"

// noEntry marks a cascade pointer with no matching entry in the child.
const noEntry int32 = -1

// cascadeEntry is one element of a node's cascade array. left and right are
// positions in the children's arrays: the last entry of each child that sorts
// at or before this one, or noEntry.
type cascadeEntry struct {
	value       float64 // coordinate on the cascade axis
	index       int     // Point.Index
	left, right int32
}

func entryLess(a, b *cascadeEntry) bool {
	if a.value != b.value {
		return a.value < b.value
	}
	return a.index < b.index
}

type cascadeNode struct {
	span
	entries []cascadeEntry
}

// cascadeTree is the 2D floor of the recursion: a median-split tree on
// keyAxis whose nodes all carry their points sorted on valAxis, linked
// between levels so that a position found once at the split node can be
// followed downwards without searching again.
type cascadeTree struct {
	points   []Point
	nodes    []cascadeNode
	keyAxis  int
	valAxis  int
	leafSize int
}

// buildCascade builds the 2D structure over points, which it takes ownership
// of and reorders.
func buildCascade(points []Point, lay layout, leafSize int) (*cascadeTree, error) {
	t := &cascadeTree{
		points:   points,
		nodes:    make([]cascadeNode, 0, nodeCount(len(points), leafSize)),
		keyAxis:  lay.axis(2),
		valAxis:  lay.axis(1),
		leafSize: leafSize,
	}
	if _, err := t.buildNode(0, len(points)); err != nil {
		return nil, err
	}
	return t, nil
}

// buildNode builds the subtree over points[lo:hi] and returns its id.
// Children are built first so the node's array can be merged from theirs.
func (t *cascadeTree) buildNode(lo, hi int) (int32, error) {
	id := int32(len(t.nodes))
	t.nodes = append(t.nodes, cascadeNode{span: leafSpan(lo, hi)})

	if hi-lo <= t.leafSize {
		entries := make([]cascadeEntry, hi-lo)
		for i := lo; i < hi; i++ {
			p := &t.points[i]
			entries[i-lo] = cascadeEntry{value: p.Coords[t.valAxis], index: p.Index, left: noEntry, right: noEntry}
		}
		sort.Slice(entries, func(i, j int) bool { return entryLess(&entries[i], &entries[j]) })
		t.nodes[id].entries = entries
		return id, nil
	}

	mid, key := splitMedian(t.points, lo, hi, t.keyAxis)
	left, err := t.buildNode(lo, mid)
	if err != nil {
		return 0, err
	}
	right, err := t.buildNode(mid, hi)
	if err != nil {
		return 0, err
	}

	entries, err := mergeCascade(t.nodes[left].entries, t.nodes[right].entries)
	if err != nil {
		return 0, err
	}
	if len(entries) != hi-lo {
		return 0, corruptf("cascade node %d holds %d entries for %d points", id, len(entries), hi-lo)
	}

	n := &t.nodes[id]
	n.leaf = false
	n.key = key
	n.left, n.right = left, right
	n.entries = entries
	return id, nil
}

// mergeCascade merges two sorted child arrays and records, for every merged
// entry, the last position reached in each child. It fails if the children
// are not strictly ordered, which also catches a point present in both.
func mergeCascade(left, right []cascadeEntry) ([]cascadeEntry, error) {
	out := make([]cascadeEntry, 0, len(left)+len(right))
	li, ri := 0, 0
	for li < len(left) || ri < len(right) {
		var e cascadeEntry
		if ri == len(right) || (li < len(left) && entryLess(&left[li], &right[ri])) {
			e = cascadeEntry{value: left[li].value, index: left[li].index, left: int32(li), right: int32(ri) - 1}
			li++
		} else {
			e = cascadeEntry{value: right[ri].value, index: right[ri].index, left: int32(li) - 1, right: int32(ri)}
			ri++
		}
		if k := len(out); k > 0 && !entryLess(&out[k-1], &e) {
			return nil, corruptf("cascade merge out of order at point %d", e.index)
		}
		out = append(out, e)
	}
	return out, nil
}

func (t *cascadeTree) node(id int32) *span { return &t.nodes[id].span }

func (t *cascadeTree) size() int { return len(t.points) }

func (t *cascadeTree) level() int { return 2 }

func (t *cascadeTree) height() int { return subtreeHeight(t.node, 0) }

func (t *cascadeTree) members() []Point { return t.points }

// findSplit walks left from the root while the key bound excludes the right
// subtree and returns the first node where both children may contribute.
func (t *cascadeTree) findSplit(qk float64) int32 {
	var id int32
	for n := &t.nodes[id]; !n.leaf && qk < n.key; n = &t.nodes[id] {
		id = n.left
	}
	return id
}

// query counts the points with key <= q[keyAxis] and value <= q[valAxis],
// plus whatever the leaf scans accept on the remaining coordinates. Only the
// split node's array is binary searched; below it the position is carried
// by the cascade pointers.
func (t *cascadeTree) query(q []float64, acc *tally) {
	qk, qv := q[t.keyAxis], q[t.valAxis]

	id := t.findSplit(qk)
	n := &t.nodes[id]
	if n.leaf {
		acc.scan(t.points[n.lo:n.hi], q)
		return
	}

	pos := int32(sort.Search(len(n.entries), func(i int) bool { return n.entries[i].value > qv })) - 1
	if pos == noEntry {
		return
	}

	// The whole left subtree is at or below the key; its qualifying entries
	// are exactly the prefix the pointer selects.
	e := &n.entries[pos]
	acc.addPrefix(t.nodes[n.left].entries, e.left)

	id, pos = n.right, e.right
	for pos != noEntry {
		n = &t.nodes[id]
		if n.leaf {
			acc.scan(t.points[n.lo:n.hi], q)
			return
		}
		e = &n.entries[pos]
		if qk >= n.key {
			acc.addPrefix(t.nodes[n.left].entries, e.left)
			id, pos = n.right, e.right
		} else {
			id, pos = n.left, e.left
		}
	}
}

func (t *cascadeTree) collect(st *Stats) {
	st.Structures++
	st.Nodes += len(t.nodes)
	for i := range t.nodes {
		st.CascadeEntries += len(t.nodes[i].entries)
		if t.nodes[i].leaf {
			st.Leaves++
		}
	}
	st.MaxHeight = max(st.MaxHeight, t.height())
}
