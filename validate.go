package rangetree

import (
	"fmt"
	"slices"
)

// Validate checks every structural invariant of the tree and returns an
// error wrapping ErrCorrupt on the first violation:
//   - child ranges partition their parent, split floor(m/2) / ceil(m/2);
//   - a node is a leaf exactly when it holds at most LeafSize points;
//   - every key separates its children on the node's axis;
//   - every internal range node has an associated structure one level
//     down over the same points;
//   - cascade arrays are strictly ordered, hold each point of their range
//     once, and their pointers replay the merge of the children's arrays.
//
// New runs it when Config.CheckInvariants is set.
func (t *Tree) Validate() error {
	if t.root.level() != t.dims {
		return corruptf("root is at level %d, want %d", t.root.level(), t.dims)
	}
	if t.root.size() != t.n {
		return corruptf("root covers %d points, want %d", t.root.size(), t.n)
	}
	return t.root.validate()
}

func (t *rangeTree) validate() error {
	if err := checkSpans(t.node, len(t.nodes), t.points, t.axis, t.leafSize); err != nil {
		return fmt.Errorf("level %d: %w", t.lvl, err)
	}
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.leaf {
			if n.assoc != nil {
				return corruptf("level %d: leaf %d has an associated structure", t.lvl, i)
			}
			continue
		}
		if n.assoc == nil {
			return corruptf("level %d: node %d has no associated structure", t.lvl, i)
		}
		if n.assoc.level() != t.lvl-1 {
			return corruptf("level %d: node %d associated structure is at level %d", t.lvl, i, n.assoc.level())
		}
		if !sameIndices(t.points[n.lo:n.hi], n.assoc.members()) {
			return corruptf("level %d: node %d associated structure covers different points", t.lvl, i)
		}
		if err := n.assoc.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (t *cascadeTree) validate() error {
	if err := checkSpans(t.node, len(t.nodes), t.points, t.keyAxis, t.leafSize); err != nil {
		return fmt.Errorf("level 2: %w", err)
	}
	for i := range t.nodes {
		n := &t.nodes[i]
		if err := t.checkEntries(n); err != nil {
			return fmt.Errorf("level 2: node %d: %w", i, err)
		}
		if n.leaf {
			continue
		}
		if err := t.checkPointers(n); err != nil {
			return fmt.Errorf("level 2: node %d: %w", i, err)
		}
	}
	return nil
}

// checkEntries verifies that n's array is strictly ordered and holds every
// point of n's range exactly once with its cascade-axis value.
func (t *cascadeTree) checkEntries(n *cascadeNode) error {
	if len(n.entries) != n.count() {
		return corruptf("%d entries for %d points", len(n.entries), n.count())
	}
	want := make(map[int]float64, n.count())
	for _, p := range t.points[n.lo:n.hi] {
		want[p.Index] = p.Coords[t.valAxis]
	}
	for j := range n.entries {
		e := &n.entries[j]
		v, ok := want[e.index]
		if !ok {
			return corruptf("entry %d: point %d is not in range or repeated", j, e.index)
		}
		if v != e.value {
			return corruptf("entry %d: point %d has value %g, want %g", j, e.index, e.value, v)
		}
		delete(want, e.index)
		if j > 0 && !entryLess(&n.entries[j-1], e) {
			return corruptf("entry %d out of order", j)
		}
		if n.leaf && (e.left != noEntry || e.right != noEntry) {
			return corruptf("leaf entry %d has cascade pointers", j)
		}
	}
	return nil
}

// checkPointers replays the merge through n's pointers: every entry must
// advance exactly one child position, land on the same point in that child,
// and both children must be consumed completely.
func (t *cascadeTree) checkPointers(n *cascadeNode) error {
	left, right := t.nodes[n.left].entries, t.nodes[n.right].entries
	li, ri := noEntry, noEntry
	for j := range n.entries {
		e := &n.entries[j]
		switch {
		case e.left == li+1 && e.right == ri && int(e.left) < len(left):
			li = e.left
			if left[li].index != e.index {
				return corruptf("entry %d: left pointer lands on point %d, want %d", j, left[li].index, e.index)
			}
		case e.right == ri+1 && e.left == li && int(e.right) < len(right):
			ri = e.right
			if right[ri].index != e.index {
				return corruptf("entry %d: right pointer lands on point %d, want %d", j, right[ri].index, e.index)
			}
		default:
			return corruptf("entry %d: pointers (%d, %d) do not follow (%d, %d)", j, e.left, e.right, li, ri)
		}
	}
	if int(li) != len(left)-1 || int(ri) != len(right)-1 {
		return corruptf("pointers stop at (%d, %d) of (%d, %d)", li, ri, len(left), len(right))
	}
	return nil
}

// checkSpans verifies the shape shared by both tree kinds. Children are laid
// out in preorder, so every child id is larger than its parent's.
func checkSpans(node func(int32) *span, count int, points []Point, axis, leafSize int) error {
	if count == 0 {
		return corruptf("no nodes")
	}
	if root := node(0); root.lo != 0 || root.hi != len(points) {
		return corruptf("root covers [%d, %d) of %d points", root.lo, root.hi, len(points))
	}
	for id := int32(0); int(id) < count; id++ {
		s := node(id)
		m := s.count()
		if s.leaf {
			if m < 1 || m > leafSize {
				return corruptf("leaf %d holds %d points, leaf size %d", id, m, leafSize)
			}
			continue
		}
		if m <= leafSize {
			return corruptf("internal node %d holds only %d points, leaf size %d", id, m, leafSize)
		}
		if s.left <= id || s.right <= s.left || int(s.right) >= count {
			return corruptf("node %d has children (%d, %d)", id, s.left, s.right)
		}
		l, r := node(s.left), node(s.right)
		if l.lo != s.lo || l.hi != r.lo || r.hi != s.hi {
			return corruptf("node %d [%d, %d) splits into [%d, %d) and [%d, %d)", id, s.lo, s.hi, l.lo, l.hi, r.lo, r.hi)
		}
		if l.count() != m/2 {
			return corruptf("node %d puts %d of %d points left", id, l.count(), m)
		}
		hiLeft := extremeOn(points[l.lo:l.hi], axis, false)
		loRight := extremeOn(points[r.lo:r.hi], axis, true)
		if !lessOn(hiLeft, loRight, axis) {
			return corruptf("node %d: point %d on the left sorts after point %d on the right", id, hiLeft.Index, loRight.Index)
		}
		if loRight.Coords[axis] != s.key {
			return corruptf("node %d key %g, median is %g", id, s.key, loRight.Coords[axis])
		}
	}
	return nil
}

// extremeOn returns the smallest (or largest) point of pts on axis.
func extremeOn(pts []Point, axis int, smallest bool) *Point {
	best := &pts[0]
	for i := 1; i < len(pts); i++ {
		if lessOn(&pts[i], best, axis) == smallest {
			best = &pts[i]
		}
	}
	return best
}

func sameIndices(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	ia := make([]int, len(a))
	ib := make([]int, len(b))
	for i := range a {
		ia[i], ib[i] = a[i].Index, b[i].Index
	}
	slices.Sort(ia)
	slices.Sort(ib)
	return slices.Equal(ia, ib)
}
