package rangetree

// selectNth reorders pts so that pts[k] holds the element that sorted order
// on axis would put there, every element before it is smaller and every
// element after it larger. Expected linear time; no full sort.
func selectNth(pts []Point, k, axis int) {
	lo, hi := 0, len(pts)-1
	for lo < hi {
		p := partition(pts, lo, hi, axis)
		switch {
		case p == k:
			return
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// partition splits pts[lo:hi+1] around a median-of-three pivot and returns
// the pivot's final position.
func partition(pts []Point, lo, hi, axis int) int {
	mid := lo + (hi-lo)/2
	if lessOn(&pts[mid], &pts[lo], axis) {
		pts[mid], pts[lo] = pts[lo], pts[mid]
	}
	if lessOn(&pts[hi], &pts[lo], axis) {
		pts[hi], pts[lo] = pts[lo], pts[hi]
	}
	// pts[lo] is now the smallest of the three; move the median to hi.
	if lessOn(&pts[mid], &pts[hi], axis) {
		pts[mid], pts[hi] = pts[hi], pts[mid]
	}

	pivot := pts[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if lessOn(&pts[j], &pivot, axis) {
			pts[i], pts[j] = pts[j], pts[i]
			i++
		}
	}
	pts[i], pts[hi] = pts[hi], pts[i]
	return i
}

// splitMedian partitions pts[lo:hi] on axis so that pts[lo:mid] holds the
// floor(m/2) smallest points, and returns mid together with the median's
// coordinate, which becomes the node key.
func splitMedian(pts []Point, lo, hi, axis int) (int, float64) {
	mid := lo + (hi-lo)/2
	selectNth(pts[lo:hi], mid-lo, axis)
	return mid, pts[mid].Coords[axis]
}

// nodeCount returns the number of nodes a median-split tree over m points
// with the given leaf size has.
func nodeCount(m, leafSize int) int {
	if m <= leafSize {
		return 1
	}
	return 1 + nodeCount(m/2, leafSize) + nodeCount(m-m/2, leafSize)
}
