package rangetree

import (
	"fmt"
	"math"
)

// Point is a stored point. Index is unique within a tree and breaks ties
// between points that share a coordinate value, so every per-axis order used
// by the tree is total.
type Point struct {
	Coords []float64
	Index  int
}

// DominatedBy reports whether every coordinate of p is <= the matching
// coordinate of q. q must have at least len(p.Coords) coordinates.
func (p Point) DominatedBy(q []float64) bool {
	for i, v := range p.Coords {
		if v > q[i] {
			return false
		}
	}
	return true
}

// lessOn orders points by their coordinate on axis, then by Index.
func lessOn(a, b *Point, axis int) bool {
	av, bv := a.Coords[axis], b.Coords[axis]
	if av != bv {
		return av < bv
	}
	return a.Index < b.Index
}

// layout maps a recursion level to the coordinate it reads. Level d of a
// k-dimensional tree reads coordinate k-d: the outermost tree splits on
// coordinate 0, the 2D floor splits on coordinate k-2 and its cascade arrays
// are ordered on coordinate k-1. The value is fixed when the tree is built.
type layout struct {
	dims int
}

func (l layout) axis(level int) int { return l.dims - level }

// MaxPoints is the largest point set a tree accepts: indices 0..MaxPoints-1
// are exactly the ids a 32-bit Report bitmap can hold.
const MaxPoints = math.MaxUint32 + 1

// checkPointCount rejects point sets whose indices overflow uint32.
func checkPointCount(n int) error {
	if uint64(n) > MaxPoints {
		return fmt.Errorf("%w: %d points, at most %d", ErrTooManyPoints, n, uint64(MaxPoints))
	}
	return nil
}

// makePoints copies rows into a flat row-major backing array and returns
// points indexed 0..n-1 in input order. All rows must have the same length,
// at least two coordinates, and no NaN.
func makePoints(rows [][]float64) ([]Point, int, error) {
	n := len(rows)
	if n == 0 {
		return nil, 0, ErrEmptyPointSet
	}
	if err := checkPointCount(n); err != nil {
		return nil, 0, err
	}
	dims := len(rows[0])
	if dims < 2 {
		return nil, 0, fmt.Errorf("%w: need at least 2 coordinates, got %d", ErrInvalidDimension, dims)
	}

	data := make([]float64, n*dims)
	points := make([]Point, n)
	for i, row := range rows {
		if len(row) != dims {
			return nil, 0, fmt.Errorf("point %d: %w", i, &DimensionMismatchError{Expected: dims, Actual: len(row)})
		}
		if j := nanAt(row); j >= 0 {
			return nil, 0, fmt.Errorf("%w: point %d coordinate %d is NaN", ErrInvalidCoordinate, i, j)
		}
		c := data[i*dims : (i+1)*dims : (i+1)*dims]
		copy(c, row)
		points[i] = Point{Coords: c, Index: i}
	}
	return points, dims, nil
}

// checkQuery validates a query point against the configured dimensionality.
func checkQuery(q []float64, dims int) error {
	if len(q) != dims {
		return &DimensionMismatchError{Expected: dims, Actual: len(q)}
	}
	if j := nanAt(q); j >= 0 {
		return fmt.Errorf("%w: query coordinate %d is NaN", ErrInvalidCoordinate, j)
	}
	return nil
}

func nanAt(v []float64) int {
	for i, x := range v {
		if math.IsNaN(x) {
			return i
		}
	}
	return -1
}

// clonePoints copies point headers. Coordinates stay shared; they are never
// written after makePoints.
func clonePoints(src []Point) []Point {
	dst := make([]Point, len(src))
	copy(dst, src)
	return dst
}
