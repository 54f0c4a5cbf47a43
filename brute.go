package rangetree

import "github.com/RoaringBitmap/roaring/v2"

// BruteForce answers dominance queries by testing every point. It accepts
// the same input as New and is the reference the Tree is checked against.
type BruteForce struct {
	points []Point
	dims   int
}

// NewBruteForce validates and copies points.
func NewBruteForce(points [][]float64) (*BruteForce, error) {
	pts, dims, err := makePoints(points)
	if err != nil {
		return nil, err
	}
	return &BruteForce{points: pts, dims: dims}, nil
}

func (b *BruteForce) Dims() int { return b.dims }
func (b *BruteForce) Len() int  { return len(b.points) }

// Count returns the number of points dominated by q.
func (b *BruteForce) Count(q []float64) (int, error) {
	if err := checkQuery(q, b.dims); err != nil {
		return 0, err
	}
	return countDominated(b.points, q), nil
}

// Report returns the indices of the points dominated by q.
func (b *BruteForce) Report(q []float64) (*roaring.Bitmap, error) {
	if err := checkQuery(q, b.dims); err != nil {
		return nil, err
	}
	acc := tally{ids: roaring.New()}
	acc.scan(b.points, q)
	return acc.ids, nil
}
