package rangetree

import "github.com/RoaringBitmap/roaring/v2"

// Counter is the read interface shared by Tree and BruteForce.
type Counter interface {
	// Count returns the number of stored points dominated by q.
	Count(q []float64) (int, error)

	// Report returns the indices of the stored points dominated by q.
	Report(q []float64) (*roaring.Bitmap, error)

	// Dims returns the dimensionality of the stored points.
	Dims() int

	// Len returns the number of stored points.
	Len() int
}

var (
	_ Counter = (*Tree)(nil)
	_ Counter = (*BruteForce)(nil)
)
