package problem

import (
	"fmt"
	"math/rand"
)

// DefaultMaxCoord bounds generated coordinates when GenerateOptions.MaxCoord
// is zero.
const DefaultMaxCoord = 1000

// GenerateOptions describes a random instance.
type GenerateOptions struct {
	Dims    int
	Points  int
	Queries int

	// MaxCoord bounds the integer coordinates: points are drawn from
	// [0, MaxCoord) and queries from [0, MaxCoord], so the largest query can
	// dominate every point. Small values produce many duplicates.
	MaxCoord int

	Seed int64
}

// Generate returns a random problem with integer-valued coordinates.
func Generate(opts GenerateOptions) (*Problem, error) {
	if opts.MaxCoord == 0 {
		opts.MaxCoord = DefaultMaxCoord
	}
	if opts.Dims < MinDims {
		return nil, fmt.Errorf("problem: dimension must be >= %d, got %d", MinDims, opts.Dims)
	}
	if opts.Points < 1 {
		return nil, fmt.Errorf("problem: point count must be >= 1, got %d", opts.Points)
	}
	if opts.Queries < 0 {
		return nil, fmt.Errorf("problem: query count must be >= 0, got %d", opts.Queries)
	}
	if opts.MaxCoord < 1 {
		return nil, fmt.Errorf("problem: MaxCoord must be >= 1, got %d", opts.MaxCoord)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	p := &Problem{
		Dims:    opts.Dims,
		Points:  randomRows(rng, opts.Points, opts.Dims, opts.MaxCoord),
		Queries: randomRows(rng, opts.Queries, opts.Dims, opts.MaxCoord+1),
	}
	return p, nil
}

func randomRows(rng *rand.Rand, n, dims, bound int) [][]float64 {
	data := make([]float64, n*dims)
	for i := range data {
		data[i] = float64(rng.Intn(bound))
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = data[i*dims : (i+1)*dims : (i+1)*dims]
	}
	return rows
}
