package rangetree

import (
	"context"
	"log/slog"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// Tree answers dominance queries over a fixed point set: how many stored
// points are <= a query point in every coordinate.
//
// A Tree is immutable once built and safe for concurrent use.
type Tree struct {
	dims     int
	n        int
	leafSize int
	root     structure
}

// New builds a Tree over points. Every point must have the same number of
// coordinates, at least two, and no NaN. Point i gets index i, which is what
// Report returns. New copies the coordinates; points may be reused afterwards.
func New(points [][]float64, cfg Config) (*Tree, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	pts, dims, err := makePoints(points)
	if err != nil {
		return nil, err
	}
	return build(pts, dims, cfg)
}

// build runs the builder over validated points; cfg has its defaults applied.
func build(pts []Point, dims int, cfg Config) (*Tree, error) {
	start := time.Now()
	cfg.Logger.Debug("range tree build started", "dims", dims, "points", len(pts), "leaf_size", cfg.LeafSize, "workers", cfg.Workers)
	b := &builder{lay: layout{dims: dims}, leafSize: cfg.LeafSize}
	root, err := b.build(pts, dims, cfg.Workers)
	if err != nil {
		cfg.Logger.Error("range tree build failed", "dims", dims, "points", len(pts), "error", err)
		return nil, err
	}

	t := &Tree{
		dims:     dims,
		n:        len(pts),
		leafSize: cfg.LeafSize,
		root:     root,
	}
	if cfg.CheckInvariants {
		if err := t.Validate(); err != nil {
			cfg.Logger.Error("range tree failed validation", "dims", dims, "points", len(pts), "error", err)
			return nil, err
		}
	}
	if cfg.Logger.Enabled(context.Background(), slog.LevelDebug) {
		logBuild(cfg.Logger, cfg, t.Stats(), time.Since(start))
	}
	return t, nil
}

// Dims returns the dimensionality of the stored points.
func (t *Tree) Dims() int { return t.dims }

// Len returns the number of stored points.
func (t *Tree) Len() int { return t.n }

// Count returns the number of stored points dominated by q.
func (t *Tree) Count(q []float64) (int, error) {
	if err := checkQuery(q, t.dims); err != nil {
		return 0, err
	}
	return t.count(q), nil
}

// Report returns the indices of the stored points dominated by q. It visits
// the same nodes as Count and additionally enumerates the counted cascade
// prefixes, so its cost grows with the size of the answer.
func (t *Tree) Report(q []float64) (*roaring.Bitmap, error) {
	if err := checkQuery(q, t.dims); err != nil {
		return nil, err
	}
	acc := tally{ids: roaring.New()}
	t.root.query(q, &acc)
	return acc.ids, nil
}

// count answers an already validated query.
func (t *Tree) count(q []float64) int {
	var acc tally
	t.root.query(q, &acc)
	return acc.count
}
