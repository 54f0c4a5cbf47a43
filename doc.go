// Package rangetree answers dominance counting queries over a static set of
// points in k dimensions (k >= 2): how many stored points are <= a query
// point in every coordinate.
//
// The index is a kd range tree. The outermost tree is a median-split binary
// tree on one coordinate; each of its internal nodes owns an associated
// structure over the same points one dimension lower, down to a 2D floor
// whose nodes carry arrays sorted on the last coordinate and linked by
// fractional cascading. Small nodes are scanned directly.
//
// Basic usage:
//
//	tree, err := rangetree.New(points, rangetree.DefaultConfig())
//	n, err := tree.Count([]float64{2, 2})      // points dominated by (2, 2)
//	ids, err := tree.Report([]float64{2, 2})   // their indices, as a bitmap
//
// Build cost is O(n log^(k-1) n) time and space; a query costs
// O(log^(k-1) n) plus, for Report, the size of the answer.
//
// # Concurrency
//
// A Tree is never modified after New returns. Count, Report and CountBatch
// may be called from any number of goroutines without locking. Config.Workers
// parallelizes the build of the outermost tree's associated structures.
//
// # Ties
//
// Points are numbered 0..n-1 in input order and the number breaks ties on
// equal coordinates, so duplicate coordinates (or duplicate points) are
// handled deterministically.
package rangetree
