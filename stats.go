package rangetree

// Stats summarizes the shape of a built Tree.
type Stats struct {
	Dims     int
	Points   int
	LeafSize int

	// Structures counts every tree in the tree of trees: the outermost one
	// plus every associated structure.
	Structures int

	// Nodes and Leaves are totals over all structures.
	Nodes  int
	Leaves int

	// CascadeEntries is the total length of all cascade arrays.
	CascadeEntries int

	// Height is the longest root-to-leaf path, in edges, of the outermost
	// tree. MaxHeight is the same measure over every structure.
	Height    int
	MaxHeight int
}

// Stats walks the whole structure and returns its shape.
func (t *Tree) Stats() Stats {
	st := Stats{
		Dims:     t.dims,
		Points:   t.n,
		LeafSize: t.leafSize,
		Height:   t.root.height(),
	}
	t.root.collect(&st)
	return st
}
