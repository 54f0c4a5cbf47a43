package rangetree

import "golang.org/x/sync/errgroup"

// builder constructs the tree of trees. It holds only immutable settings, so
// one builder is shared by every worker.
type builder struct {
	lay      layout
	leafSize int
}

// build returns the structure for level lvl over points, which it takes
// ownership of. Level 2 is the cascade floor; higher levels are range trees
// whose internal nodes get a structure for lvl-1 over their own points.
func (b *builder) build(points []Point, lvl, workers int) (structure, error) {
	if lvl < 2 {
		return nil, corruptf("build requested at level %d", lvl)
	}
	if lvl == 2 {
		return buildCascade(points, b.lay, b.leafSize)
	}
	t := newRangeTree(points, lvl, b.lay, b.leafSize)
	if err := b.attach(t, workers); err != nil {
		return nil, err
	}
	return t, nil
}

// attach builds the associated structure of every internal node of t. With
// more than one worker the builds run concurrently. Each job copies its own
// point range and writes only its own node, so the jobs share no mutable
// state. Nested levels are always built sequentially.
func (b *builder) attach(t *rangeTree, workers int) error {
	one := func(i int) error {
		n := &t.nodes[i]
		s, err := b.build(clonePoints(t.points[n.lo:n.hi]), t.lvl-1, 1)
		if err != nil {
			return err
		}
		n.assoc = s
		return nil
	}

	if workers <= 1 {
		for i := range t.nodes {
			if t.nodes[i].leaf {
				continue
			}
			if err := one(i); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range t.nodes {
		if t.nodes[i].leaf {
			continue
		}
		g.Go(func() error { return one(i) })
	}
	return g.Wait()
}
