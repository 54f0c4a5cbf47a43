package rangetree

import "gonum.org/v1/gonum/mat"

// NewFromMatrix builds a Tree whose points are the rows of m. Row i gets
// index i.
func NewFromMatrix(m mat.Matrix, cfg Config) (*Tree, error) {
	r, _ := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
	}
	return New(rows, cfg)
}
