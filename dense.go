package turtle

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromDense returns a 2-D float64 grid that shares the backing array of m.
// Drawing on the grid writes straight into the matrix.
//
// m must be contiguous (its stride equal to its column count); slices of a
// larger matrix are rejected with ErrShape, as is a nil matrix.
func FromDense(m *mat.Dense) (*Grid[float64], error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrShape)
	}
	raw := m.RawMatrix()
	if raw.Stride != raw.Cols {
		return nil, fmt.Errorf("%w: matrix stride %d differs from %d columns", ErrShape, raw.Stride, raw.Cols)
	}
	return WrapGrid(raw.Data[:raw.Rows*raw.Cols], raw.Rows, raw.Cols)
}
