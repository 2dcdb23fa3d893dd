package turtle

import (
	"math"

	"github.com/gogpu/turtle/internal/raster"
)

// draw rasterizes the segment between two cursor states into the grid.
// Each endpoint coordinate is clipped to [0, extent-1] and rounded half to
// even before the pixel path is computed.
func (t *Turtle[T]) draw(from, to CursorState) {
	g := t.grid
	rows, cols, channels := g.Rows(), g.Cols(), g.Channels()

	r0 := clipIndex(from.Row, rows)
	c0 := clipIndex(from.Col, cols)
	r1 := clipIndex(to.Row, rows)
	c1 := clipIndex(to.Col, cols)

	g.mu.Lock()
	defer g.mu.Unlock()

	raster.Draw(t.mode.raster(), r0, c0, r1, c1, raster.BlitterFunc(func(row, col int, coverage float64) {
		if row < 0 || row >= rows || col < 0 || col >= cols {
			return
		}
		i := (row*cols + col) * channels
		for ch := 0; ch < channels; ch++ {
			g.data[i+ch] = t.convert(coverage * t.color.v[ch])
		}
	}))
}

// clipIndex clamps v to [0, extent-1] and rounds it to the nearest integer,
// ties to even.
func clipIndex(v float64, extent int) int {
	v = math.Min(math.Max(v, 0), float64(extent-1))
	return int(math.RoundToEven(v))
}
