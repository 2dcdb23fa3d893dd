// Package raster provides the line rasterization primitive used by the turtle.
//
// A line between two integer pixel positions is turned into a sequence of
// (row, col, coverage) samples. Coverage is always 1 for crisp lines and lies
// in [0, 1] for the anti-aliased variants. Samples may fall outside the
// target buffer; blitters are expected to discard them.
package raster

// Mode selects the line rasterization algorithm.
type Mode int

const (
	// ModeCrisp draws aliased Bresenham lines with full coverage.
	ModeCrisp Mode = iota

	// ModeAA draws anti-aliased lines using Zingl's variant of Bresenham,
	// which spreads coverage across the two pixels straddling the ideal line.
	ModeAA

	// ModeArea draws anti-aliased lines by rasterizing a one pixel wide quad
	// and using the exact area coverage of each pixel.
	ModeArea
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeCrisp:
		return "Crisp"
	case ModeAA:
		return "AA"
	case ModeArea:
		return "Area"
	default:
		return "Unknown"
	}
}

// Valid reports whether m names a known algorithm.
func (m Mode) Valid() bool {
	return m >= ModeCrisp && m <= ModeArea
}

// Blitter receives rasterized samples.
type Blitter interface {
	// Blit writes a single sample with the given coverage in [0, 1].
	Blit(row, col int, coverage float64)
}

// BlitterFunc adapts a function to the Blitter interface.
type BlitterFunc func(row, col int, coverage float64)

// Blit calls f(row, col, coverage).
func (f BlitterFunc) Blit(row, col int, coverage float64) {
	f(row, col, coverage)
}

// Pixel is one rasterized sample.
type Pixel struct {
	Row, Col int
	Coverage float64
}

// Draw rasterizes the line (r0, c0)-(r1, c1) with the given mode.
// Unknown modes fall back to ModeCrisp.
func Draw(mode Mode, r0, c0, r1, c1 int, b Blitter) {
	switch mode {
	case ModeAA:
		LineAA(r0, c0, r1, c1, b)
	case ModeArea:
		LineArea(r0, c0, r1, c1, b)
	default:
		Line(r0, c0, r1, c1, b)
	}
}

// Pixels returns the samples Draw would produce, in emission order.
func Pixels(mode Mode, r0, c0, r1, c1 int) []Pixel {
	var out []Pixel
	Draw(mode, r0, c0, r1, c1, BlitterFunc(func(row, col int, coverage float64) {
		out = append(out, Pixel{Row: row, Col: col, Coverage: coverage})
	}))
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}
