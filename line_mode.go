package turtle

import "github.com/gogpu/turtle/internal/raster"

// LineMode controls which algorithm rasterizes the segments drawn by Forward.
//
// The mode is per-Turtle. Turtles sharing a grid may use different modes.
type LineMode int

const (
	// LineCrisp draws aliased Bresenham lines: every pixel on the path gets
	// the full colour (default).
	LineCrisp LineMode = iota

	// LineAA draws anti-aliased lines with Zingl's algorithm. Each pixel on
	// the path gets coverage × colour, and pixels next to the ideal line get
	// partial coverage.
	LineAA

	// LineArea draws anti-aliased lines by exact area coverage of a one
	// pixel wide stroke. Smoother than LineAA on steep diagonals, at the cost
	// of a mask allocation per segment.
	LineArea
)

// String returns the line mode name.
func (m LineMode) String() string {
	switch m {
	case LineCrisp:
		return "Crisp"
	case LineAA:
		return "AA"
	case LineArea:
		return "Area"
	default:
		return "Unknown"
	}
}

func (m LineMode) raster() raster.Mode {
	switch m {
	case LineAA:
		return raster.ModeAA
	case LineArea:
		return raster.ModeArea
	default:
		return raster.ModeCrisp
	}
}
