package turtle

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Image converts the grid to an image.Image.
//
// One-channel grids become image.Gray, three-channel grids opaque
// image.RGBA and four-channel grids image.NRGBA. Sample types with more
// than 8 bits, and floating types, produce the 16-bit variants (Gray16,
// RGBA64, NRGBA64). Samples are scaled by the type's depth and clamped to
// [0, depth].
func (g *Grid[T]) Image() (image.Image, error) {
	if err := g.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	depth := DepthOf[T]()
	wide := depth.Kind == DepthFloat || (depth.Kind == DepthInteger && depth.Bits > 8)
	rows, cols, channels := g.Rows(), g.Cols(), g.Channels()
	rect := image.Rect(0, 0, cols, rows)

	g.mu.Lock()
	defer g.mu.Unlock()

	unit := func(row, col, ch int) float64 {
		v := sampleValue(g.data[g.index(row, col, ch)]) / depth.Max
		return math.Min(math.Max(v, 0), 1)
	}
	to8 := func(row, col, ch int) uint8 { return uint8(math.Round(unit(row, col, ch) * 0xff)) }
	to16 := func(row, col, ch int) uint16 { return uint16(math.Round(unit(row, col, ch) * 0xffff)) }

	switch {
	case channels == Gray && !wide:
		img := image.NewGray(rect)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				img.SetGray(x, y, color.Gray{Y: to8(y, x, 0)})
			}
		}
		return img, nil

	case channels == Gray:
		img := image.NewGray16(rect)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				img.SetGray16(x, y, color.Gray16{Y: to16(y, x, 0)})
			}
		}
		return img, nil

	case channels == RGB && !wide:
		img := image.NewRGBA(rect)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				img.SetRGBA(x, y, color.RGBA{R: to8(y, x, 0), G: to8(y, x, 1), B: to8(y, x, 2), A: 0xff})
			}
		}
		return img, nil

	case channels == RGB:
		img := image.NewRGBA64(rect)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				img.SetRGBA64(x, y, color.RGBA64{R: to16(y, x, 0), G: to16(y, x, 1), B: to16(y, x, 2), A: 0xffff})
			}
		}
		return img, nil

	case !wide:
		img := image.NewNRGBA(rect)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				img.SetNRGBA(x, y, color.NRGBA{R: to8(y, x, 0), G: to8(y, x, 1), B: to8(y, x, 2), A: to8(y, x, 3)})
			}
		}
		return img, nil

	default:
		img := image.NewNRGBA64(rect)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				img.SetNRGBA64(x, y, color.NRGBA64{R: to16(y, x, 0), G: to16(y, x, 1), B: to16(y, x, 2), A: to16(y, x, 3)})
			}
		}
		return img, nil
	}
}
