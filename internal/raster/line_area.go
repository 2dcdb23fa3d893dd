package raster

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// lineHalfWidth is half the stroke width used by LineArea, in pixels.
const lineHalfWidth = 0.5

// LineArea draws an anti-aliased line from (r0, c0) to (r1, c1) by
// rasterizing a one pixel wide rectangle with square caps centred on the
// segment. Coverage is the exact area of each pixel covered by the
// rectangle, quantized to 1/255 by the vector rasterizer.
//
// A zero-length line covers exactly the pixel at (r0, c0).
func LineArea(r0, c0, r1, c1 int, b Blitter) {
	// Pixel (r, c) spans [c, c+1) x [r, r+1) in rasterizer space.
	x0, y0 := float64(c0)+0.5, float64(r0)+0.5
	x1, y1 := float64(c1)+0.5, float64(r1)+0.5

	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)

	var quad [4][2]float64
	if length == 0 {
		quad = [4][2]float64{
			{x0 - lineHalfWidth, y0 - lineHalfWidth},
			{x0 + lineHalfWidth, y0 - lineHalfWidth},
			{x0 + lineHalfWidth, y0 + lineHalfWidth},
			{x0 - lineHalfWidth, y0 + lineHalfWidth},
		}
	} else {
		// Unit tangent (tx, ty) and normal (nx, ny), scaled to the half width.
		tx, ty := dx/length*lineHalfWidth, dy/length*lineHalfWidth
		nx, ny := -ty, tx
		quad = [4][2]float64{
			{x0 - tx + nx, y0 - ty + ny},
			{x1 + tx + nx, y1 + ty + ny},
			{x1 + tx - nx, y1 + ty - ny},
			{x0 - tx - nx, y0 - ty - ny},
		}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range quad {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	ox, oy := int(math.Floor(minX)), int(math.Floor(minY))
	w := int(math.Ceil(maxX)) - ox
	h := int(math.Ceil(maxY)) - oy
	if w <= 0 || h <= 0 {
		return
	}

	z := vector.NewRasterizer(w, h)
	z.MoveTo(float32(quad[0][0]-float64(ox)), float32(quad[0][1]-float64(oy)))
	for _, p := range quad[1:] {
		z.LineTo(float32(p[0]-float64(ox)), float32(p[1]-float64(oy)))
	}
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, a := range row {
			if a == 0 {
				continue
			}
			b.Blit(oy+y, ox+x, float64(a)/255)
		}
	}
}
