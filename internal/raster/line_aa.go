package raster

import "math"

// LineAA draws an anti-aliased line from (r0, c0) to (r1, c1).
//
// It follows Zingl's anti-aliased Bresenham: the error term measures the
// distance of each main pixel from the ideal line, and a neighbouring pixel
// on the minor axis receives the complementary coverage whenever the line
// passes close enough to it. Side samples can land one pixel outside the
// bounding box of the endpoints.
func LineAA(r0, c0, r1, c1 int, b Blitter) {
	dc := abs(c0 - c1)
	dr := abs(r0 - r1)
	sc, sr := sign(c0, c1), sign(r0, r1)

	ed := 1.0
	if dc+dr != 0 {
		ed = math.Hypot(float64(dc), float64(dr))
	}

	fdc, fdr := float64(dc), float64(dr)
	err := fdc - fdr
	r, c := r0, c0
	for {
		b.Blit(r, c, coverage(math.Abs(err-fdc+fdr)/ed))

		e, cPrev := err, c
		if 2*e >= -fdc {
			if c == c1 {
				return
			}
			if e+fdr < ed {
				b.Blit(r+sr, c, coverage(math.Abs(e+fdr)/ed))
			}
			err -= fdr
			c += sc
		}
		if 2*e <= fdr {
			if r == r1 {
				return
			}
			if fdc-e < ed {
				b.Blit(r, cPrev+sc, coverage(math.Abs(fdc-e)/ed))
			}
			err += fdc
			r += sr
		}
	}
}

// coverage converts a normalized distance from the ideal line into coverage.
func coverage(dist float64) float64 {
	v := 1 - dist
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
