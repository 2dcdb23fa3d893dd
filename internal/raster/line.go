package raster

// Line draws an aliased line from (r0, c0) to (r1, c1), both endpoints
// included. Every sample has coverage 1.
//
// The walk steps along the major axis and accumulates the minor-axis error
// in integers, so the output is exact and symmetric for axis-aligned and
// 45 degree lines.
func Line(r0, c0, r1, c1 int, b Blitter) {
	r, c := r0, c0
	dr, dc := abs(r1-r0), abs(c1-c0)
	sr, sc := sign(r0, r1), sign(c0, c1)

	steep := dr > dc
	if steep {
		r, c = c, r
		dr, dc = dc, dr
		sr, sc = sc, sr
	}

	d := 2*dr - dc
	for i := 0; i < dc; i++ {
		if steep {
			b.Blit(c, r, 1)
		} else {
			b.Blit(r, c, 1)
		}
		for d >= 0 {
			r += sr
			d -= 2 * dc
		}
		c += sc
		d += 2 * dr
	}
	b.Blit(r1, c1, 1)
}
