package turtle

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a fixed-length colour vector with one component per grid channel.
// Components are expressed in the grid's depth units.
type Color struct {
	v [MaxChannels]float64
	n int
}

// uniformColor returns a colour with n components all set to v.
func uniformColor(n int, v float64) Color {
	c := Color{n: n}
	for i := 0; i < n; i++ {
		c.v[i] = v
	}
	return c
}

// Len returns the number of components.
func (c Color) Len() int {
	return c.n
}

// At returns component i, or 0 if i is out of range.
func (c Color) At(i int) float64 {
	if i < 0 || i >= c.n {
		return 0
	}
	return c.v[i]
}

// Scalar returns the single component of a one-channel colour.
// ok is false for multi-channel colours.
func (c Color) Scalar() (v float64, ok bool) {
	if c.n != 1 {
		return 0, false
	}
	return c.v[0], true
}

// Tuple returns a copy of the components in channel order.
func (c Color) Tuple() []float64 {
	return append([]float64(nil), c.v[:c.n]...)
}

// Value returns the colour as a float64 for one channel and as a []float64
// for three or four channels.
func (c Color) Value() any {
	if v, ok := c.Scalar(); ok {
		return v
	}
	return c.Tuple()
}

// String returns the components in parentheses.
func (c Color) String() string {
	if v, ok := c.Scalar(); ok {
		return fmt.Sprint(v)
	}
	parts := make([]string, c.n)
	for i := range parts {
		parts[i] = fmt.Sprint(c.v[i])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// newColor validates components against a channel count and depth.
func newColor(components []float64, channels int, depth Depth) (Color, error) {
	if len(components) != channels {
		return Color{}, fmt.Errorf("%w: color has %d components, grid has %d channels", ErrShape, len(components), channels)
	}
	c := Color{n: channels}
	for i, v := range components {
		if math.IsNaN(v) || v < 0 || v > depth.Max {
			return Color{}, fmt.Errorf("%w: color component %d = %v outside [0, %v]", ErrRange, i, v, depth.Max)
		}
		c.v[i] = v
	}
	return c, nil
}

// colorComponents converts a standard colour to components in depth units.
// One channel uses the luminance, three channels the non-premultiplied RGB
// values and four channels RGBA. Non-float depths are rounded to whole units.
func colorComponents(c color.Color, channels int, depth Depth) []float64 {
	scale := func(x uint16) float64 {
		v := float64(x) / 0xffff * depth.Max
		if depth.Kind != DepthFloat {
			v = math.Min(math.Round(v), depth.Max)
		}
		return v
	}

	if channels == Gray {
		g := color.Gray16Model.Convert(c).(color.Gray16)
		return []float64{scale(g.Y)}
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	out := []float64{scale(n.R), scale(n.G), scale(n.B), scale(n.A)}
	return out[:channels]
}

// lookupColor resolves an SVG 1.1 colour keyword, ignoring case.
func lookupColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return c, nil
}
