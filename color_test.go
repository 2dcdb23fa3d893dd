package turtle

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestColorAccessors(t *testing.T) {
	c := Color{v: [MaxChannels]float64{1, 2, 3}, n: 3}

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if c.At(2) != 3 || c.At(3) != 0 || c.At(-1) != 0 {
		t.Errorf("At() = %v, %v, %v; want 3, 0, 0", c.At(2), c.At(3), c.At(-1))
	}
	if _, ok := c.Scalar(); ok {
		t.Error("Scalar() ok for a 3-component color")
	}
	if got, ok := c.Value().([]float64); !ok || !cmp.Equal(got, []float64{1, 2, 3}) {
		t.Errorf("Value() = %#v, want []float64{1, 2, 3}", c.Value())
	}
	if got := c.String(); got != "(1, 2, 3)" {
		t.Errorf("String() = %q, want %q", got, "(1, 2, 3)")
	}

	gray := uniformColor(1, 0.5)
	if got := gray.String(); got != "0.5" {
		t.Errorf("String() = %q, want %q", got, "0.5")
	}
}

func TestNewColor(t *testing.T) {
	depth := DepthOf[uint16]()
	if _, err := newColor([]float64{65535, 0, 1}, 3, depth); err != nil {
		t.Errorf("newColor(max) = %v", err)
	}
	if _, err := newColor([]float64{65536, 0, 1}, 3, depth); !errors.Is(err, ErrRange) {
		t.Errorf("newColor(max+1) error = %v, want ErrRange", err)
	}
	if _, err := newColor([]float64{1, 2, 3}, 4, depth); !errors.Is(err, ErrShape) {
		t.Errorf("newColor(3 of 4) error = %v, want ErrShape", err)
	}
}

func TestColorComponents(t *testing.T) {
	tests := []struct {
		name     string
		c        color.Color
		channels int
		depth    Depth
		want     []float64
	}{
		{"gray uint8", color.Gray{Y: 200}, 1, DepthOf[uint8](), []float64{200}},
		{"white to gray", color.White, 1, DepthOf[uint8](), []float64{255}},
		{"RGB drops alpha", color.NRGBA{R: 10, G: 20, B: 30, A: 128}, 3, DepthOf[uint8](), []float64{10, 20, 30}},
		{"RGBA keeps alpha", color.NRGBA{R: 10, G: 20, B: 30, A: 128}, 4, DepthOf[uint8](), []float64{10, 20, 30, 128}},
		{"bool rounds", color.Gray{Y: 200}, 1, DepthOf[bool](), []float64{1}},
		{"uint16", color.RGBA{R: 255, A: 255}, 3, DepthOf[uint16](), []float64{65535, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := colorComponents(tt.c, tt.channels, tt.depth)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("colorComponents mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLookupColor(t *testing.T) {
	c, err := lookupColor("  DarkOrange ")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff}) {
		t.Errorf("lookupColor(DarkOrange) = %v", c)
	}
	if _, err := lookupColor("infrared"); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("lookupColor(infrared) error = %v, want ErrUnknownColor", err)
	}
}
