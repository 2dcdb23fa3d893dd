package turtle

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/mat"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid[int16](3, 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows() != 3 || g.Cols() != 4 || g.Channels() != 3 {
		t.Errorf("dims = %dx%dx%d, want 3x4x3", g.Rows(), g.Cols(), g.Channels())
	}
	if len(g.Data()) != 36 {
		t.Errorf("len(Data()) = %d, want 36", len(g.Data()))
	}

	shape := g.Shape()
	shape[0] = 100
	if g.Rows() != 3 {
		t.Error("mutating Shape() result changed the grid")
	}
}

func TestNewGridErrors(t *testing.T) {
	tests := []struct {
		name  string
		shape []int
	}{
		{"empty shape", nil},
		{"negative dimension", []int{3, -1}},
		{"product overflows", []int{1 << 32, 1 << 32, 1}},
		{"product overflows late", []int{2, math.MaxInt / 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid[uint8](tt.shape...)
			if !errors.Is(err, ErrShape) {
				t.Errorf("NewGrid(%v) error = %v, want ErrShape", tt.shape, err)
			}
			if g != nil {
				t.Errorf("NewGrid(%v) returned a grid along with an error", tt.shape)
			}
		})
	}
}

func TestNewRejectsInconsistentGrid(t *testing.T) {
	g := &Grid[uint8]{shape: []int{4, 4, 3}}
	if _, err := New(g); !errors.Is(err, ErrConstruction) {
		t.Errorf("New(grid without data) error = %v, want ErrConstruction", err)
	}
	if _, err := g.Image(); !errors.Is(err, ErrFormat) {
		t.Errorf("Image(grid without data) error = %v, want ErrFormat", err)
	}
}

func TestZeroGrid(t *testing.T) {
	var g Grid[uint8]
	if g.Rows() != 0 || len(g.Shape()) != 0 {
		t.Errorf("zero Grid: Rows() = %d, Shape() = %v", g.Rows(), g.Shape())
	}
	if got := g.At(0, 0, 0); got != 0 {
		t.Errorf("zero Grid: At(0, 0, 0) = %d, want 0", got)
	}
	g.Set(0, 0, 0, 1)
	g.Fill(1)
	if _, err := New(&g); !errors.Is(err, ErrConstruction) {
		t.Errorf("New(zero Grid) error = %v, want ErrConstruction", err)
	}
}

func TestWrapGrid(t *testing.T) {
	data := make([]float32, 2*3)
	g, err := WrapGrid(data, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(1, 2, 0, 0.5)
	if data[5] != 0.5 {
		t.Errorf("WrapGrid copied data: data[5] = %v, want 0.5", data[5])
	}

	if _, err := WrapGrid(data, 4, 3); !errors.Is(err, ErrShape) {
		t.Errorf("WrapGrid(len mismatch) error = %v, want ErrShape", err)
	}
}

func TestGridAtSet(t *testing.T) {
	g := mustGrid[uint8](t, 2, 2, 4)
	g.Set(1, 0, 3, 42)
	if got := g.At(1, 0, 3); got != 42 {
		t.Errorf("At(1, 0, 3) = %d, want 42", got)
	}

	// Out of range accesses are ignored.
	g.Set(2, 0, 0, 1)
	g.Set(0, 0, 4, 1)
	if got := g.At(-1, 0, 0); got != 0 {
		t.Errorf("At(-1, 0, 0) = %d, want 0", got)
	}
	for i, v := range g.Data() {
		if v != 0 && i != (1*2+0)*4+3 {
			t.Errorf("Data()[%d] = %d, want 0", i, v)
		}
	}
}

func TestGridFill(t *testing.T) {
	g := mustGrid[bool](t, 3, 3)
	g.Fill(true)
	for i, v := range g.Data() {
		if !v {
			t.Fatalf("Data()[%d] = false after Fill(true)", i)
		}
	}
}

func TestFromDense(t *testing.T) {
	m := mat.NewDense(6, 6, nil)
	g, err := FromDense(m)
	if err != nil {
		t.Fatal(err)
	}
	tt, err := New(g, WithColor(0.75))
	if err != nil {
		t.Fatal(err)
	}
	if err := tt.Rotate(math.Pi / 4); err != nil {
		t.Fatal(err)
	}
	tt.Forward(6 * math.Sqrt2)

	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			want := 0.0
			if i == j {
				want = 0.75
			}
			if got := m.At(i, j); got != want {
				t.Errorf("m.At(%d, %d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestFromDenseNil(t *testing.T) {
	if _, err := FromDense(nil); !errors.Is(err, ErrShape) {
		t.Errorf("FromDense(nil) error = %v, want ErrShape", err)
	}
}

func TestFromDenseRejectsStridedView(t *testing.T) {
	m := mat.NewDense(4, 4, nil)
	view := m.Slice(0, 2, 0, 2).(*mat.Dense)
	if _, err := FromDense(view); !errors.Is(err, ErrShape) {
		t.Errorf("FromDense(view) error = %v, want ErrShape", err)
	}
}

func TestDepthOf(t *testing.T) {
	tests := []struct {
		name string
		got  Depth
		want Depth
	}{
		{"bool", DepthOf[bool](), Depth{Kind: DepthBoolean, Max: 1, Bits: 1}},
		{"uint8", DepthOf[uint8](), Depth{Kind: DepthInteger, Max: 255, Bits: 8}},
		{"int16", DepthOf[int16](), Depth{Kind: DepthInteger, Max: 32767, Bits: 16}},
		{"uint32", DepthOf[uint32](), Depth{Kind: DepthInteger, Max: 4294967295, Bits: 32}},
		{"float32", DepthOf[float32](), Depth{Kind: DepthFloat, Max: 1, Bits: 32}},
		{"float64", DepthOf[float64](), Depth{Kind: DepthFloat, Max: 1, Bits: 64}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.got); diff != "" {
			t.Errorf("DepthOf[%s]() mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestConverter(t *testing.T) {
	u8 := converterFor[uint8]()
	for _, tc := range []struct {
		in   float64
		want uint8
	}{
		{0, 0}, {127.9, 127}, {255, 255}, {300, 255}, {-4, 0}, {math.NaN(), 0},
	} {
		if got := u8(tc.in); got != tc.want {
			t.Errorf("uint8(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}

	i8 := converterFor[int8]()
	if got := i8(-200); got != math.MinInt8 {
		t.Errorf("int8(-200) = %d, want %d", got, math.MinInt8)
	}

	u64 := converterFor[uint64]()
	if got := u64(math.MaxUint64); got != math.MaxUint64 {
		t.Errorf("uint64(max) = %d, want %d", got, uint64(math.MaxUint64))
	}

	b := converterFor[bool]()
	if b(0) || !b(0.01) || b(math.NaN()) {
		t.Error("bool converter: want false for 0 and NaN, true for non-zero")
	}

	f32 := converterFor[float32]()
	if got := f32(0.25); got != 0.25 {
		t.Errorf("float32(0.25) = %v", got)
	}
}

func TestDepthKindString(t *testing.T) {
	for k, want := range map[DepthKind]string{
		DepthBoolean:  "Boolean",
		DepthInteger:  "Integer",
		DepthFloat:    "Float",
		DepthKind(-1): "Unknown",
	} {
		if got := k.String(); got != want {
			t.Errorf("DepthKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
