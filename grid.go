package turtle

import (
	"fmt"
	"math"
	"sync"
)

// Channel counts accepted by a Turtle.
const (
	Gray = 1
	RGB  = 3
	RGBA = 4
)

// MaxChannels is the largest supported channel count.
const MaxChannels = RGBA

// Grid is a row-major buffer of samples with shape [rows, cols] or
// [rows, cols, channels].
//
// Grids come from NewGrid, WrapGrid or FromDense. A zero Grid has no
// samples: its accessors report an empty shape and New rejects it.
//
// A Grid is owned by the caller. Turtles borrow it for their lifetime and
// never reallocate or resize it. The grid's lock is held while a turtle
// draws a segment and while the grid is converted to an image.
type Grid[T Sample] struct {
	mu    sync.Mutex
	data  []T
	shape []int
}

// NewGrid allocates a zeroed grid with the given shape.
func NewGrid[T Sample](shape ...int) (*Grid[T], error) {
	n, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}
	return &Grid[T]{data: make([]T, n), shape: append([]int(nil), shape...)}, nil
}

// WrapGrid returns a grid over data without copying it. len(data) must equal
// the product of shape.
func WrapGrid[T Sample](data []T, shape ...int) (*Grid[T], error) {
	n, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: %d samples for shape %v (want %d)", ErrShape, len(data), shape, n)
	}
	return &Grid[T]{data: data, shape: append([]int(nil), shape...)}, nil
}

func shapeSize(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("%w: empty shape", ErrShape)
	}
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative dimension in %v", ErrShape, shape)
		}
		if d != 0 && n > math.MaxInt/d {
			return 0, fmt.Errorf("%w: shape %v is too large", ErrShape, shape)
		}
		n *= d
	}
	return n, nil
}

// Shape returns a copy of the grid's shape.
func (g *Grid[T]) Shape() []int {
	return append([]int(nil), g.shape...)
}

// Rows returns the extent of the first axis, or 0 for a zero Grid.
func (g *Grid[T]) Rows() int {
	if len(g.shape) == 0 {
		return 0
	}
	return g.shape[0]
}

// Cols returns the extent of the second axis, or 1 for a 1-D grid.
func (g *Grid[T]) Cols() int {
	if len(g.shape) < 2 {
		return 1
	}
	return g.shape[1]
}

// Channels returns the extent of the third axis, or 1 for a 2-D grid.
func (g *Grid[T]) Channels() int {
	if len(g.shape) < 3 {
		return 1
	}
	return g.shape[2]
}

// Data returns the underlying samples. Writes through the slice are visible
// to every turtle drawing on the grid.
func (g *Grid[T]) Data() []T {
	return g.data
}

// validate reports whether the grid can be drawn on: 2-D or 3-D, non-empty,
// with 1, 3 or 4 channels and exactly one sample per shape element.
func (g *Grid[T]) validate() error {
	switch {
	case len(g.shape) != 2 && len(g.shape) != 3:
		return fmt.Errorf("%w: grid must be 2-D or 3-D, got shape %v", ErrConstruction, g.shape)
	case g.shape[0] == 0 || g.shape[1] == 0:
		return fmt.Errorf("%w: grid has no samples, shape %v", ErrConstruction, g.shape)
	}
	if n, err := shapeSize(g.shape); err != nil || n != len(g.data) {
		return fmt.Errorf("%w: %d samples for shape %v", ErrConstruction, len(g.data), g.shape)
	}
	switch c := g.Channels(); c {
	case Gray, RGB, RGBA:
		return nil
	default:
		return fmt.Errorf("%w: %d channels, want 1, 3 or 4", ErrConstruction, c)
	}
}

func (g *Grid[T]) index(row, col, ch int) int {
	return (row*g.Cols()+col)*g.Channels() + ch
}

func (g *Grid[T]) inBounds(row, col, ch int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Cols() && ch >= 0 && ch < g.Channels()
}

// At returns the sample at (row, col, ch). Out of range coordinates return
// the zero value.
func (g *Grid[T]) At(row, col, ch int) T {
	if !g.inBounds(row, col, ch) {
		var zero T
		return zero
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.data[g.index(row, col, ch)]
}

// Set stores v at (row, col, ch). Out of range coordinates are ignored.
func (g *Grid[T]) Set(row, col, ch int, v T) {
	if !g.inBounds(row, col, ch) {
		return
	}
	g.mu.Lock()
	g.data[g.index(row, col, ch)] = v
	g.mu.Unlock()
}

// Fill sets every sample to v.
func (g *Grid[T]) Fill(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.data {
		g.data[i] = v
	}
}
