package turtle

import (
	"fmt"
	"image/color"
	"math"
)

// tau is one full turn in radians.
const tau = 2 * math.Pi

// Turtle is a cursor that draws straight lines into a Grid as it moves.
//
// A Turtle starts at (0, 0) with direction 0, pointing down. Every method
// that returns an error leaves the position, direction, colour and stack
// unchanged when it fails.
//
// A Turtle is not safe for concurrent use.
type Turtle[T Sample] struct {
	grid    *Grid[T]
	depth   Depth
	convert func(float64) T

	degrees bool
	mode    LineMode

	state CursorState
	stack *stateStack
	color Color
}

// New creates a Turtle drawing on grid.
//
// New fails with ErrConstruction if grid is nil, not 2-D or 3-D, empty, has a
// channel count other than 1, 3 or 4, or if the stack limit is not positive.
// An initial colour given with WithColor is validated like SetColor.
func New[T Sample](grid *Grid[T], opts ...Option) (*Turtle[T], error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrConstruction)
	}
	if err := grid.validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.stackLimit <= 0 {
		return nil, fmt.Errorf("%w: stack limit %d must be positive", ErrConstruction, o.stackLimit)
	}

	depth := DepthOf[T]()
	t := &Turtle[T]{
		grid:    grid,
		depth:   depth,
		convert: converterFor[T](),
		degrees: o.degrees,
		mode:    o.lineMode,
		stack:   newStateStack(o.stackLimit),
		color:   uniformColor(grid.Channels(), depth.Max),
	}
	if o.color != nil {
		if err := t.SetColor(o.color...); err != nil {
			return nil, err
		}
	}

	Logger().Debug("turtle: created",
		"shape", grid.shape,
		"depth", depth.Kind.String(),
		"max", depth.Max,
		"degrees", o.degrees,
		"lineMode", o.lineMode.String(),
		"stackLimit", o.stackLimit)
	return t, nil
}

// Grid returns the grid the turtle draws on.
func (t *Turtle[T]) Grid() *Grid[T] {
	return t.grid
}

// Depth returns the colour depth of the grid's sample type.
func (t *Turtle[T]) Depth() Depth {
	return t.depth
}

// LineMode returns the line rasterization algorithm.
func (t *Turtle[T]) LineMode() LineMode {
	return t.mode
}

// AntiAlias reports whether lines are anti-aliased.
func (t *Turtle[T]) AntiAlias() bool {
	return t.mode == LineAA || t.mode == LineArea
}

// Degrees reports whether angles are in degrees.
func (t *Turtle[T]) Degrees() bool {
	return t.degrees
}

// Forward moves the turtle distance units along its heading and draws a line
// from the old position to the new one.
//
// Both endpoints are clipped to the grid before drawing, so a segment that
// leaves the grid is drawn up to the nearest edge pixel. The new position
// itself is kept unclipped. A non-finite distance, or one that would move the
// turtle to a non-finite position, is ignored.
func (t *Turtle[T]) Forward(distance float64) *Turtle[T] {
	next := t.state
	next.Row += distance * math.Cos(t.state.Direction)
	next.Col += distance * math.Sin(t.state.Direction)
	if !isFinite(next.Row) || !isFinite(next.Col) {
		Logger().Warn("turtle: ignoring non-finite move", "distance", distance)
		return t
	}

	t.draw(t.state, next)
	t.state = next
	return t
}

// Rotate turns the turtle by angle, in degrees or radians depending on the
// WithDegrees option. Positive angles turn from the row axis towards the
// column axis.
//
// Rotate fails with ErrRange unless |angle| is strictly less than one full
// turn. The resulting direction is normalized to [0, 2π).
func (t *Turtle[T]) Rotate(angle float64) error {
	rad, err := t.toRadians(angle)
	if err != nil {
		return err
	}
	t.state.Direction = normalizeAngle(t.state.Direction + rad)
	return nil
}

// SetDirection sets the heading, in degrees or radians depending on the
// WithDegrees option. It accepts the same range as Rotate.
func (t *Turtle[T]) SetDirection(angle float64) error {
	rad, err := t.toRadians(angle)
	if err != nil {
		return err
	}
	t.state.Direction = normalizeAngle(rad)
	return nil
}

// Direction returns the heading in [0, 2π), or [0, 360) in degree mode.
func (t *Turtle[T]) Direction() float64 {
	if !t.degrees {
		return t.state.Direction
	}
	d := t.state.Direction * 180 / math.Pi
	if d >= 360 {
		d -= 360
	}
	return d
}

func (t *Turtle[T]) toRadians(angle float64) (float64, error) {
	full, unit := tau, "rad"
	if t.degrees {
		full, unit = 360, "deg"
	}
	if math.IsNaN(angle) || math.Abs(angle) >= full {
		return 0, fmt.Errorf("%w: angle %v%s is not within one full turn", ErrRange, angle, unit)
	}
	if t.degrees {
		return angle * math.Pi / 180, nil
	}
	return angle, nil
}

// normalizeAngle folds a into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, tau)
	if a < 0 {
		a += tau
	}
	if a >= tau {
		a = 0
	}
	return a
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Push saves the current position and direction on the stack.
// It fails with ErrStackOverflow when the stack is full.
func (t *Turtle[T]) Push() error {
	if err := t.stack.push(t.state); err != nil {
		return err
	}
	Logger().Debug("turtle: push", "depth", t.stack.len())
	return nil
}

// Pop restores the most recently pushed position and direction.
// It fails with ErrStackUnderflow when nothing was pushed.
func (t *Turtle[T]) Pop() error {
	st, err := t.stack.pop()
	if err != nil {
		return err
	}
	t.state = st
	Logger().Debug("turtle: pop", "depth", t.stack.len())
	return nil
}

// StackDepth returns the number of pushed states.
func (t *Turtle[T]) StackDepth() int {
	return t.stack.len()
}

// StackLimit returns the stack capacity.
func (t *Turtle[T]) StackLimit() int {
	return t.stack.limit
}

// Reset moves the turtle back to (0, 0) with direction 0 and empties the
// stack. The colour is kept.
func (t *Turtle[T]) Reset() *Turtle[T] {
	t.state = CursorState{}
	t.stack.clear()
	return t
}

// SetPosition moves the turtle without drawing. The direction is kept.
// It fails with ErrRange unless 0 <= row < rows and 0 <= col < cols.
func (t *Turtle[T]) SetPosition(row, col float64) error {
	rows, cols := t.grid.Rows(), t.grid.Cols()
	if !(row >= 0 && row < float64(rows)) {
		return fmt.Errorf("%w: row %v outside [0, %d)", ErrRange, row, rows)
	}
	if !(col >= 0 && col < float64(cols)) {
		return fmt.Errorf("%w: column %v outside [0, %d)", ErrRange, col, cols)
	}
	t.state.Row, t.state.Col = row, col
	return nil
}

// Position returns the current row and column. The position may lie outside
// the grid.
func (t *Turtle[T]) Position() (row, col float64) {
	return t.state.Row, t.state.Col
}

// State returns the current cursor state. Direction is always in radians.
func (t *Turtle[T]) State() CursorState {
	return t.state
}

// SetColor sets the drawing colour, one component per grid channel.
//
// It fails with ErrShape if the number of components differs from the
// channel count and with ErrRange if a component lies outside [0, Depth].
func (t *Turtle[T]) SetColor(components ...float64) error {
	c, err := newColor(components, t.grid.Channels(), t.depth)
	if err != nil {
		return err
	}
	t.color = c
	return nil
}

// SetColorValue sets the drawing colour from a standard colour, scaled to
// the grid's depth. A one-channel grid takes the luminance; a three-channel
// grid ignores alpha.
func (t *Turtle[T]) SetColorValue(c color.Color) error {
	return t.SetColor(colorComponents(c, t.grid.Channels(), t.depth)...)
}

// SetNamedColor sets the drawing colour from an SVG 1.1 colour keyword such
// as "forestgreen". Unknown names fail with ErrUnknownColor.
func (t *Turtle[T]) SetNamedColor(name string) error {
	c, err := lookupColor(name)
	if err != nil {
		return err
	}
	return t.SetColorValue(c)
}

// Color returns the drawing colour.
func (t *Turtle[T]) Color() Color {
	return t.color
}

// Save encodes the grid to path. See Grid.Save.
func (t *Turtle[T]) Save(path string, opts ...SaveOption) error {
	return t.grid.Save(path, opts...)
}
