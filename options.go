package turtle

// DefaultStackLimit is the state stack capacity used when WithStackLimit is
// not given.
const DefaultStackLimit = 1024

// Option configures a Turtle during creation.
//
// Example:
//
//	// Radians, crisp lines, white
//	t, err := turtle.New(grid)
//
//	// Degrees, anti-aliased, green
//	t, err := turtle.New(grid, turtle.WithDegrees(), turtle.WithAntiAlias(),
//	    turtle.WithColor(0, 255, 0))
type Option func(*options)

// options holds optional configuration for Turtle creation.
type options struct {
	degrees    bool
	lineMode   LineMode
	color      []float64
	stackLimit int
}

// defaultOptions returns the default turtle options.
func defaultOptions() options {
	return options{
		lineMode:   LineCrisp,
		color:      nil, // Depth on every channel
		stackLimit: DefaultStackLimit,
	}
}

// WithDegrees makes Rotate, SetDirection and Direction use degrees instead of
// radians.
func WithDegrees() Option {
	return func(o *options) {
		o.degrees = true
	}
}

// WithAntiAlias enables anti-aliased lines. It is shorthand for
// WithLineMode(LineAA).
func WithAntiAlias() Option {
	return WithLineMode(LineAA)
}

// WithLineMode selects the line rasterization algorithm.
func WithLineMode(m LineMode) Option {
	return func(o *options) {
		o.lineMode = m
	}
}

// WithColor sets the initial drawing colour. The components are validated
// like SetColor; an invalid colour makes New fail.
func WithColor(components ...float64) Option {
	return func(o *options) {
		o.color = append([]float64(nil), components...)
	}
}

// WithStackLimit sets the maximum number of states Push can hold.
// The limit must be positive.
func WithStackLimit(n int) Option {
	return func(o *options) {
		o.stackLimit = n
	}
}
