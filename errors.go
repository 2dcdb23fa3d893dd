package turtle

import "errors"

// Sentinel errors for the turtle package. Returned errors wrap one of these
// with call-specific detail; test for them with errors.Is.
var (
	// ErrConstruction is returned when a Turtle cannot be built for a grid
	// (unsupported shape, channel count or stack limit).
	ErrConstruction = errors.New("turtle: invalid construction")

	// ErrRange is returned when an angle, position or colour component is
	// outside its allowed range.
	ErrRange = errors.New("turtle: value out of range")

	// ErrShape is returned when a colour or a data slice does not match the
	// grid's shape.
	ErrShape = errors.New("turtle: shape mismatch")

	// ErrStackUnderflow is returned by Pop when no state was pushed.
	ErrStackUnderflow = errors.New("turtle: pop from empty stack")

	// ErrStackOverflow is returned by Push when the stack is at its limit.
	ErrStackOverflow = errors.New("turtle: stack limit reached")

	// ErrFormat is returned when a grid cannot be encoded to the requested
	// file format.
	ErrFormat = errors.New("turtle: unsupported image format")

	// ErrLowContrast is returned by Save when contrast checking is set to
	// fail and the image is uniformly flat.
	ErrLowContrast = errors.New("turtle: image has low contrast")

	// ErrUnknownColor is returned by SetNamedColor for names outside the
	// SVG 1.1 colour keyword set.
	ErrUnknownColor = errors.New("turtle: unknown color name")
)
