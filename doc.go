// Package turtle draws straight lines into caller-owned pixel buffers using
// turtle graphics.
//
// # Overview
//
// A Turtle is a cursor with a position and a heading that walks over a
// rectangular Grid of samples. Moving forward draws a line segment between
// the old and the new position; rotations change the heading; Push and Pop
// save and restore the cursor on a bounded stack. Paired with the lsystem
// sub-package, the turtle renders self-similar figures from string-rewriting
// grammars.
//
// # Quick Start
//
//	import "github.com/gogpu/turtle"
//
//	grid, _ := turtle.NewGrid[uint8](512, 512, 3)
//	t, _ := turtle.New(grid, turtle.WithDegrees(), turtle.WithAntiAlias())
//	_ = t.SetColor(255, 128, 0)
//
//	for range 4 {
//	    t.Forward(100)
//	    _ = t.Rotate(90)
//	}
//
//	_ = grid.Save("square.png")
//
// # Coordinate System
//
// Positions are (row, column) pairs:
//   - Origin (0, 0) at the top-left sample
//   - Rows increase down, columns increase right
//   - Direction 0 points down (increasing rows), positive angles turn
//     towards increasing columns
//
// The logical position is continuous and never clamped, so the turtle may
// leave the grid and come back without drift. Only the endpoints of a drawn
// segment are clipped to the grid.
//
// # Samples and Depth
//
// A Grid may hold bool, integer or floating samples with 1 (gray), 3 (RGB)
// or 4 (RGBA) channels. The sample type fixes the Depth, the largest colour
// intensity: 1 for bool, the type's maximum for integers and 1.0 for floats.
// Colour components are validated against it when they are set.
//
// # Concurrency
//
// A Turtle is not safe for concurrent use. Several turtles may share a Grid;
// each draw call holds the grid's lock for the duration of one segment.
package turtle

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
