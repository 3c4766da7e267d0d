// Package core provides the structural-integrity simulation for the Chasm game.
// This package is UI-agnostic and deterministic.
//
// Coordinates are sparse and unbounded: (0, 0) is the middle of the top of the
// chasm, X = 0 is the centerline, Y increases downward and Y = 0 is the level
// where the ground begins.
package core

import "fmt"

// Coord represents a 2D grid coordinate.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns a new Coord one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Above returns the coordinate directly above (one row toward the surface).
func (c Coord) Above() Coord {
	return c.Add(0, -1)
}

// Below returns the coordinate directly below (one row deeper).
func (c Coord) Below() Coord {
	return c.Add(0, 1)
}

// Abs returns the absolute value of an int.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Dir represents one of the four cardinal sides of a block.
// The order matters: connector arrays are indexed by Dir and rotated in
// this order when the player rotates a held block.
type Dir uint8

const (
	DirNorth Dir = iota
	DirEast
	DirSouth
	DirWest

	// DirCount is the number of cardinal directions.
	DirCount = 4
)

// Dirs lists all four directions in connector-array order.
var Dirs = [DirCount]Dir{DirNorth, DirEast, DirSouth, DirWest}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNorth:
		return "North"
	case DirEast:
		return "East"
	case DirSouth:
		return "South"
	case DirWest:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// North decreases Y, South increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirEast:
		return 1, 0
	case DirSouth:
		return 0, 1
	case DirWest:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the facing side: the side of a neighbor that touches
// a connector pointing in direction d.
func (d Dir) Opposite() Dir {
	switch d {
	case DirNorth:
		return DirSouth
	case DirEast:
		return DirWest
	case DirSouth:
		return DirNorth
	case DirWest:
		return DirEast
	default:
		return d
	}
}
