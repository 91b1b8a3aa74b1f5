// Package grid holds the board geometry: screen and cell sizes, positions in
// pixel units and the four movement directions.
package grid

import "fmt"

// Board geometry in pixels
const (
	ScreenWidth  = 640
	ScreenHeight = 480

	// size of one cell, both axes
	CellSize = 20

	// board size in cells
	Width  = ScreenWidth / CellSize
	Height = ScreenHeight / CellSize
)

// Direction the snake travels in
type Direction uint8

// Constants for direction. None is the zero value and means "no direction".
const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Vector returns the unit step for d, in cells
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Position is the top-left corner of a cell, in pixels
type Position struct {
	X, Y int
}

// Centre of the screen, where a new snake starts
var Centre = Position{X: ScreenWidth / 2, Y: ScreenHeight / 2}

// FromCell returns the position of cell (cx, cy)
func FromCell(cx, cy int) Position {
	return Position{X: cx * CellSize, Y: cy * CellSize}
}

// Cell returns the grid coordinates of p
func (p Position) Cell() (cx, cy int) {
	return p.X / CellSize, p.Y / CellSize
}

// Step moves p one cell in direction d, wrapping around the screen edges
func (p Position) Step(d Direction) Position {
	dx, dy := d.Vector()
	return Position{
		X: wrap(p.X+dx*CellSize, ScreenWidth),
		Y: wrap(p.Y+dy*CellSize, ScreenHeight),
	}
}

// InBounds reports whether p lies on the board and on a cell boundary
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < ScreenWidth &&
		p.Y >= 0 && p.Y < ScreenHeight &&
		p.X%CellSize == 0 && p.Y%CellSize == 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// % keeps the sign of the dividend in Go
func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
