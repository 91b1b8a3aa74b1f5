package entity

import (
	"image/color"

	"github.com/mikenye/wrapsnake/internal/grid"
)

// Snake is an ordered run of cells, head first, moving one cell per tick
type Snake struct {
	Color color.RGBA

	// occupied cells
	body body

	// desired number of cells; the body is trimmed to this after each move
	length int

	// direction of travel, and the buffered change for the next tick
	direction grid.Direction
	next      grid.Direction

	// cell vacated by the tail on the last move
	last    grid.Position
	hasLast bool
}

// NewSnake creates a snake of length 1 at the centre of the screen, heading right
func NewSnake() *Snake {
	s := Snake{
		Color: SnakeColor,
		body:  newBody(grid.Centre),
	}
	s.Reset()
	return &s
}

// Reset puts the snake back in its starting state
func (s *Snake) Reset() {
	s.length = 1
	s.body.reset(grid.Centre)
	s.direction = grid.Right
	s.next = grid.Right
	s.last = grid.Position{}
	s.hasLast = false
}

// UpdateDirection commits the buffered direction change, if there is one
func (s *Snake) UpdateDirection() {
	if s.next != grid.None {
		s.direction = s.next
		s.next = grid.None
	}
}

// Move advances the head one cell. If the new head lands on the body the
// snake resets instead of moving.
func (s *Snake) Move() {
	newHead := s.Head().Step(s.direction)
	if s.body.contains(newHead) {
		s.Reset()
		return
	}
	s.body.pushFront(newHead)
	s.last, s.hasLast = s.body.trim(s.length)
}

// Grow lengthens the snake by one cell, from the next move on
func (s *Snake) Grow() {
	s.length++
}

// Head returns the position of the head
func (s *Snake) Head() grid.Position {
	return s.body.at(0)
}

// Direction returns the current direction of travel
func (s *Snake) Direction() grid.Direction {
	return s.direction
}

// NextDirection returns the buffered direction, or grid.None
func (s *Snake) NextDirection() grid.Direction {
	return s.next
}

// SetNextDirection buffers a direction change for the next tick.
// No checks are made here; see the input package.
func (s *Snake) SetNextDirection(d grid.Direction) {
	s.next = d
}

// Length returns the desired length
func (s *Snake) Length() int {
	return s.length
}

// Positions returns a copy of the occupied cells, head first
func (s *Snake) Positions() []grid.Position {
	return s.body.slice()
}

// Last returns the cell vacated by the tail on the last move
func (s *Snake) Last() (grid.Position, bool) {
	return s.last, s.hasLast
}

// Draw renders the body, then the head, then erases the vacated tail cell
func (s *Snake) Draw(surf Surface) {
	for i := 1; i < s.body.len(); i++ {
		drawCell(surf, s.body.at(i), s.Color)
	}

	// head drawn separately so it can be styled on its own later
	drawCell(surf, s.Head(), s.Color)

	if s.hasLast {
		surf.FillCell(s.last, BackgroundColor)
	}
}
