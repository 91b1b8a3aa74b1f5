package entity

import (
	"image/color"

	"github.com/mikenye/wrapsnake/internal/grid"
)

// Apple is the food. There is exactly one; eating it moves it somewhere else.
type Apple struct {
	Position grid.Position
	Color    color.RGBA

	rng Source
}

// NewApple creates an apple at a random cell
func NewApple(rng Source) *Apple {
	a := Apple{
		Color: AppleColor,
		rng:   rng,
	}
	a.RandomizePosition()
	return &a
}

// RandomizePosition moves the apple to a uniformly random cell.
// The snake's body is not avoided.
func (a *Apple) RandomizePosition() {
	cx := a.rng.Intn(grid.Width)
	cy := a.rng.Intn(grid.Height)
	a.Position = grid.FromCell(cx, cy)
}

// Draw renders the apple as a filled, bordered cell
func (a *Apple) Draw(s Surface) {
	drawCell(s, a.Position, a.Color)
}
