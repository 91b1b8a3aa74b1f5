// Package game is the frontend-independent game loop body: one Step per
// tick, one Render per frame.
package game

import (
	"github.com/mikenye/wrapsnake/internal/entity"
	"github.com/mikenye/wrapsnake/internal/input"
)

// DefaultSpeed is the tick rate, in ticks per second
const DefaultSpeed = 10

// Game owns the snake and the apple for the lifetime of the process
type Game struct {
	Snake *entity.Snake
	Apple *entity.Apple
}

// New creates a game with a fresh snake and an apple placed using rng
func New(rng entity.Source) *Game {
	return &Game{
		Snake: entity.NewSnake(),
		Apple: entity.NewApple(rng),
	}
}

// Step runs one tick with the events read since the last one and reports
// whether a quit was requested. On quit the state is left untouched.
func (g *Game) Step(events []input.Event) (quit bool) {
	if input.Handle(g.Snake, events) {
		return true
	}

	g.Snake.UpdateDirection()
	g.Snake.Move()

	// check if snake just ate the apple
	if g.Snake.Head() == g.Apple.Position {
		g.Snake.Grow()
		g.Apple.RandomizePosition()
	}
	return false
}

// Render draws one frame onto s
func (g *Game) Render(s entity.Surface) {
	s.Fill(entity.BackgroundColor)
	for _, d := range g.drawables() {
		d.Draw(s)
	}
}

// in draw order
func (g *Game) drawables() []entity.Drawable {
	return []entity.Drawable{g.Apple, g.Snake}
}
