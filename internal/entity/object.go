// Package entity holds the things that live on the board: the snake and the
// apple, and the render target they draw themselves onto.
package entity

import (
	"image/color"

	"github.com/mikenye/wrapsnake/internal/grid"
)

// Colours
var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	BorderColor     = color.RGBA{93, 216, 228, 255}
	AppleColor      = color.RGBA{255, 0, 0, 255}
	SnakeColor      = color.RGBA{0, 255, 0, 255}
)

// Surface is a render target addressed in board pixels. Frontends provide
// one per frame.
type Surface interface {
	// Fill paints the whole board
	Fill(c color.Color)

	// FillCell paints the cell whose top-left corner is p
	FillCell(p grid.Position, c color.Color)

	// StrokeCell outlines the cell whose top-left corner is p
	StrokeCell(p grid.Position, c color.Color)
}

// Drawable is anything that can render itself onto a Surface
type Drawable interface {
	Draw(s Surface)
}

var (
	_ Drawable = (*Apple)(nil)
	_ Drawable = (*Snake)(nil)
)

// Source is the random number source used to place the apple.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Source interface {
	Intn(n int) int
}

// draws a filled, bordered cell
func drawCell(s Surface, p grid.Position, c color.Color) {
	s.FillCell(p, c)
	s.StrokeCell(p, BorderColor)
}
