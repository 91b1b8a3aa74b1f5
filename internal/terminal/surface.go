package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/mikenye/wrapsnake/internal/entity"
	"github.com/mikenye/wrapsnake/internal/grid"
)

// each board cell is this many columns wide, so cells come out roughly square
const cellColumns = 2

// screenSurface draws board cells onto a tcell screen, one row per cell
type screenSurface struct {
	screen tcell.Screen

	// fill colour per cell this frame, so outlines keep the cell's background
	fills map[grid.Position]tcell.Color
}

func newScreenSurface(screen tcell.Screen) *screenSurface {
	return &screenSurface{
		screen: screen,
		fills:  make(map[grid.Position]tcell.Color),
	}
}

func (s *screenSurface) Fill(c color.Color) {
	clear(s.fills)
	style := tcell.StyleDefault.Background(tcellColor(c))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width*cellColumns; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *screenSurface) FillCell(p grid.Position, c color.Color) {
	bg := tcellColor(c)
	s.fills[p] = bg
	s.put(p, ' ', ' ', tcell.StyleDefault.Background(bg))
}

// terminals cannot draw a thin border, so the outline is a pair of brackets
func (s *screenSurface) StrokeCell(p grid.Position, c color.Color) {
	bg, ok := s.fills[p]
	if !ok {
		bg = tcellColor(entity.BackgroundColor)
	}
	s.put(p, '[', ']', tcell.StyleDefault.Foreground(tcellColor(c)).Background(bg))
}

// write both columns of cell p
func (s *screenSurface) put(p grid.Position, left, right rune, style tcell.Style) {
	cx, cy := p.Cell()
	s.screen.SetContent(cx*cellColumns, cy, left, nil, style)
	s.screen.SetContent(cx*cellColumns+1, cy, right, nil, style)
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
