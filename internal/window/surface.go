package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mikenye/wrapsnake/internal/grid"
)

// imageSurface draws board cells onto an ebiten image
type imageSurface struct {
	img *ebiten.Image
}

func (s imageSurface) Fill(c color.Color) {
	s.img.Fill(c)
}

func (s imageSurface) FillCell(p grid.Position, c color.Color) {
	vector.DrawFilledRect(s.img, float32(p.X), float32(p.Y), grid.CellSize, grid.CellSize, c, false)
}

// 1px outline, inset by half a pixel so the stroke stays inside the cell
func (s imageSurface) StrokeCell(p grid.Position, c color.Color) {
	vector.StrokeRect(s.img, float32(p.X)+0.5, float32(p.Y)+0.5, grid.CellSize-1, grid.CellSize-1, 1, c, false)
}
