package entity

import (
	"image/color"

	"github.com/mikenye/wrapsnake/internal/grid"
)

// one recorded draw call
type op struct {
	kind string
	pos  grid.Position
	c    color.Color
}

// recordSurface remembers every call made on it, in order
type recordSurface struct {
	ops []op
}

func (r *recordSurface) Fill(c color.Color) {
	r.ops = append(r.ops, op{kind: "fill", c: c})
}

func (r *recordSurface) FillCell(p grid.Position, c color.Color) {
	r.ops = append(r.ops, op{kind: "fillcell", pos: p, c: c})
}

func (r *recordSurface) StrokeCell(p grid.Position, c color.Color) {
	r.ops = append(r.ops, op{kind: "stroke", pos: p, c: c})
}

// fixed sequence of values, for placing apples exactly
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}
