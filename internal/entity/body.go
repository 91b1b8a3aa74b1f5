package entity

import "github.com/mikenye/wrapsnake/internal/grid"

// ring buffer of snake cells, head first.
// pushFront and trim are O(1) amortised; the backing slice only grows.
type body struct {
	cells []grid.Position
	head  int
	n     int
}

func newBody(start grid.Position) body {
	b := body{cells: make([]grid.Position, 4)}
	b.reset(start)
	return b
}

// drop everything and start again with a single cell
func (b *body) reset(start grid.Position) {
	b.head = 0
	b.n = 1
	b.cells[0] = start
}

func (b *body) len() int {
	return b.n
}

// i-th cell from the head
func (b *body) at(i int) grid.Position {
	return b.cells[(b.head+i)%len(b.cells)]
}

func (b *body) contains(p grid.Position) bool {
	for i := 0; i < b.n; i++ {
		if b.at(i) == p {
			return true
		}
	}
	return false
}

func (b *body) pushFront(p grid.Position) {
	if b.n == len(b.cells) {
		b.grow()
	}
	b.head = (b.head - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.head] = p
	b.n++
}

// trim drops cells from the tail until at most limit remain.
// It returns the last cell dropped, if any.
func (b *body) trim(limit int) (dropped grid.Position, ok bool) {
	for b.n > limit {
		dropped = b.at(b.n - 1)
		b.n--
		ok = true
	}
	return dropped, ok
}

// unwrap into a slice twice the size
func (b *body) grow() {
	cells := make([]grid.Position, len(b.cells)*2)
	for i := 0; i < b.n; i++ {
		cells[i] = b.at(i)
	}
	b.cells = cells
	b.head = 0
}

// copy of the cells, head first
func (b *body) slice() []grid.Position {
	out := make([]grid.Position, b.n)
	for i := range out {
		out[i] = b.at(i)
	}
	return out
}
