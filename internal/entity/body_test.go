package entity

import (
	"testing"

	"github.com/mikenye/wrapsnake/internal/grid"
)

func TestBodyGrowsPastInitialCapacity(t *testing.T) {
	b := newBody(grid.FromCell(0, 0))
	for i := 1; i < 50; i++ {
		b.pushFront(grid.FromCell(i, 0))
	}
	if b.len() != 50 {
		t.Fatalf("Expected 50 cells, got %d", b.len())
	}
	for i := 0; i < 50; i++ {
		if want := grid.FromCell(49-i, 0); b.at(i) != want {
			t.Errorf("Cell %d: expected %v, got %v", i, want, b.at(i))
		}
	}
}

func TestBodyTrim(t *testing.T) {
	b := newBody(grid.FromCell(0, 0))
	b.pushFront(grid.FromCell(1, 0))
	b.pushFront(grid.FromCell(2, 0))

	dropped, ok := b.trim(2)
	if !ok || dropped != grid.FromCell(0, 0) {
		t.Errorf("Expected (0,0) dropped, got %v (%v)", dropped, ok)
	}
	if _, ok := b.trim(2); ok {
		t.Errorf("Expected nothing dropped at max length")
	}
	if b.contains(grid.FromCell(0, 0)) {
		t.Errorf("Dropped cell still present")
	}
}

func TestBodyWrapsInPlace(t *testing.T) {
	// push/trim in a steady state must not keep growing the backing slice
	b := newBody(grid.FromCell(0, 0))
	for i := 1; i < 100; i++ {
		b.pushFront(grid.FromCell(i%grid.Width, 0))
		b.trim(3)
	}
	if cap(b.cells) != 4 {
		t.Errorf("Expected backing slice to stay at 4, got %d", cap(b.cells))
	}
	if b.at(0) != grid.FromCell(99%grid.Width, 0) {
		t.Errorf("Unexpected head %v", b.at(0))
	}
}
