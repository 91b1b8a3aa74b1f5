// Package input turns frontend key presses into direction changes for the
// snake. Frontends translate their own key codes into Events; everything
// after that is shared.
package input

import "github.com/mikenye/wrapsnake/internal/grid"

// Kind of input event
type Kind uint8

const (
	// Turn asks the snake to change direction
	Turn Kind = iota + 1

	// Quit ends the game loop
	Quit
)

// Event is one input event, in the order it was read
type Event struct {
	Kind Kind
	Dir  grid.Direction
}

// TurnEvent returns a Turn event for d
func TurnEvent(d grid.Direction) Event {
	return Event{Kind: Turn, Dir: d}
}

// QuitEvent returns a Quit event
func QuitEvent() Event {
	return Event{Kind: Quit}
}

// Steerer is the part of the snake the input handler needs
type Steerer interface {
	Direction() grid.Direction
	SetNextDirection(d grid.Direction)
}

// Handle applies events to s in order and reports whether a quit was
// requested. Processing stops at the first Quit.
//
// A turn is ignored when it points opposite to the snake's current
// direction (not the buffered one). Otherwise it overwrites whatever was
// buffered, so the last accepted turn in a tick wins.
func Handle(s Steerer, events []Event) (quit bool) {
	for _, ev := range events {
		switch ev.Kind {
		case Quit:
			return true
		case Turn:
			if ev.Dir == grid.None || ev.Dir == s.Direction().Opposite() {
				continue
			}
			s.SetNextDirection(ev.Dir)
		}
	}
	return false
}
