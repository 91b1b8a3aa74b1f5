package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mikenye/wrapsnake/internal/grid"
	"github.com/mikenye/wrapsnake/internal/input"
)

// arrow keys, in the order they are checked each tick
var turnKeys = []struct {
	key ebiten.Key
	dir grid.Direction
}{
	{ebiten.KeyArrowUp, grid.Up},
	{ebiten.KeyArrowDown, grid.Down},
	{ebiten.KeyArrowLeft, grid.Left},
	{ebiten.KeyArrowRight, grid.Right},
}

// keys that quit the game
var quitKeys = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}

// turnFor returns the direction bound to k, or grid.None
func turnFor(k ebiten.Key) grid.Direction {
	for _, tk := range turnKeys {
		if tk.key == k {
			return tk.dir
		}
	}
	return grid.None
}

// isQuitKey reports whether k quits the game
func isQuitKey(k ebiten.Key) bool {
	for _, q := range quitKeys {
		if q == k {
			return true
		}
	}
	return false
}

// eventsFor converts the keys pressed this tick into input events.
// Quit comes first so it wins over any turn pressed in the same tick.
func eventsFor(pressed []ebiten.Key, closing bool) []input.Event {
	var events []input.Event
	if closing {
		events = append(events, input.QuitEvent())
	}
	for _, k := range pressed {
		if isQuitKey(k) {
			events = append(events, input.QuitEvent())
		}
	}
	for _, k := range pressed {
		if d := turnFor(k); d != grid.None {
			events = append(events, input.TurnEvent(d))
		}
	}
	return events
}

// poll reads the keyboard and window state once
func poll() []input.Event {
	var pressed []ebiten.Key
	for _, tk := range turnKeys {
		if inpututil.IsKeyJustPressed(tk.key) {
			pressed = append(pressed, tk.key)
		}
	}
	for _, k := range quitKeys {
		if inpututil.IsKeyJustPressed(k) {
			pressed = append(pressed, k)
		}
	}
	return eventsFor(pressed, ebiten.IsWindowBeingClosed())
}
