// Package window runs the game in a desktop window using ebiten.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/mikenye/wrapsnake/internal/game"
	"github.com/mikenye/wrapsnake/internal/grid"
	"github.com/mikenye/wrapsnake/internal/input"
)

// Options for the window frontend
type Options struct {
	// snake moves per second, at most ebiten.DefaultTPS
	Speed int

	// integer window scale factor
	Scale int

	// draw the snake length in the corner
	HUD bool
}

// fills in zero or out-of-range values
func (o Options) withDefaults() Options {
	if o.Speed <= 0 {
		o.Speed = game.DefaultSpeed
	}
	if o.Speed > ebiten.DefaultTPS {
		o.Speed = ebiten.DefaultTPS
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	return o
}

// Window adapts a game.Game to ebiten.Game
type Window struct {
	game *game.Game
	hud  bool

	// movement speed stuff, the game steps once every ticksPerStep updates
	ticks        int
	ticksPerStep int

	// input read since the last step, in arrival order
	pending []input.Event

	// where events come from, swapped out in tests
	poll func() []input.Event
}

// New wraps g for running in a window
func New(g *game.Game, opts Options) *Window {
	opts = opts.withDefaults()
	return &Window{
		game:         g,
		hud:          opts.HUD,
		ticksPerStep: ebiten.DefaultTPS / opts.Speed,
		poll:         poll,
	}
}

// Update is called by ebiten every tick (60 times per second). Input is read
// on every call so short taps are not missed; the game itself only steps
// once every ticksPerStep calls.
func (w *Window) Update() error {
	for _, ev := range w.poll() {
		if ev.Kind == input.Quit {
			return ebiten.Termination
		}
		w.pending = append(w.pending, ev)
	}

	w.ticks++
	if w.ticks < w.ticksPerStep {
		return nil
	}
	w.ticks = 0

	events := w.pending
	w.pending = nil
	if w.game.Step(events) {
		return ebiten.Termination
	}
	return nil
}

// Draw is called by ebiten to render the screen
func (w *Window) Draw(screen *ebiten.Image) {
	w.game.Render(imageSurface{img: screen})
	if w.hud {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Length: %d", w.game.Snake.Length()), 4, 4)
	}
}

// Layout is fixed at the board size; ebiten scales it to the window
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return grid.ScreenWidth, grid.ScreenHeight
}

// Run opens the window and blocks until the game quits or the window is
// closed
func Run(g *game.Game, opts Options) error {
	opts = opts.withDefaults()
	ebiten.SetTPS(ebiten.DefaultTPS)
	ebiten.SetWindowSize(grid.ScreenWidth*opts.Scale, grid.ScreenHeight*opts.Scale)
	ebiten.SetWindowTitle("Snake")

	// closing the window becomes a quit event instead of ending RunGame directly
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(New(g, opts)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
