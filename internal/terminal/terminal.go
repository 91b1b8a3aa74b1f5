// Package terminal runs the game in a terminal using tcell.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mikenye/wrapsnake/internal/game"
	"github.com/mikenye/wrapsnake/internal/grid"
	"github.com/mikenye/wrapsnake/internal/input"
)

// Options for the terminal frontend
type Options struct {
	// ticks per second
	Speed int

	// print the snake length below the board
	HUD bool
}

// fills in zero or negative values
func (o Options) withDefaults() Options {
	if o.Speed <= 0 {
		o.Speed = game.DefaultSpeed
	}
	return o
}

// Terminal drives a game.Game on a tcell screen
type Terminal struct {
	screen  tcell.Screen
	surface *screenSurface
	game    *game.Game
	hud     bool
}

// New wraps g for running on screen. The screen must already be initialised.
func New(screen tcell.Screen, g *game.Game, opts Options) *Terminal {
	return &Terminal{
		screen:  screen,
		surface: newScreenSurface(screen),
		game:    g,
		hud:     opts.HUD,
	}
}

// Run takes over the terminal and blocks until the player quits
func Run(g *game.Game, opts Options) error {
	opts = opts.withDefaults()
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ticker := time.NewTicker(time.Second / time.Duration(opts.Speed))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	return New(screen, g, opts).Loop(ticker.C, forward(screen, done))
}

// forward reads screen events into a channel until the screen is finalised
// or done is closed
func forward(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// Loop steps and redraws the game once per tick until a quit event arrives
// or ticks is closed. All events queued since the previous tick are handled
// in one pass.
func (t *Terminal) Loop(ticks <-chan time.Time, events <-chan tcell.Event) error {
	t.draw()
	for range ticks {
		if t.game.Step(t.drain(events)) {
			return nil
		}
		t.draw()
	}
	return nil
}

// drain takes everything pending without blocking
func (t *Terminal) drain(events <-chan tcell.Event) []input.Event {
	var out []input.Event
	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				t.screen.Sync()
				continue
			}
			if e, ok := eventFor(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func (t *Terminal) draw() {
	t.game.Render(t.surface)
	if t.hud {
		t.drawHUD()
	}
	t.screen.Show()
}

// length line under the board
func (t *Terminal) drawHUD() {
	txt := fmt.Sprintf("Length: %d  (arrows to steer, q to quit)", t.game.Snake.Length())
	for x := 0; x < grid.Width*cellColumns; x++ {
		r := ' '
		if x < len(txt) {
			r = rune(txt[x])
		}
		t.screen.SetContent(x, grid.Height, r, nil, tcell.StyleDefault)
	}
}

// eventFor maps a tcell event to an input event
func eventFor(ev tcell.Event) (input.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return input.Event{}, false
	}
	switch key.Key() {
	case tcell.KeyUp:
		return input.TurnEvent(grid.Up), true
	case tcell.KeyDown:
		return input.TurnEvent(grid.Down), true
	case tcell.KeyLeft:
		return input.TurnEvent(grid.Left), true
	case tcell.KeyRight:
		return input.TurnEvent(grid.Right), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.QuitEvent(), true
	case tcell.KeyRune:
		if key.Rune() == 'q' || key.Rune() == 'Q' {
			return input.QuitEvent(), true
		}
	}
	return input.Event{}, false
}
