package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"github.com/mikenye/wrapsnake/internal/entity"
	"github.com/mikenye/wrapsnake/internal/game"
	"github.com/mikenye/wrapsnake/internal/grid"
	"github.com/mikenye/wrapsnake/internal/input"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(grid.Width*cellColumns, grid.Height+1)
	t.Cleanup(screen.Fini)
	return screen
}

// game with the apple parked in the top-left corner
func newTestGame() *game.Game {
	g := game.New(rand.New(rand.NewSource(11)))
	g.Apple.Position = grid.Position{X: 0, Y: 0}
	return g
}

// n ticks, then closed
func ticks(n int) <-chan time.Time {
	c := make(chan time.Time, n)
	for i := 0; i < n; i++ {
		c <- time.Time{}
	}
	close(c)
	return c
}

func keyEvents(evs ...tcell.Event) <-chan tcell.Event {
	c := make(chan tcell.Event, len(evs))
	for _, ev := range evs {
		c <- ev
	}
	return c
}

// checks the left column of a board cell
func checkCell(t *testing.T, screen tcell.Screen, p grid.Position, wantRune rune, wantBg tcell.Color) {
	t.Helper()
	cx, cy := p.Cell()
	mainc, _, style, _ := screen.GetContent(cx*cellColumns, cy)
	if mainc != wantRune {
		t.Errorf("Cell %v: expected %q, got %q", p, wantRune, mainc)
	}
	_, bg, _ := style.Decompose()
	if bg != wantBg {
		t.Errorf("Cell %v: expected background %v, got %v", p, wantBg, bg)
	}
}

func TestLoopMovesSnake(t *testing.T) {
	screen := newTestScreen(t)
	g := newTestGame()

	if err := New(screen, g, Options{Speed: game.DefaultSpeed}).Loop(ticks(2), keyEvents()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if g.Snake.Head() != (grid.Position{X: 360, Y: 240}) {
		t.Fatalf("Expected head at (360,240), got %v", g.Snake.Head())
	}

	checkCell(t, screen, grid.Position{X: 360, Y: 240}, '[', tcellColor(entity.SnakeColor))
	checkCell(t, screen, grid.Position{X: 340, Y: 240}, ' ', tcellColor(entity.BackgroundColor))
	checkCell(t, screen, grid.Position{X: 0, Y: 0}, '[', tcellColor(entity.AppleColor))
}

func TestLoopTurnsOnArrowKey(t *testing.T) {
	screen := newTestScreen(t)
	g := newTestGame()

	up := tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	if err := New(screen, g, Options{}).Loop(ticks(1), keyEvents(up)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if g.Snake.Head() != (grid.Position{X: 320, Y: 220}) {
		t.Errorf("Expected head at (320,220), got %v", g.Snake.Head())
	}
}

func TestLoopQuits(t *testing.T) {
	screen := newTestScreen(t)
	g := newTestGame()

	esc := tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	if err := New(screen, g, Options{}).Loop(ticks(3), keyEvents(esc)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if g.Snake.Head() != grid.Centre {
		t.Errorf("Expected snake not to move on quit tick, got %v", g.Snake.Head())
	}
}

func TestHUD(t *testing.T) {
	screen := newTestScreen(t)
	g := newTestGame()

	if err := New(screen, g, Options{HUD: true}).Loop(ticks(0), keyEvents()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := "Length: 1"
	for i, r := range want {
		mainc, _, _, _ := screen.GetContent(i, grid.Height)
		if mainc != r {
			t.Fatalf("HUD column %d: expected %q, got %q", i, r, mainc)
		}
	}
}

func TestEventFor(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want input.Event
		ok   bool
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.TurnEvent(grid.Up), true},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), input.TurnEvent(grid.Down), true},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.TurnEvent(grid.Left), true},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), input.TurnEvent(grid.Right), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.QuitEvent(), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), input.QuitEvent(), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), input.QuitEvent(), true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), input.Event{}, false},
		{"resize", tcell.NewEventResize(80, 24), input.Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := eventFor(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Expected %v (%v), got %v (%v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	if got := (Options{}).withDefaults(); got.Speed != game.DefaultSpeed {
		t.Errorf("Expected speed %d for zero options, got %d", game.DefaultSpeed, got.Speed)
	}
	if got := (Options{Speed: -4, HUD: true}).withDefaults(); got.Speed != game.DefaultSpeed || !got.HUD {
		t.Errorf("Expected negative speed replaced and HUD kept, got %+v", got)
	}
	if got := (Options{Speed: 25}).withDefaults(); got.Speed != 25 {
		t.Errorf("Expected speed 25 kept, got %d", got.Speed)
	}
}
