// Package ui is the interactive terminal front-end: it draws the board, turns mouse
// clicks into cell toggles and maps keys and on-screen buttons to play, stop and reset.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/game"
)

const (
	cellWidth = 2

	helpText = "click: toggle  space: play/stop  n: step  r: reset  q: quit"
)

var (
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorWhiteSmoke)
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhiteSmoke)
	textStyle   = tcell.StyleDefault
	buttonStyle = tcell.StyleDefault.Reverse(true)
)

type button struct {
	label  string
	x0, x1 int
	press  func(*game.Game)
}

// Screen renders a game onto a tcell screen and applies user input to it
type Screen struct {
	screen   tcell.Screen
	game     *game.Game
	interval time.Duration
	buttons  []button

	lastButtons tcell.ButtonMask
}

// NewScreen wraps an initialized tcell screen. Run finalizes it on return.
func NewScreen(screen tcell.Screen, g *game.Game, interval time.Duration) *Screen {
	screen.EnableMouse()
	s := &Screen{
		screen:   screen,
		game:     g,
		interval: interval,
	}
	s.layoutButtons()
	return s
}

func (s *Screen) layoutButtons() {
	actions := []struct {
		label string
		press func(*game.Game)
	}{
		{"Play", (*game.Game).Play},
		{"Stop", (*game.Game).Stop},
		{"Reset", (*game.Game).Reset},
	}

	x := 0
	for _, a := range actions {
		label := " " + a.label + " "
		s.buttons = append(s.buttons, button{label: label, x0: x, x1: x + len(label), press: a.press})
		x += len(label) + 2
	}
}

func (s *Screen) buttonRow() int { return s.game.Grid().RowCount() + 1 }
func (s *Screen) statusRow() int { return s.game.Grid().RowCount() + 3 }

// Run draws the board and serves input and ticks until ctx is cancelled or the user quits.
// Input polling and the tick timer run on separate goroutines, but only the owner loop
// touches the game.
func (s *Screen) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event)

	eg.Go(func() error {
		for {
			// PollEvent returns nil once the screen is finalized
			ev := s.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		defer s.screen.Fini()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.draw()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if s.game.Tick() {
					s.draw()
				}
			case ev := <-events:
				if s.handleEvent(ev) {
					cancel()
					return nil
				}
				s.draw()
			}
		}
	})

	return eg.Wait()
}

// handleEvent applies one input event and reports whether the user asked to quit
func (s *Screen) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && s.lastButtons&tcell.Button1 == 0
		s.lastButtons = buttons
		if pressed {
			x, y := ev.Position()
			s.click(x, y)
		}
	}
	return false
}

func (s *Screen) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	g := s.game
	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case ' ':
		if g.Playing() {
			g.Stop()
		} else {
			g.Play()
		}
	case 'p':
		g.Play()
	case 's':
		g.Stop()
	case 'n':
		g.StepOnce()
	case 'r':
		g.Reset()
	}
	return false
}

func (s *Screen) click(x, y int) {
	if y == s.buttonRow() {
		for _, b := range s.buttons {
			if x >= b.x0 && x < b.x1 {
				b.press(s.game)
				return
			}
		}
		return
	}

	// clicks past the board edge are ignored
	_ = s.game.Toggle(y, x/cellWidth)
}

func (s *Screen) draw() {
	s.screen.Clear()

	grid := s.game.Grid()
	for r := range grid.RowCount() {
		for c := range grid.ColumnCount() {
			ch, style := ' ', deadStyle
			if grid.Get(r, c) {
				ch, style = '█', aliveStyle
			}
			for i := range cellWidth {
				s.screen.SetContent(c*cellWidth+i, r, ch, nil, style)
			}
		}
	}

	for _, b := range s.buttons {
		drawText(s.screen, b.x0, s.buttonRow(), b.label, buttonStyle)
	}

	st := s.game.Status()
	state := "stopped"
	if st.Playing {
		state = "playing"
	}
	if st.Stagnant {
		state += " (stagnant)"
	}
	drawText(s.screen, 0, s.statusRow(), fmt.Sprintf("Gen: %d | Living: %d | Rule: %s | %s",
		st.Generation, st.Population, st.Rule, state), textStyle)
	drawText(s.screen, 0, s.statusRow()+1, helpText, textStyle)

	s.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
