// Package tui renders a session into the terminal with tcell. Each tile is
// one character cell; key events are delivered to the session on the frame
// loop goroutine.
package tui

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"glyphgrid/pkg/engine/input"
	"glyphgrid/pkg/game/loop"
	"glyphgrid/pkg/game/renderer"
	"glyphgrid/pkg/game/state"
)

// errQuit ends the frame loop when the user quits
var errQuit = errors.New("quit")

// TUIRenderer is the terminal renderer
type TUIRenderer struct {
	session *state.Session
	logger  *log.Logger
	screen  tcell.Screen
	tilePx  int

	ticker *loop.Ticker
	events chan tcell.Event
}

var _ renderer.Renderer = (*TUIRenderer)(nil)
var _ loop.Host = (*TUIRenderer)(nil)

// New creates a terminal renderer. A nil screen opens the real terminal in Init.
func New(s *state.Session, screen tcell.Screen) *TUIRenderer {
	return &TUIRenderer{
		session: s,
		logger:  s.Logger,
		screen:  screen,
		tilePx:  s.Compositor.TilePx(),
		events:  make(chan tcell.Event, 100),
	}
}

// Init opens and initialises the screen
func (t *TUIRenderer) Init() error {
	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()

	cols, rows := t.screen.Size()
	view := t.session.View
	if cols < view.Width || rows < view.Height {
		t.logger.Warn("terminal smaller than view, frame will be clipped",
			"terminal", fmt.Sprintf("%dx%d", cols, rows), "view", view)
	}
	return nil
}

// GetViewportSize returns the grid dimensions
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	return t.session.View.Height, t.session.View.Width
}

// Run drives the frame loop until the user quits (Esc, q or Ctrl+C), ctx is
// cancelled or a frame fails. Quitting and cancellation return nil.
func (t *TUIRenderer) Run(ctx context.Context) error {
	defer t.screen.Fini()

	t.ticker = loop.NewTicker(t.session.Config.FPS)
	defer t.ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	go t.pollEvents(done)

	err := t.session.Scheduler.Run(ctx, t)
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (t *TUIRenderer) pollEvents(done <-chan struct{}) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-done:
			return
		}
	}
}

// cell converts a pixel coordinate to a terminal cell
func (t *TUIRenderer) cell(px, py int) (int, int) {
	return px / t.tilePx, py / t.tilePx
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// FillRect paints the background of every cell the rectangle covers and
// clears their characters
func (t *TUIRenderer) FillRect(x, y, w, h int, c color.Color) {
	style := tcell.StyleDefault.Background(toTcell(c))
	x0, y0 := t.cell(x, y)
	x1, y1 := t.cell(x+w-1, y+h-1)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			t.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

// DrawGlyph puts r into the cell, keeping the cell's background
func (t *TUIRenderer) DrawGlyph(r rune, x, y int, c color.Color) {
	cx, cy := t.cell(x, y)
	_, _, style, _ := t.screen.GetContent(cx, cy)
	t.screen.SetContent(cx, cy, r, nil, style.Foreground(toTcell(c)))
}

// HasGlyph rejects runes that do not occupy exactly one cell
func (t *TUIRenderer) HasGlyph(r rune) bool {
	return runewidth.RuneWidth(r) == 1
}

// Present flushes the frame to the terminal
func (t *TUIRenderer) Present() error {
	t.screen.Show()
	return nil
}

// NextFrame waits for the next tick, handling terminal events meanwhile
func (t *TUIRenderer) NextFrame(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.ticker.C():
			return nil
		case ev := <-t.events:
			if err := t.handleEvent(ev); err != nil {
				return err
			}
		}
	}
}

func (t *TUIRenderer) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			t.logger.Info("quit requested")
			return errQuit
		}
		code := keyCode(ev)
		if code == "" {
			return nil
		}
		return t.session.KeyDown(code)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return nil
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// keyCode translates a terminal key to the key identifiers used by the
// input bindings. Keys with no equivalent yield "".
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyArrowUp
	case tcell.KeyDown:
		return input.KeyArrowDown
	case tcell.KeyLeft:
		return input.KeyArrowLeft
	case tcell.KeyRight:
		return input.KeyArrowRight
	}
	return ""
}
