package tui

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"glyphgrid/pkg/engine/world"
	"glyphgrid/pkg/game/compositor"
	"glyphgrid/pkg/game/config"
	"glyphgrid/pkg/game/sim"
	"glyphgrid/pkg/game/state"
)

func newTestRenderer(t *testing.T) (*TUIRenderer, tcell.SimulationScreen) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Backend = config.BackendTUI
	cfg.View = config.ViewConfig{Width: 4, Height: 3}
	s, err := state.NewSession(context.Background(), cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(4, 3)
	r := New(s, screen)
	if err := r.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return r, screen
}

func TestStep_DrawsOneCellPerTile(t *testing.T) {
	r, screen := newTestRenderer(t)
	defer screen.Fini()

	if err := r.session.Scheduler.Step(r); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	if err := r.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	mainc, _, style, _ := screen.GetContent(2, 1)
	if mainc != sim.PlayerGlyph {
		t.Errorf("center cell = %q, want %q", mainc, sim.PlayerGlyph)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("player fg = %v, want white", fg)
	}
	want := toTcell(compositor.RGB24(sim.TileRender(world.TileAt(1, 0, 0)).Background))
	if bg != want {
		t.Errorf("player bg = %v, want terrain background %v", bg, want)
	}

	// top-left tile is world (-2, -1)
	rd := sim.TileRender(world.TileAt(1, -2, -1))
	mainc, _, style, _ = screen.GetContent(0, 0)
	_, bg, _ = style.Decompose()
	if bg != toTcell(compositor.RGB24(rd.Background)) {
		t.Errorf("corner bg = %v, want %v", bg, toTcell(compositor.RGB24(rd.Background)))
	}
	wantRune := rd.Glyph
	if wantRune == 0 {
		wantRune = ' '
	}
	if mainc != wantRune {
		t.Errorf("corner cell = %q, want %q", mainc, wantRune)
	}
}

func TestRun_RoutesKeysUntilQuit(t *testing.T) {
	r, screen := newTestRenderer(t)

	for _, k := range []tcell.Key{tcell.KeyRight, tcell.KeyDown, tcell.KeyDown, tcell.KeyEscape} {
		if err := screen.PostEvent(tcell.NewEventKey(k, 0, tcell.ModNone)); err != nil {
			t.Fatalf("PostEvent() error = %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run() stopped by timeout, want quit key")
	}

	if x, y := r.session.Position(); x != 1 || y != 2 {
		t.Errorf("Position() = (%d, %d), want (1, 2)", x, y)
	}
	if r.session.Scheduler.Frames() == 0 {
		t.Error("no frames rendered")
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	r, _ := newTestRenderer(t)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()
	if err := r.Run(ctx); err != nil {
		t.Errorf("Run() after cancel error = %v, want nil", err)
	}
}

func TestKeyCode(t *testing.T) {
	cases := map[tcell.Key]string{
		tcell.KeyUp:    "ArrowUp",
		tcell.KeyDown:  "ArrowDown",
		tcell.KeyLeft:  "ArrowLeft",
		tcell.KeyRight: "ArrowRight",
		tcell.KeyEnter: "",
	}
	for k, want := range cases {
		if got := keyCode(tcell.NewEventKey(k, 0, tcell.ModNone)); got != want {
			t.Errorf("keyCode(%v) = %q, want %q", k, got, want)
		}
	}
}

func TestIsQuit(t *testing.T) {
	if !isQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Ctrl+C should quit")
	}
	if !isQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if isQuit(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) {
		t.Error("w should not quit")
	}
}

func TestHasGlyph_SingleWidthOnly(t *testing.T) {
	r, screen := newTestRenderer(t)
	defer screen.Fini()

	if !r.HasGlyph('@') {
		t.Error("HasGlyph('@') = false, want true")
	}
	if r.HasGlyph('世') {
		t.Error("HasGlyph('世') = true, want false for wide rune")
	}
}
