package ebiten

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"glyphgrid/pkg/engine/input"
	"glyphgrid/pkg/game/renderer"
	"glyphgrid/pkg/game/state"
)

var _ renderer.Renderer = (*EbitenRenderer)(nil)

// New creates an Ebiten renderer for the session
func New(s *state.Session) *EbitenRenderer {
	tile := s.Compositor.TilePx()
	return &EbitenRenderer{
		session:      s,
		logger:       s.Logger,
		windowWidth:  s.View.Width * tile,
		windowHeight: s.View.Height * tile,
		tileSize:     tile,
		title:        s.Config.Title,
		repeater:     input.NewRepeater(),
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if fps := e.session.Config.FPS; fps > 0 {
		ebiten.SetTPS(fps)
	}
	return nil
}

// GetViewportSize returns the grid dimensions
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	return e.session.View.Height, e.session.View.Width
}

// Run starts the Ebiten game loop. It returns nil when the window is closed
// or ctx is cancelled, and the first frame or input error otherwise.
func (e *EbitenRenderer) Run(ctx context.Context) error {
	if e.monoFontSource == nil {
		return fmt.Errorf("ebiten renderer: Init not called")
	}
	e.ctx = ctx
	e.logger.Info("starting ebiten renderer", "width", e.windowWidth, "height", e.windowHeight)
	if err := ebiten.RunGame(e); err != nil {
		return err
	}
	e.logger.Info("ebiten renderer stopped", "frames", e.session.Scheduler.Frames())
	return nil
}
