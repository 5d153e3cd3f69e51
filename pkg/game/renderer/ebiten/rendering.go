package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface adapts an ebiten screen image to compositor.Surface
type screenSurface struct {
	screen *ebiten.Image
	r      *EbitenRenderer
}

func (s screenSurface) FillRect(x, y, w, h int, c color.Color) {
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s screenSurface) DrawGlyph(r rune, x, y int, c color.Color) {
	s.r.drawColoredChar(s.screen, string(r), x, y, c)
}

func (s screenSurface) HasGlyph(r rune) bool {
	return s.r.coverage.HasGlyph(r)
}

// Draw renders one engine frame to the screen (Ebiten interface).
// A failed frame leaves the screen cleared and stops the game on the next Update.
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	if e.err != nil {
		return
	}
	screen.Fill(colorBackground)

	if err := e.session.Scheduler.Step(screenSurface{screen: screen, r: e}); err != nil {
		e.err = err
	}
}
