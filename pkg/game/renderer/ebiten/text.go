package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
)

// drawColoredChar draws a character left- and top-aligned at (x, y) in the mono font
func (e *EbitenRenderer) drawColoredChar(screen *ebiten.Image, char string, x, y int, col color.Color) {
	face := e.getMonoFontFace()

	// text/v2 Draw uses the top-left of the line box as the origin
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, char, face, op)
}

// windowTitle formats the title bar with the player's position
func (e *EbitenRenderer) windowTitle(x, y int32) string {
	return gotext.Get("%s | Player: %d, %d", e.title, x, y)
}

// updateTitle refreshes the title bar when the player has moved
func (e *EbitenRenderer) updateTitle() {
	x, y := e.session.Position()
	if e.titleShown && x == e.lastX && y == e.lastY {
		return
	}
	e.lastX, e.lastY = x, y
	e.titleShown = true
	ebiten.SetWindowTitle(e.windowTitle(x, y))
}
