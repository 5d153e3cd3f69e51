// Package ebiten provides an Ebiten-based 2D graphical renderer for glyphgrid.
package ebiten

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"glyphgrid/pkg/engine/input"
	"glyphgrid/pkg/game/renderer/monofont"
	"glyphgrid/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	session *state.Session
	logger  *log.Logger

	// Logical canvas size: one tile per grid cell
	windowWidth  int
	windowHeight int

	tileSize int
	title    string

	monoFontSource     *text.GoTextFaceSource
	cachedTileFontSize float64
	cachedMonoFace     *text.GoTextFace
	coverage           *monofont.Coverage

	ctx context.Context

	// First frame or input error; returned from the next Update to stop the game
	err error

	// Scratch slice for inpututil
	keys []ebiten.Key

	// Key repeat state tracking
	repeater *input.Repeater

	// Last position shown in the window title
	lastX, lastY int32
	titleShown   bool

	windowOpenedLogged bool
}
