package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"glyphgrid/pkg/engine/handle"
	"glyphgrid/pkg/game/renderer/monofont"
)

// loadFonts parses the monospace font for drawing and coverage queries
func (e *EbitenRenderer) loadFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(monofont.TTF))
	if err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	cov, err := monofont.NewCoverage()
	if err != nil {
		return err
	}
	e.monoFontSource = src
	e.coverage = cov
	return nil
}

// getTileFontSize returns the font size for map tiles, scaled to the current tile size
func (e *EbitenRenderer) getTileFontSize() float64 {
	return baseFontSize * float64(e.tileSize) / handle.DefaultTilePx
}

// getMonoFontFace returns a cached monospace font face for map tiles
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	size := e.getTileFontSize()
	if e.cachedMonoFace == nil || e.cachedTileFontSize != size {
		e.cachedTileFontSize = size
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedMonoFace
}
