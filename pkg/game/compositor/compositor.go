// Package compositor paints the engine's three frame buffers onto a drawing
// surface as a monospaced character grid.
package compositor

import (
	"image/color"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"glyphgrid/pkg/engine/memview"
)

// Surface is a drawable 2D target addressed in pixels
type Surface interface {
	// FillRect fills a w x h rectangle with its top-left corner at (x, y)
	FillRect(x, y, w, h int, c color.Color)

	// DrawGlyph draws one character left- and top-aligned at (x, y) in a
	// monospace font sized to the tile
	DrawGlyph(r rune, x, y int, c color.Color)
}

// GlyphCoverage is implemented by surfaces whose font cannot render
// every code point
type GlyphCoverage interface {
	HasGlyph(r rune) bool
}

// Compositor paints whole frames. It keeps no frame state between calls;
// every Compose repaints the full viewport.
type Compositor struct {
	tilePx      int
	logger      *log.Logger
	unsupported mapset.Set[uint32]
}

// New creates a compositor for square tiles of tilePx pixels
func New(tilePx int, logger *log.Logger) *Compositor {
	return &Compositor{
		tilePx:      tilePx,
		logger:      logger,
		unsupported: mapset.New[uint32](),
	}
}

// TilePx returns the tile edge length in pixels
func (c *Compositor) TilePx() int {
	return c.tilePx
}

// Compose paints every tile of f onto s in row-major order: the background
// fill first, then the glyph unless it is 0 or cannot be rendered.
func (c *Compositor) Compose(s Surface, f memview.Views) {
	coverage, _ := s.(GlyphCoverage)
	view := f.View

	for y := 0; y < view.Height; y++ {
		for x := 0; x < view.Width; x++ {
			i := view.Index(x, y)
			px, py := x*c.tilePx, y*c.tilePx

			s.FillRect(px, py, c.tilePx, c.tilePx, RGB24(f.Background.At(i)))

			code := f.Glyph.At(i)
			if code == 0 {
				continue
			}
			r, ok := c.glyph(code, coverage)
			if !ok {
				continue
			}
			s.DrawGlyph(r, px, py, RGB24(f.Foreground.At(i)))
		}
	}
}

// glyph decodes a glyph code, reporting false for code points that are not
// valid or that the surface cannot draw
func (c *Compositor) glyph(code uint32, coverage GlyphCoverage) (rune, bool) {
	r := rune(code)
	if code > utf8.MaxRune || !utf8.ValidRune(r) || (coverage != nil && !coverage.HasGlyph(r)) {
		if !c.unsupported.Has(code) {
			c.unsupported.Put(code)
			c.logger.Warn("unsupported glyph, drawing background only", "code", code)
		}
		return 0, false
	}
	return r, true
}
