// Package devtools provides developer tools for testing and debugging:
// frame captures written as HTML, PNG, ANSI or plain text.
package devtools

import (
	"image/color"

	"glyphgrid/pkg/engine/handle"
	"glyphgrid/pkg/game/compositor"
	"glyphgrid/pkg/game/state"
)

// Cell is one captured tile
type Cell struct {
	Background compositor.RGB24
	Foreground compositor.RGB24
	Glyph      rune // 0 when the tile has no glyph
}

// Grid is a surface that records a composited frame cell by cell
type Grid struct {
	View   handle.View
	TilePx int
	Cells  []Cell
}

// NewGrid creates an empty grid for view
func NewGrid(view handle.View, tilePx int) *Grid {
	return &Grid{View: view, TilePx: tilePx, Cells: make([]Cell, view.Cells())}
}

func toRGB24(c color.Color) compositor.RGB24 {
	if rgb, ok := c.(compositor.RGB24); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	return compositor.RGB24((r>>8)<<16 | (g>>8)<<8 | b>>8)
}

func (g *Grid) at(px, py int) *Cell {
	x, y := px/g.TilePx, py/g.TilePx
	if x < 0 || y < 0 || x >= g.View.Width || y >= g.View.Height {
		return nil
	}
	return &g.Cells[g.View.Index(x, y)]
}

func (g *Grid) FillRect(x, y, w, h int, c color.Color) {
	if cell := g.at(x, y); cell != nil {
		*cell = Cell{Background: toRGB24(c)}
	}
}

func (g *Grid) DrawGlyph(r rune, x, y int, c color.Color) {
	if cell := g.at(x, y); cell != nil {
		cell.Glyph = r
		cell.Foreground = toRGB24(c)
	}
}

// Row returns the cells of row y
func (g *Grid) Row(y int) []Cell {
	start := g.View.Index(0, y)
	return g.Cells[start : start+g.View.Width]
}

// Capture renders the session's next frame into a grid
func Capture(s *state.Session) (*Grid, error) {
	g := NewGrid(s.View, s.Compositor.TilePx())
	if err := s.Scheduler.Step(g); err != nil {
		return nil, err
	}
	return g, nil
}
