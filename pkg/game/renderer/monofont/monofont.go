// Package monofont supplies the monospace font shared by the pixel
// surfaces: its raw bytes, rasterising faces and code point coverage.
package monofont

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// TTF is the Go Mono font file
var TTF = gomono.TTF

// SizeForTile returns the font size in points for square tiles of tilePx
// pixels at 72 DPI
func SizeForTile(tilePx int) float64 {
	return float64(tilePx)
}

// Coverage answers which code points the font has glyphs for
type Coverage struct {
	font  *sfnt.Font
	buf   sfnt.Buffer
	known map[rune]bool
}

// NewCoverage parses the font's cmap
func NewCoverage() (*Coverage, error) {
	f, err := sfnt.Parse(TTF)
	if err != nil {
		return nil, fmt.Errorf("parse mono font: %w", err)
	}
	return &Coverage{font: f, known: make(map[rune]bool)}, nil
}

// HasGlyph reports whether r maps to a real glyph (index 0 is .notdef)
func (c *Coverage) HasGlyph(r rune) bool {
	if has, ok := c.known[r]; ok {
		return has
	}
	idx, err := c.font.GlyphIndex(&c.buf, r)
	has := err == nil && idx != 0
	c.known[r] = has
	return has
}

// NewFace opens a rasterising face sized for tilePx tiles. The caller
// closes it.
func NewFace(tilePx int) (font.Face, error) {
	f, err := opentype.Parse(TTF)
	if err != nil {
		return nil, fmt.Errorf("parse mono font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    SizeForTile(tilePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("open mono face: %w", err)
	}
	return face, nil
}
