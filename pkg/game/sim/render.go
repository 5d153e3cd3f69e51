package sim

import "glyphgrid/pkg/engine/world"

// RGB24 packs a color as 0xRRGGBB
type RGB24 = uint32

// RenderData is what a single tile contributes to a frame
type RenderData struct {
	Background RGB24
	Foreground RGB24
	Glyph      rune
}

// Palette
const (
	grassBg  RGB24 = 0x2e7d32
	rockBg   RGB24 = 0x616161
	rockFg   RGB24 = 0xbdbdbd
	waterBg  RGB24 = 0x1565c0
	waterFg  RGB24 = 0x90caf9
	playerFg RGB24 = 0xffffff
)

// PlayerGlyph marks the player's tile
const PlayerGlyph = '@'

// TileRender returns the render data for a terrain kind. Grass has no glyph.
func TileRender(t world.Tile) RenderData {
	switch t {
	case world.Rock:
		return RenderData{Background: rockBg, Foreground: rockFg, Glyph: '^'}
	case world.Water:
		return RenderData{Background: waterBg, Foreground: waterFg, Glyph: '~'}
	default:
		return RenderData{Background: grassBg}
	}
}

// renderAt resolves the tile at world coordinate (wx, wy), overlaying the
// player when it stands there
func renderAt(seed uint32, wx, wy, px, py int32) RenderData {
	rd := TileRender(world.TileAt(seed, wx, wy))
	if wx == px && wy == py {
		rd.Foreground = playerFg
		rd.Glyph = PlayerGlyph
	}
	return rd
}
