// Package sim is the built-in reference engine: a player on an endless,
// seeded tile world. It keeps its frame buffers in its own linear memory and
// exposes them through the handle.Engine capability set.
package sim

import (
	"fmt"

	"glyphgrid/pkg/engine/handle"
	"glyphgrid/pkg/engine/world"
)

// bufferSet is one set of background, foreground and glyph buffers
type bufferSet struct {
	bg, fg, glyph uint32
	n             int
}

// Game is the reference engine state
type Game struct {
	seed uint32
	view handle.View
	x, y int32

	mem   *Memory
	sets  [2]*bufferSet
	next  int
	front *bufferSet
}

var _ handle.Engine = (*Game)(nil)

// New creates a game with the player at the origin
func New(seed uint32, view handle.View) (*Game, error) {
	if err := view.Validate(); err != nil {
		return nil, err
	}
	// two sets of three buffers must fit in linear memory
	need := 2 * 3 * 4 * uint64(view.Width) * uint64(view.Height)
	if need > maxBytes {
		return nil, fmt.Errorf("view %dx%d needs %d bytes of frame buffers, memory limit is %d",
			view.Width, view.Height, need, uint64(maxBytes))
	}
	return &Game{
		seed: seed,
		view: view,
		mem:  NewMemory(1),
	}, nil
}

// Constructor adapts New to handle.Constructor
func Constructor(seed uint32, view handle.View) (handle.Engine, error) {
	return New(seed, view)
}

func (g *Game) MoveBy(dx, dy int32) error {
	g.x += dx
	g.y += dy
	return nil
}

func (g *Game) PosX() int32 { return g.x }
func (g *Game) PosY() int32 { return g.y }

// Standing returns the terrain under the player
func (g *Game) Standing() world.Tile {
	return world.TileAt(g.seed, g.x, g.y)
}

// PrepareRender fills the next buffer set with the viewport centered on the
// player and makes it the front set. Sets are allocated on first use, so the
// second prepare may grow memory.
func (g *Game) PrepareRender() error {
	set, err := g.backSet()
	if err != nil {
		return fmt.Errorf("prepare render: %w", err)
	}

	w, h := g.view.Width, g.view.Height
	originX := g.x - int32(w/2)
	originY := g.y - int32(h/2)

	for i := 0; i < set.n; i++ {
		col, row := g.view.Coords(i)
		rd := renderAt(g.seed, originX+int32(col), originY+int32(row), g.x, g.y)
		off := uint32(4 * i)
		g.mem.PutU32(set.bg+off, rd.Background)
		g.mem.PutU32(set.fg+off, rd.Foreground)
		g.mem.PutU32(set.glyph+off, uint32(rd.Glyph))
	}

	g.front = set
	return nil
}

func (g *Game) backSet() (*bufferSet, error) {
	idx := g.next
	g.next = 1 - g.next
	if g.sets[idx] != nil {
		return g.sets[idx], nil
	}

	n := g.view.Cells()
	size := uint32(4 * n)
	set := &bufferSet{n: n}
	var err error
	if set.bg, err = g.mem.Alloc(size); err != nil {
		return nil, err
	}
	if set.fg, err = g.mem.Alloc(size); err != nil {
		return nil, err
	}
	if set.glyph, err = g.mem.Alloc(size); err != nil {
		return nil, err
	}
	g.sets[idx] = set
	return set, nil
}

// BuffLen is 0 until the first PrepareRender
func (g *Game) BuffLen() int {
	if g.front == nil {
		return 0
	}
	return g.front.n
}

func (g *Game) BgRGBBuffPtr() uint32 {
	if g.front == nil {
		return 0
	}
	return g.front.bg
}

func (g *Game) FgRGBBuffPtr() uint32 {
	if g.front == nil {
		return 0
	}
	return g.front.fg
}

func (g *Game) GlyphBuffPtr() uint32 {
	if g.front == nil {
		return 0
	}
	return g.front.glyph
}

func (g *Game) Memory() []byte {
	return g.mem.Bytes()
}
