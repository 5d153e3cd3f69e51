// Package handle defines the narrow capability set the presentation layer
// consumes from a simulation engine. Any engine implementing Engine can be
// driven by the scheduler, whether it runs natively or inside a WASM runtime.
package handle

import "fmt"

// Default viewport and tile geometry
const (
	DefaultWidth  = 80
	DefaultHeight = 45
	DefaultTilePx = 16
)

// View is the number of tile columns and rows visible. It is fixed for a session.
type View struct {
	Width  int
	Height int
}

// Cells returns the number of tiles in the view (the required buffer length)
func (v View) Cells() int {
	return v.Width * v.Height
}

// Index returns the row-major tile index for column x and row y
func (v View) Index(x, y int) int {
	return y*v.Width + x
}

// Coords is the inverse of Index
func (v View) Coords(i int) (x, y int) {
	return i % v.Width, i / v.Width
}

// Validate checks that both dimensions are positive
func (v View) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("invalid view %dx%d: dimensions must be positive", v.Width, v.Height)
	}
	return nil
}

func (v View) String() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

// Engine is the capability set of an external simulation engine.
//
// Pointers and the region returned by Memory are only valid until the next
// mutating call (MoveBy or PrepareRender). Callers must re-query them after
// every such call and never retain them across frames.
type Engine interface {
	// MoveBy moves the player by a relative delta
	MoveBy(dx, dy int32) error

	// PosX and PosY report the current player position (diagnostics only)
	PosX() int32
	PosY() int32

	// PrepareRender recomputes the three frame buffers for the current view.
	// It may grow or reallocate the engine's memory.
	PrepareRender() error

	// BuffLen is the length, in elements, of each frame buffer
	BuffLen() int

	// Base byte offsets of the three buffers within Memory
	BgRGBBuffPtr() uint32
	FgRGBBuffPtr() uint32
	GlyphBuffPtr() uint32

	// Memory returns the engine's current linear memory region
	Memory() []byte
}

// Constructor builds an engine for the given seed and view geometry
type Constructor func(seed uint32, view View) (Engine, error)
