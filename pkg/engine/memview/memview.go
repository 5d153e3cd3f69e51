// Package memview reinterprets regions of an engine's linear memory as
// fixed-length sequences of unsigned 32-bit integers without copying.
//
// Views are snapshots of (region, pointer, length) taken at construction time.
// They must be rebuilt after every call that may reallocate engine memory.
package memview

import (
	"encoding/binary"
	"errors"
	"fmt"

	"glyphgrid/pkg/engine/handle"
)

// ErrProtocol marks a violation of the buffer protocol between engine and
// presentation layer. It is fatal for the frame.
var ErrProtocol = errors.New("buffer protocol violation")

// U32View is a read-only little-endian uint32 view aliased onto a byte region
type U32View struct {
	b []byte
}

// NewU32View aliases n elements starting at byte offset ptr of region.
// The bounds check is overflow safe.
func NewU32View(region []byte, ptr uint32, n int) (U32View, error) {
	if n < 0 {
		return U32View{}, fmt.Errorf("%w: negative length %d", ErrProtocol, n)
	}
	start := uint64(ptr)
	end := start + 4*uint64(n)
	if end > uint64(len(region)) {
		return U32View{}, fmt.Errorf("%w: range [%d, %d) exceeds memory of %d bytes", ErrProtocol, start, end, len(region))
	}
	return U32View{b: region[start:end:end]}, nil
}

// Len returns the number of elements
func (v U32View) Len() int {
	return len(v.b) / 4
}

// At returns element i, decoded from the underlying bytes on every call
func (v U32View) At(i int) uint32 {
	return binary.LittleEndian.Uint32(v.b[4*i:])
}

// Views are the three index-aligned frame buffers of one frame
type Views struct {
	View       handle.View
	Background U32View
	Foreground U32View
	Glyph      U32View
}

// Len returns the shared length of the three views
func (f Views) Len() int {
	return f.Background.Len()
}

// Build wraps the three buffers at bg, fg and glyph, each n elements long.
// It fails fast if n does not match the view or any buffer leaves the region.
func Build(region []byte, n int, bg, fg, glyph uint32, view handle.View) (Views, error) {
	if want := view.Cells(); n != want {
		return Views{}, fmt.Errorf("%w: buffer length %d, view %s needs %d", ErrProtocol, n, view, want)
	}

	var (
		f   = Views{View: view}
		err error
	)
	if f.Background, err = NewU32View(region, bg, n); err != nil {
		return Views{}, fmt.Errorf("background buffer: %w", err)
	}
	if f.Foreground, err = NewU32View(region, fg, n); err != nil {
		return Views{}, fmt.Errorf("foreground buffer: %w", err)
	}
	if f.Glyph, err = NewU32View(region, glyph, n); err != nil {
		return Views{}, fmt.Errorf("glyph buffer: %w", err)
	}
	return f, nil
}

// Query reads the buffer length, the three pointers and the memory region
// freshly from the engine and builds views over them. Call it only after
// PrepareRender has returned for the current frame. The region is fetched
// last since any engine call may grow memory.
func Query(e handle.Engine, view handle.View) (Views, error) {
	n := e.BuffLen()
	bg := e.BgRGBBuffPtr()
	fg := e.FgRGBBuffPtr()
	glyph := e.GlyphBuffPtr()
	return Build(e.Memory(), n, bg, fg, glyph, view)
}
