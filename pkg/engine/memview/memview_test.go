package memview

import (
	"encoding/binary"
	"errors"
	"testing"

	"glyphgrid/pkg/engine/handle"
)

// putU32s writes vals little-endian into region starting at ptr
func putU32s(region []byte, ptr uint32, vals ...uint32) {
	for i, v := range vals {
		binary.LittleEndian.PutUint32(region[int(ptr)+4*i:], v)
	}
}

func TestBuild_ReadsAllThreeBuffers(t *testing.T) {
	view := handle.View{Width: 2, Height: 1}
	region := make([]byte, 64)
	putU32s(region, 0, 0x112233, 0xffffff)
	putU32s(region, 16, 1, 2)
	putU32s(region, 32, 'A', 0)

	f, err := Build(region, 2, 0, 16, 32, view)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}
	if got := f.Background.At(0); got != 0x112233 {
		t.Errorf("Background.At(0) = %#x, want 0x112233", got)
	}
	if got := f.Foreground.At(1); got != 2 {
		t.Errorf("Foreground.At(1) = %d, want 2", got)
	}
	if got := f.Glyph.At(0); got != 'A' {
		t.Errorf("Glyph.At(0) = %d, want %d", got, 'A')
	}
}

func TestBuild_AliasesWithoutCopy(t *testing.T) {
	view := handle.View{Width: 1, Height: 1}
	region := make([]byte, 16)

	f, err := Build(region, 1, 0, 4, 8, view)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	putU32s(region, 8, 'z')
	if got := f.Glyph.At(0); got != 'z' {
		t.Errorf("Glyph.At(0) after write = %d, want %d (view must alias the region)", got, 'z')
	}
}

func TestBuild_LengthMismatchIsProtocolError(t *testing.T) {
	view := handle.View{Width: 3, Height: 2}
	region := make([]byte, 1024)

	for _, n := range []int{0, 5, 7, 12} {
		if _, err := Build(region, n, 0, 100, 200, view); !errors.Is(err, ErrProtocol) {
			t.Errorf("Build(n=%d) error = %v, want ErrProtocol", n, err)
		}
	}
}

func TestBuild_OutOfBoundsIsProtocolError(t *testing.T) {
	view := handle.View{Width: 2, Height: 2}
	region := make([]byte, 40)

	// glyph buffer would need bytes [32, 48)
	if _, err := Build(region, 4, 0, 16, 32, view); !errors.Is(err, ErrProtocol) {
		t.Errorf("Build() past end error = %v, want ErrProtocol", err)
	}
	// pointer near the top of the address space must not wrap around
	if _, err := Build(region, 4, 0, 16, 0xfffffffc, view); !errors.Is(err, ErrProtocol) {
		t.Errorf("Build() wrapping pointer error = %v, want ErrProtocol", err)
	}
}

func TestBuild_ExactFitIsAccepted(t *testing.T) {
	view := handle.View{Width: 2, Height: 2}
	region := make([]byte, 48)

	if _, err := Build(region, 4, 0, 16, 32, view); err != nil {
		t.Errorf("Build() exact fit error = %v, want nil", err)
	}
}

func TestNewU32View_UnalignedPointer(t *testing.T) {
	region := make([]byte, 16)
	putU32s(region, 3, 0xdeadbeef)

	v, err := NewU32View(region, 3, 1)
	if err != nil {
		t.Fatalf("NewU32View() error = %v", err)
	}
	if got := v.At(0); got != 0xdeadbeef {
		t.Errorf("At(0) = %#x, want 0xdeadbeef", got)
	}
}

type stubEngine struct {
	region        []byte
	n             int
	bg, fg, glyph uint32
}

func (s *stubEngine) MoveBy(dx, dy int32) error { return nil }
func (s *stubEngine) PosX() int32               { return 0 }
func (s *stubEngine) PosY() int32               { return 0 }
func (s *stubEngine) PrepareRender() error      { return nil }
func (s *stubEngine) BuffLen() int              { return s.n }
func (s *stubEngine) BgRGBBuffPtr() uint32      { return s.bg }
func (s *stubEngine) FgRGBBuffPtr() uint32      { return s.fg }
func (s *stubEngine) GlyphBuffPtr() uint32      { return s.glyph }
func (s *stubEngine) Memory() []byte            { return s.region }

func TestQuery_UsesEngineRegion(t *testing.T) {
	view := handle.View{Width: 1, Height: 1}
	e := &stubEngine{region: make([]byte, 12), n: 1, bg: 0, fg: 4, glyph: 8}
	putU32s(e.region, 0, 0xabcdef)

	f, err := Query(e, view)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if got := f.Background.At(0); got != 0xabcdef {
		t.Errorf("Background.At(0) = %#x, want 0xabcdef", got)
	}
}

// growingEngine grows its region while answering the glyph pointer query,
// the way a hosted engine may grow linear memory on any call
type growingEngine struct {
	stubEngine
}

func (g *growingEngine) GlyphBuffPtr() uint32 {
	grown := make([]byte, 64)
	copy(grown, g.region)
	putU32s(grown, 32, 'x')
	g.region = grown
	return 32
}

func TestQuery_FetchesRegionAfterPointers(t *testing.T) {
	view := handle.View{Width: 1, Height: 1}
	e := &growingEngine{stubEngine{region: make([]byte, 12), n: 1, bg: 0, fg: 4}}

	f, err := Query(e, view)
	if err != nil {
		t.Fatalf("Query() error = %v, want views over the grown region", err)
	}
	if got := f.Glyph.At(0); got != 'x' {
		t.Errorf("Glyph.At(0) = %#x, want %#x", got, 'x')
	}
}
