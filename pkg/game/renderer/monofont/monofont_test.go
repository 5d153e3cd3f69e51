package monofont

import "testing"

func TestCoverage_HasGlyph(t *testing.T) {
	c, err := NewCoverage()
	if err != nil {
		t.Fatalf("NewCoverage() error = %v", err)
	}
	for _, r := range []rune{'@', 'A', '~', '^', '0'} {
		if !c.HasGlyph(r) {
			t.Errorf("HasGlyph(%q) = false, want true", r)
		}
	}
	if c.HasGlyph(0x1F600) {
		t.Error("HasGlyph(emoji) = true, want false")
	}
	// cached answer is stable
	if c.HasGlyph(0x1F600) {
		t.Error("HasGlyph(emoji) second call = true, want false")
	}
}

func TestNewFace_Metrics(t *testing.T) {
	face, err := NewFace(16)
	if err != nil {
		t.Fatalf("NewFace() error = %v", err)
	}
	defer face.Close()

	m := face.Metrics()
	if m.Ascent <= 0 {
		t.Errorf("Ascent = %v, want positive", m.Ascent)
	}
	if m.Height.Ceil() > 32 {
		t.Errorf("line height = %d px, want it near the 16px tile", m.Height.Ceil())
	}
	if _, ok := face.GlyphAdvance('@'); !ok {
		t.Error("GlyphAdvance('@') not found")
	}
}
