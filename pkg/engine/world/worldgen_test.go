package world

import "testing"

func TestTileAt_Deterministic(t *testing.T) {
	const seed = 12345
	a := TileAt(seed, 10, -7)
	b := TileAt(seed, 10, -7)
	if a != b {
		t.Errorf("TileAt(seed, 10, -7) = %v then %v, want identical results", a, b)
	}
}

func TestHash2_DifferentCoordsChangeOutput(t *testing.T) {
	const seed = 12345
	a := Hash2(seed, 10, -7)
	b := Hash2(seed, 10, -6)
	if a == b {
		t.Errorf("Hash2(seed, 10, -7) == Hash2(seed, 10, -6) = %#x, want different values", a)
	}
}

func TestTileAt_Distribution(t *testing.T) {
	counts := map[Tile]int{}
	for y := int32(0); y < 100; y++ {
		for x := int32(0); x < 100; x++ {
			counts[TileAt(42, x, y)]++
		}
	}
	// every terrain kind appears and grass dominates
	for _, tile := range []Tile{Grass, Rock, Water} {
		if counts[tile] == 0 {
			t.Errorf("no %v tiles in a 100x100 sample", tile)
		}
	}
	if counts[Grass] < counts[Rock]+counts[Water] {
		t.Errorf("grass = %d, want more than rock+water = %d", counts[Grass], counts[Rock]+counts[Water])
	}
}

func TestTile_IsTraversable(t *testing.T) {
	if !Grass.IsTraversable() {
		t.Error("Grass.IsTraversable() = false, want true")
	}
	if Water.IsTraversable() || Rock.IsTraversable() {
		t.Error("Water/Rock.IsTraversable() = true, want false")
	}
}

func TestDirection_Delta(t *testing.T) {
	cases := map[Direction][2]int{
		North: {0, -1},
		South: {0, 1},
		West:  {-1, 0},
		East:  {1, 0},
	}
	for d, want := range cases {
		dx, dy := d.Delta()
		if dx != want[0] || dy != want[1] {
			t.Errorf("%v.Delta() = (%d, %d), want (%d, %d)", d, dx, dy, want[0], want[1])
		}
	}
}
