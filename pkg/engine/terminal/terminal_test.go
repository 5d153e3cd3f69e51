package terminal

import (
	"os"
	"testing"
)

func TestGetSize_Positive(t *testing.T) {
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = (%d, %d), want positive dimensions", w, h)
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty")
	if err != nil {
		t.Fatalf("CreateTemp() error = %v", err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("IsTerminal(regular file) = true, want false")
	}
}

func TestFits_EmptyGrid(t *testing.T) {
	if !Fits(0, 0) {
		t.Error("Fits(0, 0) = false, want true")
	}
}
