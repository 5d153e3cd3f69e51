package sim

import (
	"encoding/binary"
	"fmt"
)

// PageSize is the growth granularity of linear memory
const PageSize = 64 * 1024

// maxPages caps memory at 4 GiB, the reach of a uint32 pointer
const maxPages = 1 << 16

// maxBytes is the largest memory size in bytes
const maxBytes = maxPages * PageSize

// Memory is a growable little-endian linear memory with a bump allocator.
// Growing always moves the backing slice, so any slice obtained from Bytes
// before an Alloc must be discarded.
type Memory struct {
	data []byte
	top  uint64
}

// NewMemory creates a memory of the given number of pages
func NewMemory(pages int) *Memory {
	if pages < 1 {
		pages = 1
	}
	return &Memory{data: make([]byte, pages*PageSize)}
}

// Bytes returns the current backing region
func (m *Memory) Bytes() []byte {
	return m.data
}

// Pages returns the current size in pages
func (m *Memory) Pages() int {
	return len(m.data) / PageSize
}

// Alloc reserves n bytes aligned to 4 and returns their offset, growing the
// memory when the request does not fit
func (m *Memory) Alloc(n uint32) (uint32, error) {
	start := (m.top + 3) &^ 3
	end := start + uint64(n)
	if start >= maxBytes || end > maxBytes {
		return 0, fmt.Errorf("alloc %d bytes at %d: exceeds %d byte memory limit", n, start, uint64(maxBytes))
	}
	if end > uint64(len(m.data)) {
		if err := m.grow(end); err != nil {
			return 0, err
		}
	}
	m.top = end
	return uint32(start), nil
}

func (m *Memory) grow(minBytes uint64) error {
	pages := (minBytes + PageSize - 1) / PageSize
	if pages > maxPages {
		return fmt.Errorf("grow memory to %d pages: exceeds %d page limit", pages, maxPages)
	}
	data := make([]byte, pages*PageSize)
	copy(data, m.data)
	m.data = data
	return nil
}

// PutU32 stores v at byte offset off
func (m *Memory) PutU32(off, v uint32) {
	binary.LittleEndian.PutUint32(m.data[off:], v)
}

// U32 loads the value at byte offset off
func (m *Memory) U32(off uint32) uint32 {
	return binary.LittleEndian.Uint32(m.data[off:])
}
