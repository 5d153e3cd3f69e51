package compositor

import "fmt"

// RGB24 is a packed 0xRRGGBB color as produced by the engine. Bits above the
// low 24 are ignored; there is no alpha channel.
type RGB24 uint32

// Components returns the red, green and blue channels
func (c RGB24) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// CSS returns the color as #rrggbb with lowercase, zero-padded hex digits
func (c RGB24) CSS() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

func (c RGB24) String() string {
	return c.CSS()
}

// RGBA implements color.Color. Colors are always opaque.
func (c RGB24) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.Components()
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	return r, g, b, 0xffff
}

// RGBToCSS converts a packed RGB integer to its #rrggbb form
func RGBToCSS(c uint32) string {
	return RGB24(c).CSS()
}
