package devtools

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
)

// ansiCell renders one cell as a 24-bit colored character
func ansiCell(c Cell) string {
	br, bg, bb := c.Background.Components()
	fr, fg, fb := c.Foreground.Components()
	style := color.NewRGBStyle(color.RGB(fr, fg, fb), color.RGB(br, bg, bb, true))
	return style.Sprint(string(glyphOrSpace(c.Glyph)))
}

func glyphOrSpace(r rune) rune {
	if r == 0 {
		return ' '
	}
	return r
}

// WriteANSI prints the grid with 24-bit terminal colors, one line per row.
// Colors are dropped when the output does not support them.
func WriteANSI(w io.Writer, g *Grid) error {
	for y := 0; y < g.View.Height; y++ {
		var line strings.Builder
		for _, c := range g.Row(y) {
			line.WriteString(ansiCell(c))
		}
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes a plain dump: metadata, then the glyph map with blank
// tiles as '.'
func WriteText(w io.Writer, g *Grid, seed uint32, x, y int32) error {
	var b strings.Builder
	fmt.Fprintln(&b, "=== FRAME DUMP ===")
	fmt.Fprintf(&b, "seed: %d\n", seed)
	fmt.Fprintf(&b, "view: %s\n", g.View)
	fmt.Fprintf(&b, "tile_px: %d\n", g.TilePx)
	fmt.Fprintf(&b, "player: %d,%d\n", x, y)
	fmt.Fprintln(&b)
	for row := 0; row < g.View.Height; row++ {
		for _, c := range g.Row(row) {
			if c.Glyph == 0 {
				b.WriteByte('.')
				continue
			}
			b.WriteRune(c.Glyph)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// stripANSI removes ANSI escape codes from a string
func stripANSI(s string) string {
	return color.ClearCode(s)
}
