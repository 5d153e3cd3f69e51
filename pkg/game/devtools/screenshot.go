package devtools

import (
	"fmt"
	"html"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"glyphgrid/pkg/game/compositor"
	"glyphgrid/pkg/game/renderer/monofont"
	"glyphgrid/pkg/game/state"
)

// SaveScreenshotHTML captures the next frame and writes it to a timestamped
// HTML file, returning the file name
func SaveScreenshotHTML(s *state.Session) (string, error) {
	g, err := Capture(s)
	if err != nil {
		return "", err
	}
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	x, y := s.Position()
	if err := os.WriteFile(filename, []byte(ScreenshotHTML(g, s.Config.Title, x, y, s.Messages)), 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// ScreenshotHTML renders a captured grid as a standalone HTML page
func ScreenshotHTML(g *Grid, title string, x, y int32, messages []string) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>` + html.EscapeString(title) + ` - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: ` + fmt.Sprint(g.TilePx) + `px;
            font-size: ` + fmt.Sprint(g.TilePx) + `px;
        }
        .map-row span {
            display: inline-block;
            width: ` + fmt.Sprint(g.TilePx) + `px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	b.WriteString(fmt.Sprintf(`    <div class="header">Player: %d, %d</div>`+"\n", x, y))
	b.WriteString(`    <div class="map-container">` + "\n")

	for row := 0; row < g.View.Height; row++ {
		b.WriteString(`        <div class="map-row">`)
		for _, c := range g.Row(row) {
			glyph := " "
			if c.Glyph != 0 {
				glyph = html.EscapeString(string(c.Glyph))
			}
			b.WriteString(fmt.Sprintf(`<span style="background:%s;color:%s">%s</span>`,
				c.Background.CSS(), c.Foreground.CSS(), glyph))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	for _, msg := range messages {
		b.WriteString(fmt.Sprintf(`    <div class="message">%s</div>`+"\n", html.EscapeString(stripANSI(msg))))
	}

	b.WriteString(`</body>
</html>
`)
	return b.String()
}

// Raster is a surface drawing into an RGBA image with the mono font
type Raster struct {
	Image    *image.RGBA
	face     font.Face
	coverage *monofont.Coverage
}

// NewRaster creates a raster of w x h pixels with glyphs sized for tilePx tiles
func NewRaster(w, h, tilePx int) (*Raster, error) {
	face, err := monofont.NewFace(tilePx)
	if err != nil {
		return nil, err
	}
	cov, err := monofont.NewCoverage()
	if err != nil {
		face.Close()
		return nil, err
	}
	return &Raster{
		Image:    image.NewRGBA(image.Rect(0, 0, w, h)),
		face:     face,
		coverage: cov,
	}, nil
}

func (r *Raster) FillRect(x, y, w, h int, c color.Color) {
	draw.Draw(r.Image, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawGlyph draws with the glyph's line box top at y
func (r *Raster) DrawGlyph(g rune, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  r.Image,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.P(x, y+r.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(string(g))
}

func (r *Raster) HasGlyph(g rune) bool {
	return r.coverage.HasGlyph(g)
}

// Close releases the font face
func (r *Raster) Close() error {
	return r.face.Close()
}

// WritePNG renders the session's next frame and encodes it as PNG
func WritePNG(s *state.Session, w io.Writer) error {
	tile := s.Compositor.TilePx()
	r, err := NewRaster(s.View.Width*tile, s.View.Height*tile, tile)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := s.Scheduler.Step(r); err != nil {
		return err
	}
	if err := png.Encode(w, r.Image); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the session's next frame to path
func SavePNG(s *state.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(s, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var _ compositor.GlyphCoverage = (*Raster)(nil)
