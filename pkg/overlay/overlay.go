// Package overlay draws text onto a render.Surface after a frame's
// triangles are drawn. It is a caller of Surface, never of the
// Rasterizer: it has no notion of geometry, depth, or projection, only
// pixels.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/rastalab/rasta/pkg/render"
)

// surfaceImage adapts a render.Surface[render.Vec4f] to draw.Image so
// golang.org/x/image/font's Drawer can blit glyphs directly onto it;
// out-of-bounds Set calls are no-ops rather than panics, since glyphs
// may run past either edge of the surface.
type surfaceImage struct {
	surf *render.Surface[render.Vec4f]
}

func (s surfaceImage) ColorModel() color.Model { return color.RGBAModel }

func (s surfaceImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.surf.Width(), s.surf.Height())
}

func (s surfaceImage) At(x, y int) color.Color {
	if x < 0 || x >= s.surf.Width() || y < 0 || y >= s.surf.Height() {
		return color.RGBA{}
	}
	c := s.surf.Get(x, y)
	return color.RGBA{R: f32to8(c.R), G: f32to8(c.G), B: f32to8(c.B), A: f32to8(c.A)}
}

func (s surfaceImage) Set(x, y int, c color.Color) {
	if x < 0 || x >= s.surf.Width() || y < 0 || y >= s.surf.Height() {
		return
	}
	r, g, b, a := c.RGBA()
	s.surf.Set(x, y, render.Vec4f{
		R: float32(r) / 65535,
		G: float32(g) / 65535,
		B: float32(b) / 65535,
		A: float32(a) / 65535,
	})
}

func f32to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

var _ draw.Image = surfaceImage{}

// DrawString rasterizes text at (x, y) (the glyph baseline's left
// edge) using the standard 7x13 bitmap face, straight into surf.
func DrawString(surf *render.Surface[render.Vec4f], x, y int, text string, c render.Vec4f) {
	d := &font.Drawer{
		Dst:  surfaceImage{surf: surf},
		Src:  image.NewUniform(color.RGBA{R: f32to8(c.R), G: f32to8(c.G), B: f32to8(c.B), A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// HUD bundles the handful of lines cmd/rasta draws every frame: FPS,
// triangle count, and the current mode flags.
type HUD struct {
	Filename      string
	TriangleCount int

	fps       float64
	fpsFrames int
	fpsSince  time.Time
}

// NewHUD creates a HUD for the given model.
func NewHUD(filename string, triangleCount int) *HUD {
	return &HUD{Filename: filename, TriangleCount: triangleCount, fpsSince: time.Now()}
}

// Tick updates the FPS counter; call once per rendered frame.
func (h *HUD) Tick() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsSince)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsSince = time.Now()
	}
}

// Render draws the HUD's single status line onto surf at (x, y).
func (h *HUD) Render(surf *render.Surface[render.Vec4f], x, y int, wireframe bool) {
	mode := "shaded"
	if wireframe {
		mode = "wireframe"
	}
	text := fmt.Sprintf("%s  %d tris  %.0f fps  %s", h.Filename, h.TriangleCount, h.fps, mode)
	DrawString(surf, x, y, text, render.RGB(1, 1, 1))
}
