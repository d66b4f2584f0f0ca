package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/rastalab/rasta/pkg/math3d"
)

// Texture is a sampleable image backed by the same Surface type the
// core's render targets use, so loading and sampling a texture never
// has to leave pkg/render's own pixel representation.
type Texture struct {
	surf *Surface[Vec4f]
}

// NewCheckerTexture builds a synthetic two-color checkerboard, used as
// cmd/rasta's fallback when a model carries no texture of its own.
func NewCheckerTexture(width, height, cell int, a, b Vec4f) *Texture {
	surf := NewSurface[Vec4f](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/cell+y/cell)%2 == 0 {
				surf.Set(x, y, a)
			} else {
				surf.Set(x, y, b)
			}
		}
	}
	return &Texture{surf: surf}
}

// TextureFromImage converts a decoded image.Image into a Texture.
func TextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	surf := NewSurface[Vec4f](w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			surf.Set(x, y, Vec4f{
				R: float32(r) / 65535,
				G: float32(g) / 65535,
				B: float32(b) / 65535,
				A: float32(a) / 65535,
			})
		}
	}
	return &Texture{surf: surf}
}

// LoadTexture decodes a PNG or JPEG file from disk into a Texture.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	return TextureFromImage(img), nil
}

// Sample does nearest-neighbor lookup at UV coordinates in [0,1],
// wrapping out-of-range values (the common tiling convention for
// terminal-viewer-scale textures, where bilinear filtering would be
// imperceptible at typical half-block cell resolutions).
func (t *Texture) Sample(u, v float64) Vec4f {
	w, h := t.surf.Width(), t.surf.Height()
	x := wrapIndex(int(u*float64(w)), w)
	y := wrapIndex(int(v*float64(h)), h)
	return t.surf.Get(x, y)
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// DrawMeshTexturedGouraud is DrawMeshGouraud plus UV-sampled texture
// modulation, for the "textured" cmd/rasta render mode.
func DrawMeshTexturedGouraud(rt *RenderTarget, mvp math3d.Mat4, x, y, width, height int, positions, normals []math3d.Vec3, uvs []math3d.Vec2, indices []int32, tex *Texture, lightDir math3d.Vec3) {
	lightDir = lightDir.Normalize()
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		p0, ok0 := projectPoint(mvp, x, y, width, height, positions[i0])
		p1, ok1 := projectPoint(mvp, x, y, width, height, positions[i1])
		p2, ok2 := projectPoint(mvp, x, y, width, height, positions[i2])
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		var n0, n1, n2 math3d.Vec3
		if int(i0) < len(normals) {
			n0 = normals[i0]
		}
		if int(i1) < len(normals) {
			n1 = normals[i1]
		}
		if int(i2) < len(normals) {
			n2 = normals[i2]
		}
		l0 := diffuseTerm(n0, lightDir)
		l1 := diffuseTerm(n1, lightDir)
		l2 := diffuseTerm(n2, lightDir)

		var uv0, uv1, uv2 math3d.Vec2
		if int(i0) < len(uvs) {
			uv0 = uvs[i0]
		}
		if int(i1) < len(uvs) {
			uv1 = uvs[i1]
		}
		if int(i2) < len(uvs) {
			uv2 = uvs[i2]
		}

		fillTriangle(rt, x, y, width, height, p0, p1, p2, func(bx, by, bz float64) (Vec4f, float64, bool) {
			lit := bx*l0 + by*l1 + bz*l2
			depth := bx*p0.Z + by*p1.Z + bz*p2.Z
			u := bx*uv0.X + by*uv1.X + bz*uv2.X
			v := bx*uv0.Y + by*uv1.Y + bz*uv2.Y
			color := tex.Sample(u, v).Scale(float32(lit))
			return color, depth, true
		})
	}
}
