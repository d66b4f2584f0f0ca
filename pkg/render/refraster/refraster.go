// Package refraster is a second, independent RendererInterface
// implementation: plain float64 arithmetic, a strict (non-watertight)
// inside test, no top-left fill rule and no canonical edge ordering.
// It exists only so tests can check properties spec.md treats as
// tolerant of fill-rule differences (back-face rejection, depth
// ordering, bounding-box containment) against a pipeline that was
// never tuned to agree bit-for-bit with the fixed-point core. It is
// grounded in the reference engine's original barycentric rasterizer,
// the variant the core's own design notes call out as worth keeping
// around as a debugging reference.
package refraster

import (
	"math"

	"github.com/rastalab/rasta/pkg/math3d"
	"github.com/rastalab/rasta/pkg/render"
)

var _ render.RendererInterface = (*Rasterizer)(nil)

// Rasterizer is the float reference implementation of
// render.RendererInterface.
type Rasterizer struct {
	modelView, projection, mvp math3d.Mat4
	vx, vy, vw, vh             int
	target                     *render.RenderTarget
}

// New creates a reference rasterizer targeting rt, with a viewport
// initially covering the whole target.
func New(target *render.RenderTarget) *Rasterizer {
	r := &Rasterizer{target: target, modelView: math3d.Identity(), projection: math3d.Identity()}
	r.mvp = math3d.Identity()
	r.SetViewport(0, 0, target.Width(), target.Height())
	return r
}

func (r *Rasterizer) Clear(rgba render.Vec4f) {
	r.target.Color.Clear(rgba)
	r.target.Depth.Clear(1.0)
}

func (r *Rasterizer) SetModelView(m math3d.Mat4) {
	r.modelView = m
	r.mvp = r.projection.Mul(r.modelView)
}

func (r *Rasterizer) SetProjection(m math3d.Mat4) {
	r.projection = m
	r.mvp = r.projection.Mul(r.modelView)
}

func (r *Rasterizer) SetViewport(x, y, width, height int) {
	if width <= 0 || height <= 0 {
		panic("refraster: viewport width and height must be positive")
	}
	r.vx, r.vy, r.vw, r.vh = x, y, width, height
}

func (r *Rasterizer) DrawTriangles(vertices []math3d.Vec3, indices []int32) {
	for i := 0; i+2 < len(indices); i += 3 {
		r.drawTriangle(vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]])
	}
}

// color is fixed per triangle from its face normal, mirroring the
// core's flat-shaded DrawTriangle so the two pipelines are comparable
// on more than just coverage.
func (r *Rasterizer) drawTriangle(v0, v1, v2 math3d.Vec3) {
	normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	color := render.RGB(
		float32(normal.X*0.5+0.5),
		float32(normal.Y*0.5+0.5),
		float32(normal.Z*0.5+0.5),
	)

	w, h := float64(r.vw), float64(r.vh)
	project := func(v math3d.Vec3) (math3d.Vec3, bool) {
		clip := r.mvp.MulVec4(math3d.V4FromV3(v, 1))
		if clip.W == 0 {
			return math3d.Vec3{}, false
		}
		ndc := clip.PerspectiveDivide()
		sx := ndc.X*(w/2) + (w/2 + float64(r.vx))
		sy := ndc.Y*(-h/2) + (h/2 + float64(r.vy))
		sz := ndc.Z*0.5 + 0.5
		return math3d.V3(sx, sy, sz), true
	}

	p0, ok0 := project(v0)
	p1, ok1 := project(v1)
	p2, ok2 := project(v2)
	if !ok0 || !ok1 || !ok2 {
		return
	}

	area := edgeFn(p0, p1, p2)
	if area <= 0 {
		return // back-facing or degenerate
	}

	minX := clampInt(int(math.Floor(minOf3(p0.X, p1.X, p2.X))), r.vx, r.vx+r.vw-1)
	maxX := clampInt(int(math.Ceil(maxOf3(p0.X, p1.X, p2.X))), r.vx, r.vx+r.vw-1)
	minY := clampInt(int(math.Floor(minOf3(p0.Y, p1.Y, p2.Y))), r.vy, r.vy+r.vh-1)
	maxY := clampInt(int(math.Ceil(maxOf3(p0.Y, p1.Y, p2.Y))), r.vy, r.vy+r.vh-1)

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			p := math3d.V3(float64(px)+0.5, float64(py)+0.5, 0)
			w0 := edgeFn(p1, p2, p)
			w1 := edgeFn(p2, p0, p)
			w2 := edgeFn(p0, p1, p)
			// Strict interior test: no top-left tie-break, so this
			// pipeline is deliberately not watertight on shared edges.
			if w0 <= 0 || w1 <= 0 || w2 <= 0 {
				continue
			}
			b0, b1, b2 := w0/area, w1/area, w2/area
			depth := b0*p0.Z + b1*p1.Z + b2*p2.Z
			if depth < 0 || depth > 1 {
				continue
			}
			if depth < float64(r.target.Depth.Get(px, py)) {
				r.target.Depth.Set(px, py, float32(depth))
				r.target.Color.Set(px, py, color)
			}
		}
	}
}

func edgeFn(a, b, c math3d.Vec3) float64 {
	return (c.X-a.X)*(b.Y-a.Y) - (c.Y-a.Y)*(b.X-a.X)
}

func minOf3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func maxOf3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
