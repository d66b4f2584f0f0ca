package render

import (
	"github.com/rastalab/rasta/pkg/fixed"
	"github.com/rastalab/rasta/pkg/math3d"
)

// half is the fixed-point constant 0.5, used throughout the edge-setup
// arithmetic (the -1/2 in the edge constant term, and the half-pixel
// sample-point offset).
var half = fixed.FromFloat(0.5)

// Rasterizer is the rasterization core: transform state (model-view,
// projection, viewport), triangle submission, the edge-function
// rasterizer with its top-left fill rule, depth interpolation, and
// frame-buffer update.
//
// It has no hidden state machine: every setter is idempotent, and
// Clear and DrawTriangle (directly or via DrawTriangles) are the only
// operations that write to the render target.
type Rasterizer struct {
	modelView  math3d.Mat4
	projection math3d.Mat4
	mvp        math3d.Mat4 // always projection * modelView

	viewport viewportState
	target   *RenderTarget
}

// NewRasterizer creates a rasterizer writing into target, with an
// identity model-view and projection and a viewport covering the
// whole target.
func NewRasterizer(target *RenderTarget) *Rasterizer {
	r := &Rasterizer{
		modelView:  math3d.Identity(),
		projection: math3d.Identity(),
		mvp:        math3d.Identity(),
		target:     target,
	}
	r.SetViewport(0, 0, target.Width(), target.Height())
	return r
}

// Clear fills the back buffer with rgba and the z-buffer with 1.0
// ("far").
func (r *Rasterizer) Clear(rgba Vec4f) {
	r.target.Color.Clear(rgba)
	r.target.Depth.Clear(1.0)
}

// SetModelView stores the model-view matrix and recomputes the
// cached model-view-projection matrix.
func (r *Rasterizer) SetModelView(m math3d.Mat4) {
	r.modelView = m
	r.recomputeMVP()
}

// SetProjection stores the projection matrix and recomputes the
// cached model-view-projection matrix.
func (r *Rasterizer) SetProjection(m math3d.Mat4) {
	r.projection = m
	r.recomputeMVP()
}

func (r *Rasterizer) recomputeMVP() {
	r.mvp = r.projection.Mul(r.modelView)
}

// SetViewport sets the integer screen-space box triangles are
// rasterized into, and the NDC-to-screen scale/bias derived from it.
// Panics if width or height is non-positive.
func (r *Rasterizer) SetViewport(x, y, width, height int) {
	r.viewport = newViewportState(x, y, width, height)
}

// SetRenderTarget swaps the output target.
func (r *Rasterizer) SetRenderTarget(rt *RenderTarget) {
	r.target = rt
}

// DrawTriangles fetches three Vec3 vertices for every consecutive
// index triple and draws each as one triangle.
func (r *Rasterizer) DrawTriangles(vertices []math3d.Vec3, indices []int32) {
	for i := 0; i+2 < len(indices); i += 3 {
		v0 := vertices[indices[i]]
		v1 := vertices[indices[i+1]]
		v2 := vertices[indices[i+2]]
		r.DrawTriangle(v0, v1, v2)
	}
}

// DrawTriangle is the pipeline entry point for a single triangle,
// given in object space. It runs the full spec pipeline: flat-normal
// shading color, MVP transform, homogeneous divide, viewport mapping,
// and edge-function rasterization with depth test.
func (r *Rasterizer) DrawTriangle(v0, v1, v2 math3d.Vec3) {
	// Flat-shading normal, computed in object space before any
	// transform, remapped from [-1,1] to [0,1].
	n := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	color := Vec4f{
		R: float32(n.X*0.5 + 0.5),
		G: float32(n.Y*0.5 + 0.5),
		B: float32(n.Z*0.5 + 0.5),
		A: 1,
	}

	// Vertex transform + homogeneous divide.
	clip := [3]math3d.Vec4{
		r.mvp.MulVec4(math3d.V4FromV3(v0, 1)),
		r.mvp.MulVec4(math3d.V4FromV3(v1, 1)),
		r.mvp.MulVec4(math3d.V4FromV3(v2, 1)),
	}

	var ndc [3]math3d.Vec3
	for i := range clip {
		w := clip[i].W
		if w == 0 {
			// clip.w == 0 is undefined-but-safe: skip rather than
			// divide by zero and propagate NaN/Inf into the buffers.
			return
		}
		ndc[i] = math3d.V3(clip[i].X/w, clip[i].Y/w, clip[i].Z/w)
	}

	// Viewport transform to floating-point screen coordinates.
	var screenF [3]math3d.Vec3
	for i := range ndc {
		screenF[i] = math3d.V3(
			ndc[i].X*r.viewport.scale.X+r.viewport.bias.X,
			ndc[i].Y*r.viewport.scale.Y+r.viewport.bias.Y,
			ndc[i].Z*r.viewport.scale.Z+r.viewport.bias.Z,
		)
	}

	// Promote screen xy to fixed point for the coverage test; z stays
	// float for the depth plane. Non-finite or out-of-range input is
	// undefined-but-safe: skip the triangle rather than risk an
	// out-of-bounds write from a garbage coordinate.
	var sx, sy [3]fixed.Scalar
	for i := range screenF {
		x, ok := fixed.FromFloatChecked(screenF[i].X)
		if !ok {
			return
		}
		y, ok := fixed.FromFloatChecked(screenF[i].Y)
		if !ok {
			return
		}
		sx[i], sy[i] = x, y
	}

	r.rasterize(sx, sy, [3]float64{screenF[0].Z, screenF[1].Z, screenF[2].Z}, color)
}

// edge holds the linear coefficients of one directed edge function
// E(p) = A*p.x + B*p.y + C, plus whether that edge is classified
// top-left for the fill rule.
type edge struct {
	a, b, c fixed.Scalar
	topLeft bool
}

// canonicalEdge computes the coefficients for the directed edge
// va->vb: A = vb.y-va.y, B = va.x-vb.x, C = -(A*(va.x+vb.x) +
// B*(va.y+vb.y))/2. To guarantee that two triangles sharing this edge
// (which necessarily request it in opposite directions) produce
// bit-exact negated values, the two endpoints are first sorted into a
// canonical, argument-order-independent order; the result is negated
// if that required swapping the caller's order. This is what makes
// shared edges watertight: eBA(p) == -eAB(p) exactly, for any p.
func canonicalEdge(vax, vay, vbx, vby fixed.Scalar) (a, b, c fixed.Scalar) {
	px, py, qx, qy := vax, vay, vbx, vby
	swapped := false
	if lexicographicLess(vbx, vby, vax, vay) {
		px, py, qx, qy = vbx, vby, vax, vay
		swapped = true
	}

	a = qy.Sub(py)
	b = px.Sub(qx)
	sumX := px.Add(qx)
	sumY := py.Add(qy)
	c = a.Mul(sumX).Add(b.Mul(sumY)).Mul(half).Neg()

	if swapped {
		a, b, c = a.Neg(), b.Neg(), c.Neg()
	}
	return a, b, c
}

func lexicographicLess(ax, ay, bx, by fixed.Scalar) bool {
	if ax != bx {
		return ax < bx
	}
	return ay < by
}

// isTopLeft classifies the directed edge va->vb per the top-left
// fill rule: horizontal edges going right-to-left, or any edge going
// downward in screen space, are top-left and use an inclusive (>=)
// coverage test; all others use a strict (>) test.
func isTopLeft(vax, vay, vbx, vby fixed.Scalar) bool {
	if vay == vby {
		return vax > vbx
	}
	return vay < vby
}

// rasterize walks the screen-space bounding box of (sx,sy), applying
// back-face culling, the edge-function coverage test with the
// top-left fill rule, depth interpolation, and the depth test/write.
// z holds the three vertices' window-space depth (float, per spec).
func (r *Rasterizer) rasterize(sx, sy [3]fixed.Scalar, z [3]float64, color Vec4f) {
	// Bounding box, intersected with the viewport rectangle.
	minX := min3int(sx[0].Floor(), sx[1].Floor(), sx[2].Floor())
	maxX := max3int(sx[0].Ceil(), sx[1].Ceil(), sx[2].Ceil())
	minY := min3int(sy[0].Floor(), sy[1].Floor(), sy[2].Floor())
	maxY := max3int(sy[0].Ceil(), sy[1].Ceil(), sy[2].Ceil())

	if minX < r.viewport.minX {
		minX = r.viewport.minX
	}
	if minY < r.viewport.minY {
		minY = r.viewport.minY
	}
	if maxX > r.viewport.maxX {
		maxX = r.viewport.maxX
	}
	if maxY > r.viewport.maxY {
		maxY = r.viewport.maxY
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Edge 0: v0->v1 (opposite v2). Edge 1: v1->v2 (opposite v0).
	// Edge 2: v2->v0 (opposite v1).
	var e0, e1, e2 edge
	e0.a, e0.b, e0.c = canonicalEdge(sx[0], sy[0], sx[1], sy[1])
	e1.a, e1.b, e1.c = canonicalEdge(sx[1], sy[1], sx[2], sy[2])
	e2.a, e2.b, e2.c = canonicalEdge(sx[2], sy[2], sx[0], sy[0])
	edges := [3]edge{
		{e0.a, e0.b, e0.c, isTopLeft(sx[0], sy[0], sx[1], sy[1])},
		{e1.a, e1.b, e1.c, isTopLeft(sx[1], sy[1], sx[2], sy[2])},
		{e2.a, e2.b, e2.c, isTopLeft(sx[2], sy[2], sx[0], sy[0])},
	}

	// Back-face / zero-area cull: the three (pre-offset) edge
	// constants sum to 2A.
	doubleArea := edges[0].c.Add(edges[1].c).Add(edges[2].c)
	if doubleArea <= 0 {
		return
	}
	doubleAreaF := doubleArea.Float()

	// Depth plane coefficients, in floating point, from the
	// pre-offset edge coefficients. Edge 1 (opposite v0) carries v0's
	// barycentric weight, edge 2 (opposite v1) carries v1's, edge 0
	// (opposite v2) carries v2's.
	az := (z[0]*edges[1].a.Float() + z[1]*edges[2].a.Float() + z[2]*edges[0].a.Float()) / doubleAreaF
	bz := (z[0]*edges[1].b.Float() + z[1]*edges[2].b.Float() + z[2]*edges[0].b.Float()) / doubleAreaF
	cz := (z[0]*edges[1].c.Float() + z[1]*edges[2].c.Float() + z[2]*edges[0].c.Float()) / doubleAreaF

	// Half-pixel offset: evaluating the (now sign-correct) coverage
	// edges at integer (x,y) with this offset baked into C is
	// equivalent to evaluating the continuous edge function at the
	// pixel center (x+0.5, y+0.5).
	for i := range edges {
		edges[i].c = edges[i].c.Add(edges[i].a.Add(edges[i].b).Mul(half))
	}

	// Per-edge fill-rule bias: top-left edges use E >= 0, others use
	// E > 0 (implemented as E >= epsilon).
	var bias [3]fixed.Scalar
	for i, e := range edges {
		if !e.topLeft {
			bias[i] = fixed.Epsilon
		}
	}

	color32 := color
	depth := r.target.Depth
	back := r.target.Color

	rowE0 := edges[0].a.Mul(fixed.FromInt(minX)).Add(edges[0].b.Mul(fixed.FromInt(minY))).Add(edges[0].c)
	rowE1 := edges[1].a.Mul(fixed.FromInt(minX)).Add(edges[1].b.Mul(fixed.FromInt(minY))).Add(edges[1].c)
	rowE2 := edges[2].a.Mul(fixed.FromInt(minX)).Add(edges[2].b.Mul(fixed.FromInt(minY))).Add(edges[2].c)

	for y := minY; y <= maxY; y++ {
		cx0, cx1, cx2 := rowE0, rowE1, rowE2
		zRow := az*float64(minX) + bz*float64(y) + cz

		for x := minX; x <= maxX; x++ {
			if cx0 >= bias[0] && cx1 >= bias[1] && cx2 >= bias[2] {
				zVal := zRow
				if zVal < float64(depth.Get(x, y)) && zVal >= 0 && zVal <= 1 {
					depth.Set(x, y, float32(zVal))
					back.Set(x, y, color32)
				}
			}
			cx0 = cx0.Add(edges[0].a)
			cx1 = cx1.Add(edges[1].a)
			cx2 = cx2.Add(edges[2].a)
			zRow += az
		}

		rowE0 = rowE0.Add(edges[0].b)
		rowE1 = rowE1.Add(edges[1].b)
		rowE2 = rowE2.Add(edges[2].b)
	}
}

func min3int(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3int(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
