package render

import (
	"testing"

	"github.com/rastalab/rasta/pkg/fixed"
	"github.com/rastalab/rasta/pkg/math3d"
)

func newTestRasterizer(w, h int) (*Rasterizer, *RenderTarget) {
	rt := NewRenderTarget(w, h)
	r := NewRasterizer(rt)
	return r, rt
}

func countCovered(rt *RenderTarget, clear Vec4f) int {
	n := 0
	for _, c := range rt.Color.Pixels() {
		if c != clear {
			n++
		}
	}
	return n
}

// Scenario 1: a single triangle whose screen-space footprint fully
// covers a 4x4 viewport is expected to light every pixel, with depth
// uniformly at the window-space value its (constant) z maps to.
func TestFullscreenTriangleCoversViewport(t *testing.T) {
	r, rt := newTestRasterizer(4, 4)
	r.SetViewport(0, 0, 4, 4)
	clear := RGBA(0, 0, 0, 0)
	r.Clear(clear)

	sx := [3]fixed.Scalar{fixed.FromInt(0), fixed.FromInt(8), fixed.FromInt(0)}
	sy := [3]fixed.Scalar{fixed.FromInt(4), fixed.FromInt(4), fixed.FromInt(-4)}
	z := [3]float64{0.5, 0.5, 0.5}
	r.rasterize(sx, sy, z, RGB(1, 1, 1))

	if got := countCovered(rt, clear); got != 16 {
		t.Fatalf("covered pixels = %d, want 16", got)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if d := rt.Depth.Get(x, y); d != 0.5 {
				t.Fatalf("depth(%d,%d) = %v, want 0.5", x, y, d)
			}
			if c := rt.Color.Get(x, y); c == clear {
				t.Fatalf("color(%d,%d) unset", x, y)
			}
		}
	}
}

// Scenario 2: reversing the winding of the same triangle makes it a
// back face; it must not touch the buffers at all.
func TestBackFaceTriangleIsCulled(t *testing.T) {
	r, rt := newTestRasterizer(4, 4)
	r.SetViewport(0, 0, 4, 4)
	clear := RGBA(0, 0, 0, 0)
	r.Clear(clear)

	// Same three points, reversed order (0,1,2 -> 0,2,1).
	sx := [3]fixed.Scalar{fixed.FromInt(0), fixed.FromInt(0), fixed.FromInt(8)}
	sy := [3]fixed.Scalar{fixed.FromInt(4), fixed.FromInt(-4), fixed.FromInt(4)}
	z := [3]float64{0.5, 0.5, 0.5}
	r.rasterize(sx, sy, z, RGB(1, 1, 1))

	if got := countCovered(rt, clear); got != 0 {
		t.Fatalf("covered pixels = %d, want 0 (back face)", got)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if d := rt.Depth.Get(x, y); d != 1.0 {
				t.Fatalf("depth(%d,%d) = %v, want 1.0 (untouched)", x, y, d)
			}
		}
	}
}

// Scenario 3: two triangles sharing a diagonal, together spanning the
// whole viewport, must produce full coverage with no gaps — the
// observable signature of a watertight shared edge.
func TestSharedEdgeQuadIsWatertight(t *testing.T) {
	r, rt := newTestRasterizer(8, 8)
	r.SetViewport(0, 0, 8, 8)
	clear := RGBA(0, 0, 0, 0)
	r.Clear(clear)

	a := math3d.V3(-1, 1, 0)
	b := math3d.V3(1, 1, 0)
	c := math3d.V3(1, -1, 0)
	d := math3d.V3(-1, -1, 0)

	// Both CCW; the diagonal A-C is walked in opposite directions by
	// the two triangles (C->A in the first, A->C in the second).
	r.DrawTriangle(a, d, c)
	r.DrawTriangle(a, c, b)

	if got := countCovered(rt, clear); got != 64 {
		t.Fatalf("covered pixels = %d, want 64 (8x8, full coverage)", got)
	}
}

// Scenario 4: of two overlapping triangles at different depths, the
// nearer one always wins the overlap region regardless of submission
// order.
func TestDepthTestIsOrderIndependent(t *testing.T) {
	run := func(drawFarFirst bool) (color Vec4f, depth float32) {
		r, rt := newTestRasterizer(4, 4)
		r.SetViewport(0, 0, 4, 4)
		r.Clear(RGBA(0, 0, 0, 0))

		// A full-viewport triangle at window z=0.75 ("far") and one at
		// window z=0.25 ("near"); window z = ndc.z*0.5+0.5, so ndc.z is
		// 0.5 and -0.5 respectively.
		nearTri := func() { r.DrawTriangle(math3d.V3(-1, 1, -0.5), math3d.V3(-1, -3, -0.5), math3d.V3(3, 1, -0.5)) }
		farTri := func() { r.DrawTriangle(math3d.V3(-1, 1, 0.5), math3d.V3(-1, -3, 0.5), math3d.V3(3, 1, 0.5)) }

		if drawFarFirst {
			farTri()
			nearTri()
		} else {
			nearTri()
			farTri()
		}
		return rt.Color.Get(1, 1), rt.Depth.Get(1, 1)
	}

	colorFarFirst, depthFarFirst := run(true)
	colorNearFirst, depthNearFirst := run(false)

	const wantDepth = float32(0.25)
	if depthFarFirst != wantDepth {
		t.Fatalf("far-then-near: depth = %v, want %v", depthFarFirst, wantDepth)
	}
	if depthNearFirst != wantDepth {
		t.Fatalf("near-then-far: depth = %v, want %v", depthNearFirst, wantDepth)
	}
	if colorFarFirst != colorNearFirst {
		t.Fatalf("submission order changed the resolved color: %+v vs %+v", colorFarFirst, colorNearFirst)
	}
}

// Scenario 5: a triangle entirely outside the [0,1] window-depth range
// must leave the buffers exactly as cleared.
func TestOutOfRangeDepthIsDiscarded(t *testing.T) {
	r, rt := newTestRasterizer(4, 4)
	r.SetViewport(0, 0, 4, 4)
	clear := RGBA(0, 0, 0, 0)
	r.Clear(clear)

	// ndc.z = 2.0 -> window z = 1.5, outside [0,1].
	r.DrawTriangle(math3d.V3(-1, 1, 2), math3d.V3(-1, -3, 2), math3d.V3(3, 1, 2))

	if got := countCovered(rt, clear); got != 0 {
		t.Fatalf("covered pixels = %d, want 0 (depth out of range)", got)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if d := rt.Depth.Get(x, y); d != 1.0 {
				t.Fatalf("depth(%d,%d) = %v, want 1.0 (untouched)", x, y, d)
			}
		}
	}
}

// Scenario 6: every emitted fragment must lie within the viewport
// rectangle, even when the triangle's own bounding box extends well
// past it.
func TestViewportClipsBoundingBox(t *testing.T) {
	r, rt := newTestRasterizer(4, 4)
	r.SetViewport(0, 0, 4, 4)
	clear := RGBA(0, 0, 0, 0)
	r.Clear(clear)

	sx := [3]fixed.Scalar{fixed.FromInt(-2), fixed.FromInt(2), fixed.FromInt(2)}
	sy := [3]fixed.Scalar{fixed.FromInt(2), fixed.FromInt(6), fixed.FromInt(-2)}
	z := [3]float64{0.5, 0.5, 0.5}
	r.rasterize(sx, sy, z, RGB(1, 1, 1))

	for y := 0; y < rt.Height(); y++ {
		for x := 0; x < rt.Width(); x++ {
			covered := rt.Color.Get(x, y) != clear
			inBounds := x >= 0 && x <= 3 && y >= 0 && y <= 3
			if covered && !inBounds {
				t.Fatalf("fragment at (%d,%d) lies outside the viewport box", x, y)
			}
		}
	}
}

func TestMVPInvariantAfterSetters(t *testing.T) {
	r, _ := newTestRasterizer(4, 4)
	mv := math3d.Translate(math3d.V3(1, 2, 3))
	proj := math3d.Perspective(1.0, 1.0, 0.1, 100)

	r.SetModelView(mv)
	r.SetProjection(proj)
	want := proj.Mul(mv)
	if r.mvp != want {
		t.Fatalf("mvp after SetProjection = %+v, want %+v", r.mvp, want)
	}

	mv2 := math3d.RotateY(0.4)
	r.SetModelView(mv2)
	want = proj.Mul(mv2)
	if r.mvp != want {
		t.Fatalf("mvp after second SetModelView = %+v, want %+v", r.mvp, want)
	}
}

func TestClearResetsColorAndDepth(t *testing.T) {
	r, rt := newTestRasterizer(2, 2)
	rt.Color.Set(0, 0, RGB(1, 0, 0))
	rt.Depth.Set(0, 0, 0.1)

	r.Clear(RGB(0, 1, 0))

	for _, c := range rt.Color.Pixels() {
		if c != RGB(0, 1, 0) {
			t.Fatalf("color not cleared: %+v", c)
		}
	}
	for _, d := range rt.Depth.Pixels() {
		if d != 1.0 {
			t.Fatalf("depth not cleared: %v", d)
		}
	}
}
