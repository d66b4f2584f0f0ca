package refraster

import (
	"testing"

	"github.com/rastalab/rasta/pkg/math3d"
	"github.com/rastalab/rasta/pkg/render"
)

func TestFullscreenTriangleCoversViewport(t *testing.T) {
	rt := render.NewRenderTarget(4, 4)
	r := New(rt)
	clear := render.RGBA(0, 0, 0, 0)
	r.Clear(clear)

	r.DrawTriangles(
		[]math3d.Vec3{{X: -10, Y: 10, Z: 0}, {X: -10, Y: -30, Z: 0}, {X: 30, Y: 10, Z: 0}},
		[]int32{0, 1, 2},
	)

	covered := 0
	for _, c := range rt.Color.Pixels() {
		if c != clear {
			covered++
		}
	}
	if covered != 16 {
		t.Fatalf("covered pixels = %d, want 16", covered)
	}
}

func TestBackFaceTriangleIsCulled(t *testing.T) {
	rt := render.NewRenderTarget(4, 4)
	r := New(rt)
	clear := render.RGBA(0, 0, 0, 0)
	r.Clear(clear)

	r.DrawTriangles(
		[]math3d.Vec3{{X: -10, Y: 10, Z: 0}, {X: 30, Y: 10, Z: 0}, {X: -10, Y: -30, Z: 0}},
		[]int32{0, 1, 2},
	)

	for _, c := range rt.Color.Pixels() {
		if c != clear {
			t.Fatal("back face should not have been rasterized")
		}
	}
}

func TestDepthTestPicksNearerTriangle(t *testing.T) {
	rt := render.NewRenderTarget(4, 4)
	r := New(rt)
	r.Clear(render.RGBA(0, 0, 0, 0))

	r.DrawTriangles(
		[]math3d.Vec3{{X: -10, Y: 10, Z: 0.5}, {X: -10, Y: -30, Z: 0.5}, {X: 30, Y: 10, Z: 0.5}},
		[]int32{0, 1, 2},
	)
	r.DrawTriangles(
		[]math3d.Vec3{{X: -10, Y: 10, Z: -0.5}, {X: -10, Y: -30, Z: -0.5}, {X: 30, Y: 10, Z: -0.5}},
		[]int32{0, 1, 2},
	)

	if got := rt.Depth.Get(1, 1); got != 0.25 {
		t.Fatalf("depth = %v, want 0.25 (nearer triangle should win)", got)
	}
}
