package render

import "github.com/rastalab/rasta/pkg/math3d"

// projectPoint runs a point through the clip -> NDC -> screen pipeline,
// the same transform DrawTriangle performs, for callers that need their
// own rasterization loop (Gouraud, textured, wireframe) on top of the
// public RendererInterface contract rather than the fixed-point core.
// ok is false for the same "undefined but safe" cases DrawTriangle
// skips: w == 0 or a non-finite result.
func projectPoint(mvp math3d.Mat4, x, y, width, height int, v math3d.Vec3) (screen math3d.Vec3, ok bool) {
	clip := mvp.MulVec4(math3d.V4FromV3(v, 1))
	if clip.W == 0 {
		return math3d.Vec3{}, false
	}
	ndc := clip.PerspectiveDivide()

	w, h := float64(width), float64(height)
	sx := ndc.X*(w/2) + (w/2 + float64(x))
	sy := ndc.Y*(-h/2) + (h/2 + float64(y))
	sz := ndc.Z*0.5 + 0.5

	if isNonFinite(sx) || isNonFinite(sy) || isNonFinite(sz) {
		return math3d.Vec3{}, false
	}
	return math3d.V3(sx, sy, sz), true
}

func isNonFinite(f float64) bool {
	return f != f || f > 1e18 || f < -1e18
}
