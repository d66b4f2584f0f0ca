package render

import "github.com/rastalab/rasta/pkg/math3d"

// RendererInterface is the narrow contract the rasterization core
// presents to external callers, so the same scene can be driven
// through either the fixed-point software core (Rasterizer) or a
// reference implementation (see pkg/render/refraster) without the
// caller knowing which. No heterogeneous collection of renderers is
// required, so a plain interface is sufficient — no tagged-variant
// dispatch needed.
type RendererInterface interface {
	// Clear fills the back buffer with rgba and the z-buffer with 1.0.
	Clear(rgba Vec4f)

	// SetModelView stores the model-view matrix and recomputes the
	// cached model-view-projection matrix.
	SetModelView(m math3d.Mat4)

	// SetProjection stores the projection matrix and recomputes the
	// cached model-view-projection matrix.
	SetProjection(m math3d.Mat4)

	// SetViewport sets the integer screen-space box triangles are
	// rasterized into. width and height must be >= 1.
	SetViewport(x, y, width, height int)

	// DrawTriangles fetches three Vec3 vertices for every consecutive
	// index triple and draws each as one triangle. len(indices) must
	// be a multiple of 3.
	DrawTriangles(vertices []math3d.Vec3, indices []int32)
}
