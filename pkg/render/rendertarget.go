package render

// RenderTarget pairs a color Surface (Vec4f) and a depth Surface
// (float32) that must share dimensions. This mirrors the reference
// RenderTarget, which asserts the same invariant at construction.
type RenderTarget struct {
	Color *Surface[Vec4f]
	Depth *Surface[float32]
}

// NewRenderTarget allocates a fresh color+depth pair at width x
// height. Panics on non-positive dimensions (via Surface's own
// panic).
func NewRenderTarget(width, height int) *RenderTarget {
	return &RenderTarget{
		Color: NewSurface[Vec4f](width, height),
		Depth: NewSurface[float32](width, height),
	}
}

// NewRenderTargetFromSurfaces pairs two existing surfaces. Panics if
// their dimensions don't match — mismatched surface sizes are a
// programmer error, not a recoverable condition.
func NewRenderTargetFromSurfaces(color *Surface[Vec4f], depth *Surface[float32]) *RenderTarget {
	if color.Width() != depth.Width() || color.Height() != depth.Height() {
		panic("render: color and depth surfaces must share dimensions")
	}
	return &RenderTarget{Color: color, Depth: depth}
}

// Width returns the shared surface width.
func (rt *RenderTarget) Width() int { return rt.Color.Width() }

// Height returns the shared surface height.
func (rt *RenderTarget) Height() int { return rt.Color.Height() }
