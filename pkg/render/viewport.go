package render

import "github.com/rastalab/rasta/pkg/math3d"

// viewportState holds the integer screen-space box and the
// scale/bias used to map NDC coordinates into it. scale.Y is negative
// to flip Y (NDC +Y is up, screen +Y is down); Z is mapped into
// [0,1] by both scale and bias being 0.5.
type viewportState struct {
	minX, minY, maxX, maxY int // inclusive box [minX..maxX, minY..maxY]
	scale, bias            math3d.Vec3
}

// newViewportState builds the viewport state for an x,y,width,height
// box. Panics if width or height is non-positive.
func newViewportState(x, y, width, height int) viewportState {
	if width <= 0 || height <= 0 {
		panic("render: viewport width and height must be positive")
	}
	w, h := float64(width), float64(height)
	return viewportState{
		minX: x, minY: y, maxX: x + width - 1, maxY: y + height - 1,
		scale: math3d.V3(w/2, -h/2, 0.5),
		bias:  math3d.V3(w/2+float64(x), h/2+float64(y), 0.5),
	}
}
