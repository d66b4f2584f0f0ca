package render

import "github.com/rastalab/rasta/pkg/math3d"

// DrawMeshWireframe draws every triangle edge of a (positions, indices)
// mesh as a line, ignoring depth and fill entirely. It is the "X-ray"
// toggle cmd/rasta offers alongside shaded rendering, and like the
// other caller helpers in this package it is independent of the core's
// fixed-point Rasterizer: it only reads RenderTarget.Color through the
// public Surface API.
func DrawMeshWireframe(rt *RenderTarget, mvp math3d.Mat4, x, y, width, height int, positions []math3d.Vec3, indices []int32, color Vec4f) {
	for i := 0; i+2 < len(indices); i += 3 {
		p0, ok0 := projectPoint(mvp, x, y, width, height, positions[indices[i]])
		p1, ok1 := projectPoint(mvp, x, y, width, height, positions[indices[i+1]])
		p2, ok2 := projectPoint(mvp, x, y, width, height, positions[indices[i+2]])
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		drawLine(rt.Color, x, y, width, height, p0, p1, color)
		drawLine(rt.Color, x, y, width, height, p1, p2, color)
		drawLine(rt.Color, x, y, width, height, p2, p0, color)
	}
}

// drawLine plots a in-viewport Bresenham line between two already
// projected screen-space points.
func drawLine(surf *Surface[Vec4f], vx, vy, vw, vh int, a, b math3d.Vec3, color Vec4f) {
	x0, y0 := int(a.X), int(a.Y)
	x1, y1 := int(b.X), int(b.Y)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if x0 >= vx && x0 < vx+vw && y0 >= vy && y0 < vy+vh {
			surf.Set(x0, y0, color)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
