package render

import (
	"math"

	"github.com/rastalab/rasta/pkg/math3d"
)

// DrawMeshGouraud rasterizes a (positions, normals, indices) mesh with
// simple per-vertex Lambertian shading, depth-testing against the
// RenderTarget's existing depth Surface so it composites correctly
// with triangles already drawn through the core Rasterizer. Like the
// other pkg/render caller helpers, this is a second, independent
// float/barycentric rasterization loop built only on the public
// Surface/RenderTarget API — see pkg/render/refraster for the same
// approach applied to differential testing.
func DrawMeshGouraud(rt *RenderTarget, mvp math3d.Mat4, x, y, width, height int, positions, normals []math3d.Vec3, indices []int32, baseColor Vec4f, lightDir math3d.Vec3) {
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

		fillTriangle(rt, x, y, width, height, p0, p1, p2, func(bx, by, bz float64) (Vec4f, float64, bool) {
			lit := bx*l0 + by*l1 + bz*l2
			depth := bx*p0.Z + by*p1.Z + bz*p2.Z
			return baseColor.Scale(float32(lit)), depth, true
		})
	}
}

func diffuseTerm(n, lightDir math3d.Vec3) float64 {
	d := n.Normalize().Dot(lightDir)
	if d < 0.1 {
		d = 0.1 // small ambient term so unlit faces aren't pure black
	}
	return d
}

// fillTriangle walks the bounding box of three projected screen-space
// points, evaluating barycentric weights per pixel and calling shade
// for every pixel whose weights are all non-negative (inside the
// triangle, no fill-rule tie-breaking — acceptable for a non-core,
// non-watertight helper). shade returns the pixel color, the
// interpolated depth, and whether the pixel should be written at all.
func fillTriangle(rt *RenderTarget, vx, vy, vw, vh int, p0, p1, p2 math3d.Vec3, shade func(b0, b1, b2 float64) (Vec4f, float64, bool)) {
	area := edgeFn(p0, p1, p2)
	if area <= 0 {
		return // back-facing or degenerate, matching the core's winding convention
	}

	minX := int(math.Floor(math.Min(p0.X, math.Min(p1.X, p2.X))))
	maxX := int(math.Ceil(math.Max(p0.X, math.Max(p1.X, p2.X))))
	minY := int(math.Floor(math.Min(p0.Y, math.Min(p1.Y, p2.Y))))
	maxY := int(math.Ceil(math.Max(p0.Y, math.Max(p1.Y, p2.Y))))

	minX = clampInt(minX, vx, vx+vw-1)
	maxX = clampInt(maxX, vx, vx+vw-1)
	minY = clampInt(minY, vy, vy+vh-1)
	maxY = clampInt(maxY, vy, vy+vh-1)

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			p := math3d.V3(float64(px)+0.5, float64(py)+0.5, 0)
			w0 := edgeFn(p1, p2, p)
			w1 := edgeFn(p2, p0, p)
			w2 := edgeFn(p0, p1, p)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			b0, b1, b2 := w0/area, w1/area, w2/area
			color, depth, ok := shade(b0, b1, b2)
			if !ok || depth < 0 || depth > 1 {
				continue
			}
			if depth < float64(rt.Depth.Get(px, py)) {
				rt.Depth.Set(px, py, float32(depth))
				rt.Color.Set(px, py, color)
			}
		}
	}
}

// edgeFn returns twice the signed area of triangle (a, b, c); positive
// when a, b, c wind counter-clockwise in screen space, matching the
// core Rasterizer's own convention.
func edgeFn(a, b, c math3d.Vec3) float64 {
	return (c.X-a.X)*(b.Y-a.Y) - (c.Y-a.Y)*(b.X-a.X)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
