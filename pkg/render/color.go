package render

// Vec4f is a 4-channel float color (or any other 4-component pixel
// payload) in linear [0,1] range — the color Surface's component type.
type Vec4f struct {
	R, G, B, A float32
}

// RGBA constructs a Vec4f from individual channels.
func RGBA(r, g, b, a float32) Vec4f {
	return Vec4f{r, g, b, a}
}

// RGB constructs an opaque Vec4f.
func RGB(r, g, b float32) Vec4f {
	return Vec4f{r, g, b, 1}
}

// Scale returns c with each channel multiplied by s (alpha untouched),
// used by the Gouraud/lighting callers.
func (c Vec4f) Scale(s float32) Vec4f {
	return Vec4f{c.R * s, c.G * s, c.B * s, c.A}
}

// Lerp linearly interpolates between c and other by t in [0,1].
func (c Vec4f) Lerp(other Vec4f, t float32) Vec4f {
	return Vec4f{
		c.R + (other.R-c.R)*t,
		c.G + (other.G-c.G)*t,
		c.B + (other.B-c.B)*t,
		c.A + (other.A-c.A)*t,
	}
}

// Modulate returns the component-wise product of c and other (texture
// color times vertex color).
func (c Vec4f) Modulate(other Vec4f) Vec4f {
	return Vec4f{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}
