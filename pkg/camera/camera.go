// Package camera owns position/orientation/projection state and
// produces the model-view and projection math3d.Mat4 values a
// render.RendererInterface caller hands to SetModelView/SetProjection.
// The Rasterizer core never constructs a matrix itself — it only ever
// receives ones a caller like this computed.
package camera

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/rastalab/rasta/pkg/math3d"
)

// Camera tracks eye position, yaw/pitch/roll, and the perspective
// projection parameters, recomputing its matrices lazily and only
// when something dirties them.
type Camera struct {
	position       math3d.Vec3
	yaw, pitch, roll float64

	fov, aspect, near, far float64

	view, proj, viewProj math3d.Mat4
	viewDirty, projDirty bool
	viewProjDirty        bool
}

// NewCamera creates a camera at the origin looking down -Z with a
// 60-degree vertical field of view and a 0.1-100 clip range.
func NewCamera() *Camera {
	c := &Camera{
		position: math3d.Zero3(),
		fov:      1.0471975511965976, // 60 degrees
		aspect:   1,
		near:     0.1,
		far:      100,
	}
	c.viewDirty, c.projDirty = true, true
	return c
}

func (c *Camera) SetPosition(p math3d.Vec3) { c.position = p; c.viewDirty = true }
func (c *Camera) Position() math3d.Vec3     { return c.position }

// SetRotation sets yaw/pitch/roll directly, in radians.
func (c *Camera) SetRotation(yaw, pitch, roll float64) {
	c.yaw, c.pitch, c.roll = yaw, pitch, roll
	c.viewDirty = true
}

// Rotate adds to the current yaw/pitch/roll.
func (c *Camera) Rotate(dyaw, dpitch, droll float64) {
	c.yaw += dyaw
	c.pitch += dpitch
	c.roll += droll
	c.viewDirty = true
}

func (c *Camera) SetFOV(fov float64)              { c.fov = fov; c.projDirty = true }
func (c *Camera) SetAspectRatio(aspect float64)    { c.aspect = aspect; c.projDirty = true }
func (c *Camera) SetClipPlanes(near, far float64)  { c.near, c.far = near, far; c.projDirty = true }

// LookAt points the camera from its current position at target,
// deriving yaw/pitch from the resulting forward vector (roll is left
// untouched; this is a look-at, not a full orientation assignment).
func (c *Camera) LookAt(target math3d.Vec3) {
	fwd := target.Sub(c.position).Normalize()
	c.pitch = math.Asin(fwd.Y)
	c.yaw = math.Atan2(-fwd.X, -fwd.Z)
	c.viewDirty = true
}

func (c *Camera) orientation() math3d.Mat4 {
	return math3d.RotateY(c.yaw).Mul(math3d.RotateX(c.pitch)).Mul(math3d.RotateZ(c.roll))
}

func (c *Camera) MoveForward(d float64) {
	fwd := c.orientation().MulVec3Dir(math3d.Forward())
	c.position = c.position.Add(fwd.Scale(d))
	c.viewDirty = true
}

func (c *Camera) MoveRight(d float64) {
	right := c.orientation().MulVec3Dir(math3d.Right())
	c.position = c.position.Add(right.Scale(d))
	c.viewDirty = true
}

func (c *Camera) MoveUp(d float64) {
	up := c.orientation().MulVec3Dir(math3d.Up())
	c.position = c.position.Add(up.Scale(d))
	c.viewDirty = true
}

func (c *Camera) recomputeView() {
	rot := c.orientation().Inverse()
	c.view = rot.Mul(math3d.Translate(c.position.Negate()))
	c.viewDirty = false
	c.viewProjDirty = true
}

func (c *Camera) recomputeProj() {
	c.proj = math3d.Perspective(c.fov, c.aspect, c.near, c.far)
	c.projDirty = false
	c.viewProjDirty = true
}

// ViewMatrix returns the memoized view (world-to-camera) matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.recomputeView()
	}
	return c.view
}

// ProjectionMatrix returns the memoized projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.recomputeProj()
	}
	return c.proj
}

// ViewProjectionMatrix returns projection * view, recomputed only when
// either input changed since the last call.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	view := c.ViewMatrix()
	proj := c.ProjectionMatrix()
	if c.viewProjDirty {
		c.viewProj = proj.Mul(view)
		c.viewProjDirty = false
	}
	return c.viewProj
}

// IdleSpring turns one-shot "kicks" (the teacher's "Space - Apply
// random impulse" control) into damped motion: Impulse adds to the
// velocity, and each Idle tick lets a harmonica spring carry it back
// to rest. With no impulse applied it produces no motion.
type IdleSpring struct {
	spring         harmonica.Spring
	position, velocity float64
}

// NewIdleSpring builds a critically-damped spring ticking at fps.
func NewIdleSpring(fps int) IdleSpring {
	return IdleSpring{spring: harmonica.NewSpring(harmonica.FPS(fps), 2.0, 1.0)}
}

// Idle advances the spring one tick and returns the yaw delta to apply
// this frame.
func (s *IdleSpring) Idle(dt float64) float64 {
	s.position, s.velocity = s.spring.Update(s.position, s.velocity, 0)
	return s.velocity * dt
}

// Impulse perturbs the spring's velocity, e.g. in response to a
// keypress or a flick of the mouse.
func (s *IdleSpring) Impulse(strength float64) {
	s.velocity += strength
}
