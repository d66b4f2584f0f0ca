package camera

import (
	"math"
	"testing"

	"github.com/rastalab/rasta/pkg/math3d"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	if c.Position() != math3d.Zero3() {
		t.Fatalf("default position = %+v, want zero", c.Position())
	}
}

func TestViewMatrixRecomputesOnlyWhenDirty(t *testing.T) {
	c := NewCamera()
	v1 := c.ViewMatrix()
	v2 := c.ViewMatrix()
	if v1 != v2 {
		t.Fatalf("view matrix changed without a state change")
	}

	c.SetPosition(math3d.V3(1, 2, 3))
	v3 := c.ViewMatrix()
	if v3 == v1 {
		t.Fatalf("view matrix did not change after SetPosition")
	}
}

func TestViewProjectionMatrixIsProjTimesView(t *testing.T) {
	c := NewCamera()
	c.SetPosition(math3d.V3(0, 0, 5))
	want := c.ProjectionMatrix().Mul(c.ViewMatrix())
	if got := c.ViewProjectionMatrix(); got != want {
		t.Fatalf("ViewProjectionMatrix = %+v, want %+v", got, want)
	}
}

func TestLookAtFacesTarget(t *testing.T) {
	c := NewCamera()
	c.SetPosition(math3d.V3(0, 0, 5))
	c.LookAt(math3d.V3(0, 0, 0))

	fwd := c.orientation().MulVec3Dir(math3d.Forward())
	if math.Abs(fwd.Z-(-1)) > 1e-9 {
		t.Fatalf("forward.Z = %v, want -1 (facing the origin from +Z)", fwd.Z)
	}
}

func TestIdleSpringImpulseProducesMotion(t *testing.T) {
	s := NewIdleSpring(60)
	s.Impulse(1.0)
	total := 0.0
	for i := 0; i < 30; i++ {
		total += s.Idle(1.0 / 60)
	}
	if total == 0 {
		t.Fatal("impulse produced no accumulated motion")
	}
}
