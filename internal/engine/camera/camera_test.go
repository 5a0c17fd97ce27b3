package camera

import (
	gomath "math"
	"testing"

	"github.com/naga-k/multiview/pkg/math"
)

func TestWorldTransformPosition(t *testing.T) {
	c := New(50, 36)
	c.MoveTo(math.Vec3{X: 1, Y: 2, Z: 3})
	c.LookAt(math.Vec3{})

	rows := c.WorldTransform().Rows()
	if rows[0][3] != 1 || rows[1][3] != 2 || rows[2][3] != 3 {
		t.Errorf("translation = (%v,%v,%v), want (1,2,3)", rows[0][3], rows[1][3], rows[2][3])
	}
	if rows[3] != [4]float64{0, 0, 0, 1} {
		t.Errorf("bottom row = %v, want (0,0,0,1)", rows[3])
	}
}

func TestForwardAxisHitsTarget(t *testing.T) {
	c := New(50, 36)
	c.MoveTo(math.Vec3{X: 0, Y: -2, Z: 0})
	c.LookAt(math.Vec3{})

	// Camera-space -Z mapped to world space must point at the target.
	m := c.WorldTransform()
	fwd := m.TransformDirection(math.Vec3{Z: -1})
	want := c.Target.Sub(c.Position).Normalize()
	if fwd.Distance(want) > 1e-9 {
		t.Errorf("forward axis = %v, want %v", fwd, want)
	}
}

func TestViewMatrixInvertsWorld(t *testing.T) {
	c := New(50, 36)
	c.MoveTo(math.Vec3{X: 1.4, Y: -0.3, Z: 0.9})
	c.LookAt(math.Vec3{})

	prod := c.ViewMatrix().Mul(c.WorldTransform())
	id := math.Identity()
	for i := 0; i < 16; i++ {
		if gomath.Abs(prod[i]-id[i]) > 1e-9 {
			t.Fatalf("view*world element %d = %v, want %v", i, prod[i], id[i])
		}
	}
}

func TestDegenerateOverheadPose(t *testing.T) {
	// Directly above the target: view direction parallel to the +Z up
	// convention. The fallback up vector must keep the pose valid.
	c := New(50, 36)
	c.MoveTo(math.Vec3{Z: 2})
	c.LookAt(math.Vec3{})

	m := c.WorldTransform()
	for i, v := range m {
		if gomath.IsNaN(v) {
			t.Fatalf("world transform element %d is NaN", i)
		}
	}
	if r := c.Rotation(); gomath.IsNaN(r) {
		t.Error("rotation scalar is NaN for overhead pose")
	}
}

func TestAngleX(t *testing.T) {
	c := New(50, 36)
	want := 2 * gomath.Atan(36.0/(2*50.0))
	if got := c.AngleX(); gomath.Abs(got-want) > 1e-12 {
		t.Errorf("AngleX() = %v, want %v", got, want)
	}
}

func TestAngleYSquare(t *testing.T) {
	c := New(50, 36)
	if gomath.Abs(c.AngleY(1)-c.AngleX()) > 1e-12 {
		t.Error("square aspect should give AngleY == AngleX")
	}
}

func TestRotationRange(t *testing.T) {
	c := New(50, 36)
	for _, pos := range []math.Vec3{
		{X: 1.5, Y: 0, Z: 0},
		{X: 0, Y: 1.5, Z: 0.3},
		{X: -1, Y: -1, Z: 1},
	} {
		c.MoveTo(pos)
		c.LookAt(math.Vec3{})
		r := c.Rotation()
		if r < 0 || r > 2*gomath.Pi {
			t.Errorf("Rotation() at %v = %v, want within [0, 2pi]", pos, r)
		}
	}
}
