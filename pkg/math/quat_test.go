package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)
	if math.Abs(length-1.0) > 1e-9 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatAngleIdentity(t *testing.T) {
	if got := QuatIdentity().Angle(); got != 0 {
		t.Errorf("identity Angle() = %v, want 0", got)
	}
}

func TestQuatAngleAxisRoundTrip(t *testing.T) {
	want := math.Pi / 3
	q := QuatFromAxisAngle(Vec3{0, 0, 1}, want)
	got := q.Angle()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Angle() = %v, want %v", got, want)
	}
}

func TestQuatFromMat4RoundTrip(t *testing.T) {
	// A look-at orientation is orthonormal; extracting the quaternion and
	// reading its angle must match the axis-angle construction.
	for _, angle := range []float64{0.1, math.Pi / 4, math.Pi / 2, 3.0} {
		q := QuatFromAxisAngle(Vec3{0, 1, 0}, angle)
		got := QuatFromMat4(rotationY(angle)).Angle()
		if math.Abs(got-q.Angle()) > 1e-9 {
			t.Errorf("QuatFromMat4 angle for %v = %v, want %v", angle, got, q.Angle())
		}
	}
}

func TestQuatFromMat4LookAt(t *testing.T) {
	m := LookAtWorld(Vec3{1.5, -2, 0.5}, Vec3{0, 0, 0}, Vec3{0, 0, 1})
	q := QuatFromMat4(m)

	length := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if math.Abs(length-1.0) > 1e-9 {
		t.Errorf("QuatFromMat4 length = %v, want 1", length)
	}
	if a := q.Angle(); a < 0 || a > 2*math.Pi {
		t.Errorf("Angle() = %v, want within [0, 2pi]", a)
	}
}

// rotationY builds a column-major rotation about +Y.
func rotationY(angle float64) Mat4 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}
