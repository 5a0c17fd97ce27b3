package trajectory

import (
	gomath "math"
	"testing"
)

func TestSpherePositionsOnRadius(t *testing.T) {
	gen := NewSphere(1.5, 42)
	positions := gen.Positions(200)

	if len(positions) != 200 {
		t.Fatalf("got %d positions, want 200", len(positions))
	}
	for i, p := range positions {
		if d := gomath.Abs(p.Length() - 1.5); d > 1e-9 {
			t.Fatalf("position %d off the sphere: |p| = %v", i, p.Length())
		}
	}
}

func TestSphereSeedReproducible(t *testing.T) {
	a := NewSphere(2, 7).Positions(10)
	b := NewSphere(2, 7).Positions(10)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("position %d differs for identical seeds: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSphereSeedsDiffer(t *testing.T) {
	a := NewSphere(2, 1).Positions(10)
	b := NewSphere(2, 2).Positions(10)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced an identical trajectory")
	}
}

func TestSpiralHeightsAndAngles(t *testing.T) {
	gen := NewSpiral(2)
	positions := gen.Positions(4)

	wantZ := []float64{-2, -1, 0, 1}
	wantTheta := []float64{0, gomath.Pi / 2, gomath.Pi, 3 * gomath.Pi / 2}

	for i, p := range positions {
		if gomath.Abs(p.Z-wantZ[i]) > 1e-9 {
			t.Errorf("position %d height = %v, want %v", i, p.Z, wantZ[i])
		}
		theta := gomath.Atan2(p.Y, p.X)
		if theta < 0 {
			theta += 2 * gomath.Pi
		}
		if gomath.Abs(theta-wantTheta[i]) > 1e-9 {
			t.Errorf("position %d azimuth = %v, want %v", i, theta, wantTheta[i])
		}
	}
}

func TestSpiralStaysOnCylinder(t *testing.T) {
	gen := NewSpiral(1.5)
	for i, p := range gen.Positions(12) {
		rxy := gomath.Hypot(p.X, p.Y)
		if gomath.Abs(rxy-1.5) > 1e-9 {
			t.Errorf("position %d horizontal distance = %v, want 1.5", i, rxy)
		}
	}
}

var _ Generator = (*Sphere)(nil)
var _ Generator = (*Spiral)(nil)
