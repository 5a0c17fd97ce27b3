package model

import (
	"testing"

	"github.com/naga-k/multiview/pkg/math"
)

func boxMesh(min, max math.Vec3) *Mesh {
	// Two disjoint triangles spanning the box are enough for bounds math.
	return NewMesh([]*Triangle{
		{
			V1: Vertex{Position: min},
			V2: Vertex{Position: math.Vec3{X: max.X, Y: min.Y, Z: min.Z}},
			V3: Vertex{Position: math.Vec3{X: min.X, Y: max.Y, Z: min.Z}},
		},
		{
			V1: Vertex{Position: max},
			V2: Vertex{Position: math.Vec3{X: min.X, Y: max.Y, Z: max.Z}},
			V3: Vertex{Position: math.Vec3{X: max.X, Y: min.Y, Z: max.Z}},
		},
	})
}

func TestBounds(t *testing.T) {
	m := boxMesh(math.Vec3{X: -1, Y: -2, Z: -3}, math.Vec3{X: 4, Y: 5, Z: 6})
	min, max := m.Bounds()
	if min != (math.Vec3{X: -1, Y: -2, Z: -3}) {
		t.Errorf("Bounds min = %v, want (-1,-2,-3)", min)
	}
	if max != (math.Vec3{X: 4, Y: 5, Z: 6}) {
		t.Errorf("Bounds max = %v, want (4,5,6)", max)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name     string
		min, max math.Vec3
	}{
		{"offset box", math.Vec3{X: 2, Y: 2, Z: 2}, math.Vec3{X: 6, Y: 4, Z: 3}},
		{"negative box", math.Vec3{X: -10, Y: -10, Z: -10}, math.Vec3{X: -2, Y: -9, Z: -4}},
		{"unit box", math.Vec3{X: 0, Y: 0, Z: 0}, math.Vec3{X: 1, Y: 1, Z: 1}},
	}

	const tol = 1e-9
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := boxMesh(tc.min, tc.max)
			m.Normalize()

			min, max := m.Bounds()
			center := min.Mid(max)
			if center.Length() > tol {
				t.Errorf("bounding-box center = %v, want origin", center)
			}

			extent := max.Sub(min).MaxComponent()
			if extent < 1-tol || extent > 1+tol {
				t.Errorf("largest extent = %v, want 1", extent)
			}
		})
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	// A zero-extent mesh must not divide by zero.
	p := math.Vec3{X: 3, Y: 3, Z: 3}
	m := NewMesh([]*Triangle{{V1: Vertex{Position: p}, V2: Vertex{Position: p}, V3: Vertex{Position: p}}})
	m.Normalize()

	min, _ := m.Bounds()
	if min.Length() > 1e-9 {
		t.Errorf("degenerate mesh should collapse to origin, got %v", min)
	}
}

func TestVertices(t *testing.T) {
	m := boxMesh(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1})
	if got := len(m.Vertices()); got != 6 {
		t.Errorf("Vertices() returned %d points, want 6", got)
	}
}
