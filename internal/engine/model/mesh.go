// Package model provides triangle meshes, OBJ loading, and the unit-box
// normalization applied before camera placement.
package model

import (
	"github.com/naga-k/multiview/pkg/math"
)

// Vertex carries position, normal, and texture coordinates.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
}

// Triangle is a single face of a mesh.
type Triangle struct {
	V1, V2, V3 Vertex
}

// Normal returns the face normal.
func (t *Triangle) Normal() math.Vec3 {
	e1 := t.V2.Position.Sub(t.V1.Position)
	e2 := t.V3.Position.Sub(t.V1.Position)
	return e1.Cross(e2).Normalize()
}

// Mesh is a triangle soup in world space.
type Mesh struct {
	Triangles []*Triangle
}

// NewMesh creates a mesh from triangles.
func NewMesh(triangles []*Triangle) *Mesh {
	return &Mesh{Triangles: triangles}
}

// Bounds returns the axis-aligned bounding box corners of the mesh.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Triangles) == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	min = m.Triangles[0].V1.Position
	max = min
	for _, t := range m.Triangles {
		for _, v := range [3]math.Vec3{t.V1.Position, t.V2.Position, t.V3.Position} {
			min = min.Min(v)
			max = max.Max(v)
		}
	}
	return min, max
}

// Center returns the bounding-box center.
func (m *Mesh) Center() math.Vec3 {
	min, max := m.Bounds()
	return min.Mid(max)
}

// Normalize recenters the mesh so its bounding-box center sits at the origin
// and uniformly rescales it so the largest bounding-box extent equals 1.
// Runs in place; must be called before any camera placement.
func (m *Mesh) Normalize() {
	min, max := m.Bounds()
	center := min.Mid(max)

	size := max.Sub(min).MaxComponent()
	if size == 0 {
		size = 1
	}
	scale := 1.0 / size

	for _, t := range m.Triangles {
		t.V1.Position = t.V1.Position.Sub(center).Scale(scale)
		t.V2.Position = t.V2.Position.Sub(center).Scale(scale)
		t.V3.Position = t.V3.Position.Sub(center).Scale(scale)
	}
}

// Vertices returns every triangle corner position, in face order. Used by
// the diagnostic scatter plot.
func (m *Mesh) Vertices() []math.Vec3 {
	verts := make([]math.Vec3, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		verts = append(verts, t.V1.Position, t.V2.Position, t.V3.Position)
	}
	return verts
}
