package model

import (
	"strings"
	"testing"
)

const quadOBJ = `# quad with texcoords and normals
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestLoadOBJFromReader(t *testing.T) {
	m, err := LoadOBJFromReader(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("LoadOBJFromReader: %v", err)
	}

	// Quad fan-triangulates into two triangles.
	if len(m.Triangles) != 2 {
		t.Fatalf("got %d triangles, want 2", len(m.Triangles))
	}

	tri := m.Triangles[0]
	if tri.V1.Position != (m.Triangles[1].V1.Position) {
		t.Error("fan triangulation should share the first vertex")
	}
	if tri.V1.Normal.Z != 1 {
		t.Errorf("normal = %v, want +Z", tri.V1.Normal)
	}
	if tri.V2.UV.X != 1 || tri.V2.UV.Y != 0 {
		t.Errorf("second vertex UV = %v, want (1,0)", tri.V2.UV)
	}
}

func TestLoadOBJNoNormals(t *testing.T) {
	obj := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	m, err := LoadOBJFromReader(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("LoadOBJFromReader: %v", err)
	}
	// Face normal is computed when vn records are absent.
	n := m.Triangles[0].V1.Normal
	if n.Z != 1 {
		t.Errorf("computed normal = %v, want +Z", n)
	}
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	obj := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"
	m, err := LoadOBJFromReader(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("LoadOBJFromReader: %v", err)
	}
	if len(m.Triangles) != 1 {
		t.Errorf("got %d triangles, want 1", len(m.Triangles))
	}
}

func TestLoadOBJEmpty(t *testing.T) {
	if _, err := LoadOBJFromReader(strings.NewReader("# nothing\n")); err == nil {
		t.Error("expected error for OBJ with no faces")
	}
}

func TestLoadOBJMissingFile(t *testing.T) {
	if _, err := LoadOBJ("/nonexistent/model.obj"); err == nil {
		t.Error("expected error for missing file")
	}
}
