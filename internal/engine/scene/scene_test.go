package scene

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/naga-k/multiview/internal/engine/camera"
	"github.com/naga-k/multiview/internal/engine/lighting"
	"github.com/naga-k/multiview/internal/engine/model"
	"github.com/naga-k/multiview/pkg/math"
)

func testSettings() Settings {
	return Settings{Width: 32, Height: 32, Supersample: 1, Transparent: true, Format: "png"}
}

func triangleMesh() *model.Mesh {
	v := func(x, z float64) model.Vertex {
		return model.Vertex{Position: math.Vec3{X: x, Z: z}, Normal: math.Vec3{Y: -1}}
	}
	return model.NewMesh([]*model.Triangle{
		{V1: v(-0.5, -0.5), V2: v(0.5, -0.5), V3: v(0, 0.5)},
	})
}

func populate(s *Scene) {
	s.Mesh = triangleMesh()
	s.Camera = camera.New(50, 36)
	s.Camera.MoveTo(math.Vec3{Y: -2})
	s.Camera.LookAt(math.Vec3{})
	s.Light = lighting.NewSpot(math.Vec3{Y: -3, Z: 3}, 400, 1.2)
	s.Light.LookAt(math.Vec3{})
	s.Ambient = 0.3
}

func TestResetClearsContent(t *testing.T) {
	s := New(testSettings())
	populate(s)

	s.Reset()

	if s.Mesh != nil || s.Camera != nil || s.Light != nil || s.Material != nil {
		t.Error("reset left scene content behind")
	}
	if s.Settings.Width != 32 {
		t.Error("reset must not touch settings")
	}
}

func TestRenderWritesPNG(t *testing.T) {
	s := New(testSettings())
	populate(s)

	path := filepath.Join(t.TempDir(), "out", "frames", "frame_0000.png")
	if err := s.Render(path); err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open rendered file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode rendered png: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("rendered size = %v, want 32x32", img.Bounds())
	}
}

func TestRenderWithoutMesh(t *testing.T) {
	s := New(testSettings())
	s.Camera = camera.New(50, 36)

	if err := s.Render(filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("expected error rendering an empty scene")
	}
}

func TestRenderWithoutCamera(t *testing.T) {
	s := New(testSettings())
	s.Mesh = triangleMesh()

	if err := s.Render(filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("expected error rendering without a camera")
	}
}
