// Package scene provides the explicit render session: one mesh with its
// material, one camera, one light. All scene state lives here rather than in
// package globals, and Reset clears it between runs.
package scene

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"

	"github.com/naga-k/multiview/internal/engine/camera"
	"github.com/naga-k/multiview/internal/engine/lighting"
	"github.com/naga-k/multiview/internal/engine/model"
	"github.com/naga-k/multiview/internal/engine/raster"
	"github.com/naga-k/multiview/internal/engine/texture"
)

// Settings holds the output configuration of a scene.
type Settings struct {
	Width       int
	Height      int
	Supersample int
	Transparent bool
	Format      string // "png" or "webp"
}

// Scene owns everything the renderer needs for a frame.
type Scene struct {
	Mesh     *model.Mesh
	Material *texture.Material
	Camera   *camera.Camera
	Light    *lighting.Spot
	Ambient  float64

	Settings Settings
}

// New creates an empty scene with the given settings.
func New(settings Settings) *Scene {
	return &Scene{Settings: settings}
}

// Reset clears all scene content, leaving only the settings. Runs assume
// exclusive ownership of the scene and call this first to avoid cross-run
// contamination.
func (s *Scene) Reset() {
	s.Mesh = nil
	s.Material = nil
	s.Camera = nil
	s.Light = nil
	s.Ambient = 0
}

// RenderImage rasterizes the current scene state.
func (s *Scene) RenderImage() (*image.NRGBA, error) {
	if s.Mesh == nil {
		return nil, fmt.Errorf("scene: no mesh loaded")
	}
	if s.Camera == nil {
		return nil, fmt.Errorf("scene: no camera set")
	}

	return raster.Render(raster.Params{
		Mesh:        s.Mesh,
		Material:    s.Material,
		Camera:      s.Camera,
		Light:       s.Light,
		Ambient:     s.Ambient,
		Width:       s.Settings.Width,
		Height:      s.Settings.Height,
		Supersample: s.Settings.Supersample,
		Transparent: s.Settings.Transparent,
	}), nil
}

// Render rasterizes the current pose and writes the image file, creating
// parent directories as needed.
func (s *Scene) Render(path string) error {
	img, err := s.RenderImage()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("scene: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scene: create %s: %w", path, err)
	}
	defer f.Close()

	switch s.Settings.Format {
	case "webp":
		err = nativewebp.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("scene: encode %s: %w", path, err)
	}
	return nil
}
