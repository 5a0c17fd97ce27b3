// Package pipeline drives a full capture run: load and normalize the
// subject, walk the camera trajectory, render every pose and collect the
// pose records the manifest writers need.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/naga-k/multiview/internal/config"
	"github.com/naga-k/multiview/internal/engine/camera"
	"github.com/naga-k/multiview/internal/engine/lighting"
	"github.com/naga-k/multiview/internal/engine/model"
	"github.com/naga-k/multiview/internal/engine/scene"
	"github.com/naga-k/multiview/internal/engine/texture"
	"github.com/naga-k/multiview/internal/manifest"
	"github.com/naga-k/multiview/internal/plot"
	"github.com/naga-k/multiview/internal/trajectory"
	"github.com/naga-k/multiview/pkg/math"
)

// DefaultSpotSize is the full cone angle of the key light.
const DefaultSpotSize = 1.2

// Job describes one capture run.
type Job struct {
	Name        string
	MeshPath    string
	TexturePath string

	// FramesDir is where image files land; FilePrefix is what manifests
	// record in front of each file name (often a relative "./" path).
	FramesDir  string
	FilePrefix string

	Num        int
	Trajectory trajectory.Generator

	LightPosition math.Vec3
	LightPower    float64
	LightSize     float64
}

// Result carries everything a command needs after the frames are on disk.
type Result struct {
	Frames     []manifest.Frame
	Extrinsics []manifest.Extrinsic
	FramePaths []string

	MeshVertices    []math.Vec3
	CameraPositions []math.Vec3
	LightPositions  []math.Vec3

	CameraAngleX float64
	CameraAngleY float64
	FocalLength  float64
	SensorWidth  float64
}

// Runner owns the scene and render settings shared by every job.
type Runner struct {
	cfg *config.Config
	log *zap.SugaredLogger
}

func New(cfg *config.Config, log *zap.SugaredLogger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// CheckAssets verifies the input files exist before any output is created.
// A run with a missing mesh or texture produces nothing at all.
func CheckAssets(meshPath, texturePath string) error {
	for _, p := range []string{meshPath, texturePath} {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("pipeline: asset missing: %s: %w", p, err)
		}
		if info.IsDir() {
			return fmt.Errorf("pipeline: asset is a directory: %s", p)
		}
	}
	return nil
}

// Run executes the job: assets in, frames and pose records out.
func (r *Runner) Run(job Job) (*Result, error) {
	if err := CheckAssets(job.MeshPath, job.TexturePath); err != nil {
		return nil, err
	}
	if job.Num <= 0 {
		return nil, fmt.Errorf("pipeline: frame count must be positive, got %d", job.Num)
	}

	mesh, err := model.LoadOBJ(job.MeshPath)
	if err != nil {
		return nil, err
	}
	mesh.Normalize()

	material, err := texture.LoadMaterial(job.TexturePath)
	if err != nil {
		return nil, err
	}

	rc := r.cfg.Render
	sc := scene.New(scene.Settings{
		Width:       rc.Width,
		Height:      rc.Height,
		Supersample: rc.Supersample,
		Transparent: rc.Transparent,
		Format:      rc.Format,
	})
	sc.Reset()
	sc.Mesh = mesh
	sc.Material = material
	sc.Ambient = rc.Ambient

	cam := camera.New(rc.FocalLength, rc.SensorWidth)
	sc.Camera = cam

	size := job.LightSize
	if size == 0 {
		size = DefaultSpotSize
	}
	light := lighting.NewSpot(job.LightPosition, job.LightPower, size)
	light.LookAt(math.Vec3{})
	sc.Light = light

	positions := job.Trajectory.Positions(job.Num)

	r.log.Infow("starting capture run",
		"name", job.Name,
		"frames", job.Num,
		"mesh", job.MeshPath,
		"output", job.FramesDir,
	)

	result := &Result{
		Frames:          make([]manifest.Frame, 0, job.Num),
		Extrinsics:      make([]manifest.Extrinsic, 0, job.Num),
		FramePaths:      make([]string, 0, job.Num),
		CameraPositions: positions,
		LightPositions:  []math.Vec3{light.Position},
		MeshVertices:    plot.SampleMesh(mesh, plot.MaxPlotTriangles),
		FocalLength:     rc.FocalLength,
		SensorWidth:     rc.SensorWidth,
		CameraAngleX:    cam.AngleX(),
		CameraAngleY:    cam.AngleY(float64(rc.Width) / float64(rc.Height)),
	}

	for i, pos := range positions {
		cam.MoveTo(pos)
		cam.LookAt(math.Vec3{})

		name := fmt.Sprintf("%s_%04d.%s", job.Name, i, rc.Format)
		out := filepath.Join(job.FramesDir, name)
		if err := sc.Render(out); err != nil {
			return nil, fmt.Errorf("pipeline: frame %d: %w", i, err)
		}

		recorded := name
		if job.FilePrefix != "" {
			// Kept verbatim so "./train" style prefixes survive into the
			// manifest instead of being path-cleaned away.
			recorded = job.FilePrefix + "/" + name
		}

		transform := cam.WorldTransform().Rows()
		result.FramePaths = append(result.FramePaths, out)
		result.Frames = append(result.Frames, manifest.Frame{
			FilePath:        recorded,
			Rotation:        cam.Rotation(),
			TransformMatrix: transform,
		})
		result.Extrinsics = append(result.Extrinsics, manifest.Extrinsic{
			TransformMatrix: transform,
			Frame:           name,
		})
		r.log.Debugw("rendered frame", "index", i, "path", out)
	}

	r.log.Infow("capture run done", "name", job.Name, "frames", len(result.Frames))
	return result, nil
}

// Intrinsics expands the run's fixed camera model into one record per frame.
func (res *Result) Intrinsics() []manifest.Intrinsics {
	out := make([]manifest.Intrinsics, len(res.Frames))
	for i := range out {
		out[i] = manifest.Intrinsics{FocalLength: res.FocalLength}
	}
	return out
}
