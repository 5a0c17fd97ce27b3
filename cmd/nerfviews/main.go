// Package main renders a NeRF-style split: frames under tmp/{name}/{split}
// and a transforms file carrying the shared horizontal field of view.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/naga-k/multiview/internal/config"
	"github.com/naga-k/multiview/internal/logger"
	"github.com/naga-k/multiview/internal/manifest"
	"github.com/naga-k/multiview/internal/pipeline"
	"github.com/naga-k/multiview/internal/trajectory"
	"github.com/naga-k/multiview/pkg/math"
)

const cameraRadius = 1.5

var (
	flagName    = flag.String("name", "shark_render", "Capture name")
	flagNum     = flag.Int("num", 12, "Number of views to render")
	flagSplit   = flag.String("split", "train", "Dataset split (train, test or val)")
	flagInput   = flag.String("input", "Shark/meshes/model.obj", "Path to the OBJ mesh")
	flagTexture = flag.String("texture_path", "Shark/materials/textures/texture.png", "Path to the texture image")
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("nerf views render failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	split := *flagSplit
	switch split {
	case "train", "test", "val":
	default:
		return fmt.Errorf("split must be train, test or val, got %q", split)
	}

	runDir := filepath.Join("tmp", *flagName)

	runner := pipeline.New(cfg, logger.Sugar)
	result, err := runner.Run(pipeline.Job{
		Name:          *flagName,
		MeshPath:      *flagInput,
		TexturePath:   *flagTexture,
		FramesDir:     filepath.Join(runDir, split),
		FilePrefix:    "./" + split,
		Num:           *flagNum,
		Trajectory:    trajectory.NewSphere(cameraRadius, cfg.Seed),
		LightPosition: math.Vec3{X: 3, Y: 3, Z: 10},
		LightPower:    400,
	})
	if err != nil {
		return err
	}

	transforms := filepath.Join(runDir, fmt.Sprintf("transforms_%s.json", split))
	if err := manifest.WriteNested(transforms, result.CameraAngleX, result.Frames); err != nil {
		return err
	}
	logger.Sugar.Infow("wrote transforms", "path", transforms, "camera_angle_x", result.CameraAngleX)

	return nil
}
