// Package main renders a multi-view dataset split: random-sphere views for
// training, a deterministic spiral for testing, a flat transforms manifest
// and an HTML trajectory plot.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/naga-k/multiview/internal/config"
	"github.com/naga-k/multiview/internal/logger"
	"github.com/naga-k/multiview/internal/manifest"
	"github.com/naga-k/multiview/internal/pipeline"
	"github.com/naga-k/multiview/internal/plot"
	"github.com/naga-k/multiview/internal/trajectory"
	"github.com/naga-k/multiview/pkg/math"
)

var (
	flagName      = flag.String("name", "", "Dataset name (required)")
	flagNum       = flag.Int("num", 0, "Number of views to render (required)")
	flagSplit     = flag.String("split", "", "Dataset split, train or test (required)")
	flagOutputDir = flag.String("output_dir", "", "Output directory (required)")
	flagDataDir   = flag.String("data_dir", "", "Input data directory (required)")
	flagRadius    = flag.Float64("radius", 0, "Camera placement radius (required)")
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()
	if err := checkRequired(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		flag.Usage()
		os.Exit(2)
	}

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
		logger.Error("dataset render failed", zap.Error(err))
		os.Exit(1)
	}
}

func checkRequired() error {
	switch {
	case *flagName == "":
		return fmt.Errorf("--name is required")
	case *flagNum <= 0:
		return fmt.Errorf("--num is required and must be positive")
	case *flagSplit != "train" && *flagSplit != "test":
		return fmt.Errorf("--split must be train or test")
	case *flagOutputDir == "":
		return fmt.Errorf("--output_dir is required")
	case *flagDataDir == "":
		return fmt.Errorf("--data_dir is required")
	case *flagRadius <= 0:
		return fmt.Errorf("--radius is required and must be positive")
	}
	return nil
}

// formatRadius names the radius in run directories; integral values keep a
// trailing ".0" so `--radius 2` and existing tooling agree on "name_2.0_100".
func formatRadius(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func run(cfg *config.Config) error {
	split := *flagSplit

	// Training views are random so coverage is dense; test views follow a
	// deterministic spiral so renders are comparable across runs.
	var gen trajectory.Generator
	if split == "train" {
		gen = trajectory.NewSphere(*flagRadius, cfg.Seed)
	} else {
		gen = trajectory.NewSpiral(*flagRadius)
	}

	runDir := filepath.Join(*flagOutputDir,
		fmt.Sprintf("%s_%s_%d", *flagName, formatRadius(*flagRadius), *flagNum))

	runner := pipeline.New(cfg, logger.Sugar)
	result, err := runner.Run(pipeline.Job{
		Name:          *flagName,
		MeshPath:      filepath.Join(*flagDataDir, *flagName, "meshes", "model.obj"),
		TexturePath:   filepath.Join(*flagDataDir, *flagName, "materials", "textures", "texture.png"),
		FramesDir:     filepath.Join(runDir, split),
		FilePrefix:    "./" + split,
		Num:           *flagNum,
		Trajectory:    gen,
		LightPosition: math.Vec3{X: 3, Y: 3, Z: 3},
		LightPower:    400,
	})
	if err != nil {
		return err
	}

	// The flat layout repeats the camera model on every frame.
	for i := range result.Frames {
		result.Frames[i].FocalLength = result.FocalLength
		result.Frames[i].CameraAngleX = result.CameraAngleX
		result.Frames[i].CameraAngleY = result.CameraAngleY
	}

	transforms := filepath.Join(runDir, fmt.Sprintf("transforms_%s.json", split))
	if err := manifest.WriteFlat(transforms, result.Frames); err != nil {
		return err
	}
	logger.Sugar.Infow("wrote transforms", "path", transforms)

	plotPath := filepath.Join(runDir, fmt.Sprintf("plot_%s.html", split))
	if err := plot.WriteHTML(plotPath,
		result.MeshVertices, result.CameraPositions, result.LightPositions); err != nil {
		return err
	}
	logger.Sugar.Infow("wrote trajectory plot", "path", plotPath)

	return nil
}
