// Package manifest writes camera pose files alongside rendered frames. The
// three layouts mirror what downstream reconstruction tooling expects: a
// flat array of frames, a nested document with a shared horizontal field of
// view, and a split pair of extrinsics and intrinsics files.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Frame records one rendered view: where the image landed and the
// camera-to-world transform that produced it. Rotation is the angle of the
// pose quaternion, kept for sorting and diagnostics.
type Frame struct {
	FilePath        string        `json:"file_path"`
	Rotation        float64       `json:"rotation"`
	TransformMatrix [4][4]float64 `json:"transform_matrix"`

	// Set only in the flat layout, which repeats the camera model on every
	// frame. The nested layout hoists the angle to the document root instead.
	FocalLength  float64 `json:"focal_length,omitempty"`
	CameraAngleX float64 `json:"camera_angle_x,omitempty"`
	CameraAngleY float64 `json:"camera_angle_y,omitempty"`
}

// Extrinsic pairs a camera-to-world transform with the image it rendered.
type Extrinsic struct {
	TransformMatrix [4][4]float64 `json:"transform_matrix"`
	Frame           string        `json:"frame"`
}

// Intrinsics records the camera model for one frame. The cameras here never
// zoom mid-run, so every entry in a run is identical, but keeping the array
// paired one-to-one with the extrinsics makes the files trivially joinable.
type Intrinsics struct {
	FocalLength float64 `json:"focal_length"`
}

// nested is the single-document layout: one shared camera angle plus all
// frames.
type nested struct {
	CameraAngleX float64 `json:"camera_angle_x"`
	Frames       []Frame `json:"frames"`
}

// WriteFlat writes the frames as a bare JSON array.
func WriteFlat(path string, frames []Frame) error {
	return writeJSON(path, frames)
}

// WriteNested writes a document with the shared horizontal field of view at
// the top and the frames under a "frames" key.
func WriteNested(path string, cameraAngleX float64, frames []Frame) error {
	return writeJSON(path, nested{CameraAngleX: cameraAngleX, Frames: frames})
}

// WriteExtrinsics writes the pose array of the split layout.
func WriteExtrinsics(path string, extrinsics []Extrinsic) error {
	return writeJSON(path, extrinsics)
}

// WriteIntrinsics writes the camera-model array of the split layout,
// paired index-for-index with the extrinsics file.
func WriteIntrinsics(path string, intrinsics []Intrinsics) error {
	return writeJSON(path, intrinsics)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("manifest: marshal %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("manifest: create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}
