// Package camera provides the render camera: placement, look-at orientation,
// and the intrinsics reported in the frame manifests.
package camera

import (
	gomath "math"

	"github.com/naga-k/multiview/pkg/math"
)

// WorldUp is the up-axis convention for camera and light placement.
var WorldUp = math.Vec3{X: 0, Y: 0, Z: 1}

// Camera is a pinhole camera. Orientation always derives from the look-at
// rule; it is never stored independently.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	// Intrinsics, in millimeters.
	FocalLength float64
	SensorWidth float64
}

// New creates a camera at the given position aimed at the origin.
func New(focalLength, sensorWidth float64) *Camera {
	return &Camera{
		Up:          WorldUp,
		FocalLength: focalLength,
		SensorWidth: sensorWidth,
	}
}

// MoveTo replaces the camera position.
func (c *Camera) MoveTo(p math.Vec3) {
	c.Position = p
}

// LookAt points the camera's forward axis (-Z) at the target.
func (c *Camera) LookAt(target math.Vec3) {
	c.Target = target
}

// WorldTransform returns the camera-to-world matrix: look-at orientation
// plus position. This is the transform_matrix of the frame manifests.
func (c *Camera) WorldTransform() math.Mat4 {
	return math.LookAtWorld(c.Position, c.Target, c.Up)
}

// ViewMatrix returns the world-to-camera matrix used for rendering.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// Rotation returns the angle of the orientation quaternion in radians, the
// scalar stored in each frame record.
func (c *Camera) Rotation() float64 {
	return math.QuatFromMat4(c.WorldTransform()).Angle()
}

// AngleX returns the horizontal field of view in radians.
func (c *Camera) AngleX() float64 {
	return 2 * gomath.Atan(c.SensorWidth/(2*c.FocalLength))
}

// AngleY returns the vertical field of view for the given aspect ratio
// (width/height). Square output yields AngleY == AngleX.
func (c *Camera) AngleY(aspect float64) float64 {
	return 2 * gomath.Atan(gomath.Tan(c.AngleX()/2)/aspect)
}
