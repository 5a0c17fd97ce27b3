// Package lighting provides the spot light aimed at the rendered object.
package lighting

import (
	gomath "math"

	"github.com/naga-k/multiview/pkg/math"
)

// Spot is a spot light. Orientation follows the same look-at rule as the
// camera: the cone axis points from Position to Target.
type Spot struct {
	Position math.Vec3
	Target   math.Vec3
	Power    float64   // watts
	Color    math.Vec3 // RGB in [0,1]
	Size     float64   // full cone angle, radians
	Blend    float64   // soft-edge fraction of the cone, [0,1]
}

// NewSpot creates a white spot light aimed at the origin.
func NewSpot(position math.Vec3, power float64, size float64) *Spot {
	return &Spot{
		Position: position,
		Power:    power,
		Color:    math.Vec3{X: 1, Y: 1, Z: 1},
		Size:     size,
		Blend:    0.15,
	}
}

// LookAt aims the cone axis at the target point.
func (s *Spot) LookAt(target math.Vec3) {
	s.Target = target
}

// Direction returns the unit cone axis.
func (s *Spot) Direction() math.Vec3 {
	return s.Target.Sub(s.Position).Normalize()
}

// WorldTransform returns the light's world matrix, built by the shared
// look-at rule with the camera's up convention.
func (s *Spot) WorldTransform() math.Mat4 {
	return math.LookAtWorld(s.Position, s.Target, math.Vec3{X: 0, Y: 0, Z: 1})
}

// Irradiance returns the light intensity arriving at a point: inverse-square
// falloff of the power, attenuated by the cone with a smooth edge. Zero
// outside the cone.
func (s *Spot) Irradiance(p math.Vec3) float64 {
	toP := p.Sub(s.Position)
	d := toP.Length()
	if d < 1e-9 {
		return 0
	}

	cosAngle := toP.Scale(1 / d).Dot(s.Direction())
	cosOuter := gomath.Cos(s.Size / 2)
	cosInner := gomath.Cos(s.Size / 2 * (1 - s.Blend))

	var cone float64
	switch {
	case cosAngle <= cosOuter:
		return 0
	case cosAngle >= cosInner:
		cone = 1
	default:
		t := (cosAngle - cosOuter) / (cosInner - cosOuter)
		cone = t * t * (3 - 2*t)
	}

	return s.Power / (4 * gomath.Pi * d * d) * cone
}
