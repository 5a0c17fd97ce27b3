// Package trajectory generates camera positions around the origin. All
// generators place cameras on or inside a sphere of the configured radius;
// the subject is assumed to be normalized to the unit cube at the origin.
package trajectory

import (
	gomath "math"
	"math/rand"
	"time"

	"github.com/naga-k/multiview/pkg/math"
)

// Generator produces a fixed number of camera positions.
type Generator interface {
	Positions(num int) []math.Vec3
}

// Sphere samples positions uniformly in spherical angles: the azimuth over
// [0, 2pi) and the polar angle over [0, pi). Sampling the polar angle
// directly concentrates views near the poles, which favors top and bottom
// coverage of the subject.
type Sphere struct {
	Radius float64

	rng *rand.Rand
}

// NewSphere returns a random-sphere generator. A zero seed derives one from
// the clock; any other value makes the trajectory reproducible.
func NewSphere(radius float64, seed int64) *Sphere {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sphere{
		Radius: radius,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (s *Sphere) Positions(num int) []math.Vec3 {
	positions := make([]math.Vec3, num)
	for i := range positions {
		theta := s.rng.Float64() * 2 * gomath.Pi
		phi := s.rng.Float64() * gomath.Pi

		positions[i] = math.Vec3{
			X: s.Radius * gomath.Sin(phi) * gomath.Cos(theta),
			Y: s.Radius * gomath.Sin(phi) * gomath.Sin(theta),
			Z: s.Radius * gomath.Cos(phi),
		}
	}
	return positions
}

// Spiral walks one full turn of azimuth while the height climbs linearly
// from -Radius to +Radius, tracing a helix on the bounding cylinder.
type Spiral struct {
	Radius float64
}

func NewSpiral(radius float64) *Spiral {
	return &Spiral{Radius: radius}
}

func (s *Spiral) Positions(num int) []math.Vec3 {
	positions := make([]math.Vec3, num)
	for i := range positions {
		theta := float64(i) * 2 * gomath.Pi / float64(num)
		z := float64(i)*2*s.Radius/float64(num) - s.Radius

		positions[i] = math.Vec3{
			X: s.Radius * gomath.Cos(theta),
			Y: s.Radius * gomath.Sin(theta),
			Z: z,
		}
	}
	return positions
}
