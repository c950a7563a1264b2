package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// polarEpsilon keeps the polar angle off the poles, where azimuth is undefined.
const polarEpsilon = 1e-6

// Spherical is a point in spherical coordinates around an origin, Y-up.
// Theta is the azimuth around +Y measured from +Z toward +X, Phi is the polar
// angle measured from +Y.
type Spherical struct {
	Radius float64
	Theta  float64
	Phi    float64
}

// SphericalFromVec3 converts a cartesian offset into spherical coordinates.
func SphericalFromVec3(v mgl64.Vec3) Spherical {
	r := v.Len()
	if r < Epsilon {
		return Spherical{}
	}
	return Spherical{
		Radius: r,
		Theta:  math.Atan2(v.X(), v.Z()),
		Phi:    math.Acos(Clamp(v.Y()/r, -1, 1)),
	}
}

// Vec3 converts back to a cartesian offset.
func (s Spherical) Vec3() mgl64.Vec3 {
	sinPhiRadius := math.Sin(s.Phi) * s.Radius
	return mgl64.Vec3{
		sinPhiRadius * math.Sin(s.Theta),
		math.Cos(s.Phi) * s.Radius,
		sinPhiRadius * math.Cos(s.Theta),
	}
}

// MakeSafe keeps Phi strictly between the poles.
func (s Spherical) MakeSafe() Spherical {
	s.Phi = Clamp(s.Phi, polarEpsilon, math.Pi-polarEpsilon)
	return s
}
