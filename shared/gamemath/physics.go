package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the length below which a vector is treated as zero.
const Epsilon = 1e-9

// WorldUp is the +Y axis.
var WorldUp = mgl64.Vec3{0, 1, 0}

// ApplyFriction scales the horizontal components of v by the per-tick decay
// factor, leaving the vertical component untouched.
func ApplyFriction(v mgl64.Vec3, factor float64) mgl64.Vec3 {
	return mgl64.Vec3{v.X() * factor, v.Y(), v.Z() * factor}
}

// DecayFactor converts a friction factor tuned for rate ticks per second into
// the multiplier for a step of dt seconds: factor^(dt*rate). At dt == 1/rate it
// returns factor unchanged. A non-positive dt or rate falls back to the flat
// per-tick factor.
func DecayFactor(factor, rate, dt float64) float64 {
	if dt <= 0 || rate <= 0 {
		return factor
	}
	return math.Pow(factor, dt*rate)
}

// Horizontal drops the vertical component.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// HorizontalSpeed returns sqrt(vx² + vz²).
func HorizontalSpeed(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}

// NormalizeOrZero returns v/|v|, or the zero vector when v is (nearly) zero.
func NormalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < Epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// ClampLength2 rescales v to length max when it is longer, preserving direction.
func ClampLength2(v mgl64.Vec2, max float64) mgl64.Vec2 {
	l := v.Len()
	if l <= max || l < Epsilon {
		return v
	}
	return v.Mul(max / l)
}

// Lerp3 moves from a toward b by t: a + (b-a)*t.
func Lerp3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ApplyDeadzone zeroes values whose magnitude is at or below deadzone.
func ApplyDeadzone(v, deadzone float64) float64 {
	if math.Abs(v) <= deadzone {
		return 0
	}
	return v
}

// LerpAngle moves angle from toward to by t along the shortest arc.
func LerpAngle(from, to, t float64) float64 {
	return from + WrapAngle(to-from)*t
}

// WrapAngle maps a into (-π, π].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
