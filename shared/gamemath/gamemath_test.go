package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestDecayFactor(t *testing.T) {
	assert.InDelta(t, 0.8, DecayFactor(0.8, 60, 1.0/60), 1e-12)
	assert.InDelta(t, 0.64, DecayFactor(0.8, 60, 2.0/60), 1e-12)
	assert.Equal(t, 0.8, DecayFactor(0.8, 60, 0))
	assert.Equal(t, 0.8, DecayFactor(0.8, 0, 1.0/60))
}

func TestApplyFrictionKeepsVertical(t *testing.T) {
	v := ApplyFriction(mgl64.Vec3{10, -3, 5}, 0.8)
	assert.InDelta(t, 8.0, v.X(), 1e-12)
	assert.Equal(t, -3.0, v.Y())
	assert.InDelta(t, 4.0, v.Z(), 1e-12)
}

func TestClampLength2(t *testing.T) {
	v := ClampLength2(mgl64.Vec2{1, 1}, 1)
	assert.InDelta(t, 1.0, v.Len(), 1e-12)
	assert.InDelta(t, v.X(), v.Y(), 1e-12)

	short := mgl64.Vec2{0.3, -0.4}
	assert.Equal(t, short, ClampLength2(short, 1))
	assert.Equal(t, mgl64.Vec2{}, ClampLength2(mgl64.Vec2{}, 1))
}

func TestNormalizeOrZero(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{}, NormalizeOrZero(mgl64.Vec3{}))
	assert.InDelta(t, 1.0, NormalizeOrZero(mgl64.Vec3{3, 0, 4}).Len(), 1e-12)
}

func TestHorizontalSpeed(t *testing.T) {
	assert.Equal(t, 5.0, HorizontalSpeed(mgl64.Vec3{3, 100, 4}))
	assert.Equal(t, mgl64.Vec3{3, 0, 4}, Horizontal(mgl64.Vec3{3, 100, 4}))
}

func TestLerp3(t *testing.T) {
	got := Lerp3(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 20, -10}, 0.1)
	assert.True(t, got.ApproxEqual(mgl64.Vec3{1, 2, -1}))
	assert.Equal(t, mgl64.Vec3{10, 20, -10}, Lerp3(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{10, 20, -10}, 1))
}

func TestApplyDeadzone(t *testing.T) {
	assert.Equal(t, 0.0, ApplyDeadzone(0.1, 0.1))
	assert.Equal(t, 0.0, ApplyDeadzone(-0.05, 0.1))
	assert.Equal(t, -0.5, ApplyDeadzone(-0.5, 0.1))
}

func TestLerpAngleTakesShortestArc(t *testing.T) {
	from := math.Pi - 0.1
	to := -math.Pi + 0.1
	got := LerpAngle(from, to, 0.5)
	assert.InDelta(t, math.Pi, math.Abs(WrapAngle(got)), 1e-9)
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, 0.0, WrapAngle(2*math.Pi), 1e-12)
	assert.InDelta(t, math.Pi, WrapAngle(-math.Pi), 1e-12)
	assert.InDelta(t, -math.Pi/2, WrapAngle(3*math.Pi/2), 1e-12)
}

func TestSphericalRoundTrip(t *testing.T) {
	for _, v := range []mgl64.Vec3{
		{0, 5, 10},
		{3, 4, 0},
		{-2, 1, -7},
	} {
		s := SphericalFromVec3(v)
		assert.InDelta(t, v.Len(), s.Radius, 1e-12)
		assert.True(t, s.Vec3().ApproxEqualThreshold(v, 1e-9), "round trip %v -> %v", v, s.Vec3())
	}
}

func TestSphericalConvention(t *testing.T) {
	s := SphericalFromVec3(mgl64.Vec3{0, 0, 10})
	assert.InDelta(t, 0.0, s.Theta, 1e-12)
	assert.InDelta(t, math.Pi/2, s.Phi, 1e-12)

	s = SphericalFromVec3(mgl64.Vec3{10, 0, 0})
	assert.InDelta(t, math.Pi/2, s.Theta, 1e-12)
}

func TestSphericalMakeSafe(t *testing.T) {
	s := SphericalFromVec3(mgl64.Vec3{0, 10, 0}).MakeSafe()
	assert.Greater(t, s.Phi, 0.0)
	assert.Equal(t, Spherical{}, SphericalFromVec3(mgl64.Vec3{}))
}
