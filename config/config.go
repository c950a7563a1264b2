package config

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// GroundPolicy selects how the avatar decides it is standing on something.
type GroundPolicy int

const (
	// GroundRaycast probes straight down from the avatar origin.
	GroundRaycast GroundPolicy = iota
	// GroundVelocity treats a near-zero vertical speed as grounded.
	GroundVelocity
)

func (p GroundPolicy) String() string {
	switch p {
	case GroundVelocity:
		return "velocity"
	}
	return "raycast"
}

// CameraMode selects the camera follow strategy.
type CameraMode int

const (
	// CameraFixed follows at a constant world-space offset.
	CameraFixed CameraMode = iota
	// CameraOrbit follows in spherical coordinates the user can drag and zoom.
	CameraOrbit
)

func (m CameraMode) String() string {
	switch m {
	case CameraOrbit:
		return "orbit"
	}
	return "fixed"
}

// LocomotionConfig contains avatar movement tuning
type LocomotionConfig struct {
	Speed        float64
	RunSpeed     float64
	JumpForce    float64
	GravityScale float64 // Forwarded to the physics body, the core never integrates gravity
	AirControl   float64 // Fraction of movement authority while airborne (0.0-1.0)

	MovementDeadband float64 // Stick magnitude below which the avatar is not "moving"
	FrictionFactor   float64 // Horizontal speed multiplier per reference tick when idle on ground
	FrictionRate     float64 // Reference ticks per second FrictionFactor was tuned for
	TurnSmoothing    float64 // How fast facing yaw follows the movement direction (0.0-1.0)
}

// GroundConfig contains ground contact detection configuration
type GroundConfig struct {
	Policy          GroundPolicy
	RayLength       float64 // Max hit distance below the avatar origin
	VelocityEpsilon float64 // |vy| below this counts as grounded (GroundVelocity only)
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	Mode         CameraMode
	Offset       mgl64.Vec3 // Initial offset from the target, converted to spherical for orbit
	LookAtOffset mgl64.Vec3 // Added to the target to get the look-at point
	Damping      float64    // Lerp factor per tick (0.0-1.0]

	MinDistance   float64
	MaxDistance   float64
	MinPolarAngle float64 // Radians from straight up
	MaxPolarAngle float64

	RotationSpeed   float64 // Drag multiplier, applied as delta * RotationSpeed * 0.01
	ZoomSpeed       float64 // Radius change per wheel/pinch unit
	StickOrbitSpeed float64 // Radians per second at full right-stick deflection
	AutoRotate      bool
	AutoRotateSpeed float64 // Radians per second
}

// AnimationConfig contains thresholds for the motion label classifier
type AnimationConfig struct {
	RunThreshold  float64 // Horizontal speed above which grounded motion is "run"
	WalkThreshold float64 // Horizontal speed above which grounded motion is "walk"
	JumpThreshold float64 // Vertical speed above which airborne motion is "jump"
}

// RespawnConfig contains fall-out reset configuration
type RespawnConfig struct {
	FallResetY    float64
	SpawnPosition mgl64.Vec3
}

// Snapshot is one immutable set of tuning values. A tuning change produces a
// new Snapshot; nothing edits one in place once it is published.
type Snapshot struct {
	Locomotion LocomotionConfig
	Ground     GroundConfig
	Camera     CameraConfig
	Animation  AnimationConfig
	Respawn    RespawnConfig
	Input      InputConfig
}

// Global default configuration instances
var Locomotion LocomotionConfig
var Ground GroundConfig
var Camera CameraConfig
var Animation AnimationConfig
var Respawn RespawnConfig

const (
	minCameraDistance = 0.01
	minCameraDamping  = 0.001
	defaultPollPeriod = 100 * time.Millisecond
)

func init() {
	// Locomotion Config
	Locomotion = LocomotionConfig{
		Speed:        8.0,
		RunSpeed:     12.0,
		JumpForce:    15.0,
		GravityScale: 1.0,
		AirControl:   0.3,

		MovementDeadband: 0.1,
		FrictionFactor:   0.8,
		FrictionRate:     60.0,
		TurnSmoothing:    0.1,
	}

	// Ground Config
	Ground = GroundConfig{
		Policy:          GroundRaycast,
		RayLength:       0.7,
		VelocityEpsilon: 0.5,
	}

	// Camera Config
	Camera = CameraConfig{
		Mode:         CameraOrbit,
		Offset:       mgl64.Vec3{0, 5, 10},
		LookAtOffset: mgl64.Vec3{0, 1, 0},
		Damping:      0.05,

		MinDistance:   3.0,
		MaxDistance:   20.0,
		MinPolarAngle: 0,
		MaxPolarAngle: math.Pi / 2.2, // Never dip under the horizon

		RotationSpeed:   0.5,
		ZoomSpeed:       0.01,
		StickOrbitSpeed: 2.5,
		AutoRotate:      false,
		AutoRotateSpeed: 0.5,
	}

	// Animation Config
	Animation = AnimationConfig{
		RunThreshold:  6.0,
		WalkThreshold: 0.1,
		JumpThreshold: 0.5,
	}

	// Respawn Config
	Respawn = RespawnConfig{
		FallResetY:    -50.0,
		SpawnPosition: mgl64.Vec3{0, 2, 0},
	}
}

// Default returns a snapshot of the package defaults.
func Default() Snapshot {
	return Snapshot{
		Locomotion: Locomotion,
		Ground:     Ground,
		Camera:     Camera,
		Animation:  Animation,
		Respawn:    Respawn,
		Input:      Input.clone(),
	}
}

// Sanitize returns a copy with every out-of-range value clamped to the
// nearest valid bound. It never fails.
func (s Snapshot) Sanitize() Snapshot {
	out := s
	out.Input = s.Input.clone()

	l := &out.Locomotion
	l.Speed = nonNegative(l.Speed)
	l.RunSpeed = nonNegative(l.RunSpeed)
	l.JumpForce = nonNegative(l.JumpForce)
	l.GravityScale = nonNegative(l.GravityScale)
	l.AirControl = clamp(l.AirControl, 0, 1)
	l.MovementDeadband = nonNegative(l.MovementDeadband)
	l.FrictionFactor = clamp(l.FrictionFactor, 0, 1)
	l.FrictionRate = nonNegative(l.FrictionRate)
	l.TurnSmoothing = clamp(l.TurnSmoothing, 0, 1)

	g := &out.Ground
	if g.Policy != GroundVelocity {
		g.Policy = GroundRaycast
	}
	g.RayLength = nonNegative(g.RayLength)
	g.VelocityEpsilon = nonNegative(g.VelocityEpsilon)

	c := &out.Camera
	if c.Mode != CameraOrbit {
		c.Mode = CameraFixed
	}
	c.Damping = clamp(c.Damping, minCameraDamping, 1)
	c.MinDistance = math.Max(minCameraDistance, c.MinDistance)
	c.MaxDistance = math.Max(c.MinDistance, c.MaxDistance)
	c.MinPolarAngle = clamp(c.MinPolarAngle, 0, math.Pi)
	c.MaxPolarAngle = clamp(c.MaxPolarAngle, c.MinPolarAngle, math.Pi)
	c.RotationSpeed = nonNegative(c.RotationSpeed)
	c.ZoomSpeed = nonNegative(c.ZoomSpeed)
	c.StickOrbitSpeed = nonNegative(c.StickOrbitSpeed)

	a := &out.Animation
	a.WalkThreshold = nonNegative(a.WalkThreshold)
	a.RunThreshold = math.Max(a.WalkThreshold, a.RunThreshold)

	in := &out.Input
	in.GamepadDeadzone = clamp(in.GamepadDeadzone, 0, 1)
	in.TouchDeadzone = clamp(in.TouchDeadzone, 0, 1)
	in.MouseSensitivity = nonNegative(in.MouseSensitivity)
	in.GamepadSensitivity = nonNegative(in.GamepadSensitivity)
	in.TouchSensitivity = nonNegative(in.TouchSensitivity)
	if in.GamepadPollInterval <= 0 {
		in.GamepadPollInterval = defaultPollPeriod
	}

	return out
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
