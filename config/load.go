package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// File is the on-disk tuning format. Every field is optional; omitted values
// keep the defaults.
type File struct {
	Speed           *float64  `yaml:"speed" json:"speed,omitempty"`
	RunSpeed        *float64  `yaml:"runSpeed" json:"runSpeed,omitempty"`
	JumpForce       *float64  `yaml:"jumpForce" json:"jumpForce,omitempty"`
	GravityScale    *float64  `yaml:"gravityScale" json:"gravityScale,omitempty"`
	AirControl      *float64  `yaml:"airControl" json:"airControl,omitempty"`
	GroundRayLength *float64  `yaml:"groundRayLength" json:"groundRayLength,omitempty"`
	CameraOffset    []float64 `yaml:"cameraOffset" json:"cameraOffset,omitempty"`
	CameraDamping   *float64  `yaml:"cameraDamping" json:"cameraDamping,omitempty"`
	MinDistance     *float64  `yaml:"minDistance" json:"minDistance,omitempty"`
	MaxDistance     *float64  `yaml:"maxDistance" json:"maxDistance,omitempty"`
	MinPolarAngle   *float64  `yaml:"minPolarAngle" json:"minPolarAngle,omitempty"`
	MaxPolarAngle   *float64  `yaml:"maxPolarAngle" json:"maxPolarAngle,omitempty"`
	RotationSpeed   *float64  `yaml:"rotationSpeed" json:"rotationSpeed,omitempty"`
	FallResetY      *float64  `yaml:"fallResetY" json:"fallResetY,omitempty"`
	SpawnPosition   []float64 `yaml:"spawnPosition" json:"spawnPosition,omitempty"`

	GroundPolicy          *string   `yaml:"groundPolicy" json:"groundPolicy,omitempty"`
	GroundVelocityEpsilon *float64  `yaml:"groundVelocityEpsilon" json:"groundVelocityEpsilon,omitempty"`
	CameraMode            *string   `yaml:"cameraMode" json:"cameraMode,omitempty"`
	LookAtOffset          []float64 `yaml:"lookAtOffset" json:"lookAtOffset,omitempty"`
	AutoRotate            *bool     `yaml:"autoRotate" json:"autoRotate,omitempty"`
	AutoRotateSpeed       *float64  `yaml:"autoRotateSpeed" json:"autoRotateSpeed,omitempty"`
	ZoomSpeed             *float64  `yaml:"zoomSpeed" json:"zoomSpeed,omitempty"`
	StickOrbitSpeed       *float64  `yaml:"stickOrbitSpeed" json:"stickOrbitSpeed,omitempty"`
	MovementDeadband      *float64  `yaml:"movementDeadband" json:"movementDeadband,omitempty"`
	FrictionFactor        *float64  `yaml:"frictionFactor" json:"frictionFactor,omitempty"`
	RunThreshold          *float64  `yaml:"runThreshold" json:"runThreshold,omitempty"`
	JumpThreshold         *float64  `yaml:"jumpThreshold" json:"jumpThreshold,omitempty"`
	GamepadDeadzone       *float64  `yaml:"gamepadDeadzone" json:"gamepadDeadzone,omitempty"`
	TouchDeadzone         *float64  `yaml:"touchDeadzone" json:"touchDeadzone,omitempty"`
	MouseSensitivity      *float64  `yaml:"mouseSensitivity" json:"mouseSensitivity,omitempty"`
	GamepadSensitivity    *float64  `yaml:"gamepadSensitivity" json:"gamepadSensitivity,omitempty"`
	TouchSensitivity      *float64  `yaml:"touchSensitivity" json:"touchSensitivity,omitempty"`
	GamepadPollInterval   *string   `yaml:"gamepadPollInterval" json:"gamepadPollInterval,omitempty"`
}

// LoadFile reads a YAML tuning file and applies it on top of the defaults.
func LoadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read config %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML tuning data on top of the defaults. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (Snapshot, error) {
	f, err := DecodeFile(data)
	if err != nil {
		return Snapshot{}, err
	}
	return f.Apply(Default())
}

// DecodeFile decodes YAML tuning data without applying it. Empty input yields
// an empty File.
func DecodeFile(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}
	return f, nil
}

// Apply overlays the set fields of f onto base and sanitizes the result.
func (f File) Apply(base Snapshot) (Snapshot, error) {
	s := base
	s.Input = base.Input.clone()

	setFloat(&s.Locomotion.Speed, f.Speed)
	setFloat(&s.Locomotion.RunSpeed, f.RunSpeed)
	setFloat(&s.Locomotion.JumpForce, f.JumpForce)
	setFloat(&s.Locomotion.GravityScale, f.GravityScale)
	setFloat(&s.Locomotion.AirControl, f.AirControl)
	setFloat(&s.Locomotion.MovementDeadband, f.MovementDeadband)
	setFloat(&s.Locomotion.FrictionFactor, f.FrictionFactor)

	setFloat(&s.Ground.RayLength, f.GroundRayLength)
	setFloat(&s.Ground.VelocityEpsilon, f.GroundVelocityEpsilon)
	if f.GroundPolicy != nil {
		p, err := ParseGroundPolicy(*f.GroundPolicy)
		if err != nil {
			return Snapshot{}, err
		}
		s.Ground.Policy = p
	}

	if f.CameraMode != nil {
		m, err := ParseCameraMode(*f.CameraMode)
		if err != nil {
			return Snapshot{}, err
		}
		s.Camera.Mode = m
	}
	if err := setVec3(&s.Camera.Offset, "cameraOffset", f.CameraOffset); err != nil {
		return Snapshot{}, err
	}
	if err := setVec3(&s.Camera.LookAtOffset, "lookAtOffset", f.LookAtOffset); err != nil {
		return Snapshot{}, err
	}
	setFloat(&s.Camera.Damping, f.CameraDamping)
	setFloat(&s.Camera.MinDistance, f.MinDistance)
	setFloat(&s.Camera.MaxDistance, f.MaxDistance)
	setFloat(&s.Camera.MinPolarAngle, f.MinPolarAngle)
	setFloat(&s.Camera.MaxPolarAngle, f.MaxPolarAngle)
	setFloat(&s.Camera.RotationSpeed, f.RotationSpeed)
	setFloat(&s.Camera.ZoomSpeed, f.ZoomSpeed)
	setFloat(&s.Camera.StickOrbitSpeed, f.StickOrbitSpeed)
	setFloat(&s.Camera.AutoRotateSpeed, f.AutoRotateSpeed)
	if f.AutoRotate != nil {
		s.Camera.AutoRotate = *f.AutoRotate
	}

	setFloat(&s.Animation.RunThreshold, f.RunThreshold)
	setFloat(&s.Animation.JumpThreshold, f.JumpThreshold)

	setFloat(&s.Respawn.FallResetY, f.FallResetY)
	if err := setVec3(&s.Respawn.SpawnPosition, "spawnPosition", f.SpawnPosition); err != nil {
		return Snapshot{}, err
	}

	setFloat(&s.Input.GamepadDeadzone, f.GamepadDeadzone)
	setFloat(&s.Input.TouchDeadzone, f.TouchDeadzone)
	setFloat(&s.Input.MouseSensitivity, f.MouseSensitivity)
	setFloat(&s.Input.GamepadSensitivity, f.GamepadSensitivity)
	setFloat(&s.Input.TouchSensitivity, f.TouchSensitivity)
	if f.GamepadPollInterval != nil {
		d, err := time.ParseDuration(*f.GamepadPollInterval)
		if err != nil {
			return Snapshot{}, fmt.Errorf("gamepadPollInterval: %w", err)
		}
		s.Input.GamepadPollInterval = d
	}

	return s.Sanitize(), nil
}

// ToFile converts a snapshot back to the on-disk format.
func ToFile(s Snapshot) File {
	f := File{
		Speed:           ptr(s.Locomotion.Speed),
		RunSpeed:        ptr(s.Locomotion.RunSpeed),
		JumpForce:       ptr(s.Locomotion.JumpForce),
		GravityScale:    ptr(s.Locomotion.GravityScale),
		AirControl:      ptr(s.Locomotion.AirControl),
		GroundRayLength: ptr(s.Ground.RayLength),
		CameraOffset:    s.Camera.Offset[:],
		CameraDamping:   ptr(s.Camera.Damping),
		MinDistance:     ptr(s.Camera.MinDistance),
		MaxDistance:     ptr(s.Camera.MaxDistance),
		MinPolarAngle:   ptr(s.Camera.MinPolarAngle),
		MaxPolarAngle:   ptr(s.Camera.MaxPolarAngle),
		RotationSpeed:   ptr(s.Camera.RotationSpeed),
		FallResetY:      ptr(s.Respawn.FallResetY),
		SpawnPosition:   s.Respawn.SpawnPosition[:],

		GroundPolicy:          ptr(s.Ground.Policy.String()),
		GroundVelocityEpsilon: ptr(s.Ground.VelocityEpsilon),
		CameraMode:            ptr(s.Camera.Mode.String()),
		LookAtOffset:          s.Camera.LookAtOffset[:],
		AutoRotate:            ptr(s.Camera.AutoRotate),
		AutoRotateSpeed:       ptr(s.Camera.AutoRotateSpeed),
		ZoomSpeed:             ptr(s.Camera.ZoomSpeed),
		StickOrbitSpeed:       ptr(s.Camera.StickOrbitSpeed),
		MovementDeadband:      ptr(s.Locomotion.MovementDeadband),
		FrictionFactor:        ptr(s.Locomotion.FrictionFactor),
		RunThreshold:          ptr(s.Animation.RunThreshold),
		JumpThreshold:         ptr(s.Animation.JumpThreshold),
		GamepadDeadzone:       ptr(s.Input.GamepadDeadzone),
		TouchDeadzone:         ptr(s.Input.TouchDeadzone),
		MouseSensitivity:      ptr(s.Input.MouseSensitivity),
		GamepadSensitivity:    ptr(s.Input.GamepadSensitivity),
		TouchSensitivity:      ptr(s.Input.TouchSensitivity),
		GamepadPollInterval:   ptr(s.Input.GamepadPollInterval.String()),
	}
	return f
}

// ParseGroundPolicy converts "raycast" or "velocity" to a GroundPolicy.
func ParseGroundPolicy(s string) (GroundPolicy, error) {
	switch s {
	case "raycast", "":
		return GroundRaycast, nil
	case "velocity":
		return GroundVelocity, nil
	}
	return GroundRaycast, fmt.Errorf("unknown ground policy %q", s)
}

// ParseCameraMode converts "fixed" or "orbit" to a CameraMode.
func ParseCameraMode(s string) (CameraMode, error) {
	switch s {
	case "fixed":
		return CameraFixed, nil
	case "orbit", "":
		return CameraOrbit, nil
	}
	return CameraOrbit, fmt.Errorf("unknown camera mode %q", s)
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setVec3(dst *mgl64.Vec3, name string, v []float64) error {
	if v == nil {
		return nil
	}
	if len(v) != 3 {
		return fmt.Errorf("%s: want 3 components, got %d", name, len(v))
	}
	*dst = mgl64.Vec3{v[0], v[1], v[2]}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
