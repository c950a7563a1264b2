package config

import "fmt"

// TuningOption is one value the in-game tuning menu can step.
type TuningOption struct {
	Label    string
	Step     float64
	Min, Max float64
	Field    func(*Snapshot) *float64
}

// TuningOptions are listed in menu order.
var TuningOptions = []TuningOption{
	{"Walk speed", 0.5, 0, 30, func(s *Snapshot) *float64 { return &s.Locomotion.Speed }},
	{"Run speed", 0.5, 0, 40, func(s *Snapshot) *float64 { return &s.Locomotion.RunSpeed }},
	{"Jump force", 1, 0, 40, func(s *Snapshot) *float64 { return &s.Locomotion.JumpForce }},
	{"Gravity scale", 0.1, 0, 5, func(s *Snapshot) *float64 { return &s.Locomotion.GravityScale }},
	{"Air control", 0.05, 0, 1, func(s *Snapshot) *float64 { return &s.Locomotion.AirControl }},
	{"Camera damping", 0.01, minCameraDamping, 1, func(s *Snapshot) *float64 { return &s.Camera.Damping }},
	{"Max distance", 1, minCameraDistance, 60, func(s *Snapshot) *float64 { return &s.Camera.MaxDistance }},
	{"Rotation speed", 0.1, 0, 5, func(s *Snapshot) *float64 { return &s.Camera.RotationSpeed }},
	{"Mouse sensitivity", 0.1, 0, 5, func(s *Snapshot) *float64 { return &s.Input.MouseSensitivity }},
	{"Gamepad deadzone", 0.05, 0, 0.9, func(s *Snapshot) *float64 { return &s.Input.GamepadDeadzone }},
	{"Fall reset Y", 5, -500, 0, func(s *Snapshot) *float64 { return &s.Respawn.FallResetY }},
}

// Adjust returns a sanitized copy of s with the option moved dir steps.
func (o TuningOption) Adjust(s Snapshot, dir int) Snapshot {
	out := s.Sanitize()
	p := o.Field(&out)
	*p = clamp(*p+float64(dir)*o.Step, o.Min, o.Max)
	return out.Sanitize()
}

// Value formats the option's current value in s.
func (o TuningOption) Value(s *Snapshot) string {
	c := *s
	return fmt.Sprintf("%.2f", *o.Field(&c))
}
