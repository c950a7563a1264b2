package locomotion

import (
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Classify derives the motion label from velocity and ground contact.
// Comparisons are strict, so a value exactly on a threshold gets the lower label.
func Classify(velocity mgl64.Vec3, grounded bool, t cfg.AnimationConfig) cfg.AnimationLabel {
	if !grounded {
		if velocity.Y() > t.JumpThreshold {
			return cfg.Jump
		}
		return cfg.Fall
	}

	speed := gamemath.HorizontalSpeed(velocity)
	switch {
	case speed > t.RunThreshold:
		return cfg.Run
	case speed > t.WalkThreshold:
		return cfg.Walk
	}
	return cfg.Idle
}

// Classifier remembers the last label and reports changes.
type Classifier struct {
	Thresholds cfg.AnimationConfig

	current cfg.AnimationLabel
}

func NewClassifier(t cfg.AnimationConfig) *Classifier {
	return &Classifier{Thresholds: t, current: cfg.Idle}
}

// Update classifies and reports whether the label differs from the last one.
func (c *Classifier) Update(velocity mgl64.Vec3, grounded bool) (cfg.AnimationLabel, bool) {
	label := Classify(velocity, grounded, c.Thresholds)
	changed := label != c.current
	c.current = label
	return label, changed
}

// Current returns the last label.
func (c *Classifier) Current() cfg.AnimationLabel {
	return c.current
}
