package intent

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Joystick is the on-screen stick widget. It turns a touch offset from the
// widget center (screen pixels, +Y down) into a movement vector.
type Joystick struct {
	Radius   float64 // Knob travel in pixels
	Deadzone float64 // Normalized magnitude below which output is zero

	active bool
	knob   mgl64.Vec2
	value  mgl64.Vec2
}

func NewJoystick(radius, deadzone float64) *Joystick {
	return &Joystick{Radius: radius, Deadzone: deadzone}
}

// Update moves the knob to offset (dx, dy) from the center and returns the
// movement vector: clamped to the radius, normalized to [-1, 1], Y inverted so
// pushing up is forward, and zeroed inside the deadzone.
func (j *Joystick) Update(dx, dy float64) mgl64.Vec2 {
	j.active = true
	if j.Radius <= 0 {
		j.knob, j.value = mgl64.Vec2{}, mgl64.Vec2{}
		return j.value
	}

	dist := math.Hypot(dx, dy)
	if dist > j.Radius {
		dx = dx / dist * j.Radius
		dy = dy / dist * j.Radius
	}

	v := mgl64.Vec2{dx / j.Radius, -dy / j.Radius}
	if v.Len() < j.Deadzone {
		j.knob, j.value = mgl64.Vec2{}, mgl64.Vec2{}
		return j.value
	}
	j.knob = mgl64.Vec2{dx, dy}
	j.value = v
	return v
}

// Release recenters the knob.
func (j *Joystick) Release() mgl64.Vec2 {
	j.active = false
	j.knob, j.value = mgl64.Vec2{}, mgl64.Vec2{}
	return j.value
}

// Active reports whether a touch currently holds the knob.
func (j *Joystick) Active() bool {
	return j.active
}

// Knob returns the knob's drawn offset from the center in pixels.
func (j *Joystick) Knob() mgl64.Vec2 {
	return j.knob
}

// Value returns the last movement vector.
func (j *Joystick) Value() mgl64.Vec2 {
	return j.value
}
