package intent

import (
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Intent is the normalized per-tick movement request.
// Movement.X is strafe (+right), Movement.Y is forward (+forward); |Movement| <= 1.
type Intent struct {
	Movement mgl64.Vec2
	Jump     bool
	Run      bool

	// Camera is the right-stick orbit request, deadzoned but not normalized.
	Camera mgl64.Vec2
	// Method is the device family that last produced non-zero input.
	Method cfg.InputMethod
}

// Idle reports whether the intent requests nothing.
func (in Intent) Idle() bool {
	return in.Movement.Len() < gamemath.Epsilon && !in.Jump && !in.Run
}

// Aggregator reads Devices once per tick and produces an Intent.
type Aggregator struct {
	devices *Devices
	store   *cfg.Store

	lastMethod cfg.InputMethod
}

// NewAggregator reads bindings and deadzones from store on every poll, so a
// replaced configuration applies from the next tick.
func NewAggregator(devices *Devices, store *cfg.Store) *Aggregator {
	return &Aggregator{
		devices:    devices,
		store:      store,
		lastMethod: cfg.InputKeyboard,
	}
}

// Devices returns the raw state the aggregator reads.
func (a *Aggregator) Devices() *Devices {
	return a.devices
}

// Poll computes the intent for this tick. It never clears device state.
func (a *Aggregator) Poll() Intent {
	raw := a.devices.snapshot()
	in := a.store.Load().Input

	var out Intent
	var keyboardUsed, gamepadUsed, touchUsed bool

	// Keyboard: each active direction contributes once, however many keys map to it
	if keysHeld(raw.keys, in.Bindings[cfg.ActionForward]) {
		out.Movement[1]++
		keyboardUsed = true
	}
	if keysHeld(raw.keys, in.Bindings[cfg.ActionBack]) {
		out.Movement[1]--
		keyboardUsed = true
	}
	if keysHeld(raw.keys, in.Bindings[cfg.ActionRight]) {
		out.Movement[0]++
		keyboardUsed = true
	}
	if keysHeld(raw.keys, in.Bindings[cfg.ActionLeft]) {
		out.Movement[0]--
		keyboardUsed = true
	}
	if keysHeld(raw.keys, in.Bindings[cfg.ActionJump]) {
		out.Jump = true
		keyboardUsed = true
	}
	if keysHeld(raw.keys, in.Bindings[cfg.ActionRun]) {
		out.Run = true
		keyboardUsed = true
	}

	// Gamepad
	if raw.gamepad.Connected {
		dz := in.GamepadDeadzone
		sens := in.GamepadSensitivity
		lx := gamemath.ApplyDeadzone(raw.gamepad.Axes[AxisLeftX], dz) * sens
		// Stick down is positive; forward is up
		ly := -gamemath.ApplyDeadzone(raw.gamepad.Axes[AxisLeftY], dz) * sens
		out.Movement[0] += lx
		out.Movement[1] += ly

		out.Camera = mgl64.Vec2{
			gamemath.ApplyDeadzone(raw.gamepad.Axes[AxisRightX], dz) * sens,
			gamemath.ApplyDeadzone(raw.gamepad.Axes[AxisRightY], dz) * sens,
		}

		jump := buttonsHeld(raw.gamepad, in.Bindings[cfg.ActionJump])
		run := buttonsHeld(raw.gamepad, in.Bindings[cfg.ActionRun])
		out.Jump = out.Jump || jump
		out.Run = out.Run || run

		if lx != 0 || ly != 0 || jump || run || out.Camera.Len() > 0 {
			gamepadUsed = true
		}
	}

	// Touch
	touch := raw.joystick.Mul(in.TouchSensitivity)
	out.Movement = out.Movement.Add(touch)
	if raw.buttons[cfg.ActionJump] {
		out.Jump = true
	}
	if raw.buttons[cfg.ActionRun] {
		out.Run = true
	}
	if touch.Len() > 0 || raw.buttons[cfg.ActionJump] || raw.buttons[cfg.ActionRun] {
		touchUsed = true
	}

	out.Movement = gamemath.ClampLength2(out.Movement, 1)

	switch {
	case keyboardUsed:
		a.lastMethod = cfg.InputKeyboard
	case gamepadUsed:
		a.lastMethod = MethodForGamepad(raw.gamepad.Name)
	case touchUsed:
		a.lastMethod = cfg.InputTouch
	}
	out.Method = a.lastMethod

	return out
}

func keysHeld(keys map[string]bool, b cfg.InputBinding) bool {
	for _, k := range b.Keys {
		if keys[k] {
			return true
		}
	}
	return false
}

func buttonsHeld(g GamepadState, b cfg.InputBinding) bool {
	for _, btn := range b.GamepadButtons {
		if g.Pressed(btn) {
			return true
		}
	}
	return false
}
