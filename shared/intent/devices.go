// Package intent fuses keyboard, gamepad and touch state into one normalized
// movement request per tick. It has no dependency on a windowing library;
// platform adapters feed it through the Devices callbacks.
package intent

import (
	"strings"

	cfg "github.com/automoto/strider/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sasha-s/go-deadlock"
)

// Standard gamepad axis indices
const (
	AxisLeftX = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisCount
)

// GamepadState is one reading of a standard-layout gamepad.
type GamepadState struct {
	Connected bool
	Name      string
	Axes      [AxisCount]float64
	Buttons   []bool
}

// Pressed reports whether button index b is down.
func (g GamepadState) Pressed(b int) bool {
	return b >= 0 && b < len(g.Buttons) && g.Buttons[b]
}

// Devices is the raw device state written by input callbacks. Callbacks may
// run on any goroutine; the aggregator reads a copy once per tick.
type Devices struct {
	mu deadlock.Mutex

	keys     map[string]bool
	gamepad  GamepadState
	joystick mgl64.Vec2
	buttons  [cfg.ActionCount]bool // Virtual touch buttons
}

// rawState is a point-in-time copy of Devices.
type rawState struct {
	keys     map[string]bool
	gamepad  GamepadState
	joystick mgl64.Vec2
	buttons  [cfg.ActionCount]bool
}

func NewDevices() *Devices {
	return &Devices{keys: make(map[string]bool)}
}

// KeyDown marks a key code as held. It stays held until KeyUp.
func (d *Devices) KeyDown(code string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keys[code] = true
}

// KeyUp releases a key code.
func (d *Devices) KeyUp(code string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.keys, code)
}

// SetGamepad replaces the gamepad reading. A state with Connected=false is
// treated like DisconnectGamepad.
func (d *Devices) SetGamepad(g GamepadState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !g.Connected {
		d.gamepad = GamepadState{}
		return
	}
	g.Buttons = append([]bool(nil), g.Buttons...)
	d.gamepad = g
}

// DisconnectGamepad drops the gamepad; it contributes nothing afterwards.
func (d *Devices) DisconnectGamepad() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gamepad = GamepadState{}
}

// GamepadConnected reports whether a gamepad reading is present.
func (d *Devices) GamepadConnected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gamepad.Connected
}

// SetJoystick stores the virtual joystick vector, already deadzoned by the widget.
func (d *Devices) SetJoystick(v mgl64.Vec2) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.joystick = v
}

// SetVirtualButton presses or releases an on-screen button bound to action.
func (d *Devices) SetVirtualButton(action cfg.ActionID, pressed bool) {
	if action <= cfg.ActionNone || action >= cfg.ActionCount {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.buttons[action] = pressed
}

// Reset clears every source. Used when input handling is disposed.
func (d *Devices) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keys = make(map[string]bool)
	d.gamepad = GamepadState{}
	d.joystick = mgl64.Vec2{}
	d.buttons = [cfg.ActionCount]bool{}
}

func (d *Devices) snapshot() rawState {
	d.mu.Lock()
	defer d.mu.Unlock()
	keys := make(map[string]bool, len(d.keys))
	for k, v := range d.keys {
		keys[k] = v
	}
	return rawState{
		keys:     keys,
		gamepad:  d.gamepad,
		joystick: d.joystick,
		buttons:  d.buttons,
	}
}

// MethodForGamepad guesses the controller family from its reported name.
func MethodForGamepad(name string) cfg.InputMethod {
	n := strings.ToLower(name)
	if strings.Contains(n, "ps4") || strings.Contains(n, "ps5") ||
		strings.Contains(n, "playstation") || strings.Contains(n, "dualshock") ||
		strings.Contains(n, "dualsense") {
		return cfg.InputPlayStation
	}
	// Default gamepad to Xbox-style
	return cfg.InputXbox
}
