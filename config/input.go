package config

import "time"

// ActionID represents a logical locomotion action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionJump
	ActionRun
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the physical keys and buttons bound to an action.
// Keys are key codes as reported by the platform layer (e.g. "W", "ArrowUp",
// "ShiftLeft"); buttons are standard-layout gamepad button indices.
type InputBinding struct {
	Keys           []string
	GamepadButtons []int
}

// InputConfig holds all input mappings and device tuning
type InputConfig struct {
	Bindings map[ActionID]InputBinding

	// Deadzones (0.0 to 1.0)
	GamepadDeadzone float64
	TouchDeadzone   float64

	// Sensitivity multipliers
	MouseSensitivity   float64
	GamepadSensitivity float64
	TouchSensitivity   float64

	// How often connected gamepads are re-read, independent of the frame rate
	GamepadPollInterval time.Duration
}

// Standard gamepad layout face buttons
const (
	GamepadButtonSouth = 0 // A / Cross
	GamepadButtonEast  = 1 // B / Circle
)

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		GamepadDeadzone:     0.1,
		TouchDeadzone:       0.1,
		MouseSensitivity:    1.0,
		GamepadSensitivity:  1.0,
		TouchSensitivity:    1.0,
		GamepadPollInterval: 100 * time.Millisecond,
		Bindings: map[ActionID]InputBinding{
			ActionForward: {
				Keys: []string{"W", "ArrowUp"},
			},
			ActionBack: {
				Keys: []string{"S", "ArrowDown"},
			},
			ActionLeft: {
				Keys: []string{"A", "ArrowLeft"},
			},
			ActionRight: {
				Keys: []string{"D", "ArrowRight"},
			},
			ActionJump: {
				Keys:           []string{"Space"},
				GamepadButtons: []int{GamepadButtonSouth},
			},
			ActionRun: {
				Keys:           []string{"ShiftLeft", "ShiftRight"},
				GamepadButtons: []int{GamepadButtonEast},
			},
		},
	}
}

// clone copies the binding table so snapshots never share slices or maps.
func (c InputConfig) clone() InputConfig {
	out := c
	out.Bindings = make(map[ActionID]InputBinding, len(c.Bindings))
	for id, b := range c.Bindings {
		out.Bindings[id] = InputBinding{
			Keys:           append([]string(nil), b.Keys...),
			GamepadButtons: append([]int(nil), b.GamepadButtons...),
		}
	}
	return out
}
