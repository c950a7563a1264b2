package components

import (
	"github.com/automoto/strider/shared/intent"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// TouchRole is what a touch contact is driving.
type TouchRole int

const (
	TouchCamera TouchRole = iota
	TouchJoystick
	TouchJumpButton
	TouchRunButton
)

// InputData bridges ebiten device state into the shared raw device store.
type InputData struct {
	Devices  *intent.Devices
	Poller   *intent.GamepadPoller
	Joystick *intent.Joystick

	// Screen-space joystick origin, valid while the joystick touch is held
	JoystickOriginX, JoystickOriginY float64

	Touches       map[ebiten.TouchID]TouchRole
	PointerInside bool

	TuningVersion uint64 // Store version the joystick and poller were tuned from
}

var Input = donburi.NewComponentType[InputData]()
