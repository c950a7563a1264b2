package systems

import (
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/camerarig"
	"github.com/automoto/strider/shared/intent"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// wheelUnit converts ebiten wheel notches into browser-style deltaY units.
const wheelUnit = 100.0

// Reusable slices to avoid allocations
var (
	pressedKeys  []ebiten.Key
	releasedKeys []ebiten.Key
	touchIDs     []ebiten.TouchID
)

// UpdateInput forwards this frame's ebiten device events into the shared
// device store and the camera rig. Must run BEFORE the locomotion systems.
func UpdateInput(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	retuneInput(e, input)
	updateKeys(input.Devices)

	rig := firstRig(e)
	if rig != nil {
		updatePointer(input, rig)
	}
	updateTouches(input, rig)
}

// retuneInput applies a newer tuning snapshot to the joystick and poller.
func retuneInput(e *ecs.ECS, input *components.InputData) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	store := components.Settings.Get(entry).Store
	if v := store.Version(); v != input.TuningVersion {
		input.TuningVersion = v
		intent.ApplyInputConfig(store.Load().Input, input.Joystick, input.Poller)
	}
}

func updateKeys(devices *intent.Devices) {
	pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
	for _, k := range pressedKeys {
		devices.KeyDown(k.String())
	}
	releasedKeys = inpututil.AppendJustReleasedKeys(releasedKeys[:0])
	for _, k := range releasedKeys {
		devices.KeyUp(k.String())
	}
}

func updatePointer(input *components.InputData, rig *camerarig.Rig) {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	inside := x >= 0 && y >= 0 && x < cfg.C.Width && y < cfg.C.Height
	if input.PointerInside && !inside {
		rig.PointerLeave()
	}
	input.PointerInside = inside

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inside {
		rig.PointerDown(fx, fy)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		rig.PointerMove(fx, fy)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		rig.PointerUp()
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		// ebiten reports scroll-up as positive; the rig expects deltaY
		rig.Wheel(-dy * wheelUnit)
	}
}

// updateTouches assigns new touches a role by where they land: the left third
// drives the joystick, the bottom-right corner holds the virtual buttons and
// everything else orbits the camera.
func updateTouches(input *components.InputData, rig *camerarig.Rig) {
	if input.Touches == nil {
		input.Touches = make(map[ebiten.TouchID]components.TouchRole)
	}

	w, h := cfg.C.Width, cfg.C.Height
	justPressed := inpututil.AppendJustPressedTouchIDs(nil)
	for _, id := range justPressed {
		x, y := ebiten.TouchPosition(id)
		role := touchRoleAt(float64(x), float64(y), float64(w), float64(h))
		input.Touches[id] = role
		switch role {
		case components.TouchJoystick:
			input.JoystickOriginX, input.JoystickOriginY = float64(x), float64(y)
		case components.TouchJumpButton:
			input.Devices.SetVirtualButton(cfg.ActionJump, true)
		case components.TouchRunButton:
			input.Devices.SetVirtualButton(cfg.ActionRun, true)
		}
	}

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	var cameraPoints []mgl64.Vec2
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		switch input.Touches[id] {
		case components.TouchJoystick:
			v := input.Joystick.Update(float64(x)-input.JoystickOriginX, float64(y)-input.JoystickOriginY)
			input.Devices.SetJoystick(v)
		case components.TouchCamera:
			cameraPoints = append(cameraPoints, mgl64.Vec2{float64(x), float64(y)})
		}
	}

	for id, role := range input.Touches {
		if !inpututil.IsTouchJustReleased(id) {
			continue
		}
		switch role {
		case components.TouchJoystick:
			input.Devices.SetJoystick(input.Joystick.Release())
		case components.TouchJumpButton:
			input.Devices.SetVirtualButton(cfg.ActionJump, false)
		case components.TouchRunButton:
			input.Devices.SetVirtualButton(cfg.ActionRun, false)
		}
		delete(input.Touches, id)
	}

	if rig != nil {
		updateCameraTouches(input, rig, cameraPoints, justPressed)
	}
}

func updateCameraTouches(input *components.InputData, rig *camerarig.Rig, points []mgl64.Vec2, justPressed []ebiten.TouchID) {
	started := false
	for _, id := range justPressed {
		if input.Touches[id] == components.TouchCamera {
			started = true
		}
	}
	switch {
	case len(points) == 0:
		rig.TouchEnd()
	case started:
		rig.TouchStart(points)
	default:
		rig.TouchMove(points)
	}
}

func touchRoleAt(x, y, w, h float64) components.TouchRole {
	jump, run := virtualButtonCenters(w, h)
	r := cfg.Touch.ButtonRadius
	switch {
	case mgl64.Vec2{x, y}.Sub(jump).Len() <= r:
		return components.TouchJumpButton
	case mgl64.Vec2{x, y}.Sub(run).Len() <= r:
		return components.TouchRunButton
	case x < w/3:
		return components.TouchJoystick
	}
	return components.TouchCamera
}

// virtualButtonCenters places jump and run in the bottom-right corner.
func virtualButtonCenters(w, h float64) (jump, run mgl64.Vec2) {
	m := cfg.Touch.ButtonMargin
	r := cfg.Touch.ButtonRadius
	jump = mgl64.Vec2{w - m - r, h - m - r}
	run = mgl64.Vec2{w - m - 3*r - m, h - m - r}
	return jump, run
}

// ReadGamepad samples the first standard-layout gamepad. ebiten's gamepad
// queries are concurrent-safe, so the poller may call it off the game loop.
func ReadGamepad() (intent.GamepadState, bool) {
	ids := ebiten.AppendGamepadIDs(nil)
	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		st := intent.GamepadState{
			Connected: true,
			Name:      ebiten.GamepadName(id),
			Buttons:   make([]bool, ebiten.StandardGamepadButtonMax+1),
		}
		st.Axes[intent.AxisLeftX] = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		st.Axes[intent.AxisLeftY] = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		st.Axes[intent.AxisRightX] = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		st.Axes[intent.AxisRightY] = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
			st.Buttons[b] = ebiten.IsStandardGamepadButtonPressed(id, b)
		}
		return st, true
	}
	return intent.GamepadState{}, false
}

func firstRig(e *ecs.ECS) *camerarig.Rig {
	entry, ok := components.Avatar.First(e.World)
	if !ok {
		return nil
	}
	return components.Avatar.Get(entry).Controller.Rig()
}
