package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorWidget     = color.RGBA{255, 255, 255, 60}
	colorWidgetDown = color.RGBA{255, 255, 255, 140}
)

// DrawHUD draws the motion label, control hints for the last input method and,
// once touch has been used, the on-screen joystick and buttons.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Avatar.First(ecs.World)
	if !ok {
		return
	}
	st := components.Avatar.Get(entry).Controller.State()

	h := screen.Bounds().Dy()
	status := fmt.Sprintf("%s  %.1f m/s", st.Animation, horizontalSpeed(st.Velocity[0], st.Velocity[2]))
	drawText(screen, status, fonts.Bold.Get(), 8, 8, cfg.Menu.TextColorSelected)
	small := fonts.Small.Get()
	drawText(screen, controlHint(st.Intent.Method), small, 8, h-8-lineHeight(small), cfg.Menu.TextColorNormal)

	if st.Intent.Method == cfg.InputTouch {
		drawTouchControls(ecs, screen)
	}
}

func controlHint(method cfg.InputMethod) string {
	switch method {
	case cfg.InputPlayStation:
		return "Left Stick: Move   Right Stick: Orbit   Cross: Jump   Circle: Run"
	case cfg.InputXbox:
		return "Left Stick: Move   Right Stick: Orbit   A: Jump   B: Run"
	case cfg.InputTouch:
		return "Left: Move   Drag: Orbit   Pinch: Zoom"
	}
	return "WASD/Arrows: Move   Space: Jump   Shift: Run   Drag: Orbit   Wheel: Zoom   Tab: Tuning   F1: Debug"
}

func drawTouchControls(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	if input.Joystick.Active() {
		cx, cy := float32(input.JoystickOriginX), float32(input.JoystickOriginY)
		knob := input.Joystick.Knob()
		vector.StrokeCircle(screen, cx, cy, float32(input.Joystick.Radius), 2, colorWidget, true)
		vector.FillCircle(screen, cx+float32(knob.X()), cy+float32(knob.Y()), float32(input.Joystick.Radius/3), colorWidgetDown, true)
	}

	jump, run := virtualButtonCenters(w, h)
	r := float32(cfg.Touch.ButtonRadius)
	jumpColor, runColor := colorWidget, colorWidget
	for _, role := range input.Touches {
		switch role {
		case components.TouchJumpButton:
			jumpColor = colorWidgetDown
		case components.TouchRunButton:
			runColor = colorWidgetDown
		}
	}
	vector.FillCircle(screen, float32(jump.X()), float32(jump.Y()), r, jumpColor, true)
	vector.FillCircle(screen, float32(run.X()), float32(run.Y()), r, runColor, true)
	drawButtonLabel(screen, "JUMP", jump.X(), jump.Y())
	drawButtonLabel(screen, "RUN", run.X(), run.Y())
}

// drawButtonLabel centers s on (cx, cy).
func drawButtonLabel(screen *ebiten.Image, s string, cx, cy float64) {
	face := fonts.Small.Get()
	w, h := fonts.Measure(face, s)
	drawText(screen, s, face, int(cx)-w/2, int(cy)-h/2, cfg.Menu.TextColorSelected)
}
