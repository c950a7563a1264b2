package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const minimapSize = 160

func horizontalSpeed(x, z float64) float64 {
	return math.Hypot(x, z)
}

// DrawDebug draws a top-down minimap of the physics world and the avatar's
// pipeline state when the overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings, ok := GetSettings(ecs)
	if !ok || !settings.Debug {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	course := components.Level.Get(levelEntry).CurrentCourse
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok || course == nil {
		return
	}
	world := components.Space.Get(spaceEntry).World

	// Minimap in the top-right corner, world X right and world Z down
	w := screen.Bounds().Dx()
	ox, oy := float32(w-minimapSize-8), float32(8)
	scale := float32(minimapSize) / float32(math.Max(course.Width, course.Depth))
	vector.FillRect(screen, ox, oy, minimapSize, minimapSize, color.RGBA{0, 0, 0, 160}, false)

	for _, b := range world.Platforms() {
		c := colorPlatform
		if b.Moving {
			c = colorMoving
		}
		x := ox + float32(b.Min.X())*scale
		y := oy + float32(b.Min.Z())*scale
		vector.StrokeRect(screen, x, y, float32(b.Max.X()-b.Min.X())*scale, float32(b.Max.Z()-b.Min.Z())*scale, 1, c, false)
	}

	avatarEntry, ok := components.Avatar.First(ecs.World)
	if !ok {
		return
	}
	avatar := components.Avatar.Get(avatarEntry)
	st := avatar.Controller.State()
	vector.FillCircle(screen, ox+float32(st.Position.X())*scale, oy+float32(st.Position.Z())*scale, 3, colorAvatar, false)

	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		view := components.Camera.Get(cameraEntry)
		vector.FillCircle(screen, ox+float32(view.Position.X())*scale, oy+float32(view.Position.Z())*scale, 2, colorFacing, false)
	}

	snap := settings.Store.Load()
	sph := avatar.Controller.Rig().Spherical()
	step := avatar.Controller.LastStep()
	lines := []string{
		fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("pos %.2f %.2f %.2f", st.Position.X(), st.Position.Y(), st.Position.Z()),
		fmt.Sprintf("vel %.2f %.2f %.2f", st.Velocity.X(), st.Velocity.Y(), st.Velocity.Z()),
		fmt.Sprintf("grounded %v (%s)  label %s", st.Grounded, snap.Ground.Policy, st.Animation),
		fmt.Sprintf("intent %.2f %.2f jump %v run %v [%s]", st.Intent.Movement.X(), st.Intent.Movement.Y(), st.Intent.Jump, st.Intent.Run, st.Intent.Method),
		fmt.Sprintf("moving %v jumped %v yaw %.2f", step.Moving, step.Jumped, st.Yaw),
		fmt.Sprintf("camera %s r %.2f theta %.2f phi %.2f", snap.Camera.Mode, sph.Radius, sph.Theta, sph.Phi),
		fmt.Sprintf("drag %s  respawns %d  unsaved %v", avatar.Controller.Rig().DragState(), avatar.Respawns, settings.Dirty),
	}
	face := fonts.Small.Get()
	lineStep := lineHeight(face)
	for i, l := range lines {
		drawText(screen, l, face, 8, 36+i*lineStep, cfg.Menu.TextColorSelected)
	}
}
