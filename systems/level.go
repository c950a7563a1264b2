package systems

import (
	"image/color"

	"github.com/automoto/strider/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const gridStep = 4.0

var (
	colorBackground = color.RGBA{16, 18, 28, 255}
	colorGrid       = color.RGBA{40, 44, 60, 255}
)

// DrawLevel draws a ground grid over the course footprint at height zero.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(colorBackground)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	view := components.Camera.Get(cameraEntry)
	if view.Position == view.LookAt {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	course := components.Level.Get(levelEntry).CurrentCourse
	if course == nil {
		return
	}

	proj := newProjector(view, screen)
	for x := 0.0; x <= course.Width; x += gridStep {
		proj.line(screen, mgl64.Vec3{x, 0, 0}, mgl64.Vec3{x, 0, course.Depth}, colorGrid)
	}
	for z := 0.0; z <= course.Depth; z += gridStep {
		proj.line(screen, mgl64.Vec3{0, 0, z}, mgl64.Vec3{course.Width, 0, z}, colorGrid)
	}
}
