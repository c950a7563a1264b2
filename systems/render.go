package systems

import (
	"image/color"

	"github.com/automoto/strider/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorPlatform = color.RGBA{150, 150, 160, 255}
	colorMoving   = color.RGBA{240, 160, 40, 255}
	colorAvatar   = color.RGBA{60, 220, 120, 255}
	colorFacing   = color.RGBA{250, 250, 90, 255}
)

// boxEdges indexes corner pairs of a box whose corners are numbered by bits
// x=1, y=2, z=4.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// projector maps world points to screen pixels.
type projector struct {
	mvp  mgl64.Mat4
	w, h float64
}

func newProjector(view *components.ViewData, screen *ebiten.Image) projector {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return projector{mvp: view.ViewProjection(w / h), w: w, h: h}
}

// project returns false for points behind the camera.
func (p projector) project(v mgl64.Vec3) (x, y float32, ok bool) {
	clip := p.mvp.Mul4x1(v.Vec4(1))
	if clip.W() <= 1e-6 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return float32((ndc.X() + 1) / 2 * p.w), float32((1 - ndc.Y()) / 2 * p.h), true
}

func (p projector) line(screen *ebiten.Image, a, b mgl64.Vec3, c color.Color) {
	x0, y0, ok0 := p.project(a)
	x1, y1, ok1 := p.project(b)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, true)
}

func (p projector) box(screen *ebiten.Image, lo, hi mgl64.Vec3, c color.Color) {
	var corners [8]mgl64.Vec3
	for i := range corners {
		corners[i] = lo
		if i&1 != 0 {
			corners[i][0] = hi.X()
		}
		if i&2 != 0 {
			corners[i][1] = hi.Y()
		}
		if i&4 != 0 {
			corners[i][2] = hi.Z()
		}
	}
	for _, e := range boxEdges {
		p.line(screen, corners[e[0]], corners[e[1]], c)
	}
}

// DrawWorld draws platforms and avatars as wireframe boxes seen from the
// follow camera.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	view := components.Camera.Get(cameraEntry)
	if view.Position == view.LookAt {
		return // Not placed yet
	}
	proj := newProjector(view, screen)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, b := range components.Space.Get(spaceEntry).World.Platforms() {
			c := colorPlatform
			if b.Moving {
				c = colorMoving
			}
			proj.box(screen, b.Min, b.Max, c)
		}
	}

	components.Avatar.Each(ecs.World, func(entry *donburi.Entry) {
		avatar := components.Avatar.Get(entry)
		if avatar.Body == nil {
			return
		}
		pos := avatar.Body.Position()
		half := avatar.Body.HalfExtents()

		// Squash a little with the clip phase so the label is visible
		bob := 0.0
		if clip := components.Animation.Get(entry).Clips.Active(); clip != nil {
			bob = 0.05 * clip.Phase()
		}
		lo := pos.Sub(half)
		hi := pos.Add(half).Sub(mgl64.Vec3{0, bob, 0})
		proj.box(screen, lo, hi, colorAvatar)

		st := avatar.Controller.State()
		facing := mgl64.Rotate3DY(st.Yaw).Mul3x1(mgl64.Vec3{0, 0, 1})
		proj.line(screen, pos, pos.Add(facing), colorFacing)
	})
}
