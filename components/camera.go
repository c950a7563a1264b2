package components

import (
	"github.com/automoto/strider/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ViewData is the rendering camera. It satisfies controller.View.
type ViewData struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	FovY     float64 // Radians
	Near     float64
	Far      float64
}

func (v *ViewData) SetCameraPosition(p mgl64.Vec3) { v.Position = p }
func (v *ViewData) SetCameraLookAt(p mgl64.Vec3)   { v.LookAt = p }

// CameraWorldForward is the unit view direction, zero before the camera is placed.
func (v *ViewData) CameraWorldForward() mgl64.Vec3 {
	return gamemath.NormalizeOrZero(v.LookAt.Sub(v.Position))
}

// ViewProjection returns the combined view and projection matrix for a
// viewport of the given aspect ratio.
func (v *ViewData) ViewProjection(aspect float64) mgl64.Mat4 {
	view := mgl64.LookAtV(v.Position, v.LookAt, gamemath.WorldUp)
	proj := mgl64.Perspective(v.FovY, aspect, v.Near, v.Far)
	return proj.Mul4(view)
}

var Camera = donburi.NewComponentType[ViewData]()
