package components

import (
	"github.com/automoto/strider/shared/physics"
	"github.com/yohamta/donburi"
)

// PlatformData identifies a platform of the physics world for drawing.
type PlatformData struct {
	ID     physics.SurfaceID
	Name   string
	Moving bool
}

var Platform = donburi.NewComponentType[PlatformData]()
