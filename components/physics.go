package components

import (
	"github.com/automoto/strider/shared/physics"
	"github.com/yohamta/donburi"
)

// SpaceData holds the reference physics world the avatars live in.
type SpaceData struct {
	World *physics.World
}

var Space = donburi.NewComponentType[SpaceData]()
