package components

import (
	"github.com/automoto/strider/shared/controller"
	"github.com/automoto/strider/shared/physics"
	"github.com/yohamta/donburi"
)

// AvatarData links an avatar entity to its pipeline and physics body.
type AvatarData struct {
	Controller *controller.Controller
	Body       *physics.RigidBody
	Respawns   int
}

var Avatar = donburi.NewComponentType[AvatarData]()
