package systems

import (
	"github.com/automoto/strider/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the reference physics world: moving platforms first,
// then bodies with the velocities written this tick.
func UpdatePhysics(e *ecs.ECS) {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	components.Space.Get(entry).World.Step(tickSeconds())
}
