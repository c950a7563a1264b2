package systems

import (
	"github.com/automoto/strider/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera moves the view toward the first avatar. With no avatar the
// camera keeps its last pose.
func UpdateCamera(e *ecs.ECS) {
	entry, ok := components.Avatar.First(e.World)
	if !ok {
		return
	}
	components.Avatar.Get(entry).Controller.Follow(tickSeconds())
}
