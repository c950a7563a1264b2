package factory

import (
	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	"github.com/automoto/strider/shared/leveldata"
	"github.com/automoto/strider/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the physics world for course and one platform entity
// per surface.
func CreateSpace(ecs *ecs.ECS, course *leveldata.CourseData, opts physics.Options) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	world := physics.NewWorld(course.Platforms, opts)
	components.Space.SetValue(space, components.SpaceData{World: world})

	for _, b := range world.Platforms() {
		CreatePlatform(ecs, b)
	}
	return space
}
