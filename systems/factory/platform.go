package factory

import (
	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	"github.com/automoto/strider/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, box physics.Box) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	components.Platform.SetValue(platform, components.PlatformData{
		ID:     box.ID,
		Name:   box.Name,
		Moving: box.Moving,
	})
	return platform
}
