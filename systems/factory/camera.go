package factory

import (
	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.ViewData{
		FovY: mgl64.DegToRad(60),
		Near: 0.1,
		Far:  500,
	})
	return camera
}
