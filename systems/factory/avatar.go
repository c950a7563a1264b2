package factory

import (
	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/assets/animations"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/controller"
	"github.com/automoto/strider/shared/intent"
	"github.com/automoto/strider/shared/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAvatar adds a body to world at spawn and wires its pipeline to the
// shared device store and the rendering camera.
func CreateAvatar(ecs *ecs.ECS, world *physics.World, store *cfg.Store, devices *intent.Devices, view controller.View, spawn mgl64.Vec3) *donburi.Entry {
	avatar := archetypes.Avatar.Spawn(ecs)

	body := world.AddBody(spawn, physics.DefaultHalfExtents)
	ctrl := controller.New(store, devices,
		controller.WithBody(body),
		controller.WithRayCaster(world),
		controller.WithView(view),
	)
	components.Avatar.Set(avatar, &components.AvatarData{
		Controller: ctrl,
		Body:       body,
	})

	anim := &components.AnimationData{Clips: animations.NewClipSet(animations.DefaultClips)}
	anim.SetAnimation(cfg.Idle)
	components.Animation.Set(avatar, anim)

	ctrl.OnAnimationChange(func(label cfg.AnimationLabel) {
		components.Animation.Get(avatar).SetAnimation(label)
	})
	ctrl.OnGroundedChange(func(grounded bool) {
		log.Debug().Bool("grounded", grounded).Msg("ground contact changed")
	})
	ctrl.OnRespawn(func(from mgl64.Vec3) {
		components.Avatar.Get(avatar).Respawns++
		log.Info().Floats64("from", from[:]).Msg("avatar respawned")
	})
	ctrl.Rig().OnCursor(setCursor)

	return avatar
}
