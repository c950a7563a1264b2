package systems

import (
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the fixed step the pipeline runs at.
func tickSeconds() float64 {
	return 1.0 / float64(cfg.C.TPS)
}

func eachAvatar(e *ecs.ECS, fn func(*components.AvatarData)) {
	components.Avatar.Each(e.World, func(entry *donburi.Entry) {
		fn(components.Avatar.Get(entry))
	})
}

// UpdateGround mirrors each avatar's body and resolves ground contact.
func UpdateGround(e *ecs.ECS) {
	eachAvatar(e, func(a *components.AvatarData) {
		a.Controller.SenseGround()
	})
}

// UpdateIntent polls the input aggregator.
func UpdateIntent(e *ecs.ECS) {
	eachAvatar(e, func(a *components.AvatarData) {
		a.Controller.ReadIntent()
	})
}

// UpdateMovement solves and writes avatar velocities.
func UpdateMovement(e *ecs.ECS) {
	dt := tickSeconds()
	eachAvatar(e, func(a *components.AvatarData) {
		a.Controller.Move(dt)
	})
}

// UpdateAnimation classifies motion and advances the active clip.
func UpdateAnimation(e *ecs.ECS) {
	components.Avatar.Each(e.World, func(entry *donburi.Entry) {
		components.Avatar.Get(entry).Controller.Animate()
		components.Animation.Get(entry).Clips.Update()
	})
}

// UpdateRespawn puts fallen avatars back on the spawn point.
func UpdateRespawn(e *ecs.ECS) {
	eachAvatar(e, func(a *components.AvatarData) {
		if a.Controller.GuardFallout() {
			ShowMessage(e, "Respawned")
		}
	})
}
