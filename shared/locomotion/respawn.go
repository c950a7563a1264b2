package locomotion

import (
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"
)

// RespawnGuard puts the avatar back on the spawn point after it falls out of
// the course. It keeps no score or lives.
type RespawnGuard struct {
	Config cfg.RespawnConfig
}

// Fallen reports whether position is below the reset floor.
func (g RespawnGuard) Fallen(position mgl64.Vec3) bool {
	return position.Y() < g.Config.FallResetY
}

// CheckFallout resets the body to the spawn point with zero velocity when it
// has fallen. It returns true when a reset happened.
func (g RespawnGuard) CheckFallout(body physics.Body) bool {
	if body == nil {
		return false
	}
	pos := body.Position()
	if !g.Fallen(pos) {
		return false
	}

	body.SetPosition(g.Config.SpawnPosition)
	body.SetLinearVelocity(mgl64.Vec3{})

	log.Info().
		Floats64("from", pos[:]).
		Floats64("spawn", g.Config.SpawnPosition[:]).
		Msg("avatar fell out of the course, respawning")
	return true
}
