// Package locomotion turns a movement intent into avatar velocity and derives
// the motion label. Nothing here touches a renderer or a window.
package locomotion

import (
	"math"

	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/gamemath"
	"github.com/automoto/strider/shared/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Down is the ground probe direction.
var Down = gamemath.WorldUp.Mul(-1)

// GroundDetector decides whether the avatar stands on something.
type GroundDetector struct {
	Config cfg.GroundConfig
	Caster physics.RayCaster
	Self   physics.SurfaceID // The avatar's own surface, never counted as ground
}

// IsGrounded applies the configured policy. Under GroundRaycast a nil caster
// means no ground. There is no hysteresis.
func (d GroundDetector) IsGrounded(origin, velocity mgl64.Vec3) bool {
	switch d.Config.Policy {
	case cfg.GroundVelocity:
		return math.Abs(velocity.Y()) < d.Config.VelocityEpsilon
	default:
		if d.Caster == nil {
			return false
		}
		for _, hit := range d.Caster.Raycast(origin, Down) {
			if d.Self != 0 && hit.SurfaceID == d.Self {
				continue
			}
			if hit.Distance <= d.Config.RayLength {
				return true
			}
		}
		return false
	}
}
