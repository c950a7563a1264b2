package locomotion

import (
	"math"

	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/gamemath"
	"github.com/automoto/strider/shared/intent"
	"github.com/go-gl/mathgl/mgl64"
)

// fallbackForward is used when the camera looks straight up or down.
var fallbackForward = mgl64.Vec3{0, 0, -1}

// Result is the outcome of one solver step.
type Result struct {
	Velocity      mgl64.Vec3 // Full vector to write to the body
	Horizontal    mgl64.Vec3 // Velocity with Y zeroed
	MoveDirection mgl64.Vec3 // Unit camera-relative direction, zero when idle
	Moving        bool
	Jumped        bool
}

// Solver converts intent into a kinematic velocity override. It keeps the jump
// latch and the smoothed facing yaw between steps.
type Solver struct {
	Config cfg.LocomotionConfig

	jumpHeld bool // Jump has fired and not been released since
	yaw      float64
}

func NewSolver(c cfg.LocomotionConfig) *Solver {
	return &Solver{Config: c}
}

// CameraBasis projects the camera's world forward onto the horizontal plane
// and returns it with its right vector.
func CameraBasis(cameraForward mgl64.Vec3) (forward, right mgl64.Vec3) {
	forward = gamemath.NormalizeOrZero(gamemath.Horizontal(cameraForward))
	if forward.Len() == 0 {
		forward = fallbackForward
	}
	right = forward.Cross(gamemath.WorldUp)
	return forward, right
}

// Step computes the velocity to write this tick. The vertical component is
// current.Y unless a jump fires.
func (s *Solver) Step(in intent.Intent, grounded bool, cameraForward, current mgl64.Vec3, dt float64) Result {
	c := s.Config
	forward, right := CameraBasis(cameraForward)

	dir := right.Mul(in.Movement.X()).Add(forward.Mul(in.Movement.Y()))
	dir = gamemath.NormalizeOrZero(dir)

	activeSpeed := c.Speed
	if in.Run {
		activeSpeed = c.RunSpeed
	}
	control := 1.0
	if !grounded {
		control = c.AirControl
	}

	moving := in.Movement.Len() > c.MovementDeadband

	horizontal := gamemath.Horizontal(current)
	switch {
	case moving:
		horizontal = dir.Mul(activeSpeed * control)
	case grounded:
		horizontal = gamemath.ApplyFriction(horizontal, gamemath.DecayFactor(c.FrictionFactor, c.FrictionRate, dt))
	}

	vy := current.Y()
	jumped := false
	if !in.Jump {
		s.jumpHeld = false
	} else if grounded && !s.jumpHeld {
		vy = c.JumpForce
		jumped = true
		s.jumpHeld = true
	}

	if moving && dir.Len() > 0 {
		s.yaw = gamemath.WrapAngle(gamemath.LerpAngle(s.yaw, math.Atan2(dir.X(), dir.Z()), c.TurnSmoothing))
	} else {
		dir = mgl64.Vec3{}
	}

	return Result{
		Velocity:      mgl64.Vec3{horizontal.X(), vy, horizontal.Z()},
		Horizontal:    horizontal,
		MoveDirection: dir,
		Moving:        moving,
		Jumped:        jumped,
	}
}

// Yaw is the smoothed facing angle around +Y, 0 facing +Z.
func (s *Solver) Yaw() float64 {
	return s.yaw
}
