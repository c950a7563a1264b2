package locomotion

import (
	"math"
	"testing"

	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/gamemath"
	"github.com/automoto/strider/shared/intent"
	"github.com/automoto/strider/shared/leveldata"
	"github.com/automoto/strider/shared/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

const tick = 1.0 / 60

type stubCaster struct {
	hits []physics.RayHit
	last mgl64.Vec3
}

func (s *stubCaster) Raycast(origin, direction mgl64.Vec3) []physics.RayHit {
	s.last = direction
	return s.hits
}

type stubBody struct {
	pos, vel mgl64.Vec3
}

func (b *stubBody) Position() mgl64.Vec3           { return b.pos }
func (b *stubBody) LinearVelocity() mgl64.Vec3     { return b.vel }
func (b *stubBody) SetLinearVelocity(v mgl64.Vec3) { b.vel = v }
func (b *stubBody) SetPosition(p mgl64.Vec3)       { b.pos = p }

func forwardIntent() intent.Intent {
	return intent.Intent{Movement: mgl64.Vec2{0, 1}}
}

func TestGroundRaycastPolicy(t *testing.T) {
	caster := &stubCaster{hits: []physics.RayHit{
		{Distance: 0, SurfaceID: 7},
		{Distance: 0.5, SurfaceID: 1},
	}}
	d := GroundDetector{Config: cfg.Ground, Caster: caster, Self: 7}

	assert.True(t, d.IsGrounded(mgl64.Vec3{}, mgl64.Vec3{0, -20, 0}))
	assert.Equal(t, Down, caster.last)

	caster.hits = []physics.RayHit{{Distance: 0, SurfaceID: 7}, {Distance: 0.71, SurfaceID: 1}}
	assert.False(t, d.IsGrounded(mgl64.Vec3{}, mgl64.Vec3{}), "own body is not ground")

	caster.hits = []physics.RayHit{{Distance: 0.7, SurfaceID: 1}}
	assert.True(t, d.IsGrounded(mgl64.Vec3{}, mgl64.Vec3{}), "distance equal to ray length counts")

	d.Caster = nil
	assert.False(t, d.IsGrounded(mgl64.Vec3{}, mgl64.Vec3{}))
}

func TestGroundVelocityPolicy(t *testing.T) {
	c := cfg.Ground
	c.Policy = cfg.GroundVelocity
	d := GroundDetector{Config: c}

	assert.True(t, d.IsGrounded(mgl64.Vec3{}, mgl64.Vec3{5, 0.49, 0}))
	assert.False(t, d.IsGrounded(mgl64.Vec3{}, mgl64.Vec3{0, -0.5, 0}))
}

func TestGroundDetectorAgainstWorld(t *testing.T) {
	w := physics.NewWorld([]leveldata.Platform{{ID: 1, Min: mgl64.Vec3{-5, -1, -5}, Max: mgl64.Vec3{5, 0, 5}}}, physics.DefaultOptions)
	b := w.AddBody(mgl64.Vec3{0, 0.5, 0}, physics.DefaultHalfExtents)
	d := GroundDetector{Config: cfg.Ground, Caster: w, Self: b.SurfaceID()}

	assert.True(t, d.IsGrounded(b.Position(), b.LinearVelocity()))

	b.SetPosition(mgl64.Vec3{0, 3, 0})
	assert.False(t, d.IsGrounded(b.Position(), b.LinearVelocity()))
}

func TestSolverForwardAtRest(t *testing.T) {
	s := NewSolver(cfg.Locomotion)
	camForward := mgl64.Vec3{3, -4, 0}

	r := s.Step(forwardIntent(), true, camForward, mgl64.Vec3{}, tick)

	assert.InDelta(t, 8.0, r.Horizontal.Len(), 1e-9)
	assert.InDelta(t, 8.0, r.Velocity.X(), 1e-9, "aligned with camera forward on the horizontal plane")
	assert.InDelta(t, 0.0, r.Velocity.Z(), 1e-9)
	assert.Equal(t, 0.0, r.Velocity.Y())
	assert.True(t, r.Moving)
	assert.False(t, r.Jumped)
}

func TestSolverStrafeUsesCameraRight(t *testing.T) {
	s := NewSolver(cfg.Locomotion)
	r := s.Step(intent.Intent{Movement: mgl64.Vec2{1, 0}}, true, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{}, tick)
	assert.InDelta(t, 8.0, r.Velocity.X(), 1e-9)
	assert.InDelta(t, 0.0, r.Velocity.Z(), 1e-9)
}

func TestSolverRunSpeed(t *testing.T) {
	s := NewSolver(cfg.Locomotion)
	in := forwardIntent()
	in.Run = true
	r := s.Step(in, true, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{}, tick)
	assert.InDelta(t, cfg.Locomotion.RunSpeed, r.Horizontal.Len(), 1e-9)
}

func TestSolverAirControlCap(t *testing.T) {
	s := NewSolver(cfg.Locomotion)
	for _, run := range []bool{false, true} {
		for _, m := range []mgl64.Vec2{{0, 1}, {1, 0}, {0.7071, 0.7071}, {-0.3, 0.2}} {
			in := intent.Intent{Movement: m, Run: run}
			r := s.Step(in, false, mgl64.Vec3{1, 0, 1}, mgl64.Vec3{20, -3, 20}, tick)

			active := cfg.Locomotion.Speed
			if run {
				active = cfg.Locomotion.RunSpeed
			}
			assert.LessOrEqual(t, r.Horizontal.Len(), active*cfg.Locomotion.AirControl+1e-9)
			assert.Equal(t, -3.0, r.Velocity.Y())
		}
	}
}

func TestSolverAirborneIdleKeepsMomentum(t *testing.T) {
	s := NewSolver(cfg.Locomotion)
	r := s.Step(intent.Intent{}, false, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{4, 2, -1}, tick)
	assert.Equal(t, mgl64.Vec3{4, 2, -1}, r.Velocity)
	assert.Equal(t, mgl64.Vec3{}, r.MoveDirection)
}

func TestSolverFrictionIsTimeNormalized(t *testing.T) {
	s := NewSolver(cfg.Locomotion)
	idle := intent.Intent{Movement: mgl64.Vec2{0.05, 0}}

	r := s.Step(idle, true, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{10, 0, 0}, tick)
	assert.InDelta(t, 8.0, r.Velocity.X(), 1e-9, "one reference tick applies the factor once")
	assert.False(t, r.Moving, "below the deadband")

	twoTicks := s.Step(idle, true, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{10, 0, 0}, 2*tick)
	oneThenOne := s.Step(idle, true, mgl64.Vec3{0, 0, -1}, r.Velocity, tick)
	assert.InDelta(t, oneThenOne.Velocity.X(), twoTicks.Velocity.X(), 1e-9)

	flat := s.Step(idle, true, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{10, 0, 0}, 0)
	assert.InDelta(t, 8.0, flat.Velocity.X(), 1e-9)
}

func TestSolverJumpOncePerPress(t *testing.T) {
	s := NewSolver(cfg.Locomotion)
	press := intent.Intent{Jump: true}

	jumps := 0
	for i := 0; i < 5; i++ {
		r := s.Step(press, true, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{}, tick)
		if r.Jumped {
			jumps++
			assert.Equal(t, cfg.Locomotion.JumpForce, r.Velocity.Y())
		} else {
			assert.Equal(t, 0.0, r.Velocity.Y())
		}
	}
	assert.Equal(t, 1, jumps, "holding the key does not jump again")

	s.Step(intent.Intent{}, true, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{}, tick)
	r := s.Step(press, true, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{}, tick)
	assert.True(t, r.Jumped, "release re-arms")
}

func TestSolverJumpRequiresGround(t *testing.T) {
	s := NewSolver(cfg.Locomotion)
	r := s.Step(intent.Intent{Jump: true}, false, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, -2, 0}, tick)
	assert.False(t, r.Jumped)
	assert.Equal(t, -2.0, r.Velocity.Y())

	// Held through landing fires once on touchdown
	r = s.Step(intent.Intent{Jump: true, Movement: mgl64.Vec2{0, 1}}, true, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{}, tick)
	assert.True(t, r.Jumped)
	assert.InDelta(t, 8.0, r.Horizontal.Len(), 1e-9)
}

func TestSolverDegenerateCameraForward(t *testing.T) {
	s := NewSolver(cfg.Locomotion)
	r := s.Step(forwardIntent(), true, mgl64.Vec3{0, -1, 0}, mgl64.Vec3{}, tick)
	assert.InDelta(t, -8.0, r.Velocity.Z(), 1e-9)
}

func TestSolverYawFollowsDirection(t *testing.T) {
	s := NewSolver(cfg.Locomotion)
	for i := 0; i < 200; i++ {
		s.Step(intent.Intent{Movement: mgl64.Vec2{1, 0}}, true, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{}, tick)
	}
	assert.InDelta(t, math.Pi/2, s.Yaw(), 1e-6)
}

func TestClassify(t *testing.T) {
	th := cfg.Animation
	cases := []struct {
		name     string
		vel      mgl64.Vec3
		grounded bool
		want     cfg.AnimationLabel
	}{
		{"rising", mgl64.Vec3{0, 0.6, 0}, false, cfg.Jump},
		{"apex", mgl64.Vec3{0, 0.5, 0}, false, cfg.Fall},
		{"falling", mgl64.Vec3{3, -4, 0}, false, cfg.Fall},
		{"run", mgl64.Vec3{6.01, 0, 0}, true, cfg.Run},
		{"run threshold", mgl64.Vec3{6, 0, 0}, true, cfg.Walk},
		{"walk", mgl64.Vec3{0, 0, 0.2}, true, cfg.Walk},
		{"walk threshold", mgl64.Vec3{0.1, 0, 0}, true, cfg.Idle},
		{"idle", mgl64.Vec3{}, true, cfg.Idle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.vel, tc.grounded, th)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, Classify(tc.vel, tc.grounded, th))
		})
	}
}

func TestClassifierReportsChangesOnly(t *testing.T) {
	c := NewClassifier(cfg.Animation)

	label, changed := c.Update(mgl64.Vec3{}, true)
	assert.Equal(t, cfg.Idle, label)
	assert.False(t, changed)

	label, changed = c.Update(mgl64.Vec3{8, 0, 0}, true)
	assert.Equal(t, cfg.Run, label)
	assert.True(t, changed)

	_, changed = c.Update(mgl64.Vec3{9, 0, 0}, true)
	assert.False(t, changed)
	assert.Equal(t, cfg.Run, c.Current())
}

func TestRespawnGuard(t *testing.T) {
	g := RespawnGuard{Config: cfg.RespawnConfig{FallResetY: -50, SpawnPosition: mgl64.Vec3{0, 2, 0}}}

	b := &stubBody{pos: mgl64.Vec3{4, -51, 9}, vel: mgl64.Vec3{1, -30, 2}}
	assert.True(t, g.CheckFallout(b))
	assert.Equal(t, mgl64.Vec3{0, 2, 0}, b.pos)
	assert.Equal(t, mgl64.Vec3{}, b.vel)

	b.pos = mgl64.Vec3{0, -50, 0}
	assert.False(t, g.CheckFallout(b), "exactly on the floor is not a fallout")
	assert.False(t, g.CheckFallout(nil))
}

func TestCameraBasis(t *testing.T) {
	f, r := CameraBasis(mgl64.Vec3{0, -1, -1})
	assert.True(t, f.ApproxEqual(mgl64.Vec3{0, 0, -1}))
	assert.True(t, r.ApproxEqual(mgl64.Vec3{1, 0, 0}))
	assert.InDelta(t, 0.0, f.Dot(gamemath.WorldUp), 1e-12)
}
