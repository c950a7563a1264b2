// Package controller runs the per-tick locomotion pipeline against external
// physics and rendering collaborators and publishes change notifications.
package controller

import (
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/camerarig"
	"github.com/automoto/strider/shared/intent"
	"github.com/automoto/strider/shared/locomotion"
	"github.com/automoto/strider/shared/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"
)

// View is the rendering collaborator's camera.
type View interface {
	SetCameraPosition(p mgl64.Vec3)
	SetCameraLookAt(p mgl64.Vec3)
	CameraWorldForward() mgl64.Vec3
}

// AvatarState mirrors the body plus the derived motion state.
type AvatarState struct {
	Position  mgl64.Vec3
	Velocity  mgl64.Vec3
	Grounded  bool
	Animation cfg.AnimationLabel
	Yaw       float64
	Intent    intent.Intent
}

// Controller owns one avatar's pipeline. Tick and the stage methods must run
// on a single goroutine; device and camera event methods may not.
type Controller struct {
	store *cfg.Store
	seen  uint64 // Store version the stages were last configured from

	body   physics.Body
	caster physics.RayCaster
	view   View

	input      *intent.Aggregator
	detector   locomotion.GroundDetector
	solver     *locomotion.Solver
	classifier *locomotion.Classifier
	rig        *camerarig.Rig
	guard      locomotion.RespawnGuard

	state    AvatarState
	lastStep locomotion.Result
	notified mgl64.Vec3 // last velocity sent to onVelocity

	onGrounded  []func(bool)
	onVelocity  []func(mgl64.Vec3)
	onAnimation []func(cfg.AnimationLabel)
	onRespawn   []func(from mgl64.Vec3)
}

// Option configures a Controller.
type Option func(*Controller)

// WithBody attaches the avatar's physics body. A body implementing
// physics.Identified has its own surface excluded from ground probes.
func WithBody(b physics.Body) Option {
	return func(c *Controller) { c.SetBody(b) }
}

// WithRayCaster attaches the ground probe.
func WithRayCaster(rc physics.RayCaster) Option {
	return func(c *Controller) { c.caster = rc }
}

// WithView attaches the rendering camera.
func WithView(v View) Option {
	return func(c *Controller) { c.view = v }
}

// New builds a controller reading tuning from store and input from devices.
func New(store *cfg.Store, devices *intent.Devices, opts ...Option) *Controller {
	snap := store.Load()
	c := &Controller{
		store:      store,
		seen:       store.Version(),
		input:      intent.NewAggregator(devices, store),
		solver:     locomotion.NewSolver(snap.Locomotion),
		classifier: locomotion.NewClassifier(snap.Animation),
		rig:        camerarig.New(snap.Camera, snap.Input),
		state:      AvatarState{Animation: cfg.Idle},
	}
	c.configure(snap)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetBody swaps the physics body; nil detaches it.
func (c *Controller) SetBody(b physics.Body) {
	c.body = b
	c.detector.Self = 0
	if id, ok := b.(physics.Identified); ok {
		c.detector.Self = id.SurfaceID()
	}
	if gs, ok := b.(physics.GravityScaler); ok {
		gs.SetGravityScale(c.store.Load().Locomotion.GravityScale)
	}
}

// SetView swaps the rendering camera; nil detaches it.
func (c *Controller) SetView(v View) {
	c.view = v
}

// SetConfig publishes a new tuning snapshot. Stages pick it up at the start of
// the next tick.
func (c *Controller) SetConfig(s cfg.Snapshot) {
	c.store.Replace(s)
}

// Config returns the active snapshot.
func (c *Controller) Config() *cfg.Snapshot {
	return c.store.Load()
}

// Rig exposes the camera rig for pointer, wheel and touch events.
func (c *Controller) Rig() *camerarig.Rig {
	return c.rig
}

// Devices exposes the raw input state for device callbacks.
func (c *Controller) Devices() *intent.Devices {
	return c.input.Devices()
}

// refresh reconfigures the stages when the store has a newer snapshot.
func (c *Controller) refresh() {
	v := c.store.Version()
	if v == c.seen {
		return
	}
	c.seen = v
	snap := c.store.Load()
	c.configure(snap)
	c.rig.SetConfig(snap.Camera, snap.Input)
	if gs, ok := c.body.(physics.GravityScaler); ok {
		gs.SetGravityScale(snap.Locomotion.GravityScale)
	}
	log.Debug().Uint64("version", v).Msg("tuning applied")
}

func (c *Controller) configure(snap *cfg.Snapshot) {
	c.detector.Config = snap.Ground
	c.detector.Caster = c.caster
	c.solver.Config = snap.Locomotion
	c.classifier.Thresholds = snap.Animation
	c.guard.Config = snap.Respawn
}

// Tick runs one full pipeline pass: ground, intent, movement, animation,
// camera, fallout.
func (c *Controller) Tick(dt float64) {
	c.SenseGround()
	c.ReadIntent()
	c.Move(dt)
	c.Animate()
	c.Follow(dt)
	c.GuardFallout()
}

// SenseGround refreshes tuning, mirrors the body and updates Grounded.
// It is the first stage of a tick.
func (c *Controller) SenseGround() {
	c.refresh()
	if c.body == nil {
		return
	}
	c.state.Position = c.body.Position()
	c.state.Velocity = c.body.LinearVelocity()

	c.detector.Caster = c.caster
	grounded := c.detector.IsGrounded(c.state.Position, c.state.Velocity)
	if grounded != c.state.Grounded {
		c.state.Grounded = grounded
		for _, fn := range c.onGrounded {
			fn(grounded)
		}
	}
}

// ReadIntent polls the input aggregator.
func (c *Controller) ReadIntent() intent.Intent {
	c.state.Intent = c.input.Poll()
	return c.state.Intent
}

// Move solves and writes the new velocity. Without a body the whole stage is
// skipped, including the jump latch.
func (c *Controller) Move(dt float64) {
	if c.body == nil {
		return
	}

	forward := c.cameraForward()
	current := c.body.LinearVelocity()
	r := c.solver.Step(c.state.Intent, c.state.Grounded, forward, current, dt)
	c.body.SetLinearVelocity(r.Velocity)
	c.lastStep = r
	c.state.Yaw = c.solver.Yaw()
	c.state.Velocity = r.Velocity
	c.notifyVelocity(r.Velocity)
}

// notifyVelocity fires onVelocity when v differs from the last value sent,
// including changes the physics step made between ticks.
func (c *Controller) notifyVelocity(v mgl64.Vec3) {
	if v == c.notified {
		return
	}
	c.notified = v
	for _, fn := range c.onVelocity {
		fn(v)
	}
}

// cameraForward prefers the view, then the rig pose, then world -Z.
func (c *Controller) cameraForward() mgl64.Vec3 {
	if c.view != nil {
		return c.view.CameraWorldForward()
	}
	return c.rig.Pose().Forward()
}

// Animate classifies the velocity written this tick.
func (c *Controller) Animate() {
	if c.body == nil {
		return
	}
	label, changed := c.classifier.Update(c.state.Velocity, c.state.Grounded)
	c.state.Animation = label
	if changed {
		for _, fn := range c.onAnimation {
			fn(label)
		}
	}
}

// Follow moves the camera toward the avatar. Without a body the rig holds its
// pose; without a view the pose is computed but not written.
func (c *Controller) Follow(dt float64) {
	var target *mgl64.Vec3
	if c.body != nil {
		p := c.body.Position()
		target = &p
	}
	pose, ok := c.rig.Update(target, dt, c.state.Intent.Camera)
	if !ok || c.view == nil {
		return
	}
	c.view.SetCameraPosition(pose.Position)
	c.view.SetCameraLookAt(pose.LookAt)
}

// GuardFallout resets the avatar if it fell out of the course.
func (c *Controller) GuardFallout() bool {
	if c.body == nil {
		return false
	}
	from := c.body.Position()
	if !c.guard.CheckFallout(c.body) {
		return false
	}
	c.state.Position = c.body.Position()
	c.state.Velocity = c.body.LinearVelocity()
	for _, fn := range c.onRespawn {
		fn(from)
	}
	c.notifyVelocity(c.state.Velocity)
	return true
}

// State returns a copy of the avatar state.
func (c *Controller) State() AvatarState {
	return c.state
}

// LastStep returns the most recent solver result.
func (c *Controller) LastStep() locomotion.Result {
	return c.lastStep
}

// OnGroundedChange registers an observer fired when Grounded flips.
func (c *Controller) OnGroundedChange(fn func(bool)) {
	c.onGrounded = append(c.onGrounded, fn)
}

// OnVelocityChange registers an observer fired when the written velocity differs
// from the last one it was given.
func (c *Controller) OnVelocityChange(fn func(mgl64.Vec3)) {
	c.onVelocity = append(c.onVelocity, fn)
}

// OnAnimationChange registers an observer fired when the label changes.
func (c *Controller) OnAnimationChange(fn func(cfg.AnimationLabel)) {
	c.onAnimation = append(c.onAnimation, fn)
}

// OnRespawn registers an observer fired after a fallout reset.
func (c *Controller) OnRespawn(fn func(from mgl64.Vec3)) {
	c.onRespawn = append(c.onRespawn, fn)
}
