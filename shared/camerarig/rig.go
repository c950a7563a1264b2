// Package camerarig follows the avatar with a damped camera. In orbit mode
// the camera sits on a sphere around the target that pointer drags, wheel,
// touch and the right stick can rotate and zoom.
package camerarig

import (
	"math"

	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sasha-s/go-deadlock"
)

const (
	// dragRadiansPerPixel scales drag deltas before RotationSpeed.
	dragRadiansPerPixel = 0.01
	// referenceRate is the tick rate Damping is tuned for.
	referenceRate = 60.0
)

// DragState is the orbit drag state machine.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

func (s DragState) String() string {
	if s == DragDragging {
		return "dragging"
	}
	return "idle"
}

// Cursor is the pointer feedback the rig asks the host to show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorGrab
	CursorGrabbing
)

// Pose is a camera placement.
type Pose struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
}

// Forward returns the unit view direction, or zero when position and look-at
// coincide.
func (p Pose) Forward() mgl64.Vec3 {
	return gamemath.NormalizeOrZero(p.LookAt.Sub(p.Position))
}

// Rig owns the camera state. Event methods may be called from any goroutine;
// Update runs once per tick.
type Rig struct {
	mu deadlock.Mutex

	config           cfg.CameraConfig
	mouseSensitivity float64
	touchSensitivity float64

	spherical gamemath.Spherical
	pose      Pose
	placed    bool // First Update snaps instead of damping

	drag      DragState
	lastPoint mgl64.Vec2

	touchDown  bool
	touchCount int // points seen by the last touch event
	lastTouch  mgl64.Vec2
	pinchDist  float64

	onCursor func(Cursor)
}

// New creates a rig with the orbit sphere taken from c.Offset.
func New(c cfg.CameraConfig, in cfg.InputConfig) *Rig {
	r := &Rig{}
	r.applyConfig(c, in)
	r.spherical = r.initialSpherical()
	return r
}

// SetConfig swaps tuning between ticks. A changed offset re-seeds the sphere;
// otherwise the current angles are kept and re-clamped.
func (r *Rig) SetConfig(c cfg.CameraConfig, in cfg.InputConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	offsetChanged := c.Offset != r.config.Offset
	r.applyConfig(c, in)
	if offsetChanged {
		r.spherical = r.initialSpherical()
		return
	}
	r.clampSpherical()
}

func (r *Rig) applyConfig(c cfg.CameraConfig, in cfg.InputConfig) {
	r.config = c
	r.mouseSensitivity = in.MouseSensitivity
	r.touchSensitivity = in.TouchSensitivity
}

func (r *Rig) initialSpherical() gamemath.Spherical {
	s := gamemath.SphericalFromVec3(r.config.Offset).MakeSafe()
	s.Phi = gamemath.Clamp(s.Phi, r.config.MinPolarAngle, r.config.MaxPolarAngle)
	s.Radius = gamemath.Clamp(s.Radius, r.config.MinDistance, r.config.MaxDistance)
	return s
}

func (r *Rig) clampSpherical() {
	r.spherical.Phi = gamemath.Clamp(r.spherical.Phi, r.config.MinPolarAngle, r.config.MaxPolarAngle)
	r.spherical.Radius = gamemath.Clamp(r.spherical.Radius, r.config.MinDistance, r.config.MaxDistance)
}

// OnCursor registers the cursor feedback callback. It is called without the
// rig lock held.
func (r *Rig) OnCursor(fn func(Cursor)) {
	r.mu.Lock()
	r.onCursor = fn
	r.mu.Unlock()
	if fn != nil {
		fn(CursorGrab)
	}
}

func (r *Rig) rotate(dx, dy, sensitivity float64) {
	k := r.config.RotationSpeed * dragRadiansPerPixel * sensitivity
	r.spherical.Theta -= dx * k
	r.spherical.Phi += dy * k
	r.clampSpherical()
}

func (r *Rig) zoom(delta float64) {
	r.spherical.Radius += delta * r.config.ZoomSpeed
	r.clampSpherical()
}

// PointerDown starts a drag at screen point (x, y).
func (r *Rig) PointerDown(x, y float64) {
	r.mu.Lock()
	r.drag = DragDragging
	r.lastPoint = mgl64.Vec2{x, y}
	fn := r.onCursor
	r.mu.Unlock()
	if fn != nil {
		fn(CursorGrabbing)
	}
}

// PointerMove rotates the orbit while dragging.
func (r *Rig) PointerMove(x, y float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.drag != DragDragging {
		return
	}
	r.rotate(x-r.lastPoint.X(), y-r.lastPoint.Y(), r.mouseSensitivity)
	r.lastPoint = mgl64.Vec2{x, y}
}

// PointerUp ends a drag.
func (r *Rig) PointerUp() {
	r.endDrag()
}

// PointerLeave ends a drag when the pointer leaves the surface.
func (r *Rig) PointerLeave() {
	r.endDrag()
}

func (r *Rig) endDrag() {
	r.mu.Lock()
	wasDragging := r.drag == DragDragging
	r.drag = DragIdle
	fn := r.onCursor
	r.mu.Unlock()
	if wasDragging && fn != nil {
		fn(CursorGrab)
	}
}

// Wheel zooms by the wheel delta; positive moves the camera away.
func (r *Rig) Wheel(deltaY float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.zoom(deltaY)
}

// TouchStart records the active contact points. One finger arms rotation,
// two fingers arm the pinch.
func (r *Rig) TouchStart(points []mgl64.Vec2) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(points) == 1 {
		r.touchDown = true
	}
	r.seedTouch(points)
}

// seedTouch takes points as the baseline for the next move.
func (r *Rig) seedTouch(points []mgl64.Vec2) {
	r.touchCount = len(points)
	switch len(points) {
	case 1:
		r.lastTouch = points[0]
	case 2:
		r.pinchDist = points[0].Sub(points[1]).Len()
	}
}

// TouchMove rotates with one finger or zooms with two. A move whose finger
// count differs from the previous event only re-seeds the baseline.
func (r *Rig) TouchMove(points []mgl64.Vec2) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(points) != r.touchCount {
		r.seedTouch(points)
		return
	}
	switch len(points) {
	case 1:
		if !r.touchDown {
			return
		}
		d := points[0].Sub(r.lastTouch)
		r.rotate(d.X(), d.Y(), r.touchSensitivity)
		r.lastTouch = points[0]
	case 2:
		dist := points[0].Sub(points[1]).Len()
		// Pinching together pulls the camera in
		r.zoom(dist - r.pinchDist)
		r.pinchDist = dist
	}
}

// TouchEnd disarms one-finger rotation.
func (r *Rig) TouchEnd() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touchDown = false
	r.touchCount = 0
}

// Orbit rotates by explicit angles, e.g. from a keyboard binding.
func (r *Rig) Orbit(dTheta, dPhi float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spherical.Theta += dTheta
	r.spherical.Phi += dPhi
	r.clampSpherical()
}

// Update moves the camera toward the target. stick is the right-stick
// request; dt scales auto-rotation, stick orbit and damping. A nil target
// leaves the pose untouched and returns false.
func (r *Rig) Update(target *mgl64.Vec3, dt float64, stick mgl64.Vec2) (Pose, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if target == nil {
		return r.pose, false
	}
	c := r.config

	var desired mgl64.Vec3
	switch c.Mode {
	case cfg.CameraFixed:
		desired = target.Add(c.Offset)
	default:
		step := math.Max(dt, 0)
		if c.AutoRotate {
			r.spherical.Theta += c.AutoRotateSpeed * step
		}
		if stick.Len() > 0 {
			r.spherical.Theta -= stick.X() * c.StickOrbitSpeed * step
			r.spherical.Phi += stick.Y() * c.StickOrbitSpeed * step
			r.clampSpherical()
		}
		desired = target.Add(r.spherical.Vec3())
	}
	lookAt := target.Add(c.LookAtOffset)

	if !r.placed {
		r.pose = Pose{Position: desired, LookAt: lookAt}
		r.placed = true
		return r.pose, true
	}

	t := 1 - gamemath.DecayFactor(1-c.Damping, referenceRate, dt)
	r.pose.Position = gamemath.Lerp3(r.pose.Position, desired, t)
	r.pose.LookAt = gamemath.Lerp3(r.pose.LookAt, lookAt, t)
	return r.pose, true
}

// Pose returns the last computed pose.
func (r *Rig) Pose() Pose {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pose
}

// Spherical returns the orbit offset.
func (r *Rig) Spherical() gamemath.Spherical {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.spherical
}

// DragState returns the pointer drag state.
func (r *Rig) DragState() DragState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drag
}
