package camerarig

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	cfg "github.com/automoto/strider/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

func newOrbitRig() *Rig {
	return New(cfg.Camera, cfg.Input)
}

func TestNewSeedsSphereFromOffset(t *testing.T) {
	r := newOrbitRig()
	s := r.Spherical()
	assert.InDelta(t, cfg.Camera.Offset.Len(), s.Radius, 1e-9)
	assert.InDelta(t, 0.0, s.Theta, 1e-12)
	assert.InDelta(t, math.Acos(5/cfg.Camera.Offset.Len()), s.Phi, 1e-9)
}

func TestNewClampsOffsetIntoBounds(t *testing.T) {
	c := cfg.Camera
	c.Offset = mgl64.Vec3{0, 0, 100}
	r := New(c, cfg.Input)
	s := r.Spherical()
	assert.Equal(t, c.MaxDistance, s.Radius)
	assert.Equal(t, c.MaxPolarAngle, s.Phi)
}

func TestDragSequencesStayInBounds(t *testing.T) {
	r := newOrbitRig()
	c := cfg.Camera
	rng := rand.New(rand.NewSource(1))

	r.PointerDown(0, 0)
	x, y := 0.0, 0.0
	for i := 0; i < 500; i++ {
		x += rng.Float64()*400 - 200
		y += rng.Float64()*400 - 200
		r.PointerMove(x, y)
		r.Wheel(rng.Float64()*400 - 200)

		s := r.Spherical()
		require.GreaterOrEqual(t, s.Phi, c.MinPolarAngle)
		require.LessOrEqual(t, s.Phi, c.MaxPolarAngle)
		require.GreaterOrEqual(t, s.Radius, c.MinDistance)
		require.LessOrEqual(t, s.Radius, c.MaxDistance)
	}
}

func TestDragRotation(t *testing.T) {
	r := newOrbitRig()
	before := r.Spherical()

	r.PointerDown(100, 100)
	r.PointerMove(120, 110)

	after := r.Spherical()
	k := cfg.Camera.RotationSpeed * 0.01
	assert.InDelta(t, before.Theta-20*k, after.Theta, 1e-12)
	assert.InDelta(t, before.Phi+10*k, after.Phi, 1e-12)
}

func TestDragStateMachine(t *testing.T) {
	r := newOrbitRig()
	var cursors []Cursor
	r.OnCursor(func(c Cursor) { cursors = append(cursors, c) })

	assert.Equal(t, DragIdle, r.DragState())
	before := r.Spherical()
	r.PointerMove(50, 50)
	assert.Equal(t, before, r.Spherical(), "moves without a press are ignored")

	r.PointerDown(0, 0)
	assert.Equal(t, DragDragging, r.DragState())
	r.PointerLeave()
	assert.Equal(t, DragIdle, r.DragState())
	r.PointerUp()

	assert.Equal(t, []Cursor{CursorGrab, CursorGrabbing, CursorGrab}, cursors)
}

func TestWheelZoom(t *testing.T) {
	r := newOrbitRig()
	before := r.Spherical().Radius
	r.Wheel(100)
	assert.InDelta(t, before+1, r.Spherical().Radius, 1e-9)
}

func TestPinchZoom(t *testing.T) {
	r := newOrbitRig()
	before := r.Spherical().Radius

	r.TouchStart([]mgl64.Vec2{{0, 0}, {100, 0}})
	r.TouchMove([]mgl64.Vec2{{0, 0}, {80, 0}})
	assert.InDelta(t, before-0.2, r.Spherical().Radius, 1e-9)

	c := cfg.Camera
	c.Offset = mgl64.Vec3{0, 0, 3.1}
	r = New(c, cfg.Input)
	r.TouchStart([]mgl64.Vec2{{0, 0}, {100, 0}})
	r.TouchMove([]mgl64.Vec2{{0, 0}, {80, 0}})
	assert.Equal(t, c.MinDistance, r.Spherical().Radius, "clamped at the minimum")
}

func TestOneFingerRotateNeedsTouchStart(t *testing.T) {
	r := newOrbitRig()
	before := r.Spherical()

	r.TouchMove([]mgl64.Vec2{{10, 0}})
	assert.Equal(t, before, r.Spherical())

	r.TouchStart([]mgl64.Vec2{{10, 0}})
	r.TouchMove([]mgl64.Vec2{{30, 0}})
	assert.Less(t, r.Spherical().Theta, before.Theta)

	r.TouchEnd()
	mid := r.Spherical()
	r.TouchMove([]mgl64.Vec2{{60, 0}})
	assert.Equal(t, mid, r.Spherical())
}

func TestFingerCountChangeReseedsTouch(t *testing.T) {
	r := newOrbitRig()
	r.TouchStart([]mgl64.Vec2{{100, 100}})
	r.TouchStart([]mgl64.Vec2{{100, 100}, {300, 100}})
	r.TouchMove([]mgl64.Vec2{{100, 100}, {280, 100}})
	pinched := r.Spherical()

	// The second finger lifts; the first is now far from where rotation began
	r.TouchMove([]mgl64.Vec2{{400, 300}})
	assert.Equal(t, pinched, r.Spherical())

	r.TouchMove([]mgl64.Vec2{{410, 300}})
	assert.Less(t, r.Spherical().Theta, pinched.Theta)
	assert.InDelta(t, pinched.Theta-10*cfg.Camera.RotationSpeed*dragRadiansPerPixel*cfg.Input.TouchSensitivity, r.Spherical().Theta, 1e-9)

	// A finger joining mid-gesture must not zoom against a stale distance
	radius := r.Spherical().Radius
	r.TouchMove([]mgl64.Vec2{{410, 300}, {420, 300}})
	assert.Equal(t, radius, r.Spherical().Radius)
}

func TestFixedModeDamping(t *testing.T) {
	c := cfg.Camera
	c.Mode = cfg.CameraFixed
	r := New(c, cfg.Input)

	target := mgl64.Vec3{0, 0, 0}
	pose, ok := r.Update(&target, tick, mgl64.Vec2{})
	require.True(t, ok)
	assert.Equal(t, c.Offset, pose.Position, "first update places the camera")
	assert.Equal(t, c.LookAtOffset, pose.LookAt)

	target = mgl64.Vec3{10, 0, 0}
	pose, _ = r.Update(&target, tick, mgl64.Vec2{})
	assert.InDelta(t, 10*c.Damping, pose.Position.X(), 1e-9)
	assert.InDelta(t, 10*c.Damping, pose.LookAt.X(), 1e-9)
	assert.InDelta(t, c.Offset.Y(), pose.Position.Y(), 1e-9)
}

func TestOrbitModeConverges(t *testing.T) {
	r := newOrbitRig()
	target := mgl64.Vec3{3, 1, -2}
	var pose Pose
	for i := 0; i < 2000; i++ {
		pose, _ = r.Update(&target, tick, mgl64.Vec2{})
	}
	want := target.Add(r.Spherical().Vec3())
	assert.True(t, pose.Position.ApproxEqualThreshold(want, 1e-6))
	assert.True(t, pose.LookAt.ApproxEqualThreshold(target.Add(cfg.Camera.LookAtOffset), 1e-6))
}

func TestMissingTargetHoldsPose(t *testing.T) {
	r := newOrbitRig()
	target := mgl64.Vec3{1, 2, 3}
	held, _ := r.Update(&target, tick, mgl64.Vec2{})

	pose, ok := r.Update(nil, tick, mgl64.Vec2{1, 1})
	assert.False(t, ok)
	assert.Equal(t, held, pose)
	assert.Equal(t, held, r.Pose())
}

func TestAutoRotateAndStick(t *testing.T) {
	c := cfg.Camera
	c.AutoRotate = true
	r := New(c, cfg.Input)
	target := mgl64.Vec3{}

	before := r.Spherical().Theta
	r.Update(&target, 0.5, mgl64.Vec2{})
	assert.InDelta(t, before+c.AutoRotateSpeed*0.5, r.Spherical().Theta, 1e-12)

	r = newOrbitRig()
	before = r.Spherical().Theta
	r.Update(&target, 0.1, mgl64.Vec2{1, 0})
	assert.InDelta(t, before-c.StickOrbitSpeed*0.1, r.Spherical().Theta, 1e-12)

	for i := 0; i < 100; i++ {
		r.Update(&target, 0.1, mgl64.Vec2{0, 1})
	}
	assert.Equal(t, c.MaxPolarAngle, r.Spherical().Phi)
}

func TestSetConfigReclamps(t *testing.T) {
	r := newOrbitRig()
	c := cfg.Camera
	c.MaxDistance = 5
	r.SetConfig(c, cfg.Input)
	assert.Equal(t, 5.0, r.Spherical().Radius)

	c.Offset = mgl64.Vec3{0, 0, 4}
	r.SetConfig(c, cfg.Input)
	assert.InDelta(t, 4.0, r.Spherical().Radius, 1e-9)
}

func TestConcurrentEvents(t *testing.T) {
	r := newOrbitRig()
	target := mgl64.Vec3{}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				r.PointerDown(0, 0)
				r.PointerMove(float64(j), float64(i))
				r.Wheel(1)
				r.PointerUp()
			}
		}(i)
	}
	for j := 0; j < 200; j++ {
		r.Update(&target, tick, mgl64.Vec2{})
	}
	wg.Wait()

	s := r.Spherical()
	assert.LessOrEqual(t, s.Radius, cfg.Camera.MaxDistance)
	assert.Equal(t, DragIdle, r.DragState())
}

func TestPoseForward(t *testing.T) {
	p := Pose{Position: mgl64.Vec3{0, 0, 10}, LookAt: mgl64.Vec3{}}
	assert.True(t, p.Forward().ApproxEqual(mgl64.Vec3{0, 0, -1}))
	assert.Equal(t, mgl64.Vec3{}, Pose{}.Forward())
}
