package physics

import (
	"testing"

	"github.com/automoto/strider/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

var floor = leveldata.Platform{ID: 1, Name: "floor", Min: mgl64.Vec3{-10, -1, -10}, Max: mgl64.Vec3{10, 0, 10}}

func stepN(w *World, n int) {
	for i := 0; i < n; i++ {
		w.Step(tick)
	}
}

func TestBodyLandsOnFloor(t *testing.T) {
	w := NewWorld([]leveldata.Platform{floor}, DefaultOptions)
	b := w.AddBody(mgl64.Vec3{0, 3, 0}, DefaultHalfExtents)

	stepN(w, 120)

	assert.InDelta(t, 0.5, b.Position().Y(), 1e-9)
	assert.Equal(t, 0.0, b.LinearVelocity().Y())
	assert.True(t, b.Supported())
}

func TestRaycastDownFromRestingBody(t *testing.T) {
	w := NewWorld([]leveldata.Platform{floor}, DefaultOptions)
	b := w.AddBody(mgl64.Vec3{0, 0.5, 0}, DefaultHalfExtents)
	stepN(w, 2)

	hits := w.Raycast(b.Position(), mgl64.Vec3{0, -1, 0})
	require.Len(t, hits, 2)

	assert.Equal(t, b.SurfaceID(), hits[0].SurfaceID, "ray starts inside its own body")
	assert.Equal(t, 0.0, hits[0].Distance)

	assert.Equal(t, w.Platforms()[0].ID, hits[1].SurfaceID)
	assert.InDelta(t, 0.5, hits[1].Distance, 1e-9)
	assert.InDelta(t, 0.0, hits[1].Point.Y(), 1e-9)
}

func TestRaycastMissesOutsideFootprint(t *testing.T) {
	w := NewWorld([]leveldata.Platform{floor}, DefaultOptions)
	assert.Empty(t, w.Raycast(mgl64.Vec3{50, 5, 50}, mgl64.Vec3{0, -1, 0}))
	assert.Nil(t, w.Raycast(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{}))
}

func TestRaycastSideways(t *testing.T) {
	wall := leveldata.Platform{ID: 2, Min: mgl64.Vec3{2, 0, -10}, Max: mgl64.Vec3{3, 5, 10}}
	w := NewWorld([]leveldata.Platform{floor, wall}, DefaultOptions)

	hits := w.Raycast(mgl64.Vec3{-5, 1, 0}, mgl64.Vec3{2, 0, 0})
	require.Len(t, hits, 1)
	assert.InDelta(t, 7.0, hits[0].Distance, 1e-9)
}

func TestWallBlocksHorizontalMotion(t *testing.T) {
	wall := leveldata.Platform{ID: 2, Min: mgl64.Vec3{2, 0, -10}, Max: mgl64.Vec3{3, 5, 10}}
	w := NewWorld([]leveldata.Platform{floor, wall}, DefaultOptions)
	b := w.AddBody(mgl64.Vec3{0, 0.5, 0}, DefaultHalfExtents)

	for i := 0; i < 60; i++ {
		b.SetLinearVelocity(mgl64.Vec3{10, b.LinearVelocity().Y(), 0})
		w.Step(tick)
	}

	assert.LessOrEqual(t, b.Position().X()+DefaultHalfExtents.X(), 2.0)
	assert.Greater(t, b.Position().X(), 1.4)
	assert.Equal(t, 0.0, b.LinearVelocity().X())
}

func TestLowLedgeIsClimbed(t *testing.T) {
	ledge := leveldata.Platform{ID: 2, Min: mgl64.Vec3{1, -1, -10}, Max: mgl64.Vec3{5, 0.2, 10}}
	w := NewWorld([]leveldata.Platform{floor, ledge}, DefaultOptions)
	b := w.AddBody(mgl64.Vec3{0, 0.5, 0}, DefaultHalfExtents)

	for i := 0; i < 60; i++ {
		b.SetLinearVelocity(mgl64.Vec3{3, b.LinearVelocity().Y(), 0})
		w.Step(tick)
	}

	assert.Greater(t, b.Position().X(), 2.0)
	assert.InDelta(t, 0.7, b.Position().Y(), 1e-9)
}

func TestBodyRidesMovingPlatform(t *testing.T) {
	lift := leveldata.Platform{
		ID:     1,
		Min:    mgl64.Vec3{-1, 0, -1},
		Max:    mgl64.Vec3{1, 1, 1},
		Motion: &leveldata.Motion{Offset: mgl64.Vec3{0, 2, 0}, Duration: 1},
	}
	w := NewWorld([]leveldata.Platform{lift}, DefaultOptions)
	b := w.AddBody(mgl64.Vec3{0, 1.5, 0}, DefaultHalfExtents)

	stepN(w, 30)

	boxes := w.Platforms()
	require.Len(t, boxes, 1)
	assert.True(t, boxes[0].Moving)
	assert.Greater(t, boxes[0].Max.Y(), 1.8)
	assert.InDelta(t, boxes[0].Max.Y(), b.Position().Y()-DefaultHalfExtents.Y(), 1e-9)
}

func TestJumpLeavesSupport(t *testing.T) {
	w := NewWorld([]leveldata.Platform{floor}, DefaultOptions)
	b := w.AddBody(mgl64.Vec3{0, 0.5, 0}, DefaultHalfExtents)
	stepN(w, 2)
	require.True(t, b.Supported())

	b.SetLinearVelocity(mgl64.Vec3{0, 5, 0})
	assert.False(t, b.Supported())
	w.Step(tick)
	assert.Greater(t, b.Position().Y(), 0.5)
	assert.Less(t, b.LinearVelocity().Y(), 5.0)
}

func TestGravityScale(t *testing.T) {
	w := NewWorld(nil, DefaultOptions)
	b := w.AddBody(mgl64.Vec3{0, 10, 0}, DefaultHalfExtents)
	b.SetGravityScale(0)
	stepN(w, 60)
	assert.Equal(t, 10.0, b.Position().Y())

	b.SetGravityScale(2)
	w.Step(tick)
	assert.InDelta(t, DefaultOptions.Gravity*2*tick, b.LinearVelocity().Y(), 1e-12)
	assert.Equal(t, 2.0, b.GravityScale())
}

func TestBodyFallsOffTheEdge(t *testing.T) {
	w := NewWorld([]leveldata.Platform{floor}, DefaultOptions)
	b := w.AddBody(mgl64.Vec3{30, 0.5, 0}, DefaultHalfExtents)
	stepN(w, 60)
	assert.Less(t, b.Position().Y(), 0.0)
}

func TestSetPositionAndRemove(t *testing.T) {
	w := NewWorld([]leveldata.Platform{floor}, DefaultOptions)
	b := w.AddBody(mgl64.Vec3{0, 0.5, 0}, DefaultHalfExtents)
	stepN(w, 2)

	b.SetPosition(mgl64.Vec3{5, 4, 5})
	assert.False(t, b.Supported())
	assert.Equal(t, mgl64.Vec3{5, 4, 5}, b.Position())

	w.RemoveBody(b)
	hits := w.Raycast(mgl64.Vec3{5, 4, 5}, mgl64.Vec3{0, -1, 0})
	require.Len(t, hits, 1)
	assert.NotEqual(t, b.SurfaceID(), hits[0].SurfaceID)
}
