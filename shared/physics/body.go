package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// DefaultHalfExtents is the avatar box: 0.8 wide, 1.0 tall. The origin is
// the box center, so a resting avatar's ground ray hits at 0.5.
var DefaultHalfExtents = mgl64.Vec3{0.4, 0.5, 0.4}

// RigidBody is a box-shaped dynamic body owned by a World.
type RigidBody struct {
	id    SurfaceID
	world *World

	pos  mgl64.Vec3
	vel  mgl64.Vec3
	half mgl64.Vec3

	gravityScale float64
	support      *platform // Platform the body rests on, carried by its motion

	obj *resolv.Object
}

func (b *RigidBody) SurfaceID() SurfaceID {
	return b.id
}

func (b *RigidBody) Position() mgl64.Vec3 {
	return b.pos
}

func (b *RigidBody) LinearVelocity() mgl64.Vec3 {
	return b.vel
}

func (b *RigidBody) SetLinearVelocity(v mgl64.Vec3) {
	b.vel = v
	if v.Y() > 0 {
		b.support = nil
	}
}

// SetPosition teleports the body and drops any support contact.
func (b *RigidBody) SetPosition(p mgl64.Vec3) {
	b.pos = p
	b.support = nil
	b.world.syncBody(b)
}

func (b *RigidBody) SetGravityScale(scale float64) {
	b.gravityScale = scale
}

// GravityScale returns the current gravity multiplier.
func (b *RigidBody) GravityScale() float64 {
	return b.gravityScale
}

// HalfExtents returns the box half sizes.
func (b *RigidBody) HalfExtents() mgl64.Vec3 {
	return b.half
}

// Supported reports whether the body rested on a platform after the last step.
func (b *RigidBody) Supported() bool {
	return b.support != nil
}

func (b *RigidBody) bounds() aabb {
	return aabb{min: b.pos.Sub(b.half), max: b.pos.Add(b.half)}
}
