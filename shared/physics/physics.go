// Package physics defines what the locomotion core needs from a physics
// engine, plus World, a small kinematic reference engine used by the demo,
// the simulator and tests.
package physics

import "github.com/go-gl/mathgl/mgl64"

// SurfaceID identifies a collidable surface. Zero means "none".
type SurfaceID int

// Body is the authoritative rigid body of the avatar. The core only reads
// snapshots and issues set commands.
type Body interface {
	Position() mgl64.Vec3
	LinearVelocity() mgl64.Vec3
	SetLinearVelocity(v mgl64.Vec3)
	SetPosition(p mgl64.Vec3)
}

// GravityScaler is implemented by bodies whose gravity can be scaled.
type GravityScaler interface {
	SetGravityScale(scale float64)
}

// Identified is implemented by bodies that are also ray-cast surfaces.
type Identified interface {
	SurfaceID() SurfaceID
}

// RayHit is one surface intersected by a ray.
type RayHit struct {
	Distance  float64
	SurfaceID SurfaceID
	Point     mgl64.Vec3
}

// RayCaster returns every surface hit along a ray, nearest first.
type RayCaster interface {
	Raycast(origin, direction mgl64.Vec3) []RayHit
}
