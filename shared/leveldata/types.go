// Package leveldata provides TMX course parsing for the demo and the simulator.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
//
// A course is authored in Tiled as a top-down map: the map's X axis is world X
// and its Y axis is world Z. One tile is one world unit. Heights come from
// object properties.
package leveldata

import "github.com/go-gl/mathgl/mgl64"

// Object group and property names read from TMX files
const (
	GroupPlatforms = "Platforms"
	GroupSpawn     = "PlayerSpawn"

	PropTop       = "top"      // World Y of the walkable surface
	PropHeight    = "height"   // Slab thickness below the top
	PropMoveX     = "moveX"    // Moving platform travel, world units
	PropMoveY     = "moveY"
	PropMoveZ     = "moveZ"
	PropDuration  = "duration" // Seconds for one leg of a moving platform
	PropElevation = "elevation"
)

// DefaultThickness is used when a platform has no height property.
const DefaultThickness = 1.0

// CourseData holds everything the physics world needs from a TMX file.
type CourseData struct {
	Name      string
	Platforms []Platform
	Spawn     mgl64.Vec3
	HasSpawn  bool
	Width     float64 // World units along X
	Depth     float64 // World units along Z
}

// Platform is an axis-aligned slab. Min/Max are opposite corners.
type Platform struct {
	ID       int
	Name     string
	Min, Max mgl64.Vec3
	Motion   *Motion
}

// Top returns the walkable surface height.
func (p Platform) Top() float64 {
	return p.Max.Y()
}

// Motion describes a platform that travels Offset and back, each leg taking
// Duration seconds.
type Motion struct {
	Offset   mgl64.Vec3
	Duration float64
}
