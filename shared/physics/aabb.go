package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type aabb struct {
	min, max mgl64.Vec3
}

// overlaps is strict: boxes that only touch do not overlap.
func (a aabb) overlaps(b aabb) bool {
	return a.min.X() < b.max.X() && a.max.X() > b.min.X() &&
		a.min.Y() < b.max.Y() && a.max.Y() > b.min.Y() &&
		a.min.Z() < b.max.Z() && a.max.Z() > b.min.Z()
}

// overlapsXZ ignores the vertical axis.
func (a aabb) overlapsXZ(b aabb) bool {
	return a.min.X() < b.max.X() && a.max.X() > b.min.X() &&
		a.min.Z() < b.max.Z() && a.max.Z() > b.min.Z()
}

func (a aabb) contains(p mgl64.Vec3) bool {
	return p.X() >= a.min.X() && p.X() <= a.max.X() &&
		p.Y() >= a.min.Y() && p.Y() <= a.max.Y() &&
		p.Z() >= a.min.Z() && p.Z() <= a.max.Z()
}

// rayHit returns the entry distance along a unit direction. A ray starting
// inside the box hits at distance 0.
func (a aabb) rayHit(origin, dir mgl64.Vec3) (float64, bool) {
	if a.contains(origin) {
		return 0, true
	}

	tmin, tmax := math.Inf(-1), math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < a.min[i] || origin[i] > a.max[i] {
				return 0, false
			}
			continue
		}
		t1 := (a.min[i] - origin[i]) / dir[i]
		t2 := (a.max[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmin < 0 {
		return 0, false
	}
	return tmin, true
}
