package physics

import (
	"math"
	"sort"

	"github.com/automoto/strider/shared/gamemath"
	"github.com/automoto/strider/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Resolv tags
const (
	tagPlatform = "platform"
	tagBody     = "body"
	tagProbe    = "probe"
)

const (
	// resolvScale converts world units to resolv's pixel grid.
	resolvScale = 8.0
	cellSize    = 8
	probeSize   = 0.05
)

// Options tunes the reference world.
type Options struct {
	Gravity    float64 // Units/s², negative is down
	StepHeight float64 // Ledges at most this high are climbed instead of blocking
	Margin     float64 // Extra broadphase area around the course
}

// DefaultOptions matches a typical engine's earth gravity.
var DefaultOptions = Options{
	Gravity:    -9.81,
	StepHeight: 0.25,
	Margin:     16,
}

// World is a kinematic box world. Platforms are static or tweened back and
// forth; bodies fall under gravity, land on platform tops and ride moving
// platforms. A resolv space over the XZ plane is the broadphase.
type World struct {
	opts Options

	space  *resolv.Space
	origin mgl64.Vec2 // World (x, z) at resolv (0, 0)

	platforms []*platform
	bodies    []*RigidBody
	probe     *resolv.Object
	nextID    SurfaceID
}

type platform struct {
	id     SurfaceID
	data   leveldata.Platform
	offset mgl64.Vec3
	delta  mgl64.Vec3 // Displacement during the last step
	tween  *gween.Sequence
	obj    *resolv.Object
}

func (p *platform) bounds() aabb {
	return aabb{min: p.data.Min.Add(p.offset), max: p.data.Max.Add(p.offset)}
}

// Box is a read-only view of a platform for drawing and tests.
type Box struct {
	ID       SurfaceID
	Name     string
	Min, Max mgl64.Vec3
	Moving   bool
}

// NewWorld builds a world from course platforms.
func NewWorld(platforms []leveldata.Platform, opts Options) *World {
	w := &World{opts: opts}

	lo := mgl64.Vec2{-opts.Margin, -opts.Margin}
	hi := mgl64.Vec2{opts.Margin, opts.Margin}
	for _, p := range platforms {
		pmin, pmax := p.Min, p.Max
		if p.Motion != nil {
			pmin = vecMin(pmin, pmin.Add(p.Motion.Offset))
			pmax = vecMax(pmax, pmax.Add(p.Motion.Offset))
		}
		lo = mgl64.Vec2{math.Min(lo.X(), pmin.X()-opts.Margin), math.Min(lo.Y(), pmin.Z()-opts.Margin)}
		hi = mgl64.Vec2{math.Max(hi.X(), pmax.X()+opts.Margin), math.Max(hi.Y(), pmax.Z()+opts.Margin)}
	}
	w.origin = lo
	width := int(math.Ceil((hi.X() - lo.X()) * resolvScale))
	height := int(math.Ceil((hi.Y() - lo.Y()) * resolvScale))
	w.space = resolv.NewSpace(width, height, cellSize, cellSize)

	for _, data := range platforms {
		w.nextID++
		p := &platform{id: w.nextID, data: data}
		x, y, pw, ph := w.toResolv(p.bounds())
		p.obj = resolv.NewObject(x, y, pw, ph, tagPlatform)
		p.obj.Data = p

		// Moving platforms travel their offset and back using a *gween.Sequence
		if data.Motion != nil {
			leg := float32(data.Motion.Duration)
			p.tween = gween.NewSequence()
			p.tween.Add(
				gween.New(0, 1, leg, ease.InOutQuad),
				gween.New(1, 0, leg, ease.InOutQuad),
			)
		}

		w.space.Add(p.obj)
		w.platforms = append(w.platforms, p)
	}

	w.probe = resolv.NewObject(0, 0, probeSize*resolvScale, probeSize*resolvScale, tagProbe)
	w.space.Add(w.probe)

	return w
}

// AddBody creates a dynamic body centered at pos.
func (w *World) AddBody(pos, halfExtents mgl64.Vec3) *RigidBody {
	w.nextID++
	b := &RigidBody{
		id:           w.nextID,
		world:        w,
		pos:          pos,
		half:         halfExtents,
		gravityScale: 1,
	}
	x, y, bw, bh := w.toResolv(b.bounds())
	b.obj = resolv.NewObject(x, y, bw, bh, tagBody)
	b.obj.Data = b
	w.space.Add(b.obj)
	w.bodies = append(w.bodies, b)
	return b
}

// RemoveBody detaches b from the world.
func (w *World) RemoveBody(b *RigidBody) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			w.space.Remove(b.obj)
			return
		}
	}
}

// Platforms returns the current platform boxes.
func (w *World) Platforms() []Box {
	out := make([]Box, 0, len(w.platforms))
	for _, p := range w.platforms {
		b := p.bounds()
		out = append(out, Box{ID: p.id, Name: p.data.Name, Min: b.min, Max: b.max, Moving: p.tween != nil})
	}
	return out
}

// Step advances platforms then bodies by dt seconds.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, p := range w.platforms {
		w.movePlatform(p, dt)
	}
	for _, b := range w.bodies {
		w.stepBody(b, dt)
	}
}

func (w *World) movePlatform(p *platform, dt float64) {
	if p.tween == nil {
		return
	}
	t, _, done := p.tween.Update(float32(dt))
	if done {
		p.tween.Reset()
	}
	next := p.data.Motion.Offset.Mul(float64(t))
	p.delta = next.Sub(p.offset)
	p.offset = next

	x, y, _, _ := w.toResolv(p.bounds())
	p.obj.X, p.obj.Y = x, y
	p.obj.Update()
}

func (w *World) stepBody(b *RigidBody, dt float64) {
	if b.support != nil {
		b.pos = b.pos.Add(b.support.delta)
		w.syncBody(b)
	}

	b.vel[1] += w.opts.Gravity * b.gravityScale * dt

	// Horizontal, one axis at a time so walls only stop the blocked axis
	for _, axis := range [...]int{0, 2} {
		d := b.vel[axis] * dt
		if d == 0 {
			continue
		}
		next := b.pos
		next[axis] += d
		if w.blocked(b, next) {
			b.vel[axis] = 0
			continue
		}
		b.pos = next
		w.syncBody(b)
	}

	dy := b.vel.Y() * dt
	b.support = nil
	if dy <= 0 {
		bottom := b.pos.Y() - b.half.Y()
		if p := w.floorBelow(b, bottom+dy, bottom+w.opts.StepHeight); p != nil {
			b.pos[1] = p.bounds().max.Y() + b.half.Y()
			b.vel[1] = 0
			b.support = p
		} else {
			b.pos[1] += dy
		}
	} else {
		top := b.pos.Y() + b.half.Y()
		if ceil, ok := w.ceilingAbove(b, top, top+dy); ok {
			b.pos[1] = ceil - b.half.Y()
			b.vel[1] = 0
		} else {
			b.pos[1] += dy
		}
	}

	w.syncBody(b)
}

// blocked reports whether moving b to next would push it into a platform side.
func (w *World) blocked(b *RigidBody, next mgl64.Vec3) bool {
	cur := b.bounds()
	box := aabb{min: next.Sub(b.half), max: next.Add(b.half)}
	for _, p := range w.nearby(b, next.Sub(b.pos)) {
		pb := p.bounds()
		if pb.max.Y() <= box.min.Y()+w.opts.StepHeight {
			continue
		}
		// Already inside (a platform moved into us): let the body escape
		if cur.overlaps(pb) {
			continue
		}
		if box.overlaps(pb) {
			return true
		}
	}
	return false
}

// floorBelow returns the highest platform under b whose top lies in [lo, hi].
func (w *World) floorBelow(b *RigidBody, lo, hi float64) *platform {
	box := b.bounds()
	var best *platform
	for _, p := range w.nearby(b, mgl64.Vec3{}) {
		pb := p.bounds()
		top := pb.max.Y()
		if top < lo-gamemath.Epsilon || top > hi || !box.overlapsXZ(pb) {
			continue
		}
		if best == nil || top > best.bounds().max.Y() {
			best = p
		}
	}
	return best
}

// ceilingAbove returns the lowest platform bottom in [lo, hi] above b.
func (w *World) ceilingAbove(b *RigidBody, lo, hi float64) (float64, bool) {
	box := b.bounds()
	ceil, found := math.Inf(1), false
	for _, p := range w.nearby(b, mgl64.Vec3{}) {
		pb := p.bounds()
		bottom := pb.min.Y()
		if bottom < lo-gamemath.Epsilon || bottom > hi || !box.overlapsXZ(pb) {
			continue
		}
		if bottom < ceil {
			ceil, found = bottom, true
		}
	}
	return ceil, found
}

// nearby lists platforms sharing broadphase cells with b moved by delta.
func (w *World) nearby(b *RigidBody, delta mgl64.Vec3) []*platform {
	check := b.obj.Check(delta.X()*resolvScale, delta.Z()*resolvScale, tagPlatform)
	if check == nil {
		return nil
	}
	objs := check.ObjectsByTags(tagPlatform)
	out := make([]*platform, 0, len(objs))
	for _, o := range objs {
		if p, ok := o.Data.(*platform); ok {
			out = append(out, p)
		}
	}
	return out
}

// Raycast returns every platform and body hit by the ray, nearest first.
// Vertical rays use the broadphase; other directions test every surface.
func (w *World) Raycast(origin, direction mgl64.Vec3) []RayHit {
	dir := gamemath.NormalizeOrZero(direction)
	if dir.Len() == 0 {
		return nil
	}

	var surfaces []*resolv.Object
	if math.Abs(dir.X()) < gamemath.Epsilon && math.Abs(dir.Z()) < gamemath.Epsilon {
		w.probe.X = (origin.X()-w.origin.X())*resolvScale - probeSize*resolvScale/2
		w.probe.Y = (origin.Z()-w.origin.Y())*resolvScale - probeSize*resolvScale/2
		w.probe.Update()
		if check := w.probe.Check(0, 0, tagPlatform, tagBody); check != nil {
			surfaces = check.Objects
		}
	} else {
		for _, p := range w.platforms {
			surfaces = append(surfaces, p.obj)
		}
		for _, b := range w.bodies {
			surfaces = append(surfaces, b.obj)
		}
	}

	var hits []RayHit
	for _, o := range surfaces {
		var id SurfaceID
		var box aabb
		switch s := o.Data.(type) {
		case *platform:
			id, box = s.id, s.bounds()
		case *RigidBody:
			id, box = s.id, s.bounds()
		default:
			continue
		}
		if d, ok := box.rayHit(origin, dir); ok {
			hits = append(hits, RayHit{Distance: d, SurfaceID: id, Point: origin.Add(dir.Mul(d))})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

func (w *World) syncBody(b *RigidBody) {
	x, y, _, _ := w.toResolv(b.bounds())
	b.obj.X, b.obj.Y = x, y
	b.obj.Update()
}

// toResolv maps a box's XZ footprint onto the resolv grid.
func (w *World) toResolv(b aabb) (x, y, width, height float64) {
	return (b.min.X() - w.origin.X()) * resolvScale,
		(b.min.Z() - w.origin.Y()) * resolvScale,
		(b.max.X() - b.min.X()) * resolvScale,
		(b.max.Z() - b.min.Z()) * resolvScale
}

func vecMin(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])}
}

func vecMax(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])}
}
