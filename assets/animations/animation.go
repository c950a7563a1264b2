// Package animations plays frame-indexed clips for the motion labels. It has
// no image dependency; renderers map the frame index to whatever they draw.
package animations

import cfg "github.com/automoto/strider/config"

// Animation steps a frame index through [First, Last].
type Animation struct {
	First        int
	Last         int
	Step         int     // Frames advanced per change
	SpeedInTps   float32 // Ticks spent on each frame
	Loop         bool    // false freezes on Last
	frameCounter float32
	frame        int
	Looped       bool
}

func NewAnimation(first, last, step int, speed float32, loop bool) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		Loop:         loop,
		frameCounter: speed,
		frame:        first,
	}
}

// Update advances one tick.
func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		if a.Loop {
			a.frame = a.First
		} else {
			a.frame = a.Last
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Phase is the position within the clip in [0, 1].
func (a *Animation) Phase() float64 {
	if a.Last <= a.First {
		return 0
	}
	return float64(a.frame-a.First) / float64(a.Last-a.First)
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

// ClipDef describes one clip of a ClipSet.
type ClipDef struct {
	First, Last int
	Speed       float32
	Loop        bool
}

// DefaultClips is the clip table for the avatar's labels.
var DefaultClips = map[cfg.AnimationLabel]ClipDef{
	cfg.Idle: {First: 0, Last: 3, Speed: 12, Loop: true},
	cfg.Walk: {First: 0, Last: 7, Speed: 6, Loop: true},
	cfg.Run:  {First: 0, Last: 7, Speed: 3, Loop: true},
	cfg.Jump: {First: 0, Last: 2, Speed: 5, Loop: false},
	cfg.Fall: {First: 0, Last: 1, Speed: 8, Loop: true},
}

// ClipSet holds one Animation per label and plays one at a time.
type ClipSet struct {
	clips  map[cfg.AnimationLabel]*Animation
	active *Animation
}

func NewClipSet(defs map[cfg.AnimationLabel]ClipDef) *ClipSet {
	s := &ClipSet{clips: make(map[cfg.AnimationLabel]*Animation, len(defs))}
	for label, d := range defs {
		s.clips[label] = NewAnimation(d.First, d.Last, 1, d.Speed, d.Loop)
	}
	return s
}

// Play restarts the clip for label. A label without a clip stops playback.
func (s *ClipSet) Play(label cfg.AnimationLabel) {
	anim, ok := s.clips[label]
	if !ok {
		s.active = nil
		return
	}
	anim.Restart()
	s.active = anim
}

// Update advances the active clip.
func (s *ClipSet) Update() {
	if s.active != nil {
		s.active.Update()
	}
}

// Active returns the playing clip or nil.
func (s *ClipSet) Active() *Animation {
	return s.active
}
