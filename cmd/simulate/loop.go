package main

import (
	"context"
	"time"

	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/controller"
	"github.com/automoto/strider/shared/intent"
	"github.com/automoto/strider/shared/leveldata"
	"github.com/automoto/strider/shared/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"
)

// Stats summarizes a run.
type Stats struct {
	Ticks       int
	Jumps       int
	Respawns    int
	Landings    int
	MaxSpeed    float64
	Transitions []cfg.AnimationLabel
}

// Simulation drives one avatar through a course without a window or camera
// view. The camera rig still runs so camera-relative movement matches the
// demo.
type Simulation struct {
	world   *physics.World
	body    *physics.RigidBody
	ctrl    *controller.Controller
	devices *intent.Devices
	player  *Player
	poller  *intent.GamepadPoller

	rate     int
	dt       float64
	limit    int
	logEvery int

	stats Stats
}

type SimOptions struct {
	Rate     int // Ticks per second
	Ticks    int // Zero runs the script to its end
	LogEvery int // Zero disables periodic state lines
	Physics  physics.Options
}

func NewSimulation(course *leveldata.CourseData, store *cfg.Store, script Script, opts SimOptions) *Simulation {
	if opts.Rate <= 0 {
		opts.Rate = cfg.C.TPS
	}
	limit := opts.Ticks
	if limit <= 0 {
		limit = script.Total()
	}

	if course.HasSpawn {
		next := *store.Load()
		next.Respawn.SpawnPosition = course.Spawn
		store.Replace(next)
	}
	snap := store.Load()

	world := physics.NewWorld(course.Platforms, opts.Physics)
	body := world.AddBody(snap.Respawn.SpawnPosition, physics.DefaultHalfExtents)
	devices := intent.NewDevices()
	player := NewPlayer(script)

	s := &Simulation{
		world:    world,
		body:     body,
		devices:  devices,
		player:   player,
		poller:   intent.NewGamepadPoller(player, devices, snap.Input.GamepadPollInterval),
		rate:     opts.Rate,
		dt:       1 / float64(opts.Rate),
		limit:    limit,
		logEvery: opts.LogEvery,
	}
	s.ctrl = controller.New(store, devices, controller.WithBody(body), controller.WithRayCaster(world))
	s.observe()
	return s
}

func (s *Simulation) observe() {
	s.ctrl.OnGroundedChange(func(grounded bool) {
		if grounded {
			s.stats.Landings++
		}
		log.Debug().Int("tick", s.stats.Ticks).Bool("grounded", grounded).Msg("ground contact changed")
	})
	s.ctrl.OnAnimationChange(func(label cfg.AnimationLabel) {
		s.stats.Transitions = append(s.stats.Transitions, label)
		log.Debug().Int("tick", s.stats.Ticks).Stringer("animation", label).Msg("animation changed")
	})
	s.ctrl.OnRespawn(func(from mgl64.Vec3) {
		s.stats.Respawns++
		log.Info().Int("tick", s.stats.Ticks).Floats64("from", from[:]).Msg("avatar respawned")
	})
}

// Run steps the simulation until the tick limit or ctx is done. In realtime
// mode ticks are paced by a ticker and gamepads are polled on their own
// interval; otherwise ticks run back to back and the gamepad is read every
// tick.
func (s *Simulation) Run(ctx context.Context, realtime bool) (Stats, error) {
	log.Info().Int("ticks", s.limit).Int("rate", s.rate).Bool("realtime", realtime).Msg("simulation started")

	if !realtime {
		for s.stats.Ticks < s.limit {
			if err := ctx.Err(); err != nil {
				return s.stats, err
			}
			s.poller.PollOnce()
			s.tick()
		}
		s.finish()
		return s.stats, nil
	}

	pollCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		_ = s.poller.Run(pollCtx)
	}()

	ticker := time.NewTicker(time.Second / time.Duration(s.rate))
	defer ticker.Stop()

	for s.stats.Ticks < s.limit {
		select {
		case <-ctx.Done():
			return s.stats, ctx.Err()
		case <-ticker.C:
			s.tick()
		}
	}
	s.finish()
	return s.stats, nil
}

func (s *Simulation) tick() {
	if wheel := s.player.Advance(s.devices); wheel != 0 {
		s.ctrl.Rig().Wheel(wheel)
	}

	s.ctrl.Tick(s.dt)
	s.world.Step(s.dt)
	s.stats.Ticks++

	if s.ctrl.LastStep().Jumped {
		s.stats.Jumps++
	}
	st := s.ctrl.State()
	if speed := st.Velocity.Len(); speed > s.stats.MaxSpeed {
		s.stats.MaxSpeed = speed
	}

	if s.logEvery > 0 && s.stats.Ticks%s.logEvery == 0 {
		logState(s.stats.Ticks, st)
	}
}

func (s *Simulation) finish() {
	logState(s.stats.Ticks, s.ctrl.State())
	log.Info().
		Int("ticks", s.stats.Ticks).
		Int("jumps", s.stats.Jumps).
		Int("landings", s.stats.Landings).
		Int("respawns", s.stats.Respawns).
		Float64("max_speed", s.stats.MaxSpeed).
		Msg("simulation finished")
}

// State returns the avatar state after the last tick.
func (s *Simulation) State() controller.AvatarState {
	return s.ctrl.State()
}

func logState(tick int, st controller.AvatarState) {
	log.Info().
		Int("tick", tick).
		Floats64("pos", st.Position[:]).
		Floats64("vel", st.Velocity[:]).
		Bool("grounded", st.Grounded).
		Stringer("animation", st.Animation).
		Float64("yaw", st.Yaw).
		Msg("state")
}
