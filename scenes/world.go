package scenes

import (
	"context"
	"sync"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/intent"
	"github.com/automoto/strider/shared/leveldata"
	"github.com/automoto/strider/shared/physics"
	"github.com/automoto/strider/systems"
	"github.com/automoto/strider/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Setup is what a CourseScene is built from. Store and Devices outlive the
// scene so tuning and held keys carry over between courses.
type Setup struct {
	Store       *cfg.Store
	Devices     *intent.Devices
	Gamepad     intent.GamepadSource // nil disables gamepads
	Courses     map[string]*leveldata.CourseData
	Names       []string
	CourseIndex int
	Physics     physics.Options
}

// CourseScene runs one course with a single avatar.
type CourseScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	setup        Setup
	once         sync.Once
	cancel       context.CancelFunc
}

func NewCourseScene(sc SceneChanger, setup Setup) *CourseScene {
	return &CourseScene{sceneChanger: sc, setup: setup}
}

func (cs *CourseScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	// N cycles to the next course, Backspace returns to course select
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyN) && len(cs.setup.Names) > 1:
		next := cs.setup
		next.CourseIndex = (cs.setup.CourseIndex + 1) % len(cs.setup.Names)
		cs.Close()
		cs.sceneChanger.ChangeScene(NewCourseScene(cs.sceneChanger, next))
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		cs.Close()
		cs.sceneChanger.ChangeScene(NewMenuScene(cs.sceneChanger, cs.setup))
	}
}

func (cs *CourseScene) Draw(screen *ebiten.Image) {
	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

// Close stops the gamepad poller and releases held inputs.
func (cs *CourseScene) Close() {
	if cs.cancel != nil {
		cs.cancel()
		cs.cancel = nil
	}
	cs.setup.Devices.Reset()
}

func (cs *CourseScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettingsMenu)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateMessage)

	// Per-tick pipeline, in order, then the physics step
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateGround))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateIntent))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMovement))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAnimation))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateRespawn))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))

	// Add renderers
	ecs.AddRenderer(components.LayerDefault, systems.DrawLevel)
	ecs.AddRenderer(components.LayerDefault, systems.DrawWorld)
	ecs.AddRenderer(components.LayerDefault, systems.DrawHUD)
	ecs.AddRenderer(components.LayerDefault, systems.DrawDebug)
	ecs.AddRenderer(components.LayerDefault, systems.DrawMessage)
	ecs.AddRenderer(components.LayerDefault, systems.DrawPause)
	ecs.AddRenderer(components.LayerDefault, systems.DrawSettingsMenu)

	cs.ecs = ecs
	s := cs.setup

	level := factory.CreateLevelAtIndex(ecs, s.Courses, s.Names, s.CourseIndex)
	course := components.Level.Get(level).CurrentCourse

	// The course's spawn point wins over the configured one
	if course.HasSpawn {
		next := *s.Store.Load()
		next.Respawn.SpawnPosition = course.Spawn
		s.Store.Replace(next)
	}
	snap := s.Store.Load()

	spaceEntry := factory.CreateSpace(ecs, course, s.Physics)
	world := components.Space.Get(spaceEntry).World

	cameraEntry := factory.CreateCamera(ecs)
	factory.CreateSettings(ecs, s.Store)
	inputEntry := factory.CreateInput(ecs, s.Devices, s.Gamepad, s.Store)
	factory.CreateAvatar(ecs, world, s.Store, s.Devices, components.Camera.Get(cameraEntry), snap.Respawn.SpawnPosition)

	if poller := components.Input.Get(inputEntry).Poller; poller != nil {
		ctx, cancel := context.WithCancel(context.Background())
		cs.cancel = cancel
		go func() {
			_ = poller.Run(ctx)
		}()
	}

	log.Info().
		Str("course", course.Name).
		Int("platforms", len(course.Platforms)).
		Floats64("spawn", snap.Respawn.SpawnPosition[:]).
		Msg("course loaded")
}
