package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/strider/components"
	"github.com/automoto/strider/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene lists the loaded courses
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	setup        Setup
	once         sync.Once
}

// NewMenuScene creates a new course select scene
func NewMenuScene(sc SceneChanger, setup Setup) *MenuScene {
	return &MenuScene{sceneChanger: sc, setup: setup}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	startCourse := func(index int) interface{} {
		next := ms.setup
		next.CourseIndex = index
		return NewCourseScene(ms.sceneChanger, next)
	}

	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, ms.setup.Names, startCourse))
	ms.ecs.AddRenderer(components.LayerDefault, systems.DrawMenu)
}
