package systems

import (
	"os"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const menuExit = "Exit"

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system listing names. Selecting a course
// hands its index to startCourse and switches to the returned scene.
func NewUpdateMenu(sceneChanger SceneChanger, names []string, startCourse func(index int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e, names)

		// Navigate menu with wrap-around
		numOptions := len(menu.Options)
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		// Handle selection
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			if menu.SelectedIndex == numOptions-1 {
				os.Exit(0)
			}
			sceneChanger.ChangeScene(startCourse(menu.SelectedIndex))
		}

		// Allow escape to exit
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the course select screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu, ok := getMenu(e)
	if !ok {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), colorBackground, false)

	drawCentered(screen, cfg.C.Title, fonts.Title.Get(), height/4, cfg.Menu.TitleColor)

	face := fonts.Bold.Get()
	step := lineHeight(face)
	startY := height / 3
	for i, option := range menu.Options {
		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, cursorMark(i == menu.SelectedIndex)+option, face, startY+i*step, textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Exit"
	drawCentered(screen, hint, fonts.Small.Get(), height-24, cfg.Menu.TextColorNormal)
}

func getMenu(e *ecs.ECS) (*components.MenuData, bool) {
	ent, ok := components.Menu.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Menu.Get(ent), true
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS, names []string) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		options := append(append([]string{}, names...), menuExit)

		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex: 0,
			Options:       options,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
