package systems

import (
	"image/color"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on Escape or P; Period steps one tick while paused.
// This system should run AFTER UpdateInput but BEFORE the gameplay systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	pause.StepOnce = false
	if IsSettingsOpen(ecs) {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		pause.IsPaused = !pause.IsPaused
	}
	if pause.IsPaused && inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		pause.StepOnce = true
	}
}

func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 120}, false)
	title := fonts.Title.Get()
	drawCentered(screen, "PAUSED", title, h/2-lineHeight(title), cfg.Menu.TitleColor)
	drawCentered(screen, "Esc: Resume   .: Step", fonts.Small.Get(), h/2+8, cfg.Menu.TextColorNormal)
}

// WithPauseCheck wraps a system to skip execution when paused or while the
// tuning menu is open.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused && !pause.StepOnce {
			return
		}
		if IsSettingsOpen(e) {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Pause))
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
