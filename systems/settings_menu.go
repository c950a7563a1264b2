package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// numSettingsOptions counts the tuning values plus "Back".
var numSettingsOptions = len(cfg.TuningOptions) + 1

// UpdateSettingsMenu opens the tuning menu on Tab and handles navigation and
// value changes while it is open.
func UpdateSettingsMenu(e *ecs.ECS) {
	menu := GetOrCreateSettingsMenu(e)

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		menu.IsOpen = !menu.IsOpen
		menu.Selected = 0
		return
	}
	if !menu.IsOpen {
		return
	}

	settings, ok := GetSettings(e)
	if !ok {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		menu.Selected = (menu.Selected - 1 + numSettingsOptions) % numSettingsOptions
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		menu.Selected = (menu.Selected + 1) % numSettingsOptions
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		adjustValue(e, settings, menu, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		adjustValue(e, settings, menu, +1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && menu.Selected == len(cfg.TuningOptions) {
		menu.IsOpen = false
	}
}

// adjustValue publishes a snapshot with the selected option stepped.
func adjustValue(e *ecs.ECS, settings *components.SettingsData, menu *components.SettingsMenuData, direction int) {
	if menu.Selected >= len(cfg.TuningOptions) {
		return
	}
	opt := cfg.TuningOptions[menu.Selected]
	next := opt.Adjust(*settings.Store.Load(), direction)
	v := settings.Store.Replace(next)
	settings.Dirty = true
	log.Debug().Uint64("version", v).Str("option", opt.Label).Str("value", opt.Value(&next)).Msg("tuning adjusted")
}

// DrawSettingsMenu renders the tuning overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateSettingsMenu(e)
	if !menu.IsOpen {
		return
	}
	settings, ok := GetSettings(e)
	if !ok {
		return
	}
	snap := settings.Store.Load()

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Message.BoxColor, false)

	drawCentered(screen, "TUNING", fonts.Title.Get(), 16, cfg.Menu.TitleColor)

	// Center the list vertically
	face := fonts.Regular.Get()
	step := lineHeight(face)
	startY := (height - numSettingsOptions*step) / 2
	labelX := width/2 - 160
	valueX := width/2 + 40

	for i, opt := range cfg.TuningOptions {
		y := startY + i*step
		textColor := settingsColor(menu.Selected == i)
		drawText(screen, cursorMark(menu.Selected == i)+opt.Label, face, labelX, y, textColor)
		drawText(screen, fmt.Sprintf("< %s >", opt.Value(snap)), face, valueX, y, textColor)
	}
	back := len(cfg.TuningOptions)
	drawText(screen, cursorMark(menu.Selected == back)+"Back", face, labelX, startY+back*step, settingsColor(menu.Selected == back))

	hint := "Up/Down: Navigate   Left/Right: Change   Enter/Tab: Close   F5: Save"
	if settings.Dirty {
		hint += "   (unsaved)"
	}
	drawCentered(screen, hint, fonts.Small.Get(), height-24, cfg.Menu.TextColorNormal)
}

func settingsColor(selected bool) color.RGBA {
	if selected {
		return cfg.Menu.TextColorSelected
	}
	return cfg.Menu.TextColorNormal
}

func cursorMark(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.SettingsMenu))
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// IsSettingsOpen returns true if the tuning menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).IsOpen
}
