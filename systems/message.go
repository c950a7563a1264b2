package systems

import (
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// ShowMessage replaces the active notice with text.
func ShowMessage(ecs *ecs.ECS, text string) {
	state := getOrCreateMessageState(ecs)
	state.Text = text
	state.DisplayTimer = cfg.Message.DisplayDuration
}

// UpdateMessage counts down the active notice.
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)
	if state.DisplayTimer > 0 {
		state.DisplayTimer--
		if state.DisplayTimer == 0 {
			state.Text = ""
		}
	}
}

// DrawMessage renders the active notice at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.Text == "" {
		return
	}

	face := fonts.Regular.Get()
	textWidth, textHeight := fonts.Measure(face, state.Text)

	padding := float32(cfg.Message.BoxPadding)
	boxWidth := float32(textWidth) + padding*2
	boxHeight := float32(textHeight) + padding*2

	screenWidth := float32(screen.Bounds().Dx())
	boxX := (screenWidth - boxWidth) / 2
	boxY := float32(cfg.Message.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.Message.BoxColor, false)
	drawText(screen, state.Text, face, int(boxX+padding), int(boxY+padding), cfg.Menu.TextColorSelected)
}

func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
		components.MessageState.SetValue(entry, components.MessageStateData{})
	}
	return components.MessageState.Get(entry)
}
