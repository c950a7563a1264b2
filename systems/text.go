package systems

import (
	"image/color"

	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck
	"golang.org/x/image/font"
)

// drawText draws s with the top of its line at (x, y).
func drawText(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x, y+fonts.Ascent(face), clr) //nolint:staticcheck
}

// drawCentered draws s centered horizontally with the top of its line at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	w, _ := fonts.Measure(face, s)
	drawText(screen, s, face, (screen.Bounds().Dx()-w)/2, y, clr)
}

// lineHeight is the face's line height plus the menu gap.
func lineHeight(face font.Face) int {
	_, h := fonts.Measure(face, "")
	return h + cfg.Menu.ItemGap
}
