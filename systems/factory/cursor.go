package factory

import (
	"github.com/automoto/strider/shared/camerarig"
	"github.com/hajimehoshi/ebiten/v2"
)

func setCursor(c camerarig.Cursor) {
	switch c {
	case camerarig.CursorGrab:
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	case camerarig.CursorGrabbing:
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}
