package components

import (
	"github.com/yohamta/donburi"
)

// SettingsMenuData stores the current state of the tuning menu overlay.
// Selected indexes config.TuningOptions; len(TuningOptions) is "Back".
type SettingsMenuData struct {
	IsOpen   bool
	Selected int
}

// SettingsMenu is the component type for tuning menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
