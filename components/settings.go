package components

import (
	cfg "github.com/automoto/strider/config"
	"github.com/yohamta/donburi"
)

// SettingsData holds the live tuning store and demo toggles.
type SettingsData struct {
	Store *cfg.Store
	Debug bool
	Dirty bool // Tuning changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
