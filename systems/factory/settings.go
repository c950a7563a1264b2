package factory

import (
	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSettings(ecs *ecs.ECS, store *cfg.Store) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.Set(settings, &components.SettingsData{
		Store: store,
		Debug: cfg.Debug.Overlay,
	})
	return settings
}
