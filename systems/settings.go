package systems

import (
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the tuning hot-keys. Every change publishes a whole
// new snapshot; the pipeline applies it at the start of the next tick.
//
//	F1 debug overlay   F2 camera mode   F3 ground policy
//	F4 auto-rotate     F5 save tuning   F6 reset tuning
func UpdateSettings(e *ecs.ECS) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		settings.Debug = !settings.Debug
	}

	var notice string
	next := *settings.Store.Load()
	changed := false
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		if next.Camera.Mode == cfg.CameraOrbit {
			next.Camera.Mode = cfg.CameraFixed
		} else {
			next.Camera.Mode = cfg.CameraOrbit
		}
		notice = "Camera: " + next.Camera.Mode.String()
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		if next.Ground.Policy == cfg.GroundRaycast {
			next.Ground.Policy = cfg.GroundVelocity
		} else {
			next.Ground.Policy = cfg.GroundRaycast
		}
		notice = "Ground: " + next.Ground.Policy.String()
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyF4):
		next.Camera.AutoRotate = !next.Camera.AutoRotate
		notice = "Auto-rotate off"
		if next.Camera.AutoRotate {
			notice = "Auto-rotate on"
		}
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyF6):
		spawn := next.Respawn.SpawnPosition
		next = cfg.Default()
		next.Respawn.SpawnPosition = spawn
		_ = ClearTuning()
		notice = "Tuning reset"
		changed = true
	}

	if changed {
		v := settings.Store.Replace(next)
		settings.Dirty = true
		log.Info().
			Uint64("version", v).
			Str("camera", next.Camera.Mode.String()).
			Str("ground", next.Ground.Policy.String()).
			Bool("autoRotate", next.Camera.AutoRotate).
			Msg("tuning changed")
		ShowMessage(e, notice)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && settings.Dirty {
		if err := SaveTuning(settings.Store.Load()); err == nil {
			settings.Dirty = false
			log.Info().Msg("tuning saved")
			ShowMessage(e, "Tuning saved")
		} else {
			ShowMessage(e, "Could not save tuning")
		}
	}
}

// GetSettings returns the singleton Settings component.
func GetSettings(e *ecs.ECS) (*components.SettingsData, bool) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Settings.Get(entry), true
}
