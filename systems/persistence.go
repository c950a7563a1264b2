package systems

import (
	"encoding/json"

	cfg "github.com/automoto/strider/config"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

const tuningItem = "tuning"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "strider",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadTuning returns the saved tuning, or nil when nothing was saved or
// persistence is unavailable.
func LoadTuning() (*cfg.File, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(tuningItem)
	if err != nil {
		log.Warn().Err(err).Msg("could not load saved tuning")
		return nil, nil
	}
	if len(data) == 0 {
		// No saved tuning yet, use defaults
		return nil, nil
	}

	var f cfg.File
	if err := json.Unmarshal(data, &f); err != nil {
		log.Warn().Err(err).Msg("could not parse saved tuning")
		return nil, err
	}
	return &f, nil
}

// SaveTuning writes s to disk. Without persistence it does nothing.
func SaveTuning(s *cfg.Snapshot) error {
	if gdataManager == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(cfg.ToFile(*s))
	if err != nil {
		log.Warn().Err(err).Msg("could not serialize tuning")
		return err
	}
	if err := gdataManager.SaveItem(tuningItem, data); err != nil {
		log.Warn().Err(err).Msg("could not save tuning")
		return err
	}
	return nil
}

// ClearTuning removes the saved tuning.
func ClearTuning() error {
	if gdataManager == nil {
		return nil
	}
	// Save empty data to clear the tuning
	if err := gdataManager.SaveItem(tuningItem, nil); err != nil {
		log.Warn().Err(err).Msg("could not clear saved tuning")
		return err
	}
	return nil
}

// ApplySavedTuning overlays saved tuning on base. A broken save is logged and
// ignored.
func ApplySavedTuning(base cfg.Snapshot) cfg.Snapshot {
	saved, err := LoadTuning()
	if err != nil || saved == nil {
		return base
	}
	s, err := saved.Apply(base)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring saved tuning")
		return base
	}
	return s
}
