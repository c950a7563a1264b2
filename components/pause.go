package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. StepOnce lets one tick through while
// paused.
type PauseData struct {
	IsPaused bool
	StepOnce bool
}

var Pause = donburi.NewComponentType[PauseData]()
