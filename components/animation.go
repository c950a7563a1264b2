package components

import (
	"github.com/automoto/strider/assets/animations"
	cfg "github.com/automoto/strider/config"
	"github.com/yohamta/donburi"
)

// AnimationData tracks the clip playing for the avatar's motion label.
type AnimationData struct {
	Clips   *animations.ClipSet
	Current cfg.AnimationLabel
}

// SetAnimation switches clips; a repeated label keeps the clip running.
func (a *AnimationData) SetAnimation(label cfg.AnimationLabel) {
	if a.Current == label && a.Clips.Active() != nil {
		return
	}
	a.Current = label
	a.Clips.Play(label)
}

var Animation = donburi.NewComponentType[AnimationData]()
