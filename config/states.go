package config

// AnimationLabel is the discrete motion label shown to the animation and UI layers.
type AnimationLabel int

const (
	Idle AnimationLabel = iota
	Walk
	Run
	Jump
	Fall
)

// AnimationLabelToName maps labels to the names used by the rendering side.
var AnimationLabelToName = map[AnimationLabel]string{
	Idle: "idle",
	Walk: "walk",
	Run:  "run",
	Jump: "jump",
	Fall: "fall",
}

func (a AnimationLabel) String() string {
	if name, ok := AnimationLabelToName[a]; ok {
		return name
	}
	return "unknown"
}

// InputMethod represents the type of input device most recently used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
	InputTouch
)

func (m InputMethod) String() string {
	switch m {
	case InputXbox:
		return "xbox"
	case InputPlayStation:
		return "playstation"
	case InputTouch:
		return "touch"
	}
	return "keyboard"
}
