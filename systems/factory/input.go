package factory

import (
	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/intent"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateInput creates the device bridge tuned from store. source may be nil
// to skip gamepads.
func CreateInput(ecs *ecs.ECS, devices *intent.Devices, source intent.GamepadSource, store *cfg.Store) *donburi.Entry {
	input := archetypes.Input.Spawn(ecs)

	version := store.Version()
	in := store.Load().Input
	data := &components.InputData{
		Devices:       devices,
		Joystick:      intent.NewJoystick(cfg.Touch.JoystickRadius, in.TouchDeadzone),
		Touches:       make(map[ebiten.TouchID]components.TouchRole),
		TuningVersion: version,
	}
	if source != nil {
		data.Poller = intent.NewGamepadPoller(source, devices, in.GamepadPollInterval)
	}
	components.Input.Set(input, data)
	return input
}
