package intent

import (
	"context"
	"time"

	cfg "github.com/automoto/strider/config"
	"github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"
)

const defaultPollInterval = 100 * time.Millisecond

// GamepadSource reads the first connected gamepad. ok is false when none is
// connected.
type GamepadSource interface {
	ReadGamepad() (state GamepadState, ok bool)
}

// GamepadSourceFunc adapts a function to GamepadSource.
type GamepadSourceFunc func() (GamepadState, bool)

func (f GamepadSourceFunc) ReadGamepad() (GamepadState, bool) {
	return f()
}

// GamepadPoller copies gamepad readings into Devices at a fixed wall-clock
// interval, independent of the tick rate.
type GamepadPoller struct {
	source  GamepadSource
	devices *Devices

	mu       deadlock.Mutex
	interval time.Duration
	changed  chan struct{}

	connected bool
}

func NewGamepadPoller(source GamepadSource, devices *Devices, interval time.Duration) *GamepadPoller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &GamepadPoller{
		source:   source,
		devices:  devices,
		interval: interval,
		changed:  make(chan struct{}, 1),
	}
}

// SetInterval changes the polling period. A running poller switches at its
// next wake-up.
func (p *GamepadPoller) SetInterval(d time.Duration) {
	if d <= 0 {
		d = defaultPollInterval
	}
	p.mu.Lock()
	same := p.interval == d
	p.interval = d
	p.mu.Unlock()
	if same {
		return
	}
	select {
	case p.changed <- struct{}{}:
	default:
	}
}

// Interval returns the polling period.
func (p *GamepadPoller) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval
}

// PollOnce performs a single read and reports whether a gamepad is connected.
func (p *GamepadPoller) PollOnce() bool {
	state, ok := p.source.ReadGamepad()
	if !ok || !state.Connected {
		if p.connected {
			log.Info().Msg("gamepad disconnected")
		}
		p.connected = false
		p.devices.DisconnectGamepad()
		return false
	}

	if !p.connected {
		log.Info().Str("name", state.Name).Str("method", MethodForGamepad(state.Name).String()).Msg("gamepad connected")
	}
	p.connected = true
	p.devices.SetGamepad(state)
	return true
}

// Run polls until ctx is cancelled. It returns ctx.Err().
func (p *GamepadPoller) Run(ctx context.Context) error {
	p.PollOnce()

	ticker := time.NewTicker(p.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.changed:
			ticker.Reset(p.Interval())
		case <-ticker.C:
			p.PollOnce()
		}
	}
}

// ApplyInputConfig pushes the device-side tuning in to the widgets built
// outside the Controller. Either may be nil.
func ApplyInputConfig(in cfg.InputConfig, j *Joystick, p *GamepadPoller) {
	if j != nil {
		j.Deadzone = in.TouchDeadzone
	}
	if p != nil {
		p.SetInterval(in.GamepadPollInterval)
	}
}
