package intent

import (
	"context"
	"sync"
	"testing"
	"time"

	cfg "github.com/automoto/strider/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAggregator() (*Aggregator, *Devices) {
	d := NewDevices()
	return NewAggregator(d, cfg.NewStore(cfg.Default())), d
}

func TestPollKeyboardAccumulatesOncePerAction(t *testing.T) {
	a, d := newTestAggregator()

	d.KeyDown("W")
	d.KeyDown("ArrowUp")
	in := a.Poll()
	assert.Equal(t, mgl64.Vec2{0, 1}, in.Movement)
	assert.Equal(t, cfg.InputKeyboard, in.Method)

	d.KeyDown("S")
	in = a.Poll()
	assert.Equal(t, mgl64.Vec2{0, 0}, in.Movement, "opposite keys cancel")
}

func TestPollDiagonalIsUnitLength(t *testing.T) {
	a, d := newTestAggregator()
	d.KeyDown("W")
	d.KeyDown("D")

	in := a.Poll()
	assert.InDelta(t, 1.0, in.Movement.Len(), 1e-12)
	assert.InDelta(t, in.Movement.X(), in.Movement.Y(), 1e-12)
	assert.Greater(t, in.Movement.X(), 0.0)
}

func TestPollDoesNotClearState(t *testing.T) {
	a, d := newTestAggregator()
	d.KeyDown("Space")

	assert.True(t, a.Poll().Jump)
	assert.True(t, a.Poll().Jump)

	d.KeyUp("Space")
	assert.False(t, a.Poll().Jump)
}

func TestPollRunBindings(t *testing.T) {
	a, d := newTestAggregator()
	d.KeyDown("ShiftRight")
	assert.True(t, a.Poll().Run)
}

func TestPollGamepadDeadzoneAndInversion(t *testing.T) {
	a, d := newTestAggregator()

	d.SetGamepad(GamepadState{Connected: true, Name: "Xbox Wireless Controller", Axes: [AxisCount]float64{0.05, -0.1, 0, 0}})
	in := a.Poll()
	assert.Equal(t, mgl64.Vec2{}, in.Movement, "axes at or below deadzone contribute nothing")

	d.SetGamepad(GamepadState{Connected: true, Name: "Xbox Wireless Controller", Axes: [AxisCount]float64{0, -0.6, 0, 0}})
	in = a.Poll()
	assert.InDelta(t, 0.6, in.Movement.Y(), 1e-12, "stick up is forward")
	assert.Equal(t, cfg.InputXbox, in.Method)
}

func TestPollGamepadButtons(t *testing.T) {
	a, d := newTestAggregator()
	d.SetGamepad(GamepadState{Connected: true, Name: "DualSense Wireless Controller", Buttons: []bool{true, true}})

	in := a.Poll()
	assert.True(t, in.Jump)
	assert.True(t, in.Run)
	assert.Equal(t, cfg.InputPlayStation, in.Method)
}

func TestPollGamepadRightStickDrivesCamera(t *testing.T) {
	a, d := newTestAggregator()
	d.SetGamepad(GamepadState{Connected: true, Axes: [AxisCount]float64{0, 0, 0.5, -0.05}})

	in := a.Poll()
	assert.Equal(t, mgl64.Vec2{0.5, 0}, in.Camera)
	assert.Equal(t, mgl64.Vec2{}, in.Movement)
}

func TestPollDisconnectedGamepadContributesZero(t *testing.T) {
	a, d := newTestAggregator()
	d.SetGamepad(GamepadState{Connected: true, Axes: [AxisCount]float64{1, 0, 0, 0}, Buttons: []bool{true}})
	d.DisconnectGamepad()

	in := a.Poll()
	assert.Equal(t, mgl64.Vec2{}, in.Movement)
	assert.False(t, in.Jump)
	assert.False(t, d.GamepadConnected())
}

func TestPollCombinedSourcesClamp(t *testing.T) {
	a, d := newTestAggregator()
	d.KeyDown("W")
	d.SetGamepad(GamepadState{Connected: true, Axes: [AxisCount]float64{0, -1, 0, 0}})
	d.SetJoystick(mgl64.Vec2{0, 1})

	in := a.Poll()
	assert.InDelta(t, 1.0, in.Movement.Len(), 1e-12)
	assert.InDelta(t, 1.0, in.Movement.Y(), 1e-12)
}

func TestPollTouch(t *testing.T) {
	a, d := newTestAggregator()
	d.SetJoystick(mgl64.Vec2{0.5, 0})
	d.SetVirtualButton(cfg.ActionJump, true)

	in := a.Poll()
	assert.Equal(t, mgl64.Vec2{0.5, 0}, in.Movement)
	assert.True(t, in.Jump)
	assert.Equal(t, cfg.InputTouch, in.Method)

	d.SetVirtualButton(cfg.ActionJump, false)
	d.SetVirtualButton(cfg.ActionCount, true)
	assert.False(t, a.Poll().Jump)
}

func TestPollFollowsReplacedBindings(t *testing.T) {
	d := NewDevices()
	store := cfg.NewStore(cfg.Default())
	a := NewAggregator(d, store)

	next := cfg.Default()
	next.Input.Bindings[cfg.ActionJump] = cfg.InputBinding{Keys: []string{"J"}}
	store.Replace(next)

	d.KeyDown("Space")
	assert.False(t, a.Poll().Jump)
	d.KeyDown("J")
	assert.True(t, a.Poll().Jump)
}

func TestResetClearsEverything(t *testing.T) {
	a, d := newTestAggregator()
	d.KeyDown("W")
	d.SetJoystick(mgl64.Vec2{1, 0})
	d.SetVirtualButton(cfg.ActionRun, true)
	d.Reset()

	in := a.Poll()
	assert.True(t, in.Idle())
}

func TestDevicesConcurrentWriters(t *testing.T) {
	a, d := newTestAggregator()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				d.KeyDown("W")
				d.SetJoystick(mgl64.Vec2{0.2, 0})
				d.KeyUp("W")
			}
		}()
	}
	for j := 0; j < 100; j++ {
		assert.LessOrEqual(t, a.Poll().Movement.Len(), 1.0+1e-12)
	}
	wg.Wait()
}

func TestJoystickUpdate(t *testing.T) {
	j := NewJoystick(50, 0.1)

	v := j.Update(0, -100)
	assert.InDelta(t, 1.0, v.Y(), 1e-12, "pushing up past the rim is full forward")
	assert.InDelta(t, 0.0, v.X(), 1e-12)
	assert.Equal(t, mgl64.Vec2{0, -50}, j.Knob())
	assert.True(t, j.Active())

	v = j.Update(25, 0)
	assert.InDelta(t, 0.5, v.X(), 1e-12)

	v = j.Update(2, 2)
	assert.Equal(t, mgl64.Vec2{}, v, "inside the radial deadzone")
	assert.Equal(t, mgl64.Vec2{}, j.Knob())

	assert.Equal(t, mgl64.Vec2{}, j.Release())
	assert.False(t, j.Active())
}

type fakePad struct {
	mu    sync.Mutex
	state GamepadState
	ok    bool
	reads int
}

func (f *fakePad) ReadGamepad() (GamepadState, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	return f.state, f.ok
}

func (f *fakePad) set(state GamepadState, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state, f.ok = state, ok
}

func (f *fakePad) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads
}

func TestGamepadPollerPollOnce(t *testing.T) {
	d := NewDevices()
	pad := &fakePad{}
	p := NewGamepadPoller(pad, d, 0)

	assert.False(t, p.PollOnce())
	assert.False(t, d.GamepadConnected())

	pad.set(GamepadState{Connected: true, Name: "pad"}, true)
	assert.True(t, p.PollOnce())
	assert.True(t, d.GamepadConnected())

	pad.set(GamepadState{}, false)
	assert.False(t, p.PollOnce())
	assert.False(t, d.GamepadConnected())
}

func TestGamepadPollerRunStopsOnCancel(t *testing.T) {
	d := NewDevices()
	pad := &fakePad{state: GamepadState{Connected: true}, ok: true}
	p := NewGamepadPoller(pad, d, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	require.Eventually(t, func() bool { return pad.count() >= 3 }, time.Second, time.Millisecond)
	assert.True(t, d.GamepadConnected())

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
}

func TestGamepadPollerSetIntervalWhileRunning(t *testing.T) {
	d := NewDevices()
	pad := &fakePad{state: GamepadState{Connected: true}, ok: true}
	p := NewGamepadPoller(pad, d, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = p.Run(ctx) }()

	require.Eventually(t, func() bool { return pad.count() == 1 }, time.Second, time.Millisecond)
	p.SetInterval(time.Millisecond)
	assert.Equal(t, time.Millisecond, p.Interval())
	require.Eventually(t, func() bool { return pad.count() >= 3 }, time.Second, time.Millisecond)

	p.SetInterval(0)
	assert.Equal(t, defaultPollInterval, p.Interval())
}

func TestApplyInputConfig(t *testing.T) {
	in := cfg.Input
	in.TouchDeadzone = 0.4
	in.GamepadPollInterval = 250 * time.Millisecond
	j := NewJoystick(50, cfg.Input.TouchDeadzone)
	p := NewGamepadPoller(&fakePad{}, NewDevices(), cfg.Input.GamepadPollInterval)

	ApplyInputConfig(in, j, p)

	assert.Equal(t, 0.4, j.Deadzone)
	assert.Equal(t, 250*time.Millisecond, p.Interval())
	assert.Equal(t, mgl64.Vec2{}, j.Update(15, 0), "0.3 is inside the new deadzone")
	assert.NotPanics(t, func() { ApplyInputConfig(in, nil, nil) })
}

func TestMethodForGamepad(t *testing.T) {
	assert.Equal(t, cfg.InputPlayStation, MethodForGamepad("Sony PS5 DualSense"))
	assert.Equal(t, cfg.InputXbox, MethodForGamepad("Generic USB Joystick"))
}
