package main

import (
	"testing"

	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/shared/intent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(`
steps:
  - ticks: 10
    keys: [W, ShiftLeft]
  - ticks: 5
    stick: [0.5, -1]
    wheel: -100
`))
	require.NoError(t, err)
	require.Len(t, s.Steps, 2)
	assert.Equal(t, []string{"W", "ShiftLeft"}, s.Steps[0].Keys)
	assert.Equal(t, -100.0, s.Steps[1].Wheel)
	assert.Equal(t, 15, s.Total())
}

func TestParseScriptRejectsBadSteps(t *testing.T) {
	_, err := ParseScript([]byte("steps:\n  - ticks: 0\n"))
	assert.Error(t, err)

	_, err = ParseScript([]byte("steps:\n  - ticks: 1\n    stick: [1]\n"))
	assert.Error(t, err)

	_, err = ParseScript([]byte("steps:\n  - ticks: 1\n    jump: true\n"))
	assert.Error(t, err, "unknown fields are rejected")
}

func TestPlayerPressesAndReleasesKeys(t *testing.T) {
	devices := intent.NewDevices()
	agg := intent.NewAggregator(devices, cfg.NewStore(cfg.Default()))
	p := NewPlayer(Script{Steps: []Step{
		{Ticks: 2, Keys: []string{"W", "ShiftLeft"}},
		{Ticks: 1, Keys: []string{"W"}},
	}})

	p.Advance(devices)
	in := agg.Poll()
	assert.Equal(t, 1.0, in.Movement.Y())
	assert.True(t, in.Run)

	p.Advance(devices)
	p.Advance(devices)
	in = agg.Poll()
	assert.Equal(t, 1.0, in.Movement.Y())
	assert.False(t, in.Run)
	assert.False(t, p.Done())

	p.Advance(devices)
	assert.True(t, p.Done())
	assert.True(t, agg.Poll().Idle())
}

func TestPlayerServesSticksAsGamepad(t *testing.T) {
	devices := intent.NewDevices()
	p := NewPlayer(Script{Steps: []Step{
		{Ticks: 1, Stick: []float64{1, 0}, Wheel: 50},
		{Ticks: 1},
	}})

	_, ok := p.ReadGamepad()
	assert.False(t, ok)

	assert.Equal(t, 50.0, p.Advance(devices))
	pad, ok := p.ReadGamepad()
	require.True(t, ok)
	assert.Equal(t, 1.0, pad.Axes[intent.AxisLeftX])

	assert.Zero(t, p.Advance(devices))
	_, ok = p.ReadGamepad()
	assert.False(t, ok)
}
