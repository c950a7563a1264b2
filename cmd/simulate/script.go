package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/automoto/strider/shared/intent"
	"github.com/sasha-s/go-deadlock"
	"gopkg.in/yaml.v3"
)

// Step holds a set of inputs for a number of ticks.
type Step struct {
	Ticks int       `yaml:"ticks"`
	Keys  []string  `yaml:"keys"`
	Stick []float64 `yaml:"stick"` // Left stick x, y
	Look  []float64 `yaml:"look"`  // Right stick x, y
	Wheel float64   `yaml:"wheel"` // Applied once at the start of the step
}

// Script is a sequence of input steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// DefaultScript walks forward, sprints, jumps and settles.
var DefaultScript = Script{Steps: []Step{
	{Ticks: 60},
	{Ticks: 60, Keys: []string{"W"}},
	{Ticks: 60, Keys: []string{"W", "ShiftLeft"}},
	{Ticks: 1, Keys: []string{"W", "Space"}},
	{Ticks: 59, Keys: []string{"W"}},
	{Ticks: 60, Stick: []float64{1, 0}},
	{Ticks: 60},
}}

func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script %s: %w", path, err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Script{}, err
	}
	for i, st := range s.Steps {
		if st.Ticks <= 0 {
			return Script{}, fmt.Errorf("step %d: ticks must be positive", i)
		}
		if len(st.Stick) != 0 && len(st.Stick) != 2 {
			return Script{}, fmt.Errorf("step %d: stick needs 2 values, got %d", i, len(st.Stick))
		}
		if len(st.Look) != 0 && len(st.Look) != 2 {
			return Script{}, fmt.Errorf("step %d: look needs 2 values, got %d", i, len(st.Look))
		}
	}
	return s, nil
}

// Total returns the script length in ticks.
func (s Script) Total() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Ticks
	}
	return n
}

// Player replays a Script into Devices one tick at a time. It also serves the
// scripted sticks as a gamepad so they travel the same path as real hardware.
type Player struct {
	script Script
	step   int
	left   int // Ticks remaining in the current step

	held map[string]bool

	mu  deadlock.Mutex
	pad intent.GamepadState
	on  bool
}

func NewPlayer(s Script) *Player {
	p := &Player{script: s, step: -1, held: make(map[string]bool)}
	return p
}

// Done reports whether every step has played out.
func (p *Player) Done() bool {
	return p.step >= len(p.script.Steps)
}

// Advance applies the inputs for the next tick. It returns the wheel delta to
// forward to the camera rig, non-zero only on a step's first tick.
func (p *Player) Advance(devices *intent.Devices) (wheel float64) {
	for p.left == 0 {
		p.step++
		if p.Done() {
			p.release(devices)
			p.setPad(nil)
			return 0
		}
		st := p.script.Steps[p.step]
		p.left = st.Ticks
		p.applyKeys(devices, st.Keys)
		p.setPad(&st)
		wheel = st.Wheel
	}
	p.left--
	return wheel
}

func (p *Player) applyKeys(devices *intent.Devices, keys []string) {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	for _, k := range sortedKeys(p.held) {
		if !want[k] {
			devices.KeyUp(k)
			delete(p.held, k)
		}
	}
	for _, k := range keys {
		if !p.held[k] {
			devices.KeyDown(k)
			p.held[k] = true
		}
	}
}

func (p *Player) release(devices *intent.Devices) {
	p.applyKeys(devices, nil)
}

func (p *Player) setPad(st *Step) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if st == nil || (len(st.Stick) == 0 && len(st.Look) == 0) {
		p.on = false
		p.pad = intent.GamepadState{}
		return
	}
	p.on = true
	p.pad = intent.GamepadState{Connected: true, Name: "scripted"}
	if len(st.Stick) == 2 {
		p.pad.Axes[intent.AxisLeftX] = st.Stick[0]
		p.pad.Axes[intent.AxisLeftY] = st.Stick[1]
	}
	if len(st.Look) == 2 {
		p.pad.Axes[intent.AxisRightX] = st.Look[0]
		p.pad.Axes[intent.AxisRightY] = st.Look[1]
	}
}

// ReadGamepad implements intent.GamepadSource.
func (p *Player) ReadGamepad() (intent.GamepadState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pad, p.on
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
