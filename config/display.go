package config

import "image/color"

// Config contains window and demo settings
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int // Ticks per second; the pipeline dt is 1/TPS
}

// TouchConfig contains on-screen control layout in screen pixels
type TouchConfig struct {
	JoystickRadius float64
	ButtonRadius   float64
	ButtonMargin   float64
}

// DebugConfig contains developer toggles
type DebugConfig struct {
	Overlay bool // Start with the debug overlay on
}

// MessageConfig contains the on-screen notice style
type MessageConfig struct {
	DisplayDuration int        // Frames to display a notice
	BoxPadding      float64    // Padding around text
	BoxColor        color.RGBA // Semi-transparent background color
	TopMargin       float64    // Distance from top of screen
}

// MenuConfig contains the text colors shared by the menus and overlays
type MenuConfig struct {
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	ItemGap           int // Extra pixels between menu lines
}

var C Config
var Touch TouchConfig
var Debug DebugConfig
var Message MessageConfig
var Menu MenuConfig

func init() {
	C = Config{
		Width:  960,
		Height: 540,
		Title:  "strider",
		TPS:    60,
	}

	Touch = TouchConfig{
		JoystickRadius: 60,
		ButtonRadius:   36,
		ButtonMargin:   24,
	}

	Debug = DebugConfig{
		Overlay: false,
	}

	Message = MessageConfig{
		DisplayDuration: 120, // 2 seconds at 60 TPS
		BoxPadding:      6,
		BoxColor:        color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TopMargin:       40,
	}

	Menu = MenuConfig{
		TitleColor:        color.RGBA{R: 255, G: 200, B: 80, A: 255},
		TextColorNormal:   color.RGBA{R: 200, G: 200, B: 200, A: 255},
		TextColorSelected: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ItemGap:           6,
	}
}
