package components

import "github.com/yohamta/donburi"

// MessageStateData is a singleton tracking the active notice
type MessageStateData struct {
	Text         string // Currently displayed notice ("" = none)
	DisplayTimer int    // Frames remaining to display the notice
}

var MessageState = donburi.NewComponentType[MessageStateData]()
