package components

import "github.com/yohamta/donburi"

// MenuData stores the current state of the course select menu
type MenuData struct {
	SelectedIndex int      // Current selection index in Options
	Options       []string // Course names, then "Exit"
}

// Menu is the component type for course select state
var Menu = donburi.NewComponentType[MenuData]()
