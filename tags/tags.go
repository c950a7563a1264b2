package tags

import "github.com/yohamta/donburi"

var (
	Avatar   = donburi.NewTag().SetName("Avatar")
	Platform = donburi.NewTag().SetName("Platform")
)
