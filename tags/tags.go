package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Background  = donburi.NewTag().SetName("Background")
	StaticShape = donburi.NewTag().SetName("StaticShape")
	Land        = donburi.NewTag().SetName("Land")
	Platform    = donburi.NewTag().SetName("Platform")
	Tree        = donburi.NewTag().SetName("Tree")
)

// Resolv tags for the collision space
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
)
