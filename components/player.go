package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	PlayerIndex int
	Velocity    math.Vec2

	// Position at the start of the current frame's update. Step-back restores it.
	LastX float64
	LastY float64

	// Set when the player was stepped back during the current frame.
	SteppedBack bool
}

var Player = donburi.NewComponentType[PlayerData]()
