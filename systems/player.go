package systems

import (
	"github.com/automoto/sidescroller/components"
	cfg "github.com/automoto/sidescroller/config"
	"github.com/automoto/sidescroller/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePlayer integrates one player's input into velocity and position.
// The pre-move position is recorded first so StepBack can restore it.
func UpdatePlayer(playerEntry *donburi.Entry) {
	if !playerEntry.HasComponent(components.Player) {
		return
	}
	obj := components.Object.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	player.LastX, player.LastY = obj.X, obj.Y
	player.SteppedBack = false

	var left, right, up, down bool
	if playerEntry.HasComponent(components.PlayerInput) {
		input := components.PlayerInput.Get(playerEntry)
		left = input.CurrentInput[cfg.ActionMoveLeft]
		right = input.CurrentInput[cfg.ActionMoveRight]
		up = input.CurrentInput[cfg.ActionMoveUp]
		down = input.CurrentInput[cfg.ActionMoveDown]
	}

	player.Velocity.X = steer(player.Velocity.X, gamemath.AxisInput(left, right))
	player.Velocity.Y = steer(player.Velocity.Y, gamemath.AxisInput(up, down))

	if player.Velocity.X == 0 && player.Velocity.Y == 0 {
		return
	}
	obj.MoveTo(obj.X+player.Velocity.X, obj.Y+player.Velocity.Y)
}

// steer accelerates along the input direction, or slows down when there is none.
func steer(speed, dir float64) float64 {
	if dir == 0 {
		return gamemath.ApplyFriction(speed, cfg.Player.Friction)
	}
	return gamemath.ClampSpeed(speed+dir*cfg.Player.Acceleration, cfg.Player.MaxSpeed)
}

// StepBack returns the player to where it stood before this frame's update.
// Calling it again in the same frame changes nothing.
func StepBack(playerEntry *donburi.Entry) {
	if playerEntry == nil || !playerEntry.Valid() || !playerEntry.HasComponent(components.Player) ||
		!playerEntry.HasComponent(components.Object) {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	obj.MoveTo(player.LastX, player.LastY)
	player.Velocity.X, player.Velocity.Y = 0, 0
	player.SteppedBack = true
}
