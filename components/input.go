package components

import (
	cfg "github.com/automoto/sidescroller/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Pressed reports whether the action is held this frame.
func (in *InputData) Pressed(action cfg.ActionID) bool {
	return in.Current[action]
}

// JustPressed reports whether the action went down this frame.
func (in *InputData) JustPressed(action cfg.ActionID) bool {
	return in.Current[action] && !in.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData stores the movement actions read for one player this frame.
type PlayerInputData struct {
	PlayerIndex  int
	CurrentInput [cfg.ActionCount]bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
