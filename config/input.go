package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionToggleBounds
	ActionToggleFPS
	ActionToggleGrid
	ActionTogglePanel
	ActionToggleRunning
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			},
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
			ActionToggleBounds: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionToggleFPS: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
			ActionToggleGrid: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionTogglePanel: {
				Keys: []ebiten.Key{ebiten.KeyF4},
			},
			ActionToggleRunning: {
				Keys: []ebiten.Key{ebiten.KeyP},
			},
		},
	}
}
