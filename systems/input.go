package systems

import (
	"github.com/automoto/sidescroller/components"
	cfg "github.com/automoto/sidescroller/config"
	"github.com/automoto/sidescroller/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard into the Input component and hands the
// result to every player. Must run before the animator ticks.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	pollInput(input, ebiten.IsKeyPressed)

	for e := range components.PlayerInput.Iter(ecs.World) {
		components.PlayerInput.Get(e).CurrentInput = input.Current
	}
}

// pollInput swaps the frame buffers and reads every binding through pressed.
func pollInput(input *components.InputData, pressed func(ebiten.Key) bool) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if pressed(key) {
				input.Current[actionID] = true
				break
			}
		}
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(ecs.World); ok {
		return components.Input.Get(entry)
	}
	return factory.CreateInput(ecs)
}
