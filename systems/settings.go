package systems

import (
	"github.com/automoto/sidescroller/components"
	cfg "github.com/automoto/sidescroller/config"
	"github.com/yohamta/donburi/ecs"
)

// RunToggler switches the frame loop between running and idle.
type RunToggler interface {
	Toggle()
}

// NewUpdateSettings returns the system that maps the toggle keys onto the
// overlay flags, the debug panel and the run state.
func NewUpdateSettings(runner RunToggler) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		inputEntry, ok := components.Input.First(e.World)
		if !ok {
			return
		}
		input := components.Input.Get(inputEntry)

		if mapEntry, ok := components.Map.First(e.World); ok {
			m := components.Map.Get(mapEntry)
			if input.JustPressed(cfg.ActionToggleBounds) {
				m.DrawBounds.Toggle()
			}
			if input.JustPressed(cfg.ActionToggleFPS) {
				m.DrawFPS.Toggle()
			}
			if input.JustPressed(cfg.ActionToggleGrid) {
				m.DrawGrid.Toggle()
			}
		}

		if settingsEntry, ok := components.Settings.First(e.World); ok {
			if input.JustPressed(cfg.ActionTogglePanel) {
				components.Settings.Get(settingsEntry).ShowPanel.Toggle()
			}
		}

		if runner != nil && input.JustPressed(cfg.ActionToggleRunning) {
			runner.Toggle()
		}
	}
}
