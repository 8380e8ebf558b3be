package factory

import (
	"github.com/automoto/sidescroller/archetypes"
	"github.com/automoto/sidescroller/components"
	cfg "github.com/automoto/sidescroller/config"
	"github.com/yohamta/donburi/ecs"
)

// CreateMap spawns the map entity with the overlay flags taken from the debug config.
func CreateMap(ecs *ecs.ECS, rows, cols int, cellWidth, cellHeight, scale float64) *components.MapData {
	entry := archetypes.Map.Spawn(ecs)
	m := components.NewMapData(rows, cols, cellWidth, cellHeight, scale)
	m.DrawBounds.Set(cfg.Debug.DrawBounds)
	m.DrawFPS.Set(cfg.Debug.DrawFPS)
	m.DrawGrid.Set(cfg.Debug.DrawGrid)
	components.Map.Set(entry, m)
	return components.Map.Get(entry)
}

// CreateSettings spawns the preferences entity that lives outside the map.
func CreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(entry, components.SettingsData{
		ShowPanel: components.NewFlag(cfg.Debug.ShowPanel),
	})
	return components.Settings.Get(entry)
}

// CreateInput spawns the entity that holds the polled keyboard state.
func CreateInput(ecs *ecs.ECS) *components.InputData {
	entry := archetypes.Input.Spawn(ecs)
	return components.Input.Get(entry)
}
