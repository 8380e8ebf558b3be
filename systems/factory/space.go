package factory

import (
	"math"

	"github.com/automoto/sidescroller/archetypes"
	"github.com/automoto/sidescroller/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateMapSpace sizes the space to the map's world bounds, one cell per grid cell.
func CreateMapSpace(ecs *ecs.ECS, m *components.MapData) *donburi.Entry {
	cw, ch := m.CellSize()
	entry := CreateSpace(ecs,
		int(math.Ceil(m.Width())), int(math.Ceil(m.Height())),
		max(int(cw), 1), max(int(ch), 1),
	)
	m.Space = components.Space.Get(entry)
	return entry
}
