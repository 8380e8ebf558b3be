package archetypes

import (
	"github.com/automoto/sidescroller/components"
	cfg "github.com/automoto/sidescroller/config"
	"github.com/automoto/sidescroller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Background = newArchetype(
		tags.Background,
		components.Sprite,
		components.Object,
		components.Outline,
	)
	Land = newArchetype(
		tags.StaticShape,
		tags.Land,
		components.Sprite,
		components.Object,
		components.Outline,
	)
	Platform = newArchetype(
		tags.StaticShape,
		tags.Platform,
		components.Sprite,
		components.Object,
		components.Outline,
	)
	// Trees are decoration: drawn, never collided with.
	Tree = newArchetype(
		tags.StaticShape,
		tags.Tree,
		components.Sprite,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Sprite,
		components.Object,
		components.Outline,
	)
	Space = newArchetype(
		components.Space,
	)
	Map = newArchetype(
		components.Map,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
