package factory

import (
	"github.com/automoto/sidescroller/archetypes"
	"github.com/automoto/sidescroller/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *components.CameraData {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
	return components.Camera.Get(camera)
}
