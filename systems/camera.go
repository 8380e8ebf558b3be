package systems

import (
	"math"

	"github.com/automoto/sidescroller/components"
	"github.com/automoto/sidescroller/config"
	"github.com/automoto/sidescroller/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	mapEntry, ok := components.Map.First(e.World)
	if !ok {
		return
	}
	m := components.Map.Get(mapEntry)

	for _, p := range m.Players {
		if !live(p) || !p.HasComponent(components.Object) || components.Object.Get(p).Object == nil {
			continue
		}
		follow(camera, components.Object.Get(p).HitBox(), m.Width(), float64(config.C.Width), 1/float32(ebiten.TPS()))
		return
	}
}

// follow scrolls the camera horizontally once the target leaves the dead zone
// around the view center. The view never shows anything past the map edges.
func follow(camera *components.CameraData, target gamemath.HitBox, mapWidth, viewWidth float64, dt float32) {
	maxX := math.Max(0, mapWidth-viewWidth)

	goal := camera.TargetX
	center := camera.Position.X + viewWidth/2
	targetX := target.X + target.W/2
	if math.Abs(targetX-center) > config.Camera.DeadZoneX {
		goal = targetX - viewWidth/2
	}
	goal = gamemath.ClampFloat(goal, 0, maxX)

	if goal != camera.TargetX || (camera.ScrollX == nil && camera.Position.X != goal) {
		camera.TargetX = goal
		camera.ScrollX = gween.New(float32(camera.Position.X), float32(goal), config.Camera.ScrollSeconds, ease.OutQuad)
	}

	if camera.ScrollX != nil {
		x, done := camera.ScrollX.Update(dt)
		camera.Position.X = gamemath.ClampFloat(float64(x), 0, maxX)
		if done {
			camera.Position.X = goal
			camera.ScrollX = nil
		}
	}
}
