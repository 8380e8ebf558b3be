package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world-space top-left corner of the view.
type CameraData struct {
	Position math.Vec2

	// Active horizontal scroll, nil when the camera is at rest.
	ScrollX *gween.Tween
	TargetX float64
}

// Offset returns the translation that maps world space to screen space.
func (c *CameraData) Offset() (float64, float64) {
	if c == nil {
		return 0, 0
	}
	return -c.Position.X, -c.Position.Y
}

var Camera = donburi.NewComponentType[CameraData]()
