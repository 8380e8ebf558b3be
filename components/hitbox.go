package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// OutlineData is the stroke used when hitboxes are drawn.
type OutlineData struct {
	Stroke color.RGBA
}

var Outline = donburi.NewComponentType[OutlineData]()
