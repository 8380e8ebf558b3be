package components

import (
	"github.com/automoto/sidescroller/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's hitbox. Its position is the entity's position.
type ObjectData struct {
	*resolv.Object
}

// HitBox returns the current bounds of the object.
func (o *ObjectData) HitBox() gamemath.HitBox {
	return gamemath.FromObject(o.Object)
}

// MoveTo places the object and re-registers it in its space, if any.
func (o *ObjectData) MoveTo(x, y float64) {
	o.X, o.Y = x, y
	if o.Space != nil {
		o.Update()
	}
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision grid shared by every hitbox-bearing entity.
var Space = donburi.NewComponentType[resolv.Space]()
