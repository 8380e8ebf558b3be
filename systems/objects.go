package systems

import (
	"github.com/automoto/sidescroller/components"
	"github.com/yohamta/donburi"
)

// refreshObject re-registers a hitbox in its space after it may have moved.
func refreshObject(e *donburi.Entry) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object != nil && obj.Space != nil {
		obj.Update()
	}
}
