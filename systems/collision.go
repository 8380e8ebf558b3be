package systems

import (
	"github.com/automoto/sidescroller/components"
	"github.com/automoto/sidescroller/shared/gamemath"
	"github.com/automoto/sidescroller/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Collisions answers whether a hitbox overlaps any solid shape of a map.
// Candidates come from the map's resolv space when it has one; the final
// test is always HitBox.Intersects, so both paths agree.
type Collisions struct {
	seen       map[*resolv.Object]struct{}
	candidates []*resolv.Object
}

func NewCollisions() *Collisions {
	return &Collisions{
		seen: make(map[*resolv.Object]struct{}),
	}
}

// Overlapping reports whether hb intersects a static hitbox of m.
func (c *Collisions) Overlapping(m *components.MapData, hb gamemath.HitBox) bool {
	if m.Space == nil {
		return overlappingAny(m.StaticShapes, hb)
	}
	for _, obj := range c.broadphase(m.Space, hb) {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		if gamemath.FromObject(obj).Intersects(hb) {
			return true
		}
	}
	return false
}

// broadphase collects the solid objects registered in the cells around hb.
// The query is padded by one cell since resolv trims a pixel off the far
// edges when it registers an object.
func (c *Collisions) broadphase(space *resolv.Space, hb gamemath.HitBox) []*resolv.Object {
	clear(c.seen)
	c.candidates = c.candidates[:0]

	minX, minY := space.WorldToSpace(hb.X, hb.Y)
	maxX, maxY := space.WorldToSpace(hb.Right(), hb.Bottom())
	minX, minY = max(minX-1, 0), max(minY-1, 0)
	maxX, maxY = min(maxX+1, space.Width()-1), min(maxY+1, space.Height()-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			cell := space.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				if _, dup := c.seen[obj]; dup || !obj.HasTags(tags.ResolvSolid) {
					continue
				}
				c.seen[obj] = struct{}{}
				c.candidates = append(c.candidates, obj)
			}
		}
	}
	return c.candidates
}

// overlappingAny is the pairwise scan used when the map has no space.
func overlappingAny(shapes []*donburi.Entry, hb gamemath.HitBox) bool {
	for _, e := range shapes {
		if e == nil || !e.Valid() || !e.HasComponent(components.Object) {
			continue
		}
		obj := components.Object.Get(e)
		if obj.Object == nil {
			continue
		}
		if obj.HitBox().Intersects(hb) {
			return true
		}
	}
	return false
}
