package components

import (
	"github.com/automoto/sidescroller/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// MapData owns the level's entity lists. List order is render order:
// background first, then static shapes, then players.
type MapData struct {
	Rows       int
	Cols       int
	CellWidth  float64
	CellHeight float64
	Scale      float64

	Background   *donburi.Entry
	StaticShapes []*donburi.Entry
	Players      []*donburi.Entry

	// Broadphase grid. Nil means collisions are checked pairwise.
	Space *resolv.Space

	DrawBounds *Flag
	DrawFPS    *Flag
	DrawGrid   *Flag
}

// NewMapData returns a map with empty lists and all overlay flags off.
func NewMapData(rows, cols int, cellWidth, cellHeight, scale float64) *MapData {
	return &MapData{
		Rows:       rows,
		Cols:       cols,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Scale:      scale,
		DrawBounds: NewFlag(false),
		DrawFPS:    NewFlag(false),
		DrawGrid:   NewFlag(false),
	}
}

// Width is the world width in pixels.
func (m *MapData) Width() float64 {
	return m.Scale * m.CellWidth * float64(m.Cols)
}

// Height is the world height in pixels.
func (m *MapData) Height() float64 {
	return m.Scale * m.CellHeight * float64(m.Rows)
}

// CellSize is the scaled size of one grid cell.
func (m *MapData) CellSize() (float64, float64) {
	return m.Scale * m.CellWidth, m.Scale * m.CellHeight
}

// InMap reports whether hb lies entirely within the background bounds.
// Without a background nothing is in the map.
func (m *MapData) InMap(hb gamemath.HitBox) bool {
	bounds, ok := m.Bounds()
	if !ok {
		return false
	}
	return bounds.Contains(hb)
}

// Bounds returns the background's hitbox.
func (m *MapData) Bounds() (gamemath.HitBox, bool) {
	if m.Background == nil || !m.Background.Valid() || !m.Background.HasComponent(Object) {
		return gamemath.HitBox{}, false
	}
	obj := Object.Get(m.Background)
	if obj.Object == nil {
		return gamemath.HitBox{}, false
	}
	return obj.HitBox(), true
}

var Map = donburi.NewComponentType[MapData]()
