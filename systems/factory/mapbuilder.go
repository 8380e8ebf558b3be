package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/sidescroller/archetypes"
	"github.com/automoto/sidescroller/assets"
	"github.com/automoto/sidescroller/components"
	cfg "github.com/automoto/sidescroller/config"
	"github.com/automoto/sidescroller/shared/gamemath"
	"github.com/automoto/sidescroller/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrWrongTile = errors.New("tile belongs to the wrong family")
	ErrNoGrid    = errors.New("grid is not configured")
)

// MapBuilder assembles the level's entities step by step. The first error is
// kept and every later call becomes a no-op; check Err when done.
type MapBuilder struct {
	ecs     *ecs.ECS
	sprites assets.Sprites
	space   *resolv.Space

	grid assets.Grid

	background *donburi.Entry
	landMasses []*donburi.Entry
	others     []*donburi.Entry

	err error
}

func NewMapBuilder(ecs *ecs.ECS, sprites assets.Sprites) *MapBuilder {
	return &MapBuilder{
		ecs:     ecs,
		sprites: sprites,
		grid:    assets.Grid{Scale: 1},
	}
}

func (b *MapBuilder) SetGrid(rows, cols int, cellWidth, cellHeight float64) *MapBuilder {
	if b.err != nil {
		return b
	}
	if rows <= 0 || cols <= 0 {
		b.err = fmt.Errorf("%w: %dx%d cells", gamemath.ErrInvalidGeometry, rows, cols)
		return b
	}
	if _, err := gamemath.NewHitBox(0, 0, cellWidth, cellHeight); err != nil {
		b.err = fmt.Errorf("cell size: %w", err)
		return b
	}
	b.grid.Rows, b.grid.Cols = rows, cols
	b.grid.CellWidth, b.grid.CellHeight = cellWidth, cellHeight
	return b
}

func (b *MapBuilder) SetGridScale(scale float64) *MapBuilder {
	if b.err != nil {
		return b
	}
	if _, err := gamemath.NewHitBox(0, 0, scale, scale); err != nil {
		b.err = fmt.Errorf("grid scale: %w", err)
		return b
	}
	b.grid.Scale = scale
	return b
}

// SetSpace registers every solid shape built afterwards in space.
func (b *MapBuilder) SetSpace(space *resolv.Space) *MapBuilder {
	b.space = space
	return b
}

// BuildBackground paints the sky from tile, which is asked for every cell.
// The background hitbox spans the whole map.
func (b *MapBuilder) BuildBackground(tile func(row, col int) assets.Tile) *MapBuilder {
	if !b.ready() {
		return b
	}

	var wrong error
	checked := func(row, col int) assets.Tile {
		t := tile(row, col)
		if t.Kind() != assets.KindBackground {
			if wrong == nil {
				wrong = fmt.Errorf("%w: %s (%s) at row %d col %d is not a background tile", ErrWrongTile, t, t.Kind(), row, col)
			}
			return assets.BackgroundMorning
		}
		return t
	}

	cw, ch := b.grid.CellSize()
	hb, err := gamemath.NewHitBox(0, 0, cw*float64(b.grid.Cols), ch*float64(b.grid.Rows))
	if err != nil {
		b.err = fmt.Errorf("background: %w", err)
		return b
	}

	var drawable components.Drawable
	if b.sprites != nil {
		drawable = b.sprites.Background(b.grid, checked)
	} else {
		for row := 0; row < b.grid.Rows && wrong == nil; row++ {
			for col := 0; col < b.grid.Cols && wrong == nil; col++ {
				checked(row, col)
			}
		}
	}
	if wrong != nil {
		b.err = wrong
		return b
	}

	b.background = archetypes.Background.Spawn(b.ecs)
	components.Sprite.SetValue(b.background, components.SpriteData{Drawable: drawable})
	components.Object.SetValue(b.background, components.ObjectData{Object: newObject(hb, b.background)})
	components.Outline.SetValue(b.background, components.OutlineData{Stroke: cfg.Colors.MapBounds})
	return b
}

// BuildLandMass places a block of ground with its top-left cell at rowPos, colPos.
func (b *MapBuilder) BuildLandMass(rowPos, colPos, rowCount, colCount int) *MapBuilder {
	if !b.ready() {
		return b
	}

	cw, ch := b.grid.CellSize()
	hb, err := gamemath.NewHitBox(
		float64(colPos)*cw,
		float64(rowPos)*ch,
		cw*float64(colCount),
		ch*float64(rowCount),
	)
	if err != nil {
		b.err = fmt.Errorf("land mass at row %d col %d: %w", rowPos, colPos, err)
		return b
	}

	var drawable components.Drawable
	if b.sprites != nil {
		drawable = b.sprites.LandMass(b.grid, rowPos, colPos, rowCount, colCount)
	}

	land := archetypes.Land.Spawn(b.ecs)
	b.addSolid(land, hb, drawable)
	b.landMasses = append(b.landMasses, land)
	return b
}

// BuildPlatform places a half-cell-high ledge. The outer half of each end
// cell is not solid.
func (b *MapBuilder) BuildPlatform(rowPos, colPos, length int, tile assets.Tile) *MapBuilder {
	if !b.ready() {
		return b
	}
	if tile.Kind() != assets.KindPlatform {
		b.err = fmt.Errorf("%w: %s (%s) is not a platform tile", ErrWrongTile, tile, tile.Kind())
		return b
	}

	cw, ch := b.grid.CellSize()
	hb, err := gamemath.NewHitBox(
		(float64(colPos)+.5)*cw,
		float64(rowPos)*ch,
		cw*float64(length-1),
		ch/2,
	)
	if err != nil {
		b.err = fmt.Errorf("platform at row %d col %d: %w", rowPos, colPos, err)
		return b
	}

	var drawable components.Drawable
	if b.sprites != nil {
		drawable = b.sprites.Platform(b.grid, rowPos, colPos, length, tile)
	}

	platform := archetypes.Platform.Spawn(b.ecs)
	b.addSolid(platform, hb, drawable)
	b.others = append(b.others, platform)
	return b
}

// BuildTree places decoration only; trees have no hitbox.
func (b *MapBuilder) BuildTree(rowPos, colPos int, tile assets.Tile) *MapBuilder {
	if !b.ready() {
		return b
	}
	if tile.Kind() != assets.KindFlora {
		b.err = fmt.Errorf("%w: %s (%s) is not a flora tile", ErrWrongTile, tile, tile.Kind())
		return b
	}

	var drawable components.Drawable
	if b.sprites != nil {
		drawable = b.sprites.Tree(b.grid, rowPos, colPos, tile)
	}

	tree := archetypes.Tree.Spawn(b.ecs)
	components.Sprite.SetValue(tree, components.SpriteData{Drawable: drawable})
	b.others = append(b.others, tree)
	return b
}

// Entities returns land masses first, then every other shape in build order.
func (b *MapBuilder) Entities() []*donburi.Entry {
	entities := make([]*donburi.Entry, 0, len(b.landMasses)+len(b.others))
	entities = append(entities, b.landMasses...)
	return append(entities, b.others...)
}

func (b *MapBuilder) Background() *donburi.Entry {
	return b.background
}

func (b *MapBuilder) Grid() assets.Grid {
	return b.grid
}

func (b *MapBuilder) Err() error {
	return b.err
}

// Populate hands the built background and shapes over to m. Solids end up
// registered in m.Space whichever space they were built against.
func (b *MapBuilder) Populate(m *components.MapData) error {
	if b.err != nil {
		return b.err
	}
	m.Background = b.background
	m.StaticShapes = append(m.StaticShapes[:0], b.Entities()...)
	for _, e := range m.StaticShapes {
		if e.HasComponent(components.Object) {
			moveToSpace(components.Object.Get(e).Object, m.Space)
		}
	}
	return nil
}

func moveToSpace(obj *resolv.Object, space *resolv.Space) {
	if obj == nil || obj.Space == space {
		return
	}
	if obj.Space != nil {
		obj.Space.Remove(obj)
	}
	if space != nil {
		space.Add(obj)
	}
}

func (b *MapBuilder) ready() bool {
	if b.err != nil {
		return false
	}
	if b.grid.Rows == 0 || b.grid.Cols == 0 {
		b.err = ErrNoGrid
		return false
	}
	return true
}

func (b *MapBuilder) addSolid(e *donburi.Entry, hb gamemath.HitBox, drawable components.Drawable) {
	obj := newObject(hb, e)
	obj.AddTags(tags.ResolvSolid)
	if b.space != nil {
		b.space.Add(obj)
	}
	components.Sprite.SetValue(e, components.SpriteData{Drawable: drawable})
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	components.Outline.SetValue(e, components.OutlineData{Stroke: cfg.Colors.StaticBounds})
}

func newObject(hb gamemath.HitBox, e *donburi.Entry) *resolv.Object {
	obj := resolv.NewObject(hb.X, hb.Y, hb.W, hb.H)
	obj.Data = e
	return obj
}
