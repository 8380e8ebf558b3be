package factory

import (
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

// CreatePlayer spawns a player at x, y and registers its hitbox in space when
// one is given. Nothing is spawned when the configured hitbox size is invalid.
func CreatePlayer(ecs *ecs.ECS, sprites assets.Sprites, space *resolv.Space, index int, x, y float64) (*donburi.Entry, error) {
	hb, err := gamemath.NewHitBox(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	if err != nil {
		return nil, fmt.Errorf("player %d: %w", index, err)
	}

	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(hb.X, hb.Y, hb.W, hb.H)
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	if space != nil {
		space.Add(obj)
	}
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		PlayerIndex: index,
		LastX:       x,
		LastY:       y,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		PlayerIndex: index,
	})
	components.Outline.SetValue(player, components.OutlineData{
		Stroke: cfg.Colors.PlayerBounds,
	})

	if sprites != nil {
		components.Sprite.SetValue(player, components.SpriteData{
			Drawable: sprites.Player(obj),
		})
	}

	return player, nil
}

// CreatePlayerAtCell spawns a player on the map grid and appends it to the map.
func CreatePlayerAtCell(ecs *ecs.ECS, sprites assets.Sprites, m *components.MapData, row, col int) (*donburi.Entry, error) {
	cw, ch := m.CellSize()
	player, err := CreatePlayer(ecs, sprites, m.Space, len(m.Players), float64(col)*cw, float64(row)*ch)
	if err != nil {
		return nil, err
	}
	m.Players = append(m.Players, player)
	return player, nil
}
