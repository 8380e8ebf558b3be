package systems

import (
	"image/color"

	"github.com/automoto/sidescroller/archetypes"
	"github.com/automoto/sidescroller/components"
	cfg "github.com/automoto/sidescroller/config"
	"github.com/automoto/sidescroller/shared/gamemath"
	"github.com/automoto/sidescroller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testWorld is a map of the given size with a background covering it.
type testWorld struct {
	ecs *ecs.ECS
	m   *components.MapData
	log []string
}

func newTestWorld(width, height float64, withSpace bool) *testWorld {
	w := &testWorld{ecs: ecs.NewECS(donburi.NewWorld())}
	w.m = components.NewMapData(1, 1, width, height, 1)
	if withSpace {
		w.m.Space = resolv.NewSpace(int(width), int(height), 16, 16)
	}

	bg := archetypes.Background.Spawn(w.ecs)
	components.Object.SetValue(bg, components.ObjectData{Object: resolv.NewObject(0, 0, width, height)})
	components.Sprite.SetValue(bg, components.SpriteData{Drawable: w.drawable("B")})
	components.Outline.SetValue(bg, components.OutlineData{Stroke: cfg.Colors.MapBounds})
	w.m.Background = bg
	return w
}

func (w *testWorld) addStatic(name string, hb gamemath.HitBox) *donburi.Entry {
	e := archetypes.Land.Spawn(w.ecs)
	obj := resolv.NewObject(hb.X, hb.Y, hb.W, hb.H, tags.ResolvSolid)
	obj.Data = e
	if w.m.Space != nil {
		w.m.Space.Add(obj)
	}
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	components.Sprite.SetValue(e, components.SpriteData{Drawable: w.drawable(name)})
	components.Outline.SetValue(e, components.OutlineData{Stroke: cfg.Colors.StaticBounds})
	w.m.StaticShapes = append(w.m.StaticShapes, e)
	return e
}

func (w *testWorld) addPlayer(name string, hb gamemath.HitBox) *donburi.Entry {
	e := archetypes.Player.Spawn(w.ecs)
	obj := resolv.NewObject(hb.X, hb.Y, hb.W, hb.H, tags.ResolvPlayer)
	obj.Data = e
	if w.m.Space != nil {
		w.m.Space.Add(obj)
	}
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	components.Player.SetValue(e, components.PlayerData{
		PlayerIndex: len(w.m.Players),
		LastX:       hb.X,
		LastY:       hb.Y,
	})
	components.Sprite.SetValue(e, components.SpriteData{Drawable: w.drawable(name)})
	components.Outline.SetValue(e, components.OutlineData{Stroke: cfg.Colors.PlayerBounds})
	w.m.Players = append(w.m.Players, e)
	return e
}

func (w *testWorld) drawable(name string) components.Drawable {
	return &logDrawable{name: name, log: &w.log}
}

// hold presses action for a player until released.
func hold(e *donburi.Entry, action cfg.ActionID) {
	components.PlayerInput.Get(e).CurrentInput[action] = true
}

func position(e *donburi.Entry) (float64, float64) {
	obj := components.Object.Get(e)
	return obj.X, obj.Y
}

type logDrawable struct {
	name string
	log  *[]string
}

func (d *logDrawable) Draw(dst components.Surface) {
	*d.log = append(*d.log, d.name)
	dst.DrawImage(nil, &ebiten.DrawImageOptions{})
}

// recorder is a Surface that remembers what was drawn onto it.
type recorder struct {
	fills []color.Color
	ops   []ebiten.DrawImageOptions
}

func (r *recorder) Fill(clr color.Color) {
	r.fills = append(r.fills, clr)
}

func (r *recorder) DrawImage(_ *ebiten.Image, options *ebiten.DrawImageOptions) {
	r.ops = append(r.ops, *options)
}
