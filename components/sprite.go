package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Surface is what drawables paint onto. *ebiten.Image satisfies it.
type Surface interface {
	Fill(clr color.Color)
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

// Drawable renders itself onto a surface.
type Drawable interface {
	Draw(dst Surface)
}

type SpriteData struct {
	Drawable Drawable
}

var Sprite = donburi.NewComponentType[SpriteData]()
