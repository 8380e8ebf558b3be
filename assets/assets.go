package assets

import (
	"fmt"
	"image/color"

	"github.com/automoto/sidescroller/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
)

// Grid is the cell layout sprites are positioned on.
type Grid struct {
	Rows, Cols            int
	CellWidth, CellHeight float64
	Scale                 float64
}

// CellSize returns the scaled size of a cell.
func (g Grid) CellSize() (float64, float64) {
	return g.CellWidth * g.Scale, g.CellHeight * g.Scale
}

// CellOrigin returns the world position of the top-left corner of a cell.
func (g Grid) CellOrigin(row, col int) (float64, float64) {
	w, h := g.CellSize()
	return float64(col) * w, float64(row) * h
}

// Sprites creates the drawables the map builder composes into entities.
type Sprites interface {
	Background(grid Grid, tile func(row, col int) Tile) components.Drawable
	LandMass(grid Grid, rowPos, colPos, rowCount, colCount int) components.Drawable
	Platform(grid Grid, rowPos, colPos, length int, tile Tile) components.Drawable
	Tree(grid Grid, rowPos, colPos int, tile Tile) components.Drawable
	Player(obj *resolv.Object) components.Drawable
}

// Snapshot is a pre-rendered image drawn at a fixed world position.
type Snapshot struct {
	Image *ebiten.Image
	X, Y  float64
	op    ebiten.DrawImageOptions
}

func (s *Snapshot) Draw(dst components.Surface) {
	if s.Image == nil {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(s.X, s.Y)
	dst.DrawImage(s.Image, &s.op)
}

// ObjectSprite is drawn wherever its object currently is.
type ObjectSprite struct {
	Image  *ebiten.Image
	Object *resolv.Object
	op     ebiten.DrawImageOptions
}

func (s *ObjectSprite) Draw(dst components.Surface) {
	if s.Image == nil || s.Object == nil {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(s.Object.X, s.Object.Y)
	dst.DrawImage(s.Image, &s.op)
}

// TileSprites paints every tile procedurally and caches the results.
type TileSprites struct {
	cache map[string]*ebiten.Image
}

func NewTileSprites() *TileSprites {
	return &TileSprites{
		cache: make(map[string]*ebiten.Image),
	}
}

// TileImage returns the cached image for a tile at the given cell size.
func (s *TileSprites) TileImage(tile Tile, cellW, cellH float64) *ebiten.Image {
	cols, rows := tile.Footprint()
	w, h := int(cellW)*cols, int(cellH)*rows
	key := fmt.Sprintf("%s/%dx%d", tile, w, h)
	if img, ok := s.cache[key]; ok {
		return img
	}

	img := ebiten.NewImage(max(w, 1), max(h, 1))
	paintTile(img, tile)
	s.cache[key] = img
	return img
}

func (s *TileSprites) Background(grid Grid, tile func(row, col int) Tile) components.Drawable {
	cw, ch := grid.CellSize()
	img := ebiten.NewImage(max(int(cw)*grid.Cols, 1), max(int(ch)*grid.Rows, 1))

	op := &ebiten.DrawImageOptions{}
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			op.GeoM.Reset()
			op.GeoM.Translate(float64(col)*cw, float64(row)*ch)
			img.DrawImage(s.TileImage(tile(row, col), cw, ch), op)
		}
	}
	return &Snapshot{Image: img}
}

func (s *TileSprites) LandMass(grid Grid, rowPos, colPos, rowCount, colCount int) components.Drawable {
	cw, ch := grid.CellSize()
	img := ebiten.NewImage(max(int(cw)*colCount, 1), max(int(ch)*rowCount, 1))

	op := &ebiten.DrawImageOptions{}
	for row := 0; row < rowCount; row++ {
		tile := LandDirt
		if row == 0 {
			tile = LandGrass
		}
		for col := 0; col < colCount; col++ {
			op.GeoM.Reset()
			op.GeoM.Translate(float64(col)*cw, float64(row)*ch)
			img.DrawImage(s.TileImage(tile, cw, ch), op)
		}
	}

	x, y := grid.CellOrigin(rowPos, colPos)
	return &Snapshot{Image: img, X: x, Y: y}
}

// Platform draws half-width caps at both ends so the solid part starts half a
// cell in, matching the platform's hitbox.
func (s *TileSprites) Platform(grid Grid, rowPos, colPos, length int, tile Tile) components.Drawable {
	cw, ch := grid.CellSize()
	img := ebiten.NewImage(max(int(cw)*length, 1), max(int(ch/2), 1))
	tileImg := s.TileImage(tile, cw, ch/2)

	op := &ebiten.DrawImageOptions{}
	for col := 0; col < length; col++ {
		op.GeoM.Reset()
		if col == 0 || col == length-1 {
			op.GeoM.Scale(0.5, 1)
			if col == 0 {
				op.GeoM.Translate(cw/2, 0)
			} else {
				op.GeoM.Translate(float64(col)*cw, 0)
			}
		} else {
			op.GeoM.Translate(float64(col)*cw, 0)
		}
		img.DrawImage(tileImg, op)
	}

	x, y := grid.CellOrigin(rowPos, colPos)
	return &Snapshot{Image: img, X: x, Y: y}
}

func (s *TileSprites) Tree(grid Grid, rowPos, colPos int, tile Tile) components.Drawable {
	cw, ch := grid.CellSize()
	x, y := grid.CellOrigin(rowPos, colPos)
	return &Snapshot{Image: s.TileImage(tile, cw, ch), X: x, Y: y}
}

func (s *TileSprites) Player(obj *resolv.Object) components.Drawable {
	key := fmt.Sprintf("player/%dx%d", int(obj.W), int(obj.H))
	img, ok := s.cache[key]
	if !ok {
		img = ebiten.NewImage(max(int(obj.W), 1), max(int(obj.H), 1))
		paintPlayer(img)
		s.cache[key] = img
	}
	return &ObjectSprite{Image: img, Object: obj}
}

func paintTile(img *ebiten.Image, tile Tile) {
	info := tile.info()
	b := img.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	switch tile {
	case BackgroundMorningTop:
		img.Fill(info.base)
		vector.FillRect(img, 0, h*0.6, w, h*0.4, info.accent, false)
	case BackgroundMorningCloud:
		img.Fill(info.base)
		vector.FillCircle(img, w*0.35, h*0.55, h*0.25, info.accent, true)
		vector.FillCircle(img, w*0.6, h*0.45, h*0.3, info.accent, true)
		vector.FillRect(img, w*0.2, h*0.55, w*0.6, h*0.2, info.accent, false)
	case LandGrass:
		img.Fill(info.base)
		vector.FillRect(img, 0, 0, w, h*0.3, info.accent, false)
	case LandDirt:
		img.Fill(info.base)
		vector.FillRect(img, w*0.2, h*0.3, w*0.1, h*0.1, info.accent, false)
		vector.FillRect(img, w*0.7, h*0.7, w*0.1, h*0.1, info.accent, false)
	case PlatformStone, PlatformWood:
		img.Fill(info.base)
		vector.FillRect(img, 0, h-2, w, 2, info.accent, false)
		vector.FillRect(img, w-1, 0, 1, h, info.accent, false)
	case FloraTree:
		trunkW := w / 6
		vector.FillRect(img, (w-trunkW)/2, h*0.45, trunkW, h*0.55, info.base, false)
		vector.FillCircle(img, w/2, h*0.3, w*0.45, info.accent, true)
		vector.FillCircle(img, w*0.3, h*0.42, w*0.25, info.accent, true)
		vector.FillCircle(img, w*0.7, h*0.42, w*0.25, info.accent, true)
	case FloraBush:
		vector.FillCircle(img, w*0.3, h*0.65, h*0.35, info.base, true)
		vector.FillCircle(img, w*0.65, h*0.6, h*0.4, info.accent, true)
	default:
		img.Fill(info.base)
	}
}

var (
	playerBody = color.RGBA{R: 40, G: 70, B: 160, A: 255}
	playerFace = color.RGBA{R: 240, G: 200, B: 160, A: 255}
)

func paintPlayer(img *ebiten.Image) {
	b := img.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	img.Fill(playerBody)
	vector.FillRect(img, w*0.15, h*0.08, w*0.7, h*0.28, playerFace, false)
	vector.FillRect(img, w*0.55, h*0.16, w*0.12, h*0.06, color.Black, false)
}
