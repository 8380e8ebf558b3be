package assets

import "image/color"

// TileKind groups tiles by the builder call that accepts them.
type TileKind int

const (
	KindNone TileKind = iota
	KindBackground
	KindLand
	KindPlatform
	KindFlora
)

func (k TileKind) String() string {
	switch k {
	case KindBackground:
		return "background"
	case KindLand:
		return "land"
	case KindPlatform:
		return "platform"
	case KindFlora:
		return "flora"
	}
	return "none"
}

// Tile identifies one procedurally painted tile.
type Tile int

const (
	TileNone Tile = iota

	BackgroundMorningTop
	BackgroundMorning
	BackgroundMorningCloud

	LandGrass
	LandDirt

	PlatformStone
	PlatformWood

	FloraTree
	FloraBush
)

type tileInfo struct {
	name   string
	kind   TileKind
	base   color.RGBA
	accent color.RGBA

	// Footprint in grid cells. Most tiles cover a single cell.
	cellsW, cellsH int
}

var tileInfos = map[Tile]tileInfo{
	BackgroundMorningTop:   {name: "morning_top", kind: KindBackground, base: color.RGBA{96, 156, 220, 255}, accent: color.RGBA{120, 176, 232, 255}, cellsW: 1, cellsH: 1},
	BackgroundMorning:      {name: "morning", kind: KindBackground, base: color.RGBA{150, 200, 240, 255}, accent: color.RGBA{160, 208, 244, 255}, cellsW: 1, cellsH: 1},
	BackgroundMorningCloud: {name: "morning_cloud", kind: KindBackground, base: color.RGBA{150, 200, 240, 255}, accent: color.RGBA{250, 250, 250, 255}, cellsW: 1, cellsH: 1},

	LandGrass: {name: "grass", kind: KindLand, base: color.RGBA{120, 82, 48, 255}, accent: color.RGBA{76, 168, 60, 255}, cellsW: 1, cellsH: 1},
	LandDirt:  {name: "dirt", kind: KindLand, base: color.RGBA{120, 82, 48, 255}, accent: color.RGBA{98, 66, 38, 255}, cellsW: 1, cellsH: 1},

	PlatformStone: {name: "stone", kind: KindPlatform, base: color.RGBA{130, 130, 140, 255}, accent: color.RGBA{90, 90, 100, 255}, cellsW: 1, cellsH: 1},
	PlatformWood:  {name: "wood", kind: KindPlatform, base: color.RGBA{168, 116, 64, 255}, accent: color.RGBA{120, 80, 40, 255}, cellsW: 1, cellsH: 1},

	FloraTree: {name: "tree", kind: KindFlora, base: color.RGBA{104, 70, 40, 255}, accent: color.RGBA{48, 140, 56, 255}, cellsW: 3, cellsH: 7},
	FloraBush: {name: "bush", kind: KindFlora, base: color.RGBA{40, 120, 48, 255}, accent: color.RGBA{64, 156, 72, 255}, cellsW: 2, cellsH: 1},
}

func (t Tile) info() tileInfo {
	if info, ok := tileInfos[t]; ok {
		return info
	}
	return tileInfo{name: "none", kind: KindNone, cellsW: 1, cellsH: 1}
}

// Kind returns the family the tile belongs to.
func (t Tile) Kind() TileKind {
	return t.info().kind
}

// Footprint returns how many grid cells the tile covers.
func (t Tile) Footprint() (cols, rows int) {
	info := t.info()
	return info.cellsW, info.cellsH
}

func (t Tile) String() string {
	return t.info().name
}
