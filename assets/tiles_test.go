package assets

import "testing"

func TestTileKinds(t *testing.T) {
	tests := []struct {
		tile Tile
		want TileKind
	}{
		{BackgroundMorning, KindBackground},
		{BackgroundMorningCloud, KindBackground},
		{LandGrass, KindLand},
		{PlatformStone, KindPlatform},
		{FloraTree, KindFlora},
		{TileNone, KindNone},
		{Tile(999), KindNone},
	}
	for _, tt := range tests {
		if got := tt.tile.Kind(); got != tt.want {
			t.Errorf("%v.Kind() = %v, want %v", tt.tile, got, tt.want)
		}
	}
}

func TestTileFootprint(t *testing.T) {
	if cols, rows := FloraTree.Footprint(); cols != 3 || rows != 7 {
		t.Errorf("tree footprint = %dx%d", cols, rows)
	}
	if cols, rows := Tile(999).Footprint(); cols != 1 || rows != 1 {
		t.Errorf("unknown tile footprint = %dx%d", cols, rows)
	}
}

func TestGridCellSize(t *testing.T) {
	g := Grid{Rows: 4, Cols: 8, CellWidth: 16, CellHeight: 8, Scale: 2}
	w, h := g.CellSize()
	if w != 32 || h != 16 {
		t.Errorf("CellSize = %v, %v", w, h)
	}
	x, y := g.CellOrigin(3, 2)
	if x != 64 || y != 48 {
		t.Errorf("CellOrigin(3, 2) = %v, %v", x, y)
	}
}
