package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the scene uses.
const Default ecs.LayerID = 0

type Config struct {
	Width  int
	Height int
	Title  string
}

// MapConfig describes the tile grid the default level is laid out on.
type MapConfig struct {
	Rows       int
	Cols       int
	CellWidth  float64 // unscaled cell width in pixels
	CellHeight float64 // unscaled cell height in pixels
	Scale      float64 // multiplier applied to every cell

	// Probability (out of CloudRoll) that an upper sky cell shows a cloud.
	CloudRoll      int
	CloudThreshold int
	CloudRows      int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MaxSpeed     float64
	Acceleration float64
	Friction     float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64

	// Spawn cell (row/col of the grid, before scaling)
	SpawnRow int
	SpawnCol int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	DeadZoneX     float64 // Half-width of the region the player may move in before the camera scrolls
	ScrollSeconds float32 // Duration of one eased scroll
}

// ColorConfig groups the colors used by the renderer and debug overlays.
type ColorConfig struct {
	Clear          color.RGBA
	MapBounds      color.RGBA
	PlayerBounds   color.RGBA
	StaticBounds   color.RGBA
	CollidedBounds color.RGBA
	Grid           color.RGBA
	FPSText        color.RGBA
	FPSBackground  color.RGBA
}

// DebugConfig holds the initial state of the debug overlays.
type DebugConfig struct {
	DrawBounds bool
	DrawFPS    bool
	DrawGrid   bool
	ShowPanel  bool
	StartIdle  bool // Leave the animator stopped until the player presses start
}

// Global configuration instances
var C *Config
var Map MapConfig
var Player PlayerConfig
var Camera CameraConfig
var Colors ColorConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White         = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black         = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red           = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green         = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow        = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	AntiqueWhite  = color.RGBA{R: 250, G: 235, B: 215, A: 255}
	BlueViolet    = color.RGBA{R: 138, G: 43, B: 226, A: 255}
	Grey          = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	GridLine      = color.RGBA{R: 0, G: 0, B: 0, A: 60}
	BlackOverlay  = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	PanelDark     = color.RGBA{R: 20, G: 20, B: 30, A: 220}
	PanelButton   = color.RGBA{R: 60, G: 60, B: 80, A: 255}
	PanelHover    = color.RGBA{R: 80, G: 80, B: 100, A: 255}
	PanelPressed  = color.RGBA{R: 40, G: 40, B: 60, A: 255}
	PanelTextGrey = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 512,
		Title:  "Sidescroller",
	}

	Map = MapConfig{
		Rows:       16,
		Cols:       32,
		CellWidth:  16,
		CellHeight: 16,
		Scale:      2,

		CloudRoll:      10,
		CloudThreshold: 7,
		CloudRows:      4,
	}

	Player = PlayerConfig{
		MaxSpeed:     4,
		Acceleration: 1,
		Friction:     0.5,

		CollisionWidth:  24,
		CollisionHeight: 40,

		SpawnRow: 7,
		SpawnCol: 6,
	}

	Camera = CameraConfig{
		DeadZoneX:     96,
		ScrollSeconds: 0.35,
	}

	Colors = ColorConfig{
		Clear:          AntiqueWhite,
		MapBounds:      Green,
		PlayerBounds:   Red,
		StaticBounds:   Grey,
		CollidedBounds: BlueViolet,
		Grid:           GridLine,
		FPSText:        White,
		FPSBackground:  BlackOverlay,
	}

	Debug = DebugConfig{
		DrawBounds: false,
		DrawFPS:    false,
		DrawGrid:   false,
		ShowPanel:  false,
		StartIdle:  false,
	}
}
