package main

import (
	"image"
	"log"

	"github.com/automoto/sidescroller/config"
	"github.com/automoto/sidescroller/scenes"
	"github.com/automoto/sidescroller/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() (*Game, error) {
	scene := scenes.NewMapScene().
		SetRowAndCol(config.Map.Rows, config.Map.Cols, config.Map.CellWidth, config.Map.CellHeight, config.Map.Scale).
		SetAnimator(systems.NewAnimator())
	if err := scene.CreateScene(); err != nil {
		return nil, err
	}
	if !config.Debug.StartIdle {
		scene.Start()
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}, nil
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence so saved overlay preferences are picked up by the scene
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game, err := NewGame()
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
