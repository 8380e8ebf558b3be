package scenes

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/automoto/sidescroller/assets"
	"github.com/automoto/sidescroller/components"
	cfg "github.com/automoto/sidescroller/config"
	"github.com/automoto/sidescroller/fonts"
	"github.com/automoto/sidescroller/systems"
	"github.com/automoto/sidescroller/systems/factory"
	"github.com/automoto/sidescroller/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrSceneNotCreated = errors.New("scene has not been created")

// MapScene is the playable level: one map, one player and the animator that runs them.
type MapScene struct {
	ecs      *ecs.ECS
	animator *systems.Animator
	sprites  assets.Sprites

	rows, cols            int
	cellWidth, cellHeight float64
	scale                 float64

	m        *components.MapData
	camera   *components.CameraData
	settings *components.SettingsData
	panel    *ui.DebugPanel

	rng   *rand.Rand
	clock func() time.Time

	frameErr error
}

func NewMapScene() *MapScene {
	seed := uint64(time.Now().UnixNano())
	return &MapScene{
		sprites:    assets.NewTileSprites(),
		rows:       cfg.Map.Rows,
		cols:       cfg.Map.Cols,
		cellWidth:  cfg.Map.CellWidth,
		cellHeight: cfg.Map.CellHeight,
		scale:      cfg.Map.Scale,
		rng:        rand.New(rand.NewPCG(seed, seed>>1)),
		clock:      time.Now,
	}
}

// SetRowAndCol sets the grid the level is laid out on. It must be called
// before CreateScene to have any effect.
func (ms *MapScene) SetRowAndCol(rows, cols int, cellWidth, cellHeight, scale float64) *MapScene {
	ms.rows, ms.cols = rows, cols
	ms.cellWidth, ms.cellHeight = cellWidth, cellHeight
	ms.scale = scale
	return ms
}

func (ms *MapScene) SetAnimator(a *systems.Animator) *MapScene {
	ms.animator = a
	ms.attachAnimator()
	return ms
}

func (ms *MapScene) attachAnimator() {
	if ms.animator == nil || ms.m == nil {
		return
	}
	ms.animator.SetMap(ms.m)
	ms.animator.SetCamera(ms.camera)
	ms.animator.SetFace(fonts.Small.Face())
}

// SetSprites replaces the sprite source. Nil builds the level without any drawables.
func (ms *MapScene) SetSprites(s assets.Sprites) *MapScene {
	ms.sprites = s
	return ms
}

// SetSeed makes the background layout reproducible.
func (ms *MapScene) SetSeed(seed uint64) *MapScene {
	ms.rng = rand.New(rand.NewPCG(seed, seed>>1))
	return ms
}

// SetClock replaces the time source handed to the animator.
func (ms *MapScene) SetClock(clock func() time.Time) *MapScene {
	ms.clock = clock
	return ms
}

// CreateScene builds the world: map, collision space, default level, camera and player.
func (ms *MapScene) CreateScene() error {
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	world := ecs.NewECS(donburi.NewWorld())

	m := factory.CreateMap(world, ms.rows, ms.cols, ms.cellWidth, ms.cellHeight, ms.scale)
	factory.CreateMapSpace(world, m)

	builder := factory.NewMapBuilder(world, ms.sprites).
		SetGrid(ms.rows, ms.cols, ms.cellWidth, ms.cellHeight).
		SetGridScale(ms.scale).
		SetSpace(m.Space).
		BuildBackground(ms.backgroundTile).
		BuildLandMass(9, 5, 5, 20).
		BuildPlatform(6, 15, 4, assets.PlatformStone).
		BuildPlatform(4, 22, 4, assets.PlatformWood).
		BuildTree(2, 8, assets.FloraTree).
		BuildTree(8, 14, assets.FloraBush)
	if err := builder.Populate(m); err != nil {
		return fmt.Errorf("build level: %w", err)
	}

	camera := factory.CreateCamera(world)
	if _, err := factory.CreatePlayerAtCell(world, ms.sprites, m, cfg.Player.SpawnRow, cfg.Player.SpawnCol); err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}
	factory.CreateInput(world)
	settings := factory.CreateSettings(world)

	saved, _ := systems.LoadSettings()
	systems.ApplySavedSettings(m, settings, saved)
	systems.BindSettings(m, settings)

	world.AddSystem(systems.UpdateInput)
	world.AddSystem(systems.NewUpdateSettings(ms))
	world.AddSystem(ms.updateAnimator)
	world.AddSystem(systems.UpdateCamera)
	world.AddSystem(ms.updatePanel)

	world.AddRenderer(cfg.Default, ms.drawAnimator)
	world.AddRenderer(cfg.Default, ms.drawPanel)

	ms.ecs = world
	ms.m = m
	ms.camera = camera
	ms.settings = settings
	ms.attachAnimator()
	return nil
}

// backgroundTile lays out a morning sky: a darker top row and scattered
// clouds in the rows just below it.
func (ms *MapScene) backgroundTile(row, col int) assets.Tile {
	if row == 0 {
		return assets.BackgroundMorningTop
	}
	if row < cfg.Map.CloudRows && ms.rng.IntN(cfg.Map.CloudRoll) > cfg.Map.CloudThreshold {
		return assets.BackgroundMorningCloud
	}
	return assets.BackgroundMorning
}

func (ms *MapScene) Start() {
	if ms.animator != nil {
		ms.animator.Start()
	}
}

func (ms *MapScene) Stop() {
	if ms.animator != nil {
		ms.animator.Stop()
	}
}

// Toggle starts a stopped animator and stops a running one.
func (ms *MapScene) Toggle() {
	if ms.animator != nil {
		ms.animator.Toggle()
	}
}

// IsRunning reports whether the animator is ticking.
func (ms *MapScene) IsRunning() bool {
	return ms.animator != nil && ms.animator.IsRunning()
}

func (ms *MapScene) Update() error {
	if ms.ecs == nil {
		return ErrSceneNotCreated
	}
	ms.frameErr = nil
	ms.ecs.Update()
	return ms.frameErr
}

func (ms *MapScene) Draw(screen *ebiten.Image) {
	if ms.ecs == nil {
		screen.Fill(cfg.Colors.Clear)
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MapScene) Map() *components.MapData {
	return ms.m
}

func (ms *MapScene) Background() *donburi.Entry {
	if ms.m == nil {
		return nil
	}
	return ms.m.Background
}

func (ms *MapScene) updateAnimator(_ *ecs.ECS) {
	if ms.animator == nil || ms.frameErr != nil {
		return
	}
	ms.frameErr = ms.animator.Handle(ms.clock())
}

func (ms *MapScene) drawAnimator(_ *ecs.ECS, screen *ebiten.Image) {
	if ms.animator == nil {
		screen.Fill(cfg.Colors.Clear)
		return
	}
	ms.animator.Draw(screen)
}

// The panel is built on first show so scenes that never open it create no widgets.
func (ms *MapScene) updatePanel(_ *ecs.ECS) {
	if ms.settings == nil || !ms.settings.ShowPanel.Get() {
		return
	}
	if ms.panel == nil {
		ms.panel = ui.NewDebugPanel(ms.m, ms, fonts.Regular.Face(), fonts.Title.Face())
	}
	ms.panel.Update()
}

func (ms *MapScene) drawPanel(_ *ecs.ECS, screen *ebiten.Image) {
	if ms.panel == nil || !ms.settings.ShowPanel.Get() {
		return
	}
	ms.panel.Draw(screen)
}
