package systems

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/sidescroller/components"
	cfg "github.com/automoto/sidescroller/config"
	"github.com/automoto/sidescroller/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
)

// ErrNoHitBox is returned when a player on the map has no hitbox to move.
var ErrNoHitBox = errors.New("player has no hitbox")

type AnimatorState int

const (
	Idle AnimatorState = iota
	Running
)

func (s AnimatorState) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Animator drives one map: every running tick it moves the players, pulls
// back the ones that left the map or walked into solid ground, and it draws
// the scene from back to front.
type Animator struct {
	state  AnimatorState
	m      *components.MapData
	camera *components.CameraData

	collisions  *Collisions
	corrections []*donburi.Entry

	fps     fpsCounter
	fpsFace text.Face
	overlay *overlay

	// Stroke for hitbox outlines. Swappable so rendering can be observed.
	outline func(dst components.Surface, hb gamemath.HitBox, clr color.Color)
}

func NewAnimator() *Animator {
	return &Animator{
		collisions: NewCollisions(),
		overlay:    &overlay{},
		outline:    strokeRect,
	}
}

func (a *Animator) SetMap(m *components.MapData) {
	a.m = m
}

func (a *Animator) Map() *components.MapData {
	return a.m
}

// SetCamera makes world drawing follow camera. Nil draws untranslated.
func (a *Animator) SetCamera(camera *components.CameraData) {
	a.camera = camera
}

// SetFace sets the face used for the FPS readout.
func (a *Animator) SetFace(face text.Face) {
	a.fpsFace = face
}

func (a *Animator) Start() {
	if a.state == Running {
		return
	}
	a.state = Running
	a.fps.reset()
}

func (a *Animator) Stop() {
	a.state = Idle
}

// Toggle flips between running and idle.
func (a *Animator) Toggle() {
	if a.IsRunning() {
		a.Stop()
	} else {
		a.Start()
	}
}

func (a *Animator) State() AnimatorState {
	return a.state
}

func (a *Animator) IsRunning() bool {
	return a.state == Running
}

// FPS returns the frame rate measured over the last full second.
func (a *Animator) FPS() float64 {
	return a.fps.value
}

// Handle runs one frame. It does nothing while idle.
func (a *Animator) Handle(now time.Time) error {
	if a.state != Running {
		return nil
	}
	a.fps.tick(now)

	m := a.m
	if m == nil {
		return nil
	}

	for _, p := range m.Players {
		if !live(p) {
			continue
		}
		if !p.HasComponent(components.Object) || components.Object.Get(p).Object == nil {
			return fmt.Errorf("%w: entity %v", ErrNoHitBox, p.Entity())
		}
	}

	for _, p := range m.Players {
		if live(p) {
			UpdatePlayer(p)
		}
	}
	for _, s := range m.StaticShapes {
		refreshObject(s)
	}

	// Decide every correction against this frame's positions before moving anyone.
	a.corrections = a.corrections[:0]
	for _, p := range m.Players {
		if !live(p) {
			continue
		}
		hb := components.Object.Get(p).HitBox()
		if !m.InMap(hb) || a.collisions.Overlapping(m, hb) {
			a.corrections = append(a.corrections, p)
		}
	}

	highlight := m.DrawBounds.Get()
	if highlight {
		for _, p := range m.Players {
			setStroke(p, cfg.Colors.PlayerBounds)
		}
	}
	for _, p := range a.corrections {
		StepBack(p)
		if highlight {
			setStroke(p, cfg.Colors.CollidedBounds)
		}
	}
	return nil
}

// Draw clears dst and paints the background, static shapes and players in
// that order, followed by whichever overlays are switched on.
func (a *Animator) Draw(dst components.Surface) {
	dst.Fill(cfg.Colors.Clear)

	m := a.m
	if m == nil {
		return
	}

	world := dst
	if dx, dy := a.camera.Offset(); dx != 0 || dy != 0 {
		world = &translated{Surface: dst, dx: dx, dy: dy}
	}

	bounds := m.DrawBounds.Get()
	a.drawEntry(world, m.Background, bounds)
	for _, s := range m.StaticShapes {
		a.drawEntry(world, s, bounds)
	}
	for _, p := range m.Players {
		a.drawEntry(world, p, bounds)
	}

	if m.DrawGrid.Get() {
		drawGrid(world, m)
	}
	if m.DrawFPS.Get() {
		a.drawFPS(dst)
	}
}

func (a *Animator) drawEntry(dst components.Surface, e *donburi.Entry, bounds bool) {
	if !live(e) {
		return
	}
	if e.HasComponent(components.Sprite) {
		if sprite := components.Sprite.Get(e); sprite.Drawable != nil {
			sprite.Drawable.Draw(dst)
		}
	}
	if !bounds || !e.HasComponent(components.Outline) || !e.HasComponent(components.Object) {
		return
	}
	if obj := components.Object.Get(e); obj.Object != nil {
		a.outline(dst, obj.HitBox(), components.Outline.Get(e).Stroke)
	}
}

func (a *Animator) drawFPS(dst components.Surface) {
	face := a.fpsFace
	if face == nil {
		return
	}
	a.overlay.drawFPS(dst, face, a.fps.value)
}

func live(e *donburi.Entry) bool {
	return e != nil && e.Valid()
}

func setStroke(e *donburi.Entry, c color.RGBA) {
	if live(e) && e.HasComponent(components.Outline) {
		components.Outline.Get(e).Stroke = c
	}
}

// fpsCounter averages frames over windows of at least one second.
type fpsCounter struct {
	windowStart time.Time
	frames      int
	value       float64
}

func (c *fpsCounter) tick(now time.Time) {
	if c.windowStart.IsZero() {
		c.windowStart = now
		return
	}
	c.frames++
	if elapsed := now.Sub(c.windowStart); elapsed >= time.Second {
		c.value = float64(c.frames) / elapsed.Seconds()
		c.frames = 0
		c.windowStart = now
	}
}

func (c *fpsCounter) reset() {
	c.windowStart = time.Time{}
	c.frames = 0
}
