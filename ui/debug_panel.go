package ui

import (
	"github.com/automoto/sidescroller/components"
	cfg "github.com/automoto/sidescroller/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Runner is the part of the animator the panel controls.
type Runner interface {
	IsRunning() bool
	Toggle()
}

// DebugPanel is a small overlay of toggle buttons for the map's flags.
type DebugPanel struct {
	UI *ebitenui.UI

	m      *components.MapData
	runner Runner

	boundsBtn *widget.Button
	fpsBtn    *widget.Button
	gridBtn   *widget.Button
	runBtn    *widget.Button

	face      text.Face
	titleFace text.Face
}

func NewDebugPanel(m *components.MapData, runner Runner, face, titleFace text.Face) *DebugPanel {
	p := &DebugPanel{
		m:         m,
		runner:    runner,
		face:      face,
		titleFace: titleFace,
	}
	p.buildUI()
	return p
}

func (p *DebugPanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.PanelDark)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	p.boundsBtn = p.newToggleButton(func() { p.m.DrawBounds.Toggle() })
	p.fpsBtn = p.newToggleButton(func() { p.m.DrawFPS.Toggle() })
	p.gridBtn = p.newToggleButton(func() { p.m.DrawGrid.Toggle() })
	p.runBtn = p.newToggleButton(func() {
		if p.runner != nil {
			p.runner.Toggle()
		}
	})

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Debug", &p.titleFace, cfg.White),
	))
	panel.AddChild(p.boundsBtn)
	panel.AddChild(p.fpsBtn)
	panel.AddChild(p.gridBtn)
	panel.AddChild(p.runBtn)
	rootContainer.AddChild(panel)

	p.UI = &ebitenui.UI{Container: rootContainer}
	p.Refresh()
}

func (p *DebugPanel) newToggleButton(onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.PanelButton),
			Hover:   image.NewNineSliceColor(cfg.PanelHover),
			Pressed: image.NewNineSliceColor(cfg.PanelPressed),
		}),
		widget.ButtonOpts.Text("", &p.face, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.White,
			Pressed: cfg.PanelTextGrey,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			p.Refresh()
		}),
	)
}

// Refresh rewrites the button captions from the current state. Flags toggled
// from the keyboard show up on the next call.
func (p *DebugPanel) Refresh() {
	setCaption(p.boundsBtn, ToggleLabel("Bounds", p.m.DrawBounds.Get()))
	setCaption(p.fpsBtn, ToggleLabel("FPS", p.m.DrawFPS.Get()))
	setCaption(p.gridBtn, ToggleLabel("Grid", p.m.DrawGrid.Get()))
	running := p.runner != nil && p.runner.IsRunning()
	setCaption(p.runBtn, RunLabel(running))
}

func (p *DebugPanel) Update() {
	p.Refresh()
	p.UI.Update()
}

func (p *DebugPanel) Draw(screen *ebiten.Image) {
	p.UI.Draw(screen)
}

// setCaption also stores the label for buttons whose text widget has not been
// created yet.
func setCaption(btn *widget.Button, caption string) {
	if btn != nil {
		btn.SetText(caption)
	}
}

// ToggleLabel is the caption of a flag button.
func ToggleLabel(name string, on bool) string {
	if on {
		return name + ": on"
	}
	return name + ": off"
}

// RunLabel names the action the run button performs next.
func RunLabel(running bool) string {
	if running {
		return "Stop"
	}
	return "Start"
}
