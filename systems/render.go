package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/sidescroller/components"
	cfg "github.com/automoto/sidescroller/config"
	"github.com/automoto/sidescroller/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
	pixel  *ebiten.Image
)

// whitePixel is scaled and tinted to draw lines and rectangles on any Surface.
func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

func fillRect(dst components.Surface, x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(w, h)
	drawOp.GeoM.Translate(x, y)
	drawOp.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(whitePixel(), drawOp)
}

// strokeRect draws a one pixel outline just inside hb.
func strokeRect(dst components.Surface, hb gamemath.HitBox, clr color.Color) {
	if hb.IsZero() {
		return
	}
	fillRect(dst, hb.X, hb.Y, hb.W, 1, clr)          // Top
	fillRect(dst, hb.X, hb.Bottom()-1, hb.W, 1, clr) // Bottom
	fillRect(dst, hb.X, hb.Y, 1, hb.H, clr)          // Left
	fillRect(dst, hb.Right()-1, hb.Y, 1, hb.H, clr)  // Right
}

// drawGrid outlines every map cell.
func drawGrid(dst components.Surface, m *components.MapData) {
	cw, ch := m.CellSize()
	w, h := m.Width(), m.Height()
	for col := 0; col <= m.Cols; col++ {
		x := math.Min(float64(col)*cw, w-1)
		fillRect(dst, x, 0, 1, h, cfg.Colors.Grid)
	}
	for row := 0; row <= m.Rows; row++ {
		y := math.Min(float64(row)*ch, h-1)
		fillRect(dst, 0, y, w, 1, cfg.Colors.Grid)
	}
}

// translated shifts everything drawn through it, used for the camera.
type translated struct {
	components.Surface
	dx, dy float64
}

func (t *translated) DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions) {
	op := *options
	op.GeoM.Translate(t.dx, t.dy)
	t.Surface.DrawImage(img, &op)
}

// overlay renders screen-space text into an offscreen image that is created
// the first time it is needed.
type overlay struct {
	img  *ebiten.Image
	text string
	op   ebiten.DrawImageOptions
}

const (
	fpsWidth   = 84
	fpsHeight  = 20
	fpsPadding = 4
)

func (o *overlay) drawFPS(dst components.Surface, face text.Face, fps float64) {
	if o.img == nil {
		o.img = ebiten.NewImage(fpsWidth, fpsHeight)
	}

	label := fmt.Sprintf("FPS: %.1f", fps)
	if label != o.text {
		o.text = label
		o.img.Fill(cfg.Colors.FPSBackground)

		textOp := &text.DrawOptions{}
		textOp.GeoM.Translate(fpsPadding, fpsPadding)
		textOp.ColorScale.ScaleWithColor(cfg.Colors.FPSText)
		text.Draw(o.img, label, face, textOp)
	}

	o.op.GeoM.Reset()
	o.op.GeoM.Translate(fpsPadding, fpsPadding)
	dst.DrawImage(o.img, &o.op)
}
