//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"magrathea/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional diagnostic visuals on top of the planet view.
type Overlay struct {
	scale     int
	showElev  bool
	showLight bool

	elevationImg   *ebiten.Image
	elevationBuf   []byte
	elevationStamp int

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale, elevationStamp: -1}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers: 1 elevation map, 2 light direction.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showElev = !o.showElev
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showLight = !o.showLight
	}
}

// Draw renders the enabled layers over a side × side view.
func (o *Overlay) Draw(screen *ebiten.Image, layer Layer, side int) {
	if layer.Pixels <= 0 || side <= 0 {
		return
	}
	if o.showElev {
		o.drawElevation(screen, layer, side)
	}
	if o.showLight && layer.Lit {
		o.drawLightArrow(screen, layer.Origin, side)
	}
}

func (o *Overlay) drawLightArrow(screen *ebiten.Image, origin core.Point, side int) {
	const headAngle = math.Pi / 6

	// the light sits at the space origin, opposite the body's orbital position
	angle := origin.Angle() + math.Pi
	c := float64(side) / 2
	dir := core.Pt(1, 0).Rotate(angle)
	tail := core.Pt(c, c).Add(dir.Scale(c * 0.2))
	tip := core.Pt(c, c).Add(dir.Scale(c * 0.95))
	headLength := c * 0.12
	thickness := math.Max(1, float64(o.scale)*0.75)
	col := color.RGBA{R: 255, G: 220, B: 120, A: 220}

	o.drawLine(screen, tail.X, tail.Y, tip.X, tip.Y, thickness, col)
	left := tip.Sub(core.Pt(headLength, 0).Rotate(angle + headAngle))
	right := tip.Sub(core.Pt(headLength, 0).Rotate(angle - headAngle))
	o.drawLine(screen, tip.X, tip.Y, left.X, left.Y, thickness, col)
	o.drawLine(screen, tip.X, tip.Y, right.X, right.Y, thickness, col)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawElevation(screen *ebiten.Image, layer Layer, side int) {
	n := layer.Pixels
	total := n * n
	if len(layer.Elevation) != total {
		return
	}
	if o.elevationImg == nil || o.elevationImg.Bounds().Dx() != n {
		o.elevationImg = ebiten.NewImage(n, n)
		o.elevationBuf = make([]byte, 4*total)
		o.elevationStamp = -1
	}
	if o.elevationStamp != layer.Stamp {
		FillElevationRGBA(o.elevationBuf, layer.Elevation, n)
		o.elevationImg.WritePixels(o.elevationBuf)
		o.elevationStamp = layer.Stamp
	}
	op := &ebiten.DrawImageOptions{}
	s := float64(side) / float64(n)
	op.GeoM.Scale(s, s)
	screen.DrawImage(o.elevationImg, op)
}
