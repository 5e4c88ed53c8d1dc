//go:build ebiten

package app

import (
	"log"
	"time"

	"magrathea/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an editor session to the ebiten.Game interface.
type Game struct {
	session Session
	hud     *ui.HUD
	overlay *ui.Overlay

	view      *ebiten.Image
	viewGen   int
	scale     int
	viewSize  int
	lastError string
}

// HUDWidth is the width of the parameter panel in screen pixels.
const HUDWidth = 320

// New constructs a Game for the provided session.
func New(s Session, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		session:  s,
		hud:      ui.NewHUD(s, HUDWidth),
		overlay:  ui.NewOverlay(scale),
		scale:    scale,
		viewSize: s.Resolution(),
		viewGen:  -1,
	}
}

// WindowSize reports the initial window dimensions.
func (g *Game) WindowSize() (int, int) {
	return g.viewSize*g.scale + HUDWidth, g.viewSize * g.scale
}

// Update handles per-frame input and runs debounced regeneration.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.Send(NewSeed{}, now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Send(Regenerate{}, now)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		side := g.viewSize * g.scale
		if mx >= 0 && my >= 0 && mx < side && my < side {
			g.session.Send(SetOrigin{Angle: AngleAt(mx, my, side)}, now)
		}
	}

	g.overlay.Update()
	g.hud.Update(g.viewSize * g.scale)

	if _, err := g.session.Update(now); err != nil {
		if msg := err.Error(); msg != g.lastError {
			log.Printf("regenerate: %v", err)
			g.lastError = msg
		}
	}
	return nil
}

// Draw renders the current image, overlays and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.session.Frame()
	if f.Image == nil {
		return
	}
	if g.view == nil || g.viewGen != f.Generation || g.view.Bounds().Dx() != f.Pixels {
		g.view = ebiten.NewImageFromImage(f.Image)
		g.viewGen = f.Generation
	}
	scale := float64(g.viewSize*g.scale) / float64(f.Pixels)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	screen.DrawImage(g.view, op)

	g.overlay.Draw(screen, ui.Layer{
		Elevation: f.Elevation,
		Pixels:    f.Pixels,
		Origin:    f.Origin,
		Lit:       f.Lit,
		Stamp:     f.Generation,
	}, g.viewSize*g.scale)
	g.hud.Draw(screen, g.viewSize*g.scale, g.viewSize*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
