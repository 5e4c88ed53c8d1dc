// Package termview renders and edits a planet inside a terminal using
// half-block cells, two image rows per text row.
package termview

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"magrathea/internal/app"
)

const (
	halfBlock   = '▀'
	rotateStep  = 0.1
	solsStep    = 0.1
	tickRate    = 50 * time.Millisecond
	statusLines = 1
)

// CellSink is the subset of tcell.Screen the painter writes to.
type CellSink interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Paint draws img into sink, composited over black. Each cell shows pixel
// row 2y in the foreground and row 2y+1 in the background.
func Paint(sink CellSink, img *image.NRGBA) {
	if img == nil {
		return
	}
	w, h := sink.Size()
	b := img.Bounds()
	for cy := 0; cy < h && 2*cy < b.Dy(); cy++ {
		for cx := 0; cx < w && cx < b.Dx(); cx++ {
			top := cellColor(img, b.Min.X+cx, b.Min.Y+2*cy)
			bottom := tcell.ColorBlack
			if 2*cy+1 < b.Dy() {
				bottom = cellColor(img, b.Min.X+cx, b.Min.Y+2*cy+1)
			}
			sink.SetContent(cx, cy, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
}

func cellColor(img *image.NRGBA, x, y int) tcell.Color {
	c := img.NRGBAAt(x, y)
	a := int32(c.A)
	return tcell.NewRGBColor(int32(c.R)*a/255, int32(c.G)*a/255, int32(c.B)*a/255)
}

// Viewer drives an editor session from terminal input.
type Viewer struct {
	session app.Session
	screen  tcell.Screen
	status  string
}

// New wraps an initialised screen.
func New(s app.Session, screen tcell.Screen) *Viewer {
	return &Viewer{session: s, screen: screen}
}

// Run processes events until the user quits or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	v.screen.EnableMouse()
	defer v.screen.DisableMouse()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()
	v.draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if quit := v.Handle(ev, time.Now()); quit {
				return nil
			}
			v.draw()
		case now := <-ticker.C:
			changed, err := v.session.Update(now)
			if err != nil {
				v.status = err.Error()
				v.draw()
			} else if changed {
				v.status = ""
				v.draw()
			}
		}
	}
}

// Handle applies one event. It reports whether the viewer should exit.
func (v *Viewer) Handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev, now)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return false
		}
		x, y := ev.Position()
		if y >= v.imageRows() {
			return false
		}
		size := v.session.Frame().Pixels
		if size == 0 {
			return false
		}
		v.session.Send(app.SetOrigin{Angle: app.AngleAt(x, 2*y, size)}, now)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return false
}

func (v *Viewer) handleKey(ev *tcell.EventKey, now time.Time) bool {
	angle := v.session.Frame().Origin.Angle()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.session.Send(app.SetOrigin{Angle: angle - rotateStep}, now)
	case tcell.KeyRight:
		v.session.Send(app.SetOrigin{Angle: angle + rotateStep}, now)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'n':
			v.session.Send(app.NewSeed{}, now)
		case 'r':
			v.session.Send(app.Regenerate{}, now)
		case '+', '=':
			if l := v.session.Light(); l != nil {
				v.session.Send(app.SetSols{Sols: l.Sols + solsStep}, now)
			}
		case '-':
			if l := v.session.Light(); l != nil {
				v.session.Send(app.SetSols{Sols: l.Sols - solsStep}, now)
			}
		}
	}
	return false
}

func (v *Viewer) imageRows() int {
	_, h := v.screen.Size()
	return h - statusLines
}

func (v *Viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	Paint(clip{v.screen, w, h - statusLines}, v.session.Frame().Image)
	status := v.status
	if status == "" {
		status = v.statusLine()
	}
	for i, r := range []rune(status) {
		if i >= w {
			break
		}
		v.screen.SetContent(i, h-1, r, nil, tcell.StyleDefault.Foreground(tcell.ColorSilver))
	}
	v.screen.Show()
}

func (v *Viewer) statusLine() string {
	f := v.session.Frame()
	line := fmt.Sprintf("angle %.2f  ", f.Origin.Angle())
	if l := v.session.Light(); l != nil {
		line += fmt.Sprintf("sols %.1f  ", l.Sols)
	}
	if v.session.Pending() {
		line += "rendering...  "
	}
	return line + "n reseed  ←/→ orbit  +/- light  click aim  q quit"
}

// clip limits a sink to the top h rows.
type clip struct {
	CellSink
	w, h int
}

func (c clip) Size() (int, int) { return c.w, c.h }
