package termview

import (
	"image"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magrathea/internal/app"
	"magrathea/internal/config"
)

type cell struct {
	r     rune
	style tcell.Style
}

type mockSink struct {
	w, h  int
	cells map[[2]int]cell
}

func newMockSink(w, h int) *mockSink {
	return &mockSink{w: w, h: h, cells: map[[2]int]cell{}}
}

func (m *mockSink) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = cell{r: primary, style: style}
}

func (m *mockSink) Size() (int, int) { return m.w, m.h }

func TestPaintHalfBlocks(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 200, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 0})
	img.SetNRGBA(0, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	sink := newMockSink(10, 10)
	Paint(sink, img)
	require.Len(t, sink.cells, 4, "2 columns × 2 cell rows")

	style := func(fg, bg tcell.Color) tcell.Style {
		return tcell.StyleDefault.Foreground(fg).Background(bg)
	}
	c := sink.cells[[2]int{0, 0}]
	assert.Equal(t, halfBlock, c.r)
	assert.Equal(t, style(tcell.NewRGBColor(255, 0, 0), tcell.NewRGBColor(0, 0, 200)), sink.cells[[2]int{0, 0}].style)
	assert.Equal(t, style(tcell.NewRGBColor(0, 0, 0), tcell.NewRGBColor(0, 0, 0)), sink.cells[[2]int{1, 0}].style,
		"transparent pixels composite to black")
	assert.Equal(t, style(tcell.NewRGBColor(10, 20, 30), tcell.ColorBlack), sink.cells[[2]int{0, 1}].style,
		"odd heights pad the last row")
}

func TestPaintClipsToSink(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	sink := newMockSink(3, 2)
	Paint(sink, img)
	assert.Len(t, sink.cells, 6)
	Paint(sink, nil)
	assert.Len(t, sink.cells, 6)
}

func newTestViewer(t *testing.T) (*Viewer, app.Session) {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Resolution = 16
	cfg.SunColor = "ffffff"
	cfg.Seed = "00000000-0000-0000-0000-000000000000"
	s, err := app.Open(cfg)
	require.NoError(t, err)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 12)
	return New(s, screen), s
}

func TestHandleKeys(t *testing.T) {
	v, s := newTestViewer(t)
	now := time.Unix(0, 0)
	start := s.Frame().Origin.Angle()

	assert.False(t, v.Handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), now))
	assert.True(t, s.Pending())
	_, err := s.Update(now.Add(time.Second))
	require.NoError(t, err)
	assert.InDelta(t, start+rotateStep, s.Frame().Origin.Angle(), 1e-9)

	assert.False(t, v.Handle(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), now))
	assert.InDelta(t, 1.1, s.Light().Sols, 1e-9)
	assert.False(t, v.Handle(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), now))
	assert.InDelta(t, 1.0, s.Light().Sols, 1e-9)

	assert.True(t, v.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), now))
	assert.True(t, v.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now))
}

func TestHandleMouseSetsAngle(t *testing.T) {
	v, s := newTestViewer(t)
	now := time.Unix(0, 0)

	// cell (15, 4) is pixel (15, 8): right of centre on a 16 px image
	v.Handle(tcell.NewEventMouse(15, 4, tcell.Button1, tcell.ModNone), now)
	_, err := s.Update(now.Add(time.Second))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, math.Abs(s.Frame().Origin.Angle()), 1e-9)

	v.Handle(tcell.NewEventMouse(3, 3, tcell.ButtonNone, tcell.ModNone), now)
	assert.False(t, s.Pending(), "moves without a button are ignored")
}

func TestDrawWritesStatus(t *testing.T) {
	v, _ := newTestViewer(t)
	v.draw()
	w, h := v.screen.Size()
	require.Equal(t, 40, w)
	require.Equal(t, 12, h)

	status := make([]rune, 0, 5)
	for x := 0; x < 5; x++ {
		r, _, _, _ := v.screen.GetContent(x, h-1)
		status = append(status, r)
	}
	assert.Equal(t, "angle", string(status))
	r, _, _, _ := v.screen.GetContent(0, 0)
	assert.Equal(t, halfBlock, r)
}
