package ui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillElevationRGBA(t *testing.T) {
	nan := math.NaN()
	field := []float64{
		nan, -100, nan,
		0, 50, 400,
		nan, 1000, nan,
	}
	buf := make([]byte, 4*len(field))
	FillElevationRGBA(buf, field, 3)

	assert.Equal(t, []byte{0, 0, 0, 0}, buf[0:4], "NaN cells stay transparent")
	sea := buf[4*1 : 4*1+4]
	assert.Equal(t, uint8(waterAlpha), sea[3])
	assert.Greater(t, sea[2], sea[0], "water is blue")
	peak := buf[4*7 : 4*7+4]
	assert.Equal(t, uint8(landAlpha), peak[3])
	assert.Greater(t, peak[0], uint8(200), "the highest cell is near white")
}

func TestFillElevationRGBAFlatField(t *testing.T) {
	field := []float64{5, 5, 5, 5}
	buf := make([]byte, 16)
	FillElevationRGBA(buf, field, 2)
	r, g, b := tint(5, 5, 5).Clamped().RGB255()
	for i := 0; i < 4; i++ {
		assert.Equal(t, []byte{r, g, b, landAlpha}, buf[4*i:4*i+4], "cell %d is unshaded", i)
	}
}

func TestFillElevationRGBAHillshade(t *testing.T) {
	centre := func(field []float64) []byte {
		buf := make([]byte, 4*len(field))
		FillElevationRGBA(buf, field, 3)
		return buf[16:20]
	}
	risingRight := centre([]float64{0, 50, 100, 0, 50, 100, 0, 50, 100})
	risingLeft := centre([]float64{100, 50, 0, 100, 50, 0, 100, 50, 0})
	assert.Greater(t, risingRight[1], risingLeft[1], "slopes facing the upper left are lit")
}

func TestTint(t *testing.T) {
	assert.True(t, tint(-200, -200, 800).AlmostEqualRgb(tintAbyss))
	assert.True(t, tint(0, -200, 800).AlmostEqualRgb(tintLowland))
	assert.True(t, tint(800, -200, 800).AlmostEqualRgb(tintSummit))
	assert.True(t, tint(-1, 0, 10).AlmostEqualRgb(tintShelf), "no deeper cell to scale against")
	mid := tint(400, -200, 800)
	require.True(t, mid.IsValid())
	assert.True(t, mid.AlmostEqualRgb(tintUpland))
}

func TestFillElevationRGBAIgnoresMismatchedBuffers(t *testing.T) {
	buf := []byte{9, 9, 9, 9}
	FillElevationRGBA(buf, []float64{1, 2}, 1)
	assert.Equal(t, []byte{9, 9, 9, 9}, buf)
}
