package ground

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(3, 32, 16)
	b := Generate(3, 32, 16)

	assert.Equal(t, 32, a.Bounds().Dx())
	assert.Equal(t, 16, a.Bounds().Dy())
	assert.Equal(t, a.Pix, b.Pix)
}

func TestGenerateStaysInPalette(t *testing.T) {
	img := Generate(11, 24, 24)

	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			assert.Equal(t, uint8(0xff), c.A)
			assert.True(t, between(c.R, Grass.R, Dirt.R), "red at %d,%d", x, y)
			assert.True(t, between(c.G, Grass.G, Dirt.G), "green at %d,%d", x, y)
		}
	}
}

func TestMixClamps(t *testing.T) {
	assert.Equal(t, Dirt, mix(Dirt, Grass, -3))
	assert.Equal(t, Grass, mix(Dirt, Grass, 4))
}

func between(v, a, b uint8) bool {
	return v >= min(a, b) && v <= max(a, b)
}
