// Package ground renders the tiled backdrop the player walks over.
package ground

import (
	"image"
	"image/color"

	"github.com/furui/fastnoiselite-go"
)

var (
	Grass = color.NRGBA{R: 0x87, G: 0xa9, B: 0x85, A: 0xff}
	Dirt  = color.NRGBA{R: 0xdb, G: 0xcf, B: 0xb1, A: 0xff}
)

// Generate builds a width x height tile. The same seed always yields the
// same tile.
func Generate(seed int32, width, height int) *image.RGBA {
	noise := fastnoiselite.NewNoise()
	noise.Seed = seed
	noise.Frequency = 0.02
	noise.SetNoiseType(fastnoiselite.NoiseTypeValueCubic)

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			value := noise.GetNoise2D(fastnoiselite.FNLfloat(x), fastnoiselite.FNLfloat(y))
			img.Set(x, y, mix(Dirt, Grass, (float64(value)+1)/2))
		}
	}

	return img
}

func mix(a, b color.NRGBA, f float64) color.NRGBA {
	f = max(0, min(1, f))

	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*f)
	}

	return color.NRGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}
