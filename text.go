package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/oliverbestmann/thumbstick/assets"
	. "github.com/quasilyte/gmath"
	"image/color"
)

var Font = assets.Font()

var Font16 = &text.GoTextFace{
	Source: Font,
	Size:   16.0,
}

var Font24 = &text.GoTextFace{
	Source: Font,
	Size:   24.0,
}

func DrawText(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color, alpha float64, primaryAlign text.Align) {
	if color == nil {
		color = DebugColor
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.PrimaryAlign = primaryAlign
	op.ColorScale.ScaleWithColor(color)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.LineSpacing = face.Metrics().XHeight * 2.0
	text.Draw(target, msg, face, op)
}

func DrawTextLeft(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color) {
	DrawText(target, msg, face, pos, color, 1, text.AlignStart)
}

// MeasureText returns the size of a single line.
func MeasureText(face text.Face, t string) Vec {
	width, height := text.Measure(t, face, 0)
	return Vec{X: width, Y: height}
}
