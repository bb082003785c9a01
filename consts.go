package main

import (
	"image/color"
	"time"
)

var DebugColor color.Color = color.RGBA{R: 0xff, B: 0xff, A: 0xff}
var BackgroundColor color.Color = rgbaOf(0xdbcfb1ff)
var HudTextColor color.Color = rgbaOf(0x937b6aff)

var PlayerColor color.Color = rgbaOf(0x8e6d89ff)
var PlayerOutlineColor color.Color = rgbaOf(0x6d838eff)

var DpadColor color.Color = rgbaOf(0xada38780)
var DpadRingColor color.Color = rgbaOf(0x6f8b6eff)
var KnobColor color.Color = rgbaOf(0xcc9970ff)
var KnobActiveColor color.Color = rgbaOf(0xa97e5cff)

const (
	groundTileSize = 256

	hintFadeDelay    = 3 * time.Second
	hintFadeDuration = 750 * time.Millisecond
)
