package main

import (
	"cmp"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/thumbstick/ground"
	"github.com/oliverbestmann/thumbstick/input"
	"github.com/oliverbestmann/thumbstick/logger"
	"github.com/oliverbestmann/thumbstick/stick"
	. "github.com/quasilyte/gmath"
)

// Game implements ebiten.Game interface.
type Game struct {
	screenWidth  int
	screenHeight int

	// stick space is y-up with the origin in the bottom left corner
	toScreen  ebiten.GeoM
	toLogical ebiten.GeoM

	stick    *stick.Controller
	tracker  *input.Tracker
	follower input.Follower

	player stick.Body

	ground *ebiten.Image
	hud    *Hud

	log logger.Logger
}

type GameOptions struct {
	ScreenWidth  int
	ScreenHeight int
	GroundSeed   int32
	Debug        bool
}

func NewGame(region stick.Region, opts GameOptions, log logger.Logger, stickOpts ...stick.Option) *Game {
	g := &Game{
		screenWidth:  opts.ScreenWidth,
		screenHeight: opts.ScreenHeight,
		hud:          NewHud(opts.Debug),
		log:          log,
	}

	stickOpts = append(stickOpts,
		stick.WithLogger(log),
		stick.WithRecenterListener(g.hud.Recentered),
	)

	g.stick = stick.New(region, stickOpts...)
	g.tracker = input.NewTracker(g.stick)

	g.updateTransform()

	g.player.Position = Vec{X: float64(g.screenWidth) / 2, Y: float64(g.screenHeight) / 2}

	tile := ground.Generate(opts.GroundSeed, groundTileSize, groundTileSize)
	g.ground = ebiten.NewImageFromImage(tile)

	log.Info("game initialized", "region", region, "screenWidth", g.screenWidth, "screenHeight", g.screenHeight)
	return g
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	_ = outsideWidth
	_ = outsideHeight

	// stay with a fixed screen size
	return g.screenWidth, g.screenHeight
}

func (g *Game) updateTransform() {
	g.toLogical = ebiten.GeoM{}
	g.toLogical.Scale(1, -1)
	g.toLogical.Translate(0, float64(g.screenHeight))

	g.toScreen = g.toLogical
	g.toScreen.Invert()
}

func (g *Game) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}

	dt := time.Second / time.Duration(tps)

	g.tracker.Feed(PointerSample(&g.follower, g.toLogical))

	if stick.Drive(g.stick, &g.player, dt) {
		// keep the player on screen
		g.player.Position = Vec{
			X: clampValue(g.player.Position.X, 0, float64(g.screenWidth)),
			Y: clampValue(g.player.Position.Y, 0, float64(g.screenHeight)),
		}
	}

	g.hud.Update(dt, g.stick.State())

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)

	g.drawGround(screen)
	g.drawPlayer(screen)
	g.drawStick(screen)

	g.hud.Draw(screen, g.stick.State())
}

func (g *Game) drawGround(screen *ebiten.Image) {
	size := imageSizeOf(g.ground)

	for y := 0.0; y < float64(g.screenHeight); y += size.Y {
		for x := 0.0; x < float64(g.screenWidth); x += size.X {
			var op ebiten.DrawImageOptions
			op.GeoM.Translate(x, y)
			screen.DrawImage(g.ground, &op)
		}
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	// arrow pointing up in screen space
	var path vector.Path
	path.MoveTo(0, -18)
	path.LineTo(12, 14)
	path.LineTo(0, 8)
	path.LineTo(-12, 14)
	path.Close()

	pos := TransformVec(g.toScreen, g.player.Position)

	// heading grows clockwise, and so does the rotation in y-down screen space
	var tr ebiten.GeoM
	tr.Rotate(g.player.Rotation * math.Pi / 180)
	tr.Translate(pos.X, pos.Y)

	DrawFillCircle(screen, pos, 22, PlayerOutlineColor)
	FillPath(screen, &path, tr, PlayerColor)
}

func (g *Game) drawStick(screen *ebiten.Image) {
	region := g.stick.Region()
	center := TransformVec(g.toScreen, region.Center)

	DrawFillCircle(screen, center, region.Radius, DpadColor)
	DrawRing(screen, center, region.Radius, 3, DpadRingColor)

	knobColor := KnobColor
	if g.stick.Active() {
		knobColor = KnobActiveColor
	}

	// drawn at exactly the size that is hit tested
	knob := TransformVec(g.toScreen, g.stick.Knob())
	DrawFillCircle(screen, knob, g.stick.KnobRadius(), knobColor)
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}
