package main

import (
	"fmt"
	"time"

	"github.com/fogleman/ease"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/oliverbestmann/thumbstick/stick"
	"github.com/oliverbestmann/thumbstick/tween"
	. "github.com/quasilyte/gmath"
)

// Hud shows a usage hint until the stick is used for the first time and,
// in debug mode, the live stick state.
type Hud struct {
	debug bool

	hintAlpha  float64
	hintHidden bool
	tweens     tween.Tweens

	recenters int
}

func NewHud(debug bool) *Hud {
	return &Hud{debug: debug, hintAlpha: 1}
}

func (h *Hud) Update(dt time.Duration, state stick.State) {
	if state.Active && !h.hintHidden {
		h.hintHidden = true

		h.tweens.Add(tween.Delay(hintFadeDelay, &tween.Simple{
			Duration: hintFadeDuration,
			Ease:     ease.OutCubic,
			Target:   tween.LerpValue(&h.hintAlpha, 1, 0),
		}))
	}

	h.tweens.Update(dt)
}

func (h *Hud) Recentered(stick.RecenterRequest) {
	h.recenters++
}

func (h *Hud) Draw(screen *ebiten.Image, state stick.State) {
	screenSize := imageSizeOf(screen)

	if h.hintAlpha > 0 {
		pos := Vec{X: screenSize.X / 2, Y: 32}
		DrawText(screen, "drag the knob to move", Font24, pos, HudTextColor, h.hintAlpha, text.AlignCenter)
	}

	if !h.debug {
		return
	}

	lines := []string{
		fmt.Sprintf("%1.1f fps, %1.1f tps", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("active: %t, recenters: %d", state.Active, h.recenters),
		fmt.Sprintf("knob: %.1f, %.1f", state.Knob.X, state.Knob.Y),
		fmt.Sprintf("velocity: %.2f, %.2f", state.Velocity.X, state.Velocity.Y),
		fmt.Sprintf("heading: %.1f°", state.Heading),
	}

	pos := Vec{X: screenSize.X - 240, Y: 16}
	for _, line := range lines {
		DrawTextLeft(screen, line, Font16, pos, DebugColor)
		pos.Y += MeasureText(Font16, line).Y + 4
	}
}
