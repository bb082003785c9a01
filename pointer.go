package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/thumbstick/input"
	. "github.com/quasilyte/gmath"
)

var touchIds []ebiten.TouchID
var contacts []input.Contact

// PointerSample polls mouse and touch state and converts it into the
// stick's coordinate space.
func PointerSample(follower *input.Follower, toLogical ebiten.GeoM) input.Sample {
	// re-use buffers
	touchIds = ebiten.AppendTouchIDs(touchIds[:0])
	contacts = contacts[:0]

	for _, touchId := range touchIds {
		touchX, touchY := ebiten.TouchPosition(touchId)
		contacts = append(contacts, input.Contact{
			ID:       int(touchId),
			Position: transformCursor(toLogical, touchX, touchY),
		})
	}

	mouseX, mouseY := ebiten.CursorPosition()
	mouse := transformCursor(toLogical, mouseX, mouseY)
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return follower.Sample(contacts, mouseDown, mouse, ebiten.IsFocused())
}

func transformCursor(tr ebiten.GeoM, x, y int) Vec {
	wx, wy := tr.Apply(float64(x), float64(y))
	return Vec{X: wx, Y: wy}
}
