package stick

import (
	"time"

	. "github.com/quasilyte/gmath"
)

// Entity is whatever the stick steers.
type Entity interface {
	Translate(delta Vec)
	SetRotation(degrees float64)
}

// Drive ticks the handler and moves the entity. Position and rotation
// only change together, while the stick is deflected.
func Drive(h GestureHandler, e Entity, dt time.Duration) bool {
	motion, ok := h.Tick(dt)
	if !ok {
		return false
	}

	e.Translate(motion.Velocity)
	e.SetRotation(motion.Heading)

	return true
}

// Body is a plain Entity for hosts without their own transform type.
type Body struct {
	Position Vec
	Rotation float64
}

func (b *Body) Translate(delta Vec) {
	b.Position = b.Position.Add(delta)
}

func (b *Body) SetRotation(degrees float64) {
	b.Rotation = degrees
}
