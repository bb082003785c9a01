package input

import (
	. "github.com/quasilyte/gmath"
)

// Contact is one touch point as reported by the platform.
type Contact struct {
	ID       int
	Position Vec
}

// Follower sticks to a single contact: the first touch that appears, or
// the mouse when nothing touches the screen. Further touches are ignored
// until the followed one is released.
type Follower struct {
	touchID  int
	touching bool
}

func (f *Follower) Sample(touches []Contact, mouseDown bool, mouse Vec, focused bool) Sample {
	if !focused {
		f.touching = false
		return Sample{Lost: true}
	}

	if f.touching {
		for _, touch := range touches {
			if touch.ID == f.touchID {
				return Sample{Down: true, Position: touch.Position}
			}
		}

		// finger lifted
		f.touching = false
		return Sample{}
	}

	if len(touches) > 0 {
		f.touching = true
		f.touchID = touches[0].ID
		return Sample{Down: true, Position: touches[0].Position}
	}

	return Sample{Down: mouseDown, Position: mouse}
}
