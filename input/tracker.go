// Package input turns polled pointer state into stick gestures.
package input

import (
	"github.com/oliverbestmann/thumbstick/stick"
	. "github.com/quasilyte/gmath"
)

// Sample is the state of the followed pointer in one frame. Position must
// already be in the stick's coordinate space.
type Sample struct {
	Down     bool
	Position Vec

	// Lost is set when the contact went away without a regular release,
	// e.g. the window lost focus while the button was held.
	Lost bool
}

// Gestures is the receiving side of a Tracker.
type Gestures interface {
	OnGestureStart(p Vec)
	OnGestureMove(p Vec)
	OnGestureEnd(p Vec)
	OnGestureCancelled(p Vec)
}

var _ Gestures = (stick.GestureHandler)(nil)

// Tracker compares consecutive samples and emits the edges between them.
type Tracker struct {
	target Gestures

	down bool
	last Vec
}

func NewTracker(target Gestures) *Tracker {
	return &Tracker{target: target}
}

func (t *Tracker) Feed(sample Sample) {
	switch {
	case t.down && sample.Lost:
		t.down = false
		t.target.OnGestureCancelled(t.last)

	case !t.down && sample.Down && !sample.Lost:
		t.down = true
		t.last = sample.Position
		t.target.OnGestureStart(sample.Position)

	case t.down && sample.Down:
		if sample.Position != t.last {
			t.last = sample.Position
			t.target.OnGestureMove(sample.Position)
		}

	case t.down && !sample.Down:
		t.down = false
		t.target.OnGestureEnd(t.last)
	}
}

// Pressed reports whether a gesture is in progress.
func (t *Tracker) Pressed() bool {
	return t.down
}
