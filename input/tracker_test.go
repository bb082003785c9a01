package input

import (
	"fmt"
	"testing"

	. "github.com/quasilyte/gmath"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []string
}

func (r *recorder) OnGestureStart(p Vec)     { r.add("start", p) }
func (r *recorder) OnGestureMove(p Vec)      { r.add("move", p) }
func (r *recorder) OnGestureEnd(p Vec)       { r.add("end", p) }
func (r *recorder) OnGestureCancelled(p Vec) { r.add("cancel", p) }

func (r *recorder) add(kind string, p Vec) {
	r.events = append(r.events, fmt.Sprintf("%s %g,%g", kind, p.X, p.Y))
}

func down(x, y float64) Sample {
	return Sample{Down: true, Position: Vec{X: x, Y: y}}
}

func TestTrackerGestureLifecycle(t *testing.T) {
	rec := &recorder{}
	tracker := NewTracker(rec)

	tracker.Feed(Sample{Position: Vec{X: 5, Y: 5}})
	tracker.Feed(down(100, 100))
	tracker.Feed(down(100, 100))
	tracker.Feed(down(120, 90))
	tracker.Feed(down(130, 80))
	assert.True(t, tracker.Pressed())

	tracker.Feed(Sample{Position: Vec{X: 999, Y: 999}})
	assert.False(t, tracker.Pressed())

	tracker.Feed(Sample{})

	assert.Equal(t, []string{
		"start 100,100",
		"move 120,90",
		"move 130,80",
		"end 130,80",
	}, rec.events)
}

func TestTrackerCancelsOnLost(t *testing.T) {
	rec := &recorder{}
	tracker := NewTracker(rec)

	tracker.Feed(down(10, 10))
	tracker.Feed(down(20, 10))
	tracker.Feed(Sample{Lost: true})

	// still held after focus came back: a new gesture
	tracker.Feed(down(20, 10))
	tracker.Feed(Sample{})

	assert.Equal(t, []string{
		"start 10,10",
		"move 20,10",
		"cancel 20,10",
		"start 20,10",
		"end 20,10",
	}, rec.events)
}

func TestTrackerLostWhileIdle(t *testing.T) {
	rec := &recorder{}
	tracker := NewTracker(rec)

	tracker.Feed(Sample{Lost: true})
	tracker.Feed(Sample{Down: true, Lost: true})

	assert.Empty(t, rec.events)
}

func TestFollowerPrefersFirstTouch(t *testing.T) {
	var f Follower

	mouse := Vec{X: 1, Y: 1}

	s := f.Sample([]Contact{{ID: 7, Position: Vec{X: 10, Y: 10}}}, false, mouse, true)
	assert.Equal(t, down(10, 10), s)

	// a second finger does not take over
	s = f.Sample([]Contact{
		{ID: 9, Position: Vec{X: 50, Y: 50}},
		{ID: 7, Position: Vec{X: 12, Y: 11}},
	}, true, mouse, true)
	assert.Equal(t, down(12, 11), s)

	// first finger lifted while the second is still down
	s = f.Sample([]Contact{{ID: 9, Position: Vec{X: 50, Y: 50}}}, false, mouse, true)
	assert.False(t, s.Down)

	s = f.Sample([]Contact{{ID: 9, Position: Vec{X: 51, Y: 50}}}, false, mouse, true)
	assert.Equal(t, down(51, 50), s)
}

func TestFollowerFallsBackToMouse(t *testing.T) {
	var f Follower

	s := f.Sample(nil, true, Vec{X: 3, Y: 4}, true)
	assert.Equal(t, down(3, 4), s)

	s = f.Sample(nil, false, Vec{X: 3, Y: 4}, true)
	assert.Equal(t, Sample{Position: Vec{X: 3, Y: 4}}, s)
}

func TestFollowerLosesFocus(t *testing.T) {
	var f Follower

	f.Sample([]Contact{{ID: 1, Position: Vec{X: 10, Y: 10}}}, false, Vec{}, true)

	s := f.Sample([]Contact{{ID: 1, Position: Vec{X: 10, Y: 10}}}, false, Vec{}, false)
	assert.True(t, s.Lost)
}
