package tween

import (
	"testing"
	"time"

	"github.com/fogleman/ease"
	"github.com/quasilyte/gmath"
	"github.com/stretchr/testify/assert"
)

func TestSimpleLerpValue(t *testing.T) {
	var value float64

	tw := &Simple{
		Duration: 100 * time.Millisecond,
		Target:   LerpValue(&value, 10, 20),
	}

	assert.False(t, tw.Update(50*time.Millisecond))
	assert.InDelta(t, 15, value, 1e-9)

	assert.True(t, tw.Update(80*time.Millisecond))
	assert.InDelta(t, 20, value, 1e-9)
}

func TestSimpleZeroDurationJumpsToEnd(t *testing.T) {
	var value float64

	tw := &Simple{Target: LerpValue(&value, 0, 3)}
	assert.True(t, tw.Update(0))
	assert.Equal(t, 3.0, value)
}

func TestSimpleEase(t *testing.T) {
	var value float64

	tw := &Simple{
		Duration: time.Second,
		Ease:     ease.InQuad,
		Target:   LerpValue(&value, 0, 1),
	}

	tw.Update(500 * time.Millisecond)
	assert.InDelta(t, 0.25, value, 1e-9)
}

func TestLerpVec(t *testing.T) {
	var pos gmath.Vec

	tw := &Simple{
		Duration: 100 * time.Millisecond,
		Target:   LerpVec(&pos, gmath.Vec{X: 150, Y: 100}, gmath.Vec{X: 100, Y: 100}),
	}

	tw.Update(25 * time.Millisecond)
	assert.InDelta(t, 137.5, pos.X, 1e-9)
	assert.InDelta(t, 100, pos.Y, 1e-9)
}

func TestDelay(t *testing.T) {
	var value float64

	tw := Delay(time.Second, &Simple{
		Duration: time.Second,
		Target:   LerpValue(&value, 0, 1),
	})

	assert.False(t, tw.Update(time.Second))
	assert.Equal(t, 0.0, value)

	assert.False(t, tw.Update(500*time.Millisecond))
	assert.InDelta(t, 0.5, value, 1e-9)

	assert.True(t, tw.Update(500*time.Millisecond))
}

func TestTweensRemovesFinished(t *testing.T) {
	var a, b float64

	var tweens Tweens
	tweens.Add(&Simple{Duration: 10 * time.Millisecond, Target: LerpValue(&a, 0, 1)})
	tweens.Add(&Simple{Duration: 30 * time.Millisecond, Target: LerpValue(&b, 0, 1)})
	assert.Equal(t, 2, tweens.Len())

	tweens.Update(20 * time.Millisecond)
	assert.Equal(t, 1, tweens.Len())
	assert.Equal(t, 1.0, a)

	tweens.Update(20 * time.Millisecond)
	assert.Equal(t, 0, tweens.Len())
	assert.Equal(t, 1.0, b)
}

func TestSlotReplacesRunningTween(t *testing.T) {
	var first, second float64

	var slot Slot
	slot.Start(&Simple{Duration: time.Second, Target: LerpValue(&first, 0, 1)})
	slot.Update(100 * time.Millisecond)
	assert.True(t, slot.Running())

	slot.Start(&Simple{Duration: time.Second, Target: LerpValue(&second, 0, 1)})
	slot.Update(2 * time.Second)

	// the replaced tween never advances again
	assert.InDelta(t, 0.1, first, 1e-9)
	assert.Equal(t, 1.0, second)
	assert.False(t, slot.Running())
}

func TestSlotStop(t *testing.T) {
	var value float64

	var slot Slot
	slot.Start(&Simple{Duration: time.Second, Target: LerpValue(&value, 0, 1)})
	slot.Stop()
	slot.Update(time.Second)

	assert.False(t, slot.Running())
	assert.Equal(t, 0.0, value)
}
