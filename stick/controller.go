package stick

import (
	"errors"
	"math"
	"time"

	"github.com/oliverbestmann/thumbstick/logger"
	"github.com/oliverbestmann/thumbstick/tween"
	. "github.com/quasilyte/gmath"
)

const (
	// DefaultVelocityScale converts the knob offset into a per-tick
	// displacement. Tuned for 60 updates per second.
	DefaultVelocityScale = 0.1

	DefaultRecenterDuration = 100 * time.Millisecond
)

// GestureHandler receives pointer gestures in region coordinates and is
// read once per tick by the host.
type GestureHandler interface {
	OnGestureStart(p Vec)
	OnGestureMove(p Vec)
	OnGestureEnd(p Vec)
	OnGestureCancelled(p Vec)
	Tick(dt time.Duration) (Motion, bool)
}

// State is a snapshot of the stick.
type State struct {
	Active   bool
	Knob     Vec
	Velocity Vec

	// Heading in degrees, 0 pointing up, growing clockwise.
	Heading float64
}

// Motion is what the controlled entity should apply this tick.
type Motion struct {
	Velocity Vec
	Heading  float64
}

type RecenterRequest struct {
	Target   Vec
	Duration time.Duration
}

var (
	ErrInvalidVelocityScale    = errors.New("stick: velocity scale must be finite")
	ErrInvalidKnobRadius       = errors.New("stick: knob radius must be a positive finite number")
	ErrInvalidRecenterDuration = errors.New("stick: recenter duration must not be negative")
)

func CheckVelocityScale(k float64) error {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return ErrInvalidVelocityScale
	}

	return nil
}

func CheckKnobRadius(r float64) error {
	if !(r > 0) || math.IsInf(r, 0) {
		return ErrInvalidKnobRadius
	}

	return nil
}

func CheckRecenterDuration(d time.Duration) error {
	if d < 0 {
		return ErrInvalidRecenterDuration
	}

	return nil
}

type Option func(c *Controller)

func WithVelocityScale(k float64) Option {
	return func(c *Controller) { c.velocityScale = k }
}

func WithRecenterDuration(d time.Duration) Option {
	return func(c *Controller) { c.recenterDuration = d }
}

func WithRecenterEase(ease func(t float64) float64) Option {
	return func(c *Controller) { c.recenterEase = ease }
}

// WithKnobRadius sets the half size of the knob's touchable square.
// Defaults to the region radius.
func WithKnobRadius(r float64) Option {
	return func(c *Controller) { c.knobRadius = r }
}

func WithRecenterListener(fn func(RecenterRequest)) Option {
	return func(c *Controller) { c.onRecenter = fn }
}

func WithLogger(log logger.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// Controller maps gestures against a Region into a velocity and heading.
// It is not safe for concurrent use; all calls are expected on the
// host's update loop.
type Controller struct {
	region Region

	velocityScale    float64
	knobRadius       float64
	recenterDuration time.Duration
	recenterEase     func(t float64) float64
	onRecenter       func(RecenterRequest)
	log              logger.Logger

	active   bool
	knob     Vec
	velocity Vec
	heading  float64

	recenter tween.Slot
}

var _ GestureHandler = (*Controller)(nil)

func New(region Region, opts ...Option) *Controller {
	c := &Controller{
		region:           region,
		velocityScale:    DefaultVelocityScale,
		knobRadius:       region.Radius,
		recenterDuration: DefaultRecenterDuration,
		log:              logger.Nop(),
		knob:             region.Center,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.sanitize(region)

	return c
}

// sanitize falls back to the defaults for option values that would
// leak NaN into the output or make the knob unreachable.
func (c *Controller) sanitize(region Region) {
	if err := CheckVelocityScale(c.velocityScale); err != nil {
		c.log.Warn("using default velocity scale", "err", err, "value", c.velocityScale)
		c.velocityScale = DefaultVelocityScale
	}

	if err := CheckKnobRadius(c.knobRadius); err != nil {
		c.log.Warn("using region radius for knob", "err", err, "value", c.knobRadius)
		c.knobRadius = region.Radius
	}

	if err := CheckRecenterDuration(c.recenterDuration); err != nil {
		c.log.Warn("using default recenter duration", "err", err, "value", c.recenterDuration)
		c.recenterDuration = DefaultRecenterDuration
	}
}

func (c *Controller) OnGestureStart(p Vec) {
	if !finite(p) {
		c.log.Debug("ignoring gesture start", "point", p)
		return
	}

	// the knob may still be on its way back to the center
	c.active = containsInclusive(squareAround(c.knob, c.knobRadius), p)
	if !c.active {
		// a gesture that misses the knob must not keep the last push alive
		c.resetVelocity()
	}

	c.log.Debug("gesture started", "point", p, "knob", c.knob, "active", c.active)
}

func (c *Controller) OnGestureMove(p Vec) {
	if !c.active {
		return
	}

	if !finite(p) {
		c.log.Debug("ignoring gesture move", "point", p)
		return
	}

	center := c.region.Center

	offset := p.Sub(center)
	angle := math.Atan2(offset.Y, offset.X)
	degree := angle * 180 / math.Pi

	length := c.region.Radius
	xDist := math.Sin(angle-math.Pi/2) * length
	yDist := math.Cos(angle-math.Pi/2) * length

	// the finger owns the knob again
	c.recenter.Stop()

	if containsInclusive(c.region.Bounds(), p) {
		c.knob = p
	} else {
		c.knob = Vec{X: center.X - xDist, Y: center.Y + yDist}
	}

	c.velocity = Vec{X: xDist * -c.velocityScale, Y: yDist * c.velocityScale}
	c.heading = -(degree - 90)
}

func (c *Controller) OnGestureEnd(p Vec) {
	if c.active {
		req := RecenterRequest{
			Target:   c.region.Center,
			Duration: c.recenterDuration,
		}

		c.recenter.Start(&tween.Simple{
			Duration: req.Duration,
			Ease:     c.recenterEase,
			Target:   tween.LerpVec(&c.knob, c.knob, req.Target),
		})

		if c.onRecenter != nil {
			c.onRecenter(req)
		}

		c.log.Debug("gesture ended", "point", p, "heading", c.heading)
	}

	c.active = false
	c.resetVelocity()
}

// OnGestureCancelled stops the motion but leaves the knob where it is.
func (c *Controller) OnGestureCancelled(p Vec) {
	if c.active {
		c.log.Debug("gesture cancelled", "point", p)
	}

	c.active = false
	c.resetVelocity()
}

// Tick advances the knob animation and reports the motion to apply.
// The boolean is false while the stick is at rest.
func (c *Controller) Tick(dt time.Duration) (Motion, bool) {
	c.recenter.Update(dt)

	if c.velocity.IsZero() {
		return Motion{}, false
	}

	return Motion{Velocity: c.velocity, Heading: c.heading}, true
}

func (c *Controller) resetVelocity() {
	c.velocity = Vec{}
}

func (c *Controller) State() State {
	return State{
		Active:   c.active,
		Knob:     c.knob,
		Velocity: c.velocity,
		Heading:  c.heading,
	}
}

func (c *Controller) Region() Region {
	return c.region
}

func (c *Controller) Active() bool {
	return c.active
}

// KnobRadius is the half size of the knob's touchable square.
func (c *Controller) KnobRadius() float64 {
	return c.knobRadius
}

func (c *Controller) Knob() Vec {
	return c.knob
}

func (c *Controller) Velocity() Vec {
	return c.velocity
}

func (c *Controller) Heading() float64 {
	return c.heading
}

// Recentering reports whether the knob is animating back to the center.
func (c *Controller) Recentering() bool {
	return c.recenter.Running()
}
