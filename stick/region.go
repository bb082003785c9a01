package stick

import (
	"errors"
	"math"

	. "github.com/quasilyte/gmath"
)

var (
	ErrInvalidRadius = errors.New("stick: radius must be a positive finite number")
	ErrInvalidCenter = errors.New("stick: center must be finite")
)

// Region is the fixed dpad area the stick operates in.
type Region struct {
	Center Vec
	Radius float64
}

func NewRegion(center Vec, radius float64) (Region, error) {
	if !finite(center) {
		return Region{}, ErrInvalidCenter
	}

	if !(radius > 0) || math.IsInf(radius, 0) {
		return Region{}, ErrInvalidRadius
	}

	return Region{Center: center, Radius: radius}, nil
}

// Bounds is the axis aligned square enclosing the region circle.
func (r Region) Bounds() Rect {
	return squareAround(r.Center, r.Radius)
}

func squareAround(center Vec, halfSize float64) Rect {
	half := Vec{X: halfSize, Y: halfSize}
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// containsInclusive treats the edges as inside, the way a touch on the
// very border of a sprite still hits it.
func containsInclusive(r Rect, p Vec) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func finite(v Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
