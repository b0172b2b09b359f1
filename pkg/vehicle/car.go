package vehicle

import (
	"math"

	"github.com/golangdaddy/circuit/pkg/geom"
)

// Tuning holds the constant handling parameters of a car. Speeds are in
// pixels per tick, rates in pixels per tick squared, angles in degrees.
type Tuning struct {
	MaxSpeed     float64
	Acceleration float64
	Deceleration float64
	Friction     float64
	TurnRate     float64
	Length       float64
	Width        float64
}

// DefaultTuning returns the stock handling.
func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:     7,
		Acceleration: 0.15,
		Deceleration: 0.3,
		Friction:     0.05,
		TurnRate:     4,
		Length:       64,
		Width:        32,
	}
}

// Car is a kinematic top-down car. Heading 0 faces up the screen and
// positive headings turn counter-clockwise.
type Car struct {
	X, Y   float64
	Angle  float64 // degrees
	Speed  float64
	Tuning Tuning
}

var _ Vehicle = (*Car)(nil)

// NewCar creates a car at rest at pos, facing up.
func NewCar(pos geom.Point, tuning Tuning) *Car {
	return &Car{
		X:      pos.X,
		Y:      pos.Y,
		Tuning: tuning,
	}
}

// Update applies one tick of throttle, steering and movement, then keeps
// the car inside field.
func (c *Car) Update(ctrl Controls, field geom.Rect) {
	t := c.Tuning

	switch {
	case ctrl.Accelerate:
		c.Speed += t.Acceleration
	case ctrl.Brake:
		c.Speed -= t.Deceleration
	default:
		c.coast()
	}
	c.Speed = geom.ClampF(c.Speed, -t.MaxSpeed/2, t.MaxSpeed)

	// Steering flips in reverse and does not scale with speed.
	if c.Speed != 0 {
		dir := 1.0
		if c.Speed < 0 {
			dir = -1
		}
		if ctrl.Left {
			c.Angle += t.TurnRate * dir
		}
		if ctrl.Right {
			c.Angle -= t.TurnRate * dir
		}
	}

	rad := c.Angle * math.Pi / 180
	c.X += -math.Sin(rad) * c.Speed
	c.Y += -math.Cos(rad) * c.Speed

	c.X = geom.ClampF(c.X, field.X, field.Right())
	c.Y = geom.ClampF(c.Y, field.Y, field.Bottom())
}

// coast bleeds speed toward zero and stops exactly at zero.
func (c *Car) coast() {
	f := c.Tuning.Friction
	switch {
	case math.Abs(c.Speed) <= f:
		c.Speed = 0
	case c.Speed > 0:
		c.Speed -= f
	default:
		c.Speed += f
	}
}

// Position implements Vehicle.
func (c *Car) Position() geom.Point {
	return geom.Point{X: c.X, Y: c.Y}
}

// Bounds implements Vehicle. The footprint ignores heading.
func (c *Car) Bounds() geom.Rect {
	return geom.RectAround(c.Position(), c.Tuning.Length, c.Tuning.Width)
}

// Heading implements Vehicle.
func (c *Car) Heading() float64 {
	return c.Angle
}

// SignedSpeed implements Vehicle.
func (c *Car) SignedSpeed() float64 {
	return c.Speed
}

// Damp implements Vehicle.
func (c *Car) Damp(factor float64) {
	c.Speed *= factor
}
