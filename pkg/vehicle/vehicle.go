package vehicle

import "github.com/golangdaddy/circuit/pkg/geom"

// Vehicle is anything the race loop can drive around the track.
type Vehicle interface {
	// Update advances the vehicle by one tick inside field.
	Update(ctrl Controls, field geom.Rect)
	// Position returns the centre of the vehicle.
	Position() geom.Point
	// Bounds returns the axis-aligned footprint used for gate checks.
	Bounds() geom.Rect
	// Heading returns the facing in degrees, 0 up the screen and positive
	// counter-clockwise.
	Heading() float64
	// SignedSpeed returns the speed along the heading, negative in reverse.
	SignedSpeed() float64
	// Damp scales the current speed by factor.
	Damp(factor float64)
}

// Controls is the state of the driving inputs for one tick.
type Controls struct {
	Accelerate bool
	Brake      bool
	Left       bool
	Right      bool
}
