package config

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/circuit/pkg/geom"
	"github.com/golangdaddy/circuit/pkg/track"
	"github.com/golangdaddy/circuit/pkg/vehicle"
)

// SurfaceKind selects how the race decides whether the car is on the road.
type SurfaceKind string

const (
	// SurfaceMask uses an occupancy grid built from the track geometry.
	SurfaceMask SurfaceKind = "mask"
	// SurfacePixels samples the colours of the rendered track.
	SurfacePixels SurfaceKind = "pixels"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of the game.
type Config struct {
	Title        string
	ScreenWidth  int
	ScreenHeight int
	TPS          int

	RoadWidth   float64
	GateWidth   float64
	StartOffset geom.Point // car spawn relative to the first centre-path point
	Palette     track.Palette

	Surface         SurfaceKind
	Tolerance       int
	OffTrackDamping float64
	BackgroundSeed  int64

	Tuning     vehicle.Tuning
	SpeedScale float64 // km/h shown per pixel per tick
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Title:        "Circuit",
		ScreenWidth:  800,
		ScreenHeight: 600,
		TPS:          60,

		RoadWidth:   180,
		GateWidth:   10,
		StartOffset: geom.Point{X: 0, Y: 50},
		Palette:     track.DefaultPalette(),

		Surface:         SurfaceMask,
		Tolerance:       30,
		OffTrackDamping: 0.95,
		BackgroundSeed:  1,

		Tuning:     vehicle.DefaultTuning(),
		SpeedScale: 20,
	}
}

// Field returns the play-field rectangle.
func (c Config) Field() geom.Rect {
	return geom.Rect{W: float64(c.ScreenWidth), H: float64(c.ScreenHeight)}
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalid, c.ScreenWidth, c.ScreenHeight)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	case c.RoadWidth <= 0 || c.GateWidth <= 0:
		return fmt.Errorf("%w: road width %.1f gate width %.1f", ErrInvalid, c.RoadWidth, c.GateWidth)
	case c.Surface != SurfaceMask && c.Surface != SurfacePixels:
		return fmt.Errorf("%w: surface %q", ErrInvalid, c.Surface)
	case c.Tolerance < 0 || c.Tolerance > 255:
		return fmt.Errorf("%w: tolerance %d", ErrInvalid, c.Tolerance)
	case c.OffTrackDamping < 0 || c.OffTrackDamping > 1:
		return fmt.Errorf("%w: off-track damping %.2f", ErrInvalid, c.OffTrackDamping)
	}

	t := c.Tuning
	if t.MaxSpeed <= 0 || t.Acceleration <= 0 || t.Deceleration <= 0 || t.Friction < 0 {
		return fmt.Errorf("%w: tuning %+v", ErrInvalid, t)
	}
	if t.Length <= 0 || t.Width <= 0 {
		return fmt.Errorf("%w: car size %.0fx%.0f", ErrInvalid, t.Length, t.Width)
	}
	return nil
}
