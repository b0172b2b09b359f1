// Package race runs one tick of the race: drive, penalise, time.
package race

import (
	"fmt"
	"image"
	"log"

	"github.com/golangdaddy/circuit/pkg/background"
	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/geom"
	"github.com/golangdaddy/circuit/pkg/laps"
	"github.com/golangdaddy/circuit/pkg/surface"
	"github.com/golangdaddy/circuit/pkg/track"
	"github.com/golangdaddy/circuit/pkg/vehicle"
)

// Tick summarises what happened during one Step.
type Tick struct {
	OnTrack bool
	Event   laps.Event
}

// Session owns all mutable race state. It is driven from a single loop and
// is not safe for concurrent use.
type Session struct {
	track   *track.Track
	car     vehicle.Vehicle
	sampler surface.Sampler
	timer   *laps.Timer
	field   geom.Rect
	damping float64

	// prev is the car footprint from the previous tick. It starts as the
	// spawn footprint, so a car placed on the line has not crossed it.
	prev *geom.Rect

	surface *image.RGBA
}

// NewSession wires a session from ready-made parts.
func NewSession(t *track.Track, car vehicle.Vehicle, sampler surface.Sampler, timer *laps.Timer, field geom.Rect, damping float64) *Session {
	spawn := car.Bounds()
	return &Session{
		track:   t,
		car:     car,
		sampler: sampler,
		timer:   timer,
		field:   field,
		damping: damping,
		prev:    &spawn,
	}
}

// New builds the default circuit, its rendered surface and a car at the
// start line from cfg.
func New(cfg config.Config, clock laps.Clock) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	path := track.DefaultCenterPath(cfg.ScreenWidth, cfg.ScreenHeight)
	t, err := track.New(path, cfg.RoadWidth, cfg.GateWidth)
	if err != nil {
		return nil, fmt.Errorf("building track: %w", err)
	}

	grass := background.NewGenerator(cfg.ScreenWidth, cfg.ScreenHeight, cfg.Palette.Grass).GenerateGrass(cfg.BackgroundSeed)
	img := track.Render(t, cfg.ScreenWidth, cfg.ScreenHeight, cfg.Palette, grass)

	var sampler surface.Sampler
	switch cfg.Surface {
	case config.SurfacePixels:
		sampler = surface.NewColorSampler(img, cfg.Tolerance, cfg.Palette.Road, cfg.Palette.Guide)
		log.Printf("Track ready: %d points, road %.0f px, sampling rendered colours", len(path), t.RoadWidth())
	default:
		mask := surface.NewMask(t, cfg.ScreenWidth, cfg.ScreenHeight)
		sampler = mask
		log.Printf("Track ready: %d points, road %.0f px, %.0f%% of field drivable", len(path), t.RoadWidth(), mask.Coverage()*100)
	}

	car := vehicle.NewCar(t.Start().Add(cfg.StartOffset), cfg.Tuning)

	s := NewSession(t, car, sampler, laps.NewTimer(clock), cfg.Field(), cfg.OffTrackDamping)
	s.surface = img
	return s, nil
}

// Step advances the race by one tick.
func (s *Session) Step(ctrl vehicle.Controls) Tick {
	s.car.Update(ctrl, s.field)

	pos := s.car.Position()
	onTrack := s.sampler.OnTrack(pos.X, pos.Y)
	if !onTrack {
		s.car.Damp(s.damping)
	}

	cur := s.car.Bounds()
	ev := s.timer.Observe(s.track.FinishLine(), cur, s.prev, s.car.SignedSpeed())
	s.prev = &cur

	return Tick{OnTrack: onTrack, Event: ev}
}

// Track returns the circuit.
func (s *Session) Track() *track.Track {
	return s.track
}

// Car returns the driven vehicle.
func (s *Session) Car() vehicle.Vehicle {
	return s.car
}

// Timer returns the lap timer.
func (s *Session) Timer() *laps.Timer {
	return s.timer
}

// Surface returns the rendered track, or nil when the session was not
// built by New.
func (s *Session) Surface() *image.RGBA {
	return s.surface
}
