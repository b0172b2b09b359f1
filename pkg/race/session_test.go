package race

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/geom"
	"github.com/golangdaddy/circuit/pkg/laps"
	"github.com/golangdaddy/circuit/pkg/surface"
	"github.com/golangdaddy/circuit/pkg/track"
	"github.com/golangdaddy/circuit/pkg/vehicle"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newDefault(t *testing.T, clk laps.Clock) *Session {
	t.Helper()
	s, err := New(config.Default(), clk)
	require.NoError(t, err)
	return s
}

func manual(t *testing.T, car *vehicle.Car, onTrack bool) *Session {
	t.Helper()
	cfg := config.Default()
	tr, err := track.New(track.DefaultCenterPath(800, 600), cfg.RoadWidth, cfg.GateWidth)
	require.NoError(t, err)
	sampler := surface.SamplerFunc(func(x, y float64) bool { return onTrack })
	return NewSession(tr, car, sampler, laps.NewTimer(&fakeClock{now: t0}), cfg.Field(), cfg.OffTrackDamping)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.TPS = 0
	_, err := New(cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNew_PlacesCarBelowStart(t *testing.T) {
	s := newDefault(t, nil)
	assert.Equal(t, geom.Point{X: 400, Y: 200}, s.Car().Position())
	assert.Equal(t, 0.0, s.Car().SignedSpeed())
	require.NotNil(t, s.Surface())
	assert.Equal(t, 800, s.Surface().Bounds().Dx())
}

func TestNew_PixelSurface(t *testing.T) {
	cfg := config.Default()
	cfg.Surface = config.SurfacePixels
	s, err := New(cfg, nil)
	require.NoError(t, err)

	tick := s.Step(vehicle.Controls{})
	assert.True(t, tick.OnTrack)
}

func TestStep_RestWithoutInput(t *testing.T) {
	s := newDefault(t, &fakeClock{now: t0})
	for i := 0; i < 300; i++ {
		tick := s.Step(vehicle.Controls{})
		require.True(t, tick.OnTrack)
		require.Equal(t, laps.EventNone, tick.Event)
	}
	assert.Equal(t, 0.0, s.Car().SignedSpeed())
	assert.Equal(t, laps.NotStarted, s.Timer().State())
}

func TestStep_SpawnInsideGateIsNotACrossing(t *testing.T) {
	clk := &fakeClock{now: t0}
	s := newDefault(t, clk)
	car, ok := s.Car().(*vehicle.Car)
	require.True(t, ok)
	gate := s.Track().FinishLine()
	require.True(t, gate.OverlapsRect(car.Bounds()))

	// Drive up and out of the gate without ever firing.
	left := false
	for i := 0; i < 300; i++ {
		tick := s.Step(vehicle.Controls{Accelerate: true})
		require.Equal(t, laps.EventNone, tick.Event, "tick %d at %v", i, car.Position())
		if !gate.OverlapsRect(car.Bounds()) {
			left = true
			break
		}
	}
	require.True(t, left)
	assert.Equal(t, laps.NotStarted, s.Timer().State())

	// Come back in from below, moving forward.
	car.X, car.Y = 400, 300
	clk.now = t0.Add(5 * time.Second)
	var ev laps.Event
	for i := 0; i < 200 && ev == laps.EventNone; i++ {
		ev = s.Step(vehicle.Controls{Accelerate: true}).Event
	}
	require.Equal(t, laps.EventStart, ev)

	start, ok := s.Timer().Start()
	assert.True(t, ok)
	assert.Equal(t, t0.Add(5*time.Second), start)
	assert.Equal(t, 0, s.Timer().Laps())
	_, ok = s.Timer().Last()
	assert.False(t, ok)
}

func TestStep_OffTrackPenalty(t *testing.T) {
	car := vehicle.NewCar(geom.Point{X: 400, Y: 400}, vehicle.DefaultTuning())
	car.Speed = 4
	s := manual(t, car, false)

	tick := s.Step(vehicle.Controls{})
	assert.False(t, tick.OnTrack)
	assert.InDelta(t, 3.95*0.95, car.Speed, 1e-12)

	car2 := vehicle.NewCar(geom.Point{X: 400, Y: 400}, vehicle.DefaultTuning())
	car2.Speed = 4
	manual(t, car2, true).Step(vehicle.Controls{})
	assert.InDelta(t, 3.95, car2.Speed, 1e-12)
}

func TestStep_ReversingOverLineNeverCounts(t *testing.T) {
	// Above the gate, backing down through it.
	car := vehicle.NewCar(geom.Point{X: 400, Y: 30}, vehicle.DefaultTuning())
	s := manual(t, car, true)

	sawGate := false
	for i := 0; i < 120; i++ {
		tick := s.Step(vehicle.Controls{Brake: true})
		require.Equal(t, laps.EventNone, tick.Event)
		if s.Track().FinishLine().OverlapsRect(car.Bounds()) {
			sawGate = true
		}
	}
	assert.True(t, sawGate)
	assert.Less(t, car.Speed, 0.0)
	assert.Equal(t, laps.NotStarted, s.Timer().State())
	assert.Equal(t, 0, s.Timer().Laps())
}

// autopilot steers toward target and holds a moderate speed.
func autopilot(c vehicle.Vehicle, target geom.Point) vehicle.Controls {
	pos := c.Position()
	d := target.Sub(pos)
	want := math.Atan2(-d.X, -d.Y) * 180 / math.Pi
	diff := math.Mod(want-c.Heading()+540, 360) - 180

	return vehicle.Controls{
		Accelerate: c.SignedSpeed() < 4,
		Left:       diff > 2,
		Right:      diff < -2,
	}
}

func TestStep_DrivesLaps(t *testing.T) {
	clk := &fakeClock{now: t0}
	s := newDefault(t, clk)
	path := s.Track().Path()

	next := 1
	prevLaps := 0
	var events []laps.Event
	for i := 0; i < 4000; i++ {
		if s.Car().Position().Sub(path[next]).Len() < 80 {
			next = (next + 1) % len(path)
		}
		tick := s.Step(autopilot(s.Car(), path[next]))
		clk.now = clk.now.Add(time.Second / 60)

		if tick.Event != laps.EventNone {
			events = append(events, tick.Event)
		}
		require.GreaterOrEqual(t, s.Timer().Laps(), prevLaps)
		prevLaps = s.Timer().Laps()

		if last, ok := s.Timer().Last(); ok {
			best, _ := s.Timer().Best()
			require.LessOrEqual(t, best, last)
		}
	}

	require.NotEmpty(t, events)
	assert.Equal(t, laps.EventStart, events[0])
	assert.GreaterOrEqual(t, s.Timer().Laps(), 3)
	assert.Equal(t, len(events)-1, s.Timer().Laps())

	best, ok := s.Timer().Best()
	require.True(t, ok)
	assert.Greater(t, best, 2*time.Second)
}
