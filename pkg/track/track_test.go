package track

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/circuit/pkg/geom"
)

func square() CenterPath {
	return CenterPath{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}
}

func TestNew_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		path  CenterPath
		road  float64
		gate  float64
		isErr error
	}{
		{"empty", nil, 20, 10, ErrTooFewPoints},
		{"two distinct", CenterPath{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}, 20, 10, ErrTooFewPoints},
		{"zero road", square(), 0, 10, ErrInvalidWidth},
		{"negative gate", square(), 20, -1, ErrInvalidWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.path, tt.road, tt.gate)
			assert.ErrorIs(t, err, tt.isErr)
		})
	}
}

func TestNew_BoundaryOffsets(t *testing.T) {
	tr, err := New(square(), 20, 4)
	require.NoError(t, err)

	b := tr.Boundary()
	require.Len(t, b.Left, 4)
	require.Len(t, b.Right, 4)

	// Segment 0 runs along +x so the offset is along y.
	assert.Equal(t, geom.Point{X: 0, Y: 10}, b.Left[0])
	assert.Equal(t, geom.Point{X: 0, Y: -10}, b.Right[0])
	// Segment 1 runs along +y so the offset is along -x.
	assert.Equal(t, geom.Point{X: 90, Y: 0}, b.Left[1])
	assert.Equal(t, geom.Point{X: 110, Y: 0}, b.Right[1])
	// The closing segment wraps from the last point to the first.
	assert.Equal(t, geom.Point{X: 0, Y: 100}, b.Left[3].Add(geom.Point{X: -10, Y: 0}))
	assert.Equal(t, geom.Point{X: -10, Y: 100}, b.Right[3])
}

func TestNew_CoincidentPointsDoNotDivideByZero(t *testing.T) {
	tr, err := New(CenterPath{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 100, Y: 0}, {X: 50, Y: 50}}, 20, 4)
	require.NoError(t, err)

	b := tr.Boundary()
	assert.Equal(t, geom.Point{X: 0, Y: 0}, b.Left[0])
	assert.Equal(t, geom.Point{X: 0, Y: 0}, b.Right[0])
	for _, p := range tr.Ribbon() {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y))
	}
}

func TestTrack_Ribbon(t *testing.T) {
	tr, err := New(square(), 20, 4)
	require.NoError(t, err)

	b := tr.Boundary()
	ribbon := tr.Ribbon()
	require.Len(t, ribbon, 10)
	assert.Equal(t, b.Left, ribbon[:4])
	assert.Equal(t, b.Left[0], ribbon[4])
	assert.Equal(t, b.Right[0], ribbon[5])
	assert.Equal(t, b.Right[3], ribbon[6])
	assert.Equal(t, b.Right[0], ribbon[9])
}

func TestTrack_FinishLinePerpendicularToStart(t *testing.T) {
	tr, err := New(square(), 20, 4)
	require.NoError(t, err)

	// Start segment is horizontal, so the gate stands vertically.
	assert.Equal(t, geom.Rect{X: -2, Y: -10, W: 4, H: 20}, tr.FinishLine().Bounds())

	diag, err := New(CenterPath{{X: 0, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 200}}, 40, 2)
	require.NoError(t, err)
	gate := diag.FinishLine()
	along := gate[1].Sub(gate[0])
	across := gate[2].Sub(gate[1])
	assert.InDelta(t, 2.0, along.Len(), 1e-9)
	assert.InDelta(t, 40.0, across.Len(), 1e-9)
	// The gate's long side is perpendicular to the start direction.
	assert.InDelta(t, 0.0, across.X*1+across.Y*1, 1e-9)
}

func TestTrack_Dashes(t *testing.T) {
	tr, err := New(square(), 20, 4)
	require.NoError(t, err)

	// 100 / (15 + 10) = 4 dashes per side.
	dashes := tr.Dashes(DashLength, DashGap, DashWidth)
	require.Len(t, dashes, 16)
	assert.Equal(t, geom.Rect{X: 0, Y: -1.5, W: 15, H: 3}, dashes[0].Bounds())
	assert.Nil(t, tr.Dashes(0, 10, 3))
}

func TestDefaultCenterPath(t *testing.T) {
	p := DefaultCenterPath(800, 600)
	require.Len(t, p, 8)
	assert.Equal(t, geom.Point{X: 400, Y: 150}, p[0])
	assert.Equal(t, geom.Point{X: 290, Y: 270}, p[7])
	assert.NoError(t, p.Validate())
}
