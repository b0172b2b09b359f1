package track

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/circuit/pkg/geom"
)

var (
	// ErrTooFewPoints is returned when a centre path has fewer than three
	// distinct points.
	ErrTooFewPoints = errors.New("centre path needs at least 3 distinct points")
	// ErrInvalidWidth is returned for non-positive road or gate widths.
	ErrInvalidWidth = errors.New("width must be positive")
)

// CenterPath is the ordered centre line of a track. The last point connects
// back to the first.
type CenterPath []geom.Point

// Validate checks that the path has at least three distinct points.
func (p CenterPath) Validate() error {
	seen := make(map[geom.Point]struct{}, len(p))
	for _, pt := range p {
		seen[pt] = struct{}{}
	}
	if len(seen) < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, len(seen))
	}
	return nil
}

// Segment returns the start of segment i and its unit direction. The last
// segment wraps to the first point.
func (p CenterPath) Segment(i int) (geom.Point, geom.Point) {
	cur := p[i]
	next := p[(i+1)%len(p)]
	return cur, next.Sub(cur).Unit()
}

// DefaultCenterPath returns the fixed eight-point loop laid out for a
// w x h play field.
func DefaultCenterPath(w, h int) CenterPath {
	pt := func(x, y int) geom.Point {
		return geom.Point{X: float64(x), Y: float64(y)}
	}
	cx, cy := w/2, h/2
	return CenterPath{
		pt(cx, h/4),
		pt(cx+160, cy-100),
		pt(cx+180, cy+50),
		pt(cx+140, cy+150),
		pt(cx, cy+210),
		pt(cx-130, cy+180),
		pt(cx-160, cy+100),
		pt(cx-110, cy-30),
	}
}

// Boundary holds the left and right road edges, one point per centre-path
// point.
type Boundary struct {
	Left  []geom.Point
	Right []geom.Point
}

// Track is a static closed circuit built once from its centre path.
type Track struct {
	path      CenterPath
	roadWidth float64
	gateWidth float64
	boundary  Boundary
	gate      geom.Quad
}

// New builds the road edges and finish gate for path.
func New(path CenterPath, roadWidth, gateWidth float64) (*Track, error) {
	if err := path.Validate(); err != nil {
		return nil, fmt.Errorf("invalid track: %w", err)
	}
	if roadWidth <= 0 || gateWidth <= 0 {
		return nil, fmt.Errorf("invalid track: road %.1f gate %.1f: %w", roadWidth, gateWidth, ErrInvalidWidth)
	}

	t := &Track{
		path:      append(CenterPath(nil), path...),
		roadWidth: roadWidth,
		gateWidth: gateWidth,
	}
	t.boundary = buildBoundary(t.path, roadWidth/2)

	// The gate lies across the road at the first point, thin along the
	// direction of travel.
	start, dir := t.path.Segment(0)
	t.gate = geom.OrientedRect(start, dir, gateWidth, roadWidth)

	return t, nil
}

func buildBoundary(path CenterPath, half float64) Boundary {
	b := Boundary{
		Left:  make([]geom.Point, len(path)),
		Right: make([]geom.Point, len(path)),
	}
	for i := range path {
		p, dir := path.Segment(i)
		off := dir.Perp().Scale(half)
		b.Left[i] = p.Add(off)
		b.Right[i] = p.Sub(off)
	}
	return b
}

// Path returns a copy of the centre path.
func (t *Track) Path() CenterPath {
	return append(CenterPath(nil), t.path...)
}

// Start returns the first centre-path point.
func (t *Track) Start() geom.Point {
	return t.path[0]
}

// RoadWidth returns the full road width.
func (t *Track) RoadWidth() float64 {
	return t.roadWidth
}

// Boundary returns the road edges.
func (t *Track) Boundary() Boundary {
	return t.boundary
}

// Ribbon returns the drivable polygon: the left edge followed by the right
// edge in reverse. Both edges are closed on their first point, so the
// polygon traces the inner and outer loops in opposite directions and fills
// as a ring.
func (t *Track) Ribbon() []geom.Point {
	left, right := t.boundary.Left, t.boundary.Right
	n := len(left)
	poly := make([]geom.Point, 0, 2*n+2)
	poly = append(poly, left...)
	poly = append(poly, left[0], right[0])
	for i := n - 1; i >= 0; i-- {
		poly = append(poly, right[i])
	}
	return poly
}

// FinishLine returns the gate quad.
func (t *Track) FinishLine() geom.Quad {
	return t.gate
}

// Dashes returns the guide-line dashes along every segment of the centre
// path. They are cosmetic.
func (t *Track) Dashes(dash, gap, width float64) []geom.Quad {
	if dash <= 0 || width <= 0 {
		return nil
	}
	var out []geom.Quad
	for i := range t.path {
		start, dir := t.path.Segment(i)
		length := t.path[(i+1)%len(t.path)].Sub(start).Len()
		count := int(length / (dash + gap))
		for k := 0; k < count; k++ {
			from := start.Add(dir.Scale((dash + gap) * float64(k)))
			mid := from.Add(dir.Scale(dash / 2))
			out = append(out, geom.OrientedRect(mid, dir, dash, width))
		}
	}
	return out
}
