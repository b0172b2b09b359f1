// Package surface answers whether a world point is on the road.
package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/golangdaddy/circuit/pkg/raster"
	"github.com/golangdaddy/circuit/pkg/track"
)

// DefaultTolerance is the per-channel colour tolerance out of 255.
const DefaultTolerance = 30

// Sampler classifies points as on or off the road. Points outside the
// sampled area are always off the road.
type Sampler interface {
	OnTrack(x, y float64) bool
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func(x, y float64) bool

// OnTrack implements Sampler.
func (f SamplerFunc) OnTrack(x, y float64) bool {
	return f(x, y)
}

// ColorSampler classifies a point by the colour of a rendered image.
type ColorSampler struct {
	img       image.Image
	accept    []color.RGBA
	tolerance int
}

// NewColorSampler samples img and accepts pixels close to any of the
// accept colours.
func NewColorSampler(img image.Image, tolerance int, accept ...color.RGBA) *ColorSampler {
	return &ColorSampler{
		img:       img,
		accept:    accept,
		tolerance: tolerance,
	}
}

// OnTrack implements Sampler.
func (s *ColorSampler) OnTrack(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	p := image.Pt(int(x), int(y))
	if !p.In(s.img.Bounds()) {
		return false
	}
	c := color.RGBAModel.Convert(s.img.At(p.X, p.Y)).(color.RGBA)
	for _, a := range s.accept {
		if Close(c, a, s.tolerance) {
			return true
		}
	}
	return false
}

// Close reports whether every RGB channel of a and b differs by less
// than tol. Alpha is ignored.
func Close(a, b color.RGBA, tol int) bool {
	return absDiff(a.R, b.R) < tol && absDiff(a.G, b.G) < tol && absDiff(a.B, b.B) < tol
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// Mask is a boolean occupancy grid of the road ribbon. It is built from
// track geometry alone and does not depend on anything drawn on screen.
type Mask struct {
	w, h  int
	cells []bool
}

// NewMask rasterizes the ribbon of t over a w x h grid. A cell is road
// when at least half of it is covered.
func NewMask(t *track.Track, w, h int) *Mask {
	cov := raster.Coverage(w, h, t.Ribbon())
	m := &Mask{w: w, h: h, cells: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.cells[y*w+x] = cov.AlphaAt(x, y).A >= 0x80
		}
	}
	return m
}

// OnTrack implements Sampler.
func (m *Mask) OnTrack(x, y float64) bool {
	// written so that NaN and infinities fail the range test
	if !(x >= 0 && y >= 0 && x < float64(m.w) && y < float64(m.h)) {
		return false
	}
	return m.cells[int(y)*m.w+int(x)]
}

// Coverage returns the fraction of grid cells that are road.
func (m *Mask) Coverage() float64 {
	if len(m.cells) == 0 {
		return 0
	}
	n := 0
	for _, c := range m.cells {
		if c {
			n++
		}
	}
	return float64(n) / float64(len(m.cells))
}
