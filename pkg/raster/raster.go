// Package raster fills polygons into software images. The track surface,
// the occupancy mask and the car sprite are all produced here so that what
// is drawn and what is sampled come from the same coverage rules.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/golangdaddy/circuit/pkg/geom"
)

// FillPolygon composites src onto dst through the anti-aliased coverage of
// the closed polygon pts. Polygons with fewer than three points are ignored.
func FillPolygon(dst draw.Image, pts []geom.Point, src image.Image) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].X-float64(b.Min.X)), float32(pts[0].Y-float64(b.Min.Y)))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X-float64(b.Min.X)), float32(p.Y-float64(b.Min.Y)))
	}
	z.ClosePath()
	z.Draw(dst, b, src, image.Point{})
}

// FillQuad fills a single quad with a solid colour.
func FillQuad(dst draw.Image, q geom.Quad, c color.Color) {
	FillPolygon(dst, q[:], image.NewUniform(c))
}

// Fill fills the polygon pts with a solid colour.
func Fill(dst draw.Image, pts []geom.Point, c color.Color) {
	FillPolygon(dst, pts, image.NewUniform(c))
}

// FillAliased sets every pixel of dst that is at least half covered by the
// polygon pts to c and leaves the rest untouched. No blended colours are
// produced, so thin shapes keep an exact palette colour.
func FillAliased(dst draw.Image, pts []geom.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY))).
		Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	mask := image.NewAlpha(r)
	FillPolygon(mask, pts, image.Opaque)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if mask.AlphaAt(x, y).A >= 0x80 {
				dst.Set(x, y, c)
			}
		}
	}
}

// Coverage returns the alpha coverage of the polygon over a w x h grid.
func Coverage(w, h int, pts []geom.Point) *image.Alpha {
	a := image.NewAlpha(image.Rect(0, 0, w, h))
	FillPolygon(a, pts, image.Opaque)
	return a
}
