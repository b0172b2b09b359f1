package track

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golangdaddy/circuit/pkg/raster"
)

// Palette holds the colours used when rasterizing a track.
type Palette struct {
	Grass  color.RGBA
	Road   color.RGBA
	Guide  color.RGBA
	Finish color.RGBA
}

// DefaultPalette returns the stock colours.
func DefaultPalette() Palette {
	return Palette{
		Grass:  color.RGBA{0, 200, 0, 255},
		Road:   color.RGBA{100, 100, 100, 255},
		Guide:  color.RGBA{255, 255, 255, 255},
		Finish: color.RGBA{200, 0, 0, 255},
	}
}

// Guide-line dash geometry in pixels.
const (
	DashLength = 15.0
	DashGap    = 10.0
	DashWidth  = 3.0
)

// Render rasterizes the track onto a w x h surface. The backdrop is copied
// first when given, otherwise the surface is filled with the grass colour.
func Render(t *Track, w, h int, pal Palette, backdrop image.Image) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if backdrop != nil {
		draw.Draw(img, img.Bounds(), backdrop, backdrop.Bounds().Min, draw.Src)
	} else {
		draw.Draw(img, img.Bounds(), image.NewUniform(pal.Grass), image.Point{}, draw.Src)
	}

	raster.Fill(img, t.Ribbon(), pal.Road)
	// Markings are drawn aliased: a colour sampler must see either road or
	// guide on the centre line, never a blend of the two.
	for _, d := range t.Dashes(DashLength, DashGap, DashWidth) {
		raster.FillAliased(img, d[:], pal.Guide)
	}
	gate := t.FinishLine()
	raster.FillAliased(img, gate[:], pal.Finish)

	return img
}
