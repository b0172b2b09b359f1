package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator creates backdrop textures for the off-road area
type Generator struct {
	Width  int
	Height int
	Base   color.RGBA
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int, base color.RGBA) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
		Base:   base,
	}
}

// GenerateGrass creates a grass field around the base colour.
// Only the green channel varies, so the texture never drifts toward the
// greys and whites used on the road.
func (g *Generator) GenerateGrass(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, g.Base)
		}
	}

	// Mowing stripes
	for y := 0; y < g.Height; y++ {
		band := 0.5 + 0.5*math.Sin(float64(y)*0.05)
		for x := 0; x < g.Width; x += 2 {
			if rng.Float64() > band*0.3 {
				continue
			}
			img.SetRGBA(x, y, g.shade(-12))
		}
	}

	// Tufts
	for i := 0; i < g.Width*g.Height/40; i++ {
		g.drawTuft(img, rng.Intn(g.Width), rng.Intn(g.Height), rng)
	}

	return img
}

// drawTuft draws a small blade cluster
func (g *Generator) drawTuft(img *image.RGBA, x, y int, rng *rand.Rand) {
	c := g.shade(rng.Intn(41) - 20)
	height := 1 + rng.Intn(3)
	for ty := 0; ty < height; ty++ {
		px, py := x, y-ty
		if px >= 0 && px < g.Width && py >= 0 && py < g.Height {
			img.SetRGBA(px, py, c)
		}
	}
}

// shade offsets the green channel of the base colour
func (g *Generator) shade(delta int) color.RGBA {
	v := int(g.Base.G) + delta
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	c := g.Base
	c.G = uint8(v)
	return c
}
