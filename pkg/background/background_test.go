package background

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGrass_Deterministic(t *testing.T) {
	g := NewGenerator(64, 48, color.RGBA{0, 200, 0, 255})
	a := g.GenerateGrass(7)
	b := g.GenerateGrass(7)

	require.Equal(t, 64, a.Bounds().Dx())
	require.Equal(t, 48, a.Bounds().Dy())
	assert.Equal(t, a.Pix, b.Pix)
}

func TestGenerateGrass_OnlyGreenVaries(t *testing.T) {
	base := color.RGBA{0, 200, 0, 255}
	img := NewGenerator(32, 32, base).GenerateGrass(1)

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			c := img.RGBAAt(x, y)
			assert.Equal(t, base.R, c.R)
			assert.Equal(t, base.B, c.B)
			assert.Equal(t, uint8(255), c.A)
			assert.InDelta(t, int(base.G), int(c.G), 20)
		}
	}
}
