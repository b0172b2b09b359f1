package vehicle

import (
	"image"
	"image/color"

	"github.com/golangdaddy/circuit/pkg/geom"
	"github.com/golangdaddy/circuit/pkg/raster"
)

// Sprite colours
var (
	BodyColor   = color.RGBA{70, 130, 180, 255}
	StripeColor = color.RGBA{255, 255, 255, 255}
)

// Sprite renders a top-down image of a car with the given tuning. The nose
// points up, matching heading 0.
func Sprite(t Tuning) *image.RGBA {
	w, l := t.Width, t.Length
	img := image.NewRGBA(image.Rect(0, 0, int(w), int(l)))

	// Body tapers toward the nose
	raster.Fill(img, []geom.Point{
		{X: 0, Y: l},
		{X: w / 4, Y: 0},
		{X: w * 3 / 4, Y: 0},
		{X: w, Y: l},
	}, BodyColor)

	// Racing stripe outline
	stripe := geom.Rect{X: w / 4, Y: 0, W: w / 2, H: l}
	const thickness = 2.0
	edges := []geom.Rect{
		{X: stripe.X, Y: stripe.Y, W: stripe.W, H: thickness},
		{X: stripe.X, Y: stripe.Bottom() - thickness, W: stripe.W, H: thickness},
		{X: stripe.X, Y: stripe.Y, W: thickness, H: stripe.H},
		{X: stripe.Right() - thickness, Y: stripe.Y, W: thickness, H: stripe.H},
	}
	for _, e := range edges {
		raster.FillQuad(img, e.Corners(), StripeColor)
	}

	return img
}
