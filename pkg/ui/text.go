package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Face is the bitmap font used for all UI text.
var Face = text.NewGoXFace(bitmapfont.Face)

// DrawText draws str with its top-left corner at (x, y). Size is in pixels;
// the bitmap font is 16px tall at scale 1.
func DrawText(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / 16.0

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)

	text.Draw(screen, str, Face, op)
}

// DrawTextCentered draws str horizontally centred on cx.
func DrawTextCentered(screen *ebiten.Image, str string, cx, y float64, size float64, clr color.Color) {
	w := text.Advance(str, Face) * size / 16.0
	DrawText(screen, str, cx-w/2, y, size, clr)
}
