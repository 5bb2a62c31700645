package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FontHeight is the line height of the UI face in pixels at scale 1
const FontHeight = 13

var (
	face    = text.NewGoXFace(basicfont.Face7x13)
	printer = message.NewPrinter(language.English)
)

// TextWidth returns the advance of s at scale 1
func TextWidth(s string) float64 {
	return text.Advance(s, face)
}

// DrawText draws s with its top-left corner at x, y
func DrawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	DrawTextScaled(dst, s, x, y, 1, c)
}

// DrawTextScaled draws s enlarged by scale
func DrawTextScaled(dst *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = FontHeight + 3
	text.Draw(dst, s, face, op)
}

// DrawTextCentered draws s centred horizontally on cx
func DrawTextCentered(dst *ebiten.Image, s string, cx, y, scale float64, c color.Color) {
	DrawTextScaled(dst, s, cx-TextWidth(s)*scale/2, y, scale, c)
}

// FormatScore formats a score with thousands separators
func FormatScore(score int) string {
	return printer.Sprintf("%d", score)
}
