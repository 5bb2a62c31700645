package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	colorPanel       = color.RGBA{20, 20, 40, 220}
	colorButton      = color.RGBA{35, 35, 70, 255}
	colorButtonHover = color.RGBA{55, 55, 105, 255}
	colorText        = color.RGBA{230, 230, 255, 255}
)

// Button is a clickable labelled box
type Button struct {
	X, Y, W, H float64
	Label      string
	Accent     color.RGBA
	Selected   bool
}

// NewButton creates a button with the default accent
func NewButton(x, y, w, h float64, label string) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label, Accent: colorNeonCyan}
}

// Contains reports whether the point lies inside the button
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Draw draws the button; hovered buttons are lighter
func (b *Button) Draw(dst *ebiten.Image, hovered bool) {
	bg := colorButton
	if hovered {
		bg = colorButtonHover
	}
	if b.Selected {
		glow(dst, b.X, b.Y, b.W, b.H, b.Accent, 2, 3, 40)
		bg = Lerp(bg, b.Accent, 0.35)
	}
	fillRoundRect(dst, b.X, b.Y, b.W, b.H, 6, bg)

	border := Fade(b.Accent, 0.5)
	if b.Selected || hovered {
		border = b.Accent
	}
	strokeRect(dst, b.X, b.Y, b.W, b.H, 2, border)
	DrawTextCentered(dst, b.Label, b.X+b.W/2, b.Y+(b.H-FontHeight)/2, 1, colorText)
}

// DrawPanel draws a translucent section panel with an optional title
func DrawPanel(dst *ebiten.Image, x, y, w, h float64, title string, accent color.RGBA) {
	fillRoundRect(dst, x, y, w, h, 10, colorPanel)
	strokeRect(dst, x, y, w, h, 2, Fade(accent, 0.8))
	if title != "" {
		DrawTextCentered(dst, title, x+w/2, y+8, 1, accent)
	}
}

// DrawOverlay tints the whole screen
func DrawOverlay(dst *ebiten.Image, c color.RGBA) {
	b := dst.Bounds()
	fillRect(dst, 0, 0, float64(b.Dx()), float64(b.Dy()), c)
}

// DrawBar draws a horizontal meter filled to ratio
func DrawBar(dst *ebiten.Image, x, y, w, h, ratio float64, c color.RGBA) {
	fillRect(dst, x, y, w, h, color.RGBA{60, 60, 60, 255})
	fillRect(dst, x, y, w*min(max(ratio, 0), 1), h, c)
}
