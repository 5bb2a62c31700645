// Package render draws the game with procedural vector art.
//
// Nothing here reads input or changes game state; scenes hand entities to
// the draw functions every frame.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Fade scales a colour's alpha by f in [0, 1]. Colours are premultiplied,
// so every channel is scaled.
func Fade(c color.RGBA, f float64) color.RGBA {
	f = math.Max(0, math.Min(1, f))
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

// Shade adds delta to each channel of an opaque colour, clamped to 0..255
func Shade(c color.RGBA, delta int) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(max(0, min(255, int(v)+delta)))
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}

// Lerp blends a toward b by t in [0, 1]
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-t) + float64(y)*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func strokeRect(dst *ebiten.Image, x, y, w, h, width float64, c color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), c, false)
}

func fillCircle(dst *ebiten.Image, cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), c, true)
}

func strokeCircle(dst *ebiten.Image, cx, cy, r, width float64, c color.Color) {
	if r <= 0 {
		return
	}
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

func line(dst *ebiten.Image, x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

// fillRoundRect fills a rectangle with circular corners
func fillRoundRect(dst *ebiten.Image, x, y, w, h, r float64, c color.Color) {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		fillRect(dst, x, y, w, h, c)
		return
	}
	fillRect(dst, x+r, y, w-2*r, h, c)
	fillRect(dst, x, y+r, r, h-2*r, c)
	fillRect(dst, x+w-r, y+r, r, h-2*r, c)
	fillCircle(dst, x+r, y+r, r, c)
	fillCircle(dst, x+w-r, y+r, r, c)
	fillCircle(dst, x+r, y+h-r, r, c)
	fillCircle(dst, x+w-r, y+h-r, r, c)
}

// fillPolygon fills a closed polygon through pts
func fillPolygon(dst *ebiten.Image, pts []Vec, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// strokePolygon outlines a closed polygon through pts
func strokePolygon(dst *ebiten.Image, pts []Vec, width float64, c color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		line(dst, a.X, a.Y, b.X, b.Y, width, c)
	}
}

// ellipse returns a polygon approximating the ellipse inscribed in the box
func ellipse(x, y, w, h float64) []Vec {
	const segments = 24
	cx, cy := x+w/2, y+h/2
	pts := make([]Vec, segments)
	for i := range segments {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = Vec{X: cx + math.Cos(a)*w/2, Y: cy + math.Sin(a)*h/2}
	}
	return pts
}

func fillEllipse(dst *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	fillPolygon(dst, ellipse(x, y, w, h), c)
}

// regular returns the n corners of a regular polygon
func regular(cx, cy, rx, ry float64, n int, start float64) []Vec {
	pts := make([]Vec, n)
	for i := range n {
		a := start + 2*math.Pi*float64(i)/float64(n)
		pts[i] = Vec{X: cx + math.Cos(a)*rx, Y: cy + math.Sin(a)*ry}
	}
	return pts
}

// glow draws soft concentric halos around a box
func glow(dst *ebiten.Image, x, y, w, h float64, c color.RGBA, layers int, radius, intensity float64) {
	for i := layers - 1; i >= 0; i-- {
		r := radius + float64(i)*6
		alpha := math.Max(5, intensity-float64(i)*15) / 255
		fillRoundRect(dst, x-r, y-r, w+2*r, h+2*r, r+5, Fade(c, alpha))
	}
}
