package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// pen draws shapes through a Transform, so art authored facing up can be
// turned to face right in horizontal mode.
type pen struct {
	dst *ebiten.Image
	t   Transform
}

func (p pen) poly(c color.RGBA, pts ...Vec) {
	fillPolygon(p.dst, p.t.ApplyAll(pts), c)
}

func (p pen) outline(width float64, c color.RGBA, pts ...Vec) {
	strokePolygon(p.dst, p.t.ApplyAll(pts), width, c)
}

func (p pen) rect(x, y, w, h float64, c color.RGBA) {
	p.poly(c, Vec{x, y}, Vec{x + w, y}, Vec{x + w, y + h}, Vec{x, y + h})
}

func (p pen) ellipse(x, y, w, h float64, c color.RGBA) {
	fillPolygon(p.dst, p.t.ApplyAll(ellipse(x, y, w, h)), c)
}

func (p pen) circle(cx, cy, r float64, c color.RGBA) {
	v := p.t.Apply(Vec{cx, cy})
	fillCircle(p.dst, v.X, v.Y, r, c)
}

func (p pen) ring(cx, cy, r, width float64, c color.RGBA) {
	v := p.t.Apply(Vec{cx, cy})
	strokeCircle(p.dst, v.X, v.Y, r, width, c)
}

func (p pen) line(x0, y0, x1, y1, width float64, c color.RGBA) {
	a, b := p.t.Apply(Vec{x0, y0}), p.t.Apply(Vec{x1, y1})
	line(p.dst, a.X, a.Y, b.X, b.Y, width, c)
}
