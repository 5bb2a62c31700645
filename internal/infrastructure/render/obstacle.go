package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wudong/internal/domain/entity"
)

// DrawObstacle draws one obstacle in its kind's configured colour. The
// obstacle's age drives the idle animation.
func DrawObstacle(dst *ebiten.Image, ob *entity.Obstacle, body color.RGBA) {
	r := ob.Rect()
	t := float64(ob.Age) + float64(ob.ID%16)*7

	switch ob.Kind {
	case entity.KindMine:
		drawMine(dst, r, body, t)
	case entity.KindBird:
		drawBolt(dst, r, t)
	case entity.KindTurtle:
		drawTurtle(dst, r, t)
	case entity.KindMushroom:
		drawMushroom(dst, r, t)
	case entity.KindMachineGun:
		drawAmmo(dst, r, t, color.RGBA{234, 88, 12, 255}, color.RGBA{253, 224, 71, 255})
	case entity.KindShotgun:
		drawAmmo(dst, r, t, color.RGBA{168, 85, 247, 255}, color.RGBA{216, 180, 254, 255})
	case entity.KindXRay:
		drawXRayGun(dst, r, body, t)
	case entity.KindSteelBar:
		drawSteelBar(dst, r, body)
	default:
		fillRect(dst, r.X, r.Y, r.W, r.H, body)
	}
}

func drawMine(dst *ebiten.Image, r entity.Rect, body color.RGBA, t float64) {
	dark := color.RGBA{130, 10, 10, 255}
	cx, cy := r.Center()
	size := r.W
	radius := size / 3

	pulse := 2 + math.Sin(t*0.1)*1.5
	glow(dst, r.X-pulse, r.Y-pulse, r.W+2*pulse, r.H+2*pulse, body, 3, 8, 35)

	fillCircle(dst, cx, cy, radius+2, dark)
	fillCircle(dst, cx, cy, radius, body)
	angle := t * 3 * math.Pi / 180
	for i := range 8 {
		a := angle + float64(i)*math.Pi/4
		fillCircle(dst, cx+math.Cos(a)*(radius+size/6), cy+math.Sin(a)*(radius+size/6), math.Max(2, size/10), dark)
	}
	core := math.Max(2, size/8+math.Abs(math.Sin(t*0.15))*2)
	fillCircle(dst, cx, cy, core, color.RGBA{255, 200, 200, 255})
}

func drawBolt(dst *ebiten.Image, r entity.Rect, t float64) {
	bolt := color.RGBA{250, 204, 21, 255}
	bright := color.RGBA{254, 240, 138, 255}
	cx, cy := r.Center()
	s := r.W / 55

	pts := []Vec{
		{cx + s, cy - 18*s},
		{cx - 9*s, cy + 2*s},
		{cx, cy + 2*s},
		{cx - s, cy + 18*s},
		{cx + 9*s, cy - 2*s},
		{cx, cy - 2*s},
	}
	if b := math.Abs(math.Sin(t * 0.2)); b > 0.3 {
		glow(dst, r.X+r.W/4, r.Y, r.W/2, r.H, bolt, 1, 2, b*80)
	}
	fillPolygon(dst, pts, bolt)
	strokePolygon(dst, pts, math.Max(1, s), bright)
}

func drawTurtle(dst *ebiten.Image, r entity.Rect, t float64) {
	var (
		skin    = color.RGBA{120, 190, 120, 255}
		outline = color.RGBA{60, 120, 60, 255}
		shell   = color.RGBA{100, 180, 80, 255}
		dark    = color.RGBA{70, 140, 55, 255}
	)
	cx, cy := r.Center()
	s := r.W / 40
	bob := math.Sin(t*0.05) * 2 * s

	for _, lx := range []float64{cx - 10*s, cx + 2*s} {
		fillEllipse(dst, lx, cy+8*s+bob, 8*s, 10*s, skin)
		strokePolygon(dst, ellipse(lx, cy+8*s+bob, 8*s, 10*s), math.Max(1, s), outline)
	}

	sx, sy := cx-13*s, cy-10*s+bob
	fillEllipse(dst, sx, sy, 26*s, 20*s, shell)
	strokePolygon(dst, ellipse(sx, sy, 26*s, 20*s), math.Max(1, 1.5*s), outline)
	fillEllipse(dst, sx+2*s, cy+5*s+bob, 22*s, 5*s, dark)
	strokePolygon(dst, regular(cx, cy-4*s+bob, 5*s, 4*s, 6, -math.Pi/6), math.Max(1, s), dark)

	hx, hy := cx+14*s+bob, cy-8*s+bob
	fillEllipse(dst, cx+10*s, cy-2*s+bob, 8*s, 10*s, skin)
	fillCircle(dst, hx, hy, 8*s, skin)
	strokeCircle(dst, hx, hy, 8*s, math.Max(1, 1.5*s), outline)
	for _, ex := range []float64{hx - 2*s, hx + 4*s} {
		fillCircle(dst, ex, hy-3*s, math.Max(2, 3*s), colorWhite)
		fillCircle(dst, ex+0.5*s, hy-3*s, math.Max(1, 1.5*s), color.RGBA{30, 30, 30, 255})
	}
}

func drawMushroom(dst *ebiten.Image, r entity.Rect, t float64) {
	inset := r.W / 5
	mx := r.X + inset
	ms := r.W - 2*inset
	bounce := math.Abs(math.Sin(t*0.2) * 2)
	my := r.Y + inset - bounce
	capH := ms/2 + 2
	stemW := ms / 3

	fillRoundRect(dst, mx+ms/2-stemW/2, my+capH-2, stemW, ms/3+bounce, 3, color.RGBA{220, 215, 200, 255})
	fillEllipse(dst, mx+1, my, ms-2, capH, color.RGBA{220, 38, 38, 255})
	strokePolygon(dst, ellipse(mx+1, my, ms-2, capH), math.Max(1, ms/16), color.RGBA{252, 165, 165, 255})
	fillCircle(dst, mx+ms/3, my+capH/3, math.Max(2, ms/10), colorWhite)
	fillCircle(dst, mx+ms*2/3, my+capH/3+2, math.Max(2, ms/12), colorWhite)
}

func drawAmmo(dst *ebiten.Image, r entity.Rect, t float64, shell, tip color.RGBA) {
	cx := r.X + r.W/2
	w := math.Max(4, r.W/6)
	h := math.Max(10, r.W*2/5)
	gap := w + 2
	for i := range 3 {
		bx := cx - gap + float64(i)*gap - w/2
		by := r.Y + r.H/2 - h/2 + math.Sin(t*0.3+float64(i)*0.5)*4
		fillRoundRect(dst, bx, by, w, h, w/2, shell)
		fillRoundRect(dst, bx, by, w, h/2, w/2, tip)
	}
}

func drawXRayGun(dst *ebiten.Image, r entity.Rect, body color.RGBA, t float64) {
	cx, cy := r.Center()
	s := r.W / 40
	pulse := math.Abs(math.Sin(t * 0.15))

	halo := color.RGBA{100, 230, 255, 255}
	for i := 2; i >= 0; i-- {
		alpha := ((60-float64(i)*15)*pulse + 30) / 255
		fillCircle(dst, cx, cy, (12+float64(i)*6)*s, Fade(halo, alpha))
	}

	fillPolygon(dst, []Vec{{cx, r.Y + 5*s}, {cx + 12*s, cy}, {cx, r.Y + r.H - 5*s}, {cx - 12*s, cy}}, body)
	fillPolygon(dst, []Vec{{cx, r.Y + 10*s}, {cx + 6*s, cy}, {cx, r.Y + r.H - 10*s}, {cx - 6*s, cy}}, color.RGBA{150, 230, 255, 255})
	core := uint8(180 + 75*pulse)
	fillCircle(dst, cx, cy, 4*s, color.RGBA{core, uint8(min(int(core)+20, 255)), 255, 255})
}

func drawSteelBar(dst *ebiten.Image, r entity.Rect, body color.RGBA) {
	fillRoundRect(dst, r.X, r.Y, r.W, r.H, 3, color.RGBA{80, 85, 95, 255})
	fillRoundRect(dst, r.X+2, r.Y+2, r.W-4, r.H-4, 2, body)

	across := r.W >= r.H
	if across {
		fillRect(dst, r.X+4, r.Y+3, r.W-8, 3, color.RGBA{180, 190, 200, 255})
	} else {
		fillRect(dst, r.X+3, r.Y+4, 3, r.H-8, color.RGBA{180, 190, 200, 255})
	}
	strokeRect(dst, r.X, r.Y, r.W, r.H, 2, Shade(body, 40))

	for i := 1; i <= 3; i++ {
		bx, by := r.X+r.W/2, r.Y+r.H*float64(i)/4
		if across {
			bx, by = r.X+r.W*float64(i)/4, r.Y+r.H/2
		}
		fillCircle(dst, bx, by, 3, color.RGBA{60, 65, 75, 255})
		fillCircle(dst, bx, by, 2, color.RGBA{100, 105, 115, 255})
	}
}
