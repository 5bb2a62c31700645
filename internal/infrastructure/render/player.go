package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wudong/internal/domain/entity"
)

var (
	colorNeonCyan = color.RGBA{0, 255, 255, 255}
	colorWhite    = color.RGBA{255, 255, 255, 255}
	colorBlack    = color.RGBA{0, 0, 0, 255}
)

// facing returns the transform for art drawn nose-up inside the box
func facing(o entity.Orientation, x, y, size float64) Transform {
	if o != entity.Horizontal {
		return Transform{}
	}
	return Transform{CX: x + size/2, CY: y + size/2, Angle: math.Pi / 2}
}

// DrawPlayer draws the player's vehicle in the box at x, y. pulse is the
// animation clock in seconds.
func DrawPlayer(dst *ebiten.Image, role entity.Role, x, y, size float64, body color.RGBA, pulse float64, o entity.Orientation) {
	p := pen{dst: dst, t: facing(o, x, y, size)}
	switch role {
	case entity.RoleAeroplane:
		drawAeroplane(p, x, y, size, pulse)
	case entity.RoleDragon:
		drawDragon(p, x, y, size, pulse)
	default:
		drawSpaceship(p, x, y, size, body, pulse)
	}
}

func drawSpaceship(p pen, x, y, size float64, body color.RGBA, pulse float64) {
	cx := x + size/2
	s := math.Max(size/40, 0.1)

	p.poly(body,
		Vec{cx, y},
		Vec{cx + 10*s, y + 25*s},
		Vec{cx + 8*s, y + size},
		Vec{cx - 8*s, y + size},
		Vec{cx - 10*s, y + 25*s},
	)
	p.line(cx, y+5*s, cx, y+size-5*s, math.Max(1, 2*s), Shade(body, 40))

	wing := Shade(body, -30)
	for _, side := range []float64{-1, 1} {
		p.poly(wing,
			Vec{cx + side*8*s, y + 15*s},
			Vec{cx + side*22*s, y + size - 5*s},
			Vec{cx + side*22*s, y + size + 2*s},
			Vec{cx + side*8*s, y + size - 5*s},
		)
		light := colorWhite
		if math.Mod(pulse, 0.4) > 0.2 {
			light = colorNeonCyan
		}
		p.circle(cx+side*20*s, y+size-2*s, math.Max(1, 2*s), light)
	}

	p.ellipse(cx-4*s, y+8*s, 8*s, 14*s, color.RGBA{30, 40, 60, 255})
	p.ellipse(cx-3*s, y+10*s, 6*s, 5*s, color.RGBA{100, 200, 255, 255})

	engine := 12 * s
	flame := (10 + math.Sin(pulse*10)*5) * s
	p.rect(cx-engine/2, y+size, engine, flame/2, color.RGBA{255, 100, 0, 255})
	p.rect(cx-engine/4, y+size, engine/2, flame/3, color.RGBA{255, 255, 200, 255})
}

func drawAeroplane(p pen, x, y, size, pulse float64) {
	var (
		light   = color.RGBA{210, 215, 225, 255}
		shade   = color.RGBA{170, 175, 185, 255}
		nose    = color.RGBA{100, 105, 115, 255}
		intake  = color.RGBA{40, 45, 55, 255}
		glass   = color.RGBA{20, 30, 45, 255}
		nozzle  = color.RGBA{60, 60, 70, 255}
		missile = color.RGBA{240, 240, 240, 255}
	)
	cx := x + size/2
	s := math.Max(size/40, 0.1)

	p.poly(nose, Vec{cx, y - 8*s}, Vec{cx + 3*s, y}, Vec{cx - 3*s, y})
	p.rect(cx-4*s, y, 8*s, size, light)

	for _, side := range []float64{-1, 1} {
		p.poly(intake,
			Vec{cx + side*4*s, y + 15*s}, Vec{cx + side*8*s, y + 18*s},
			Vec{cx + side*8*s, y + 28*s}, Vec{cx + side*4*s, y + 25*s},
		)
		p.poly(shade,
			Vec{cx + side*4*s, y + 10*s},
			Vec{cx + side*26*s, y + size - 8*s},
			Vec{cx + side*26*s, y + size - 3*s},
			Vec{cx + side*4*s, y + size - 6*s},
		)
		p.rect(cx+side*26*s-s, y+size-12*s, 2*s, 10*s, missile)
		p.poly(shade,
			Vec{cx + side*4*s, y + size - 4*s},
			Vec{cx + side*14*s, y + size + 6*s},
			Vec{cx + side*4*s, y + size},
		)
	}

	p.ellipse(cx-3*s, y+4*s, 6*s, 16*s, glass)
	p.ellipse(cx-2*s, y+6*s, 2*s, 5*s, color.RGBA{100, 150, 200, 255})

	burner := color.RGBA{80, 180, 255, 255}
	if math.Mod(pulse, 0.3) > 0.15 {
		burner = color.RGBA{120, 230, 255, 255}
	}
	flame := (6 + math.Sin(pulse*12)*4) * s
	for _, side := range []float64{-1, 1} {
		p.circle(cx+side*2*s, y+size, 3*s, nozzle)
		p.line(cx+side*2*s, y+size, cx+side*2*s, y+size+flame, 2, burner)
	}
}

func drawDragon(p pen, x, y, size, pulse float64) {
	var (
		body  = color.RGBA{100, 220, 60, 255}
		belly = color.RGBA{255, 255, 150, 255}
		wing  = color.RGBA{255, 200, 0, 255}
	)
	cx := x + size/2
	s := math.Max(size/40, 0.1)
	float := math.Sin(pulse*3) * 5 * s
	flap := math.Sin(pulse*10) * 10 * s

	p.ellipse(cx-13*s, y+20*s+float+flap, 10*s, 15*s, wing)
	p.ellipse(cx+3*s, y+20*s+float+flap, 10*s, 15*s, wing)

	p.ellipse(cx-15*s, y+15*s+float, 30*s, 35*s, body)
	p.ellipse(cx-10*s, y+25*s+float, 20*s, 22*s, belly)
	p.line(cx-10*s, y+45*s+float, cx, y+55*s+float, 8*s, body)
	p.line(cx, y+55*s+float, cx+10*s, y+45*s+float, 8*s, body)

	p.ellipse(cx-18*s, y-5*s+float, 36*s, 30*s, body)
	for _, side := range []float64{-1, 1} {
		p.circle(cx+side*8*s, y+8*s+float, 6*s, colorWhite)
		p.circle(cx+side*8*s, y+8*s+float, 3*s, colorBlack)
		p.circle(cx+side*8*s-s, y+7*s+float, 1.5*s, colorWhite)
		p.circle(cx+side*12*s, y-2*s+float, 4*s, belly)
	}
}

// DrawTrail draws fading copies along the player's recent path
func DrawTrail(dst *ebiten.Image, pl *entity.Player, c color.RGBA) {
	n := len(pl.Trail)
	for i, t := range pl.Trail {
		ratio := float64(i+1) / float64(n)
		size := math.Max(4, pl.Size*(0.3+ratio*0.5))
		fc := Fade(c, ratio*80/255)
		half := size / 2

		switch pl.Role {
		case entity.RoleAeroplane:
			fillEllipse(dst, t.X-half, t.Y-half, size, size, fc)
		case entity.RoleDragon:
			fillCircle(dst, t.X, t.Y, half, fc)
		default:
			fillPolygon(dst, []Vec{{t.X, t.Y - half}, {t.X + half, t.Y}, {t.X, t.Y + half}, {t.X - half, t.Y}}, fc)
		}
	}
}
