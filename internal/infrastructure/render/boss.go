package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wudong/internal/domain/entity"
)

// BossLooks is the number of distinct boss drawings
const BossLooks = 10

// DrawBoss draws the boss selected by its roster slot. body and halo come
// from the boss config; frame drives the animation.
func DrawBoss(dst *ebiten.Image, b *entity.Boss, body, halo color.RGBA, frame int) {
	x, y, size := b.X, b.Y, b.Size
	cx, cy := b.Center()
	s := size / 100
	t := float64(frame)
	pulse := math.Sin(t * 0.1)

	ps := 3 + pulse*2
	glow(dst, x-ps, y-ps, size+2*ps, size+2*ps, halo, 4, 15, 50)

	if b.HitTimer > 0 {
		body = colorWhite
	}

	switch b.Roster % BossLooks {
	case 0: // sentinel
		fillRoundRect(dst, x, y, size, size, 10, body)
		fillRect(dst, x+10*s, y+20*s, 80*s, 30*s, color.RGBA{20, 20, 40, 255})
		eye := color.RGBA{150, 0, 0, 255}
		if pulse > 0 {
			eye = color.RGBA{255, 0, 0, 255}
		}
		fillCircle(dst, x+30*s, y+35*s, 8*s, eye)
		fillCircle(dst, x+70*s, y+35*s, 8*s, eye)

	case 1: // phantom
		ghost := Fade(body, (150+pulse*50)/255)
		fillEllipse(dst, x, y, size, size*0.8, ghost)
		for i := range 3 {
			fillCircle(dst, x+float64(i)*size/3+size/6, y+size*0.8, size/6, ghost)
		}
		fillCircle(dst, cx-15*s, cy-10*s, 5*s, colorBlack)
		fillCircle(dst, cx+15*s, cy-10*s, 5*s, colorBlack)

	case 2: // beast
		fillCircle(dst, cx, cy, size/2, body)
		fillPolygon(dst, []Vec{{x, y + 20*s}, {x + 30*s, y}, {x + 40*s, y + 30*s}}, body)
		fillPolygon(dst, []Vec{{x + size, y + 20*s}, {x + size - 30*s, y}, {x + size - 40*s, y + 30*s}}, body)
		for i := range 3 {
			ly := y + 40*s + float64(i)*10*s
			line(dst, cx-20*s, ly, cx+20*s, ly, 3, colorBlack)
		}

	case 3: // insectoid
		fillEllipse(dst, x+20*s, y, 60*s, size, body)
		fillEllipse(dst, x+25*s, y+20*s, 20*s, 35*s, colorBlack)
		fillEllipse(dst, x+55*s, y+20*s, 20*s, 35*s, colorBlack)
		line(dst, cx-20*s, cy+25*s, cx+20*s, cy+25*s, 4, color.RGBA{200, 255, 200, 255})

	case 4: // hag
		fillPolygon(dst, []Vec{{cx, y}, {x, y + size}, {x + size, y + size}}, body)
		fillCircle(dst, cx, cy+20*s, 25*s, color.RGBA{220, 180, 150, 255})
		fillCircle(dst, cx-10*s, cy+15*s, 4, color.RGBA{0, 255, 0, 255})
		fillCircle(dst, cx+10*s, cy+15*s, 4, color.RGBA{0, 255, 0, 255})

	case 5: // watcher
		fillEllipse(dst, x, y+20*s, size, 60*s, colorWhite)
		iris := 20*s + pulse*5*s
		fillCircle(dst, cx, cy, iris, body)
		fillCircle(dst, cx, cy, iris/2, colorBlack)

	case 6: // lich
		bone := color.RGBA{240, 240, 240, 255}
		fillCircle(dst, cx, cy-10*s, 40*s, bone)
		fillRoundRect(dst, cx-25*s, cy+20*s, 50*s, 25*s, 5, bone)
		fillCircle(dst, cx-15*s, cy, 10*s, body)
		fillCircle(dst, cx+15*s, cy, 10*s, body)

	case 7: // blob
		for i := range 5 {
			bx := cx + math.Cos(t*0.1+float64(i))*30*s
			by := cy + math.Sin(t*0.1+float64(i))*20*s
			fillCircle(dst, bx, by, 20*s, body)
		}
		fillEllipse(dst, x+10*s, y+20*s, 80*s, 60*s, body)

	case 8: // wyrm
		horn := color.RGBA{255, 200, 100, 255}
		fillPolygon(dst, []Vec{{cx, y}, {x, cy}, {cx, y + size}, {x + size, cy}}, body)
		line(dst, cx-10*s, y+10*s, x, y-10*s, 5, horn)
		line(dst, cx+10*s, y+10*s, x+size, y-10*s, 5, horn)
		line(dst, cx-15*s, cy-5*s, cx-5*s, cy-5*s, 3, color.RGBA{255, 255, 0, 255})
		line(dst, cx+15*s, cy-5*s, cx+5*s, cy-5*s, 3, color.RGBA{255, 255, 0, 255})

	default: // core
		hex := regular(cx, cy, 50*s, 50*s, 6, t*0.05)
		strokePolygon(dst, hex, 3, body)
		fillCircle(dst, cx, cy, 15*s+pulse*10*s, colorWhite)
	}
}

// DrawBossProjectile draws a boss shot. Indestructible shots are red with a
// white ring.
func DrawBossProjectile(dst *ebiten.Image, p *entity.Projectile, body, halo color.RGBA, frame int) {
	if p.Indestructible {
		body = color.RGBA{255, 100, 100, 255}
		halo = colorWhite
	}
	r := p.Size / 2
	pulse := 2 + math.Sin(float64(frame)*0.2)

	fillCircle(dst, p.X, p.Y, r+pulse, Fade(halo, 80.0/255))
	fillCircle(dst, p.X, p.Y, r, body)
	fillCircle(dst, p.X, p.Y, p.Size/3, Shade(body, -50))
	if p.Indestructible {
		strokeCircle(dst, p.X, p.Y, r, 2, colorWhite)
	}
}

// DrawBossBar draws the boss name, level and health across a panel
func DrawBossBar(dst *ebiten.Image, b *entity.Boss, x, y, w, h float64, body color.RGBA) {
	fillRoundRect(dst, x, y, w, h, 10, color.RGBA{20, 20, 40, 200})
	strokeRect(dst, x, y, w, h, 2, body)

	ratio := b.HealthRatio()
	if fill := ratio * (w - 8); fill > 0 {
		fillRoundRect(dst, x+4, y+4, fill, h-8, 6, HealthColor(ratio))
	}

	label := body
	if int(label.R)+int(label.G)+int(label.B) < 120 {
		label = Shade(label, 120)
	}
	DrawText(dst, fmt.Sprintf("LVL %d: %s", b.Level, b.Name), x+10, y+(h-FontHeight)/2, label)
	health := fmt.Sprintf("%d/%d", b.Health, b.MaxHealth)
	DrawText(dst, health, x+w-TextWidth(health)-10, y+(h-FontHeight)/2, color.RGBA{200, 200, 255, 255})
}

// HealthColor is green above half health, yellow above a quarter, red below
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.5:
		return color.RGBA{100, 200, 100, 255}
	case ratio > 0.25:
		return color.RGBA{200, 180, 50, 255}
	default:
		return color.RGBA{200, 50, 50, 255}
	}
}
