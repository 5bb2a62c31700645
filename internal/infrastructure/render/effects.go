package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wudong/internal/domain/entity"
)

// DrawParticles draws every live particle, with a halo for glowing ones
func DrawParticles(dst *ebiten.Image, ps *entity.ParticleSystem) {
	for _, p := range ps.Particles {
		life := p.Life()
		if life <= 0 || p.Size <= 0 {
			continue
		}
		if p.Glow {
			fillCircle(dst, p.X, p.Y, p.Size*2, Fade(p.Color, life*0.3))
		}
		fillCircle(dst, p.X, p.Y, p.Size, Fade(p.Color, life))
	}
}

// DrawPopups draws the rising score labels
func DrawPopups(dst *ebiten.Image, popups []*entity.ScorePopup) {
	for _, sp := range popups {
		DrawTextCentered(dst, sp.Text, sp.X, sp.Y, 1, Fade(sp.Color, sp.Alpha()))
	}
}

// DrawMotes draws the drifting menu particles
func DrawMotes(dst *ebiten.Image, motes []*entity.Mote) {
	for _, m := range motes {
		c := m.Color
		alpha := float64(c.A) / 255
		c.A = 255
		fillCircle(dst, m.X, m.Y, m.Size, Fade(c, alpha))
	}
}

// DrawBullet draws a player bullet in its weapon's colour
func DrawBullet(dst *ebiten.Image, p *entity.Projectile, c color.RGBA) {
	r := p.Size / 2
	fillCircle(dst, p.X, p.Y, r+2, Fade(c, 0.35))
	fillCircle(dst, p.X, p.Y, r, c)
}
