package playing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wudong/internal/application/state"
	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/render"
)

var (
	colorHUD     = color.RGBA{230, 230, 255, 255}
	colorHUDDim  = color.RGBA{150, 150, 190, 255}
	colorShadow  = color.RGBA{0, 0, 0, 150}
	colorDimming = color.RGBA{0, 0, 0, 170}
)

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	if p.world == nil {
		p.world = ebiten.NewImage(p.screenW, p.screenH)
	}
	p.world.Clear()
	p.drawField(p.world)

	// Apply screen shake
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(p.shakeX, p.shakeY)
	screen.DrawImage(p.world, op)

	// Draw UI - always on top
	p.drawHUD(screen)

	// Draw state overlays
	switch p.State() {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOver(screen)
	case state.StateLevelTransition:
		p.drawTransition(screen)
	default:
		p.drawBanner(screen)
	}

	p.background.DrawScanlines(screen)
}

func (p *Playing) drawField(dst *ebiten.Image) {
	s := p.session
	a := s.Arena
	pl := a.Player
	frame := s.Frame

	p.background.Draw(dst)
	if pl.Boosted() && s.State == state.StatePlaying {
		render.DrawSpeedLines(dst, p.fx, a.Width, a.Height, a.Orientation, s.Speed())
	}

	for _, ob := range a.Obstacles {
		render.DrawObstacle(dst, ob, p.colors.obstacles[ob.Kind])
	}

	if a.BeamActive {
		render.DrawBeam(dst, a.Beam, a.Orientation, frame)
	}
	bullet := entity.WeaponColors[pl.Weapon]
	for _, b := range a.Bullets {
		render.DrawBullet(dst, b, bullet)
	}

	if b := a.Boss; b != nil && b.Active {
		bc := p.colors.boss(b.Roster)
		render.DrawBoss(dst, b, bc.body, bc.glow, frame)
	}
	if len(a.Projectiles) > 0 {
		bc := p.colors.boss(s.Level - 1)
		for _, pr := range a.Projectiles {
			render.DrawBossProjectile(dst, pr, bc.body, bc.glow, frame)
		}
	}

	if pl.Alive {
		render.DrawTrail(dst, pl, p.colors.glow)
		hb := pl.Hitbox()
		render.DrawPlayer(dst, pl.Role, hb.X, hb.Y, hb.W, p.colors.body, float64(frame)/60, a.Orientation)
	}

	render.DrawParticles(dst, p.particles)
	render.DrawPopups(dst, p.popups)
}

func (p *Playing) drawHUD(dst *ebiten.Image) {
	s := p.session
	pl := s.Arena.Player
	cfg := p.ctx.Config

	shadowText(dst, "SCORE "+render.FormatScore(s.Score()), 10, 8, colorHUD)
	shadowText(dst, fmt.Sprintf("LEVEL %d", s.Level), 10, 24, colorNeonCyan)
	shadowText(dst, fmt.Sprintf("SPEED %.1f", s.Speed()), 10, 40, colorHUDDim)

	y := 60.0
	effect := func(active bool, kind entity.ObstacleKind, label string, left float64) {
		if !active {
			return
		}
		shadowText(dst, fmt.Sprintf("%s %.1fs", label, left), 10, y, p.colors.obstacles[kind])
		y += 16
	}
	effect(pl.Boosted(), entity.KindBird, "BOOST", pl.BoostTimer)
	effect(pl.Slowed(), entity.KindTurtle, "SLOW", pl.SlowTimer)
	effect(pl.Shrunk(), entity.KindMushroom, "SHRINK", pl.ShrinkTimer)

	if pl.Armed() {
		c := entity.WeaponColors[pl.Weapon]
		shadowText(dst, strings.ToUpper(pl.Weapon.String()), 10, y, c)
		render.DrawBar(dst, 10, y+16, 90, 4, pl.WeaponTimer/cfg.Weapons.Duration, c)
	}

	if b := s.Arena.Boss; b != nil && b.Active {
		x := 130.0
		w := float64(p.screenW) - x - 10
		render.DrawBossBar(dst, b, x, 8, w, 26, p.colors.boss(b.Roster).body)
		left := fmt.Sprintf("ESCAPES IN %.0fs", max(b.TimeLeft, 0))
		render.DrawText(dst, left, x+w-render.TextWidth(left), 38, colorHUDDim)
	}
}

func (p *Playing) drawBanner(dst *ebiten.Image) {
	if p.banner.frames <= 0 {
		return
	}
	alpha := min(1, float64(p.banner.frames)/20)
	cy := float64(p.screenH) / 3
	p.drawBannerText(dst, p.banner.title, p.banner.sub, cy, p.banner.accent, alpha)
}

func (p *Playing) drawTransition(dst *ebiten.Image) {
	render.DrawOverlay(dst, render.Fade(colorDimming, 0.6))
	cy := float64(p.screenH)/2 - 30
	sub := fmt.Sprintf("GET READY  %.0f", p.session.StateTimer+0.5)
	p.drawBannerText(dst, fmt.Sprintf("LEVEL %d", p.session.Level+1), sub, cy, colorNeonCyan, 1)
}

func (p *Playing) drawBannerText(dst *ebiten.Image, title, sub string, cy float64, accent color.RGBA, alpha float64) {
	cx := float64(p.screenW) / 2
	scale := 3.0
	if render.TextWidth(title)*scale > float64(p.screenW)-20 {
		scale = 2
	}
	render.DrawTextCentered(dst, title, cx+2, cy+2, scale, render.Fade(colorShadow, alpha))
	render.DrawTextCentered(dst, title, cx, cy, scale, render.Fade(accent, alpha))
	if sub != "" {
		render.DrawTextCentered(dst, sub, cx, cy+render.FontHeight*scale+8, 1, render.Fade(colorHUD, alpha))
	}
}

func (p *Playing) drawPauseOverlay(dst *ebiten.Image) {
	render.DrawOverlay(dst, colorDimming)
	cx, cy := float64(p.screenW)/2, float64(p.screenH)/2
	render.DrawTextCentered(dst, "PAUSED", cx, cy-40, 3, colorNeonCyan)
	render.DrawTextCentered(dst, "ESC: RESUME   Q: MENU", cx, cy+10, 1, colorHUD)
}

func (p *Playing) drawGameOver(dst *ebiten.Image) {
	render.DrawOverlay(dst, colorDimming)

	s := p.session
	w, h := 320.0, 265.0
	cx, cy := float64(p.screenW)/2, float64(p.screenH)/2
	x, y := cx-w/2, cy-125.0
	render.DrawPanel(dst, x, y-40, w, h, "", colorDanger)

	render.DrawTextCentered(dst, "GAME OVER", cx, y-25, 3, colorDanger)
	render.DrawTextCentered(dst, "SCORE "+render.FormatScore(s.Score()), cx, y+20, 2, colorHUD)
	detail := fmt.Sprintf("LEVEL %d", s.Level)
	if s.DeathCause != "" {
		detail += "  HIT BY " + strings.ToUpper(s.DeathCause)
	}
	render.DrawTextCentered(dst, detail, cx, y+55, 1, colorHUDDim)

	if p.qualifies {
		render.DrawTextCentered(dst, "NEW HIGH SCORE!", cx, y+80, 1, colorGold)
		render.DrawTextCentered(dst, "ENTER: SAVE YOUR NAME", cx, y+96, 1, colorHUD)
	} else {
		render.DrawTextCentered(dst, "ENTER: LEADERBOARD", cx, y+88, 1, colorHUD)
	}

	mx, my := p.controls.Cursor()
	p.restartBtn.Draw(dst, p.restartBtn.Contains(mx, my))
	p.menuBtn.Draw(dst, p.menuBtn.Contains(mx, my))
}

func shadowText(dst *ebiten.Image, s string, x, y float64, c color.RGBA) {
	render.DrawText(dst, s, x+1, y+1, colorShadow)
	render.DrawText(dst, s, x, y, c)
}
