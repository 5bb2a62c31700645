package playing

import (
	"fmt"
	"image/color"

	"github.com/younwookim/wudong/internal/application/system"
	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/audio"
	"github.com/younwookim/wudong/internal/infrastructure/config"
	"github.com/younwookim/wudong/internal/infrastructure/render"
)

var (
	colorNeonCyan = color.RGBA{0, 255, 255, 255}
	colorGold     = color.RGBA{255, 215, 0, 255}
	colorDanger   = color.RGBA{255, 60, 60, 255}
	colorWhite    = color.RGBA{255, 255, 255, 255}
)

// palette resolves config colours once per run
type palette struct {
	body      color.RGBA
	glow      color.RGBA
	obstacles map[entity.ObstacleKind]color.RGBA
	bosses    []bossColors
}

type bossColors struct {
	body, glow color.RGBA
}

func newPalette(cfg *config.GameConfig, role entity.Role) palette {
	rc := cfg.Player.Roles[string(role)]
	p := palette{
		body:      rc.Color.RGBA(),
		glow:      rc.Glow.RGBA(),
		obstacles: make(map[entity.ObstacleKind]color.RGBA, len(cfg.Obstacles.Kinds)),
	}
	for name, kc := range cfg.Obstacles.Kinds {
		p.obstacles[entity.ObstacleKind(name)] = kc.Color.RGBA()
	}
	for _, bc := range cfg.Bosses {
		p.bosses = append(p.bosses, bossColors{body: bc.Color.RGBA(), glow: bc.Glow.RGBA()})
	}
	return p
}

func (pl palette) boss(roster int) bossColors {
	if len(pl.bosses) == 0 {
		return bossColors{body: colorDanger, glow: colorWhite}
	}
	return pl.bosses[min(max(roster, 0), len(pl.bosses)-1)]
}

// soundFor maps a simulation event to its sound effect
func soundFor(ev system.Event) (audio.Sound, bool) {
	switch e := ev.(type) {
	case system.ShotFired:
		return audio.SoundShoot, true
	case system.PickupCollected:
		switch e.Kind.Effect() {
		case entity.EffectBoost:
			return audio.SoundBoost, true
		case entity.EffectSlow:
			return audio.SoundSlow, true
		case entity.EffectShrink:
			return audio.SoundShrink, true
		}
		return audio.SoundPickup, true
	case system.ObstacleDestroyed:
		return audio.SoundExplode, true
	case system.BossHit:
		return audio.SoundBossHit, true
	case system.BossDefeated:
		return audio.SoundBossDefeated, true
	case system.PlayerDied:
		return audio.SoundGameOver, true
	case system.LevelStarted:
		return audio.SoundConfirm, e.Level > 1
	}
	return 0, false
}

func (p *Playing) play(s audio.Sound) {
	if p.ctx.Audio != nil {
		p.ctx.Audio.Play(s)
	}
}

// onEvent turns simulation events into sound, particles, popups and shake
func (p *Playing) onEvent(ev system.Event) {
	if s, ok := soundFor(ev); ok {
		p.play(s)
	}

	switch e := ev.(type) {
	case system.LevelStarted:
		p.showBanner(fmt.Sprintf("LEVEL %d", e.Level), "GO!", colorNeonCyan)

	case system.PickupCollected:
		c := p.colors.obstacles[e.Kind]
		p.particles.Emit(e.X, e.Y, c, 12, 3, true, 3)
		label := p.ctx.Config.Obstacles.Kinds[string(e.Kind)].Label
		p.addPopup(e.X, e.Y, label, c)

	case system.ObstacleDestroyed:
		p.particles.Emit(e.X, e.Y, p.colors.obstacles[e.Kind], 20, 4, true, 4)
		p.addPopup(e.X, e.Y, fmt.Sprintf("+%d", e.Bonus), colorGold)

	case system.ProjectileDestroyed:
		p.particles.Emit(e.X, e.Y, colorWhite, 6, 2, false, 2)
		p.addPopup(e.X, e.Y, fmt.Sprintf("+%d", e.Bonus), colorGold)

	case system.BossSpawned:
		p.showBanner("WARNING", e.Name, colorDanger)

	case system.BossHit:
		p.particles.Emit(e.X, e.Y, colorWhite, 4, 2, true, 2)
		p.startHitstop()

	case system.BossDefeated:
		bc := p.colors.boss(e.Level - 1)
		p.particles.Emit(e.X, e.Y, bc.body, 60, 6, true, 8)
		p.particles.Emit(e.X, e.Y, bc.glow, 30, 4, true, 5)
		p.addPopup(e.X, e.Y, fmt.Sprintf("+%s", render.FormatScore(e.Bonus)), colorGold)
		p.showBanner(e.Name+" DEFEATED", fmt.Sprintf("BONUS +%s", render.FormatScore(e.Bonus)), colorGold)
		p.startShake()

	case system.BossEscaped:
		p.showBanner(e.Name+" ESCAPED", "NO BONUS", colorDanger)

	case system.PlayerDied:
		p.particles.Emit(e.X, e.Y, colorDanger, 40, 5, true, 6)
		p.particles.Emit(e.X, e.Y, p.colors.glow, 20, 3, true, 4)
		p.startShake()
	}
}
