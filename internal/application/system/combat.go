package system

import (
	"math"

	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/config"
)

// CombatSystem fires the player's weapons and resolves player fire
type CombatSystem struct {
	emitter
	config *config.GameConfig

	beamFrames int // frames the beam has been on
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.GameConfig) *CombatSystem {
	return &CombatSystem{config: cfg}
}

// Reset clears beam state between levels
func (s *CombatSystem) Reset() {
	s.beamFrames = 0
}

// Update fires, then checks bullets and the beam against everything hittable
func (s *CombatSystem) Update(a *entity.Arena) {
	s.fire(a)
	s.resolveBullets(a)
	s.resolveBeam(a)
}

// fireAngle is the direction of player fire: against the scroll direction
func fireAngle(o entity.Orientation) float64 {
	if o == entity.Horizontal {
		return 0
	}
	return -math.Pi / 2
}

// muzzle returns the point bullets leave the player from
func muzzle(a *entity.Arena) (x, y float64) {
	p := a.Player
	hb := p.Hitbox()
	cx, cy := hb.Center()
	if a.Orientation == entity.Horizontal {
		return hb.X + hb.W, cy
	}
	return cx, hb.Y
}

func (s *CombatSystem) fire(a *entity.Arena) {
	p := a.Player
	a.BeamActive = false
	if !p.Alive {
		s.beamFrames = 0
		return
	}

	w := s.config.Weapons
	angle := fireAngle(a.Orientation)
	mx, my := muzzle(a)

	weapon := p.Weapon
	if weapon != entity.WeaponXRay {
		s.beamFrames = 0
	}

	switch weapon {
	case entity.WeaponMachineGun:
		if p.FireCooldown > 0 {
			return
		}
		a.Bullets = append(a.Bullets, entity.NewBullet(mx, my, angle, w.BulletSpeed, w.BulletSize, w.Damage))
		p.FireCooldown = w.MachinegunInterval
		s.emit(ShotFired{Weapon: weapon})

	case entity.WeaponShotgun:
		if p.FireCooldown > 0 {
			return
		}
		spread := w.ShotgunSpreadDeg * math.Pi / 180
		for _, off := range []float64{-spread, 0, spread} {
			a.Bullets = append(a.Bullets, entity.NewBullet(mx, my, angle+off, w.BulletSpeed, w.BulletSize, w.Damage))
		}
		p.FireCooldown = w.ShotgunInterval
		s.emit(ShotFired{Weapon: weapon})

	case entity.WeaponXRay:
		a.Beam = s.beamRect(a)
		a.BeamActive = true
		if s.beamFrames == 0 {
			s.emit(ShotFired{Weapon: weapon})
		}
		s.beamFrames++

	default:
		// basic cannon, only while a boss is on the field
		if a.Boss == nil || p.FireCooldown > 0 {
			return
		}
		a.Bullets = append(a.Bullets, entity.NewBullet(mx, my, angle, w.BulletSpeed, w.BulletSize, w.Damage))
		p.FireCooldown = w.CannonInterval
		s.emit(ShotFired{Weapon: entity.WeaponNone})
	}
}

// beamRect spans from the player to the far edge along the scroll axis
func (s *CombatSystem) beamRect(a *entity.Arena) entity.Rect {
	width := s.config.Weapons.BeamWidth
	hb := a.Player.Hitbox()
	cx, cy := hb.Center()
	if a.Orientation == entity.Horizontal {
		x := hb.X + hb.W
		return entity.Rect{X: x, Y: cy - width/2, W: a.Width - x, H: width}
	}
	return entity.Rect{X: cx - width/2, Y: 0, W: width, H: hb.Y}
}

func (s *CombatSystem) resolveBullets(a *entity.Arena) {
	for _, b := range a.Bullets {
		if !b.Active {
			continue
		}
		r := b.Rect()

		for _, o := range a.Obstacles {
			if !o.Active || !r.Overlaps(o.Rect()) {
				continue
			}
			if o.Kind.Destructible() {
				s.destroyObstacle(o)
			}
			if o.Kind.StopsBullets() {
				b.Deactivate()
				break
			}
		}
		if !b.Active {
			continue
		}

		for _, proj := range a.Projectiles {
			if !proj.Active || !r.Overlaps(proj.Rect()) {
				continue
			}
			b.Deactivate()
			if !proj.Indestructible {
				s.destroyProjectile(proj)
			}
			break
		}
		if !b.Active {
			continue
		}

		if a.Boss != nil && a.Boss.IsAlive() && r.Overlaps(a.Boss.Rect()) {
			b.Deactivate()
			s.damageBoss(a.Boss, b.Damage)
		}
	}
}

func (s *CombatSystem) resolveBeam(a *entity.Arena) {
	if !a.BeamActive {
		return
	}
	beam := a.Beam

	for _, o := range a.Obstacles {
		if o.Active && o.Kind.Destructible() && beam.Overlaps(o.Rect()) {
			s.destroyObstacle(o)
		}
	}
	for _, proj := range a.Projectiles {
		if proj.Active && !proj.Indestructible && beam.Overlaps(proj.Rect()) {
			s.destroyProjectile(proj)
		}
	}

	tick := s.config.Weapons.BeamTickFrames
	if a.Boss != nil && a.Boss.IsAlive() && beam.Overlaps(a.Boss.Rect()) && s.beamFrames%tick == 0 {
		s.damageBoss(a.Boss, s.config.Weapons.Damage)
	}
}

func (s *CombatSystem) destroyObstacle(o *entity.Obstacle) {
	o.Deactivate()
	cx, cy := o.Rect().Center()
	s.emit(ObstacleDestroyed{Kind: o.Kind, X: cx, Y: cy, Bonus: s.config.Scoring.MineBonus})
}

func (s *CombatSystem) destroyProjectile(p *entity.Projectile) {
	p.Deactivate()
	s.emit(ProjectileDestroyed{X: p.X, Y: p.Y, Bonus: s.config.Scoring.ProjectileBonus})
}

func (s *CombatSystem) damageBoss(b *entity.Boss, damage int) {
	b.TakeDamage(damage)
	cx, cy := b.Center()
	s.emit(BossHit{X: cx, Y: cy, Health: b.Health})
}
