package system

import (
	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/config"
)

// CollisionSystem resolves contact between the player and everything else
type CollisionSystem struct {
	emitter
	config *config.GameConfig
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(cfg *config.GameConfig) *CollisionSystem {
	return &CollisionSystem{config: cfg}
}

// Update checks the player against obstacles, the boss and boss shots.
// Returns true if the player died this frame.
func (s *CollisionSystem) Update(a *entity.Arena) bool {
	p := a.Player
	if !p.Alive {
		return false
	}
	hb := p.Hitbox()

	// Obstacles, in spawn order
	for _, o := range a.Obstacles {
		if !o.Active || !hb.Overlaps(o.Rect()) {
			continue
		}
		if o.Kind.Kills() {
			s.kill(p, string(o.Kind))
			return true
		}
		s.apply(p, o.Kind)
		o.Deactivate()
		cx, cy := o.Rect().Center()
		s.emit(PickupCollected{Kind: o.Kind, X: cx, Y: cy})
	}

	// Boss body
	if a.Boss != nil && a.Boss.Active && hb.Overlaps(a.Boss.Rect()) {
		s.kill(p, "boss")
		return true
	}

	// Boss shots
	for _, proj := range a.Projectiles {
		if proj.Active && hb.Overlaps(proj.Rect()) {
			proj.Deactivate()
			s.kill(p, "projectile")
			return true
		}
	}

	return false
}

func (s *CollisionSystem) apply(p *entity.Player, kind entity.ObstacleKind) {
	fx := s.config.Effects
	switch kind.Effect() {
	case entity.EffectBoost:
		p.ApplyBoost(fx.BoostSeconds)
	case entity.EffectSlow:
		p.ApplySlow(fx.SlowSeconds)
	case entity.EffectShrink:
		p.ApplyShrink(fx.ShrinkSeconds, s.config.Player.ShrinkFactor)
	case entity.EffectWeapon:
		p.Arm(kind.Weapon(), s.config.Weapons.Duration)
	}
}

func (s *CollisionSystem) kill(p *entity.Player, cause string) {
	p.Alive = false
	x, y := p.Center()
	s.emit(PlayerDied{X: x, Y: y, Cause: cause})
}
