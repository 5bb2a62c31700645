package system

import (
	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/config"
)

// MovementSystem moves the player, obstacles and projectiles
type MovementSystem struct {
	config     *config.GameConfig
	difficulty config.DifficultyConfig
	role       config.RoleConfig
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(cfg *config.GameConfig, difficulty config.DifficultyConfig, role config.RoleConfig) *MovementSystem {
	return &MovementSystem{
		config:     cfg,
		difficulty: difficulty,
		role:       role,
	}
}

// BaseSpeed returns the scroll speed before effects, in pixels per frame
func (s *MovementSystem) BaseSpeed(elapsed float64, level int) float64 {
	return s.difficulty.BaseSpeed +
		elapsed*s.config.Levels.SpeedRamp +
		float64(level-1)*s.config.Levels.LevelSpeedBonus
}

// Speed applies the player's boost or slow to the base speed
func (s *MovementSystem) Speed(elapsed float64, level int, p *entity.Player) float64 {
	base := s.BaseSpeed(elapsed, level)
	switch {
	case p.Boosted():
		return base * s.config.Effects.BoostFactor
	case p.Slowed():
		return base * s.config.Effects.SlowFactor
	default:
		return base
	}
}

// MovePlayer slides the player along the cross axis, clamped to the field
func (s *MovementSystem) MovePlayer(a *entity.Arena, in InputState) {
	p := a.Player
	dir := in.Axis(a.Orientation)
	limit := a.CrossExtent() - p.BaseSize

	if a.Orientation == entity.Horizontal {
		p.Y = clampf(p.Y+dir*s.role.MoveSpeed, 0, limit)
	} else {
		p.X = clampf(p.X+dir*s.role.MoveSpeed, 0, limit)
	}
	p.RecordTrail()
}

// MoveObstacles advances every obstacle by speed and drops the ones that left the field
func (s *MovementSystem) MoveObstacles(a *entity.Arena, speed float64) {
	for _, o := range a.Obstacles {
		if !o.Active {
			continue
		}
		if a.Orientation == entity.Horizontal {
			o.X -= speed
		} else {
			o.Y += speed
		}
		o.Age++
		if a.Passed(o.Rect()) {
			o.Deactivate()
		}
	}
}

// MoveProjectiles advances bullets and boss shots, dropping those off-screen
func (s *MovementSystem) MoveProjectiles(a *entity.Arena) {
	for _, list := range [][]*entity.Projectile{a.Bullets, a.Projectiles} {
		for _, p := range list {
			p.Update()
			if p.Active && a.Outside(p.Rect()) {
				p.Deactivate()
			}
		}
	}
}

func clampf(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
