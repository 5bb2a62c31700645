package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/config"
)

// BossOutcome is how an encounter ended on a frame, if it did
type BossOutcome int

const (
	BossOngoing BossOutcome = iota
	BossOutcomeDefeated
	BossOutcomeEscaped
)

const (
	bossEntrySpeed   = 2.0  // pixels per frame while sliding in
	bossStationInset = 40.0 // distance from the spawn edge
	bossSwayFreq     = 1.2  // radians per second
	bossSwayMax      = 100.0
	spiralStepDeg    = 17.0
	wallSlotFactor   = 2.0 // slot width in projectile sizes
)

// BossSystem spawns, moves and fires the level boss
type BossSystem struct {
	emitter
	config  *config.GameConfig
	rng     *rand.Rand
	spawned bool // boss already appeared this level
}

// NewBossSystem creates a new boss system
func NewBossSystem(cfg *config.GameConfig, rng *rand.Rand) *BossSystem {
	return &BossSystem{config: cfg, rng: rng}
}

// Reset arms the system for a new level
func (s *BossSystem) Reset() {
	s.spawned = false
}

// Health returns the boss health for a level. Once the roster is
// exhausted the last boss gains bossHealthPerLevel for every level past 1.
func (s *BossSystem) Health(level int) int {
	bc := s.config.Boss(level)
	if level <= len(s.config.Bosses) {
		return bc.Health
	}
	return bc.Health + (level-1)*s.config.Levels.BossHealthPerLevel
}

// Update spawns the boss once the level timer runs out, then moves it,
// fires its patterns and counts down its escape timer.
func (s *BossSystem) Update(a *entity.Arena, levelSeconds float64, level int, dt float64) BossOutcome {
	if a.Boss == nil {
		if !s.spawned && levelSeconds >= s.config.Levels.Duration {
			s.spawn(a, level)
		}
		return BossOngoing
	}

	b := a.Boss
	bc := s.config.Boss(b.Level)

	if b.HitTimer > 0 {
		b.HitTimer = math.Max(0, b.HitTimer-dt)
	}

	s.move(a, b, dt)

	if b.Phase == entity.BossFighting {
		b.FireTimer--
		if b.FireTimer <= 0 {
			s.fire(a, b, bc)
			b.FireTimer = bc.FireInterval
		}
	}

	b.TimeLeft -= dt
	if b.TimeLeft <= 0 {
		b.Active = false
		a.Boss = nil
		s.emit(BossEscaped{Level: b.Level, Name: b.Name})
		return BossOutcomeEscaped
	}
	return BossOngoing
}

// Resolve ends the encounter if player fire brought the boss down
func (s *BossSystem) Resolve(a *entity.Arena) BossOutcome {
	b := a.Boss
	if b == nil || b.Health > 0 {
		return BossOngoing
	}

	b.Active = false
	a.Boss = nil
	for _, p := range a.Projectiles {
		p.Deactivate()
	}

	cx, cy := b.Center()
	s.emit(BossDefeated{
		Level: b.Level,
		Name:  b.Name,
		X:     cx,
		Y:     cy,
		Bonus: s.config.Scoring.BossBonus * b.Level,
	})
	return BossOutcomeDefeated
}

func (s *BossSystem) spawn(a *entity.Arena, level int) {
	bc := s.config.Boss(level)
	roster := min(level, len(s.config.Bosses)) - 1
	size := bc.Size

	var x, y, stationX, stationY float64
	if a.Orientation == entity.Horizontal {
		stationX = a.Width - size - bossStationInset
		stationY = (a.Height - size) / 2
		x, y = a.Width, stationY
	} else {
		stationX = (a.Width - size) / 2
		stationY = bossStationInset
		x, y = stationX, -size
	}

	b := entity.NewBoss(level, roster, bc.Name, x, y, size, s.Health(level), bc.Duration)
	b.StationX = stationX
	b.StationY = stationY
	b.FireTimer = bc.FireInterval

	a.Boss = b
	s.spawned = true
	s.emit(BossSpawned{Level: level, Name: bc.Name})
}

func (s *BossSystem) move(a *entity.Arena, b *entity.Boss, dt float64) {
	if b.Phase == entity.BossEntering {
		if a.Orientation == entity.Horizontal {
			b.X = math.Max(b.StationX, b.X-bossEntrySpeed)
			if b.X == b.StationX {
				b.Phase = entity.BossFighting
			}
		} else {
			b.Y = math.Min(b.StationY, b.Y+bossEntrySpeed)
			if b.Y == b.StationY {
				b.Phase = entity.BossFighting
			}
		}
		return
	}

	b.SwayTime += dt
	amp := math.Min(bossSwayMax, math.Max(0, (a.CrossExtent()-b.Size)/2-10))
	offset := math.Sin(b.SwayTime*bossSwayFreq) * amp
	if a.Orientation == entity.Horizontal {
		b.Y = b.StationY + offset
	} else {
		b.X = b.StationX + offset
	}
}

// fire shoots the next pattern of the boss
func (s *BossSystem) fire(a *entity.Arena, b *entity.Boss, bc config.BossConfig) {
	pattern := bc.Patterns[b.PatternIndex%len(bc.Patterns)]
	b.PatternIndex = (b.PatternIndex + 1) % len(bc.Patterns)
	b.Volleys++
	hard := bc.IndestructibleEvery > 0 && b.Volleys%bc.IndestructibleEvery == 0

	bx, by := b.Center()
	px, py := a.Player.Center()
	aim := entity.AngleTo(bx, by, px, py)

	shoot := func(x, y, angle float64) {
		a.Projectiles = append(a.Projectiles,
			entity.NewBossShot(x, y, angle, bc.ProjectileSpeed, bc.ProjectileSize, hard))
	}

	switch pattern.Type {
	case "aimed":
		shoot(bx, by, aim)

	case "spread":
		n := countOr(pattern.Count, 3)
		arc := pattern.Arc * math.Pi / 180
		if n == 1 {
			shoot(bx, by, aim)
			break
		}
		for i := range n {
			shoot(bx, by, aim-arc/2+arc*float64(i)/float64(n-1))
		}

	case "ring":
		n := countOr(pattern.Count, 8)
		for i := range n {
			shoot(bx, by, 2*math.Pi*float64(i)/float64(n))
		}

	case "spiral":
		n := countOr(pattern.Count, 6)
		base := b.SpiralAngle * math.Pi / 180
		for i := range n {
			shoot(bx, by, base+2*math.Pi*float64(i)/float64(n))
		}
		b.SpiralAngle = math.Mod(b.SpiralAngle+spiralStepDeg, 360)

	case "wall":
		s.fireWall(a, bx, by, bc, pattern.Gap, shoot)
	}
}

// fireWall fills the cross axis with shots, leaving gap slots free on each
// side of a random slot
func (s *BossSystem) fireWall(a *entity.Arena, bx, by float64, bc config.BossConfig, gap int, shoot func(x, y, angle float64)) {
	slot := bc.ProjectileSize * wallSlotFactor
	n := int(a.CrossExtent() / slot)
	if n <= 0 {
		return
	}
	hole := s.rng.Intn(n)

	for i := range n {
		if i >= hole-gap && i <= hole+gap {
			continue
		}
		c := slot*float64(i) + slot/2
		if a.Orientation == entity.Horizontal {
			shoot(bx, c, math.Pi)
		} else {
			shoot(c, by, math.Pi/2)
		}
	}
}

func countOr(n, fallback int) int {
	if n > 0 {
		return n
	}
	return fallback
}
