package system

import (
	"math/rand"

	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/config"
)

// SpawnSystem schedules obstacle spawn ticks
type SpawnSystem struct {
	config     *config.GameConfig
	difficulty config.DifficultyConfig
	rng        *rand.Rand
	timer      int // frames since the last spawn tick
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(cfg *config.GameConfig, difficulty config.DifficultyConfig, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{
		config:     cfg,
		difficulty: difficulty,
		rng:        rng,
	}
}

// Interval returns the frames between spawn ticks after elapsed seconds of play
func (s *SpawnSystem) Interval(elapsed float64) int {
	return max(s.config.Levels.MinSpawnInterval, s.difficulty.SpawnRate-int(elapsed))
}

// Reset restarts the spawn timer
func (s *SpawnSystem) Reset() {
	s.timer = 0
}

// Update advances the spawn timer by one frame and spawns when it fires.
// While a boss is on the field only boss-fight kinds spawn, one per tick.
func (s *SpawnSystem) Update(a *entity.Arena, elapsed float64, level int) {
	s.timer++
	if s.timer < s.Interval(elapsed) {
		return
	}
	s.timer = 0

	bossFight := a.Boss != nil
	count := s.difficulty.Blocks
	if bossFight {
		count = 1
	}

	for range count {
		kind, ok := s.pickKind(level, bossFight)
		if !ok {
			return
		}
		a.Obstacles = append(a.Obstacles, s.place(a, kind))
	}
}

// pickKind draws a weighted random kind among those unlocked at level
func (s *SpawnSystem) pickKind(level int, bossFight bool) (entity.ObstacleKind, bool) {
	names := config.ObstacleKindNames
	if bossFight && len(s.config.Levels.BossFight.SpawnKinds) > 0 {
		names = s.config.Levels.BossFight.SpawnKinds
	}

	total := 0
	for _, name := range names {
		k := s.config.Obstacles.Kinds[name]
		if k.MinLevel <= level {
			total += k.Weight
		}
	}
	if total <= 0 {
		return "", false
	}

	roll := s.rng.Intn(total)
	for _, name := range names {
		k := s.config.Obstacles.Kinds[name]
		if k.MinLevel > level || k.Weight <= 0 {
			continue
		}
		if roll < k.Weight {
			return entity.ObstacleKind(name), true
		}
		roll -= k.Weight
	}
	return "", false
}

// place builds an obstacle of kind at a random cross-axis position on the spawn edge
func (s *SpawnSystem) place(a *entity.Arena, kind entity.ObstacleKind) *entity.Obstacle {
	size := s.config.Obstacles.Size
	along, across := size, size // extent along the scroll axis, along the cross axis
	if kind == entity.KindSteelBar {
		across = size * s.config.Obstacles.BarWidthFactor
		along = size / 2
	}

	span := int(a.CrossExtent() - across)
	cross := 0.0
	if span > 0 {
		cross = float64(s.rng.Intn(span + 1))
	}

	if a.Orientation == entity.Horizontal {
		return entity.NewObstacle(a.NextID(), kind, a.Width, cross, along, across)
	}
	return entity.NewObstacle(a.NextID(), kind, cross, -along, across, along)
}
