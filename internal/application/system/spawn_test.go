package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wudong/internal/domain/entity"
)

func TestSpawnSystem_Interval(t *testing.T) {
	cfg := createTestGameConfig()
	sys := NewSpawnSystem(cfg, cfg.Difficulties["easy"], testRNG())

	assert.Equal(t, 60, sys.Interval(0))
	assert.Equal(t, 60, sys.Interval(0.9))
	assert.Equal(t, 50, sys.Interval(10.5))
	assert.Equal(t, 20, sys.Interval(40))
	assert.Equal(t, 20, sys.Interval(500), "never below the minimum interval")
}

func TestSpawnSystem_TickTiming(t *testing.T) {
	cfg := createTestGameConfig()
	sys := NewSpawnSystem(cfg, cfg.Difficulties["hard"], testRNG())
	a := createTestArena(entity.Vertical)

	for range 39 {
		sys.Update(a, 0, 1)
	}
	assert.Empty(t, a.Obstacles)

	sys.Update(a, 0, 1)
	assert.Len(t, a.Obstacles, 3, "hard spawns three per tick")

	for range 40 {
		sys.Update(a, 0, 1)
	}
	assert.Len(t, a.Obstacles, 6)
}

func TestSpawnSystem_Placement(t *testing.T) {
	t.Run("vertical spawns above the screen", func(t *testing.T) {
		cfg := createTestGameConfig()
		onlyKinds(cfg, "mine")
		sys := NewSpawnSystem(cfg, cfg.Difficulties["hard"], testRNG())
		a := createTestArena(entity.Vertical)

		for range 400 {
			sys.Update(a, 0, 1)
		}
		require.NotEmpty(t, a.Obstacles)
		for _, o := range a.Obstacles {
			assert.Equal(t, entity.KindMine, o.Kind)
			assert.Equal(t, -40.0, o.Y)
			assert.GreaterOrEqual(t, o.X, 0.0)
			assert.LessOrEqual(t, o.X, 360.0)
		}
	})

	t.Run("horizontal spawns right of the screen", func(t *testing.T) {
		cfg := createTestGameConfig()
		onlyKinds(cfg, "bird")
		sys := NewSpawnSystem(cfg, cfg.Difficulties["medium"], testRNG())
		a := createTestArena(entity.Horizontal)

		for range 400 {
			sys.Update(a, 0, 1)
		}
		require.NotEmpty(t, a.Obstacles)
		for _, o := range a.Obstacles {
			assert.Equal(t, 800.0, o.X)
			assert.GreaterOrEqual(t, o.Y, 0.0)
			assert.LessOrEqual(t, o.Y, 460.0)
		}
	})

	t.Run("steel bars are wide and thin", func(t *testing.T) {
		cfg := createTestGameConfig()
		onlyKinds(cfg, "steelbar")
		sys := NewSpawnSystem(cfg, cfg.Difficulties["easy"], testRNG())
		a := createTestArena(entity.Vertical)

		for range 60 {
			sys.Update(a, 0, 2)
		}
		require.Len(t, a.Obstacles, 1)
		bar := a.Obstacles[0]
		assert.Equal(t, 100.0, bar.W)
		assert.Equal(t, 20.0, bar.H)
		assert.LessOrEqual(t, bar.X, 300.0)
	})
}

func TestSpawnSystem_MinLevel(t *testing.T) {
	cfg := createTestGameConfig()
	onlyKinds(cfg, "xray")
	sys := NewSpawnSystem(cfg, cfg.Difficulties["easy"], testRNG())
	a := createTestArena(entity.Vertical)

	for range 120 {
		sys.Update(a, 0, 2)
	}
	assert.Empty(t, a.Obstacles, "x-ray unlocks at level 3")

	for range 60 {
		sys.Update(a, 0, 3)
	}
	require.Len(t, a.Obstacles, 1)
	assert.Equal(t, entity.KindXRay, a.Obstacles[0].Kind)
}

func TestSpawnSystem_BossFight(t *testing.T) {
	cfg := createTestGameConfig()
	sys := NewSpawnSystem(cfg, cfg.Difficulties["hard"], testRNG())
	a := createTestArena(entity.Vertical)
	a.Boss = entity.NewBoss(1, 0, "FIRST", 155, 40, 90, 40, 25)

	for range 400 {
		sys.Update(a, 0, 1)
	}

	assert.Len(t, a.Obstacles, 10, "one obstacle per tick during a boss fight")
	for _, o := range a.Obstacles {
		assert.Contains(t, []entity.ObstacleKind{entity.KindBird, entity.KindTurtle}, o.Kind)
	}
}

func TestSpawnSystem_WeightedDistribution(t *testing.T) {
	cfg := createTestGameConfig()
	sys := NewSpawnSystem(cfg, cfg.Difficulties["easy"], testRNG())

	counts := map[entity.ObstacleKind]int{}
	for range 10000 {
		kind, ok := sys.pickKind(1, false)
		require.True(t, ok)
		counts[kind]++
	}

	// level 1 weights: mine 50 of 91
	assert.InDelta(t, 50.0/91.0, float64(counts[entity.KindMine])/10000, 0.03)
	assert.Zero(t, counts[entity.KindShotgun])
	assert.Zero(t, counts[entity.KindXRay])
	assert.Zero(t, counts[entity.KindSteelBar])
}

func TestSpawnSystem_Reset(t *testing.T) {
	cfg := createTestGameConfig()
	sys := NewSpawnSystem(cfg, cfg.Difficulties["easy"], testRNG())
	a := createTestArena(entity.Vertical)

	for range 59 {
		sys.Update(a, 0, 1)
	}
	sys.Reset()
	sys.Update(a, 0, 1)
	assert.Empty(t, a.Obstacles)
}
