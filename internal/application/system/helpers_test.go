package system

import (
	"math/rand"

	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestGameConfig() *config.GameConfig {
	kind := func(weight, minLevel int) config.ObstacleKindConfig {
		return config.ObstacleKindConfig{Color: "#ffffff", Weight: weight, MinLevel: minLevel}
	}
	return &config.GameConfig{
		Title: "test",
		Display: config.DisplayConfig{
			Vertical:   config.ScreenSize{Width: 400, Height: 600},
			Horizontal: config.ScreenSize{Width: 800, Height: 500},
			Scale:      1,
			TPS:        60,
		},
		Player: config.PlayerConfig{
			Size:         40,
			ShrinkFactor: 0.6,
			TrailLength:  4,
			Roles: map[string]config.RoleConfig{
				"spaceship": {Color: "#4682b4", MoveSpeed: 5},
				"aeroplane": {Color: "#3cb371", MoveSpeed: 5.5},
				"dragon":    {Color: "#ff8c00", MoveSpeed: 4.5},
			},
		},
		Difficulties: map[string]config.DifficultyConfig{
			"easy":   {Blocks: 1, BaseSpeed: 3, SpawnRate: 60},
			"medium": {Blocks: 2, BaseSpeed: 4, SpawnRate: 50},
			"hard":   {Blocks: 3, BaseSpeed: 5, SpawnRate: 40},
		},
		Obstacles: config.ObstaclesConfig{
			Size:           40,
			BarWidthFactor: 2.5,
			Kinds: map[string]config.ObstacleKindConfig{
				"mine":       kind(50, 1),
				"bird":       kind(12, 1),
				"turtle":     kind(12, 1),
				"mushroom":   kind(12, 1),
				"machinegun": kind(5, 1),
				"shotgun":    kind(4, 2),
				"xray":       kind(3, 3),
				"steelbar":   kind(6, 2),
			},
		},
		Effects: config.EffectsConfig{
			BoostSeconds:  5,
			BoostFactor:   1.5,
			SlowSeconds:   5,
			SlowFactor:    0.5,
			ShrinkSeconds: 10,
		},
		Weapons: config.WeaponsConfig{
			Duration:           8,
			BulletSpeed:        10,
			BulletSize:         6,
			Damage:             1,
			MachinegunInterval: 6,
			ShotgunInterval:    18,
			ShotgunSpreadDeg:   15,
			CannonInterval:     20,
			BeamWidth:          20,
			BeamTickFrames:     4,
		},
		Levels: config.LevelsConfig{
			Duration:            30,
			TransitionSeconds:   2,
			BossDefeatedSeconds: 2.5,
			SpeedRamp:           0.1,
			LevelSpeedBonus:     0.5,
			BossHealthPerLevel:  20,
			MinSpawnInterval:    20,
			BossFight:           config.BossFightConfig{SpawnKinds: []string{"bird", "turtle"}},
		},
		Scoring: config.ScoringConfig{
			PerSecond:       10,
			MineBonus:       25,
			ProjectileBonus: 5,
			BossBonus:       500,
		},
		Bosses: []config.BossConfig{
			{
				Name: "FIRST", Color: "#6496ff", Size: 90, Health: 40, Duration: 25,
				FireInterval: 50, ProjectileSpeed: 4, ProjectileSize: 16,
				Patterns: []config.PatternConfig{{Type: "aimed"}},
			},
			{
				Name: "SECOND", Color: "#c896ff", Size: 100, Health: 60, Duration: 25,
				FireInterval: 30, ProjectileSpeed: 5, ProjectileSize: 14, IndestructibleEvery: 2,
				Patterns: []config.PatternConfig{{Type: "spread", Count: 5, Arc: 60}, {Type: "ring", Count: 8}},
			},
		},
	}
}

// onlyKinds zeroes every spawn weight except the given kinds
func onlyKinds(cfg *config.GameConfig, kinds ...string) {
	for name, k := range cfg.Obstacles.Kinds {
		k.Weight = 0
		for _, keep := range kinds {
			if keep == name {
				k.Weight = 10
			}
		}
		cfg.Obstacles.Kinds[name] = k
	}
}

func createTestArena(o entity.Orientation) *entity.Arena {
	return LoadArena(createTestGameConfig(), o, entity.RoleSpaceship)
}

// recorder collects emitted events
type recorder struct {
	events []Event
}

func (r *recorder) record(ev Event) {
	r.events = append(r.events, ev)
}

func eventsOf[T Event](r *recorder) []T {
	var out []T
	for _, ev := range r.events {
		if e, ok := ev.(T); ok {
			out = append(out, e)
		}
	}
	return out
}
