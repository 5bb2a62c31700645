package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Title        string                      `yaml:"title"`
	Display      DisplayConfig               `yaml:"display"`
	Player       PlayerConfig                `yaml:"player"`
	Difficulties map[string]DifficultyConfig `yaml:"difficulties"`
	Obstacles    ObstaclesConfig             `yaml:"obstacles"`
	Effects      EffectsConfig               `yaml:"effects"`
	Weapons      WeaponsConfig               `yaml:"weapons"`
	Levels       LevelsConfig                `yaml:"levels"`
	Scoring      ScoringConfig               `yaml:"scoring"`
	Feedback     FeedbackConfig              `yaml:"feedback"`
	Bosses       []BossConfig                `yaml:"bosses"`
}

// Canonical key order for the keyed sections. Menus and legends use this order.
var (
	DifficultyNames   = []string{"easy", "medium", "hard"}
	RoleNames         = []string{"spaceship", "aeroplane", "dragon"}
	ObstacleKindNames = []string{"mine", "bird", "turtle", "mushroom", "machinegun", "shotgun", "xray", "steelbar"}
	BossPatternNames  = []string{"aimed", "spread", "ring", "wall", "spiral"}
)

type DisplayConfig struct {
	Vertical   ScreenSize `yaml:"vertical"`
	Horizontal ScreenSize `yaml:"horizontal"`
	Scale      int        `yaml:"scale"`
	TPS        int        `yaml:"tps"`
}

type ScreenSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PlayerConfig struct {
	Size         float64               `yaml:"size"`
	ShrinkFactor float64               `yaml:"shrinkFactor"`
	TrailLength  int                   `yaml:"trailLength"`
	Roles        map[string]RoleConfig `yaml:"roles"`
}

// RoleConfig describes a selectable player vehicle
type RoleConfig struct {
	Label     string  `yaml:"label"`
	Color     Color   `yaml:"color"`
	Glow      Color   `yaml:"glow"`
	MoveSpeed float64 `yaml:"moveSpeed"` // pixels per frame
}

type DifficultyConfig struct {
	Label     string  `yaml:"label"`
	Blocks    int     `yaml:"blocks"`    // obstacles per spawn tick
	BaseSpeed float64 `yaml:"baseSpeed"` // pixels per frame
	SpawnRate int     `yaml:"spawnRate"` // frames between spawn ticks before ramp-up
}

type ObstaclesConfig struct {
	Size           float64                       `yaml:"size"`
	BarWidthFactor float64                       `yaml:"barWidthFactor"`
	Kinds          map[string]ObstacleKindConfig `yaml:"kinds"`
}

type ObstacleKindConfig struct {
	Label    string `yaml:"label"`
	Color    Color  `yaml:"color"`
	Weight   int    `yaml:"weight"`
	MinLevel int    `yaml:"minLevel"`
}

type EffectsConfig struct {
	BoostSeconds  float64 `yaml:"boostSeconds"`
	BoostFactor   float64 `yaml:"boostFactor"`
	SlowSeconds   float64 `yaml:"slowSeconds"`
	SlowFactor    float64 `yaml:"slowFactor"`
	ShrinkSeconds float64 `yaml:"shrinkSeconds"`
}

type WeaponsConfig struct {
	Duration           float64 `yaml:"duration"` // seconds a pickup stays armed
	BulletSpeed        float64 `yaml:"bulletSpeed"`
	BulletSize         float64 `yaml:"bulletSize"`
	Damage             int     `yaml:"damage"`
	MachinegunInterval int     `yaml:"machinegunInterval"` // frames
	ShotgunInterval    int     `yaml:"shotgunInterval"`
	ShotgunSpreadDeg   float64 `yaml:"shotgunSpreadDeg"`
	CannonInterval     int     `yaml:"cannonInterval"`
	BeamWidth          float64 `yaml:"beamWidth"`
	BeamTickFrames     int     `yaml:"beamTickFrames"`
}

type LevelsConfig struct {
	Duration            float64         `yaml:"duration"` // seconds of play before the boss enters
	TransitionSeconds   float64         `yaml:"transitionSeconds"`
	BossDefeatedSeconds float64         `yaml:"bossDefeatedSeconds"`
	SpeedRamp           float64         `yaml:"speedRamp"`       // speed gained per second of play
	LevelSpeedBonus     float64         `yaml:"levelSpeedBonus"` // speed gained per cleared level
	BossHealthPerLevel  int             `yaml:"bossHealthPerLevel"`
	MinSpawnInterval    int             `yaml:"minSpawnInterval"`
	BossFight           BossFightConfig `yaml:"bossFight"`
}

type BossFightConfig struct {
	SpawnKinds []string `yaml:"spawnKinds"`
}

type ScoringConfig struct {
	PerSecond       float64 `yaml:"perSecond"`
	MineBonus       int     `yaml:"mineBonus"`
	ProjectileBonus int     `yaml:"projectileBonus"`
	BossBonus       int     `yaml:"bossBonus"` // multiplied by the level
}

type FeedbackConfig struct {
	ScreenShake ScreenShakeConfig `yaml:"screenShake"`
	Hitstop     HitstopConfig     `yaml:"hitstop"`
}

type ScreenShakeConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Intensity float64 `yaml:"intensity"`
	Decay     float64 `yaml:"decay"`
}

type HitstopConfig struct {
	Enabled bool `yaml:"enabled"`
	Frames  int  `yaml:"frames"`
}

// BossConfig describes one boss of the roster. Level N fights bosses[N-1].
type BossConfig struct {
	Name                string          `yaml:"name"`
	Color               Color           `yaml:"color"`
	Glow                Color           `yaml:"glow"`
	Size                float64         `yaml:"size"`
	Health              int             `yaml:"health"`
	Duration            float64         `yaml:"duration"`     // seconds before the boss escapes
	FireInterval        int             `yaml:"fireInterval"` // frames between volleys
	ProjectileSpeed     float64         `yaml:"projectileSpeed"`
	ProjectileSize      float64         `yaml:"projectileSize"`
	IndestructibleEvery int             `yaml:"indestructibleEvery"` // every Nth volley, 0 = never
	Patterns            []PatternConfig `yaml:"patterns"`
}

// PatternConfig is one attack pattern. Unused fields are ignored per type.
type PatternConfig struct {
	Type  string  `yaml:"type"`
	Count int     `yaml:"count"`
	Arc   float64 `yaml:"arc"` // degrees, spread only
	Gap   int     `yaml:"gap"` // slots, wall only
}

// Size returns the screen size for an orientation name
func (d DisplayConfig) Size(orientation string) ScreenSize {
	if orientation == "horizontal" {
		return d.Horizontal
	}
	return d.Vertical
}

// Boss returns the roster entry for a level, reusing the last one past the end
func (c *GameConfig) Boss(level int) BossConfig {
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.Bosses) {
		idx = len(c.Bosses) - 1
	}
	return c.Bosses[idx]
}
