package config

import (
	"fmt"
	"maps"
	"slices"
)

// validateGameConfig checks the invariants the simulation relies on
func validateGameConfig(cfg *GameConfig) error {
	if err := validateDisplay(cfg.Display); err != nil {
		return err
	}
	if err := validatePlayer(cfg.Player); err != nil {
		return err
	}

	for _, name := range DifficultyNames {
		d, ok := cfg.Difficulties[name]
		if !ok {
			return fmt.Errorf("difficulties.%s is missing", name)
		}
		if d.Blocks < 1 {
			return fmt.Errorf("difficulties.%s.blocks must be >= 1, got %d", name, d.Blocks)
		}
		if d.BaseSpeed <= 0 {
			return fmt.Errorf("difficulties.%s.baseSpeed must be > 0, got %v", name, d.BaseSpeed)
		}
		if d.SpawnRate < cfg.Levels.MinSpawnInterval {
			return fmt.Errorf("difficulties.%s.spawnRate (%d) must be >= levels.minSpawnInterval (%d)",
				name, d.SpawnRate, cfg.Levels.MinSpawnInterval)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(cfg.Difficulties)) {
		if !slices.Contains(DifficultyNames, name) {
			return fmt.Errorf("difficulties.%s is unknown (want easy, medium, hard)", name)
		}
	}

	if err := validateObstacles(cfg.Obstacles); err != nil {
		return err
	}
	if err := validateLevels(cfg.Levels); err != nil {
		return err
	}

	if cfg.Weapons.BulletSpeed <= 0 {
		return fmt.Errorf("weapons.bulletSpeed must be > 0, got %v", cfg.Weapons.BulletSpeed)
	}
	if cfg.Weapons.MachinegunInterval < 1 || cfg.Weapons.ShotgunInterval < 1 || cfg.Weapons.CannonInterval < 1 {
		return fmt.Errorf("weapons fire intervals must be >= 1 frame")
	}
	if cfg.Weapons.BeamTickFrames < 1 {
		return fmt.Errorf("weapons.beamTickFrames must be >= 1, got %d", cfg.Weapons.BeamTickFrames)
	}

	if len(cfg.Bosses) == 0 {
		return fmt.Errorf("bosses cannot be empty")
	}
	for i, b := range cfg.Bosses {
		if err := validateBoss(b); err != nil {
			return fmt.Errorf("bosses[%d]: %w", i, err)
		}
	}

	return nil
}

func validateDisplay(d DisplayConfig) error {
	for name, s := range map[string]ScreenSize{"vertical": d.Vertical, "horizontal": d.Horizontal} {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("display.%s must have a positive size, got %dx%d", name, s.Width, s.Height)
		}
	}
	if d.TPS <= 0 {
		return fmt.Errorf("display.tps must be > 0, got %d", d.TPS)
	}
	return nil
}

func validatePlayer(p PlayerConfig) error {
	if p.Size <= 0 {
		return fmt.Errorf("player.size must be > 0, got %v", p.Size)
	}
	if p.ShrinkFactor <= 0 || p.ShrinkFactor > 1 {
		return fmt.Errorf("player.shrinkFactor must be in (0, 1], got %v", p.ShrinkFactor)
	}
	for _, name := range RoleNames {
		r, ok := p.Roles[name]
		if !ok {
			return fmt.Errorf("player.roles.%s is missing", name)
		}
		if r.MoveSpeed <= 0 {
			return fmt.Errorf("player.roles.%s.moveSpeed must be > 0, got %v", name, r.MoveSpeed)
		}
		if _, err := ParseHexColor(string(r.Color)); err != nil {
			return fmt.Errorf("player.roles.%s.color: %w", name, err)
		}
	}
	return nil
}

func validateObstacles(o ObstaclesConfig) error {
	if o.Size <= 0 {
		return fmt.Errorf("obstacles.size must be > 0, got %v", o.Size)
	}
	total := 0
	for _, name := range ObstacleKindNames {
		k, ok := o.Kinds[name]
		if !ok {
			return fmt.Errorf("obstacles.kinds.%s is missing", name)
		}
		if k.Weight < 0 {
			return fmt.Errorf("obstacles.kinds.%s.weight must be >= 0, got %d", name, k.Weight)
		}
		if _, err := ParseHexColor(string(k.Color)); err != nil {
			return fmt.Errorf("obstacles.kinds.%s.color: %w", name, err)
		}
		total += k.Weight
	}
	if total == 0 {
		return fmt.Errorf("obstacles.kinds needs at least one positive weight")
	}
	return nil
}

func validateLevels(l LevelsConfig) error {
	if l.Duration <= 0 {
		return fmt.Errorf("levels.duration must be > 0, got %v", l.Duration)
	}
	if l.MinSpawnInterval < 1 {
		return fmt.Errorf("levels.minSpawnInterval must be >= 1, got %d", l.MinSpawnInterval)
	}
	for _, kind := range l.BossFight.SpawnKinds {
		if !slices.Contains(ObstacleKindNames, kind) {
			return fmt.Errorf("levels.bossFight.spawnKinds: unknown kind %q", kind)
		}
	}
	return nil
}

func validateBoss(b BossConfig) error {
	if b.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if b.Health <= 0 {
		return fmt.Errorf("%s: health must be > 0, got %d", b.Name, b.Health)
	}
	if b.Size <= 0 || b.ProjectileSize <= 0 {
		return fmt.Errorf("%s: size and projectileSize must be > 0", b.Name)
	}
	if b.Duration <= 0 {
		return fmt.Errorf("%s: duration must be > 0, got %v", b.Name, b.Duration)
	}
	if b.FireInterval < 1 {
		return fmt.Errorf("%s: fireInterval must be >= 1, got %d", b.Name, b.FireInterval)
	}
	if b.IndestructibleEvery < 0 {
		return fmt.Errorf("%s: indestructibleEvery must be >= 0, got %d", b.Name, b.IndestructibleEvery)
	}
	if len(b.Patterns) == 0 {
		return fmt.Errorf("%s: patterns cannot be empty", b.Name)
	}
	for _, p := range b.Patterns {
		if !slices.Contains(BossPatternNames, p.Type) {
			return fmt.Errorf("%s: unknown pattern %q", b.Name, p.Type)
		}
	}
	if _, err := ParseHexColor(string(b.Color)); err != nil {
		return fmt.Errorf("%s: color: %w", b.Name, err)
	}
	return nil
}
