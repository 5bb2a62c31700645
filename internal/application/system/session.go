package system

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/wudong/internal/application/state"
	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/config"
)

// Settings are the menu choices a run is played with
type Settings struct {
	Orientation entity.Orientation
	Difficulty  string
	Role        entity.Role
}

// Session is one run of the game: the arena, score, level and the
// state machine over Playing, LevelTransition, BossDefeated and GameOver.
// It is deterministic for a given seed and input sequence.
type Session struct {
	// OnEvent receives every simulation event after the session has scored it
	OnEvent func(Event)

	Arena    *entity.Arena
	State    state.GameState
	Settings Settings
	Seed     int64

	Level       int
	Bonus       int
	PlayFrames  int     // Playing frames only
	LevelFrames int     // Playing frames of the current level
	StateTimer  float64 // time left in BossDefeated / LevelTransition
	Frame       int
	DeathCause  string

	config     *config.GameConfig
	difficulty config.DifficultyConfig
	dt         float64
	rng        *rand.Rand

	movement  *MovementSystem
	spawner   *SpawnSystem
	combat    *CombatSystem
	bosses    *BossSystem
	collision *CollisionSystem
}

// NewSession creates a session and starts level 1
func NewSession(cfg *config.GameConfig, settings Settings, seed int64) (*Session, error) {
	difficulty, ok := cfg.Difficulties[settings.Difficulty]
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q", settings.Difficulty)
	}
	if _, ok := cfg.Player.Roles[string(settings.Role)]; !ok {
		return nil, fmt.Errorf("unknown role %q", settings.Role)
	}

	s := &Session{
		Settings:   settings,
		config:     cfg,
		difficulty: difficulty,
		dt:         1.0 / float64(cfg.Display.TPS),
	}
	s.Restart(seed)
	return s, nil
}

// Restart resets everything and starts a new run from level 1
func (s *Session) Restart(seed int64) {
	s.Seed = seed
	s.rng = rand.New(rand.NewSource(seed))

	s.Arena = LoadArena(s.config, s.Settings.Orientation, s.Settings.Role)
	role := s.config.Player.Roles[string(s.Settings.Role)]

	s.movement = NewMovementSystem(s.config, s.difficulty, role)
	s.spawner = NewSpawnSystem(s.config, s.difficulty, s.rng)
	s.combat = NewCombatSystem(s.config)
	s.bosses = NewBossSystem(s.config, s.rng)
	s.collision = NewCollisionSystem(s.config)
	s.combat.OnEvent = s.dispatch
	s.bosses.OnEvent = s.dispatch
	s.collision.OnEvent = s.dispatch

	s.Bonus = 0
	s.PlayFrames = 0
	s.Frame = 0
	s.DeathCause = ""
	s.startLevel(1)
}

// Config returns the game config the session runs with
func (s *Session) Config() *config.GameConfig {
	return s.config
}

// DT returns the fixed frame time in seconds
func (s *Session) DT() float64 {
	return s.dt
}

// PlaySeconds is the time spent in Playing since the run started
func (s *Session) PlaySeconds() float64 {
	return float64(s.PlayFrames) * s.dt
}

// LevelSeconds is the time spent in Playing since the level started
func (s *Session) LevelSeconds() float64 {
	return float64(s.LevelFrames) * s.dt
}

// Score is the time score plus every bonus earned
func (s *Session) Score() int {
	return int(s.PlaySeconds()*s.config.Scoring.PerSecond) + s.Bonus
}

// Speed returns the current scroll speed, effects included
func (s *Session) Speed() float64 {
	return s.movement.Speed(s.PlaySeconds(), s.Level, s.Arena.Player)
}

// Difficulty returns the difficulty the run is played on
func (s *Session) Difficulty() config.DifficultyConfig {
	return s.difficulty
}

// Over reports whether the run has ended
func (s *Session) Over() bool {
	return s.State == state.StateGameOver
}

// Update advances the session by one frame
func (s *Session) Update(in InputState) {
	if s.State == state.StateGameOver {
		return
	}
	s.Frame++

	switch s.State {
	case state.StatePlaying:
		s.updatePlaying(in)

	case state.StateBossDefeated:
		s.StateTimer -= s.dt
		if s.StateTimer <= 1e-9 {
			s.beginTransition()
		}

	case state.StateLevelTransition:
		s.StateTimer -= s.dt
		if s.StateTimer <= 1e-9 {
			s.startLevel(s.Level + 1)
		}
	}
}

func (s *Session) updatePlaying(in InputState) {
	a := s.Arena
	s.PlayFrames++
	s.LevelFrames++

	a.Player.TickTimers(s.dt)
	s.movement.MovePlayer(a, in)

	s.spawner.Update(a, s.PlaySeconds(), s.Level)
	s.movement.MoveObstacles(a, s.Speed())
	s.movement.MoveProjectiles(a)

	escaped := s.bosses.Update(a, s.LevelSeconds(), s.Level, s.dt) == BossOutcomeEscaped
	s.combat.Update(a)

	// A player killed this frame does not get the defeat bonus
	died := s.collision.Update(a)
	defeated := !died && s.bosses.Resolve(a) == BossOutcomeDefeated
	a.Compact()

	switch {
	case died:
		s.State = state.StateGameOver
	case defeated:
		s.State = state.StateBossDefeated
		s.StateTimer = s.config.Levels.BossDefeatedSeconds
	case escaped:
		s.beginTransition()
	}
}

func (s *Session) beginTransition() {
	s.Arena.Clear()
	s.State = state.StateLevelTransition
	s.StateTimer = s.config.Levels.TransitionSeconds
}

func (s *Session) startLevel(level int) {
	s.Level = level
	s.LevelFrames = 0
	s.Arena.Clear()
	s.spawner.Reset()
	s.bosses.Reset()
	s.combat.Reset()
	s.State = state.StatePlaying
	s.dispatch(LevelStarted{Level: level})
}

// dispatch scores an event and forwards it
func (s *Session) dispatch(ev Event) {
	switch e := ev.(type) {
	case ObstacleDestroyed:
		s.Bonus += e.Bonus
	case ProjectileDestroyed:
		s.Bonus += e.Bonus
	case BossDefeated:
		s.Bonus += e.Bonus
	case PlayerDied:
		s.DeathCause = e.Cause
	}
	if s.OnEvent != nil {
		s.OnEvent(ev)
	}
}
