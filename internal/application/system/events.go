package system

import "github.com/younwookim/wudong/internal/domain/entity"

// Event is something that happened during a simulation frame.
// Systems report through events instead of calling audio or effects directly.
type Event interface {
	isEvent()
}

// LevelStarted fires when a level begins
type LevelStarted struct {
	Level int
}

func (LevelStarted) isEvent() {}

// PickupCollected fires when the player touches a non-lethal obstacle
type PickupCollected struct {
	Kind entity.ObstacleKind
	X, Y float64
}

func (PickupCollected) isEvent() {}

// ObstacleDestroyed fires when player fire destroys an obstacle
type ObstacleDestroyed struct {
	Kind  entity.ObstacleKind
	X, Y  float64
	Bonus int
}

func (ObstacleDestroyed) isEvent() {}

// ProjectileDestroyed fires when player fire destroys a boss projectile
type ProjectileDestroyed struct {
	X, Y  float64
	Bonus int
}

func (ProjectileDestroyed) isEvent() {}

// ShotFired fires once per player volley
type ShotFired struct {
	Weapon entity.Weapon
}

func (ShotFired) isEvent() {}

// BossSpawned fires when a boss enters the field
type BossSpawned struct {
	Level int
	Name  string
}

func (BossSpawned) isEvent() {}

// BossHit fires when the boss takes damage
type BossHit struct {
	X, Y   float64
	Health int
}

func (BossHit) isEvent() {}

// BossDefeated fires when the boss health reaches zero
type BossDefeated struct {
	Level int
	Name  string
	X, Y  float64
	Bonus int
}

func (BossDefeated) isEvent() {}

// BossEscaped fires when the encounter timer runs out
type BossEscaped struct {
	Level int
	Name  string
}

func (BossEscaped) isEvent() {}

// PlayerDied fires once when the run ends
type PlayerDied struct {
	X, Y  float64
	Cause string
}

func (PlayerDied) isEvent() {}

// emitter holds an optional event callback
type emitter struct {
	OnEvent func(Event)
}

func (e *emitter) emit(ev Event) {
	if e.OnEvent != nil {
		e.OnEvent(ev)
	}
}
