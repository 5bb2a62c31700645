package entity

// BossPhase is the movement phase of a boss encounter
type BossPhase int

const (
	BossEntering BossPhase = iota // sliding in from the spawn edge
	BossFighting                  // on station, swaying and firing
)

// Boss is the end-of-level enemy. X, Y is the top-left of its square body.
type Boss struct {
	Level  int
	Roster int // index into the boss roster, selects the look
	Name   string
	X, Y   float64
	Size   float64
	Active bool
	Phase  BossPhase

	// Station the boss slides to; it sways around it afterwards
	StationX, StationY float64
	SwayTime           float64

	MaxHealth int
	Health    int
	TimeLeft  float64 // seconds before it escapes
	HitTimer  float64 // flash after a hit

	// Attack state
	FireTimer    int // frames until next volley
	PatternIndex int
	Volleys      int
	SpiralAngle  float64 // degrees
}

// NewBoss creates a new boss
func NewBoss(level, roster int, name string, x, y, size float64, health int, duration float64) *Boss {
	return &Boss{
		Level:     level,
		Roster:    roster,
		Name:      name,
		X:         x,
		Y:         y,
		Size:      size,
		Active:    true,
		MaxHealth: health,
		Health:    health,
		TimeLeft:  duration,
	}
}

// TakeDamage applies damage to the boss and reports whether it died
func (b *Boss) TakeDamage(damage int) bool {
	b.Health -= damage
	if b.Health < 0 {
		b.Health = 0
	}
	b.HitTimer = 0.1
	return b.Health <= 0
}

// IsAlive returns true if the boss is still fighting
func (b *Boss) IsAlive() bool {
	return b.Health > 0 && b.Active
}

// Rect returns the body bounds
func (b *Boss) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

// Center returns the center of the body
func (b *Boss) Center() (x, y float64) {
	return b.X + b.Size/2, b.Y + b.Size/2
}

// HealthRatio returns remaining health in [0, 1]
func (b *Boss) HealthRatio() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}
