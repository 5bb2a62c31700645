package entity

// ObstacleKind names an obstacle type as it appears in game.yaml
type ObstacleKind string

const (
	KindMine       ObstacleKind = "mine"
	KindBird       ObstacleKind = "bird"
	KindTurtle     ObstacleKind = "turtle"
	KindMushroom   ObstacleKind = "mushroom"
	KindMachineGun ObstacleKind = "machinegun"
	KindShotgun    ObstacleKind = "shotgun"
	KindXRay       ObstacleKind = "xray"
	KindSteelBar   ObstacleKind = "steelbar"
)

// Effect is what touching an obstacle does to the player
type Effect int

const (
	EffectLethal Effect = iota
	EffectBoost
	EffectSlow
	EffectShrink
	EffectWeapon
	EffectBarrier
)

// Effect returns the gameplay effect of the kind
func (k ObstacleKind) Effect() Effect {
	switch k {
	case KindBird:
		return EffectBoost
	case KindTurtle:
		return EffectSlow
	case KindMushroom:
		return EffectShrink
	case KindMachineGun, KindShotgun, KindXRay:
		return EffectWeapon
	case KindSteelBar:
		return EffectBarrier
	default:
		return EffectLethal
	}
}

// Weapon returns the weapon a pickup grants, or WeaponNone
func (k ObstacleKind) Weapon() Weapon {
	switch k {
	case KindMachineGun:
		return WeaponMachineGun
	case KindShotgun:
		return WeaponShotgun
	case KindXRay:
		return WeaponXRay
	default:
		return WeaponNone
	}
}

// Kills reports whether touching the kind ends the run
func (k ObstacleKind) Kills() bool {
	e := k.Effect()
	return e == EffectLethal || e == EffectBarrier
}

// Destructible reports whether player fire destroys the kind
func (k ObstacleKind) Destructible() bool {
	return k == KindMine
}

// StopsBullets reports whether a bullet hitting the kind is consumed
func (k ObstacleKind) StopsBullets() bool {
	return k == KindMine || k == KindSteelBar
}

// Obstacle is a scrolling entity the player can collide with
type Obstacle struct {
	ID     EntityID
	Kind   ObstacleKind
	X, Y   float64
	W, H   float64
	Active bool
	Age    int // frames alive, drives animation
}

// NewObstacle creates a new obstacle
func NewObstacle(id EntityID, kind ObstacleKind, x, y, w, h float64) *Obstacle {
	return &Obstacle{
		ID:     id,
		Kind:   kind,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		Active: true,
	}
}

// Rect returns the obstacle bounds
func (o *Obstacle) Rect() Rect {
	return Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Deactivate marks the obstacle for removal
func (o *Obstacle) Deactivate() {
	o.Active = false
}
