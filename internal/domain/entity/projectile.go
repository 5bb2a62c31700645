package entity

import "math"

// Projectile is a straight-flying shot, fired by the player or a boss.
// X, Y is the center.
type Projectile struct {
	X, Y   float64
	VX, VY float64 // pixels per frame
	Size   float64
	Damage int
	Active bool

	IsPlayer       bool // true if shot by player, false if by boss
	Indestructible bool // boss shots only, immune to player fire
}

// NewBullet creates a player bullet flying at angleRad
func NewBullet(x, y, angleRad, speed, size float64, damage int) *Projectile {
	return &Projectile{
		X:        x,
		Y:        y,
		VX:       math.Cos(angleRad) * speed,
		VY:       math.Sin(angleRad) * speed,
		Size:     size,
		Damage:   damage,
		Active:   true,
		IsPlayer: true,
	}
}

// NewBossShot creates a boss projectile flying at angleRad
func NewBossShot(x, y, angleRad, speed, size float64, indestructible bool) *Projectile {
	return &Projectile{
		X:              x,
		Y:              y,
		VX:             math.Cos(angleRad) * speed,
		VY:             math.Sin(angleRad) * speed,
		Size:           size,
		Active:         true,
		Indestructible: indestructible,
	}
}

// AngleTo returns the angle from (x, y) toward (tx, ty)
func AngleTo(x, y, tx, ty float64) float64 {
	dx := tx - x
	dy := ty - y
	if math.Abs(dx) < 1e-9 && math.Abs(dy) < 1e-9 {
		return math.Pi / 2
	}
	return math.Atan2(dy, dx)
}

// Update moves the projectile one frame
func (p *Projectile) Update() {
	if !p.Active {
		return
	}
	p.X += p.VX
	p.Y += p.VY
}

// Rect returns the bounding box
func (p *Projectile) Rect() Rect {
	return Rect{X: p.X - p.Size/2, Y: p.Y - p.Size/2, W: p.Size, H: p.Size}
}

// Rotation returns the rotation angle based on velocity vector
func (p *Projectile) Rotation() float64 {
	return math.Atan2(p.VY, p.VX)
}

// Deactivate marks the projectile as inactive
func (p *Projectile) Deactivate() {
	p.Active = false
}
