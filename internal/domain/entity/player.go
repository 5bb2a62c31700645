package entity

// Role is the cosmetic vehicle the player picked
type Role string

const (
	RoleSpaceship Role = "spaceship"
	RoleAeroplane Role = "aeroplane"
	RoleDragon    Role = "dragon"
)

// ParseRole maps a name to a Role, defaulting to the spaceship
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAeroplane, RoleDragon:
		return Role(s)
	}
	return RoleSpaceship
}

// Point is a trail sample
type Point struct {
	X, Y float64
}

// Player represents the player entity.
// X, Y is the top-left of the unshrunk box.
type Player struct {
	X, Y     float64
	BaseSize float64
	Size     float64
	Role     Role
	Alive    bool

	// Effect timers (seconds)
	BoostTimer  float64
	SlowTimer   float64
	ShrinkTimer float64
	ShrinkScale float64

	// Weapon
	Weapon       Weapon
	WeaponTimer  float64
	FireCooldown int // frames

	Trail       []Point
	TrailLength int
}

// NewPlayer creates a new player at pixel position x, y
func NewPlayer(x, y, size float64, role Role, trailLength int) *Player {
	return &Player{
		X:           x,
		Y:           y,
		BaseSize:    size,
		Size:        size,
		Role:        role,
		Alive:       true,
		ShrinkScale: 1,
		TrailLength: trailLength,
	}
}

// Hitbox returns the collision box. A shrunk player is centred inside the base box.
func (p *Player) Hitbox() Rect {
	off := (p.BaseSize - p.Size) / 2
	return Rect{X: p.X + off, Y: p.Y + off, W: p.Size, H: p.Size}
}

// Center returns the center of the player box
func (p *Player) Center() (x, y float64) {
	return p.X + p.BaseSize/2, p.Y + p.BaseSize/2
}

// ApplyBoost starts a speed boost and cancels any slow
func (p *Player) ApplyBoost(seconds float64) {
	p.BoostTimer = seconds
	p.SlowTimer = 0
}

// ApplySlow starts a slow and cancels any boost
func (p *Player) ApplySlow(seconds float64) {
	p.SlowTimer = seconds
	p.BoostTimer = 0
}

// ApplyShrink shrinks the player to scale*BaseSize for the given time
func (p *Player) ApplyShrink(seconds, scale float64) {
	p.ShrinkTimer = seconds
	p.ShrinkScale = scale
	p.Size = p.BaseSize * scale
}

// Arm equips a weapon, replacing the current one
func (p *Player) Arm(w Weapon, seconds float64) {
	p.Weapon = w
	p.WeaponTimer = seconds
	p.FireCooldown = 0
}

func (p *Player) Boosted() bool { return p.BoostTimer > 0 }
func (p *Player) Slowed() bool  { return p.SlowTimer > 0 }
func (p *Player) Shrunk() bool  { return p.ShrinkTimer > 0 }
func (p *Player) Armed() bool   { return p.Weapon != WeaponNone }

// TickTimers counts every effect and weapon timer down by dt seconds
func (p *Player) TickTimers(dt float64) {
	p.BoostTimer = countdown(p.BoostTimer, dt)
	p.SlowTimer = countdown(p.SlowTimer, dt)

	if p.ShrinkTimer > 0 {
		p.ShrinkTimer = countdown(p.ShrinkTimer, dt)
		if p.ShrinkTimer == 0 {
			p.Size = p.BaseSize
			p.ShrinkScale = 1
		}
	}

	if p.Weapon != WeaponNone {
		p.WeaponTimer = countdown(p.WeaponTimer, dt)
		if p.WeaponTimer == 0 {
			p.Weapon = WeaponNone
		}
	}

	if p.FireCooldown > 0 {
		p.FireCooldown--
	}
}

// RecordTrail pushes the current center onto the trail, dropping the oldest sample
func (p *Player) RecordTrail() {
	if p.TrailLength <= 0 {
		return
	}
	cx, cy := p.Center()
	p.Trail = append(p.Trail, Point{X: cx, Y: cy})
	if len(p.Trail) > p.TrailLength {
		p.Trail = p.Trail[len(p.Trail)-p.TrailLength:]
	}
}

func countdown(v, dt float64) float64 {
	v -= dt
	if v < 1e-9 {
		return 0
	}
	return v
}
