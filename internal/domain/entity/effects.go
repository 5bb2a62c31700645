package entity

import (
	"image/color"
	"math/rand"
	"slices"
)

const (
	particleLifetime = 60
	particleDamping  = 0.98
	popupLifetime    = 40
	popupRise        = 1.5
)

// Particle is a fading spark
type Particle struct {
	X, Y        float64
	VX, VY      float64
	Size        float64
	StartSize   float64
	Color       color.RGBA
	Glow        bool
	Lifetime    int
	MaxLifetime int
}

// Update advances the particle one frame
func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.VX *= particleDamping
	p.VY *= particleDamping
	p.Lifetime--
	p.Size = p.StartSize * p.Life()
}

// Life returns the remaining lifetime fraction in [0, 1]
func (p *Particle) Life() float64 {
	if p.MaxLifetime <= 0 || p.Lifetime <= 0 {
		return 0
	}
	return float64(p.Lifetime) / float64(p.MaxLifetime)
}

func (p *Particle) IsAlive() bool {
	return p.Lifetime > 0
}

// ParticleSystem owns every live particle. It draws from its own rng so
// cosmetic bursts never disturb the gameplay random sequence.
type ParticleSystem struct {
	Particles []*Particle
	rng       *rand.Rand
}

// NewParticleSystem creates an empty particle system
func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{rng: rng}
}

// Emit spawns count particles at x, y with random velocity in [-spread, spread]
func (ps *ParticleSystem) Emit(x, y float64, c color.RGBA, count int, size float64, glow bool, spread float64) {
	for range count {
		ps.Particles = append(ps.Particles, &Particle{
			X:           x,
			Y:           y,
			VX:          (ps.rng.Float64()*2 - 1) * spread,
			VY:          (ps.rng.Float64()*2 - 1) * spread,
			Size:        size,
			StartSize:   size,
			Color:       c,
			Glow:        glow,
			Lifetime:    particleLifetime,
			MaxLifetime: particleLifetime,
		})
	}
}

// Update drops dead particles and advances the rest
func (ps *ParticleSystem) Update() {
	ps.Particles = slices.DeleteFunc(ps.Particles, func(p *Particle) bool { return !p.IsAlive() })
	for _, p := range ps.Particles {
		p.Update()
	}
}

// Clear removes every particle
func (ps *ParticleSystem) Clear() {
	ps.Particles = nil
}

// ScorePopup is a rising "+N" label
type ScorePopup struct {
	X, Y     float64
	Text     string
	Color    color.RGBA
	Lifetime int
}

// NewScorePopup creates a new popup
func NewScorePopup(x, y float64, text string, c color.RGBA) *ScorePopup {
	return &ScorePopup{X: x, Y: y, Text: text, Color: c, Lifetime: popupLifetime}
}

// Update advances the popup one frame
func (sp *ScorePopup) Update() {
	sp.Y -= popupRise
	sp.Lifetime--
}

// Alpha returns the fade factor in [0, 1]
func (sp *ScorePopup) Alpha() float64 {
	if sp.Lifetime <= 0 {
		return 0
	}
	return float64(sp.Lifetime) / popupLifetime
}

func (sp *ScorePopup) IsAlive() bool {
	return sp.Lifetime > 0
}

// Mote is a slow drifting menu particle that wraps around the screen
type Mote struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.RGBA
}

// NewMote creates a mote at a random position inside width x height
func NewMote(rng *rand.Rand, width, height float64, palette []color.RGBA) *Mote {
	m := &Mote{
		X:    rng.Float64() * width,
		Y:    rng.Float64() * height,
		VX:   (rng.Float64()*2 - 1) * 0.3,
		VY:   (rng.Float64()*2 - 1) * 0.3,
		Size: 1.5 + rng.Float64()*2.5,
	}
	if len(palette) > 0 {
		c := palette[rng.Intn(len(palette))]
		c.A = uint8(40 + rng.Intn(81))
		m.Color = c
	}
	return m
}

// Update drifts the mote, wrapping at the edges
func (m *Mote) Update(width, height float64) {
	m.X += m.VX
	m.Y += m.VY
	if m.X < 0 {
		m.X = width
	} else if m.X > width {
		m.X = 0
	}
	if m.Y < 0 {
		m.Y = height
	} else if m.Y > height {
		m.Y = 0
	}
}
