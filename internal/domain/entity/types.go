package entity

import "slices"

// EntityID is a unique identifier for an entity
type EntityID uint32

// Orientation is the scroll direction of the playfield
type Orientation int

const (
	// Vertical: obstacles fall from the top, the player slides left/right
	Vertical Orientation = iota
	// Horizontal: obstacles approach from the right, the player slides up/down
	Horizontal
)

// ParseOrientation maps a config/flag name to an Orientation. Unknown names are vertical.
func ParseOrientation(s string) Orientation {
	if s == "horizontal" {
		return Horizontal
	}
	return Vertical
}

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Rect is an axis-aligned box in screen pixels
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports strict AABB overlap. Touching edges do not count,
// and empty rects never overlap anything.
func (r Rect) Overlaps(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Center returns the center point
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Arena holds the playfield geometry and every live entity on it
type Arena struct {
	Width, Height float64
	Orientation   Orientation

	Player      *Player
	Obstacles   []*Obstacle
	Bullets     []*Projectile // player shots
	Projectiles []*Projectile // boss shots
	Boss        *Boss

	// X-ray beam of the current frame
	Beam       Rect
	BeamActive bool

	nextID EntityID
}

// NewArena creates an empty arena
func NewArena(width, height float64, o Orientation) *Arena {
	return &Arena{Width: width, Height: height, Orientation: o}
}

// NextID returns a fresh entity ID
func (a *Arena) NextID() EntityID {
	a.nextID++
	return a.nextID
}

// CrossExtent is the length of the axis the player moves along
func (a *Arena) CrossExtent() float64 {
	if a.Orientation == Horizontal {
		return a.Height
	}
	return a.Width
}

// ScrollExtent is the length of the axis obstacles travel along
func (a *Arena) ScrollExtent() float64 {
	if a.Orientation == Horizontal {
		return a.Width
	}
	return a.Height
}

// Passed reports whether a scrolling rect has fully left the field on the far side
func (a *Arena) Passed(r Rect) bool {
	if a.Orientation == Horizontal {
		return r.X <= -r.W
	}
	return r.Y >= a.Height
}

// Outside reports whether a rect lies entirely outside the screen
func (a *Arena) Outside(r Rect) bool {
	return r.X+r.W <= 0 || r.X >= a.Width || r.Y+r.H <= 0 || r.Y >= a.Height
}

// Compact drops inactive obstacles and projectiles, keeping spawn order
func (a *Arena) Compact() {
	a.Obstacles = slices.DeleteFunc(a.Obstacles, func(o *Obstacle) bool { return !o.Active })
	a.Bullets = slices.DeleteFunc(a.Bullets, func(p *Projectile) bool { return !p.Active })
	a.Projectiles = slices.DeleteFunc(a.Projectiles, func(p *Projectile) bool { return !p.Active })
	if a.Boss != nil && !a.Boss.Active {
		a.Boss = nil
	}
}

// Clear removes everything except the player
func (a *Arena) Clear() {
	a.Obstacles = nil
	a.Bullets = nil
	a.Projectiles = nil
	a.Boss = nil
	a.Beam = Rect{}
	a.BeamActive = false
}
