package system

import (
	"math"

	"github.com/younwookim/wudong/internal/domain/entity"
)

// Bot is a simple dodging player used by headless simulation. It looks a
// few frames ahead and picks the move that keeps it clear of lethal things.
type Bot struct {
	Lookahead int     // frames to predict
	Margin    float64 // extra pixels around the hitbox
}

// NewBot creates a bot with default tuning
func NewBot() *Bot {
	return &Bot{Lookahead: 24, Margin: 4}
}

// Decide returns the input for the next frame
func (b *Bot) Decide(s *Session) InputState {
	if s.Over() {
		return InputState{}
	}
	a := s.Arena
	speed := s.Speed()
	moveSpeed := s.movement.role.MoveSpeed

	best, bestDanger := 0.0, math.Inf(1)
	for _, dir := range []float64{0, -1, 1} {
		danger := b.danger(a, dir, speed, moveSpeed)
		if danger < bestDanger {
			best, bestDanger = dir, danger
		}
	}

	// Nothing to dodge: drift back toward the middle
	if bestDanger == 0 {
		best = b.homeward(a)
	}
	return inputFor(a.Orientation, best)
}

func (b *Bot) danger(a *entity.Arena, dir, speed, moveSpeed float64) float64 {
	p := a.Player
	limit := a.CrossExtent() - p.BaseSize
	hb := p.Hitbox()

	total := 0.0
	for t := 1; t <= b.Lookahead; t++ {
		ft := float64(t)
		shift := clampf(crossPos(a, p)+dir*moveSpeed*ft, 0, limit) - crossPos(a, p)

		box := hb
		if a.Orientation == entity.Horizontal {
			box.Y += shift
		} else {
			box.X += shift
		}
		box = entity.Rect{X: box.X - b.Margin, Y: box.Y - b.Margin, W: box.W + 2*b.Margin, H: box.H + 2*b.Margin}

		weight := float64(b.Lookahead - t + 1)
		for _, o := range a.Obstacles {
			if !o.Active || !o.Kind.Kills() {
				continue
			}
			r := o.Rect()
			if a.Orientation == entity.Horizontal {
				r.X -= speed * ft
			} else {
				r.Y += speed * ft
			}
			if box.Overlaps(r) {
				total += weight
			}
		}
		for _, proj := range a.Projectiles {
			if !proj.Active {
				continue
			}
			r := proj.Rect()
			r.X += proj.VX * ft
			r.Y += proj.VY * ft
			if box.Overlaps(r) {
				total += weight
			}
		}
		if a.Boss != nil && box.Overlaps(a.Boss.Rect()) {
			total += weight
		}
	}
	return total
}

func (b *Bot) homeward(a *entity.Arena) float64 {
	p := a.Player
	mid := (a.CrossExtent() - p.BaseSize) / 2
	pos := crossPos(a, p)
	switch {
	case pos < mid-20:
		return 1
	case pos > mid+20:
		return -1
	default:
		return 0
	}
}

func crossPos(a *entity.Arena, p *entity.Player) float64 {
	if a.Orientation == entity.Horizontal {
		return p.Y
	}
	return p.X
}

func inputFor(o entity.Orientation, dir float64) InputState {
	var in InputState
	switch {
	case dir < 0 && o == entity.Horizontal:
		in.Up = true
	case dir > 0 && o == entity.Horizontal:
		in.Down = true
	case dir < 0:
		in.Left = true
	case dir > 0:
		in.Right = true
	}
	return in
}
