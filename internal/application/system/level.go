package system

import (
	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/config"
)

// playerInset is the distance of the player from its home edge
const (
	verticalPlayerInset   = 100.0
	horizontalPlayerInset = 50.0
)

// LoadArena builds the playfield for an orientation with the player at its start position
func LoadArena(cfg *config.GameConfig, o entity.Orientation, role entity.Role) *entity.Arena {
	size := cfg.Display.Size(o.String())
	a := entity.NewArena(float64(size.Width), float64(size.Height), o)
	a.Player = entity.NewPlayer(0, 0, cfg.Player.Size, role, cfg.Player.TrailLength)
	PlacePlayer(a)
	return a
}

// PlacePlayer moves the player to its start position: bottom centre in
// vertical mode, left middle in horizontal mode
func PlacePlayer(a *entity.Arena) {
	p := a.Player
	if a.Orientation == entity.Horizontal {
		p.X = horizontalPlayerInset
		p.Y = a.Height / 2
	} else {
		p.X = a.Width / 2
		p.Y = a.Height - verticalPlayerInset
	}
	p.Trail = p.Trail[:0]
}
