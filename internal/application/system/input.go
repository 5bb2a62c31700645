package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/wudong/internal/domain/entity"
)

// InputSystem reads gameplay keys from ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Pause bool // edge-triggered
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
	}
}

// Axis returns -1, 0 or 1 along the cross axis of the orientation.
// Vertical mode only reads Left/Right, horizontal only Up/Down.
func (in InputState) Axis(o entity.Orientation) float64 {
	neg, pos := in.Left, in.Right
	if o == entity.Horizontal {
		neg, pos = in.Up, in.Down
	}
	switch {
	case neg && !pos:
		return -1
	case pos && !neg:
		return 1
	default:
		return 0
	}
}
