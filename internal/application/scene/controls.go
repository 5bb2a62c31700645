package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Controls reads the menu keys and the mouse. Scenes take it as a value
// so tests can script input without a running game.
type Controls struct {
	JustPressed func(k ebiten.Key) bool
	Cursor      func() (x, y float64)
	Clicked     func() bool
	Chars       func() []rune
}

// EbitenControls reads input from ebiten
func EbitenControls() Controls {
	return Controls{
		JustPressed: inpututil.IsKeyJustPressed,
		Cursor: func() (float64, float64) {
			x, y := ebiten.CursorPosition()
			return float64(x), float64(y)
		},
		Clicked: func() bool {
			return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		},
		Chars: func() []rune {
			return ebiten.AppendInputChars(nil)
		},
	}
}

// AnyPressed reports whether any of keys was pressed this frame
func (c Controls) AnyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if c.JustPressed(k) {
			return true
		}
	}
	return false
}
