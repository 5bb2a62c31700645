// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wudong/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	// OnResize is called when a scene changes the logical screen size
	OnResize func(w, h int)
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	g.syncSize()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	g.syncSize()
	return nil
}

// syncSize adopts the current scene's screen size, if it has one
func (g *Game) syncSize() {
	sized, ok := g.current.(scene.Sized)
	if !ok {
		return
	}
	w, h := sized.ScreenSize()
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW, g.screenH = w, h
	if g.OnResize != nil {
		g.OnResize(w, h)
	}
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
