// Package scene defines the Scene interface for game screens.
//
// Each game screen (menu, playing, name entry, leaderboard) implements
// the Scene interface to handle its own update logic and rendering.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wudong/internal/application/system"
	"github.com/younwookim/wudong/internal/infrastructure/audio"
	"github.com/younwookim/wudong/internal/infrastructure/config"
	"github.com/younwookim/wudong/internal/infrastructure/render"
	"github.com/younwookim/wudong/internal/infrastructure/storage"
)

// Scene represents a game screen (menu, playing, leaderboard, etc.)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup, saving state, or resource release.
	OnExit()
}

// Sized is implemented by scenes that choose their own logical screen
// size. The game loop resizes whenever the reported size changes.
type Sized interface {
	ScreenSize() (w, h int)
}

// Router builds scenes, so scene packages can move between each other
// without importing one another.
type Router interface {
	Menu() Scene
	Play(settings system.Settings) Scene
	EnterName(score int, settings system.Settings) Scene
	Leaderboard(highlight int) Scene
}

// Context carries the services every scene shares
type Context struct {
	Config   *config.GameConfig
	Scores   *storage.ScoreStore
	Settings *storage.SettingsStore
	Audio    *audio.Bank
	Cache    *render.Cache
	Router   Router

	// RecordPath, when set, records every run's input to this file
	RecordPath string
	// NewSeed seeds each new run
	NewSeed func() int64
}
