// Package scenetest provides a scripted router, scripted controls and a
// ready-made context for scene tests.
package scenetest

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wudong/internal/application/scene"
	"github.com/younwookim/wudong/internal/application/system"
	"github.com/younwookim/wudong/internal/infrastructure/audio"
	"github.com/younwookim/wudong/internal/infrastructure/config"
	"github.com/younwookim/wudong/internal/infrastructure/render"
	"github.com/younwookim/wudong/internal/infrastructure/storage"
)

// Stub is the scene a Router hands out. It does nothing.
type Stub struct {
	Route string
}

func (s *Stub) Update(float64) (scene.Scene, error) { return nil, nil }
func (s *Stub) Draw(*ebiten.Image)                  {}
func (s *Stub) OnEnter()                            {}
func (s *Stub) OnExit()                             {}

// Router records every route it is asked for
type Router struct {
	Routes    []string
	Score     int
	Highlight int
	Settings  system.Settings
}

func (r *Router) route(name string) scene.Scene {
	r.Routes = append(r.Routes, name)
	return &Stub{Route: name}
}

func (r *Router) Menu() scene.Scene {
	return r.route("menu")
}

func (r *Router) Play(settings system.Settings) scene.Scene {
	r.Settings = settings
	return r.route("play")
}

func (r *Router) EnterName(score int, settings system.Settings) scene.Scene {
	r.Score = score
	r.Settings = settings
	return r.route("entername")
}

func (r *Router) Leaderboard(highlight int) scene.Scene {
	r.Highlight = highlight
	return r.route("leaderboard")
}

// Last returns the most recent route, or ""
func (r *Router) Last() string {
	if len(r.Routes) == 0 {
		return ""
	}
	return r.Routes[len(r.Routes)-1]
}

// Input scripts the keys, characters and mouse a scene sees for one frame
type Input struct {
	pressed map[ebiten.Key]bool
	X, Y    float64
	Click   bool
	Typed   []rune
}

// Press marks keys as just pressed until the next call to Next
func (in *Input) Press(keys ...ebiten.Key) {
	if in.pressed == nil {
		in.pressed = make(map[ebiten.Key]bool)
	}
	for _, k := range keys {
		in.pressed[k] = true
	}
}

// ClickAt moves the cursor and clicks
func (in *Input) ClickAt(x, y float64) {
	in.X, in.Y = x, y
	in.Click = true
}

// Next clears everything edge-triggered
func (in *Input) Next() {
	clear(in.pressed)
	in.Click = false
	in.Typed = nil
}

// Controls returns controls reading from in
func (in *Input) Controls() scene.Controls {
	return scene.Controls{
		JustPressed: func(k ebiten.Key) bool { return in.pressed[k] },
		Cursor:      func() (float64, float64) { return in.X, in.Y },
		Clicked:     func() bool { return in.Click },
		Chars:       func() []rune { return in.Typed },
	}
}

// NewContext loads game.yaml from configDir and wires in-memory stores,
// a silent sound bank and a fixed seed
func NewContext(t testing.TB, configDir string) (*scene.Context, *Router) {
	t.Helper()
	cfg, err := config.NewLoader(configDir).LoadGame()
	require.NoError(t, err)

	router := &Router{}
	ctx := &scene.Context{
		Config:   cfg,
		Scores:   storage.NewScoreStore(nil),
		Settings: storage.NewSettingsStore(nil),
		Audio:    audio.NewBank(nil),
		Cache:    render.NewCache(),
		Router:   router,
		NewSeed:  func() int64 { return 42 },
	}
	return ctx, router
}
