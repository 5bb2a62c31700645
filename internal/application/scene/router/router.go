// Package router builds every scene of the game and moves between them.
package router

import (
	"log"

	"github.com/younwookim/wudong/internal/application/scene"
	"github.com/younwookim/wudong/internal/application/scene/entername"
	"github.com/younwookim/wudong/internal/application/scene/leaderboard"
	"github.com/younwookim/wudong/internal/application/scene/menu"
	"github.com/younwookim/wudong/internal/application/scene/playing"
	"github.com/younwookim/wudong/internal/application/system"
)

// Router implements scene.Router over a shared context
type Router struct {
	ctx *scene.Context
}

// New creates a router and installs it in ctx
func New(ctx *scene.Context) *Router {
	r := &Router{ctx: ctx}
	ctx.Router = r
	return r
}

// Menu returns a fresh title screen
func (r *Router) Menu() scene.Scene {
	return menu.New(r.ctx)
}

// Play starts a run. Settings the config does not know fall back to the menu.
func (r *Router) Play(settings system.Settings) scene.Scene {
	p, err := playing.New(r.ctx, settings)
	if err != nil {
		log.Printf("[Router] Warning: %v", err)
		return r.Menu()
	}
	return p
}

// EnterName asks for the name of a qualifying score
func (r *Router) EnterName(score int, settings system.Settings) scene.Scene {
	return entername.New(r.ctx, score, settings)
}

// Leaderboard shows the table with the entry at highlight marked
func (r *Router) Leaderboard(highlight int) scene.Scene {
	return leaderboard.New(r.ctx, highlight)
}
