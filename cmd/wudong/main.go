package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/wudong/internal/application/game"
	"github.com/younwookim/wudong/internal/application/scene"
	"github.com/younwookim/wudong/internal/application/scene/router"
	"github.com/younwookim/wudong/internal/application/system"
	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/audio"
	"github.com/younwookim/wudong/internal/infrastructure/config"
	"github.com/younwookim/wudong/internal/infrastructure/render"
	"github.com/younwookim/wudong/internal/infrastructure/storage"
)

//go:embed configs
var configFS embed.FS

// options are the command line choices
type options struct {
	record      string
	replay      string
	simulate    int
	seed        int64
	orientation string
	difficulty  string
	role        string
	mute        bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.record, "record", "", "Record input to file (e.g., -record replay.json)")
	flag.StringVar(&o.replay, "replay", "", "Run a recording headless and print the result")
	flag.IntVar(&o.simulate, "simulate", 0, "Play n headless runs with the bot and print a summary")
	flag.Int64Var(&o.seed, "seed", 0, "Seed of the first run (0 = time based)")
	flag.StringVar(&o.orientation, "orientation", "", "vertical or horizontal (default: last used)")
	flag.StringVar(&o.difficulty, "difficulty", "", "easy, medium or hard (default: last used)")
	flag.StringVar(&o.role, "role", "", "spaceship, aeroplane or dragon (default: last used)")
	flag.BoolVar(&o.mute, "mute", false, "Start without an audio device")
	flag.Parse()
	return o
}

// loadConfig reads the embedded game.yaml
func loadConfig() (*config.GameConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadGame()
}

// applyOverrides puts the flag choices over the saved preferences
func (o options) applyOverrides(p storage.Preferences) storage.Preferences {
	if o.orientation != "" {
		p.Orientation = entity.ParseOrientation(o.orientation).String()
	}
	if o.difficulty != "" {
		p.Difficulty = o.difficulty
	}
	if o.role != "" {
		p.Role = o.role
	}
	return p
}

// settings returns the run settings for headless modes
func (o options) settings() system.Settings {
	p := o.applyOverrides(storage.DefaultPreferences())
	return system.Settings{
		Orientation: p.OrientationValue(),
		Difficulty:  p.Difficulty,
		Role:        p.RoleValue(),
	}
}

// seeds returns the run seed source. A fixed seed gives a fixed sequence.
func (o options) seeds() func() int64 {
	if o.seed == 0 {
		return func() int64 { return time.Now().UnixNano() }
	}
	next := o.seed
	return func() int64 {
		s := next
		next++
		return s
	}
}

func main() {
	opts := parseFlags()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	switch {
	case opts.replay != "":
		if err := runReplay(cfg, opts.replay, os.Stdout); err != nil {
			log.Fatalf("Failed to replay %s: %v", opts.replay, err)
		}
		return
	case opts.simulate > 0:
		seed := opts.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		sim := simulation{Runs: opts.simulate, Seed: seed, Settings: opts.settings(), MaxFrames: defaultMaxFrames}
		results, err := sim.Run(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Simulation failed: %v", err)
		}
		printSummary(os.Stdout, sim, results)
		return
	}

	runGame(cfg, opts)
}

// runGame opens the window and starts at the menu
func runGame(cfg *config.GameConfig, opts options) {
	manager := storage.OpenManager(storage.AppName)
	scores := storage.NewScoreStore(manager)
	settings := storage.NewSettingsStore(manager)
	if err := settings.Update(opts.applyOverrides(settings.Preferences())); err != nil {
		log.Printf("[Main] Warning: failed to save preferences: %v", err)
	}

	var audioCtx *ebaudio.Context
	if !opts.mute {
		audioCtx = ebaudio.NewContext(audio.SampleRate)
	}

	ctx := &scene.Context{
		Config:     cfg,
		Scores:     scores,
		Settings:   settings,
		Audio:      audio.NewBank(audioCtx),
		Cache:      render.NewCache(),
		RecordPath: opts.record,
		NewSeed:    opts.seeds(),
	}
	r := router.New(ctx)

	size := cfg.Display.Size(settings.Preferences().Orientation)
	g := game.New(r.Menu(), size.Width, size.Height)
	g.SetDT(1.0 / float64(cfg.Display.TPS))

	scale := cfg.Display.Scale
	g.OnResize = func(w, h int) {
		ebiten.SetWindowSize(w*scale, h*scale)
	}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.Display.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
