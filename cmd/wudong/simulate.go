package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/younwookim/wudong/internal/application/system"
	"github.com/younwookim/wudong/internal/infrastructure/config"
)

// defaultMaxFrames caps a bot run at ten minutes of play
const defaultMaxFrames = 60 * 60 * 10

var printer = message.NewPrinter(language.English)

// simulation plays headless runs with the dodging bot
type simulation struct {
	Runs      int
	Seed      int64 // run i uses Seed+i
	Settings  system.Settings
	MaxFrames int
}

// runResult is how one bot run ended
type runResult struct {
	Seed   int64
	Score  int
	Level  int
	Frames int
	Secs   float64
	Cause  string // empty when the run hit MaxFrames
}

// Run plays every run in parallel. Results are in seed order.
func (sim simulation) Run(ctx context.Context, cfg *config.GameConfig) ([]runResult, error) {
	results := make([]runResult, sim.Runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range sim.Runs {
		seed := sim.Seed + int64(i)
		g.Go(func() error {
			r, err := sim.play(ctx, cfg, seed)
			if err != nil {
				return fmt.Errorf("run %d (seed %d): %w", i, seed, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (sim simulation) play(ctx context.Context, cfg *config.GameConfig, seed int64) (runResult, error) {
	session, err := system.NewSession(cfg, sim.Settings, seed)
	if err != nil {
		return runResult{}, err
	}

	bot := system.NewBot()
	for !session.Over() && session.Frame < sim.MaxFrames {
		if session.Frame%600 == 0 {
			if err := ctx.Err(); err != nil {
				return runResult{}, err
			}
		}
		session.Update(bot.Decide(session))
	}

	return runResult{
		Seed:   seed,
		Score:  session.Score(),
		Level:  session.Level,
		Frames: session.Frame,
		Secs:   float64(session.Frame) * session.DT(),
		Cause:  session.DeathCause,
	}, nil
}

// printSummary writes one line per run and the totals
func printSummary(w io.Writer, sim simulation, results []runResult) {
	s := sim.Settings
	printer.Fprintf(w, "Simulated %d runs (%s/%s/%s)\n", len(results), s.Orientation, s.Difficulty, s.Role)
	printer.Fprintf(w, "%-20s %10s %6s %8s  %s\n", "SEED", "SCORE", "LEVEL", "SECONDS", "HIT BY")

	total := 0
	for _, r := range results {
		cause := r.Cause
		if cause == "" {
			cause = "-"
		}
		printer.Fprintf(w, "%-20s %10d %6d %8.1f  %s\n", fmt.Sprint(r.Seed), r.Score, r.Level, r.Secs, cause)
		total += r.Score
	}
	if len(results) == 0 {
		return
	}

	best := slices.MaxFunc(results, func(a, b runResult) int { return cmp.Compare(a.Score, b.Score) })
	printer.Fprintf(w, "Best %d (seed %s), average %d\n", best.Score, fmt.Sprint(best.Seed), total/len(results))
}
