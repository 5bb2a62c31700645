package main

import (
	"fmt"
	"io"

	"github.com/younwookim/wudong/internal/application/replay"
	"github.com/younwookim/wudong/internal/infrastructure/config"
)

// runReplay plays a recording without a window and prints how it ended
func runReplay(cfg *config.GameConfig, filename string, w io.Writer) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}

	session, err := replay.Run(cfg, *data)
	if err != nil {
		return err
	}

	settings := data.Settings()
	fmt.Fprintf(w, "Replay %s (seed %d, %s/%s/%s)\n", data.RunID, data.Seed,
		settings.Orientation, settings.Difficulty, settings.Role)
	fmt.Fprintf(w, "Frames: %d of %d\n", session.Frame, len(data.Frames))
	fmt.Fprintf(w, "State:  %s\n", session.State)
	fmt.Fprintf(w, "Level:  %d\n", session.Level)
	fmt.Fprintf(w, "Score:  %s\n", printer.Sprintf("%d", session.Score()))
	if session.DeathCause != "" {
		fmt.Fprintf(w, "Hit by: %s\n", session.DeathCause)
	}
	return nil
}
