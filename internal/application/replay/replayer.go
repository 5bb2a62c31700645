package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/wudong/internal/application/system"
	"github.com/younwookim/wudong/internal/infrastructure/config"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Run replays the recording headlessly and returns the finished session.
// Playback stops at the end of the recording or when the run ends.
func Run(cfg *config.GameConfig, data ReplayData) (*system.Session, error) {
	session, err := system.NewSession(cfg, data.Settings(), data.Seed)
	if err != nil {
		return nil, fmt.Errorf("replay %s: %w", data.RunID, err)
	}

	r := NewReplayer(data)
	for !session.Over() {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		session.Update(in)
	}
	return session, nil
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, settings system.Settings, seed int64) ReplayData {
	data := ReplayData{
		Version:     Version,
		RunID:       uuid.NewString(),
		Seed:        seed,
		Orientation: settings.Orientation.String(),
		Difficulty:  settings.Difficulty,
		Role:        string(settings.Role),
		StartTime:   time.Now().Format(time.RFC3339),
		Frames:      make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
