package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/wudong/internal/application/replay"
	"github.com/younwookim/wudong/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed and settings for deterministic replay
func NewRecorder(seed int64, settings system.Settings) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:     replay.Version,
			RunID:       uuid.NewString(),
			Seed:        seed,
			Orientation: settings.Orientation.String(),
			Difficulty:  settings.Difficulty,
			Role:        string(settings.Role),
			StartTime:   time.Now().Format(time.RFC3339),
			Frames:      make([]replay.FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.NewFrameInput(r.frame, input))
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) (err error) {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", filename, cerr)
		}
	}()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Filename returns base with the run id inserted before its extension,
// so every restarted run keeps its own file.
func (r *Recorder) Filename(base string) string {
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "_" + r.data.RunID + ext
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// RunID returns the unique id of the recorded run
func (r *Recorder) RunID() string {
	return r.data.RunID
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
