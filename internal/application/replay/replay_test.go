package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wudong/internal/application/state"
	"github.com/younwookim/wudong/internal/application/system"
	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/config"
)

func loadTestConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/wudong/configs").LoadGame()
	require.NoError(t, err)
	return cfg
}

var testSettings = system.Settings{
	Orientation: entity.Horizontal,
	Difficulty:  "medium",
	Role:        entity.RoleDragon,
}

func TestFrameInput_OmitsIdleKeys(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":7}`, string(data))

	data, err = json.Marshal(FrameInput{F: 8, L: true, D: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":8,"l":true,"d":true}`, string(data))
}

func TestNewFrameInput_DropsPause(t *testing.T) {
	fi := NewFrameInput(3, system.InputState{Right: true, Up: true, Pause: true})

	assert.Equal(t, FrameInput{F: 3, R: true, U: true}, fi)
	assert.Equal(t, system.InputState{Right: true, Up: true}, fi.Input())
}

func TestReplayData_Settings(t *testing.T) {
	data := ReplayData{Orientation: "horizontal", Difficulty: "medium", Role: "dragon"}
	assert.Equal(t, testSettings, data.Settings())

	data = ReplayData{Orientation: "sideways", Difficulty: "easy", Role: "submarine"}
	s := data.Settings()
	assert.Equal(t, entity.Vertical, s.Orientation)
	assert.Equal(t, entity.RoleSpaceship, s.Role)
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, U: true},
			{F: 2},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Left)
	assert.True(t, input.Right)
	assert.True(t, input.Up)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{}, input)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	data := CreateTestReplayData(5, testSettings, 1)
	replayer := NewReplayer(data)

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_TotalFramesAndSeed(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(10, testSettings, 99999))

	assert.Equal(t, 10, replayer.TotalFrames())
	assert.Equal(t, int64(99999), replayer.Seed())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(ReplayData{Frames: []FrameInput{{F: 0, D: true}, {F: 1}}})

	replayer.GetInput()
	replayer.GetInput()
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, input.Down)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, testSettings, 12345)

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, "horizontal", data.Orientation)
	assert.Equal(t, "medium", data.Difficulty)
	assert.Equal(t, "dragon", data.Role)
	_, err := uuid.Parse(data.RunID)
	assert.NoError(t, err)
	require.Len(t, data.Frames, 60)

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.Equal(t, system.InputState{}, frame.Input())
	}
}

func TestLoadReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	want := CreateTestReplayData(3, testSettings, 7)
	raw, err := json.Marshal(want)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	got, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadReplay(path)
	assert.Error(t, err)
}

func TestRun_MatchesLiveSession(t *testing.T) {
	cfg := loadTestConfig(t)

	// Play a live run with the bot and record what it pressed
	live, err := system.NewSession(cfg, testSettings, 2024)
	require.NoError(t, err)
	bot := system.NewBot()
	data := CreateTestReplayData(0, testSettings, 2024)
	for i := 0; i < 1800 && !live.Over(); i++ {
		in := bot.Decide(live)
		data.Frames = append(data.Frames, NewFrameInput(i, in))
		live.Update(in)
	}

	replayed, err := Run(cfg, data)
	require.NoError(t, err)

	assert.Equal(t, live.Score(), replayed.Score())
	assert.Equal(t, live.Level, replayed.Level)
	assert.Equal(t, live.State, replayed.State)
	assert.Equal(t, live.Frame, replayed.Frame)
	assert.Equal(t, live.Arena.Player.X, replayed.Arena.Player.X)
	assert.Equal(t, live.Arena.Player.Y, replayed.Arena.Player.Y)
}

func TestRun_StopsAtGameOver(t *testing.T) {
	cfg := loadTestConfig(t)
	// An idle player eventually meets a mine; extra frames are ignored
	data := CreateTestReplayData(20000, system.Settings{Orientation: entity.Vertical, Difficulty: "hard", Role: entity.RoleSpaceship}, 5)

	session, err := Run(cfg, data)
	require.NoError(t, err)
	assert.Equal(t, state.StateGameOver, session.State)
	assert.Less(t, session.Frame, 20000)
}

func TestRun_UnknownDifficulty(t *testing.T) {
	cfg := loadTestConfig(t)
	data := CreateTestReplayData(1, testSettings, 1)
	data.Difficulty = "nightmare"

	_, err := Run(cfg, data)
	assert.Error(t, err)
}
