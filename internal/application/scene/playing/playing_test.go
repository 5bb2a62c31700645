package playing

import (
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wudong/internal/application/replay"
	"github.com/younwookim/wudong/internal/application/scene"
	"github.com/younwookim/wudong/internal/application/scene/scenetest"
	"github.com/younwookim/wudong/internal/application/state"
	"github.com/younwookim/wudong/internal/application/system"
	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/audio"
)

const configDir = "../../../../cmd/wudong/configs"

var defaultSettings = system.Settings{
	Orientation: entity.Vertical,
	Difficulty:  "easy",
	Role:        entity.RoleSpaceship,
}

// createTestPlaying builds a scene whose gameplay input and controls are scripted
func createTestPlaying(t *testing.T, settings system.Settings) (*Playing, *scenetest.Router, *system.InputState, *scenetest.Input) {
	t.Helper()
	ctx, router := scenetest.NewContext(t, configDir)
	p, err := New(ctx, settings)
	require.NoError(t, err)

	input := &system.InputState{}
	p.input = func() system.InputState {
		in := *input
		input.Pause = false
		return in
	}
	keys := &scenetest.Input{}
	p.controls = keys.Controls()
	return p, router, input, keys
}

// killPlayer drops a mine on the player and runs the frame that hits it
func killPlayer(t *testing.T, p *Playing) {
	t.Helper()
	a := p.session.Arena
	pl := a.Player
	a.Obstacles = append(a.Obstacles, entity.NewObstacle(a.NextID(), entity.KindMine, pl.X, pl.Y, 40, 40))
	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)
	require.Equal(t, state.StateGameOver, p.State())
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
	var _ scene.Sized = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p, _, _, _ := createTestPlaying(t, defaultSettings)

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, int64(42), p.session.Seed)
	assert.Equal(t, 1, p.session.Level)
	assert.Nil(t, p.recorder)

	w, h := p.ScreenSize()
	assert.Equal(t, 400, w)
	assert.Equal(t, 600, h)
}

func TestNewPlaying_Horizontal(t *testing.T) {
	settings := defaultSettings
	settings.Orientation = entity.Horizontal
	p, _, _, _ := createTestPlaying(t, settings)

	w, h := p.ScreenSize()
	assert.Equal(t, 800, w)
	assert.Equal(t, 500, h)
}

func TestNewPlaying_UnknownDifficulty(t *testing.T) {
	ctx, _ := scenetest.NewContext(t, configDir)
	settings := defaultSettings
	settings.Difficulty = "nightmare"

	_, err := New(ctx, settings)
	assert.Error(t, err)
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p, _, _, _ := createTestPlaying(t, defaultSettings)

	// Normal update should return nil (stay on same scene)
	next, err := p.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
	assert.Equal(t, 1, p.session.Frame)
}

func TestPlaying_Pause(t *testing.T) {
	p, router, input, keys := createTestPlaying(t, defaultSettings)
	_, _ = p.Update(1.0 / 60.0)

	input.Pause = true
	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, state.StatePaused, p.State())

	// The run is frozen while paused
	for range 30 {
		_, _ = p.Update(1.0 / 60.0)
	}
	assert.Equal(t, 1, p.session.Frame)

	input.Pause = true
	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, state.StatePlaying, p.State())
	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, 2, p.session.Frame)

	// Q while paused leaves for the menu
	input.Pause = true
	_, _ = p.Update(1.0 / 60.0)
	keys.Press(ebiten.KeyQ)
	next, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.NotNil(t, next)
	assert.Equal(t, "menu", router.Last())
}

func TestPlaying_GameOver_QualifyingScoreGoesToEnterName(t *testing.T) {
	p, router, _, keys := createTestPlaying(t, defaultSettings)
	for range 120 {
		_, _ = p.Update(1.0 / 60.0)
	}
	killPlayer(t, p)
	assert.True(t, p.qualifies, "an empty table takes any score")

	// Nothing happens until the player chooses
	next, _ := p.Update(1.0 / 60.0)
	assert.Nil(t, next)

	keys.Press(ebiten.KeyEnter)
	next, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.NotNil(t, next)
	assert.Equal(t, "entername", router.Last())
	assert.Equal(t, p.session.Score(), router.Score)
	assert.Equal(t, defaultSettings, router.Settings)
}

func TestPlaying_GameOver_LowScoreGoesToLeaderboard(t *testing.T) {
	p, router, _, keys := createTestPlaying(t, defaultSettings)
	for i := range 10 {
		_, err := p.ctx.Scores.Submit("ACE", 100000+i)
		require.NoError(t, err)
	}
	killPlayer(t, p)
	assert.False(t, p.qualifies)

	keys.Press(ebiten.KeyEnter)
	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, "leaderboard", router.Last())
	assert.Equal(t, -1, router.Highlight)
}

func TestPlaying_GameOver_Restart(t *testing.T) {
	p, router, _, keys := createTestPlaying(t, defaultSettings)
	killPlayer(t, p)

	keys.ClickAt(p.restartBtn.X+1, p.restartBtn.Y+1)
	next, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Empty(t, router.Routes)

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 0, p.session.Frame)
	assert.Equal(t, 0, p.session.Score())
	assert.False(t, p.finished)
}

func TestPlaying_GameOver_Menu(t *testing.T) {
	p, router, _, keys := createTestPlaying(t, defaultSettings)
	killPlayer(t, p)

	keys.ClickAt(p.menuBtn.X+1, p.menuBtn.Y+1)
	next, _ := p.Update(1.0 / 60.0)
	assert.NotNil(t, next)
	assert.Equal(t, "menu", router.Last())
}

func TestPlaying_Hitstop(t *testing.T) {
	p, _, _, _ := createTestPlaying(t, defaultSettings)
	for range hitstopCooldown {
		_, _ = p.Update(1.0 / 60.0)
	}
	frame := p.session.Frame

	p.onEvent(system.BossHit{X: 100, Y: 100, Health: 10})
	frames := p.ctx.Config.Feedback.Hitstop.Frames
	require.Positive(t, frames)
	for range frames {
		_, _ = p.Update(1.0 / 60.0)
	}
	assert.Equal(t, frame, p.session.Frame, "hitstop freezes the run")

	// A second hit right away does not freeze again
	p.onEvent(system.BossHit{X: 100, Y: 100, Health: 9})
	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, frame+1, p.session.Frame)
}

func TestPlaying_ShakeOnDeath(t *testing.T) {
	p, _, _, _ := createTestPlaying(t, defaultSettings)
	intensity := p.ctx.Config.Feedback.ScreenShake.Intensity

	p.onEvent(system.PlayerDied{X: 10, Y: 10, Cause: "mine"})
	assert.Equal(t, intensity, p.shake)
	assert.NotEmpty(t, p.particles.Particles)

	for range 200 {
		p.updateEffects()
	}
	assert.Zero(t, p.shake)
	assert.Zero(t, p.shakeX)
}

func TestPlaying_Popups(t *testing.T) {
	p, _, _, _ := createTestPlaying(t, defaultSettings)

	p.onEvent(system.ObstacleDestroyed{Kind: entity.KindMine, X: 50, Y: 60, Bonus: 25})
	require.Len(t, p.popups, 1)
	assert.Equal(t, "+25", p.popups[0].Text)

	for range maxPopups + 5 {
		p.onEvent(system.ProjectileDestroyed{X: 1, Y: 1, Bonus: 5})
	}
	assert.Len(t, p.popups, maxPopups)

	for range 60 {
		p.updateEffects()
	}
	assert.Empty(t, p.popups)
}

func TestPlaying_Banners(t *testing.T) {
	p, _, _, _ := createTestPlaying(t, defaultSettings)
	assert.Equal(t, "LEVEL 1", p.banner.title)

	p.onEvent(system.BossSpawned{Level: 1, Name: "MECHA-SENTINEL"})
	assert.Equal(t, "WARNING", p.banner.title)
	assert.Equal(t, "MECHA-SENTINEL", p.banner.sub)

	p.onEvent(system.BossDefeated{Level: 1, Name: "MECHA-SENTINEL", Bonus: 500})
	assert.Equal(t, "MECHA-SENTINEL DEFEATED", p.banner.title)
	assert.Equal(t, "BONUS +500", p.banner.sub)

	p.onEvent(system.LevelStarted{Level: 2})
	assert.Equal(t, "LEVEL 2", p.banner.title)
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		name  string
		event system.Event
		sound audio.Sound
		ok    bool
	}{
		{"shot", system.ShotFired{Weapon: entity.WeaponMachineGun}, audio.SoundShoot, true},
		{"bird", system.PickupCollected{Kind: entity.KindBird}, audio.SoundBoost, true},
		{"turtle", system.PickupCollected{Kind: entity.KindTurtle}, audio.SoundSlow, true},
		{"mushroom", system.PickupCollected{Kind: entity.KindMushroom}, audio.SoundShrink, true},
		{"weapon", system.PickupCollected{Kind: entity.KindShotgun}, audio.SoundPickup, true},
		{"mine destroyed", system.ObstacleDestroyed{Kind: entity.KindMine}, audio.SoundExplode, true},
		{"boss hit", system.BossHit{}, audio.SoundBossHit, true},
		{"boss defeated", system.BossDefeated{}, audio.SoundBossDefeated, true},
		{"died", system.PlayerDied{}, audio.SoundGameOver, true},
		{"level 2", system.LevelStarted{Level: 2}, audio.SoundConfirm, true},
		{"level 1", system.LevelStarted{Level: 1}, audio.SoundConfirm, false},
		{"escaped", system.BossEscaped{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := soundFor(tt.event)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.sound, s)
			}
		})
	}
}

func TestPlaying_OnEnterOnExit(t *testing.T) {
	p, _, _, _ := createTestPlaying(t, defaultSettings)

	// OnEnter and OnExit should not panic
	assert.NotPanics(t, func() {
		p.OnEnter()
		p.OnExit()
	})
}

func TestPlaying_WithRecorder(t *testing.T) {
	ctx, _ := scenetest.NewContext(t, configDir)
	ctx.RecordPath = filepath.Join(t.TempDir(), "run.json")
	p, err := New(ctx, defaultSettings)
	require.NoError(t, err)
	require.NotNil(t, p.recorder)

	script := []system.InputState{{Left: true}, {Left: true}, {}, {Right: true}}
	i := 0
	p.input = func() system.InputState {
		in := script[i%len(script)]
		i++
		return in
	}
	keys := &scenetest.Input{}
	p.controls = keys.Controls()

	// Update should record frames
	for range 90 {
		_, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
	}
	assert.Equal(t, 90, p.recorder.FrameCount())
	assert.Equal(t, int64(42), p.recorder.GetData().Seed)

	// Game over stops and saves the recording
	killPlayer(t, p)
	assert.False(t, p.recorder.IsRecording())
	assert.Equal(t, 91, p.recorder.FrameCount())

	data, err := replay.LoadReplay(ctx.RecordPath)
	require.NoError(t, err)
	assert.Equal(t, p.recorder.RunID(), data.RunID)
	assert.Equal(t, "vertical", data.Orientation)
	assert.Equal(t, "easy", data.Difficulty)
	assert.Equal(t, "spaceship", data.Role)
	assert.Len(t, data.Frames, 91)
}

func TestPlaying_OnExitSavesRecording(t *testing.T) {
	ctx, _ := scenetest.NewContext(t, configDir)
	ctx.RecordPath = filepath.Join(t.TempDir(), "exit.json")
	p, err := New(ctx, defaultSettings)
	require.NoError(t, err)
	p.input = func() system.InputState { return system.InputState{} }
	keys := &scenetest.Input{}
	p.controls = keys.Controls()

	for range 10 {
		_, _ = p.Update(1.0 / 60.0)
	}
	p.OnExit()
	assert.False(t, p.recorder.IsRecording())

	data, err := replay.LoadReplay(ctx.RecordPath)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 10)
}

func TestPlaying_RestartRecordsToNewFile(t *testing.T) {
	ctx, _ := scenetest.NewContext(t, configDir)
	ctx.RecordPath = filepath.Join(t.TempDir(), "run.json")
	p, err := New(ctx, defaultSettings)
	require.NoError(t, err)
	p.input = func() system.InputState { return system.InputState{} }
	keys := &scenetest.Input{}
	p.controls = keys.Controls()

	for range 10 {
		_, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
	}
	killPlayer(t, p)
	first := p.recorder.RunID()

	keys.Press(ebiten.KeyR)
	_, err = p.Update(1.0 / 60.0)
	require.NoError(t, err)
	keys.Next()
	require.False(t, p.finished)
	second := p.recorder.RunID()
	require.NotEqual(t, first, second)

	for range 5 {
		_, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
	}
	p.OnExit()

	data, err := replay.LoadReplay(ctx.RecordPath)
	require.NoError(t, err)
	assert.Equal(t, first, data.RunID, "the first run is not overwritten")
	assert.Len(t, data.Frames, 11)

	data, err = replay.LoadReplay(filepath.Join(filepath.Dir(ctx.RecordPath), "run_"+second+".json"))
	require.NoError(t, err)
	assert.Equal(t, second, data.RunID)
	assert.Len(t, data.Frames, 5)
}

func TestRecorder_Filename(t *testing.T) {
	r := NewRecorder(7, defaultSettings)
	id := r.RunID()

	assert.Equal(t, filepath.Join("out", "run_"+id+".json"), r.Filename(filepath.Join("out", "run.json")))
	assert.Equal(t, "replay_"+id, r.Filename("replay"))
}

func TestRecorder_SaveToMissingDirectory(t *testing.T) {
	r := NewRecorder(7, defaultSettings)
	r.RecordFrame(system.InputState{Left: true})
	assert.Error(t, r.Save(filepath.Join(t.TempDir(), "missing", "run.json")))
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(7, defaultSettings)
	assert.True(t, r.IsRecording())
	assert.NotEmpty(t, r.RunID())

	r.RecordFrame(system.InputState{Left: true, Pause: true})
	r.RecordFrame(system.InputState{Down: true})
	assert.Equal(t, 2, r.FrameCount())

	frames := r.GetData().Frames
	assert.Equal(t, replay.FrameInput{F: 0, L: true}, frames[0])
	assert.Equal(t, replay.FrameInput{F: 1, D: true}, frames[1])

	r.Stop()
	r.RecordFrame(system.InputState{Right: true})
	assert.Equal(t, 2, r.FrameCount(), "stopped recorders ignore input")
}

func TestRecorder_SaveWithoutFrames(t *testing.T) {
	r := NewRecorder(7, defaultSettings)
	assert.Error(t, r.Save(filepath.Join(t.TempDir(), "empty.json")))
}
