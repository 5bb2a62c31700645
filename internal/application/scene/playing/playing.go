// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wudong/internal/application/scene"
	"github.com/younwookim/wudong/internal/application/state"
	"github.com/younwookim/wudong/internal/application/system"
	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/audio"
	"github.com/younwookim/wudong/internal/infrastructure/render"
)

const (
	bannerFrames      = 90
	hitstopCooldown   = 12 // frames between boss-hit freezes
	maxPopups         = 24
	shakeCutoff       = 0.1
	gameOverButtonW   = 120
	gameOverButtonH   = 36
	gameOverButtonGap = 16
)

// Playing is the main gameplay scene
type Playing struct {
	ctx      *scene.Context
	session  *system.Session
	settings system.Settings
	screenW  int
	screenH  int

	input    func() system.InputState
	controls scene.Controls
	paused   bool

	// Presentation
	background *render.Background
	particles  *entity.ParticleSystem
	popups     []*entity.ScorePopup
	fx         *rand.Rand // cosmetic randomness, never touches the session
	world      *ebiten.Image
	colors     palette
	banner     banner

	// Feedback
	hitstopFrames int
	sinceHitstop  int
	shake         float64
	shakeX        float64
	shakeY        float64

	// Game over
	finished   bool
	qualifies  bool
	restartBtn *render.Button
	menuBtn    *render.Button

	// Input recording
	recorder       *Recorder
	recordFilename string
	recordPath     string // file of the current run
}

type banner struct {
	title  string
	sub    string
	accent color.RGBA
	frames int
}

// New creates a new Playing scene for the given settings.
// If ctx.RecordPath is not empty, gameplay will be recorded.
func New(ctx *scene.Context, settings system.Settings) (*Playing, error) {
	seed := newSeed(ctx)
	session, err := system.NewSession(ctx.Config, settings, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to start run: %w", err)
	}

	size := ctx.Config.Display.Size(settings.Orientation.String())
	inputSystem := system.NewInputSystem()

	p := &Playing{
		ctx:            ctx,
		session:        session,
		settings:       settings,
		screenW:        size.Width,
		screenH:        size.Height,
		input:          inputSystem.GetInput,
		controls:       scene.EbitenControls(),
		fx:             rand.New(rand.NewSource(seed ^ 0x5eed)),
		colors:         newPalette(ctx.Config, settings.Role),
		recordFilename: ctx.RecordPath,
		recordPath:     ctx.RecordPath,
	}
	p.particles = entity.NewParticleSystem(p.fx)
	p.background = render.NewBackground(p.screenW, p.screenH, settings.Orientation, p.fx, ctx.Cache)
	p.layoutButtons()
	session.OnEvent = p.onEvent

	// Initialize recorder if recording is enabled
	if p.recordFilename != "" {
		p.recorder = NewRecorder(seed, settings)
		log.Printf("Recording enabled: %s (seed: %d)", p.recordFilename, seed)
	}

	// The first LevelStarted fired inside NewSession, before OnEvent was set
	p.showBanner("LEVEL 1", "GO!", colorNeonCyan)
	return p, nil
}

func newSeed(ctx *scene.Context) int64 {
	if ctx.NewSeed != nil {
		return ctx.NewSeed()
	}
	return time.Now().UnixNano()
}

func (p *Playing) layoutButtons() {
	cx, cy := float64(p.screenW)/2, float64(p.screenH)/2
	y := cy + 70
	p.restartBtn = render.NewButton(cx-gameOverButtonW-gameOverButtonGap/2, y, gameOverButtonW, gameOverButtonH, "RESTART")
	p.menuBtn = render.NewButton(cx+gameOverButtonGap/2, y, gameOverButtonW, gameOverButtonH, "MENU")
}

// ScreenSize implements scene.Sized
func (p *Playing) ScreenSize() (int, int) {
	return p.screenW, p.screenH
}

// State returns the scene-level game state: the session state, or Paused
func (p *Playing) State() state.GameState {
	if p.paused && !p.session.Over() {
		return state.StatePaused
	}
	return p.session.State
}

// Session returns the run being played
func (p *Playing) Session() *system.Session {
	return p.session
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if p.session.Over() {
		p.updateEffects()
		return p.updateGameOver(), nil
	}

	// Handle hitstop
	if p.hitstopFrames > 0 {
		p.hitstopFrames--
		return nil, nil
	}

	input := p.input()
	if input.Pause {
		p.paused = !p.paused
		return nil, nil
	}
	if p.paused {
		if p.controls.AnyPressed(ebiten.KeyQ, ebiten.KeyM) {
			return p.ctx.Router.Menu(), nil
		}
		return nil, nil
	}

	// F5: Save recording manually
	if p.recorder != nil && p.controls.JustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.session.Update(input)
	if p.session.State == state.StatePlaying {
		p.background.Update(p.session.Speed())
	}
	p.updateEffects()

	if p.session.Over() {
		p.finishRun()
	}
	return nil, nil // nil = stay on this scene
}

// updateEffects advances particles, popups, banner and shake
func (p *Playing) updateEffects() {
	p.sinceHitstop++
	p.particles.Update()

	alive := p.popups[:0]
	for _, sp := range p.popups {
		sp.Update()
		if sp.IsAlive() {
			alive = append(alive, sp)
		}
	}
	clear(p.popups[len(alive):])
	p.popups = alive

	if p.banner.frames > 0 {
		p.banner.frames--
	}

	// Decay screen shake
	p.shake *= p.ctx.Config.Feedback.ScreenShake.Decay
	if p.shake < shakeCutoff {
		p.shake = 0
	}
	p.shakeX = p.shake * (2*p.fx.Float64() - 1)
	p.shakeY = p.shake * (2*p.fx.Float64() - 1)
}

// finishRun runs once when the session reaches GameOver
func (p *Playing) finishRun() {
	if p.finished {
		return
	}
	p.finished = true
	p.paused = false
	p.qualifies = p.ctx.Scores.Qualifies(p.session.Score())

	// Auto-save recording on game over
	if p.recorder != nil {
		p.saveRecording()
		p.recorder.Stop()
	}
}

func (p *Playing) updateGameOver() scene.Scene {
	score := p.session.Score()
	x, y := p.controls.Cursor()
	clicked := p.controls.Clicked()

	switch {
	case p.controls.AnyPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter):
		p.play(audio.SoundConfirm)
		if p.qualifies {
			return p.ctx.Router.EnterName(score, p.settings)
		}
		return p.ctx.Router.Leaderboard(-1)

	case p.controls.JustPressed(ebiten.KeyR), clicked && p.restartBtn.Contains(x, y):
		p.play(audio.SoundConfirm)
		p.restart()

	case p.controls.AnyPressed(ebiten.KeyEscape, ebiten.KeyM), clicked && p.menuBtn.Contains(x, y):
		p.play(audio.SoundConfirm)
		return p.ctx.Router.Menu()
	}
	return nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

func (p *Playing) restart() {
	seed := newSeed(p.ctx)
	p.session.Restart(seed)
	p.fx.Seed(seed ^ 0x5eed)

	p.paused = false
	p.finished = false
	p.qualifies = false
	p.hitstopFrames = 0
	p.shake, p.shakeX, p.shakeY = 0, 0, 0
	p.particles.Clear()
	p.popups = nil
	p.showBanner("LEVEL 1", "GO!", colorNeonCyan)

	// Reset recorder if recording
	if p.recordFilename != "" {
		p.recorder = NewRecorder(seed, p.settings)
		p.recordPath = p.recorder.Filename(p.recordFilename)
		log.Printf("Recording restarted: %s (seed: %d)", p.recordPath, seed)
	}
}

func (p *Playing) showBanner(title, sub string, accent color.RGBA) {
	p.banner = banner{title: title, sub: sub, accent: accent, frames: bannerFrames}
}

func (p *Playing) addPopup(x, y float64, text string, c color.RGBA) {
	if len(p.popups) >= maxPopups {
		p.popups = p.popups[1:]
	}
	p.popups = append(p.popups, entity.NewScorePopup(x, y, text, c))
}

func (p *Playing) startShake() {
	if cfg := p.ctx.Config.Feedback.ScreenShake; cfg.Enabled {
		p.shake = cfg.Intensity
	}
}

func (p *Playing) startHitstop() {
	cfg := p.ctx.Config.Feedback.Hitstop
	if !cfg.Enabled || p.sinceHitstop < hitstopCooldown {
		return
	}
	p.hitstopFrames = cfg.Frames
	p.sinceHitstop = 0
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	// Save recording if still recording
	if p.recorder != nil && p.recorder.IsRecording() && p.recorder.FrameCount() > 0 {
		p.saveRecording()
		p.recorder.Stop()
	}
	if p.world != nil {
		p.world.Deallocate()
		p.world = nil
	}
}
