// Package entername provides the scene where a high score gets its name.
package entername

import (
	"image/color"
	"log"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wudong/internal/application/scene"
	"github.com/younwookim/wudong/internal/application/state"
	"github.com/younwookim/wudong/internal/application/system"
	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/audio"
	"github.com/younwookim/wudong/internal/infrastructure/render"
)

var (
	colorTitle  = color.RGBA{255, 215, 0, 255}
	colorText   = color.RGBA{230, 230, 255, 255}
	colorHint   = color.RGBA{130, 130, 180, 255}
	colorBox    = color.RGBA{0, 255, 255, 255}
	colorSkyTop = color.RGBA{15, 10, 40, 255}
	colorSkyBot = color.RGBA{40, 10, 60, 255}
)

// EnterName asks for the name to store with a qualifying score
type EnterName struct {
	ctx      *scene.Context
	controls scene.Controls
	score    int
	settings system.Settings
	name     []rune
	frame    int
	screenW  int
	screenH  int
}

// New creates the scene for score, keeping the screen of the finished run
func New(ctx *scene.Context, score int, settings system.Settings) *EnterName {
	size := ctx.Config.Display.Size(settings.Orientation.String())
	return &EnterName{
		ctx:      ctx,
		controls: scene.EbitenControls(),
		score:    score,
		settings: settings,
		screenW:  size.Width,
		screenH:  size.Height,
	}
}

// Allowed reports whether r may appear in a name
func Allowed(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_'
}

// Name returns the text typed so far
func (e *EnterName) Name() string {
	return string(e.name)
}

// ScreenSize implements scene.Sized
func (e *EnterName) ScreenSize() (int, int) {
	return e.screenW, e.screenH
}

// State returns StateEnterName
func (e *EnterName) State() state.GameState {
	return state.StateEnterName
}

// Update handles typing (implements scene.Scene)
func (e *EnterName) Update(_ float64) (scene.Scene, error) {
	e.frame++

	for _, r := range e.controls.Chars() {
		if Allowed(r) && len(e.name) < entity.MaxNameLength {
			e.name = append(e.name, r)
		}
	}

	switch {
	case e.controls.JustPressed(ebiten.KeyBackspace):
		if len(e.name) > 0 {
			e.name = e.name[:len(e.name)-1]
		}
	case e.controls.AnyPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter):
		return e.submit(), nil
	case e.controls.JustPressed(ebiten.KeyEscape):
		return e.ctx.Router.Leaderboard(-1), nil
	}
	return nil, nil
}

// submit stores the score and shows it on the leaderboard
func (e *EnterName) submit() scene.Scene {
	rank, err := e.ctx.Scores.Submit(e.Name(), e.score)
	if err != nil {
		log.Printf("[EnterName] Warning: %v", err)
	}
	if e.ctx.Audio != nil {
		e.ctx.Audio.Play(audio.SoundConfirm)
	}
	return e.ctx.Router.Leaderboard(rank)
}

// Draw renders the name prompt
func (e *EnterName) Draw(screen *ebiten.Image) {
	w, h := float64(e.screenW), float64(e.screenH)
	screen.DrawImage(e.ctx.Cache.Gradient(e.screenW, e.screenH, colorSkyTop, colorSkyBot), nil)

	cx, cy := w/2, h/2
	render.DrawPanel(screen, cx-170, cy-130, 340, 240, "", colorTitle)
	render.DrawTextCentered(screen, "NEW HIGH SCORE!", cx, cy-110, 2, colorTitle)
	render.DrawTextCentered(screen, render.FormatScore(e.score), cx, cy-70, 3, colorText)
	render.DrawTextCentered(screen, "ENTER YOUR NAME", cx, cy-15, 1, colorHint)

	boxW := float64(entity.MaxNameLength)*14 + 20
	render.DrawPanel(screen, cx-boxW/2, cy+5, boxW, 36, "", colorBox)
	text := e.Name()
	if e.frame/30%2 == 0 {
		text += "_"
	}
	render.DrawTextScaled(screen, text, cx-boxW/2+10, cy+10, 2, colorText)

	render.DrawTextCentered(screen, "ENTER: SAVE   ESC: SKIP", cx, cy+70, 1, colorHint)
}

// OnEnter is called when entering this scene
func (e *EnterName) OnEnter() {}

// OnExit is called when leaving this scene
func (e *EnterName) OnExit() {}
