// Package leaderboard provides the high-score table scene.
package leaderboard

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wudong/internal/application/scene"
	"github.com/younwookim/wudong/internal/application/state"
	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/audio"
	"github.com/younwookim/wudong/internal/infrastructure/render"
)

const rowHeight = 26.0

var (
	colorTitle     = color.RGBA{255, 215, 0, 255}
	colorText      = color.RGBA{230, 230, 255, 255}
	colorDim       = color.RGBA{130, 130, 180, 255}
	colorHighlight = color.RGBA{0, 255, 255, 255}
	colorSkyTop    = color.RGBA{15, 10, 40, 255}
	colorSkyBot    = color.RGBA{40, 10, 60, 255}
)

// Leaderboard shows the top scores
type Leaderboard struct {
	ctx       *scene.Context
	controls  scene.Controls
	highlight int // rank of the entry just saved, -1 for none
	frame     int
	screenW   int
	screenH   int
	backBtn   *render.Button
}

// New creates the scene. highlight is the zero-based rank to mark, or -1.
func New(ctx *scene.Context, highlight int) *Leaderboard {
	prefs := ctx.Settings.Preferences()
	size := ctx.Config.Display.Size(prefs.OrientationValue().String())
	l := &Leaderboard{
		ctx:       ctx,
		controls:  scene.EbitenControls(),
		highlight: highlight,
		screenW:   size.Width,
		screenH:   size.Height,
	}
	l.backBtn = render.NewButton(float64(l.screenW)/2-60, float64(l.screenH)-70, 120, 34, "BACK")
	return l
}

// ScreenSize implements scene.Sized
func (l *Leaderboard) ScreenSize() (int, int) {
	return l.screenW, l.screenH
}

// State returns StateLeaderboard
func (l *Leaderboard) State() state.GameState {
	return state.StateLeaderboard
}

// Highlight returns the marked rank
func (l *Leaderboard) Highlight() int {
	return l.highlight
}

// Update waits for Enter, Escape or BACK (implements scene.Scene)
func (l *Leaderboard) Update(_ float64) (scene.Scene, error) {
	l.frame++

	back := l.controls.AnyPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeyEscape, ebiten.KeySpace)
	if !back && l.controls.Clicked() {
		back = l.backBtn.Contains(l.controls.Cursor())
	}
	if !back {
		return nil, nil
	}
	if l.ctx.Audio != nil {
		l.ctx.Audio.Play(audio.SoundConfirm)
	}
	return l.ctx.Router.Menu(), nil
}

// Draw renders the table
func (l *Leaderboard) Draw(screen *ebiten.Image) {
	w, h := float64(l.screenW), float64(l.screenH)
	screen.DrawImage(l.ctx.Cache.Gradient(l.screenW, l.screenH, colorSkyTop, colorSkyBot), nil)

	cx := w / 2
	render.DrawTextCentered(screen, "LEADERBOARD", cx, 30, 3, colorTitle)

	pw := min(w-40, 420)
	px, py := cx-pw/2, 90.0
	render.DrawPanel(screen, px, py, pw, rowHeight*entity.MaxHighScores+50, "TOP 10", colorTitle)

	entries := l.ctx.Scores.Entries()
	if len(entries) == 0 {
		render.DrawTextCentered(screen, "NO SCORES YET", cx, py+60, 1, colorDim)
	}
	for i, e := range entries {
		y := py + 34 + float64(i)*rowHeight
		c := colorText
		if i == l.highlight {
			c = colorHighlight
			if l.frame/20%2 == 0 {
				render.DrawBar(screen, px+8, y-4, pw-16, rowHeight-4, 1, render.Fade(colorHighlight, 0.2))
			}
		}
		render.DrawText(screen, fmt.Sprintf("%2d.", i+1), px+16, y, c)
		render.DrawText(screen, e.Name, px+56, y, c)
		score := render.FormatScore(e.Score)
		render.DrawText(screen, score, px+pw-16-render.TextWidth(score), y, c)
	}

	mx, my := l.controls.Cursor()
	l.backBtn.Draw(screen, l.backBtn.Contains(mx, my))
	render.DrawTextCentered(screen, "ENTER / ESC: MENU", cx, h-28, 1, colorDim)
}

// OnEnter is called when entering this scene
func (l *Leaderboard) OnEnter() {}

// OnExit is called when leaving this scene
func (l *Leaderboard) OnExit() {}
