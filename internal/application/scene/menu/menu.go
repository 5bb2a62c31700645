// Package menu provides the title screen where a run is configured.
package menu

import (
	"image/color"
	"log"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wudong/internal/application/scene"
	"github.com/younwookim/wudong/internal/application/state"
	"github.com/younwookim/wudong/internal/application/system"
	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/audio"
	"github.com/younwookim/wudong/internal/infrastructure/config"
	"github.com/younwookim/wudong/internal/infrastructure/render"
	"github.com/younwookim/wudong/internal/infrastructure/storage"
)

const moteCount = 40

// Rows of the keyboard focus, top to bottom
const (
	rowOrientation = iota
	rowDifficulty
	rowRole
	rowActions
	rowSound
	rowCount
)

var orientations = []entity.Orientation{entity.Vertical, entity.Horizontal}

var (
	colorTitle  = color.RGBA{0, 255, 255, 255}
	colorLabel  = color.RGBA{180, 180, 230, 255}
	colorHint   = color.RGBA{130, 130, 180, 255}
	colorPlay   = color.RGBA{50, 255, 120, 255}
	colorBoard  = color.RGBA{255, 215, 0, 255}
	colorSkyTop = color.RGBA{15, 10, 40, 255}
	colorSkyBot = color.RGBA{40, 10, 60, 255}
)

// Menu is the title scene
type Menu struct {
	ctx      *scene.Context
	controls scene.Controls
	prefs    storage.Preferences
	screenW  int
	screenH  int

	orientationBtns []*render.Button
	difficultyBtns  []*render.Button
	roleBtns        []*render.Button
	playBtn         *render.Button
	boardBtn        *render.Button
	soundBtn        *render.Button

	// Keyboard focus
	row    int
	action int // 0 = PLAY, 1 = LEADERBOARD

	legend legend
	motes  []*entity.Mote
	fx     *rand.Rand
}

type legend struct {
	x, y, w, h float64
	cols       int
}

// New creates the menu from the saved preferences
func New(ctx *scene.Context) *Menu {
	seed := time.Now().UnixNano()
	if ctx.NewSeed != nil {
		seed = ctx.NewSeed()
	}
	m := &Menu{
		ctx:      ctx,
		controls: scene.EbitenControls(),
		prefs:    normalize(ctx.Config, ctx.Settings.Preferences()),
		fx:       rand.New(rand.NewSource(seed)),
	}
	m.resize()
	return m
}

// normalize replaces choices the config does not know with defaults
func normalize(cfg *config.GameConfig, p storage.Preferences) storage.Preferences {
	def := storage.DefaultPreferences()
	if _, ok := cfg.Difficulties[p.Difficulty]; !ok {
		p.Difficulty = def.Difficulty
	}
	if _, ok := cfg.Player.Roles[p.Role]; !ok {
		p.Role = def.Role
	}
	p.Orientation = p.OrientationValue().String()
	return p
}

// resize adopts the screen size of the chosen orientation
func (m *Menu) resize() {
	size := m.ctx.Config.Display.Size(m.prefs.Orientation)
	m.screenW, m.screenH = size.Width, size.Height
	m.layout()

	palette := []color.RGBA{colorTitle, colorPlay, colorBoard}
	for _, name := range config.RoleNames {
		palette = append(palette, m.ctx.Config.Player.Roles[name].Glow.RGBA())
	}
	m.motes = make([]*entity.Mote, moteCount)
	for i := range m.motes {
		m.motes[i] = entity.NewMote(m.fx, float64(m.screenW), float64(m.screenH), palette)
	}
}

func (m *Menu) layout() {
	w := float64(m.screenW)
	x0, cw := 20.0, w-40
	if m.prefs.OrientationValue() == entity.Horizontal {
		x0, cw = 30, 380
		m.legend = legend{x: 440, y: 100, w: w - 470, h: 250, cols: 1}
	} else {
		m.legend = legend{x: x0, y: 400, w: cw, h: 125, cols: 2}
	}

	row := func(y float64, labels []string) []*render.Button {
		n := float64(len(labels))
		gap := 8.0
		bw := (cw - gap*(n-1)) / n
		btns := make([]*render.Button, len(labels))
		for i, label := range labels {
			btns[i] = render.NewButton(x0+float64(i)*(bw+gap), y, bw, 30, label)
		}
		return btns
	}

	m.orientationBtns = row(118, []string{"VERTICAL", "HORIZONTAL"})
	m.difficultyBtns = row(180, upper(config.DifficultyNames))
	m.roleBtns = row(242, upper(config.RoleNames))

	actions := row(296, []string{"PLAY", "LEADERBOARD"})
	m.playBtn, m.boardBtn = actions[0], actions[1]
	m.playBtn.H, m.boardBtn.H = 36, 36
	m.playBtn.Accent = colorPlay
	m.boardBtn.Accent = colorBoard

	m.soundBtn = render.NewButton(x0, 344, cw, 26, "")
	m.syncButtons()
}

func upper(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ToUpper(n)
	}
	return out
}

// syncButtons marks the current choices and the keyboard focus
func (m *Menu) syncButtons() {
	for i, b := range m.orientationBtns {
		b.Selected = orientations[i].String() == m.prefs.Orientation
	}
	for i, b := range m.difficultyBtns {
		b.Selected = config.DifficultyNames[i] == m.prefs.Difficulty
	}
	for i, b := range m.roleBtns {
		b.Selected = config.RoleNames[i] == m.prefs.Role
	}
	m.playBtn.Selected = m.row == rowActions && m.action == 0
	m.boardBtn.Selected = m.row == rowActions && m.action == 1

	m.soundBtn.Label = "SOUND: OFF"
	if m.prefs.SoundEnabled {
		m.soundBtn.Label = "SOUND: ON"
	}
	m.soundBtn.Selected = m.row == rowSound
}

// ScreenSize implements scene.Sized
func (m *Menu) ScreenSize() (int, int) {
	return m.screenW, m.screenH
}

// State returns StateMenu
func (m *Menu) State() state.GameState {
	return state.StateMenu
}

// Preferences returns the choices currently shown
func (m *Menu) Preferences() storage.Preferences {
	return m.prefs
}

// Settings returns the run settings for the current choices
func (m *Menu) Settings() system.Settings {
	return system.Settings{
		Orientation: m.prefs.OrientationValue(),
		Difficulty:  m.prefs.Difficulty,
		Role:        m.prefs.RoleValue(),
	}
}

// Update handles mouse and keyboard (implements scene.Scene)
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	for _, mote := range m.motes {
		mote.Update(float64(m.screenW), float64(m.screenH))
	}

	if m.controls.Clicked() {
		if next := m.click(m.controls.Cursor()); next != nil {
			return next, nil
		}
	}

	c := m.controls
	switch {
	case c.AnyPressed(ebiten.KeyArrowUp, ebiten.KeyW):
		m.row = (m.row + rowCount - 1) % rowCount
	case c.AnyPressed(ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyTab):
		m.row = (m.row + 1) % rowCount
	case c.AnyPressed(ebiten.KeyArrowLeft, ebiten.KeyA):
		m.step(-1)
	case c.AnyPressed(ebiten.KeyArrowRight, ebiten.KeyD):
		m.step(1)
	case c.AnyPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace):
		return m.activate(), nil
	case c.JustPressed(ebiten.KeyL):
		return m.leaderboard(), nil
	case c.JustPressed(ebiten.KeyM):
		m.toggleSound()
	}
	m.syncButtons()
	return nil, nil
}

// click handles a mouse click at x, y. It returns the next scene, if any.
func (m *Menu) click(x, y float64) scene.Scene {
	for i, b := range m.orientationBtns {
		if b.Contains(x, y) {
			m.row = rowOrientation
			m.setOrientation(orientations[i])
			return nil
		}
	}
	for i, b := range m.difficultyBtns {
		if b.Contains(x, y) {
			m.row = rowDifficulty
			m.prefs.Difficulty = config.DifficultyNames[i]
			m.syncButtons()
			return nil
		}
	}
	for i, b := range m.roleBtns {
		if b.Contains(x, y) {
			m.row = rowRole
			m.prefs.Role = config.RoleNames[i]
			m.syncButtons()
			return nil
		}
	}
	switch {
	case m.playBtn.Contains(x, y):
		return m.play()
	case m.boardBtn.Contains(x, y):
		return m.leaderboard()
	case m.soundBtn.Contains(x, y):
		m.toggleSound()
	}
	return nil
}

// step moves the choice of the focused row by dir
func (m *Menu) step(dir int) {
	cycle := func(names []string, current string) string {
		i := slices.Index(names, current)
		return names[(i+dir+len(names))%len(names)]
	}

	switch m.row {
	case rowOrientation:
		m.setOrientation(entity.ParseOrientation(cycle([]string{"vertical", "horizontal"}, m.prefs.Orientation)))
	case rowDifficulty:
		m.prefs.Difficulty = cycle(config.DifficultyNames, m.prefs.Difficulty)
	case rowRole:
		m.prefs.Role = cycle(config.RoleNames, m.prefs.Role)
	case rowActions:
		m.action = (m.action + 1) % 2
	case rowSound:
		m.toggleSound()
	}
}

// activate runs the Enter key on the focused row
func (m *Menu) activate() scene.Scene {
	switch {
	case m.row == rowSound:
		m.toggleSound()
		return nil
	case m.row == rowActions && m.action == 1:
		return m.leaderboard()
	}
	return m.play()
}

func (m *Menu) setOrientation(o entity.Orientation) {
	if o.String() == m.prefs.Orientation {
		return
	}
	m.prefs.Orientation = o.String()
	m.ctx.Cache.Clear()
	m.resize()
}

func (m *Menu) toggleSound() {
	m.prefs.SoundEnabled = !m.prefs.SoundEnabled
	if m.ctx.Audio != nil {
		m.ctx.Audio.SetMuted(!m.prefs.SoundEnabled)
	}
	m.syncButtons()
	m.playSound(audio.SoundConfirm)
}

func (m *Menu) playSound(s audio.Sound) {
	if m.ctx.Audio != nil {
		m.ctx.Audio.Play(s)
	}
}

// play saves the choices and starts a run
func (m *Menu) play() scene.Scene {
	if err := m.ctx.Settings.Update(m.prefs); err != nil {
		log.Printf("[Menu] Warning: failed to save preferences: %v", err)
	}
	m.playSound(audio.SoundConfirm)
	return m.ctx.Router.Play(m.Settings())
}

func (m *Menu) leaderboard() scene.Scene {
	m.playSound(audio.SoundConfirm)
	return m.ctx.Router.Leaderboard(-1)
}

// OnEnter is called when entering this scene
func (m *Menu) OnEnter() {
	if m.ctx.Audio != nil {
		m.ctx.Audio.SetMuted(!m.prefs.SoundEnabled)
	}
}

// OnExit is called when leaving this scene
func (m *Menu) OnExit() {}
