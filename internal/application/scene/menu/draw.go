package menu

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wudong/internal/domain/entity"
	"github.com/younwookim/wudong/internal/infrastructure/config"
	"github.com/younwookim/wudong/internal/infrastructure/render"
)

// Draw renders the menu
func (m *Menu) Draw(screen *ebiten.Image) {
	w, h := float64(m.screenW), float64(m.screenH)
	screen.DrawImage(m.ctx.Cache.Gradient(m.screenW, m.screenH, colorSkyTop, colorSkyBot), nil)
	render.DrawMotes(screen, m.motes)

	render.DrawTextCentered(screen, m.ctx.Config.Title, w/2, 30, 3, colorTitle)
	render.DrawTextCentered(screen, "DODGE. COLLECT. SURVIVE.", w/2, 74, 1, colorHint)

	m.drawRow(screen, "ORIENTATION", rowOrientation, m.orientationBtns)
	m.drawRow(screen, "DIFFICULTY", rowDifficulty, m.difficultyBtns)
	m.drawRow(screen, "ROLE", rowRole, m.roleBtns)

	mx, my := m.controls.Cursor()
	for _, b := range []*render.Button{m.playBtn, m.boardBtn, m.soundBtn} {
		b.Draw(screen, b.Contains(mx, my))
	}

	m.drawLegend(screen)

	hint := "ARROWS: MOVE   ENTER: PLAY   L: SCORES   M: SOUND"
	if m.prefs.OrientationValue() == entity.Vertical {
		hint = "ARROWS/WASD + ENTER   L: SCORES   M: SOUND"
	}
	render.DrawTextCentered(screen, hint, w/2, h-24, 1, colorHint)
}

func (m *Menu) drawRow(dst *ebiten.Image, label string, row int, btns []*render.Button) {
	if len(btns) == 0 {
		return
	}
	x, y := btns[0].X, btns[0].Y-16
	c := colorLabel
	if m.row == row {
		label = "> " + label
		c = colorTitle
	}
	render.DrawText(dst, label, x, y, c)

	mx, my := m.controls.Cursor()
	for _, b := range btns {
		b.Draw(dst, b.Contains(mx, my))
	}
}

// drawLegend lists every obstacle kind with its colour and effect
func (m *Menu) drawLegend(dst *ebiten.Image) {
	l := m.legend
	render.DrawPanel(dst, l.x, l.y, l.w, l.h, "OBSTACLES", colorTitle)

	cfg := m.ctx.Config
	rows := (len(config.ObstacleKindNames) + l.cols - 1) / l.cols
	colW := l.w / float64(l.cols)
	lineH := min(24, (l.h-34)/float64(rows))
	for i, name := range config.ObstacleKindNames {
		kc, ok := cfg.Obstacles.Kinds[name]
		if !ok {
			continue
		}
		col, r := i/rows, i%rows
		x := l.x + 12 + float64(col)*colW
		y := l.y + 30 + float64(r)*lineH

		ob := entity.NewObstacle(0, entity.ObstacleKind(name), x, y, 16, 16)
		if ob.Kind == entity.KindSteelBar {
			ob.W = 24
			ob.H = 10
			ob.Y += 3
		}
		render.DrawObstacle(dst, ob, kc.Color.RGBA())
		render.DrawText(dst, kc.Label, x+32, y+2, kc.Color.RGBA())
	}
}
