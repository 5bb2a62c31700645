package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/wudong/internal/domain/entity"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatScore(tt.score))
		})
	}
}

func TestTextWidth(t *testing.T) {
	assert.InDelta(t, 21.0, TextWidth("abc"), 1e-9)
	assert.Zero(t, TextWidth(""))
}

func TestFade(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}

	assert.Equal(t, color.RGBA{100, 50, 25, 127}, Fade(c, 0.5))
	assert.Equal(t, c, Fade(c, 2), "clamped to 1")
	assert.Equal(t, color.RGBA{}, Fade(c, -1))
}

func TestShade(t *testing.T) {
	c := color.RGBA{250, 20, 100, 255}

	assert.Equal(t, color.RGBA{255, 60, 140, 255}, Shade(c, 40))
	assert.Equal(t, color.RGBA{220, 0, 70, 255}, Shade(c, -30))
}

func TestLerp(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{200, 100, 50, 255}

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, Lerp(a, b, 0.5))
}

func TestTransform_Apply(t *testing.T) {
	assert.Equal(t, Vec{3, 4}, Transform{}.Apply(Vec{3, 4}), "zero value is identity")

	// quarter turn about (10, 10): the nose above the pivot ends up right of it
	tr := Transform{CX: 10, CY: 10, Angle: math.Pi / 2}
	got := tr.Apply(Vec{10, 0})
	assert.InDelta(t, 20, got.X, 1e-9)
	assert.InDelta(t, 10, got.Y, 1e-9)
}

func TestFacing(t *testing.T) {
	assert.Equal(t, Transform{}, facing(entity.Vertical, 0, 0, 40))

	tr := facing(entity.Horizontal, 100, 200, 40)
	assert.Equal(t, 120.0, tr.CX)
	assert.Equal(t, 220.0, tr.CY)
}

func TestButton_Contains(t *testing.T) {
	b := NewButton(10, 20, 100, 40, "PLAY")

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 30, true},
		{"top-left corner", 10, 20, true},
		{"right edge is outside", 110, 30, false},
		{"above", 50, 19, false},
		{"below", 50, 60, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.x, tt.y))
		})
	}
}

func TestHealthColor(t *testing.T) {
	assert.Equal(t, color.RGBA{100, 200, 100, 255}, HealthColor(0.8))
	assert.Equal(t, color.RGBA{200, 180, 50, 255}, HealthColor(0.5))
	assert.Equal(t, color.RGBA{200, 50, 50, 255}, HealthColor(0.25))
}

func TestRegular(t *testing.T) {
	pts := regular(0, 0, 10, 10, 4, 0)

	assert.Len(t, pts, 4)
	assert.InDelta(t, 10, pts[0].X, 1e-9)
	assert.InDelta(t, 10, pts[1].Y, 1e-9)
}

func TestCache(t *testing.T) {
	c := NewCache()
	top, bottom := color.RGBA{0, 0, 0, 255}, color.RGBA{255, 255, 255, 255}

	g1 := c.Gradient(40, 30, top, bottom)
	g2 := c.Gradient(40, 30, top, bottom)
	assert.Same(t, g1, g2, "same key reuses the image")

	c.Gradient(30, 40, top, bottom)
	c.Scanlines(40, 30)
	assert.Equal(t, 3, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestDraw_NoPanic(t *testing.T) {
	dst := ebiten.NewImage(400, 600)
	body := color.RGBA{70, 130, 180, 255}

	assert.NotPanics(t, func() {
		for _, role := range []entity.Role{entity.RoleSpaceship, entity.RoleAeroplane, entity.RoleDragon} {
			DrawPlayer(dst, role, 100, 100, 40, body, 0.5, entity.Vertical)
			DrawPlayer(dst, role, 100, 100, 24, body, 0.5, entity.Horizontal)
		}
		for _, kind := range []entity.ObstacleKind{
			entity.KindMine, entity.KindBird, entity.KindTurtle, entity.KindMushroom,
			entity.KindMachineGun, entity.KindShotgun, entity.KindXRay, entity.KindSteelBar,
		} {
			DrawObstacle(dst, entity.NewObstacle(1, kind, 50, 50, 40, 40), body)
		}
		for roster := range BossLooks {
			b := entity.NewBoss(roster+1, roster, "BOSS", 100, 40, 90, 40, 25)
			DrawBoss(dst, b, body, body, 10)
			DrawBossBar(dst, b, 10, 10, 380, 30, body)
		}
	})
}
