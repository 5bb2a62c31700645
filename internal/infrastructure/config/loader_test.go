package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/wudong/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, "WU DONG Running", cfg.Title)
	assert.Equal(t, 400, cfg.Display.Vertical.Width)
	assert.Equal(t, 600, cfg.Display.Vertical.Height)
	assert.Equal(t, 800, cfg.Display.Horizontal.Width)
	assert.Equal(t, 500, cfg.Display.Horizontal.Height)
	assert.Equal(t, 60, cfg.Display.TPS)
	assert.Equal(t, 40.0, cfg.Player.Size)

	easy := cfg.Difficulties["easy"]
	assert.Equal(t, 1, easy.Blocks)
	assert.Equal(t, 3.0, easy.BaseSpeed)
	assert.Equal(t, 60, easy.SpawnRate)

	hard := cfg.Difficulties["hard"]
	assert.Equal(t, 3, hard.Blocks)
	assert.Equal(t, 40, hard.SpawnRate)

	mine, ok := cfg.Obstacles.Kinds["mine"]
	require.True(t, ok)
	assert.Equal(t, 50, mine.Weight)

	assert.Len(t, cfg.Bosses, 10)
	assert.Equal(t, "MECHA-SENTINEL", cfg.Bosses[0].Name)
	assert.Equal(t, "THE CORE", cfg.Bosses[9].Name)
	assert.Equal(t, []string{"bird", "turtle", "machinegun", "shotgun", "xray"}, cfg.Levels.BossFight.SpawnKinds)
}

func TestLoader_LoadGame_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		GameFile: &fstest.MapFile{Data: []byte("title: [broken")},
	}
	loader := NewFSLoader(fsys, "configs")

	_, err := loader.LoadGame()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configs/game.yaml")
}

func TestLoader_LoadGame_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "configs")

	_, err := loader.LoadGame()
	assert.Error(t, err)
}

func TestGameConfig_Boss(t *testing.T) {
	cfg := &GameConfig{Bosses: []BossConfig{{Name: "A"}, {Name: "B"}}}

	assert.Equal(t, "A", cfg.Boss(0).Name)
	assert.Equal(t, "A", cfg.Boss(1).Name)
	assert.Equal(t, "B", cfg.Boss(2).Name)
	assert.Equal(t, "B", cfg.Boss(11).Name, "levels past the roster reuse the last boss")
}

func TestDisplayConfig_Size(t *testing.T) {
	d := DisplayConfig{
		Vertical:   ScreenSize{Width: 400, Height: 600},
		Horizontal: ScreenSize{Width: 800, Height: 500},
	}

	assert.Equal(t, ScreenSize{Width: 800, Height: 500}, d.Size("horizontal"))
	assert.Equal(t, ScreenSize{Width: 400, Height: 600}, d.Size("vertical"))
	assert.Equal(t, ScreenSize{Width: 400, Height: 600}, d.Size("sideways"))
}
