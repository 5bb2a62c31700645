package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wudong/internal/domain/entity"
)

func TestBot_DodgesMineOverhead(t *testing.T) {
	cfg := createTestGameConfig()
	s, err := NewSession(cfg, easySettings(entity.Vertical), 1)
	require.NoError(t, err)
	p := s.Arena.Player
	s.Arena.Obstacles = append(s.Arena.Obstacles,
		entity.NewObstacle(s.Arena.NextID(), entity.KindMine, p.X, p.Y-60, 40, 40))

	in := NewBot().Decide(s)

	assert.True(t, in.Left || in.Right)
	assert.False(t, in.Up || in.Down)
}

func TestBot_IgnoresPickups(t *testing.T) {
	cfg := createTestGameConfig()
	s, err := NewSession(cfg, easySettings(entity.Vertical), 1)
	require.NoError(t, err)
	p := s.Arena.Player
	p.X = 180 // middle
	s.Arena.Obstacles = append(s.Arena.Obstacles,
		entity.NewObstacle(s.Arena.NextID(), entity.KindBird, p.X, p.Y-60, 40, 40))

	assert.Equal(t, InputState{}, NewBot().Decide(s))
}

func TestBot_DriftsHome(t *testing.T) {
	cfg := createTestGameConfig()
	s, err := NewSession(cfg, easySettings(entity.Horizontal), 1)
	require.NoError(t, err)
	s.Arena.Player.Y = 0

	assert.Equal(t, InputState{Down: true}, NewBot().Decide(s))
}

func TestBot_OutlastsIdlePlayer(t *testing.T) {
	cfg := createTestGameConfig()
	bot := NewBot()

	survive := func(seed int64, decide func(*Session) InputState) int {
		s, err := NewSession(cfg, easySettings(entity.Vertical), seed)
		require.NoError(t, err)
		for !s.Over() && s.Frame < 3600 {
			s.Update(decide(s))
		}
		return s.Frame
	}

	botFrames, idleFrames := 0, 0
	for seed := range int64(5) {
		botFrames += survive(seed, bot.Decide)
		idleFrames += survive(seed, func(*Session) InputState { return InputState{} })
	}
	assert.GreaterOrEqual(t, botFrames, idleFrames)
}
