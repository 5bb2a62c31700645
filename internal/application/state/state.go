package state

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateLevelTransition
	StateBossDefeated
	StateGameOver
	StateEnterName
	StateLeaderboard
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateLevelTransition:
		return "LevelTransition"
	case StateBossDefeated:
		return "BossDefeated"
	case StateGameOver:
		return "GameOver"
	case StateEnterName:
		return "EnterName"
	case StateLeaderboard:
		return "Leaderboard"
	default:
		return "Unknown"
	}
}

// InRun reports whether the state belongs to a running session
func (s GameState) InRun() bool {
	switch s {
	case StatePlaying, StatePaused, StateLevelTransition, StateBossDefeated:
		return true
	}
	return false
}
