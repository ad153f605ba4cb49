package manager

import (
	"snake-arcade/game/types"
)

// SessionStats is the in-memory record of finished rounds.
type SessionStats struct {
	HighScore    int
	ScoreHistory []int
}

// StateManager owns the game state, the score and the session stats. Every
// method is one transition edge; callers never set the state directly.
type StateManager struct {
	state        types.GameState
	score        int
	highScore    int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		state:        types.Running,
		scoreHistory: make([]int, 0),
	}
}

func (sm *StateManager) State() types.GameState {
	return sm.state
}

func (sm *StateManager) Score() int {
	return sm.score
}

// AddScore credits one eaten food.
func (sm *StateManager) AddScore() {
	sm.score += types.ScorePerFood
}

// TogglePause flips between Running and Paused. It reports false when the
// game is over.
func (sm *StateManager) TogglePause() bool {
	switch sm.state {
	case types.Running:
		sm.state = types.Paused
	case types.Paused:
		sm.state = types.Running
	default:
		return false
	}
	return true
}

// EndRound moves a running game to GameOver and records the score.
func (sm *StateManager) EndRound() bool {
	if sm.state != types.Running {
		return false
	}
	sm.state = types.GameOver
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
	sm.scoreHistory = append(sm.scoreHistory, sm.score)
	return true
}

// Restart leaves GameOver and zeroes the score.
func (sm *StateManager) Restart() bool {
	if sm.state != types.GameOver {
		return false
	}
	sm.state = types.Running
	sm.score = 0
	return true
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	out := make([]int, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}

// Stats returns a copy of the session stats.
func (sm *StateManager) Stats() SessionStats {
	return SessionStats{
		HighScore:    sm.highScore,
		ScoreHistory: sm.GetScoreHistory(),
	}
}
