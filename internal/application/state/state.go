package state

// GameState is the phase of a play session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateStageClear
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateStageClear:
		return "StageClear"
	default:
		return "Unknown"
	}
}

// Simulates reports whether the world advances in this state
func (s GameState) Simulates() bool {
	return s == StatePlaying
}

// Final reports whether the session has ended
func (s GameState) Final() bool {
	return s == StateGameOver || s == StateStageClear
}

// CanTransitionTo reports whether moving from s to next is allowed.
// A session can always restart into Playing; an ended session stays ended
// until it does.
func (s GameState) CanTransitionTo(next GameState) bool {
	if next == StatePlaying {
		return true
	}
	switch s {
	case StatePlaying:
		return next == StatePaused || next.Final()
	case StatePaused:
		return next.Final()
	}
	return false
}
