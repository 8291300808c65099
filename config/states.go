package config

// StateID identifies a state in one of the entity state machines.
type StateID int

const (
	StateNone StateID = iota

	// Wanderer
	Idle
	Moving

	// Path walker
	Walking
	Destroyed
)

// SessionState is the top level game flow.
type SessionState int

const (
	SessionHome SessionState = iota
	SessionPlaying
	SessionGameOver
)

func (s SessionState) String() string {
	switch s {
	case SessionHome:
		return "home"
	case SessionPlaying:
		return "playing"
	case SessionGameOver:
		return "game_over"
	}
	return "unknown"
}
