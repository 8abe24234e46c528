package state

// GameMode is the top-level simulation mode
type GameMode int

const (
	ModePlaying GameMode = iota
	// ModeShowingMessage freezes the world until the completion message is acknowledged
	ModeShowingMessage
	// ModeShowingFinal freezes the world after the last level
	ModeShowingFinal
)

// String returns the string representation of the game mode
func (m GameMode) String() string {
	switch m {
	case ModePlaying:
		return "Playing"
	case ModeShowingMessage:
		return "ShowingMessage"
	case ModeShowingFinal:
		return "ShowingFinal"
	default:
		return "Unknown"
	}
}

// Frozen reports whether the world is paused behind an overlay
func (m GameMode) Frozen() bool {
	return m == ModeShowingMessage || m == ModeShowingFinal
}
