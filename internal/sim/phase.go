package sim

// Phase is the coarse game-state machine position.
type Phase uint8

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseLevelComplete
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "complete"
	default:
		return "unknown"
	}
}
