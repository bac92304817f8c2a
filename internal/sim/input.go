package sim

// StepInput is the per-tick input record. Left and right are level flags
// (true while held); the remaining flags are edges, true only on the tick the
// corresponding key transitions.
type StepInput struct {
	Left           bool
	Right          bool
	JumpPressed    bool
	JumpReleased   bool
	StartPressed   bool
	RestartPressed bool
	QuitPressed    bool
}

// MoveX derives horizontal intent: -1, 0 or +1. Holding both directions
// cancels.
func (in StepInput) MoveX() int {
	x := 0
	if in.Right {
		x++
	}
	if in.Left {
		x--
	}
	return x
}
