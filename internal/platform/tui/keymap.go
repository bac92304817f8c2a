package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-platformer/internal/sim"
)

// KeyMap defines the key bindings for the platformer.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Start   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Start, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "jump"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit to title"),
		),
	}
}

// holdTicks is how many simulation ticks a key press keeps its direction
// held. Terminals only report presses, so holding is reconstructed from key
// auto-repeat: each repeat refreshes the window and the window lapsing is
// treated as the release.
const holdTicks = 12 // ~200ms at 60 ticks/s

// InputTracker accumulates key presses between ticks and converts them into
// per-tick StepInput records with edge semantics. The simulation core only
// ever sees the records produced here, and recorded replays store these same
// records, so replay verification stays exact even though the held and
// released signals are synthesized.
type InputTracker struct {
	pending   sim.StepInput
	leftHold  int
	rightHold int
	jumpHold  int
}

// PressLeft registers a left-direction key press or repeat.
func (t *InputTracker) PressLeft() { t.leftHold = holdTicks }

// PressRight registers a right-direction key press or repeat.
func (t *InputTracker) PressRight() { t.rightHold = holdTicks }

// PressJump registers a jump key press or repeat. Only the first press of a
// hold window produces a jump-pressed edge.
func (t *InputTracker) PressJump() {
	if t.jumpHold == 0 {
		t.pending.JumpPressed = true
	}
	t.jumpHold = holdTicks
}

// PressStart registers a start edge.
func (t *InputTracker) PressStart() { t.pending.StartPressed = true }

// PressRestart registers a restart edge.
func (t *InputTracker) PressRestart() { t.pending.RestartPressed = true }

// PressQuit registers a quit edge.
func (t *InputTracker) PressQuit() { t.pending.QuitPressed = true }

// Tick produces the input record for the next simulation step and advances
// the hold windows. A jump hold window lapsing emits the release edge that
// drives the jump cut.
func (t *InputTracker) Tick() sim.StepInput {
	in := t.pending
	t.pending = sim.StepInput{}

	in.Left = t.leftHold > 0
	in.Right = t.rightHold > 0

	if t.leftHold > 0 {
		t.leftHold--
	}
	if t.rightHold > 0 {
		t.rightHold--
	}
	if t.jumpHold > 0 {
		t.jumpHold--
		if t.jumpHold == 0 {
			in.JumpReleased = true
		}
	}

	return in
}
