package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/sim"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Options configures an interactive session.
type Options struct {
	ScreenW   int
	ScreenH   int
	TickRate  int
	LevelName string
	Record    bool // keep per-tick inputs for replay export
}

// Model is the Bubble Tea model driving the platformer session.
type Model struct {
	state    *sim.State
	screen   *core.Screen
	store    *storage.Store
	opts     Options
	tracker  InputTracker
	keys     KeyMap
	help     help.Model
	best     int64 // all-time best from storage, display only
	recorded []sim.StepInput
	saved    bool // run persisted for the current completion
	quitting bool
}

// NewModel creates a session model around an already-constructed simulation.
func NewModel(state *sim.State, store *storage.Store, opts Options) *Model {
	m := &Model{
		state:  state,
		screen: core.NewScreen(opts.ScreenW, opts.ScreenH-1), // bottom row is help
		store:  store,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	if store != nil {
		if best, err := store.HighScore(opts.LevelName); err == nil {
			m.best = best
		}
	}
	return m
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.ScreenW = msg.Width
		m.opts.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey feeds key presses into the input tracker. Keys never mutate the
// simulation directly; everything goes through the next tick's input record.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.tracker.PressLeft()
	case key.Matches(msg, m.keys.Right):
		m.tracker.PressRight()
	case key.Matches(msg, m.keys.Jump):
		m.tracker.PressJump()
	case key.Matches(msg, m.keys.Start):
		m.tracker.PressStart()
	case key.Matches(msg, m.keys.Restart):
		m.tracker.PressRestart()
	case key.Matches(msg, m.keys.Quit):
		// Quit at the title screen exits the program; anywhere else it is a
		// simulation input that returns to the title.
		if m.state.Phase == sim.PhaseTitle {
			m.quitting = true
			return m, tea.Quit
		}
		m.tracker.PressQuit()
	}

	return m, nil
}

// handleTick advances the simulation by exactly one step.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.tracker.Tick()
	if m.opts.Record {
		m.recorded = append(m.recorded, in)
	}

	wasPlaying := m.state.Phase == sim.PhasePlaying
	m.state.Step(in)

	switch m.state.Phase {
	case sim.PhaseLevelComplete:
		if wasPlaying && !m.saved {
			m.saveRun()
			m.saved = true
		}
	case sim.PhasePlaying:
		m.saved = false
	}

	return m, tickCmd(m.opts.TickRate)
}

// saveRun persists the completed run. Best-effort: storage failures never
// interrupt play.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	//nolint:errcheck
	m.store.SaveRun(storage.RunEntry{
		Level:     m.opts.LevelName,
		Score:     int64(m.state.Score),
		Completed: true,
		Ticks:     int64(m.state.Tick),
		Hash:      sim.HashHex(m.state),
	})
	m.best = max(m.best, int64(m.state.Score))
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	DrawWorld(m.screen, m.state, m.opts.LevelName, m.best)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run drives an interactive session to completion and returns the recorded
// per-tick inputs when recording was requested.
func Run(state *sim.State, store *storage.Store, opts Options) ([]sim.StepInput, error) {
	model := NewModel(state, store, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return model.recorded, nil
}
