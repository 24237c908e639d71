package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/PhoneMinThu/minesweeper/internal/session"
	"github.com/PhoneMinThu/minesweeper/internal/storage"
)

// Model is the Bubble Tea model running one minesweeper session.
type Model struct {
	sess  *session.Session
	store *storage.Store
	keys  KeyMap
	help  help.Model

	width       int
	height      int
	quitting    bool
	resultSaved bool // Whether the current finished game has been recorded
}

// NewModel creates a model for the given session. store may be nil; play
// continues without persistence.
func NewModel(sess *session.Session, store *storage.Store, width, height int) Model {
	return Model{
		sess:   sess,
		store:  store,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
}

// Init starts the clock tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		// Redraw so the clock advances while playing.
		return m, tickCmd()
	}

	return m, nil
}

// handleKey maps key presses to session operations.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.sess.MoveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.sess.MoveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.sess.MoveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.sess.MoveCursor(1, 0)

	case key.Matches(msg, m.keys.Reveal):
		m.sess.Reveal()
		m.saveIfFinished()
	case key.Matches(msg, m.keys.Chord):
		m.sess.Chord()
		m.saveIfFinished()
	case key.Matches(msg, m.keys.Flag):
		m.sess.ToggleFlag()

	case key.Matches(msg, m.keys.Restart):
		m.sess.Restart()
		m.resultSaved = false
	case key.Matches(msg, m.keys.Difficulty):
		m.sess.CycleDifficulty()
		m.resultSaved = false
	}

	return m, nil
}

// saveIfFinished records a finished game exactly once. Best-effort: a
// storage failure never interrupts play.
func (m *Model) saveIfFinished() {
	status := m.sess.Status()
	if status == session.Playing || m.resultSaved {
		return
	}
	m.resultSaved = true

	if m.store == nil {
		return
	}
	p := m.sess.Params()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(storage.Result{
		Difficulty: p.Difficulty.String(),
		Won:        status == session.Win,
		Elapsed:    m.sess.Elapsed(),
		Width:      p.Width,
		Height:     p.Height,
		Mines:      p.Mines,
	})
}

// View renders the header, board, end-of-game banner, and key legend.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		renderHeader(m.sess),
		renderBoard(m.sess),
	}
	if overlay := renderOverlay(m.sess.Status()); overlay != "" {
		sections = append(sections, overlay)
	}
	sections = append(sections, m.help.View(m.keys))

	view := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Run starts a terminal session for the given game.
func Run(sess *session.Session, store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewModel(sess, store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
