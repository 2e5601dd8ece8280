package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkarpov/gridsnake/internal/core"
	"github.com/dkarpov/gridsnake/internal/snake"
)

// Model is the Bubble Tea model driving a single game session. It is the
// serializing loop the game state relies on: key events only fill the input
// frame, and the frame is applied atomically at the start of each tick, so
// the game sees at most one effective direction change per tick.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	paused   bool
	quitting bool
}

// NewModel creates a model for the given game.
func NewModel(game *snake.Game, cfg core.RuntimeConfig) Model {
	return Model{
		game: game,
		// Bottom row is reserved for the help line
		screen: core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey buffers key presses into the input frame for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.ActionFor(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleTick applies buffered input and advances the simulation one step.
// The simulation is never stepped once the game is over or while paused; the
// tick loop keeps running so restart stays responsive.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionRestart) && !m.game.Alive() {
		m.game.Reset()
		m.paused = false
	}
	if m.input.Has(core.ActionPause) && m.game.Alive() {
		m.paused = !m.paused
	}

	m.applyDirection()

	if m.game.Alive() && !m.paused {
		m.game.EnsureFruit()
		m.game.Tick()
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// applyDirection forwards at most one buffered direction to the game.
// Reversals are the game's business; it ignores them silently.
func (m Model) applyDirection() {
	switch {
	case m.input.Has(core.ActionUp):
		m.game.RequestDirection(snake.DirUp)
	case m.input.Has(core.ActionDown):
		m.game.RequestDirection(snake.DirDown)
	case m.input.Has(core.ActionLeft):
		m.game.RequestDirection(snake.DirLeft)
	case m.input.Has(core.ActionRight):
		m.game.RequestDirection(snake.DirRight)
	}
}

// View renders the board plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.game, m.paused)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal session and blocks
// until the player quits.
func Run(game *snake.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
