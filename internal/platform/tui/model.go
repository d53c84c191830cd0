package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/datachomps/stabilizer/internal/core"
	"github.com/datachomps/stabilizer/internal/games/stabilizer"
	"github.com/datachomps/stabilizer/internal/labels"
	"github.com/datachomps/stabilizer/internal/storage"
)

// helpRows is the number of terminal rows reserved below the game screen.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))

// Model is the Bubble Tea model for one player's session.
//
// Gravity ticks form a chain: each TickMsg schedules the next one only
// while the game is running. Starting a chain bumps tickID so ticks from
// any earlier chain are ignored.
type Model struct {
	game       *stabilizer.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	scoreboard ScoreboardModel
	showScores bool
	tickID     int
	lastTick   time.Time
	now        func() time.Time
	quitting   bool
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game. The game is
// reset with cfg; store may be nil.
func NewModel(game *stabilizer.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	gameH := max(0, cfg.ScreenH-helpRows)
	game.Reset(core.RuntimeConfig{
		ScreenW:  cfg.ScreenW,
		ScreenH:  gameH,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	})

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameH),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		scoreboard: NewScoreboardModel(store, game.Labels(), cfg.ScreenW, cfg.ScreenH),
		now:        time.Now,
	}
	m.help.Width = cfg.ScreenW
	m.refreshBest()
	m.syncKeys()
	return m
}

// Init does not start ticking: gravity only runs once the player starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showScores {
			return m.handleScoreboardKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	switch action {
	case core.ActionLanguage:
		m.toggleLanguage()
		return m, nil

	case core.ActionScoreboard:
		if m.phase() != stabilizer.PhaseRunning {
			m.scoreboard.Reload()
			m.showScores = true
		}
		return m, nil

	case core.ActionNone:
		return m, nil
	}

	before := m.phase()
	m.game.Apply(action)
	m.checkGameOver()
	m.syncKeys()

	// Start and restart put the session into running; begin a new tick chain
	if before != stabilizer.PhaseRunning && m.phase() == stabilizer.PhaseRunning {
		cmd := m.startTicking()
		return m, cmd
	}
	return m, nil
}

// handleScoreboardKey forwards keys to the scoreboard while it is shown.
func (m Model) handleScoreboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sb, cmd, exit := m.scoreboard.Update(msg)
	m.scoreboard = sb

	switch exit {
	case exitQuit:
		return m.quit()
	case exitBack:
		m.showScores = false
	case exitCleared:
		m.refreshBest()
	}
	return m, cmd
}

// handleResize processes window resize events. The session is kept; the
// game pauses itself while the window is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	gameH := max(0, msg.Height-helpRows)
	m.screen.Resize(msg.Width, gameH)
	m.game.Resize(msg.Width, gameH)
	m.help.Width = msg.Width
	m.scoreboard.SetSize(msg.Width, msg.Height)

	return m, nil
}

// handleTick advances gravity by the time since the previous tick and
// re-arms the chain while the game is running.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.ID != m.tickID || m.quitting {
		return m, nil
	}
	if m.phase() != stabilizer.PhaseRunning {
		return m, nil
	}

	dt := msg.Time.Sub(m.lastTick)
	m.lastTick = msg.Time
	m.game.Advance(dt)

	if m.checkGameOver() {
		m.syncKeys()
		return m, nil
	}
	return m, tickCmd(m.tickID, m.config.TickRate)
}

// startTicking begins a new tick chain, orphaning any previous one.
func (m *Model) startTicking() tea.Cmd {
	m.tickID++
	m.lastTick = m.now()
	return tickCmd(m.tickID, m.config.TickRate)
}

// quit stops the tick chain and exits the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.tickID++
	return m, tea.Quit
}

// checkGameOver saves the run once per game over and reports whether the
// game is over.
func (m *Model) checkGameOver() bool {
	s := m.game.Session()
	if s.Phase() != stabilizer.PhaseGameOver {
		m.scoreSaved = false
		return false
	}
	if m.scoreSaved {
		return true
	}

	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveRun(storage.Run{
			Score:  s.Score(),
			Lines:  s.Lines(),
			Pieces: s.Pieces(),
			Locale: string(m.game.Labels().Locale),
		})
	}
	m.scoreSaved = true
	m.refreshBest()
	return true
}

// refreshBest copies the session high score into the HUD.
func (m *Model) refreshBest() {
	if m.store == nil {
		if s := m.game.Session(); s != nil {
			m.game.SetBest(max(m.game.Best(), s.Score()))
		}
		return
	}
	if best, err := m.store.HighScore(); err == nil {
		m.game.SetBest(best)
	}
}

// toggleLanguage switches to the next locale.
func (m *Model) toggleLanguage() {
	next := m.game.Labels().Locale.Next()
	set, err := labels.Load(next)
	if err != nil {
		return
	}
	m.game.SetLabels(set)
	m.scoreboard.SetLabels(set)
}

func (m *Model) syncKeys() {
	p := m.phase()
	m.keys.setPhase(p == stabilizer.PhaseIdle, p == stabilizer.PhaseRunning, p == stabilizer.PhaseGameOver)
}

func (m Model) phase() stabilizer.Phase {
	return m.game.Session().Phase()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scoreboard.View()
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the game driven by the model.
func (m Model) Game() *stabilizer.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given model.
func Run(game *stabilizer.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
