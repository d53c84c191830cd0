package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/datachomps/stabilizer/internal/labels"
	"github.com/datachomps/stabilizer/internal/storage"
)

// Scoreboard layout constants
const (
	maxRuns       = 100 // Max runs to load
	tableMaxWidth = 60
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back  key.Binding
	Clear key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Clear, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Clear, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "tab", "b"),
			key.WithHelp("esc/tab", "back"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear session"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the runs of the current session. It is embedded
// in Model rather than run as its own program.
type ScoreboardModel struct {
	store  *storage.Store
	labels labels.Set
	runs   []storage.RunEntry
	stats  storage.Stats
	err    error
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, set labels.Set, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		labels: set,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 6},
		{Title: "Pieces", Width: 7},
		{Title: "Lang", Width: 5},
		{Title: "Time", Width: 10},
	}

	// Give the remaining width to the time column
	used := 0
	for _, c := range columns[:len(columns)-1] {
		used += c.Width + 2
	}
	tableWidth := min(m.width-4, tableMaxWidth)
	if rest := tableWidth - used - 2; rest > columns[5].Width {
		columns[5].Width = rest
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#334155")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#0f172a")).
		Background(lipgloss.Color("#c5a059")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Reload fetches the latest runs from the store.
func (m *ScoreboardModel) Reload() {
	m.runs, m.err = nil, nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(maxRuns); err != nil {
			m.err = err
		} else {
			m.runs = runs
		}
		if stats, err := m.store.Stats(); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%05d", r.Score),
			fmt.Sprintf("%d", r.Lines),
			fmt.Sprintf("%d", r.Pieces),
			r.Locale,
			r.CreatedAt.Local().Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// SetLabels swaps the label set.
func (m *ScoreboardModel) SetLabels(set labels.Set) {
	m.labels = set
}

// SetSize adapts the table to a new window size.
func (m *ScoreboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table = m.createTable()
	m.updateTableRows()
	m.help.Width = width
}

// Update handles scrolling and clearing. It reports whether the user
// asked to go back or quit, or cleared the session runs.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd, scoreboardExit) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit, exitQuit
		case key.Matches(msg, m.keys.Back):
			return m, nil, exitBack
		case key.Matches(msg, m.keys.Clear):
			return m.clear(), nil, exitCleared
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd, exitNone
}

// clear deletes every run of the session and reloads the table.
func (m ScoreboardModel) clear() ScoreboardModel {
	if m.store == nil {
		return m
	}
	if err := m.store.Clear(); err != nil {
		m.err = err
		return m
	}
	m.stats = storage.Stats{}
	m.Reload()
	return m
}

// scoreboardExit tells the parent model what to do after a key press.
type scoreboardExit int

const (
	exitNone scoreboardExit = iota
	exitBack
	exitCleared
	exitQuit
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#c5a059"))
	mutedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#64748b"))

	b.WriteString(centerText(titleStyle.Render(m.labels.Scoreboard), m.width))
	b.WriteString("\n")
	summary := fmt.Sprintf("%s %05d", m.labels.HighScore, m.stats.HighScore)
	b.WriteString(centerText(mutedStyle.Render(summary), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#334155")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if m.err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f43f5e")).
			Render(m.err.Error())
	}
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748b")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render(m.labels.NoRuns)
	}

	return m.table.View()
}

// centerText centers each line of a multi-line block within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if pad := (width - lipgloss.Width(line)) / 2; pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
