package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// scoreLimit is how many runs the scoreboard loads per variant.
const scoreLimit = 50

var (
	boardTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTab   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardTabOn = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boardFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmpty = boardDim.Italic(true).Padding(1, 4)
)

// scoreKeys are the scoreboard bindings. They double as the help bar.
type scoreKeys struct {
	Up, Down   key.Binding
	Next, Prev key.Binding
	CopySeed   key.Binding
	Back, Quit key.Binding
}

func (k scoreKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.CopySeed, k.Back, k.Quit}
}

func (k scoreKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, k.ShortHelp()}
}

func newScoreKeys() scoreKeys {
	return scoreKeys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		Next:     key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next variant")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev variant")),
		CopySeed: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy seed")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel browses recorded runs per variant. Every row carries the
// run's seed so a good run can be replayed with --seed.
type ScoreboardModel struct {
	store    *storage.Store
	variants []registry.GameInfo
	current  int

	runs    []storage.ScoreEntry
	stats   storage.Stats
	loadErr error

	table    table.Model
	help     help.Model
	keys     scoreKeys
	tickRate int
	width    int
	height   int
	status   string

	embedded  bool // Back returns control to the session instead of quitting
	goingBack bool
	quitting  bool
}

// NewScoreboardModel creates a scoreboard over store, which may be nil.
// tickRate converts recorded tick counts to run times.
func NewScoreboardModel(store *storage.Store, width, height, tickRate int) ScoreboardModel {
	m := ScoreboardModel{
		store:    store,
		variants: registry.List(),
		help:     help.New(),
		keys:     newScoreKeys(),
		tickRate: tickRate,
		width:    width,
		height:   height,
	}
	m.table = table.New(table.WithFocused(true))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	m.table.SetStyles(styles)

	m.layout()
	m.load()
	return m
}

// layout sizes the table to the terminal. The seed column shrinks first.
func (m *ScoreboardModel) layout() {
	const fixed = 5 + 7 + 7 + 13 + 10 // Other columns plus cell padding and frame
	seed := min(max(m.width-fixed, 0), 20)

	m.table.SetColumns([]table.Column{
		{Title: "#", Width: 5},
		{Title: "Kills", Width: 7},
		{Title: "Time", Width: 7},
		{Title: "Seed", Width: seed},
		{Title: "Date", Width: 13},
	})
	m.table.SetHeight(max(m.height-10, 3))
	m.help.Width = m.width
}

// load reads the selected variant's runs and stats.
func (m *ScoreboardModel) load() {
	m.runs, m.stats, m.loadErr = nil, storage.Stats{}, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		m.runs, m.loadErr = m.store.TopScores(id, scoreLimit)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(id)
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			formatRunTime(r.Ticks, m.tickRate),
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.CopySeed):
			m.copySeed()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// step moves the variant selection by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = ((m.current+delta)%n + n) % n
	m.status = ""
	m.load()
}

func (m *ScoreboardModel) copySeed() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return
	}
	seed := fmt.Sprintf("%d", m.runs[i].Seed)
	if err := clipboard.WriteAll(seed); err != nil {
		m.status = "clipboard unavailable"
		return
	}
	m.status = "seed " + seed + " copied"
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardTitle.Render("HIGH SCORES")))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			tabs[i] = boardTabOn.Render(v.Title)
		} else {
			tabs[i] = boardTab.Render(v.Title)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	switch {
	case m.store == nil:
		b.WriteString(boardFrame.Render(boardEmpty.Render("Scores are not being recorded.")))
	case m.loadErr != nil:
		b.WriteString(boardFrame.Render(boardEmpty.Render("Cannot read scores: " + m.loadErr.Error())))
	case len(m.runs) == 0:
		b.WriteString(boardFrame.Render(boardEmpty.Render("No runs yet.\nShoot something to set a high score!")))
	default:
		b.WriteString(boardFrame.Render(m.table.View()))
		b.WriteString("\n")
		b.WriteString(boardDim.Render(m.summary()))
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	b.WriteString(boardDim.Render(m.help.View(m.keys)))
	return b.String()
}

// summary describes every recorded run of the selected variant.
func (m ScoreboardModel) summary() string {
	return fmt.Sprintf("%d runs   best %d   %d kills   %s played",
		m.stats.Runs, m.stats.Best, m.stats.TotalKills, formatRunTime(m.stats.Ticks, m.tickRate))
}

// formatRunTime renders a tick count as m:ss at the given tick rate.
func formatRunTime(ticks uint64, tickRate int) string {
	if tickRate <= 0 {
		return "-"
	}
	secs := ticks / uint64(tickRate) //#nosec G115 -- tickRate checked positive
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard full screen.
// Returns true if the user went back rather than quitting.
func RunScoreboard(store *storage.Store, width, height, tickRate int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height, tickRate), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
