package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// statusDuration is how long a status line (screenshot saved, copied) stays up.
const statusDuration = 2 * time.Second

// Options carries the collaborators a game model needs besides the game.
type Options struct {
	Store  *storage.Store // May be nil; scores are then not recorded
	Input  config.InputConfig
	Logger *log.Logger // May be nil
	// ScreenshotDir overrides ~/.invaders/screenshots.
	ScreenshotDir string
	// Menu enables the back-to-menu key (SSH sessions).
	Menu bool
}

// GameModel is the Bubble Tea model for one game. It maps keys to actions,
// steps the game once per frame with the elapsed wall time, and records the
// score when a run ends.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	lastFrame time.Time
	runTicks  uint64 // Simulation ticks in the current run
	run       *runState

	status      string
	statusUntil time.Time
	quitting    bool
	backToMenu  bool
}

// runState is shared between model copies so a score is saved at most once.
type runState struct {
	saved bool
}

// NewGameModel creates a new game model.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(opts.Input),
		inputFrame: core.NewInputFrame(),
		run:        &runState{},
	}
}

// Init starts the game and the frame loop.
func (m GameModel) Init() tea.Cmd {
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("cannot start game", "game", m.game.ID(), "error", err)
		return tea.Quit
	}
	m.logger.Debug("run started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The field is projected onto whatever size the terminal has, so a
		// resize never restarts the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "ctrl+y":
		m.copyScreen()
		return m, nil
	case "b":
		if m.opts.Menu {
			m.saveScore()
			m.backToMenu = true
			return m, nil
		}
	}

	if m.keys.Press(msg) {
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick steps the game by the wall time since the previous frame.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	elapsed := time.Second / time.Duration(max(m.config.FrameRate, 1))
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	m.keys.Frame(&m.inputFrame)

	if m.inputFrame.Has(core.ActionRestart) {
		m.restart()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.FrameRate)
	}

	result := m.game.Step(m.inputFrame, elapsed)
	m.gameState = result.State
	m.runTicks += uint64(result.Ticks) //#nosec G115 -- tick counts are never negative

	m.inputFrame.Clear()
	return m, tickCmd(m.config.FrameRate)
}

// restart records the finished run and starts a new one with a fresh seed.
func (m *GameModel) restart() {
	m.saveScore()
	m.config.Seed = time.Now().UnixNano()
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("cannot restart game", "game", m.game.ID(), "error", err)
		return
	}
	m.gameState = m.game.State()
	m.runTicks = 0
	m.run = &runState{}
	m.keys.Reset()
	m.logger.Debug("run restarted", "game", m.game.ID(), "seed", m.config.Seed)
}

// saveScore records the current run once, if it scored.
func (m *GameModel) saveScore() {
	state := m.game.State()
	if m.run.saved || state.Score <= 0 {
		return
	}
	m.run.saved = true

	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		GameID: m.game.ID(),
		Score:  state.Score,
		Seed:   m.config.Seed,
		Ticks:  m.runTicks,
	})
	if err != nil {
		m.logger.Warn("cannot save score", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Info("score saved", "game", m.game.ID(), "score", state.Score, "seed", m.config.Seed)
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.flash("screenshot failed")
			return
		}
		dir = filepath.Join(home, ".invaders", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "error", err)
		m.flash("screenshot failed")
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot write screenshot", "path", path, "error", err)
		m.flash("screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.flash("screenshot saved")
}

// copyScreen puts the current screen text on the system clipboard.
func (m *GameModel) copyScreen() {
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.logger.Warn("cannot copy to clipboard", "error", err)
		m.flash("clipboard unavailable")
		return
	}
	m.flash("copied to clipboard")
}

func (m *GameModel) flash(text string) {
	m.status = text
	m.statusUntil = time.Now().Add(statusDuration)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && time.Now().Before(m.statusUntil) {
		m.screen.DrawTextColored(1, m.screen.Height()-1, m.status, core.ColorBrightMagenta)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the runtime config, including size changes.
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}

// Run plays game in the local terminal until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
