package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// stubGame counts calls and reports whatever score the test sets.
type stubGame struct {
	resets int
	steps  int
	last   core.InputFrame
	score  int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) error {
	g.resets++
	g.score = 0
	return nil
}

func (g *stubGame) Step(in core.InputFrame, _ time.Duration) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.State(), Ticks: 1}
}

func (g *stubGame) Render(s *core.Screen) {
	s.Clear()
	s.DrawText(0, 0, "stub screen")
}

func (g *stubGame) State() core.GameState { return core.GameState{Score: g.score} }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FrameRate: 60, Seed: 42}
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelStepsOnTick(t *testing.T) {
	game := &stubGame{}
	m := NewGameModel(game, testRuntime(), Options{Input: config.DefaultInvadersConfig().Input})
	m.Init()
	if game.resets != 1 {
		t.Fatalf("resets after Init = %d, want 1", game.resets)
	}

	now := time.Now()
	m = update(t, m, space())
	m = update(t, m, TickMsg(now))
	if !game.last.Has(core.ActionFire) {
		t.Error("fire key not delivered to the next step")
	}
	m = update(t, m, TickMsg(now.Add(time.Second/60)))
	if game.last.Has(core.ActionFire) {
		t.Error("fire repeated on a frame without a key event")
	}
	if game.steps != 2 || m.runTicks != 2 {
		t.Errorf("steps = %d, runTicks = %d, want 2 and 2", game.steps, m.runTicks)
	}
}

func TestRestartSavesFinishedRun(t *testing.T) {
	store := openStore(t)
	game := &stubGame{}
	m := NewGameModel(game, testRuntime(), Options{Store: store, Input: config.DefaultInvadersConfig().Input})
	m.Init()

	now := time.Now()
	m = update(t, m, TickMsg(now))
	game.score = 5
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg(now.Add(time.Second/60)))

	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if m.runTicks != 0 {
		t.Errorf("runTicks after restart = %d, want 0", m.runTicks)
	}
	if m.Config().Seed == 42 {
		t.Error("restart kept the old seed")
	}

	// The new run has not scored, so quitting adds nothing.
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || !next.(GameModel).IsQuitting() {
		t.Fatal("q did not quit")
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, want 1", len(scores))
	}
	if scores[0].Score != 5 || scores[0].Seed != 42 || scores[0].Ticks != 1 {
		t.Errorf("saved %+v, want score 5 seed 42 ticks 1", scores[0])
	}
}

func TestScoreSavedOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{}
	m := NewGameModel(game, testRuntime(), Options{Store: store, Menu: true})
	m.Init()
	game.score = 3

	m = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Fatal("b did not leave for the menu")
	}
	update(t, m, runeKey('q'))

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("got %d scores, want 1", len(scores))
	}
}

func TestBackKeyNeedsMenu(t *testing.T) {
	m := NewGameModel(&stubGame{}, testRuntime(), Options{})
	m.Init()
	m = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("b left a game that was not started from a menu")
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewGameModel(&stubGame{}, testRuntime(), Options{ScreenshotDir: dir})
	m.Init()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d screenshots, want 1", len(files))
	}
	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "stub screen") {
		t.Errorf("screenshot starts %q", string(data[:min(len(data), 20)]))
	}
	if m.status != "screenshot saved" {
		t.Errorf("status = %q", m.status)
	}
}

func TestResizeKeepsRun(t *testing.T) {
	game := &stubGame{}
	m := NewGameModel(game, testRuntime(), Options{})
	m.Init()
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resets != 1 {
		t.Errorf("resize reset the game")
	}
	if m.Config().ScreenW != 100 || m.screen.Width() != 100 {
		t.Errorf("screen not resized")
	}
}

func TestSessionFlow(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	var m tea.Model = NewSessionModel(testRuntime(), cfg, Options{Input: cfg.Input})

	step := func(msg tea.Msg) tea.Cmd {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		return cmd
	}
	screen := func() sessionScreen { return m.(SessionModel).screen }

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if screen() != screenGame {
		t.Fatalf("enter did not start a game")
	}
	if id := m.(SessionModel).gameModel.game.ID(); id != "invaders" {
		t.Errorf("started %q, want invaders", id)
	}

	step(runeKey('b'))
	if screen() != screenMenu {
		t.Fatalf("b did not return to the menu")
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if screen() != screenScores {
		t.Fatalf("tab did not open the scoreboard")
	}
	if cmd := step(tea.KeyMsg{Type: tea.KeyEsc}); cmd != nil {
		t.Error("leaving the scoreboard quit the session")
	}
	if screen() != screenMenu {
		t.Fatalf("esc did not return to the menu")
	}

	if cmd := step(runeKey('q')); cmd == nil {
		t.Error("q did not quit the session")
	}
	if m.View() != "" {
		t.Error("quit session still renders")
	}
}
