package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	menuTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuItem   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	menuActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHint   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const menuBanner = "I N V A D E R S"

// MenuItem is one selectable variant.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // Best recorded score, 0 when none
}

// menuChoice is what the user decided in the menu.
type menuChoice int

const (
	choiceNone menuChoice = iota
	choicePlay
	choiceScores
	choiceQuit
)

// MenuModel picks a variant to play. It ends on the first decision; the
// session model reads the decision and moves on.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	choice menuChoice
}

// NewMenuModel lists every registered variant. Best scores are read from
// store when it is not nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	infos := registry.List()
	items := make([]MenuItem, len(infos))
	for i, info := range infos {
		items[i] = MenuItem{GameID: info.ID, Title: info.Title}
		if store == nil {
			continue
		}
		if best, err := store.HighScore(info.ID); err == nil {
			items[i].Best = best
		}
	}
	return MenuModel{items: items, config: cfg}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		switch MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
		case MenuActionSelect:
			if len(m.items) > 0 {
				m.choice = choicePlay
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.choice = choiceScores
			return m, tea.Quit
		case MenuActionQuit:
			m.choice = choiceQuit
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.choice == choiceQuit {
		return ""
	}

	lines := []string{
		"",
		menuTitle.Render(menuBanner),
		menuHint.Render("pick a mode"),
		"",
	}
	for i, item := range m.items {
		line := item.Title
		if item.Best > 0 {
			line += fmt.Sprintf("  (best %d)", item.Best)
		}
		if i == m.cursor {
			lines = append(lines, menuActive.Render("> "+line+" <"))
		} else {
			lines = append(lines, menuItem.Render(line))
		}
	}
	lines = append(lines, "",
		menuHint.Render("up/down move  enter play  tab scores  q quit"))

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, block) + "\n"
}

// Selected returns the chosen item, or nil until the user picks one.
func (m MenuModel) Selected() *MenuItem {
	if m.choice != choicePlay || len(m.items) == 0 {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

// IsQuitting reports whether the user asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.choice == choiceQuit
}

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.choice == choiceScores
}

// Config returns the runtime config, including size changes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
