package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gavrojas/reef-adventures-game/internal/core"
	"github.com/gavrojas/reef-adventures-game/internal/storage"
)

// Menu entries, in display order.
const (
	menuPlay = iota
	menuInstructions
	menuScores
	menuQuit
	menuEntryCount
)

var menuLabels = [menuEntryCount]string{
	"Play",
	"Instructions",
	"High Scores",
	"Quit",
}

var instructionLines = []string{
	"Swim with WASD or the arrow keys.",
	"Collect pearls to score points.",
	"Shoot bubbles with Space to defeat enemies.",
	"Avoid jellyfish, crabs and sharks - you have 3 lives.",
	"Grab power-ups: speed boost and shield.",
	"Reach the score target or clear all enemies to advance.",
	"",
	"P pauses, R restarts after a game over, Q quits.",
}

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	cursor           int
	width            int
	height           int
	store            *storage.Store
	config           core.RuntimeConfig
	keyMapper        *KeyMapper
	showInstructions bool
	quitting         bool
	startGame        bool
	openScoreboard   bool
	highScore        int
	bestLevel        int
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		//nolint:errcheck // Menu decoration only
		m.highScore, _ = store.HighScore("reef")
		//nolint:errcheck // Menu decoration only
		m.bestLevel, _ = store.BestLevel("reef")
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.showInstructions {
		// Any mapped key returns to the menu
		if action != MenuActionNone {
			m.showInstructions = false
		}
		return m, nil
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < menuEntryCount-1 {
			m.cursor++
		}

	case MenuActionSelect:
		switch m.cursor {
		case menuPlay:
			m.startGame = true
			return m, tea.Quit
		case menuInstructions:
			m.showInstructions = true
		case menuScores:
			m.openScoreboard = true
			return m, tea.Quit
		case menuQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

var menuTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("39"))

var menuSelectedStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229"))

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.showInstructions {
		return m.viewInstructions()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("~ R E E F   A D V E N T U R E S ~"), m.width))
	b.WriteString("\n\n")

	if m.highScore > 0 {
		record := fmt.Sprintf("Best: %d points, level %d", m.highScore, m.bestLevel)
		b.WriteString(centerText(record, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, label := range menuLabels {
		line := "  " + label
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// viewInstructions renders the how-to-play screen.
func (m MenuModel) viewInstructions() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("HOW TO PLAY"), m.width))
	b.WriteString("\n\n")

	for _, line := range instructionLines {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Press any key to return", m.width))
	b.WriteString("\n")

	return b.String()
}

// StartsGame returns true if the user chose to play.
func (m MenuModel) StartsGame() bool {
	return m.startGame
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	padding := (width - lipgloss.Width(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Play            bool
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.StartsGame():
		result.Play = true
	default:
		result.Quit = true
	}

	return result, nil
}
