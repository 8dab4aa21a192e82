package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lunarcade/lander/internal/core"
	"github.com/lunarcade/lander/internal/storage"
)

// MenuChoice is a selectable entry on the title screen.
type MenuChoice int

const (
	MenuChoiceLaunch MenuChoice = iota
	MenuChoiceScoreboard
	MenuChoiceQuit
)

var menuLabels = []string{"Launch", "High Scores", "Quit"}

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuChoice // Set when user confirms a choice
}

// NewMenuModel creates a new title screen model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
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

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuLabels)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		choice := MenuChoiceScoreboard
		m.selected = &choice
		return m, tea.Quit

	case MenuActionSelect:
		choice := MenuChoice(m.cursor)
		m.selected = &choice
		return m, tea.Quit
	}

	return m, nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))
	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))
	menuCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))
	menuFooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// View renders the title screen.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(menuTitleStyle.Render("MOON LANDER"))
	sb.WriteString("\n\n")

	for i, label := range menuLabels {
		if i == m.cursor {
			sb.WriteString(menuCursorStyle.Render(fmt.Sprintf("> %s", label)))
		} else {
			sb.WriteString(menuItemStyle.Render(fmt.Sprintf("  %s", label)))
		}
		sb.WriteRune('\n')
	}

	if m.store != nil {
		if high, err := m.store.HighScore("lander"); err == nil && high > 0 {
			sb.WriteString("\n")
			sb.WriteString(menuFooterStyle.Render(fmt.Sprintf("All-time best: %d", high)))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(menuFooterStyle.Render("up/down: move   enter: select   tab: scores   q: quit"))

	content := sb.String()
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// IsQuitting reports whether the user chose to exit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Selected returns the confirmed menu choice, or nil.
func (m MenuModel) Selected() *MenuChoice {
	return m.selected
}

// Config returns the (possibly resized) runtime config.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult describes how the title screen was left.
type MenuResult struct {
	Quit            bool
	Launch          bool
	WantsScoreboard bool
	Config          core.RuntimeConfig
}

// RunMenu shows the title screen as its own program (local play).
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Quit: true, Config: cfg}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	switch *m.Selected() {
	case MenuChoiceLaunch:
		result.Launch = true
	case MenuChoiceScoreboard:
		result.WantsScoreboard = true
	case MenuChoiceQuit:
		result.Quit = true
	}
	return result, nil
}
