package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-blast/internal/core"
	"github.com/vovakirdan/tile-blast/internal/games/blast"
	"github.com/vovakirdan/tile-blast/internal/storage"
)

// MenuItem represents a selectable entry of the main menu.
type MenuItem struct {
	Label       string
	Description string
	GameID      string // Game to start, or itemLevelSelect/itemScoreboard
}

// LevelEntry is one row of the level picker.
type LevelEntry struct {
	ID     string
	Title  string
	Length int
	Best   string // Best recorded win, empty if never won
}

const (
	itemLevelSelect = "levels"
	itemScoreboard  = "scores"
)

// MenuModel is the Bubble Tea model for the main menu and level picker.
type MenuModel struct {
	items         []MenuItem
	levels        []LevelEntry
	cursor        int
	levelCursor   int
	scrollOffset  int
	inLevelSelect bool
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	theme         Theme
	quitting      bool
	selected      *MenuResult
}

// NewMenuModel creates a new menu model.
// store may be nil, in which case no best results are shown.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	items := []MenuItem{
		{Label: "Campaign", Description: "Play the levels in order", GameID: blast.IDCampaign},
		{Label: "Endless", Description: "Random grids that get harder", GameID: blast.IDEndless},
		{Label: "Select Level...", Description: "Start the campaign at any level", GameID: itemLevelSelect},
		{Label: "High Scores", Description: "Scores and level records", GameID: itemScoreboard},
	}

	return MenuModel{
		items:     items,
		levels:    loadLevelEntries(store),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		theme:     GetTheme(),
	}
}

// loadLevelEntries lists campaign levels with their best wins.
func loadLevelEntries(store *storage.Store) []LevelEntry {
	lvls, err := blast.CampaignLevels()
	if err != nil {
		return nil
	}

	entries := make([]LevelEntry, 0, len(lvls))
	for _, l := range lvls {
		e := LevelEntry{ID: l.ID, Title: l.Title(), Length: l.Spec.Length}
		if store != nil {
			if best, err := store.BestLevelResult(l.ID); err == nil && best != nil {
				e.Best = fmt.Sprintf("best %d moves, %d pts", best.Moves, best.Score)
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleMenuKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.updateScroll()
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleMenuKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.selected = &MenuResult{WantsScoreboard: true}
		return m, tea.Quit

	case MenuActionSelect:
		switch item := m.items[m.cursor]; item.GameID {
		case itemLevelSelect:
			if len(m.levels) > 0 {
				m.inLevelSelect = true
				m.levelCursor = 0
				m.scrollOffset = 0
			}
		case itemScoreboard:
			m.selected = &MenuResult{WantsScoreboard: true}
			return m, tea.Quit
		default:
			m.selected = &MenuResult{GameID: item.GameID}
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		m.selected = &MenuResult{
			GameID:     blast.IDCampaign,
			StartLevel: m.levelCursor + 1, // 1-indexed
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// visibleLevels returns how many level rows fit on screen.
func (m MenuModel) visibleLevels() int {
	return max(3, m.height-10) // Header and footer
}

// updateScroll adjusts scroll offset to keep the level cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleLevels()
	if m.levelCursor < m.scrollOffset {
		m.scrollOffset = m.levelCursor
	} else if m.levelCursor >= m.scrollOffset+visible {
		m.scrollOffset = m.levelCursor - visible + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewMenu()
}

func (m MenuModel) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("T I L E   B L A S T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuSubtitle.Render("Tap groups of matching tiles"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(cursor+item.Label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render(m.items[m.cursor].Description), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuHelp.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	end := min(len(m.levels), m.scrollOffset+m.visibleLevels())
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("..."), m.width))
		b.WriteString("\n")
	}

	for i := m.scrollOffset; i < end; i++ {
		lvl := m.levels[i]
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.levelCursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		line := style.Render(fmt.Sprintf("%s%2d. %-20s %2dx%-2d", cursor, i+1, lvl.Title, lvl.Length, lvl.Length))
		if lvl.Best != "" {
			line += "  " + m.theme.MenuWon.Render(lvl.Best)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if end < len(m.levels) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuHelp.Render("Enter: Play  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the menu selection, or nil if none was made.
func (m MenuModel) Selected() *MenuResult {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	StartLevel      int // 1-indexed campaign level, 0 for the first
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := *m.Selected()
	result.Config = m.Config()
	return result, nil
}
