package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/weekend-arcade/internal/raycast/maps"
)

// Map picker layout constants
const (
	minWidthForPreview = 90 // Minimum width to show the map preview
	pickerTableWidth   = 56
)

// MapPickerKeyMap defines the key bindings for the map picker.
type MapPickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Preview key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MapPickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Preview, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k MapPickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Preview, k.Back, k.Quit},
	}
}

// DefaultMapPickerKeyMap returns default key bindings.
func DefaultMapPickerKeyMap() MapPickerKeyMap {
	return MapPickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Preview: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "preview"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapPickerModel is the Bubble Tea model for choosing a ray-caster map.
type MapPickerModel struct {
	maps        []maps.Map
	table       table.Model
	help        help.Model
	keys        MapPickerKeyMap
	width       int
	height      int
	showPreview bool
	selected    *maps.Map
	quitting    bool
	goingBack   bool
}

// NewMapPickerModel creates a picker over list with the cursor on currentID.
func NewMapPickerModel(list []maps.Map, currentID string, width, height int) MapPickerModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := MapPickerModel{
		maps:        list,
		keys:        DefaultMapPickerKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showPreview: width >= minWidthForPreview,
	}
	m.table = m.createTable()
	for i, mp := range list {
		if mp.ID == currentID {
			m.table.SetCursor(i)
		}
	}
	return m
}

// createTable builds the map table sized for the current window.
func (m *MapPickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 10},
		{Title: "Name", Width: 18},
		{Title: "Size", Width: 7},
		{Title: "Source", Width: pickerTableWidth - 35},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(mapRows(m.maps)),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// mapRows formats one table row per map.
func mapRows(list []maps.Map) []table.Row {
	rows := make([]table.Row, len(list))
	for i, mp := range list {
		source := "built-in"
		if mp.FilePath != "" {
			source = filepath.Base(mp.FilePath)
		}
		rows[i] = table.Row{
			mp.ID,
			mp.Name,
			fmt.Sprintf("%dx%d", mp.Grid.Width(), mp.Grid.Height()),
			source,
		}
	}
	return rows
}

// Init initializes the map picker.
func (m MapPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the map picker.
func (m MapPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if cur := m.table.Cursor(); cur >= 0 && cur < len(m.maps) {
				selected := m.maps[cur]
				m.selected = &selected
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Preview):
			m.showPreview = !m.showPreview
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		cur := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.showPreview = m.width >= minWidthForPreview
		m.table = m.createTable()
		m.table.SetCursor(cur)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the map picker.
func (m MapPickerModel) View() string {
	if m.quitting || m.goingBack || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("CHOOSE A MAP", m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := boxStyle.Render(m.table.View())
	if m.showPreview {
		preview := boxStyle.Render(m.renderPreview())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", preview))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	if cur := m.table.Cursor(); cur >= 0 && cur < len(m.maps) && m.maps[cur].Description != "" {
		descStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
		b.WriteString(descStyle.Render(m.maps[cur].Description))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderPreview draws the highlighted map's grid with its spawn marked.
func (m MapPickerModel) renderPreview() string {
	cur := m.table.Cursor()
	if cur < 0 || cur >= len(m.maps) {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No maps found.")
	}

	mp := m.maps[cur]
	wallStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	spawnStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	sx, sy := mp.Spawn.Cell()

	var b strings.Builder
	for y, row := range mp.Grid.Rows() {
		if y > 0 {
			b.WriteString("\n")
		}
		if y != sy {
			b.WriteString(wallStyle.Render(row))
			continue
		}
		b.WriteString(wallStyle.Render(row[:sx]))
		b.WriteString(spawnStyle.Render("@"))
		b.WriteString(wallStyle.Render(row[sx+1:]))
	}
	return b.String()
}

// Selected returns the chosen map, or nil if none was chosen.
func (m MapPickerModel) Selected() *maps.Map {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m MapPickerModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m MapPickerModel) IsQuitting() bool {
	return m.quitting
}

// RunMapPicker runs the map picker. A nil map with goBack false means quit.
func RunMapPicker(list []maps.Map, currentID string, width, height int) (selected *maps.Map, goBack bool, err error) {
	model := NewMapPickerModel(list, currentID, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, fmt.Errorf("running map picker: %w", err)
	}

	m, ok := finalModel.(MapPickerModel)
	if !ok {
		return nil, false, nil
	}
	return m.Selected(), m.IsGoingBack(), nil
}
