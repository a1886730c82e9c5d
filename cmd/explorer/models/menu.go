package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/VoidMesh/noise/cmd/explorer/components"
	"github.com/VoidMesh/noise/internal/presets"
)

// MenuModel lists the registered presets
type MenuModel struct {
	choices []presets.Preset
	cursor  int
	width   int
	height  int
}

func NewMenuModel(choices []presets.Preset) MenuModel {
	return MenuModel{choices: choices}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Select moves the cursor to the named preset if present.
func (m *MenuModel) Select(name string) {
	for i, p := range m.choices {
		if p.Name == name {
			m.cursor = i
			return
		}
	}
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.choices) == 0 {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.choices) - 1
		}

	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}

	case "home", "g":
		m.cursor = 0

	case "end", "G":
		m.cursor = len(m.choices) - 1

	case "enter", " ":
		selected := m.choices[m.cursor]
		return m, func() tea.Msg {
			return OpenPresetMsg{Preset: selected}
		}
	}

	return m, nil
}

// visibleRows is how many presets fit between the title and the footer.
func (m MenuModel) visibleRows() int {
	if m.height <= 0 {
		return 15
	}
	return max(m.height-14, 3)
}

func (m MenuModel) View() string {
	var s strings.Builder

	s.WriteString(components.TitleStyle.Render("Noise Explorer") + "\n\n")

	menuStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(components.PrimaryColor).
		Padding(1, 2).
		Width(60)

	// Scroll so the cursor stays visible
	rows := m.visibleRows()
	first := max(0, min(m.cursor-rows/2, len(m.choices)-rows))
	last := min(first+rows, len(m.choices))

	var items []string
	for i := first; i < last; i++ {
		p := m.choices[i]
		item := fmt.Sprintf("%-3s %-26s %dD %v", fmt.Sprintf("%d.", i+1), p.Name, p.Dim, p.Shape)

		itemStyle := components.MenuItemStyle
		if i == m.cursor {
			itemStyle = components.SelectedMenuItemStyle
		}
		items = append(items, itemStyle.Render(item))
	}

	s.WriteString(menuStyle.Render(strings.Join(items, "\n")) + "\n\n")

	s.WriteString(components.HelpStyle.Render(
		"Use ↑/↓ or j/k to navigate • Enter to open • ? for help • q to quit",
	))
	s.WriteString("\n\n" + components.StatusBarStyle.Render(
		fmt.Sprintf("%d presets • Built with Bubble Tea & Lip Gloss", len(m.choices)),
	))

	content := s.String()
	if m.width > lipgloss.Width(content) {
		content = components.CenterText(content, m.width)
	}

	return content
}

func (m *MenuModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
