package models

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/VoidMesh/noise/internal/presets"
)

// ViewType represents the different views in the explorer
type ViewType int

const (
	MenuView ViewType = iota
	ExplorerView
)

// App is the main application model
type App struct {
	currentView ViewType
	width       int
	height      int

	menu     MenuModel
	explorer ExplorerModel

	showHelp bool
}

// NewApp creates the application, opening startPreset directly when it
// names a registered preset.
func NewApp(seed uint64, startPreset string) *App {
	app := &App{
		currentView: MenuView,
		menu:        NewMenuModel(presets.All()),
		explorer:    NewExplorerModel(seed),
	}

	if startPreset != "" {
		if p, err := presets.Lookup(startPreset); err == nil {
			app.menu.Select(p.Name)
			app.explorer.Load(p)
			app.currentView = ExplorerView
		} else {
			log.Warn("Unknown start preset, showing menu", "preset", startPreset)
		}
	}

	return app
}

func (m *App) Init() tea.Cmd {
	log.Debug("Initializing noise explorer")
	return nil
}

// Update handles messages and updates the application state
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menu.SetSize(msg.Width, msg.Height)
		m.explorer.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.currentView == MenuView {
				return m, tea.Quit
			}
			m.currentView = MenuView
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		}

	case OpenPresetMsg:
		m.explorer.Load(msg.Preset)
		m.currentView = ExplorerView
		return m, nil

	case BackToMenuMsg:
		m.currentView = MenuView
		return m, nil
	}

	if m.showHelp {
		return m, nil
	}

	switch m.currentView {
	case MenuView:
		newModel, cmd := m.menu.Update(msg)
		m.menu = newModel.(MenuModel)
		return m, cmd
	case ExplorerView:
		newModel, cmd := m.explorer.Update(msg)
		m.explorer = newModel.(ExplorerModel)
		return m, cmd
	}

	return m, nil
}

// View renders the application
func (m *App) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	switch m.currentView {
	case MenuView:
		return m.menu.View()
	case ExplorerView:
		return m.explorer.View()
	}

	return "Unknown view"
}

func (m *App) renderHelp() string {
	return `
┌─ Noise Explorer - Help ──────────────────────────────┐
│                                                      │
│ Global Keys:                                         │
│   q            Quit (from menu) / Back to menu       │
│   Ctrl+C       Quit                                  │
│   ?            Toggle this help                      │
│                                                      │
│ Menu:                                                │
│   ↑/↓, j/k     Move through presets                  │
│   Enter        Open preset                           │
│                                                      │
│ Explorer:                                            │
│   Arrows/hjkl  Pan                                   │
│   + / -        Zoom in / out                         │
│   n / p        Next / previous seed                  │
│   [ / ]        Move through the z slice (3D, 4D)     │
│   { / }        Move through the w slice (4D)         │
│   c            Toggle colour                         │
│   r            Reset view                            │
│   Esc          Back to menu                          │
│                                                      │
│ Press ? again to close this help                     │
└──────────────────────────────────────────────────────┘
`
}

// OpenPresetMsg switches to the explorer showing Preset.
type OpenPresetMsg struct {
	Preset presets.Preset
}

// BackToMenuMsg returns to the preset list.
type BackToMenuMsg struct{}
