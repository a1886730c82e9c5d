package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/VoidMesh/noise/cmd/explorer/components"
	"github.com/VoidMesh/noise/internal/presets"
)

const (
	defaultCols = 64
	defaultRows = 24
	panStep     = 4 // cells per key press
	sliceSteps  = 16
	minScale    = 1.0 / 64
	maxScale    = 1 << 12
)

// ExplorerModel samples a preset over a pannable, zoomable window of its
// first two axes. Higher axes are fixed slices the user can step through.
type ExplorerModel struct {
	preset presets.Preset
	loaded bool
	sample func(coords []float64) float64

	baseSeed uint64
	seed     uint64

	// View window in sample coordinates. Rows walk axis 0, columns axis 1;
	// 1D presets plot axis 0 across the columns.
	originRow float64
	originCol float64
	scale     float64
	slice     [2]float64

	color  bool
	width  int
	height int
}

// NewExplorerModel creates an explorer with no preset loaded
func NewExplorerModel(seed uint64) ExplorerModel {
	return ExplorerModel{
		baseSeed: seed,
		seed:     seed,
		color:    true,
	}
}

func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

// Load switches to preset p and resets the view.
func (m *ExplorerModel) Load(p presets.Preset) {
	m.preset = p
	m.loaded = true
	m.seed = m.baseSeed
	m.reset()
}

func (m *ExplorerModel) reset() {
	m.originRow, m.originCol = 0, 0
	m.slice = [2]float64{}
	m.seed = m.baseSeed
	m.sample = m.preset.Sampler(m.seed)

	cols, _ := m.gridSize()
	extent := m.preset.Shape[0]
	if m.preset.Dim > 1 {
		extent = m.preset.Shape[1]
	}
	m.scale = clampScale(float64(extent) / float64(cols))
}

func (m *ExplorerModel) reseed(seed uint64) {
	m.seed = seed
	m.sample = m.preset.Sampler(seed)
}

func clampScale(s float64) float64 {
	return math.Min(math.Max(s, minScale), maxScale)
}

// gridSize is the number of sample columns and rows that fit beside the
// info panel.
func (m ExplorerModel) gridSize() (cols, rows int) {
	if m.width <= 0 || m.height <= 0 {
		return defaultCols, defaultRows
	}
	return max(m.width-40, 8), max(m.height-10, 4)
}

func (m ExplorerModel) sliceStep(axis int) float64 {
	if m.preset.Dim <= axis {
		return 0
	}
	return math.Max(1, float64(m.preset.Shape[axis])/sliceSteps)
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.loaded {
		return m, nil
	}

	step := panStep * m.scale
	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return BackToMenuMsg{} }

	case "up", "k":
		m.originRow -= step
	case "down", "j":
		m.originRow += step
	case "left", "h":
		m.originCol -= step
	case "right", "l":
		m.originCol += step

	case "+", "=":
		m.zoom(0.5)
	case "-", "_":
		m.zoom(2)

	case "n":
		m.reseed(m.seed + 1)
	case "p":
		m.reseed(m.seed - 1)

	case "]":
		m.slice[0] += m.sliceStep(2)
	case "[":
		m.slice[0] -= m.sliceStep(2)
	case "}":
		m.slice[1] += m.sliceStep(3)
	case "{":
		m.slice[1] -= m.sliceStep(3)

	case "c":
		m.color = !m.color
	case "r":
		m.reset()
	}

	return m, nil
}

// zoom rescales the window around its centre.
func (m *ExplorerModel) zoom(factor float64) {
	cols, rows := m.gridSize()
	centreRow := m.originRow + float64(rows)*m.scale/2
	centreCol := m.originCol + float64(cols)*m.scale/2

	m.scale = clampScale(m.scale * factor)
	m.originRow = centreRow - float64(rows)*m.scale/2
	m.originCol = centreCol - float64(cols)*m.scale/2
}

// point returns the sample coordinates under grid cell (row, col).
func (m ExplorerModel) point(row, col int) []float64 {
	r := m.originRow + float64(row)*m.scale
	c := m.originCol + float64(col)*m.scale
	switch m.preset.Dim {
	case 1:
		return []float64{c}
	case 2:
		return []float64{r, c}
	case 3:
		return []float64{r, c, m.slice[0]}
	default:
		return []float64{r, c, m.slice[0], m.slice[1]}
	}
}

// values samples the visible window. 1D presets yield a single row.
func (m ExplorerModel) values() [][]float64 {
	cols, rows := m.gridSize()
	if m.preset.Dim == 1 {
		rows = 1
	}

	grid := make([][]float64, rows)
	for r := range grid {
		grid[r] = make([]float64, cols)
		for c := range grid[r] {
			grid[r][c] = m.sample(m.point(r, c))
		}
	}
	return grid
}

func (m ExplorerModel) View() string {
	if !m.loaded {
		return components.BorderStyle.Render("No preset selected")
	}

	var s strings.Builder

	title := components.TitleStyle.Render(fmt.Sprintf("%s - seed %d", m.preset.Name, m.seed))
	s.WriteString(title + "\n")

	grid := m.values()
	var body string
	if m.preset.Dim == 1 {
		body = m.renderPlot(grid[0])
	} else {
		body = m.renderField(grid)
	}

	s.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		components.BorderStyle.Render(body),
		m.renderInfoPanel(grid),
	) + "\n")

	s.WriteString(components.StatusBarStyle.Render(
		"hjkl pan • +/- zoom • n/p seed • [ ] z slice • { } w slice • c colour • r reset • esc back",
	))

	return s.String()
}

func (m ExplorerModel) renderField(grid [][]float64) string {
	lines := make([]string, len(grid))
	for r, row := range grid {
		var line strings.Builder
		for _, v := range row {
			cell := string(components.ShadeSymbol(v))
			if m.color {
				cell = lipgloss.NewStyle().Foreground(components.ShadeColor(v)).Render(cell)
			}
			line.WriteString(cell)
		}
		lines[r] = line.String()
	}
	return strings.Join(lines, "\n")
}

// plotRow maps v in [-1, 1] onto a row of a plot with the given height,
// top row first. ok is false for NaN.
func plotRow(v float64, height int) (row int, ok bool) {
	if math.IsNaN(v) {
		return 0, false
	}
	t := (1 - math.Min(math.Max(v, -1), 1)) / 2
	return int(math.Round(t * float64(height-1))), true
}

func (m ExplorerModel) renderPlot(values []float64) string {
	_, height := m.gridSize()

	canvas := make([][]string, height)
	for r := range canvas {
		canvas[r] = make([]string, len(values))
		for c := range canvas[r] {
			canvas[r][c] = " "
		}
	}
	// Zero axis
	if zero, ok := plotRow(0, height); ok {
		for c := range canvas[zero] {
			canvas[zero][c] = lipgloss.NewStyle().Foreground(components.DarkGray).Render("─")
		}
	}

	for c, v := range values {
		row, ok := plotRow(v, height)
		if !ok {
			continue
		}
		symbol := components.PlotSymbol
		if m.color {
			symbol = lipgloss.NewStyle().Foreground(components.ShadeColor(v)).Render(symbol)
		}
		canvas[row][c] = symbol
	}

	lines := make([]string, height)
	for r, row := range canvas {
		lines[r] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

// stats summarises the finite values of grid.
func stats(grid [][]float64) (lo, hi, mean float64, nan int) {
	lo, hi = math.Inf(1), math.Inf(-1)
	var sum float64
	var n int
	for _, row := range grid {
		for _, v := range row {
			if math.IsNaN(v) {
				nan++
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			sum += v
			n++
		}
	}
	if n > 0 {
		mean = sum / float64(n)
	}
	return lo, hi, mean, nan
}

func (m ExplorerModel) renderInfoPanel(grid [][]float64) string {
	var info strings.Builder

	info.WriteString(components.SubtitleStyle.Render("Preset") + "\n")
	info.WriteString(fmt.Sprintf("Name: %s\n", m.preset.Name))
	info.WriteString(fmt.Sprintf("Dimension: %dD\n", m.preset.Dim))
	info.WriteString(fmt.Sprintf("Shape: %v\n", m.preset.Shape))
	info.WriteString("Seed: " + components.SeedStyle.Render(strconv.FormatUint(m.seed, 10)) + "\n\n")

	info.WriteString(components.SubtitleStyle.Render("View") + "\n")
	if m.preset.Dim > 1 {
		info.WriteString(fmt.Sprintf("Origin: (%.1f, %.1f)\n", m.originRow, m.originCol))
	} else {
		info.WriteString(fmt.Sprintf("Origin: %.1f\n", m.originCol))
	}
	info.WriteString(fmt.Sprintf("Scale: %.3g per cell\n", m.scale))
	if m.preset.Dim > 2 {
		info.WriteString(fmt.Sprintf("Z slice: %.1f\n", m.slice[0]))
	}
	if m.preset.Dim > 3 {
		info.WriteString(fmt.Sprintf("W slice: %.1f\n", m.slice[1]))
	}
	info.WriteString("\n")

	lo, hi, mean, nan := stats(grid)
	info.WriteString(components.SubtitleStyle.Render("Values") + "\n")
	if math.IsInf(lo, 1) {
		info.WriteString("No finite samples\n")
	} else {
		info.WriteString(fmt.Sprintf("Min: %.3f\nMax: %.3f\nMean: %.3f\n", lo, hi, mean))
	}
	if nan > 0 {
		info.WriteString(components.ErrorStyle.Render(fmt.Sprintf("NaN: %d", nan)) + "\n")
	}

	return components.InfoPanelStyle.Render(info.String())
}

func (m *ExplorerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
