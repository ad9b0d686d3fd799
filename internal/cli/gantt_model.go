package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttly/internal/cli/formatter"
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/layout"
	"github.com/alexanderramin/ganttly/internal/view"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	ganttLabelWidth = 28
	// ganttChrome is the rows taken by headers, footer and help.
	ganttChrome = 6
	scrollStep  = 8
)

type ganttKeyMap struct {
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Reset   key.Binding
	Finer   key.Binding
	Coarser key.Binding
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Jump    key.Binding
	Quit    key.Binding
}

func defaultGanttKeys() ganttKeyMap {
	return ganttKeyMap{
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Reset:   key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset")),
		Finer:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "finer scale")),
		Coarser: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "coarser scale")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "scroll left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "scroll right")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand/collapse")),
		Jump:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to task")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k ganttKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.Reset, k.Left, k.Right, k.Toggle, k.Quit}
}

func (k ganttKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ZoomIn, k.ZoomOut, k.Reset, k.Finer, k.Coarser},
		{k.Left, k.Right, k.Up, k.Down, k.Toggle, k.Jump, k.Quit},
	}
}

// ganttModel is the interactive chart. The tree is read-only; zoom, scroll,
// cursor and expansion are view state.
type ganttModel struct {
	title    string
	tree     []*domain.Task
	expanded map[string]bool
	vp       layout.Viewport
	cfg      layout.Config

	rows  []view.Row
	chart *layout.Chart
	err   error

	scroll int // first visible chart column
	top    int // first visible row
	cursor int

	width  int
	height int
	keys   ganttKeyMap
	help   help.Model
}

func newGanttModel(title string, tree []*domain.Task, expanded map[string]bool, vp layout.Viewport, cfg layout.Config) ganttModel {
	m := ganttModel{
		title:    title,
		tree:     tree,
		expanded: expanded,
		vp:       vp,
		cfg:      cfg,
		keys:     defaultGanttKeys(),
		help:     help.New(),
	}
	m.rebuild()
	return m
}

func (m *ganttModel) rebuild() {
	m.rows = view.FlattenWithLineNumbers(m.tree, m.expanded)
	lrows := make([]layout.Row, len(m.rows))
	for i, r := range m.rows {
		lrows[i] = layout.Row{Task: r.Task, Depth: r.Depth}
	}
	m.chart, m.err = layout.ComputeRows(m.tree, lrows, m.vp, m.cfg)
	m.cursor = min(max(m.cursor, 0), max(len(m.rows)-1, 0))
	m.scroll = min(m.scroll, m.maxScroll())
	m.follow()
}

// setViewport switches zoom and keeps the date at the left edge in place.
func (m *ganttModel) setViewport(vp layout.Viewport) {
	if m.chart == nil {
		m.vp = vp
		m.rebuild()
		return
	}
	anchor := m.chart.DateAt(float64(m.scroll) * formatter.ColumnPixels)
	m.vp = vp
	m.rebuild()
	if m.chart != nil {
		m.scroll = m.column(layout.Offset(m.chart.Start, anchor, m.chart.PxPerDay))
	}
}

func (m *ganttModel) column(px float64) int {
	return min(max(int(px/formatter.ColumnPixels), 0), m.maxScroll())
}

func (m *ganttModel) viewCols() int {
	if m.width == 0 {
		return 0
	}
	return max(10, m.width-ganttLabelWidth-1)
}

func (m *ganttModel) viewRows() int {
	if m.height == 0 {
		return len(m.rows)
	}
	return max(1, m.height-ganttChrome)
}

func (m *ganttModel) maxScroll() int {
	if m.chart == nil {
		return 0
	}
	return max(0, formatter.GanttColumns(m.chart)-max(m.viewCols(), 1))
}

// follow scrolls vertically so the cursor row is visible.
func (m *ganttModel) follow() {
	n := m.viewRows()
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+n {
		m.top = m.cursor - n + 1
	}
	m.top = max(0, min(m.top, max(0, len(m.rows)-n)))
}

func (m ganttModel) Init() tea.Cmd { return nil }

func (m ganttModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.scroll = min(m.scroll, m.maxScroll())
		m.follow()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ZoomIn):
			m.setViewport(m.vp.ZoomIn())
		case key.Matches(msg, m.keys.ZoomOut):
			m.setViewport(m.vp.ZoomOut())
		case key.Matches(msg, m.keys.Reset):
			m.setViewport(m.vp.Reset())
		case key.Matches(msg, m.keys.Finer):
			if s, ok := m.vp.Scale.Finer(); ok {
				m.setViewport(m.vp.WithScale(s))
			}
		case key.Matches(msg, m.keys.Coarser):
			if s, ok := m.vp.Scale.Coarser(); ok {
				m.setViewport(m.vp.WithScale(s))
			}
		case key.Matches(msg, m.keys.Left):
			m.scroll = max(0, m.scroll-scrollStep)
		case key.Matches(msg, m.keys.Right):
			m.scroll = min(m.maxScroll(), m.scroll+scrollStep)
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(0, m.cursor-1)
			m.follow()
		case key.Matches(msg, m.keys.Down):
			m.cursor = min(max(len(m.rows)-1, 0), m.cursor+1)
			m.follow()
		case key.Matches(msg, m.keys.Toggle):
			if r, ok := m.current(); ok && r.HasChildren {
				m.expanded = view.Toggle(m.expanded, r.Task.ID)
				m.rebuild()
			}
		case key.Matches(msg, m.keys.Jump):
			if m.chart != nil && m.cursor < len(m.chart.Bars) {
				m.scroll = m.column(m.chart.Bars[m.cursor].Offset)
			}
		}
	}
	return m, nil
}

func (m ganttModel) current() (view.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return view.Row{}, false
	}
	return m.rows[m.cursor], true
}

func (m ganttModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(m.title) + "\n")
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render(fmt.Sprintf("cannot draw chart: %v", m.err)) + "\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	// Window the chart to the visible rows.
	end := min(len(m.chart.Bars), m.top+m.viewRows())
	visible := *m.chart
	visible.Bars = m.chart.Bars[m.top:end]
	numbers := make([]int, 0, end-m.top)
	for _, r := range m.rows[m.top:end] {
		numbers = append(numbers, r.LineNumber)
	}

	b.WriteString(formatter.RenderGantt(&visible, formatter.GanttOptions{
		LabelWidth:  ganttLabelWidth,
		ScrollCol:   m.scroll,
		ViewCols:    m.viewCols(),
		LineNumbers: numbers,
		Cursor:      m.cursor - m.top,
	}))
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
