package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/csvpage/internal/dataframe"
	"github.com/muurk/csvpage/internal/logging"
	"github.com/muurk/csvpage/internal/pager"
	"github.com/muurk/csvpage/internal/termsize"
	"github.com/muurk/csvpage/internal/ui"
)

// chromeLines is the status line plus the help line.
const chromeLines = 2

// Model is the Bubble Tea model of the browser.
type Model struct {
	src    dataframe.Source
	header string

	start  int
	height int
	sized  bool
	width  int

	keys     keyMap
	help     help.Model
	quitting bool

	headerStyle lipgloss.Style
	statusStyle lipgloss.Style
}

// New returns a browser over src. When probed is false the page height is
// taken from the first window-size message instead of size.
func New(src dataframe.Source, header string, size termsize.WindowSize, probed bool) Model {
	r := lipgloss.DefaultRenderer()
	m := Model{
		src:         src,
		header:      header,
		keys:        defaultKeyMap(),
		help:        help.New(),
		headerStyle: ui.HeaderStyle(r),
		statusStyle: ui.StatusStyle(r),
	}
	if !probed {
		size = termsize.Default()
	}
	m.height = pager.PageHeightFor(size.Rows, m.reserved())
	m.width = int(size.Cols)
	m.sized = probed
	return m
}

func (m Model) reserved() int {
	if m.header != "" {
		return chromeLines + 1
	}
	return chromeLines
}

// Page returns the page currently on screen.
func (m Model) Page() pager.Page {
	return pager.PageAt(m.start, m.height, m.src.Len())
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if !m.sized && msg.Height > 0 {
			m.height = pager.PageHeightFor(uint16(min(msg.Height, 0xFFFF)), m.reserved())
			m.start = 0
			m.sized = true
		}
		return m, nil

	case tea.KeyMsg:
		n := m.src.Len()
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if page := m.Page(); !page.Final {
				m.start = page.End
			}
		case key.Matches(msg, m.keys.Prev):
			m.start = max(0, m.start-m.height)
		case key.Matches(msg, m.keys.First):
			m.start = 0
		case key.Matches(msg, m.keys.Last):
			m.start = pager.LastPageStart(m.height, n)
		default:
			return m, nil
		}
		page := m.Page()
		logging.LogPage(page.Start, page.End, n)
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.header != "" {
		b.WriteString(ui.RenderLine(m.headerStyle, m.header))
		b.WriteString("\n")
	}

	page := m.Page()
	for i := page.Start; i < page.End; i++ {
		b.WriteString(m.src.Line(i))
		b.WriteString("\n")
	}
	// Keep the status line at the bottom on a short final page.
	for i := page.Len(); i < m.height; i++ {
		b.WriteString("\n")
	}

	b.WriteString(m.statusStyle.Render(m.status(page)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) status(page pager.Page) string {
	n := m.src.Len()
	if n == 0 {
		return "no rows"
	}
	pages := (n + m.height - 1) / m.height
	return fmt.Sprintf("rows %d-%d of %d (page %d/%d)",
		page.Start+1, page.End, n, page.Start/m.height+1, pages)
}

// Run starts the browser on the alternate screen and blocks until the user
// quits.
func Run(src dataframe.Source, header string, size termsize.WindowSize, probed bool) error {
	p := tea.NewProgram(New(src, header, size, probed), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
