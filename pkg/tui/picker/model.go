// Package picker is a small Bubble Tea program for choosing one line of the
// journal overview. Typing narrows the list with fuzzy matching.
package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

const defaultHeight = 10

// Model lists lines and reports which one the user picked.
type Model struct {
	title  string
	lines  []string
	filter textinput.Model
	theme  Theme

	matches []int
	cursor  int
	offset  int
	height  int

	selected  int
	cancelled bool
}

// New builds a picker over lines. Indices returned by Selected are positions
// in lines.
func New(title string, lines []string) *Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "type to filter"
	ti.Focus()

	m := &Model{
		title:    title,
		lines:    lines,
		filter:   ti,
		theme:    DefaultTheme(),
		height:   defaultHeight,
		selected: -1,
	}
	m.refilter()
	return m
}

// Selected reports the chosen line, if any.
func (m *Model) Selected() (int, bool) {
	return m.selected, m.selected >= 0
}

// Cancelled reports whether the user backed out.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, filter, help and margins take six rows.
		m.height = max(msg.Height-6, 1)
		m.scroll()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if len(m.matches) == 0 {
				return m, nil
			}
			m.selected = m.matches[m.cursor]
			return m, tea.Quit
		case tea.KeyUp, tea.KeyCtrlP:
			m.move(-1)
			return m, nil
		case tea.KeyDown, tea.KeyCtrlN:
			m.move(1)
			return m, nil
		case tea.KeyPgUp:
			m.move(-m.height)
			return m, nil
		case tea.KeyPgDown:
			m.move(m.height)
			return m, nil
		}
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.refilter()
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n")

	if len(m.matches) == 0 {
		b.WriteString(m.theme.Empty.Render("no matches"))
		b.WriteString("\n")
	}
	end := min(m.offset+m.height, len(m.matches))
	for i := m.offset; i < end; i++ {
		line := m.lines[m.matches[i]]
		if i == m.cursor {
			b.WriteString(m.theme.Selected.Render(line))
		} else {
			b.WriteString(m.theme.Item.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Help.Render("↑/↓ move • enter choose • esc cancel"))
	return b.String()
}

func (m *Model) move(delta int) {
	if len(m.matches) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.matches)-1)
	m.scroll()
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m *Model) refilter() {
	query := strings.TrimSpace(m.filter.Value())
	m.matches = m.matches[:0]
	if query == "" {
		for i := range m.lines {
			m.matches = append(m.matches, i)
		}
	} else {
		for _, match := range fuzzy.Find(query, m.lines) {
			m.matches = append(m.matches, match.Index)
		}
	}
	m.cursor, m.offset = 0, 0
}
