package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var lines = []string{
	"[0000] 2023-05-01: planted tomatoes",
	"[0001] 2023-05-02: rain all day",
	"[0002] 2023-05-03: tomatoes sprouted",
}

func press(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestPickerMovesAndSelects(t *testing.T) {
	m := New("Delete which entry?", lines)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected quit command after enter")
	}
	idx, ok := m.Selected()
	if !ok || idx != 1 {
		t.Fatalf("expected index 1 selected, got %d (%v)", idx, ok)
	}
}

func TestPickerCursorClamps(t *testing.T) {
	m := New("pick", lines)
	for i := 0; i < 10; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if idx, _ := m.Selected(); idx != 2 {
		t.Fatalf("expected last index, got %d", idx)
	}

	m = New("pick", lines)
	press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	if idx, _ := m.Selected(); idx != 0 {
		t.Fatalf("expected first index, got %d", idx)
	}
}

func TestPickerFilters(t *testing.T) {
	m := New("pick", lines)
	typeText(m, "rain")

	view := m.View()
	if strings.Contains(view, "planted tomatoes") || !strings.Contains(view, "rain all day") {
		t.Fatalf("expected only the matching line:\n%s", view)
	}

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if idx, ok := m.Selected(); !ok || idx != 1 {
		t.Fatalf("expected original index 1, got %d (%v)", idx, ok)
	}
}

func TestPickerNoMatches(t *testing.T) {
	m := New("pick", lines)
	typeText(m, "zzzz")

	if !strings.Contains(m.View(), "no matches") {
		t.Fatalf("expected no matches marker:\n%s", m.View())
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.Selected(); ok {
		t.Fatalf("expected nothing selected")
	}
}

func TestPickerCancel(t *testing.T) {
	m := New("pick", lines)
	cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !m.Cancelled() {
		t.Fatalf("expected cancel and quit")
	}
	if _, ok := m.Selected(); ok {
		t.Fatalf("expected nothing selected")
	}
}

func TestPickerScrollsWithSmallWindow(t *testing.T) {
	many := make([]string, 20)
	for i := range many {
		many[i] = strings.Repeat("x", i+1)
	}
	m := New("pick", many)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 9})

	for i := 0; i < 5; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	view := m.View()
	if strings.Contains(view, "\n  x\n") {
		t.Fatalf("expected first line scrolled out:\n%s", view)
	}
	if !strings.Contains(view, strings.Repeat("x", 6)) {
		t.Fatalf("expected cursor line visible:\n%s", view)
	}
}
