package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testAccordion() AccordionModel {
	return NewAccordionModel([]AccordionItem{
		{Title: "First", Subtitle: "one", Body: []string{"line a", "line b"}},
		{Title: "Second", Subtitle: "two", Body: []string{"line c"}},
		{Title: "Third", Body: []string{"line d"}},
	}).SetSize(80, 24)
}

func TestAccordion_StartsCollapsed(t *testing.T) {
	m := testAccordion()
	if m.Open() != -1 {
		t.Errorf("Open() = %d, want -1", m.Open())
	}
	if strings.Contains(m.View(), "line a") {
		t.Error("collapsed accordion shows body text")
	}
}

func TestAccordion_FocusNavigation(t *testing.T) {
	m := testAccordion()

	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("j"))
	if m.Focus() != 2 {
		t.Errorf("Focus() = %d, want 2", m.Focus())
	}
	// Clamped at the last entry.
	m, _ = m.Update(keyMsg("j"))
	if m.Focus() != 2 {
		t.Errorf("Focus() past end = %d, want 2", m.Focus())
	}
	m, _ = m.Update(keyMsg("k"))
	if m.Focus() != 1 {
		t.Errorf("Focus() = %d, want 1", m.Focus())
	}
}

func TestAccordion_OpenClosesPrevious(t *testing.T) {
	m := testAccordion()

	m, _ = m.Update(keyMsg("enter"))
	if m.Open() != 0 {
		t.Fatalf("Open() = %d, want 0", m.Open())
	}

	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("enter"))
	if m.Open() != 1 {
		t.Errorf("Open() = %d, want 1 (previous entry should close)", m.Open())
	}

	out := m.View()
	if strings.Contains(out, "line a") {
		t.Error("first entry body still visible after opening second")
	}
	if !strings.Contains(out, "line c") {
		t.Error("second entry body missing")
	}
}

func TestAccordion_ToggleAndEscape(t *testing.T) {
	m := testAccordion()

	m, _ = m.Update(keyMsg("enter"))
	m, _ = m.Update(keyMsg("enter"))
	if m.Open() != -1 {
		t.Errorf("Open() after toggle = %d, want -1", m.Open())
	}

	m, _ = m.Update(keyMsg("enter"))
	m, _ = m.Update(keyMsg("esc"))
	if m.Open() != -1 {
		t.Errorf("Open() after esc = %d, want -1", m.Open())
	}
}

func TestAccordion_ViewMarkers(t *testing.T) {
	m := testAccordion()
	if !strings.Contains(m.View(), "▸ First") {
		t.Error("collapsed marker missing")
	}
	m, _ = m.Update(keyMsg("enter"))
	if !strings.Contains(m.View(), "▾ First") {
		t.Error("expanded marker missing")
	}
}

func TestAccordion_Empty(t *testing.T) {
	m := NewAccordionModel(nil)
	if m.View() != "" {
		t.Errorf("empty accordion view = %q, want empty", m.View())
	}
	m, _ = m.Update(keyMsg("enter"))
	if m.Open() != -1 {
		t.Errorf("Open() on empty accordion = %d, want -1", m.Open())
	}
}
