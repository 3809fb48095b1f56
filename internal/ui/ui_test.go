package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/termfolio/internal/content"
)

func testPortfolio() content.Portfolio {
	return content.Portfolio{
		Hero:  content.Hero{Name: "Ada Example", Tagline: "systems"},
		About: []string{"about line"},
		Projects: []content.Project{
			{Name: "alpha", Summary: "first", Tech: []string{"go"}},
		},
		Experience: []content.ExperienceItem{
			{Role: "Engineer", Org: "Acme", Period: "2020-2024", Details: []string{"built things"}},
		},
		FAQ: []content.FAQItem{
			{Question: "Why?", Answer: "Because."},
		},
		Contact: content.Contact{Email: "ada@example.com"},
	}
}

func bootedModel(t *testing.T, width, height int) Model {
	t.Helper()
	m := New(testPortfolio(), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	m = next.(Model)
	next, _ = m.Update(keyMsg("enter")) // skip the boot counter
	return next.(Model)
}

func TestModel_NotReadyBeforeSize(t *testing.T) {
	m := New(testPortfolio(), nil)
	if m.View() != "Initializing..." {
		t.Errorf("View() before size = %q", m.View())
	}
}

func TestModel_PreloaderSkip(t *testing.T) {
	m := New(testPortfolio(), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if m.booted {
		t.Fatal("model booted before preloader finished")
	}

	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)
	if !m.booted {
		t.Error("enter did not skip the boot counter")
	}
}

func TestModel_PreloaderRunsToCompletion(t *testing.T) {
	m := New(testPortfolio(), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	for i := 0; i < preloadTicks+1 && !m.booted; i++ {
		next, _ = m.Update(preloadTickMsg{})
		m = next.(Model)
	}
	if !m.booted {
		t.Error("preloader ticks never finished the boot")
	}
}

func TestModel_ViewSwitching(t *testing.T) {
	tests := []struct {
		key  string
		want ViewMode
	}{
		{"2", ViewProjects},
		{"p", ViewProjects},
		{"3", ViewExperience},
		{"e", ViewExperience},
		{"4", ViewContact},
		{"c", ViewContact},
		{"1", ViewHome},
		{"h", ViewHome},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := bootedModel(t, 100, 30)
			next, _ := m.Update(keyMsg(tt.key))
			if got := next.(Model).viewMode; got != tt.want {
				t.Errorf("key %q: viewMode = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestModel_TabCycles(t *testing.T) {
	m := bootedModel(t, 100, 30)
	for i := 0; i < viewCount; i++ {
		want := ViewMode((i + 1) % viewCount)
		next, _ := m.Update(keyMsg("tab"))
		m = next.(Model)
		if m.viewMode != want {
			t.Fatalf("tab %d: viewMode = %v, want %v", i+1, m.viewMode, want)
		}
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		m := bootedModel(t, 100, 30)
		var msg tea.KeyMsg
		if key == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		} else {
			msg = keyMsg(key)
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("key %q produced no command, want quit", key)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %q did not quit", key)
		}
	}
}

func TestModel_NavCollapse(t *testing.T) {
	wide := bootedModel(t, navCollapseWidth+10, 30)
	if wide.navCollapsed() {
		t.Error("nav collapsed at wide width")
	}

	narrow := bootedModel(t, navCollapseWidth-10, 30)
	if !narrow.navCollapsed() {
		t.Error("nav not collapsed at narrow width")
	}

	// m only opens the menu while collapsed.
	next, _ := wide.Update(keyMsg("m"))
	if next.(Model).navOpen {
		t.Error("menu opened at wide width")
	}
	next, _ = narrow.Update(keyMsg("m"))
	if !next.(Model).navOpen {
		t.Error("menu did not open at narrow width")
	}
}

func TestModel_NavMenuSelection(t *testing.T) {
	m := bootedModel(t, navCollapseWidth-10, 30)
	next, _ := m.Update(keyMsg("m"))
	m = next.(Model)

	next, _ = m.Update(keyMsg("j"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)

	if m.navOpen {
		t.Error("menu still open after selection")
	}
	if m.viewMode != ViewProjects {
		t.Errorf("viewMode = %v after selecting second entry, want %v", m.viewMode, ViewProjects)
	}
}

func TestModel_NavMenuEscape(t *testing.T) {
	m := bootedModel(t, navCollapseWidth-10, 30)
	next, _ := m.Update(keyMsg("m"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("esc"))
	m = next.(Model)
	if m.navOpen {
		t.Error("esc did not close the menu")
	}
	if m.viewMode != ViewHome {
		t.Errorf("viewMode changed on close: %v", m.viewMode)
	}
}

func TestModel_ViewRendersPerMode(t *testing.T) {
	m := bootedModel(t, 100, 30)

	if !strings.Contains(m.View(), "Ada Example") {
		t.Error("home view missing hero name")
	}

	next, _ := m.Update(keyMsg("3"))
	m = next.(Model)
	if !strings.Contains(m.View(), "Engineer") {
		t.Error("experience view missing role")
	}

	next, _ = m.Update(keyMsg("4"))
	m = next.(Model)
	if !strings.Contains(m.View(), "ada@example.com") {
		t.Error("contact view missing email")
	}
}

func TestModel_PreloaderIgnoresOtherKeys(t *testing.T) {
	m := New(testPortfolio(), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	for _, key := range []string{"x", "j", "tab", "1"} {
		next, _ = m.Update(keyMsg(key))
		m = next.(Model)
		if m.booted {
			t.Fatalf("key %q skipped the boot counter", key)
		}
	}
}

func TestModel_TickDrivesFooterClock(t *testing.T) {
	m := bootedModel(t, 100, 30)
	if strings.Contains(m.View(), "13:37") {
		t.Fatal("clock visible before the first tick")
	}

	at := time.Date(2026, 8, 24, 13, 37, 0, 0, time.UTC)
	next, cmd := m.Update(TickMsg(at))
	m = next.(Model)
	if cmd == nil {
		t.Error("tick did not reschedule itself")
	}
	if !strings.Contains(m.View(), "13:37") {
		t.Errorf("footer missing clock after tick:\n%s", m.View())
	}
}

func TestModel_AnimTickAdvances(t *testing.T) {
	m := bootedModel(t, 100, 30)
	before := m.animTick
	next, _ := m.Update(AnimTickMsg{})
	m = next.(Model)
	if m.animTick != before+1 {
		t.Errorf("animTick = %d, want %d", m.animTick, before+1)
	}
}
