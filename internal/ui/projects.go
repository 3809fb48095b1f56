package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/termfolio/internal/content"
)

// sectionHeight is the rendered height of one project card, including the
// blank separator line.
const sectionHeight = 5

// revealFadeTicks is how long a freshly revealed card renders dimmed.
const revealFadeTicks = 8

// projectSection is one project card plus its reveal latch. Once a card has
// scrolled into view it stays revealed, even if it scrolls back out.
type projectSection struct {
	project    content.Project
	revealed   bool
	revealedAt int
}

// ProjectsModel is the scrollable projects list.
type ProjectsModel struct {
	sections []projectSection
	focus    int

	width  int
	height int

	animTick int
	scroll   SpringScroller
	cursor   CursorFollower
}

// NewProjectsModel creates the projects view.
func NewProjectsModel(projects []content.Project) ProjectsModel {
	sections := make([]projectSection, len(projects))
	for i, p := range projects {
		sections[i] = projectSection{project: p}
	}
	return ProjectsModel{
		sections: sections,
		scroll:   NewSpringScroller(),
		cursor:   NewCursorFollower(),
	}
}

// SetSize updates the available content area.
func (m ProjectsModel) SetSize(width, height int) ProjectsModel {
	m.width = width
	m.height = height
	m.scroll = m.scroll.SetMax(m.totalLines() - height)
	return m
}

func (m ProjectsModel) totalLines() int {
	return len(m.sections) * sectionHeight
}

// Step advances springs and latches reveals for cards inside the viewport.
func (m ProjectsModel) Step(animTick int) ProjectsModel {
	m.animTick = animTick
	m.scroll = m.scroll.Step()
	m.cursor = m.cursor.Step()

	offset := m.scroll.Offset()
	for i := range m.sections {
		if m.sections[i].revealed {
			continue
		}
		top := i * sectionHeight
		if top >= offset && top < offset+m.height {
			m.sections[i].revealed = true
			m.sections[i].revealedAt = animTick
		}
	}
	return m
}

// Update handles key input.
func (m ProjectsModel) Update(msg tea.Msg) (ProjectsModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.focus < len(m.sections)-1 {
			m.focus++
		}
		m = m.ensureFocusVisible()
	case "k", "up":
		if m.focus > 0 {
			m.focus--
		}
		m = m.ensureFocusVisible()
	case "J":
		m.scroll = m.scroll.ScrollBy(sectionHeight)
	case "K":
		m.scroll = m.scroll.ScrollBy(-sectionHeight)
	case "g":
		m.focus = 0
		m.scroll = m.scroll.ScrollTo(0)
	case "G":
		if len(m.sections) > 0 {
			m.focus = len(m.sections) - 1
		}
		m.scroll = m.scroll.ScrollTo(m.totalLines())
	}

	m.cursor = m.cursor.Follow(m.focus * sectionHeight)
	return m, nil
}

// ensureFocusVisible scrolls so the focused card's full height fits.
func (m ProjectsModel) ensureFocusVisible() ProjectsModel {
	top := m.focus * sectionHeight
	bottom := top + sectionHeight
	if top < m.scroll.Target() {
		m.scroll = m.scroll.ScrollTo(top)
	} else if bottom > m.scroll.Target()+m.height {
		m.scroll = m.scroll.ScrollTo(bottom - m.height)
	}
	return m
}

// Focus returns the index of the focused card.
func (m ProjectsModel) Focus() int {
	return m.focus
}

// View renders the visible slice of the project list.
func (m ProjectsModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if len(m.sections) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Render("  no projects")
	}

	var all []string
	for i, s := range m.sections {
		all = append(all, m.renderSection(i, s)...)
	}

	offset := m.scroll.Offset()
	if offset > len(all)-1 {
		offset = len(all) - 1
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + m.height
	if end > len(all) {
		end = len(all)
	}

	cursorRow := m.cursor.Row()
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD"))

	visible := make([]string, 0, end-offset)
	for row := offset; row < end; row++ {
		gutter := "  "
		if row == cursorRow {
			gutter = accentStyle.Render("▶ ")
		}
		visible = append(visible, gutter+all[row])
	}
	return strings.Join(visible, "\n")
}

// renderSection renders one card as exactly sectionHeight lines.
func (m ProjectsModel) renderSection(i int, s projectSection) []string {
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C77DFF"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	techStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	// Cards fade in: unrevealed cards render blank, fresh reveals render
	// dimmed until the fade window passes.
	if !s.revealed {
		return make([]string, sectionHeight)
	}
	fading := m.animTick-s.revealedAt < revealFadeTicks
	if fading {
		nameStyle = dimStyle
		techStyle = dimStyle
	}

	name := nameStyle.Render(s.project.Name)
	if i == m.focus && !fading {
		name = nameStyle.Underline(true).Render(s.project.Name)
	}

	lines := []string{
		name,
		dimStyle.Render(s.project.Summary),
		techStyle.Render(strings.Join(s.project.Tech, " · ")),
	}
	if s.project.Link != "" {
		lines = append(lines, dimStyle.Render("→ "+s.project.Link))
	}
	for len(lines) < sectionHeight {
		lines = append(lines, "")
	}
	return lines
}
