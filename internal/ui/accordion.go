package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AccordionItem is one collapsible entry.
type AccordionItem struct {
	Title    string
	Subtitle string
	Body     []string
}

// AccordionModel is a focusable list where at most one entry is expanded.
// Opening an entry collapses whichever one was open.
type AccordionModel struct {
	items []AccordionItem
	focus int
	open  int // expanded entry index, -1 for none

	width  int
	height int
}

// NewAccordionModel creates an accordion with every entry collapsed.
func NewAccordionModel(items []AccordionItem) AccordionModel {
	return AccordionModel{
		items: items,
		open:  -1,
	}
}

// SetSize updates the available content area.
func (m AccordionModel) SetSize(width, height int) AccordionModel {
	m.width = width
	m.height = height
	return m
}

// Focus returns the focused entry index.
func (m AccordionModel) Focus() int {
	return m.focus
}

// Open returns the expanded entry index, or -1.
func (m AccordionModel) Open() int {
	return m.open
}

// Update handles key input.
func (m AccordionModel) Update(msg tea.Msg) (AccordionModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.focus < len(m.items)-1 {
			m.focus++
		}
	case "k", "up":
		if m.focus > 0 {
			m.focus--
		}
	case "enter", " ":
		if m.open == m.focus {
			m.open = -1
		} else {
			m.open = m.focus
		}
	case "esc":
		m.open = -1
	}
	return m, nil
}

// View renders the accordion.
func (m AccordionModel) View() string {
	if len(m.items) == 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C77DFF"))
	focusStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9D4EDD"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var b strings.Builder
	for i, item := range m.items {
		marker := "▸"
		if i == m.open {
			marker = "▾"
		}

		style := titleStyle
		if i == m.focus {
			style = focusStyle
		}
		line := "  " + style.Render(marker+" "+item.Title)
		if item.Subtitle != "" {
			line += dimStyle.Render("  " + item.Subtitle)
		}
		b.WriteString(line)
		b.WriteString("\n")

		if i == m.open {
			for _, body := range item.Body {
				b.WriteString(dimStyle.Render("      " + body))
				b.WriteString("\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
