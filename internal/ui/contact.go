package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/termfolio/internal/content"
)

// ContactModel shows the outbound links and the FAQ accordion.
type ContactModel struct {
	contact content.Contact
	faq     AccordionModel

	width  int
	height int
}

// NewContactModel creates the contact view.
func NewContactModel(contact content.Contact, faq []content.FAQItem) ContactModel {
	return ContactModel{
		contact: contact,
		faq:     NewAccordionModel(faqItems(faq)),
	}
}

// SetSize updates the available content area.
func (m ContactModel) SetSize(width, height int) ContactModel {
	m.width = width
	m.height = height
	m.faq = m.faq.SetSize(width, height)
	return m
}

// Update forwards key input to the FAQ accordion.
func (m ContactModel) Update(msg tea.Msg) (ContactModel, tea.Cmd) {
	var cmd tea.Cmd
	m.faq, cmd = m.faq.Update(msg)
	return m, cmd
}

// View renders the links block followed by the FAQ.
func (m ContactModel) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#C77DFF"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var b strings.Builder
	writeLink := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString("  " + labelStyle.Render(label) + "  " + valueStyle.Render(value))
		b.WriteString("\n")
	}
	writeLink("email  ", m.contact.Email)
	writeLink("github ", m.contact.GitHub)
	writeLink("website", m.contact.Website)

	if len(m.faq.items) > 0 {
		b.WriteString("\n" + dimStyle.Render("  faq") + "\n\n")
		b.WriteString(m.faq.View())
	}
	return strings.TrimRight(b.String(), "\n")
}
