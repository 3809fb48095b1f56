// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/termfolio/internal/content"
	"github.com/litescript/termfolio/internal/starfield"
	"github.com/litescript/termfolio/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewHome ViewMode = iota
	ViewProjects
	ViewExperience
	ViewContact

	viewCount = 4
)

func (v ViewMode) String() string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewProjects:
		return "Projects"
	case ViewExperience:
		return "Experience"
	case ViewContact:
		return "Contact"
	default:
		return "Unknown"
	}
}

// Msg types for Bubble Tea
type (
	// TickMsg drives the footer clock.
	TickMsg time.Time

	// AnimTickMsg drives springs, reveals and shimmer effects.
	AnimTickMsg time.Time

	// StarFrameMsg signals a freshly rendered star field frame.
	StarFrameMsg struct{}
)

const (
	tickRate      = 500 * time.Millisecond
	animFrameRate = 33 * time.Millisecond
	animFPS       = 30 // 1/animFrameRate, shared with the spring integrators

	// Below this width the tab bar collapses to a hamburger menu.
	navCollapseWidth = 70

	// Header is brand + nav + blank, footer is blank + hints.
	headerHeight = 3
	footerHeight = 2
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	portfolio content.Portfolio
	stars     *starfield.Animator // nil when the backdrop is disabled

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	booted   bool // preloader finished
	navOpen  bool // collapsed-nav menu is expanded
	navFocus ViewMode
	animTick int
	now      time.Time // footer clock, zero until the first tick

	// Sub-models
	preloader  PreloaderModel
	home       HomeModel
	projects   ProjectsModel
	experience AccordionModel
	contact    ContactModel
}

// New creates the root UI model. stars may be nil, in which case the
// backdrop is simply absent.
func New(p content.Portfolio, stars *starfield.Animator) Model {
	return Model{
		portfolio:  p,
		stars:      stars,
		viewMode:   ViewHome,
		preloader:  NewPreloaderModel(),
		home:       NewHomeModel(p.Hero, p.About),
		projects:   NewProjectsModel(p.Projects),
		experience: NewAccordionModel(experienceItems(p.Experience)),
		contact:    NewContactModel(p.Contact, p.FAQ),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), animTickCmd(), preloadTickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()

		if key == "q" || key == "ctrl+c" {
			return m, tea.Quit
		}

		// Enter, space or esc skips the boot counter.
		if !m.booted {
			if key == "enter" || key == " " || key == "esc" {
				m = m.finishBoot()
			}
			return m, nil
		}

		if m.navOpen {
			return m.updateNavMenu(key), nil
		}

		switch key {
		case "1", "h":
			m.viewMode = ViewHome
		case "2", "p":
			m.viewMode = ViewProjects
		case "3", "e":
			m.viewMode = ViewExperience
		case "4", "c":
			m.viewMode = ViewContact
		case "tab":
			m.viewMode = (m.viewMode + 1) % viewCount
		case "m":
			if m.navCollapsed() {
				m.navOpen = true
				m.navFocus = m.viewMode
			}
		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentHeight := msg.Height - headerHeight - footerHeight
		m.home = m.home.SetSize(msg.Width, contentHeight)
		m.projects = m.projects.SetSize(msg.Width, contentHeight)
		m.experience = m.experience.SetSize(msg.Width, contentHeight)
		m.contact = m.contact.SetSize(msg.Width, contentHeight)

		// The star surface matches the content area. A zero or negative
		// content height is reported as zero: the field stays dormant.
		if m.stars != nil {
			if contentHeight < 0 {
				contentHeight = 0
			}
			m.stars.HandleResize(msg.Width, contentHeight)
		}

	case TickMsg:
		m.now = time.Time(msg)
		cmds = append(cmds, tickCmd())

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++
		m.home = m.home.SetAnimTick(m.animTick)
		m.projects = m.projects.Step(m.animTick)

	case preloadTickMsg:
		if !m.booted {
			m.preloader = m.preloader.Advance()
			if m.preloader.Done() {
				m = m.finishBoot()
			} else {
				cmds = append(cmds, preloadTickCmd())
			}
		}

	case StarFrameMsg:
		// Nothing to do: the message exists to trigger a repaint with the
		// freshly rendered frame.

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m Model) finishBoot() Model {
	m.booted = true
	m.home = m.home.StartReveal(m.animTick)
	return m
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewProjects:
		m.projects, cmd = m.projects.Update(msg)
	case ViewExperience:
		m.experience, cmd = m.experience.Update(msg)
	case ViewContact:
		m.contact, cmd = m.contact.Update(msg)
	}
	return cmd
}

// updateNavMenu handles keys while the collapsed-nav overlay is open.
func (m Model) updateNavMenu(key string) Model {
	switch key {
	case "m", "esc":
		m.navOpen = false
	case "up", "k":
		m.navFocus--
		if m.navFocus < 0 {
			m.navFocus = viewCount - 1
		}
	case "down", "j":
		m.navFocus = (m.navFocus + 1) % viewCount
	case "enter", " ":
		m.viewMode = m.navFocus
		m.navOpen = false
	case "1":
		m.viewMode, m.navOpen = ViewHome, false
	case "2":
		m.viewMode, m.navOpen = ViewProjects, false
	case "3":
		m.viewMode, m.navOpen = ViewExperience, false
	case "4":
		m.viewMode, m.navOpen = ViewContact, false
	}
	return m
}

func (m Model) navCollapsed() bool {
	return m.width < navCollapseWidth
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if !m.booted {
		return m.preloader.View(m.width, m.height)
	}

	if m.navOpen {
		return m.renderNavMenu()
	}

	var body string
	switch m.viewMode {
	case ViewHome:
		backdrop := ""
		if m.stars != nil {
			backdrop = m.stars.Frame()
		}
		body = m.home.View(backdrop)
	case ViewProjects:
		body = m.projects.View()
	case ViewExperience:
		body = m.experience.View()
	case ViewContact:
		body = m.contact.View()
	}

	return m.renderHeader() + "\n" + body + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	brandStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9D4EDD"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	brand := "  " + brandStyle.Render(m.portfolio.Hero.Name)
	if m.portfolio.Hero.Tagline != "" {
		brand += dimStyle.Render(" · " + m.portfolio.Hero.Tagline)
	}

	return brand + "\n" + m.renderNav() + "\n"
}

func (m Model) renderNav() string {
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	if m.navCollapsed() {
		return "  " + activeStyle.Render("≡") + dimStyle.Render(" [m] menu — ") +
			activeStyle.Render(m.viewMode.String())
	}

	tabs := []string{"[1] Home", "[2] Projects", "[3] Experience", "[4] Contact"}
	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

// renderNavMenu is the fullscreen menu shown while the collapsed nav is
// open, the terminal equivalent of a mobile nav overlay.
func (m Model) renderNavMenu() string {
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var b strings.Builder
	b.WriteString(dimStyle.Render("  menu"))
	b.WriteString("\n\n")
	for i := ViewMode(0); i < viewCount; i++ {
		label := fmt.Sprintf("[%d] %s", i+1, i)
		if i == m.navFocus {
			b.WriteString("  " + activeStyle.Render("▶ "+label))
		} else {
			b.WriteString("  " + dimStyle.Render("  "+label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + dimStyle.Render("  j/k: move | enter: select | m: close"))

	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Center, b.String())
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	var help string
	switch m.viewMode {
	case ViewProjects:
		help = "j/k: focus | J/K: scroll | g/G: top/bottom"
	case ViewExperience, ViewContact:
		help = "j/k: focus | enter: expand"
	default:
		help = "tab: switch view"
	}
	if m.navCollapsed() {
		help += " | m: menu"
	}
	help += " | q: quit"

	spinner := starSpinnerFrames[(m.animTick/spinnerSlowdown)%len(starSpinnerFrames)]
	ver := accentStyle.Render(spinner) + dimStyle.Render(" v"+version.Version)

	clock := ""
	if !m.now.IsZero() {
		clock = dimStyle.Render("  |  " + m.now.Format("15:04"))
	}
	return "\n  " + ver + dimStyle.Render("  |  "+help) + clock
}

// starSpinnerFrames is the footer glyph cycle, slowed below the anim tick
// rate so it pulses rather than flickers.
var starSpinnerFrames = []string{"✦", "✧", "·", "✧"}

const spinnerSlowdown = 8

func tickCmd() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(animFrameRate, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// easeOutCubic maps t in [0,1] onto a decelerating curve.
func easeOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(1-t, 3)
}

func experienceItems(items []content.ExperienceItem) []AccordionItem {
	out := make([]AccordionItem, len(items))
	for i, it := range items {
		out[i] = AccordionItem{
			Title:    it.Role,
			Subtitle: fmt.Sprintf("%s · %s", it.Org, it.Period),
			Body:     it.Details,
		}
	}
	return out
}

func faqItems(items []content.FAQItem) []AccordionItem {
	out := make([]AccordionItem, len(items))
	for i, it := range items {
		out[i] = AccordionItem{
			Title: it.Question,
			Body:  []string{it.Answer},
		}
	}
	return out
}
