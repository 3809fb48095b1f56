package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/termfolio/internal/content"
)

// Reveal pacing, in animation ticks.
const (
	nameRevealDelay  = 6 // ticks before the first character appears
	nameRevealRate   = 2 // characters per tick
	aboutRevealDelay = 4 // ticks between successive about lines
)

var (
	gradientStart = mustHex("#3B82F6") // blue
	gradientMid   = mustHex("#9D4EDD") // purple
	gradientEnd   = mustHex("#EC4899") // pink
)

// HomeModel renders the hero section over the star backdrop. The name
// reveals character by character, then the about lines follow one by one.
type HomeModel struct {
	hero  content.Hero
	about []string

	width  int
	height int

	animTick    int
	revealStart int // tick the reveal began at, -1 before boot finishes
}

// NewHomeModel creates the home view.
func NewHomeModel(hero content.Hero, about []string) HomeModel {
	return HomeModel{
		hero:        hero,
		about:       about,
		revealStart: -1,
	}
}

// SetSize updates the available content area.
func (m HomeModel) SetSize(width, height int) HomeModel {
	m.width = width
	m.height = height
	return m
}

// SetAnimTick advances the reveal clock.
func (m HomeModel) SetAnimTick(tick int) HomeModel {
	m.animTick = tick
	return m
}

// StartReveal begins the staggered entrance at the given tick.
func (m HomeModel) StartReveal(tick int) HomeModel {
	if m.revealStart < 0 {
		m.revealStart = tick
	}
	return m
}

// revealedChars returns how many name characters are visible.
func (m HomeModel) revealedChars() int {
	if m.revealStart < 0 {
		return 0
	}
	elapsed := m.animTick - m.revealStart - nameRevealDelay
	if elapsed < 0 {
		return 0
	}
	n := elapsed * nameRevealRate
	runes := len([]rune(m.hero.Name))
	if n > runes {
		n = runes
	}
	return n
}

// revealedAboutLines returns how many about lines are visible.
func (m HomeModel) revealedAboutLines() int {
	if m.revealStart < 0 {
		return 0
	}
	nameTicks := nameRevealDelay + (len([]rune(m.hero.Name))+nameRevealRate-1)/nameRevealRate
	elapsed := m.animTick - m.revealStart - nameTicks
	if elapsed < 0 {
		return 0
	}
	n := elapsed/aboutRevealDelay + 1
	if n > len(m.about) {
		n = len(m.about)
	}
	return n
}

// renderName paints the revealed prefix of the name with a blue→purple→pink
// gradient. The newest character renders white, like a bright reveal edge.
func (m HomeModel) renderName() string {
	runes := []rune(m.hero.Name)
	shown := m.revealedChars()
	if shown == 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < shown; i++ {
		var c colorful.Color
		t := float64(i) / float64(max(len(runes)-1, 1))
		if t < 0.5 {
			c = gradientStart.BlendLab(gradientMid, t*2)
		} else {
			c = gradientMid.BlendLab(gradientEnd, (t-0.5)*2)
		}
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex()))
		if i == shown-1 && shown < len(runes) {
			style = style.Foreground(lipgloss.Color("#FFFFFF"))
		}
		b.WriteString(style.Render(string(runes[i])))
	}
	return b.String()
}

// View composes the hero block over the backdrop. backdrop may be empty, in
// which case the block floats over blank lines.
func (m HomeModel) View(backdrop string) string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	taglineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#C77DFF")).Italic(true)

	var hero []string
	hero = append(hero, m.renderName())
	if m.hero.Tagline != "" {
		hero = append(hero, taglineStyle.Render(m.hero.Tagline))
	}
	if m.hero.Location != "" {
		hero = append(hero, dimStyle.Render("⌖ "+m.hero.Location))
	}
	hero = append(hero, "")
	for i := 0; i < m.revealedAboutLines(); i++ {
		hero = append(hero, dimStyle.Render(m.about[i]))
	}

	lines := m.backdropLines(backdrop)
	top := (m.height - len(hero)) / 2
	if top < 0 {
		top = 0
	}
	for i, h := range hero {
		row := top + i
		if row >= len(lines) {
			break
		}
		lines[row] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, h)
	}
	return strings.Join(lines, "\n")
}

// backdropLines returns exactly height lines, padding or truncating the
// rendered star frame as needed.
func (m HomeModel) backdropLines(backdrop string) []string {
	lines := make([]string, m.height)
	if backdrop == "" {
		return lines
	}
	src := strings.Split(backdrop, "\n")
	for i := 0; i < m.height && i < len(src); i++ {
		lines[i] = src[i]
	}
	return lines
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
