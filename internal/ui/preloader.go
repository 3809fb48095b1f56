package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Boot counter timing. The counter runs 0→100 on an ease-out curve, so it
// races through the early numbers and settles into the last few.
const (
	preloadTickRate = 40 * time.Millisecond
	preloadTicks    = 45 // ~1.8s boot
	preloadBarWidth = 24
)

// preloadTickMsg drives the boot counter.
type preloadTickMsg time.Time

func preloadTickCmd() tea.Cmd {
	return tea.Tick(preloadTickRate, func(t time.Time) tea.Msg {
		return preloadTickMsg(t)
	})
}

// PreloaderModel is the boot counter shown before the main view.
type PreloaderModel struct {
	tick int
	done bool
}

// NewPreloaderModel creates a counter at zero.
func NewPreloaderModel() PreloaderModel {
	return PreloaderModel{}
}

// Advance steps the counter by one tick.
func (m PreloaderModel) Advance() PreloaderModel {
	if m.done {
		return m
	}
	m.tick++
	if m.tick >= preloadTicks {
		m.done = true
	}
	return m
}

// Done reports whether the counter reached 100.
func (m PreloaderModel) Done() bool {
	return m.done
}

// Percent returns the eased counter value in [0, 100].
func (m PreloaderModel) Percent() int {
	t := float64(m.tick) / float64(preloadTicks)
	return int(easeOutCubic(t)*100 + 0.5)
}

// View renders the counter centered in the given area.
func (m PreloaderModel) View(width, height int) string {
	pctStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D946EF"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	pct := m.Percent()
	filled := pct * preloadBarWidth / 100
	bar := barStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", preloadBarWidth-filled))

	block := pctStyle.Render(fmt.Sprintf("%3d%%", pct)) + "\n\n" +
		bar + "\n\n" +
		dimStyle.Render("enter: skip")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
