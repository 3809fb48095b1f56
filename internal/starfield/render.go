package starfield

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Star glyphs by opacity bucket, dimmest to brightest.
const (
	glyphStarDim    = '·'
	glyphStarMedium = '✧'
	glyphStarBright = '✦'
)

// Opacity bucket thresholds.
const (
	opacityBright = 0.85
	opacityMedium = 0.65
)

// Color ramp endpoints: dim slate blue at opacity 0.5, white at 1.0.
var (
	rampDim    = colorful.Color{R: 0.28, G: 0.30, B: 0.42}
	rampBright = colorful.Color{R: 1.0, G: 1.0, B: 1.0}
)

func starGlyph(opacity float64) rune {
	switch {
	case opacity >= opacityBright:
		return glyphStarBright
	case opacity >= opacityMedium:
		return glyphStarMedium
	default:
		return glyphStarDim
	}
}

// starColor maps an opacity in [0.5, 1.0] onto the ramp. Blending happens
// in Lab space so the perceived brightness tracks the opacity linearly.
func starColor(opacity float64) string {
	t := (opacity - 0.5) / 0.5
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return rampDim.BlendLab(rampBright, t).Clamped().Hex()
}

// renderFrame paints the stars onto a fresh rune grid and returns the
// styled frame, height lines of width cells each. Stars round to a single
// cell; glyph and color follow the star's current opacity. Later stars win
// a contested cell.
func renderFrame(stars []Star, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	glyphs := make([][]rune, height)
	colors := make([][]string, height)
	for y := 0; y < height; y++ {
		glyphs[y] = make([]rune, width)
		colors[y] = make([]string, width)
		for x := 0; x < width; x++ {
			glyphs[y][x] = ' '
		}
	}

	for _, s := range stars {
		x := int(s.X)
		y := int(s.Y)
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		glyphs[y][x] = starGlyph(s.Opacity)
		colors[y][x] = starColor(s.Opacity)
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		run := -1 // start of a pending unstyled run
		for x := 0; x < width; x++ {
			if glyphs[y][x] == ' ' {
				if run < 0 {
					run = x
				}
				continue
			}
			if run >= 0 {
				b.WriteString(strings.Repeat(" ", x-run))
				run = -1
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[y][x]))
			b.WriteString(style.Render(string(glyphs[y][x])))
		}
		if run >= 0 {
			b.WriteString(strings.Repeat(" ", width-run))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
