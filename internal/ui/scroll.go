package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring tuning for scrolling. Overdamped enough that the view glides to
// its target without overshooting past the clamp bounds.
const (
	scrollFrequency = 6.0
	scrollDamping   = 0.9
)

// SpringScroller smooths scroll offsets with a spring integrator instead of
// jumping line by line. The target moves immediately, the rendered offset
// chases it one Step per animation frame.
type SpringScroller struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	max    float64
}

// NewSpringScroller creates a scroller at offset zero.
func NewSpringScroller() SpringScroller {
	return SpringScroller{
		spring: harmonica.NewSpring(harmonica.FPS(animFPS), scrollFrequency, scrollDamping),
	}
}

// SetMax clamps the scrollable range to [0, max] lines.
func (s SpringScroller) SetMax(max int) SpringScroller {
	if max < 0 {
		max = 0
	}
	s.max = float64(max)
	if s.target > s.max {
		s.target = s.max
	}
	if s.pos > s.max {
		s.pos = s.max
	}
	return s
}

// ScrollBy moves the target by delta lines, clamped to the valid range.
func (s SpringScroller) ScrollBy(delta int) SpringScroller {
	return s.ScrollTo(int(math.Round(s.target)) + delta)
}

// ScrollTo moves the target to an absolute line, clamped to the valid range.
func (s SpringScroller) ScrollTo(line int) SpringScroller {
	t := float64(line)
	if t < 0 {
		t = 0
	}
	if t > s.max {
		t = s.max
	}
	s.target = t
	return s
}

// Step advances the spring one animation frame.
func (s SpringScroller) Step() SpringScroller {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if s.Settled() {
		s.pos = s.target
		s.vel = 0
	}
	return s
}

// Offset returns the current scroll offset in whole lines.
func (s SpringScroller) Offset() int {
	return int(math.Round(s.pos))
}

// Target returns the offset the spring is heading for.
func (s SpringScroller) Target() int {
	return int(math.Round(s.target))
}

// Settled reports whether the spring has effectively reached its target.
func (s SpringScroller) Settled() bool {
	return math.Abs(s.pos-s.target) < 0.05 && math.Abs(s.vel) < 0.05
}
