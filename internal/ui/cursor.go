package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// The follower is springier than the scroller so it visibly trails the
// focused row before catching up.
const (
	followFrequency = 8.0
	followDamping   = 0.7
)

// CursorFollower is a gutter marker that trails the focused row on a
// spring, rather than snapping to it.
type CursorFollower struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// NewCursorFollower creates a follower parked at row zero.
func NewCursorFollower() CursorFollower {
	return CursorFollower{
		spring: harmonica.NewSpring(harmonica.FPS(animFPS), followFrequency, followDamping),
	}
}

// Follow sets the row the marker should trail toward.
func (c CursorFollower) Follow(row int) CursorFollower {
	c.target = float64(row)
	return c
}

// Step advances the spring one animation frame.
func (c CursorFollower) Step() CursorFollower {
	c.pos, c.vel = c.spring.Update(c.pos, c.vel, c.target)
	if math.Abs(c.pos-c.target) < 0.05 && math.Abs(c.vel) < 0.05 {
		c.pos = c.target
		c.vel = 0
	}
	return c
}

// Row returns the marker's current row.
func (c CursorFollower) Row() int {
	return int(math.Round(c.pos))
}
