package ui

import "testing"

func TestCursorFollower_ConvergesToRow(t *testing.T) {
	c := NewCursorFollower().Follow(12)
	for i := 0; i < 300; i++ {
		c = c.Step()
	}
	if got := c.Row(); got != 12 {
		t.Errorf("Row() = %d, want 12", got)
	}
}

func TestCursorFollower_TrailsTarget(t *testing.T) {
	// One step is not enough to reach a distant row: the marker lags.
	c := NewCursorFollower().Follow(20)
	c = c.Step()
	if got := c.Row(); got >= 20 {
		t.Errorf("Row() = %d after one step, want < 20", got)
	}
}

func TestCursorFollower_RetargetMidFlight(t *testing.T) {
	c := NewCursorFollower().Follow(20)
	for i := 0; i < 5; i++ {
		c = c.Step()
	}
	c = c.Follow(0)
	for i := 0; i < 300; i++ {
		c = c.Step()
	}
	if got := c.Row(); got != 0 {
		t.Errorf("Row() = %d after retarget, want 0", got)
	}
}
