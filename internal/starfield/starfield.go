// Package starfield implements the animated star backdrop: a pseudo-random
// field of twinkling stars sized to the terminal, regenerated wholesale on
// every resize and repainted once per frame.
package starfield

import (
	"math"
	"math/rand"
	"time"
)

// Star is a single particle in the field. Stars carry no identity across a
// resize: the whole collection is replaced, never patched.
type Star struct {
	X, Y    float64 // position within [0, width) x [0, height)
	Radius  float64 // [0.5, 0.55)
	Opacity float64 // [0.5, 1.0) at generation, mutated every frame while twinkling

	Twinkles     bool
	TwinkleSpeed float64 // [MinTwinkleSpeed, MaxTwinkleSpeed) when Twinkles
}

// Config holds the field parameters. All values are compile-time defaults;
// only the frame rate is adjustable at runtime.
type Config struct {
	Density            float64 // stars generated per cell of surface area
	MinTwinkleSpeed    float64
	MaxTwinkleSpeed    float64
	TwinkleProbability float64
	TwinkleAll         bool // every star twinkles regardless of probability
}

// DefaultConfig returns the field parameters tuned for terminal cells.
// A cell is far larger than a pixel, so the density is correspondingly
// higher than a pixel-canvas field would use.
func DefaultConfig() Config {
	return Config{
		Density:            0.02,
		MinTwinkleSpeed:    0.8,
		MaxTwinkleSpeed:    2.4,
		TwinkleProbability: 0.35,
	}
}

// Generate produces a fresh star collection for a surface of the given
// size. The count is floor(width * height * Density); positions, radii and
// opacities are drawn uniformly from their ranges. Either dimension being
// zero yields an empty collection.
func Generate(cfg Config, rng *rand.Rand, width, height int) []Star {
	if width <= 0 || height <= 0 {
		return nil
	}

	count := int(float64(width*height) * cfg.Density)
	stars := make([]Star, count)
	for i := range stars {
		s := Star{
			X:       rng.Float64() * float64(width),
			Y:       rng.Float64() * float64(height),
			Radius:  0.5 + rng.Float64()*0.05,
			Opacity: 0.5 + rng.Float64()*0.5,
		}
		if cfg.TwinkleAll || rng.Float64() < cfg.TwinkleProbability {
			s.Twinkles = true
			s.TwinkleSpeed = cfg.MinTwinkleSpeed +
				rng.Float64()*(cfg.MaxTwinkleSpeed-cfg.MinTwinkleSpeed)
		}
		stars[i] = s
	}
	return stars
}

// twinkleOpacity returns the opacity of a twinkling star at the given
// instant: 0.5 + 0.5*|sin(seconds/speed)|, always within [0.5, 1.0].
func twinkleOpacity(now time.Time, speed float64) float64 {
	seconds := float64(now.UnixMilli()) / 1000.0
	return 0.5 + 0.5*math.Abs(math.Sin(seconds/speed))
}
