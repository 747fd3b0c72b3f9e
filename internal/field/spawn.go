package field

import (
	"math"
	"math/rand"

	"github.com/san-kum/metaballs/internal/config"
)

// Spawn creates cfg.Balls balls with radius, position and per-axis velocity
// drawn uniformly from the configured ranges. The radius is capped at half the
// smaller grid dimension so every ball starts fully inside the grid.
func Spawn(rng *rand.Rand, cfg *config.Config) Balls {
	w, h := float64(cfg.Width), float64(cfg.Height)
	maxR := math.Min(w, h) / 2

	balls := make(Balls, 0, cfg.Balls)
	for i := 0; i < cfg.Balls; i++ {
		r := uniform(rng, cfg.Radius)
		if r > maxR {
			r = maxR
		}
		balls = append(balls, Ball{
			Radius: r,
			X:      rng.Float64()*(w-2*r) + r,
			Y:      rng.Float64()*(h-2*r) + r,
			VX:     uniform(rng, cfg.Speed),
			VY:     uniform(rng, cfg.Speed),
		})
	}
	return balls
}

func uniform(rng *rand.Rand, r config.Range) float64 {
	return rng.Float64()*r.Span() + r.Min
}
