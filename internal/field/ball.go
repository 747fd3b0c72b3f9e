package field

import "math"

type Ball struct {
	Radius float64
	X, Y   float64
	VX, VY float64
}

// Contribution is radius / |p - center|. At the center itself the result is
// +Inf, which never compares below a threshold.
func (b *Ball) Contribution(px, py float64) float64 {
	d := math.Hypot(px-b.X, py-b.Y)
	if d == 0 {
		return math.Inf(1)
	}
	return b.Radius / d
}

// Advance reflects each velocity component whose wall the ball touches while
// moving toward it, then moves the ball by one step.
func (b *Ball) Advance(width, height float64) {
	b.VX = reflect(b.X, b.VX, b.Radius, width)
	b.VY = reflect(b.Y, b.VY, b.Radius, height)
	b.X += b.VX
	b.Y += b.VY
}

func reflect(pos, vel, radius, extent float64) float64 {
	if (pos-radius <= 0 && vel < 0) || (pos+radius >= extent && vel > 0) {
		return -vel
	}
	return vel
}

// Speed is the magnitude of the velocity vector.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Overshoot reports how far the ball's extent lies past the nearest wall
// on either axis; zero when fully inside.
func (b *Ball) Overshoot(width, height float64) float64 {
	return math.Max(
		math.Max(positive(-(b.X-b.Radius)), positive(b.X+b.Radius-width)),
		math.Max(positive(-(b.Y-b.Radius)), positive(b.Y+b.Radius-height)),
	)
}

func positive(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
