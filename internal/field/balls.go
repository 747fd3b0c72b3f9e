package field

// Balls is an ordered set of balls. Order does not affect the field.
type Balls []Ball

// At sums every ball's contribution at (px, py).
func (bs Balls) At(px, py float64) float64 {
	total := 0.0
	for i := range bs {
		total += bs[i].Contribution(px, py)
	}
	return total
}

// Advance moves every ball one tick inside a width x height box.
func (bs Balls) Advance(width, height int) {
	w, h := float64(width), float64(height)
	for i := range bs {
		bs[i].Advance(w, h)
	}
}

func (bs Balls) Clone() Balls {
	c := make(Balls, len(bs))
	copy(c, bs)
	return c
}
