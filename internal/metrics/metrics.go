package metrics

import (
	"math"

	"github.com/san-kum/metaballs/internal/field"
	"github.com/san-kum/metaballs/internal/raster"
)

// Coverage is the mean fraction of grid cells on the contour.
type Coverage struct {
	name    string
	total   float64
	samples int
	last    float64
}

func NewCoverage() *Coverage {
	return &Coverage{name: "coverage"}
}

func (c *Coverage) Name() string { return c.name }

func (c *Coverage) OnFrame(frame int, balls field.Balls, grid *raster.Grid) {
	if len(grid.Cells) == 0 {
		return
	}
	c.last = float64(grid.Drawn()) / float64(len(grid.Cells))
	c.total += c.last
	c.samples++
}

func (c *Coverage) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.total / float64(c.samples)
}

// Last is the coverage of the most recent frame.
func (c *Coverage) Last() float64 { return c.last }

func (c *Coverage) Reset() {
	c.total = 0
	c.samples = 0
	c.last = 0
}

// Kinetic tracks the mean ball speed. Reflection is elastic, so the value
// stays at its first-frame level for the whole run.
type Kinetic struct {
	name    string
	initial float64
	current float64
	samples int
}

func NewKinetic() *Kinetic {
	return &Kinetic{name: "kinetic"}
}

func (k *Kinetic) Name() string { return k.name }

func (k *Kinetic) OnFrame(frame int, balls field.Balls, grid *raster.Grid) {
	if len(balls) == 0 {
		return
	}
	sum := 0.0
	for i := range balls {
		sum += balls[i].Speed()
	}
	k.current = sum / float64(len(balls))
	if k.samples == 0 {
		k.initial = k.current
	}
	k.samples++
}

func (k *Kinetic) Value() float64 { return k.current }

// Drift is the relative change in mean speed since the first frame.
func (k *Kinetic) Drift() float64 {
	if k.initial == 0 {
		return 0
	}
	return math.Abs(k.current-k.initial) / k.initial
}

func (k *Kinetic) Reset() {
	k.initial = 0
	k.current = 0
	k.samples = 0
}

// Overshoot records the furthest any ball extent has crossed a wall.
type Overshoot struct {
	name     string
	maxDepth float64
}

func NewOvershoot() *Overshoot {
	return &Overshoot{name: "overshoot"}
}

func (o *Overshoot) Name() string { return o.name }

func (o *Overshoot) OnFrame(frame int, balls field.Balls, grid *raster.Grid) {
	w, h := float64(grid.Width), float64(grid.Height)
	for i := range balls {
		o.maxDepth = math.Max(o.maxDepth, balls[i].Overshoot(w, h))
	}
}

func (o *Overshoot) Value() float64 { return o.maxDepth }

func (o *Overshoot) Reset() { o.maxDepth = 0 }

// Series records one metric value per frame, for plotting.
type Series struct {
	Name   string
	Values []float64
	fn     func(balls field.Balls, grid *raster.Grid) float64
}

func NewSeries(name string, capacity int, fn func(field.Balls, *raster.Grid) float64) *Series {
	return &Series{Name: name, Values: make([]float64, 0, capacity), fn: fn}
}

func (s *Series) OnFrame(frame int, balls field.Balls, grid *raster.Grid) {
	s.Values = append(s.Values, s.fn(balls, grid))
}

// FieldAt samples the aggregate field at a fixed point each frame.
func FieldAt(px, py float64) func(field.Balls, *raster.Grid) float64 {
	return func(balls field.Balls, _ *raster.Grid) float64 {
		return balls.At(px, py)
	}
}

// DrawnCells counts contour cells each frame.
func DrawnCells(_ field.Balls, grid *raster.Grid) float64 {
	return float64(grid.Drawn())
}
