package raster

import "strings"

// Field is anything that yields a scalar value at a point.
type Field interface {
	At(px, py float64) float64
}

// Grid is a row-major Width x Height buffer of corner records, reused
// across frames.
type Grid struct {
	Width, Height int
	Cells         []Corners
}

func NewGrid(w, h int) *Grid {
	return &Grid{Width: w, Height: h, Cells: make([]Corners, w*h)}
}

func (g *Grid) At(x, y int) Corners {
	return g.Cells[y*g.Width+x]
}

// Drawn counts cells on the contour.
func (g *Grid) Drawn() int {
	n := 0
	for _, c := range g.Cells {
		if c.Draw() {
			n++
		}
	}
	return n
}

// Sampler classifies every cell of a grid against a fixed threshold.
type Sampler struct {
	grid      *Grid
	threshold float64

	// corner rows are shared between vertically adjacent cells
	below, above []bool
	row          strings.Builder
}

func NewSampler(grid *Grid, threshold float64) *Sampler {
	return &Sampler{
		grid:      grid,
		threshold: threshold,
		below:     make([]bool, grid.Width+1),
		above:     make([]bool, grid.Width+1),
	}
}

func (s *Sampler) Grid() *Grid            { return s.grid }
func (s *Sampler) Threshold() float64     { return s.threshold }
func (s *Sampler) SetThreshold(t float64) { s.threshold = t }

// Sample overwrites every cell from the current field. Cell (x, y) reads its
// corners at integer points: TL (x, y+1), TR (x+1, y+1), BL (x, y), BR (x+1, y).
func (s *Sampler) Sample(f Field) {
	g := s.grid
	below, above := s.below, s.above
	s.sampleRow(f, 0, below)

	for y := 0; y < g.Height; y++ {
		s.sampleRow(f, y+1, above)
		row := g.Cells[y*g.Width : (y+1)*g.Width]
		for x := range row {
			row[x] = Corners{
				TopLeft:     above[x],
				TopRight:    above[x+1],
				BottomLeft:  below[x],
				BottomRight: below[x+1],
			}
		}
		below, above = above, below
	}
}

func (s *Sampler) sampleRow(f Field, y int, out []bool) {
	py := float64(y)
	for x := range out {
		out[x] = f.At(float64(x), py) < s.threshold
	}
}

// Rows renders the last sample, one string per grid row from y = 0 down.
func (s *Sampler) Rows(glyph string) []string {
	rows := make([]string, s.grid.Height)
	for y := range rows {
		rows[y] = s.Row(y, glyph)
	}
	return rows
}

// Row renders a single grid row.
func (s *Sampler) Row(y int, glyph string) string {
	g := s.grid
	s.row.Reset()
	s.row.Grow(g.Width * len(glyph))
	for _, c := range g.Cells[y*g.Width : (y+1)*g.Width] {
		if c.Draw() {
			s.row.WriteString(glyph)
		} else {
			s.row.WriteByte(' ')
		}
	}
	return s.row.String()
}

// Coverage is the fraction of cells drawn in the last sample.
func (s *Sampler) Coverage() float64 {
	if len(s.grid.Cells) == 0 {
		return 0
	}
	return float64(s.grid.Drawn()) / float64(len(s.grid.Cells))
}
