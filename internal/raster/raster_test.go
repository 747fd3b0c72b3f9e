package raster

import (
	"strings"
	"testing"

	"github.com/san-kum/metaballs/internal/field"
)

func TestDraw_AllCombinations(t *testing.T) {
	drawn, blank := 0, 0
	for m := uint8(0); m < 16; m++ {
		c := FromMask(m)
		if c.Mask() != m {
			t.Errorf("mask %04b round-tripped to %04b", m, c.Mask())
		}

		want := c.Count() >= 1 && c.Count() <= 3
		if c.Draw() != want {
			t.Errorf("corners %+v (count %d): Draw() = %v, want %v", c, c.Count(), c.Draw(), want)
		}
		if c.Draw() {
			drawn++
		} else {
			blank++
		}
	}

	// only all-below and all-above are blank
	if drawn != 14 || blank != 2 {
		t.Errorf("expected 14 drawn / 2 blank, got %d / %d", drawn, blank)
	}
}

func TestDraw_Extremes(t *testing.T) {
	tests := []struct {
		name string
		c    Corners
		want bool
	}{
		{"none", Corners{}, false},
		{"all", Corners{true, true, true, true}, false},
		{"one", Corners{BottomRight: true}, true},
		{"three", Corners{TopLeft: true, TopRight: true, BottomLeft: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Draw(); got != tt.want {
				t.Errorf("Draw() = %v, want %v", got, tt.want)
			}
		})
	}
}

// pointField is below threshold everywhere except at the listed points.
type pointField map[[2]float64]bool

func (p pointField) At(px, py float64) float64 {
	if p[[2]float64{px, py}] {
		return 2
	}
	return 0
}

func TestSample_CornerMapping(t *testing.T) {
	g := NewGrid(3, 2)
	s := NewSampler(g, 1.0)

	// only the integer point (1, 1) is above the threshold
	s.Sample(pointField{{1, 1}: true})

	tests := []struct {
		x, y int
		want Corners
	}{
		// cell (0,0): TL=(0,1) TR=(1,1) BL=(0,0) BR=(1,0)
		{0, 0, Corners{TopLeft: true, TopRight: false, BottomLeft: true, BottomRight: true}},
		{1, 0, Corners{TopLeft: false, TopRight: true, BottomLeft: true, BottomRight: true}},
		{2, 0, Corners{true, true, true, true}},
		// cell (0,1): BR=(1,1)
		{0, 1, Corners{TopLeft: true, TopRight: true, BottomLeft: true, BottomRight: false}},
		{1, 1, Corners{TopLeft: true, TopRight: true, BottomLeft: false, BottomRight: true}},
		{2, 1, Corners{true, true, true, true}},
	}

	for _, tt := range tests {
		if got := g.At(tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d,%d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}

	rows := s.Rows("#")
	if rows[0] != "## " || rows[1] != "## " {
		t.Errorf("unexpected rows %q", rows)
	}
}

func TestSample_SingleBall(t *testing.T) {
	balls := field.Balls{{Radius: 2, X: 5, Y: 2}}
	s := NewSampler(NewGrid(10, 5), 1.0)

	s.Sample(balls)

	expected := []string{
		"...####...",
		"..##..##..",
		"..##..##..",
		"...####...",
		"....##....",
	}
	got := s.Rows("#")
	for y := range expected {
		if strings.ReplaceAll(got[y], " ", ".") != expected[y] {
			t.Errorf("row %d = %q, want %q", y, got[y], expected[y])
		}
	}

	if balls[0] != (field.Ball{Radius: 2, X: 5, Y: 2}) {
		t.Errorf("sampling mutated the ball: %+v", balls[0])
	}
}

func TestSample_OverwritesPreviousFrame(t *testing.T) {
	s := NewSampler(NewGrid(10, 5), 1.0)
	s.Sample(field.Balls{{Radius: 2, X: 5, Y: 2}})
	if s.Grid().Drawn() == 0 {
		t.Fatal("expected a contour on the first frame")
	}

	s.Sample(field.Balls{})
	for y, row := range s.Rows("#") {
		if strings.TrimSpace(row) != "" {
			t.Errorf("row %d should be blank after the field vanished, got %q", y, row)
		}
	}
	if s.Coverage() != 0 {
		t.Errorf("expected zero coverage, got %v", s.Coverage())
	}
}

func TestSample_Deterministic(t *testing.T) {
	balls := field.Balls{
		{Radius: 4, X: 12.3, Y: 7.1},
		{Radius: 3, X: 20.5, Y: 9.9},
	}
	a := NewSampler(NewGrid(40, 20), 1.0)
	b := NewSampler(NewGrid(40, 20), 1.0)
	a.Sample(balls)
	b.Sample(field.Balls{balls[1], balls[0]})

	ra, rb := a.Rows("@"), b.Rows("@")
	for y := range ra {
		if ra[y] != rb[y] {
			t.Errorf("row %d differs: %q vs %q", y, ra[y], rb[y])
		}
	}
}

func TestRows_MultibyteGlyph(t *testing.T) {
	s := NewSampler(NewGrid(10, 5), 1.0)
	s.Sample(field.Balls{{Radius: 2, X: 5, Y: 2}})

	row := s.Rows("█")[4]
	if want := "    ██    "; row != want {
		t.Errorf("expected %q, got %q", want, row)
	}
}

func TestCoverage(t *testing.T) {
	s := NewSampler(NewGrid(10, 5), 1.0)
	s.Sample(field.Balls{{Radius: 2, X: 5, Y: 2}})

	// 4 + 4 + 4 + 4 + 2 drawn cells out of 50
	if got := s.Coverage(); got != 18.0/50.0 {
		t.Errorf("expected coverage %v, got %v", 18.0/50.0, got)
	}
}

func TestThreshold(t *testing.T) {
	s := NewSampler(NewGrid(4, 4), 1.0)
	s.SetThreshold(0.5)
	if s.Threshold() != 0.5 {
		t.Errorf("expected threshold 0.5, got %v", s.Threshold())
	}
}
