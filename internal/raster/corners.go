package raster

// Corners records, for one cell, which corners sample the field strictly
// below the threshold.
type Corners struct {
	TopLeft     bool
	TopRight    bool
	BottomLeft  bool
	BottomRight bool
}

// Mask packs the corners into 4 bits: TL=1, TR=2, BL=4, BR=8.
func (c Corners) Mask() uint8 {
	var m uint8
	if c.TopLeft {
		m |= 1
	}
	if c.TopRight {
		m |= 2
	}
	if c.BottomLeft {
		m |= 4
	}
	if c.BottomRight {
		m |= 8
	}
	return m
}

func FromMask(m uint8) Corners {
	return Corners{
		TopLeft:     m&1 != 0,
		TopRight:    m&2 != 0,
		BottomLeft:  m&4 != 0,
		BottomRight: m&8 != 0,
	}
}

func (c Corners) Count() int {
	n := 0
	for _, v := range [4]bool{c.TopLeft, c.TopRight, c.BottomLeft, c.BottomRight} {
		if v {
			n++
		}
	}
	return n
}

// Draw reports whether the cell lies on the contour: some corners are
// outside every blob and some are not.
func (c Corners) Draw() bool {
	some := c.TopLeft || c.TopRight || c.BottomLeft || c.BottomRight
	every := c.TopLeft && c.TopRight && c.BottomLeft && c.BottomRight
	return some && !every
}
