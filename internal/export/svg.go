package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/metaballs/internal/field"
	"github.com/san-kum/metaballs/internal/raster"
)

// GridToSVG draws every contour cell as a filled square of side scale.
func GridToSVG(grid *raster.Grid, scale float64) string {
	if grid == nil || grid.Width == 0 || grid.Height == 0 {
		return ""
	}

	width := float64(grid.Width) * scale
	height := float64(grid.Height) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ffff">
`, width, height, width, height))

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if !grid.At(x, y).Draw() {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(x)*scale, float64(y)*scale, scale, scale))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// BallsToSVG outlines each ball at its radius, on the same scale as GridToSVG.
func BallsToSVG(balls field.Balls, width, height int, scale float64, strokeColor string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f">
<g fill="none" stroke="%s" stroke-width="1.5">
`, float64(width)*scale, float64(height)*scale, strokeColor))

	for _, b := range balls {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, b.X*scale, b.Y*scale, b.Radius*scale))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
