package export

import (
	"fmt"
	"strings"
)

const (
	colorUp   = "#00ccff"
	colorDown = "#1a1a2e"
)

// LatticeSVG draws a plane of spins as square cells of side scale. Cells
// outside the populated region are left as background.
func LatticeSVG(rows [][]int8, scale float64) string {
	if len(rows) == 0 || scale <= 0 {
		return ""
	}

	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	width := float64(w) * scale
	height := float64(len(rows)) * scale

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for y, r := range rows {
		for x, s := range r {
			var fill string
			switch {
			case s > 0:
				fill = colorUp
			case s < 0:
				fill = colorDown
			default:
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(x)*scale, float64(y)*scale, scale, scale, fill))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesSVG plots values against their index as a single path.
func SeriesSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
