// Package export renders sweep series to SVG line charts.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/springlab/internal/sweep"
)

var strokePalette = []string{
	"#ff4444", "#00ff88", "#ffaa00", "#4488ff",
	"#ff44ff", "#00ffff", "#ff8800", "#ffffff",
}

// SeriesToSVG draws the series as polylines on shared axes. All series
// are scaled to the combined data bounds with 10% padding.
func SeriesToSVG(series []sweep.Series, width, height int) string {
	var points int
	for _, s := range series {
		points += len(s.Points)
	}
	if points < 2 {
		return ""
	}

	minX, maxX, minY, maxY := bounds(series)

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for si, s := range series {
		if len(s.Points) < 2 {
			continue
		}
		stroke := strokePalette[si%len(strokePalette)]

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
		for i, p := range s.Points {
			x := (p.X - minX) / rangeX * float64(width)
			y := float64(height) - (p.Y-minY)/rangeY*float64(height)

			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		if s.Label != "" {
			sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, 16+si*16, stroke, s.Label))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func bounds(series []sweep.Series) (minX, maxX, minY, maxY float64) {
	first := true
	for _, s := range series {
		for _, p := range s.Points {
			if first {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				first = false
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	return minX, maxX, minY, maxY
}
