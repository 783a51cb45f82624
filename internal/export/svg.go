package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/viz"
)

// StepToSVG draws s as a bar chart, one bar per element, coloured by the
// same roles the terminal view uses.
func StepToSVG(s algo.Step, theme viz.Theme, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Canvas))

	n := len(s.Array)
	if n > 0 {
		top := 1
		for _, v := range s.Array {
			if v > top {
				top = v
			}
		}
		roles := viz.Roles(s)
		barW := float64(width) / float64(n)
		gap := barW * 0.1
		for i, v := range s.Array {
			h := float64(v) / float64(top) * float64(height-4)
			x := float64(i)*barW + gap/2
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, float64(height)-h, barW-gap, h, theme.Color(roles[i])))
		}
	}

	sb.WriteString(fmt.Sprintf(`<text x="6" y="16" font-family="monospace" font-size="12" fill="%s">%s</text>
`, theme.Text, s.Kind))
	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot.
// roles, when it has one entry per cell column, colours the dots.
func CanvasToSVG(canvas *viz.Canvas, roles []viz.Role, theme viz.Theme, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.PixelWidth()) * scale
	height := float64(canvas.PixelHeight()) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Canvas))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			fill := theme.Bar
			if len(roles) == canvas.Width {
				fill = theme.Color(roles[col])
			}

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill))
					}
				}
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
