package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/algo"
)

var barLevels = []rune(" ▁▂▃▄▅▆▇█")

// RenderBars draws s as vertical bars in a cols x rows cell area. Arrays
// that fit get one block column per element with eighth-cell precision;
// wider arrays fall back to braille, packing two sub-pixel columns per cell.
func RenderBars(s algo.Step, cols, rows int, theme Theme) string {
	if cols < 1 || rows < 1 {
		return ""
	}
	if len(s.Array) <= cols {
		return blockBars(s, cols, rows, theme)
	}
	return brailleBars(s, cols, rows, theme)
}

func largest(arr []int) int {
	m := 1
	for _, v := range arr {
		if v > m {
			m = v
		}
	}
	return m
}

// scaled maps v onto 0..units, keeping non-zero values visible.
func scaled(v, top, units int) int {
	h := int(float64(v) * float64(units) / float64(top))
	if v > 0 && h == 0 {
		h = 1
	}
	return h
}

func blockBars(s algo.Step, cols, rows int, theme Theme) string {
	n := len(s.Array)
	if n == 0 {
		return strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", cols)+"\n", rows), "\n")
	}
	w := cols / n
	top := largest(s.Array)
	roles := Roles(s)

	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		row := rowBuilder{theme: theme}
		floor := (rows - 1 - r) * 8
		for i, v := range s.Array {
			lvl := scaled(v, top, rows*8) - floor
			if lvl < 0 {
				lvl = 0
			}
			if lvl > 8 {
				lvl = 8
			}
			row.add(strings.Repeat(string(barLevels[lvl]), w), roles[i])
		}
		lines[r] = row.render()
	}
	return strings.Join(lines, "\n")
}

// BarCanvas plots arr as filled columns on a braille canvas and returns the
// role of each cell column alongside it.
func BarCanvas(s algo.Step, cols, rows int) (*Canvas, []Role) {
	c := NewCanvas(cols, rows)
	cellRoles := make([]Role, c.Width)
	n := len(s.Array)
	if n == 0 {
		return c, cellRoles
	}
	pw, ph := c.PixelWidth(), c.PixelHeight()
	top := largest(s.Array)
	roles := Roles(s)

	for i, v := range s.Array {
		x0 := i * pw / n
		x1 := (i+1)*pw/n - 1
		if x1 < x0 {
			x1 = x0
		}
		if h := scaled(v, top, ph); h > 0 {
			c.FillRect(x0, ph-h, x1, ph-1)
		}
		for col := x0 / 2; col <= x1/2 && col < c.Width; col++ {
			if roles[i] > cellRoles[col] {
				cellRoles[col] = roles[i]
			}
		}
	}
	return c, cellRoles
}

func brailleBars(s algo.Step, cols, rows int, theme Theme) string {
	c, cellRoles := BarCanvas(s, cols, rows)
	lines := make([]string, c.Height)
	for r, cells := range c.Grid {
		row := rowBuilder{theme: theme}
		for col, ch := range cells {
			row.add(string(ch), cellRoles[col])
		}
		lines[r] = row.render()
	}
	return strings.Join(lines, "\n")
}

// rowBuilder groups consecutive cells sharing a role so each run is styled
// once.
type rowBuilder struct {
	theme Theme
	out   strings.Builder
	run   strings.Builder
	role  Role
}

func (b *rowBuilder) add(text string, r Role) {
	if b.run.Len() > 0 && r != b.role {
		b.flushStyled()
	}
	b.role = r
	b.run.WriteString(text)
}

func (b *rowBuilder) flushStyled() {
	b.out.WriteString(lipgloss.NewStyle().Foreground(b.theme.Color(b.role)).Render(b.run.String()))
	b.run.Reset()
}

func (b *rowBuilder) render() string {
	if b.run.Len() > 0 {
		b.flushStyled()
	}
	return b.out.String()
}
