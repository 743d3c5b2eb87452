package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Series is one line of a console chart.
type Series struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// LineChart plots one or more series as an ASCII grid with a dollar
// Y axis. It exists so the console formatters can show Monte Carlo
// percentile bands and Coast-FIRE trajectories without a graphics
// dependency.
type LineChart struct {
	Title  string
	Series []Series
	XLabel string
	Width  int
	Height int
}

// NewLineChart creates a chart with the default terminal footprint.
func NewLineChart(title string) *LineChart {
	return &LineChart{Title: title, Width: 72, Height: 16}
}

// AddDecimalSeries appends a line built from decimal values.
func (c *LineChart) AddDecimalSeries(name string, points []decimal.Decimal, color lipgloss.Color) *LineChart {
	floats := make([]float64, len(points))
	for i, p := range points {
		floats[i], _ = p.Float64()
	}
	c.Series = append(c.Series, Series{Name: name, Points: floats, Color: color})
	return c
}

var seriesGlyphs = []rune{'●', '■', '▲', '♦'}

// Render draws the chart.
func (c *LineChart) Render() string {
	if len(c.Series) == 0 {
		return LabelStyle.Render("no data to chart")
	}

	var out strings.Builder
	if c.Title != "" {
		out.WriteString(TitleStyle.Render(c.Title))
		out.WriteString("\n\n")
	}

	min, max := c.bounds()
	out.WriteString(c.renderGrid(min, max))

	if c.XLabel != "" {
		out.WriteString("\n")
		out.WriteString(LabelStyle.Italic(true).Render(c.XLabel))
	}
	if len(c.Series) > 1 {
		out.WriteString("\n")
		out.WriteString(c.renderLegend())
	}
	return out.String()
}

// bounds finds the padded value range across all series.
func (c *LineChart) bounds() (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			min = math.Min(min, p)
			max = math.Max(max, p)
		}
	}
	pad := (max - min) * 0.1
	if pad == 0 {
		pad = 1
	}
	return min - pad, max + pad
}

func (c *LineChart) renderGrid(min, max float64) string {
	const axisWidth = 10
	plotWidth := c.Width - axisWidth

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, plotWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for idx, s := range c.Series {
		if len(s.Points) < 2 {
			continue
		}
		glyph := seriesGlyphs[idx%len(seriesGlyphs)]
		lastN := len(s.Points) - 1
		prevX, prevY := -1, -1
		for i, p := range s.Points {
			x := i * (plotWidth - 1) / lastN
			y := c.Height - 1 - int((p-min)/(max-min)*float64(c.Height-1))
			if prevX >= 0 {
				drawSegment(grid, prevX, prevY, x, y, glyph)
			}
			if y >= 0 && y < c.Height && x >= 0 && x < plotWidth {
				grid[y][x] = glyph
			}
			prevX, prevY = x, y
		}
	}

	axisStyle := LabelStyle.Width(axisWidth).Align(lipgloss.Right)
	var out strings.Builder
	for i, row := range grid {
		yValue := max - float64(i)/float64(c.Height-1)*(max-min)
		out.WriteString(axisStyle.Render(formatAxisValue(yValue)))
		out.WriteString(" │ ")
		out.WriteString(string(row))
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", axisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", plotWidth))
	out.WriteString("\n")
	return out.String()
}

// drawSegment connects two grid points with Bresenham steps, never
// overwriting an existing glyph.
func drawSegment(grid [][]rune, x0, y0, x1, y1 int, glyph rune) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx - dy
	x, y := x0, y0
	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) && grid[y][x] == ' ' {
			grid[y][x] = glyph
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func (c *LineChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, s := range c.Series {
		glyph := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesGlyphs[i%len(seriesGlyphs)]))
		items = append(items, fmt.Sprintf("%s %s", glyph, s.Name))
	}
	return LabelStyle.Render("legend: " + strings.Join(items, "   "))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
