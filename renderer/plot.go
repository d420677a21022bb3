package renderer

import (
	"math"
	"strings"

	"github.com/etnz/nextfinance"
)

// Default size of a terminal chart, in characters.
const (
	PlotWidth  = 64
	PlotHeight = 12
)

const (
	plotLine = '•'
	plotGrid = '·'
)

// Plot rasterizes projected points into a width x height character grid,
// with guides at 25, 50 and 75 percent. Points outside the viewport are
// drawn on the border.
func Plot(points []nextfinance.ProjectedPoint, width, height int) string {
	width, height = max(width, 2), max(height, 2)
	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	for _, pct := range []float64{25, 50, 75} {
		row := grid[cell(pct, height)]
		for c := range row {
			row[c] = plotGrid
		}
	}

	var pc, pr int
	for i, p := range points {
		c, r := cell(p.XPct, width), cell(p.YPct, height)
		if i == 0 {
			grid[r][c] = plotLine
		} else {
			line(grid, pc, pr, c, r)
		}
		pc, pr = c, r
	}

	rows := make([]string, height)
	for r := range grid {
		rows[r] = strings.TrimRight(string(grid[r]), " ")
	}
	return strings.Join(rows, "\n")
}

// cell maps a percentage to a cell index in [0, n).
func cell(pct float64, n int) int {
	i := int(math.Round(pct / 100 * float64(n-1)))
	return min(max(i, 0), n-1)
}

// line marks the cells between two cells, both included.
func line(grid [][]rune, c0, r0, c1, r1 int) {
	dc, dr := c1-c0, r1-r0
	steps := max(abs(dc), abs(dr))
	if steps == 0 {
		grid[r0][c0] = plotLine
		return
	}
	for k := 0; k <= steps; k++ {
		c := c0 + int(math.Round(float64(dc*k)/float64(steps)))
		r := r0 + int(math.Round(float64(dr*k)/float64(steps)))
		grid[r][c] = plotLine
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
