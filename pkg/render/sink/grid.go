package sink

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pchuan98/livecharts/pkg/core/chart"
	"github.com/pchuan98/livecharts/pkg/core/drawing"
)

// Grid is a character raster of a chart. Each cell holds the color of the
// topmost fill covering the cell center, or "" when empty.
type Grid struct {
	Cols, Rows int
	Cells      []string
}

// Rasterize samples c at time at onto a cols x rows grid. Stroke paints are
// ignored: at terminal resolution they only blur the fill.
func Rasterize(c *chart.Chart, at time.Duration, cols, rows int) *Grid {
	g := &Grid{Cols: max(cols, 0), Rows: max(rows, 0)}
	g.Cells = make([]string, g.Cols*g.Rows)
	if g.Cols == 0 || g.Rows == 0 || c.ControlSize.Width <= 0 || c.ControlSize.Height <= 0 {
		return g
	}
	c.Canvas.Draw(&gridContext{
		grid:  g,
		cellW: c.ControlSize.Width / float64(g.Cols),
		cellH: c.ControlSize.Height / float64(g.Rows),
	}, at)
	return g
}

// At returns the color of cell (col, row).
func (g *Grid) At(col, row int) string {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return ""
	}
	return g.Cells[row*g.Cols+col]
}

// Filled counts non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for _, c := range g.Cells {
		if c != "" {
			n++
		}
	}
	return n
}

// String renders the grid as lines of full blocks coloured with lipgloss.
func (g *Grid) String() string {
	if g.Cols == 0 || g.Rows == 0 {
		return ""
	}
	styles := make(map[string]lipgloss.Style)
	var sb strings.Builder
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			color := g.At(col, row)
			if color == "" {
				sb.WriteByte(' ')
				continue
			}
			st, ok := styles[color]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
				styles[color] = st
			}
			sb.WriteString(st.Render("█"))
		}
		if row < g.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

type gridContext struct {
	grid         *Grid
	cellW, cellH float64
}

func (gc *gridContext) DrawRect(r drawing.Rect, _ float64, st drawing.Style) {
	if st.Kind != drawing.Fill {
		return
	}
	x0, x1 := math.Min(r.X, r.Right()), math.Max(r.X, r.Right())
	y0, y1 := math.Min(r.Y, r.Bottom()), math.Max(r.Y, r.Bottom())

	first := max(int(math.Floor(x0/gc.cellW)), 0)
	last := min(int(math.Ceil(x1/gc.cellW)), gc.grid.Cols-1)
	for col := first; col <= last; col++ {
		cx := (float64(col) + 0.5) * gc.cellW
		if cx < x0 || cx >= x1 {
			continue
		}
		for row := max(int(math.Floor(y0/gc.cellH)), 0); row < gc.grid.Rows; row++ {
			cy := (float64(row) + 0.5) * gc.cellH
			if cy >= y1 {
				break
			}
			if cy >= y0 {
				gc.grid.Cells[row*gc.grid.Cols+col] = st.Color
			}
		}
	}
}
