package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultColumns is the terminal preview width when Frame.Columns is unset
const DefaultColumns = 80

// WriteTerminal draws a downsampled character preview. Each character
// covers a cell of the canvas; a cell is land when any tile touches it.
// Terminal cells are about twice as tall as they are wide, so cells are
// twice as tall in pixels.
func WriteTerminal(w io.Writer, f Frame) error {
	cols := f.Columns
	if cols <= 0 {
		cols = DefaultColumns
	}
	if f.Canvas.Width <= 0 || f.Canvas.Height <= 0 {
		return fmt.Errorf("terminal: canvas %dx%d has no area", f.Canvas.Width, f.Canvas.Height)
	}

	cellW := max(1, (f.Canvas.Width+cols-1)/cols)
	cellH := 2 * cellW
	cols = (f.Canvas.Width + cellW - 1) / cellW
	rows := (f.Canvas.Height + cellH - 1) / cellH

	land := make([][]bool, rows)
	for y := range land {
		land[y] = make([]bool, cols)
	}

	for _, is := range f.Islands {
		for i := range is.Tiles {
			left, top, size := is.TileRect(i)
			markCells(land, is.Left+left, is.Top+top, size, cellW, cellH)
		}
	}

	landStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(f.Palette.Fill))
	seaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(f.Palette.Background))
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(f.Palette.Edge))

	var b strings.Builder
	for y, row := range land {
		for _, isLand := range row {
			if isLand {
				b.WriteString(landStyle.Render("█"))
			} else {
				b.WriteString(seaStyle.Render("·"))
			}
		}
		if y < len(land)-1 {
			b.WriteByte('\n')
		}
	}

	_, err := fmt.Fprintln(w, frame.Render(b.String()))
	return err
}

// markCells flags every cell the square at (px, py) of edge size overlaps
func markCells(land [][]bool, px, py, size, cellW, cellH int) {
	rows, cols := len(land), len(land[0])
	x0, y0 := max(0, px), max(0, py)
	x1, y1 := px+size-1, py+size-1
	if x1 < 0 || y1 < 0 {
		return
	}
	for cy := y0 / cellH; cy <= y1/cellH && cy < rows; cy++ {
		for cx := x0 / cellW; cx <= x1/cellW && cx < cols; cx++ {
			land[cy][cx] = true
		}
	}
}
