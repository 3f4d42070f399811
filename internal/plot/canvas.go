// Package plot draws walks and grids onto a character canvas. The canvas
// is independent of the terminal; Render turns it into a styled string.
package plot

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is the foreground color of a canvas cell.
type Color uint8

// Palette used by the plots.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorGray
)

// walkerColors cycles through walker paths.
var walkerColors = []Color{ColorGreen, ColorYellow, ColorMagenta, ColorCyan, ColorRed, ColorOrange}

// WalkerColor returns the path color of the i-th walker.
func WalkerColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return walkerColors[i%len(walkerColors)]
}

var colorStyles = map[Color]lipgloss.Style{
	ColorDefault: lipgloss.NewStyle(),
	ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Cell is one character of the canvas.
type Cell struct {
	Rune  rune
	Color Color
}

// Canvas is a 2D character buffer. Row 0 is the top line.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a blank canvas. Non-positive sizes are clamped to 1.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 1)
	height = max(height, 1)
	c := &Canvas{width: width, height: height}
	c.cells = make([][]Cell, height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, width)
	}
	c.Clear()
	return c
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in characters.
func (c *Canvas) Height() int { return c.height }

// Clear fills the canvas with uncolored spaces.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Get returns the cell at the given position, or a blank cell when out of bounds.
func (c *Canvas) Get(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
func (c *Canvas) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, color)
		i++
	}
}

// DrawLine draws a line between two cells (Bresenham).
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, r rune, color Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Set(x0, y0, r, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// String returns the canvas without styling, rows joined by newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Render converts the canvas to a styled string for display.
// Adjacent cells with the same color share one escape sequence.
func (c *Canvas) Render() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height*2 + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < c.width {
			start := c.cells[y][x].Color
			var run strings.Builder
			for x < c.width && c.cells[y][x].Color == start {
				run.WriteRune(c.cells[y][x].Rune)
				x++
			}
			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Style returns the lipgloss style of the color.
func (c Color) Style() lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[ColorDefault]
}
