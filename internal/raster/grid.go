// Package raster implements the grid model: a square toroidal occupancy grid
// with a centered square obstacle, walked by a single 4-connected walker.
package raster

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/randwalk/internal/walk"
)

// Cell is the state of one grid cell.
// The numeric values match the labels handed to renderers.
type Cell uint8

const (
	Empty    Cell = 0
	Obstacle Cell = 1
	Visited  Cell = 2
	Start    Cell = 3
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Obstacle:
		return "obstacle"
	case Visited:
		return "visited"
	case Start:
		return "start"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// ErrGridInUse reports a second walk on a grid that was already walked.
// Only one walker per grid is supported.
var ErrGridInUse = errors.New("grid already walked")

// Grid is a square occupancy grid stored in row-major order.
// Row indices grow with North, column indices with East.
type Grid struct {
	side    int
	cells   []Cell
	block   int // side length of the obstacle block
	corner  int // upper-left row and column of the obstacle block
	claimed bool
}

// New builds a grid of side floor(sqrt(totalCells)) with a centered square
// obstacle covering at least fill of the area, rounded to an even cell count
// before taking the block side.
func New(totalCells int, fill float64) (*Grid, error) {
	if totalCells < 1 {
		return nil, fmt.Errorf("raster: total cells must be at least 1, got %d: %w", totalCells, walk.ErrInvalidConfig)
	}
	if !(fill > 0 && fill < 1) {
		return nil, fmt.Errorf("raster: fill fraction must be in (0, 1), got %g: %w", fill, walk.ErrInvalidConfig)
	}

	side := int(math.Sqrt(float64(totalCells)))
	g := &Grid{
		side:  side,
		cells: make([]Cell, side*side),
	}

	fillCells := int(float64(side*side) * fill)
	if fillCells%2 == 1 {
		fillCells++
	}
	g.block = int(math.Sqrt(float64(fillCells)))

	center := float64(side) / 2
	g.corner = int(center - float64(g.block)/2)

	for row := g.corner; row < g.corner+g.block; row++ {
		for col := g.corner; col < g.corner+g.block; col++ {
			g.cells[row*side+col] = Obstacle
		}
	}
	return g, nil
}

// Side returns the number of rows (and columns).
func (g *Grid) Side() int { return g.side }

// Block returns the obstacle's upper-left row/column and its side length.
func (g *Grid) Block() (corner, side int) { return g.corner, g.block }

// Wrap normalizes a coordinate pair onto the torus.
func (g *Grid) Wrap(row, col int) (int, int) {
	return wrap(row, g.side), wrap(col, g.side)
}

func wrap(v, n int) int {
	return (v%n + n) % n
}

// At returns the cell at the wrapped position.
func (g *Grid) At(row, col int) Cell {
	row, col = g.Wrap(row, col)
	return g.cells[row*g.side+col]
}

// IsFree reports whether a walker may enter the wrapped position.
// Obstacles and the start cell are blocked; visited cells are not.
func (g *Grid) IsFree(row, col int) bool {
	c := g.At(row, col)
	return c != Obstacle && c != Start
}

// Mark sets the cell at the wrapped position.
func (g *Grid) Mark(row, col int, c Cell) {
	row, col = g.Wrap(row, col)
	g.cells[row*g.side+col] = c
}

// Count returns the number of cells in state c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Rows returns a copy of the grid as rows, row 0 first.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.side)
	for r := range rows {
		rows[r] = make([]Cell, g.side)
		copy(rows[r], g.cells[r*g.side:(r+1)*g.side])
	}
	return rows
}

// enclosed reports whether every 4-neighbour of the position is blocked.
func (g *Grid) enclosed(row, col int) bool {
	for _, d := range walk.Cardinal {
		dc, dr, _ := d.GridDelta()
		if g.IsFree(row+dr, col+dc) {
			return false
		}
	}
	return true
}
