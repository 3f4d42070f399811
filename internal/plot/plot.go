package plot

import (
	"github.com/paulmach/orb"

	"github.com/vovakirdan/randwalk/internal/playground"
	"github.com/vovakirdan/randwalk/internal/raster"
	"github.com/vovakirdan/randwalk/internal/sim"
)

// Glyphs used by the plots.
const (
	GlyphEdge     = '#'
	GlyphShore    = '~'
	GlyphPath     = '•'
	GlyphStart    = 'o'
	GlyphEnd      = 'x'
	GlyphObstacle = '█'
	GlyphVisited  = '·'
	GlyphGridHead = '@'
)

// Playground draws the outer edge, the lake shores and the islands.
func Playground(c *Canvas, p Projection, b *playground.Boundary) {
	for _, hole := range b.Holes() {
		for _, ring := range hole {
			c.DrawPath(p, orb.LineString(ring), GlyphShore, ColorBlue)
		}
	}
	c.DrawPath(p, orb.LineString(b.Outer()), GlyphEdge, ColorGray)
}

// Walk draws a whole continuous-model result.
func Walk(res *sim.WalkResult, width, height int) *Canvas {
	return WalkPrefix(res, width, height, -1)
}

// WalkPrefix draws the result with every path cut to its first n points;
// n < 0 draws complete paths.
func WalkPrefix(res *sim.WalkResult, width, height, n int) *Canvas {
	c := NewCanvas(width, height)
	if res == nil || res.Boundary == nil {
		return c
	}
	p := NewProjection(res.Boundary.Bound(), c.Width(), c.Height())
	Playground(c, p, res.Boundary)

	paths := make([]orb.LineString, len(res.Walkers))
	for i, w := range res.Walkers {
		paths[i] = w.Path
		if n >= 0 && n < len(w.Path) {
			paths[i] = w.Path[:n]
		}
		c.DrawPath(p, paths[i], GlyphPath, WalkerColor(w.Index))
	}
	// Markers go last so later paths never hide them; starts win over ends.
	for i, w := range res.Walkers {
		if len(paths[i]) > 0 {
			c.DrawMarker(p, paths[i][len(paths[i])-1], GlyphEnd, WalkerColor(w.Index))
		}
	}
	for i, w := range res.Walkers {
		if len(paths[i]) > 0 {
			c.DrawMarker(p, paths[i][0], GlyphStart, WalkerColor(w.Index))
		}
	}
	return c
}

// cellPriority decides which grid cell wins when several share a character.
var cellPriority = map[raster.Cell]int{
	raster.Empty:    0,
	raster.Visited:  1,
	raster.Obstacle: 2,
	raster.Start:    3,
}

// Grid draws an obstacle grid. Row 0 of the grid is at the bottom. Grids
// larger than the canvas are downsampled.
func Grid(g *raster.Grid, width, height int) *Canvas {
	return GridPrefix(g, nil, width, height, -1)
}

// GridPrefix draws the grid with only the first n cells of path marked as
// visited; the n-th cell is the walker head. A nil path draws the grid as is.
func GridPrefix(g *raster.Grid, path []raster.Coord, width, height, n int) *Canvas {
	side := g.Side()
	c := NewCanvas(min(side, width), min(side, height))
	rows := g.Rows()
	if path != nil {
		for r := range rows {
			for col := range rows[r] {
				if rows[r][col] == raster.Visited {
					rows[r][col] = raster.Empty
				}
			}
		}
		if n < 0 || n > len(path) {
			n = len(path)
		}
		for _, pos := range path[:n] {
			if rows[pos.Row][pos.Col] == raster.Empty {
				rows[pos.Row][pos.Col] = raster.Visited
			}
		}
	}

	for y := 0; y < c.Height(); y++ {
		r0 := side - 1 - (y+1)*side/c.Height() + 1
		r1 := side - 1 - y*side/c.Height()
		for x := 0; x < c.Width(); x++ {
			c0 := x * side / c.Width()
			c1 := (x+1)*side/c.Width() - 1
			best := raster.Empty
			for r := r0; r <= r1; r++ {
				for col := c0; col <= c1; col++ {
					if cellPriority[rows[r][col]] > cellPriority[best] {
						best = rows[r][col]
					}
				}
			}
			setCell(c, x, y, best)
		}
	}

	if path != nil && n > 0 {
		head := path[n-1]
		x := head.Col * c.Width() / side
		y := (side - 1 - head.Row) * c.Height() / side
		c.Set(x, y, GlyphGridHead, ColorRed)
	}
	return c
}

func setCell(c *Canvas, x, y int, cell raster.Cell) {
	switch cell {
	case raster.Obstacle:
		c.Set(x, y, GlyphObstacle, ColorGray)
	case raster.Visited:
		c.Set(x, y, GlyphVisited, ColorGreen)
	case raster.Start:
		c.Set(x, y, GlyphStart, ColorYellow)
	}
}
