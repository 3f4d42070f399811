package plot

import (
	"math"

	"github.com/paulmach/orb"
)

// Projection maps world coordinates onto canvas cells. The world origin is
// always at the canvas centre and north points up.
type Projection struct {
	halfX, halfY float64
	width        int
	height       int
}

// NewProjection fits the bound into a width x height canvas, symmetric
// around the origin.
func NewProjection(b orb.Bound, width, height int) Projection {
	halfX := math.Max(math.Abs(b.Min[0]), math.Abs(b.Max[0]))
	halfY := math.Max(math.Abs(b.Min[1]), math.Abs(b.Max[1]))
	if halfX == 0 {
		halfX = 1
	}
	if halfY == 0 {
		halfY = 1
	}
	return Projection{halfX: halfX, halfY: halfY, width: max(width, 1), height: max(height, 1)}
}

// Cell returns the canvas column and row of a world point.
func (p Projection) Cell(pt orb.Point) (x, y int) {
	fx := (pt[0] + p.halfX) / (2 * p.halfX)
	fy := (p.halfY - pt[1]) / (2 * p.halfY)
	return int(math.Round(fx * float64(p.width-1))), int(math.Round(fy * float64(p.height-1)))
}

// DrawPath draws a polyline; consecutive points are joined.
func (c *Canvas) DrawPath(p Projection, ls orb.LineString, r rune, color Color) {
	if len(ls) == 0 {
		return
	}
	px, py := p.Cell(ls[0])
	c.Set(px, py, r, color)
	for _, pt := range ls[1:] {
		x, y := p.Cell(pt)
		c.DrawLine(px, py, x, y, r, color)
		px, py = x, y
	}
}

// DrawMarker sets a single world point.
func (c *Canvas) DrawMarker(p Projection, pt orb.Point, r rune, color Color) {
	x, y := p.Cell(pt)
	c.Set(x, y, r, color)
}
