// Package playground provides the polygonal region continuous walkers are
// confined to: an outer ring with lakes (holes) that walkers cannot enter.
//
// Containment uses the closed-region convention. A point on the outer edge
// is inside. A point on a lake shore is inside, since the shore belongs to
// the land. A lake may carry one island ring; the island and its shore are
// land again.
package playground

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/vovakirdan/randwalk/internal/walk"
)

// Boundary is an immutable playground.
type Boundary struct {
	outer orb.Ring
	holes []orb.Polygon // holes[i][0] is the shore, holes[i][1] an optional island
	bound orb.Bound
}

// New builds the catalog playground for seed, a rectangle of the given
// half extents multiplied by scale.
func New(halfWidth, halfHeight, scale float64, seed int) (*Boundary, error) {
	if halfWidth <= 0 || halfHeight <= 0 {
		return nil, fmt.Errorf("playground: half extents must be positive, got %gx%g: %w",
			halfWidth, halfHeight, walk.ErrInvalidConfig)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("playground: scale must be positive, got %g: %w", scale, walk.ErrInvalidConfig)
	}
	layout, ok := catalog[seed]
	if !ok {
		return nil, fmt.Errorf("playground: unknown seed %d (known: %v): %w", seed, Seeds(), walk.ErrInvalidConfig)
	}

	x, y := halfWidth*scale, halfHeight*scale
	outer := orb.Ring{{-x, -y}, {-x, y}, {x, y}, {x, -y}, {-x, -y}}
	return NewFromRings(outer, layout(x, y))
}

// NewFromRings builds a playground from explicit geometry.
// Rings are closed if their last point differs from the first.
func NewFromRings(outer orb.Ring, holes []orb.Polygon) (*Boundary, error) {
	outer = closeRing(outer)
	if err := checkRing(outer, "outer ring"); err != nil {
		return nil, err
	}

	closed := make([]orb.Polygon, len(holes))
	for i, hole := range holes {
		if len(hole) == 0 || len(hole) > 2 {
			return nil, fmt.Errorf("playground: hole %d must have a shore and at most one island: %w", i, walk.ErrGeometry)
		}
		closed[i] = make(orb.Polygon, len(hole))
		for j, ring := range hole {
			closed[i][j] = closeRing(ring)
			if err := checkRing(closed[i][j], fmt.Sprintf("hole %d ring %d", i, j)); err != nil {
				return nil, err
			}
		}
	}

	if err := validateHoles(outer, closed); err != nil {
		return nil, err
	}

	return &Boundary{
		outer: outer,
		holes: closed,
		bound: outer.Bound(),
	}, nil
}

// Contains reports whether p is a legal walker position.
func (b *Boundary) Contains(p orb.Point) bool {
	if !b.bound.Contains(p) || !covers(b.outer, p) {
		return false
	}
	for _, hole := range b.holes {
		if inLake(hole, p) {
			return false
		}
	}
	return true
}

// inLake reports whether p is strictly inside the shore and not on the island.
func inLake(hole orb.Polygon, p orb.Point) bool {
	if !strictlyInside(hole[0], p) {
		return false
	}
	if len(hole) > 1 && covers(hole[1], p) {
		return false
	}
	return true
}

// LineSegments returns the closed outlines to draw: every shore and island,
// then the outer ring.
func (b *Boundary) LineSegments() []orb.LineString {
	result := make([]orb.LineString, 0, 2*len(b.holes)+1)
	for _, hole := range b.holes {
		for _, ring := range hole {
			result = append(result, orb.LineString(ring.Clone()))
		}
	}
	return append(result, orb.LineString(b.outer.Clone()))
}

// Outer returns a copy of the outer ring.
func (b *Boundary) Outer() orb.Ring { return b.outer.Clone() }

// Holes returns a copy of the lakes.
func (b *Boundary) Holes() []orb.Polygon {
	result := make([]orb.Polygon, len(b.holes))
	for i, h := range b.holes {
		result[i] = h.Clone()
	}
	return result
}

// Bound returns the bounding box of the outer ring.
func (b *Boundary) Bound() orb.Bound { return b.bound }

// Polygon returns the playground as an orb polygon: the outer ring followed
// by every shore. Islands are not representable as polygon rings and are
// returned by Islands.
func (b *Boundary) Polygon() orb.Polygon {
	poly := orb.Polygon{b.outer.Clone()}
	for _, hole := range b.holes {
		poly = append(poly, hole[0].Clone())
	}
	return poly
}

// Islands returns the island rings of all lakes.
func (b *Boundary) Islands() []orb.Ring {
	var result []orb.Ring
	for _, hole := range b.holes {
		if len(hole) > 1 {
			result = append(result, hole[1].Clone())
		}
	}
	return result
}

// Centroid returns the area centroid of the land.
func (b *Boundary) Centroid() orb.Point {
	c, area := planar.CentroidArea(b.Polygon())
	area = math.Abs(area)
	sx, sy := c[0]*area, c[1]*area
	total := area

	for _, island := range b.Islands() {
		ic, ia := planar.CentroidArea(island)
		ia = math.Abs(ia)
		sx += ic[0] * ia
		sy += ic[1] * ia
		total += ia
	}
	if total == 0 {
		return c
	}
	return orb.Point{sx / total, sy / total}
}
