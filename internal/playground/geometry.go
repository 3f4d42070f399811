package playground

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/vovakirdan/randwalk/internal/walk"
)

// epsilon is the tolerance relative to the geometry's own extent: a point
// within epsilon times an edge's length of that edge counts as on it.
const epsilon = 1e-9

func closeRing(r orb.Ring) orb.Ring {
	if len(r) == 0 || r.Closed() {
		return r
	}
	closed := make(orb.Ring, len(r), len(r)+1)
	copy(closed, r)
	return append(closed, r[0])
}

func checkRing(r orb.Ring, what string) error {
	distinct := make(map[orb.Point]struct{}, len(r))
	for _, p := range r {
		if math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsInf(p[0], 0) || math.IsInf(p[1], 0) {
			return fmt.Errorf("playground: %s has a non-finite vertex: %w", what, walk.ErrGeometry)
		}
		distinct[p] = struct{}{}
	}
	if len(distinct) < 3 {
		return fmt.Errorf("playground: %s needs at least 3 distinct vertices, got %d: %w", what, len(distinct), walk.ErrGeometry)
	}
	bound := r.Bound()
	if area := ringArea(r); area <= epsilon*bound.Width()*bound.Height() {
		return fmt.Errorf("playground: %s has no area: %w", what, walk.ErrGeometry)
	}
	return nil
}

// validateHoles checks that every lake lies strictly inside the outer ring,
// every island strictly inside its shore, and that lakes do not overlap.
func validateHoles(outer orb.Ring, holes []orb.Polygon) error {
	for i, hole := range holes {
		if !ringStrictlyInside(hole[0], outer) {
			return fmt.Errorf("playground: hole %d is not inside the outer ring: %w", i, walk.ErrGeometry)
		}
		if len(hole) > 1 && !ringStrictlyInside(hole[1], hole[0]) {
			return fmt.Errorf("playground: island of hole %d is not inside its shore: %w", i, walk.ErrGeometry)
		}
	}

	for i := range holes {
		for j := i + 1; j < len(holes); j++ {
			if ringsOverlap(holes[i][0], holes[j][0]) {
				return fmt.Errorf("playground: holes %d and %d overlap: %w", i, j, walk.ErrGeometry)
			}
		}
	}
	return nil
}

// ringStrictlyInside reports whether inner lies in the interior of outer
// without touching its edges.
func ringStrictlyInside(inner, outer orb.Ring) bool {
	for _, p := range inner {
		if !strictlyInside(outer, p) {
			return false
		}
	}
	return !edgesCross(inner, outer)
}

// ringsOverlap reports whether two rings share any point.
func ringsOverlap(a, b orb.Ring) bool {
	if !a.Bound().Intersects(b.Bound()) {
		return false
	}
	if edgesCross(a, b) {
		return true
	}
	return planar.RingContains(a, b[0]) || planar.RingContains(b, a[0])
}

// covers reports whether p is inside r or on its edge.
func covers(r orb.Ring, p orb.Point) bool {
	return planar.RingContains(r, p) || onRing(r, p)
}

func strictlyInside(r orb.Ring, p orb.Point) bool {
	return planar.RingContains(r, p) && !onRing(r, p)
}

func onRing(r orb.Ring, p orb.Point) bool {
	for i := 1; i < len(r); i++ {
		if onSegment(r[i-1], r[i], p) {
			return true
		}
	}
	return false
}

func onSegment(a, b, p orb.Point) bool {
	length := planar.Distance(a, b)
	if length == 0 {
		return p == a
	}
	tol := epsilon * length
	if math.Abs(cross(a, b, p)) > tol*length {
		return false
	}
	return p[0] >= math.Min(a[0], b[0])-tol && p[0] <= math.Max(a[0], b[0])+tol &&
		p[1] >= math.Min(a[1], b[1])-tol && p[1] <= math.Max(a[1], b[1])+tol
}

// edgesCross reports whether any edge of a touches or crosses any edge of b.
func edgesCross(a, b orb.Ring) bool {
	for i := 1; i < len(a); i++ {
		for j := 1; j < len(b); j++ {
			if segmentsIntersect(a[i-1], a[i], b[j-1], b[j]) {
				return true
			}
		}
	}
	return false
}

func segmentsIntersect(p1, p2, q1, q2 orb.Point) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return onSegment(q1, q2, p1) || onSegment(q1, q2, p2) || onSegment(p1, p2, q1) || onSegment(p1, p2, q2)
}

// cross is the z component of (b-a) x (p-a).
func cross(a, b, p orb.Point) float64 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

// ringArea returns the unsigned area of a closed ring.
func ringArea(r orb.Ring) float64 {
	_, area := planar.CentroidArea(r)
	return math.Abs(area)
}
