package playground

import (
	"sort"

	"github.com/paulmach/orb"
)

// layout returns the lakes for a playground of half extents x, y.
type layout func(x, y float64) []orb.Polygon

var catalog = map[int]layout{
	0: func(_, _ float64) []orb.Polygon { return nil },
	1: moonLake,
	2: ringLake,
}

// Seeds returns the known catalog seeds.
func Seeds() []int {
	seeds := make([]int, 0, len(catalog))
	for s := range catalog {
		seeds = append(seeds, s)
	}
	sort.Ints(seeds)
	return seeds
}

// moonLake is a single irregular lake east of the centre.
func moonLake(x, y float64) []orb.Polygon {
	shore := orb.Ring{
		{x / 2.5, y / 2.5},
		{x / 2.5, -y / 2.5},
		{0, -y / 2},
		{0, -y / 1.5},
		{x * 2 / 3, -y / 1.5},
		{x * 3 / 4, 0},
		{x / 2, y * 5 / 6},
		{x / 4, y * 3 / 4},
		{x / 2.5, y / 2.5},
	}
	return []orb.Polygon{{shore}}
}

// ringLake is a ring-shaped lake around a small island at the centre,
// bounded by two concentric octagons.
func ringLake(x, y float64) []orb.Polygon {
	shore := orb.Ring{
		{0, y / 10},
		{x / 15, y / 15},
		{x / 10, 0},
		{x / 15, -y / 15},
		{0, -y / 10},
		{-x / 15, -y / 15},
		{-x / 10, 0},
		{-x / 15, y / 15},
		{0, y / 10},
	}
	island := orb.Ring{
		{0, y / 30},
		{x / 25, y / 25},
		{x / 30, 0},
		{x / 25, -y / 25},
		{0, -y / 30},
		{-x / 25, -y / 25},
		{-x / 30, 0},
		{-x / 25, y / 25},
		{0, y / 30},
	}
	return []orb.Polygon{{shore, island}}
}
