// Package walk provides the random-walk engine: directions, step policies,
// the variant registry, walkers and the walker factory.
// It has no knowledge of rendering or of the playground geometry beyond the
// Containment interface.
package walk

import (
	"fmt"
	"math"
	"strings"
)

// Direction is a compass direction a walker can step in.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// diagonal is the per-axis factor of a diagonal step of length 1.
const diagonal = math.Sqrt2 / 2

var directionNames = [...]string{
	North:     "north",
	South:     "south",
	East:      "east",
	West:      "west",
	NorthEast: "northeast",
	NorthWest: "northwest",
	SouthEast: "southeast",
	SouthWest: "southwest",
}

// Cardinal is the von Neumann neighbourhood.
var Cardinal = []Direction{North, South, East, West}

// Diagonals contains the four diagonal directions.
var Diagonals = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}

// All is the Moore neighbourhood.
var All = []Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

// String returns the lowercase direction name.
func (d Direction) String() string {
	if d < North || d > SouthWest {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Factor returns the continuous unit displacement for d.
// Every direction has magnitude 1; diagonals use √2/2 on both axes.
func (d Direction) Factor() (dx, dy float64) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	case NorthEast:
		return diagonal, diagonal
	case NorthWest:
		return -diagonal, diagonal
	case SouthEast:
		return diagonal, -diagonal
	case SouthWest:
		return -diagonal, -diagonal
	}
	return 0, 0
}

// GridDelta returns the integer cell offset for d.
// The grid model is 4-connected, so ok is false for diagonals.
func (d Direction) GridDelta() (dx, dy int, ok bool) {
	switch d {
	case North:
		return 0, 1, true
	case South:
		return 0, -1, true
	case East:
		return 1, 0, true
	case West:
		return -1, 0, true
	}
	return 0, 0, false
}

// IsDiagonal reports whether d is one of the four diagonal directions.
func (d Direction) IsDiagonal() bool {
	_, _, ok := d.GridDelta()
	return !ok && d >= North && d <= SouthWest
}

// Pattern selects the neighbourhood of the plain walkers.
type Pattern string

const (
	PatternNeumann Pattern = "neumann"
	PatternMoore   Pattern = "moore"
)

// ParsePattern accepts "neumann"/"4" and "moore"/"8".
func ParsePattern(s string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "neumann", "4", "von-neumann":
		return PatternNeumann, nil
	case "moore", "8":
		return PatternMoore, nil
	}
	return "", fmt.Errorf("walk: unknown movement pattern %q: %w", s, ErrInvalidConfig)
}

// Directions returns the direction set of the pattern.
func (p Pattern) Directions() []Direction {
	if p == PatternMoore {
		return All
	}
	return Cardinal
}
