package raster

import (
	"fmt"

	"github.com/vovakirdan/randwalk/internal/walk"
)

// DefaultMaxRetries bounds the directions proposed for a single step.
const DefaultMaxRetries = 1000

// Coord is a grid position.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// TrappedError reports a walker that found no free neighbour.
// It matches walk.ErrWalkerTrapped with errors.Is.
type TrappedError struct {
	Step     int   // index of the step that could not be resolved
	At       Coord // position the walker was stuck at
	Attempts int   // directions proposed before giving up
}

func (e *TrappedError) Error() string {
	return fmt.Sprintf("raster: walker trapped at %s on step %d after %d attempts", e.At, e.Step, e.Attempts)
}

func (e *TrappedError) Unwrap() error {
	return walk.ErrWalkerTrapped
}

// Walker is a 4-connected unit-step walker on a Grid.
// A blocked proposal is discarded and a new direction drawn; the step index
// only advances once a free cell is found.
type Walker struct {
	rng        walk.Rand
	maxRetries int
	steps      int

	state    walk.State
	path     []Coord
	attempts int
}

// NewWalker creates a grid walker recording steps positions.
// maxRetries <= 0 selects DefaultMaxRetries.
func NewWalker(r walk.Rand, steps, maxRetries int) (*Walker, error) {
	if steps < 1 {
		return nil, fmt.Errorf("raster: steps must be at least 1, got %d: %w", steps, walk.ErrInvalidConfig)
	}
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Walker{
		rng:        r,
		maxRetries: maxRetries,
		steps:      steps,
		path:       make([]Coord, 0, steps),
	}, nil
}

// State returns the lifecycle state.
func (w *Walker) State() walk.State { return w.state }

// Path returns the visited positions, start first. A trapped walker's path
// ends at the cell it was stuck on.
func (w *Walker) Path() []Coord { return w.path }

// Attempts returns the number of directions proposed in total.
func (w *Walker) Attempts() int { return w.attempts }

// Walk marks start on g and walks until the path is complete or the walker
// is trapped. The grid is mutated in place.
func (w *Walker) Walk(g *Grid, start Coord) error {
	if w.state != walk.Unstarted {
		return fmt.Errorf("raster: walker already %s: %w", w.state, walk.ErrInvalidConfig)
	}
	if g.claimed {
		return ErrGridInUse
	}
	row, col := g.Wrap(start.Row, start.Col)
	if !g.IsFree(row, col) {
		return fmt.Errorf("raster: start %s is blocked (%s): %w", start, g.At(row, col), walk.ErrInvalidConfig)
	}
	g.claimed = true

	w.state = walk.Walking
	defer func() { w.state = walk.Done }()

	cur := Coord{Row: row, Col: col}
	g.Mark(cur.Row, cur.Col, Start)
	w.path = append(w.path, cur)

	for step := 1; step < w.steps; step++ {
		next, err := w.next(g, cur, step)
		if err != nil {
			return err
		}
		g.Mark(next.Row, next.Col, Visited)
		w.path = append(w.path, next)
		cur = next
	}
	return nil
}

// next proposes directions until one leads to a free cell.
func (w *Walker) next(g *Grid, cur Coord, step int) (Coord, error) {
	if g.enclosed(cur.Row, cur.Col) {
		return cur, &TrappedError{Step: step, At: cur}
	}
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		w.attempts++
		d := walk.Choose(w.rng, walk.Cardinal)
		dc, dr, _ := d.GridDelta()
		row, col := g.Wrap(cur.Row+dr, cur.Col+dc)
		if g.IsFree(row, col) {
			return Coord{Row: row, Col: col}, nil
		}
	}
	return cur, &TrappedError{Step: step, At: cur, Attempts: w.maxRetries}
}
