package walk

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Containment answers whether a point is a legal walker position.
type Containment interface {
	Contains(p orb.Point) bool
}

// Unbounded is a Containment accepting every point.
type Unbounded struct{}

// Contains always returns true.
func (Unbounded) Contains(orb.Point) bool { return true }

// State is the lifecycle of a walker.
type State int

const (
	Unstarted State = iota
	Walking
	Done
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case Walking:
		return "walking"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// maxStartDraws bounds the redraws of a random start position.
const maxStartDraws = 1000

// Walker walks a fixed number of steps inside a Containment.
// Position 0 is the start; a rejected step repeats the previous position.
type Walker struct {
	variant    string
	directions []Direction
	step       StepPolicy
	rng        Rand

	state    State
	path     []orb.Point
	moves    []Direction // moves[i] is the direction drawn for step i+1
	rejected int
}

// NewWalker creates a walker of variant v with storage for steps positions.
// Variants with alternatives commit to one direction set here.
func NewWalker(r Rand, v Variant, steps int) (*Walker, error) {
	if steps < 1 {
		return nil, fmt.Errorf("walk: steps must be at least 1, got %d: %w", steps, ErrInvalidConfig)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &Walker{
		variant:    v.Name,
		directions: v.directions(r),
		step:       v.Step,
		rng:        r,
		path:       make([]orb.Point, steps),
		moves:      make([]Direction, 0, steps-1),
	}, nil
}

// Variant returns the name of the walker's variant.
func (w *Walker) Variant() string { return w.variant }

// Directions returns the walker's permitted directions.
func (w *Walker) Directions() []Direction { return w.directions }

// Steps returns the number of recorded positions.
func (w *Walker) Steps() int { return len(w.path) }

// State returns the lifecycle state.
func (w *Walker) State() State { return w.state }

// Path returns the recorded positions. It is only complete once Done.
func (w *Walker) Path() orb.LineString { return orb.LineString(w.path) }

// Moves returns the direction drawn for each step, accepted or not.
func (w *Walker) Moves() []Direction { return w.moves }

// Rejected returns how many steps were held in place.
func (w *Walker) Rejected() int { return w.rejected }

// Walk runs all steps from start. A walker can only walk once.
func (w *Walker) Walk(area Containment, start orb.Point) error {
	if w.state != Unstarted {
		return fmt.Errorf("walk: walker already %s: %w", w.state, ErrInvalidConfig)
	}
	if !area.Contains(start) {
		return fmt.Errorf("walk: start %v outside the playground: %w", start, ErrInvalidConfig)
	}

	w.state = Walking
	w.path[0] = start
	for i := 1; i < len(w.path); i++ {
		w.path[i] = w.next(area, w.path[i-1])
	}
	w.state = Done
	return nil
}

// next proposes one move from cur and holds in place if it leaves area.
func (w *Walker) next(area Containment, cur orb.Point) orb.Point {
	d := Choose(w.rng, w.directions)
	w.moves = append(w.moves, d)

	length := w.step.Next(w.rng)
	dx, dy := d.Factor()
	candidate := orb.Point{cur[0] + dx*length, cur[1] + dy*length}
	if !area.Contains(candidate) {
		w.rejected++
		return cur
	}
	return candidate
}

// StartShift is the half-width of the square random starts are drawn from.
func StartShift(steps int) int {
	if steps <= 10 {
		return 10
	}
	return int(math.Sqrt(float64(steps)))
}

// Bounded is implemented by containments that know their bounding box.
type Bounded interface {
	Bound() orb.Bound
}

// RandomStart draws an integer start position around the origin that area
// contains. When area is Bounded the draw is limited to its bounding box.
// The draw is repeated a bounded number of times.
func RandomStart(r Rand, area Containment, steps int) (orb.Point, error) {
	shift := StartShift(steps)
	minX, maxX, minY, maxY := -shift, shift, -shift, shift
	if b, ok := area.(Bounded); ok {
		bound := b.Bound()
		minX = max(minX, int(math.Ceil(bound.Min[0])))
		maxX = min(maxX, int(math.Floor(bound.Max[0])))
		minY = max(minY, int(math.Ceil(bound.Min[1])))
		maxY = min(maxY, int(math.Floor(bound.Max[1])))
	}
	if minX > maxX || minY > maxY {
		return orb.Point{}, fmt.Errorf("walk: no integer start inside the playground within ±%d: %w", shift, ErrInvalidConfig)
	}

	for range maxStartDraws {
		p := orb.Point{
			float64(IntRange(r, minX, maxX)),
			float64(IntRange(r, minY, maxY)),
		}
		if area.Contains(p) {
			return p, nil
		}
	}
	return orb.Point{}, fmt.Errorf("walk: no start inside the playground within ±%d: %w", shift, ErrInvalidConfig)
}
