package walk

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
)

// scripted returns the queued values modulo n, then zeros.
type scripted struct {
	values []int
	pos    int
}

func (s *scripted) Intn(n int) int {
	if s.pos >= len(s.values) {
		return 0
	}
	v := s.values[s.pos] % n
	s.pos++
	return v
}

// halfPlane contains points with y <= limit.
type halfPlane struct{ limit float64 }

func (h halfPlane) Contains(p orb.Point) bool { return p[1] <= h.limit }

type box struct{ bound orb.Bound }

func (b box) Contains(p orb.Point) bool { return b.bound.Contains(p) }

func (b box) Bound() orb.Bound { return b.bound }

func TestDirectionFactorUnitLength(t *testing.T) {
	for _, d := range All {
		dx, dy := d.Factor()
		length := math.Hypot(dx, dy)
		if math.Abs(length-1) > 1e-12 {
			t.Errorf("|Factor(%s)| = %v, expected 1", d, length)
		}
	}
}

func TestDirectionFactorSigns(t *testing.T) {
	tests := []struct {
		d      Direction
		sx, sy float64
	}{
		{North, 0, 1},
		{South, 0, -1},
		{East, 1, 0},
		{West, -1, 0},
		{NorthEast, 1, 1},
		{NorthWest, -1, 1},
		{SouthEast, 1, -1},
		{SouthWest, -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			dx, dy := tc.d.Factor()
			if sign(dx) != tc.sx || sign(dy) != tc.sy {
				t.Errorf("Factor() = (%v, %v), expected signs (%v, %v)", dx, dy, tc.sx, tc.sy)
			}
			if tc.d.IsDiagonal() && math.Abs(dx) != math.Abs(dy) {
				t.Errorf("diagonal %s has unequal components %v, %v", tc.d, dx, dy)
			}
		})
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func TestGridDeltaCardinalOnly(t *testing.T) {
	for _, d := range Cardinal {
		dx, dy, ok := d.GridDelta()
		if !ok {
			t.Errorf("GridDelta(%s) not ok", d)
		}
		if abs(dx)+abs(dy) != 1 {
			t.Errorf("GridDelta(%s) = (%d, %d), expected a unit step", d, dx, dy)
		}
	}
	for _, d := range Diagonals {
		if _, _, ok := d.GridDelta(); ok {
			t.Errorf("GridDelta(%s) should not be ok", d)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestParsePattern(t *testing.T) {
	if p, err := ParsePattern("Moore"); err != nil || p != PatternMoore {
		t.Errorf("ParsePattern(Moore) = %v, %v", p, err)
	}
	if p, err := ParsePattern("4"); err != nil || p != PatternNeumann {
		t.Errorf("ParsePattern(4) = %v, %v", p, err)
	}
	if _, err := ParsePattern("hex"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParsePattern(hex) error = %v, expected ErrInvalidConfig", err)
	}
	if len(PatternMoore.Directions()) != 8 || len(PatternNeumann.Directions()) != 4 {
		t.Error("pattern direction sets have the wrong size")
	}
}

func TestStepPolicy(t *testing.T) {
	r := NewRand(7)
	fixed := Fixed(20)
	for range 10 {
		if got := fixed.Next(r); got != 20 {
			t.Fatalf("Fixed(20).Next() = %v", got)
		}
	}

	uniform := Uniform(0, 20)
	for range 1000 {
		got := uniform.Next(r)
		if got < 0 || got > 20 || got != math.Trunc(got) {
			t.Fatalf("Uniform(0, 20).Next() = %v, expected an integer in [0, 20]", got)
		}
	}

	if err := Fixed(0).Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Fixed(0).Validate() = %v", err)
	}
	if err := Uniform(5, 1).Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Uniform(5, 1).Validate() = %v", err)
	}
}

func TestWalkerSingleDirection(t *testing.T) {
	v := Variant{Name: "up", Directions: []Direction{North}, Step: Fixed(1)}
	const steps = 50

	w, err := NewWalker(NewRand(1), v, steps)
	if err != nil {
		t.Fatalf("NewWalker() failed: %v", err)
	}
	if w.State() != Unstarted {
		t.Errorf("State() = %s, expected unstarted", w.State())
	}
	if err := w.Walk(Unbounded{}, orb.Point{0, 0}); err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}
	if w.State() != Done {
		t.Errorf("State() = %s, expected done", w.State())
	}

	path := w.Path()
	if len(path) != steps {
		t.Fatalf("len(Path()) = %d, expected %d", len(path), steps)
	}
	for i, p := range path {
		if p != (orb.Point{0, float64(i)}) {
			t.Fatalf("Path()[%d] = %v, expected (0, %d)", i, p, i)
		}
	}
	if last := path[steps-1]; last != (orb.Point{0, steps - 1}) {
		t.Errorf("last position = %v, expected (0, %d)", last, steps-1)
	}
}

func TestWalkerHoldsOnRejection(t *testing.T) {
	v := Variant{Name: "up", Directions: []Direction{North}, Step: Fixed(1)}
	w, err := NewWalker(NewRand(1), v, 10)
	if err != nil {
		t.Fatalf("NewWalker() failed: %v", err)
	}
	if err := w.Walk(halfPlane{limit: 3}, orb.Point{0, 0}); err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}

	path := w.Path()
	for i := 4; i < len(path); i++ {
		if path[i] != (orb.Point{0, 3}) {
			t.Errorf("Path()[%d] = %v, expected to hold at (0, 3)", i, path[i])
		}
	}
	if w.Rejected() != 6 {
		t.Errorf("Rejected() = %d, expected 6", w.Rejected())
	}
	if len(w.Moves()) != 9 {
		t.Errorf("len(Moves()) = %d, expected 9", len(w.Moves()))
	}
}

func TestWalkerWalksOnce(t *testing.T) {
	w, err := NewWalker(NewRand(1), PlainVariant(PatternNeumann, 1), 5)
	if err != nil {
		t.Fatalf("NewWalker() failed: %v", err)
	}
	if err := w.Walk(Unbounded{}, orb.Point{}); err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}
	if err := w.Walk(Unbounded{}, orb.Point{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("second Walk() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestWalkerStartOutside(t *testing.T) {
	w, err := NewWalker(NewRand(1), PlainVariant(PatternMoore, 1), 5)
	if err != nil {
		t.Fatalf("NewWalker() failed: %v", err)
	}
	if err := w.Walk(halfPlane{limit: -1}, orb.Point{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Walk() error = %v, expected ErrInvalidConfig", err)
	}
	if w.State() != Unstarted {
		t.Errorf("State() = %s, expected unstarted", w.State())
	}
}

func TestNewWalkerRejectsZeroSteps(t *testing.T) {
	if _, err := NewWalker(NewRand(1), PlainVariant(PatternMoore, 1), 0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewWalker(steps=0) error = %v, expected ErrInvalidConfig", err)
	}
}

func TestPawnCommitment(t *testing.T) {
	pawn, err := Default().Lookup("pawn")
	if err != nil {
		t.Fatalf("Lookup(pawn) failed: %v", err)
	}

	up := map[Direction]bool{North: true, NorthEast: true, NorthWest: true}
	r := NewRand(42)
	sawUp, sawDown := false, false

	for range 40 {
		w, err := NewWalker(r, pawn, 200)
		if err != nil {
			t.Fatalf("NewWalker() failed: %v", err)
		}
		if err := w.Walk(Unbounded{}, orb.Point{}); err != nil {
			t.Fatalf("Walk() failed: %v", err)
		}

		upward := up[w.Directions()[0]]
		if upward {
			sawUp = true
		} else {
			sawDown = true
		}
		for i, d := range w.Moves() {
			if up[d] != upward {
				t.Fatalf("pawn committed to upward=%v used %s at step %d", upward, d, i+1)
			}
		}
	}
	if !sawUp || !sawDown {
		t.Errorf("expected both pawn halves over 40 walkers, up=%v down=%v", sawUp, sawDown)
	}
}

func TestPawnCommitsFromRand(t *testing.T) {
	pawn, _ := Default().Lookup("pawn")

	w, _ := NewWalker(&scripted{values: []int{1}}, pawn, 3)
	for _, d := range w.Directions() {
		if d != South && d != SouthEast && d != SouthWest {
			t.Errorf("alternative 1 should be the downward set, got %s", d)
		}
	}
}

func TestRandomStart(t *testing.T) {
	r := NewRand(3)
	for _, steps := range []int{1, 10, 100, 10000} {
		shift := float64(StartShift(steps))
		for range 50 {
			p, err := RandomStart(r, Unbounded{}, steps)
			if err != nil {
				t.Fatalf("RandomStart() failed: %v", err)
			}
			if math.Abs(p[0]) > shift || math.Abs(p[1]) > shift {
				t.Fatalf("RandomStart(steps=%d) = %v, outside ±%v", steps, p, shift)
			}
		}
	}

	if StartShift(10) != 10 || StartShift(100) != 10 || StartShift(400) != 20 {
		t.Error("StartShift() does not follow max(10, sqrt(steps))")
	}

	if _, err := RandomStart(r, halfPlane{limit: -100}, 100); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("RandomStart() into an unreachable area error = %v", err)
	}
}

func TestRandomStartClipsToBound(t *testing.T) {
	r := NewRand(7)
	area := box{bound: orb.Bound{Min: orb.Point{-1.5, 0.5}, Max: orb.Point{1.5, 2}}}
	for range 200 {
		p, err := RandomStart(r, area, 10000)
		if err != nil {
			t.Fatalf("RandomStart() failed: %v", err)
		}
		if !area.Contains(p) {
			t.Fatalf("RandomStart() = %v, outside %v", p, area.bound)
		}
	}

	narrow := box{bound: orb.Bound{Min: orb.Point{0.2, 0.2}, Max: orb.Point{0.8, 0.8}}}
	if _, err := RandomStart(r, narrow, 100); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("RandomStart() without an integer point error = %v", err)
	}
}
