package walk

import "fmt"

// StepKind tags a StepPolicy.
type StepKind int

const (
	StepFixed StepKind = iota
	StepUniform
)

// StepPolicy decides the length of each step.
// Fixed policies always return Length; uniform policies draw an integer
// in [Min, Max].
type StepPolicy struct {
	Kind   StepKind
	Length float64
	Min    int
	Max    int
}

// Fixed returns a policy with a constant step length.
func Fixed(length float64) StepPolicy {
	return StepPolicy{Kind: StepFixed, Length: length}
}

// Uniform returns a policy drawing integer lengths in [lo, hi].
func Uniform(lo, hi int) StepPolicy {
	return StepPolicy{Kind: StepUniform, Min: lo, Max: hi}
}

// Next returns the next step length.
func (p StepPolicy) Next(r Rand) float64 {
	if p.Kind == StepUniform {
		return float64(IntRange(r, p.Min, p.Max))
	}
	return p.Length
}

// Validate rejects negative or empty ranges.
func (p StepPolicy) Validate() error {
	switch p.Kind {
	case StepFixed:
		if p.Length <= 0 {
			return fmt.Errorf("walk: step length must be positive, got %g: %w", p.Length, ErrInvalidConfig)
		}
	case StepUniform:
		if p.Min < 0 || p.Max < p.Min {
			return fmt.Errorf("walk: bad step range [%d, %d]: %w", p.Min, p.Max, ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("walk: unknown step kind %d: %w", p.Kind, ErrInvalidConfig)
	}
	return nil
}

// String describes the policy for listings.
func (p StepPolicy) String() string {
	if p.Kind == StepUniform {
		return fmt.Sprintf("random %d-%d", p.Min, p.Max)
	}
	return fmt.Sprintf("fixed %g", p.Length)
}
