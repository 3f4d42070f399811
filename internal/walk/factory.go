package walk

import "fmt"

// NewWalkers creates count walkers, each of a variant chosen uniformly from
// names. "all" expands to every variant in reg. Names are validated before
// any walker is built.
func NewWalkers(r Rand, reg *Registry, count, steps int, names []string) ([]*Walker, error) {
	if count < 0 {
		return nil, fmt.Errorf("walk: walker count must not be negative, got %d: %w", count, ErrInvalidConfig)
	}
	if steps < 1 {
		return nil, fmt.Errorf("walk: steps must be at least 1, got %d: %w", steps, ErrInvalidConfig)
	}
	variants, err := reg.Resolve(names)
	if err != nil {
		return nil, err
	}
	return FromVariants(r, variants, count, steps)
}

// FromVariants creates count walkers of variants chosen uniformly from the
// given configurations.
func FromVariants(r Rand, variants []Variant, count, steps int) ([]*Walker, error) {
	if count > 0 && len(variants) == 0 {
		return nil, fmt.Errorf("walk: no variants allowed: %w", ErrInvalidConfig)
	}
	walkers := make([]*Walker, 0, count)
	for range count {
		w, err := NewWalker(r, Choose(r, variants), steps)
		if err != nil {
			return nil, err
		}
		walkers = append(walkers, w)
	}
	return walkers, nil
}
