package walk

import (
	"math/rand"
	"time"
)

// Rand is the random source used by walkers and the factory.
// Implementations must be uniform; they need not be safe for concurrent use.
type Rand interface {
	// Intn returns a uniform integer in [0, n). n must be positive.
	Intn(n int) int
}

// NewRand returns a seeded math/rand source.
// A zero seed picks one from the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// IntRange returns a uniform integer in [lo, hi].
func IntRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Choose returns a uniformly chosen element of items.
// It panics on an empty slice.
func Choose[T any](r Rand, items []T) T {
	return items[r.Intn(len(items))]
}
