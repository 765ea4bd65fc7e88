// Package services – shared random source.
//
// All ambient randomness (discovery shuffle, canned reply selection,
// verification question pick, the decorative watching-now counter) flows
// through one injected, seedable source so tests can pin outcomes.
package services

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is a mutex-guarded *rand.Rand safe for use from concurrent request
// handlers and the deferred auto-reply task.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a Rand with the given seed. Tests use fixed seeds for
// deterministic shuffles and picks.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// NewTimeRand returns a Rand seeded from the current time.
func NewTimeRand() *Rand {
	return NewRand(time.Now().UnixNano())
}

// Intn returns a uniform int in [0, n).
func (r *Rand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Intn(n)
}

// Shuffle pseudo-randomizes the order of n elements (Fisher–Yates).
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.r.Shuffle(n, swap)
}
