package glade

import "math/rand"

// Turner{0} is the sole source of nondeterminism in a run. It must be
// seedable so tests can pin it; cmd/walker seeds it from its -seed flag
// (default 1). A seed of 0 is normalized to 1.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}
