package web

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0 or no seed at all, so a
// web without options reshuffles the same way on every run.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}
