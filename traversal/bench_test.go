package traversal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/topology"
	"github.com/katalvlaran/spiderweb/traversal"
)

// randomBridges fills a web of n strands with up to m non-conflicting bridges.
func randomBridges(n, m, radius int) []bridges.Bridge {
	top, _ := topology.New(n, radius)
	set := bridges.NewSet(top)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < m; i++ {
		_, _ = set.Add("", 1+rng.Intn(radius-1), rng.Intn(n), bridges.Normal)
	}
	return set.All()
}

// BenchmarkFinalStrand measures a kind-free outward walk over 1000 bridges.
func BenchmarkFinalStrand(b *testing.B) {
	bs := randomBridges(64, 1000, 100000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = traversal.FinalStrand(i%64, bs)
	}
}

// BenchmarkInitialStrand measures the inward start search.
func BenchmarkInitialStrand(b *testing.B) {
	bs := randomBridges(64, 1000, 100000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = traversal.InitialStrand(i%64, 100000, bs)
	}
}
