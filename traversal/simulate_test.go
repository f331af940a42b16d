package traversal_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/topology"
	"github.com/katalvlaran/spiderweb/traversal"
)

func TestFinalStrand_Example3(t *testing.T) {
	h := newHost(t, 7, 120, example1)
	bs := h.set.All()
	assert.Equal(t, 1, traversal.FinalStrand(0, bs))
	assert.Equal(t, 0, traversal.FinalStrand(6, bs))
	assert.Equal(t, 4, traversal.FinalStrand(5, bs), "entering 4-100 from its final strand")
	assert.Equal(t, 3, traversal.FinalStrand(3, nil))
}

func TestInitialStrand(t *testing.T) {
	h := newHost(t, 7, 120, example1)
	bs := h.set.All()
	assert.Equal(t, 0, traversal.InitialStrand(1, 120, bs))
	assert.Equal(t, 6, traversal.InitialStrand(0, 120, bs))
	// no bridges: every strand leads to itself
	assert.Equal(t, 3, traversal.InitialStrand(3, 120, nil))
}

func TestInitialStrand_RimBridge(t *testing.T) {
	h := newHost(t, 4, 100, []spec{{100, 1}, {40, 2}})
	bs := h.set.All()
	start := traversal.InitialStrand(1, 100, bs)
	assert.Equal(t, 3, start)
	assert.Equal(t, 1, traversal.FinalStrand(start, bs))
}

func TestCrossings_DoesNotModifyInput(t *testing.T) {
	h := newHost(t, 7, 120, example1)
	bs := h.set.All()
	before := append([]bridges.Bridge(nil), bs...)
	_, crossed := traversal.Crossings(2, 0, true, bs)
	assert.Equal(t, before, bs)
	assert.Equal(t, []string{"2-40", "2-60"}, colors(crossed))
}

// TestInitialStrand_Inverse checks that walking out from InitialStrand(t)
// always ends on t for random webs without zero-distance bridges, rim
// bridges included.
func TestInitialStrand_Inverse(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("outward walk inverts inward walk", prop.ForAll(
		func(n int, placements []int, target int) bool {
			top, _ := topology.New(n, 50)
			set := bridges.NewSet(top)
			for _, p := range placements {
				_, _ = set.Add("", 1+p%50, (p/50)%n, bridges.Normal)
			}
			target %= n
			bs := set.All()
			return traversal.FinalStrand(traversal.InitialStrand(target, 50, bs), bs) == target
		},
		gen.IntRange(1, 12),
		gen.SliceOf(gen.IntRange(0, 50*12-1)),
		gen.IntRange(0, 11),
	))

	properties.TestingRun(t)
}
