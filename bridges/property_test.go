package bridges_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/topology"
)

// TestBridgeProperties checks the placement invariants over random webs.
func TestBridgeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	kindGen := gen.IntRange(0, len(bridges.Kinds())-1).Map(func(i int) bridges.Kind {
		return bridges.Kind(i)
	})

	// Property 1: add then remove restores the previous contents unless the
	// bridge is Fixed
	properties.Property("add/remove round trip", prop.ForAll(
		func(n int, seeds []int, distance, strand int, kind bridges.Kind) bool {
			top, err := topology.New(n, 100)
			if err != nil {
				return false
			}
			set := bridges.NewSet(top)
			for _, p := range seeds {
				_, _ = set.Add("", p%101, (p/101)%n, bridges.Normal)
			}
			before := set.All()

			strand %= n
			if _, err := set.Add("c", distance, strand, kind); err != nil {
				return cmp.Equal(before, set.All())
			}
			_, err = set.Remove("c")
			if kind == bridges.Fixed {
				return err != nil && set.Len() == len(before)+1
			}
			return err == nil && cmp.Equal(before, set.All())
		},
		gen.IntRange(1, 16),
		gen.SliceOfN(8, gen.IntRange(0, 101*16-1)),
		gen.IntRange(0, 100),
		gen.IntRange(0, 15),
		kindGen,
	))

	// Property 2: final = (initial+1) mod N
	properties.Property("final strand formula", prop.ForAll(
		func(n, strand int) bool {
			top, err := topology.New(n, 100)
			if err != nil {
				return false
			}
			strand %= n
			b, err := bridges.NewSet(top).Add("", 50, strand, bridges.Normal)
			return err == nil && b.Final == (strand+1)%n
		},
		gen.IntRange(1, 32),
		gen.IntRange(0, 31),
	))

	// Property 3: no accepted pair of bridges ever conflicts
	properties.Property("accepted bridges never conflict", prop.ForAll(
		func(placements []int) bool {
			top, _ := topology.New(6, 10)
			set := bridges.NewSet(top)
			for _, p := range placements {
				_, _ = set.Add("", p%11, (p/11)%6, bridges.Normal)
			}
			all := set.All()
			for i := range all {
				for j := i + 1; j < len(all); j++ {
					if all[i].ConflictsWith(all[j].Distance, all[j].Initial, all[j].Final) {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 65)),
	))

	properties.TestingRun(t)
}
