package traversal_test

import (
	"fmt"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/topology"
	"github.com/katalvlaran/spiderweb/traversal"
)

// ExampleFinalStrand simulates outward walks without touching a web.
func ExampleFinalStrand() {
	top, _ := topology.New(7, 120)
	set := bridges.NewSet(top)
	for _, s := range [][2]int{{20, 0}, {40, 2}, {60, 2}, {80, 6}, {100, 4}} {
		_, _ = set.Add("", s[0], s[1], bridges.Normal)
	}

	for start := 0; start < 7; start++ {
		fmt.Print(traversal.FinalStrand(start, set.All()), " ")
	}
	fmt.Println()

	// Output:
	// 1 6 2 3 5 4 0
}
