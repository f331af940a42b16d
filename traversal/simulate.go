package traversal

import "github.com/katalvlaran/spiderweb/bridges"

// FinalStrand returns the strand an outward walk from the hub on strand
// start ends on. Kinds are ignored and bs is not modified.
func FinalStrand(start int, bs []bridges.Bridge) int {
	end, _ := Crossings(start, 0, true, bs)
	return end
}

// InitialStrand returns the strand an outward walk must start on to end on
// target: the result of an inward walk from the rim of target. Bridges lying
// on the rim itself are crossed too, since an outward walk crosses them last.
func InitialStrand(target, radius int, bs []bridges.Bridge) int {
	end, _ := Crossings(target, radius+1, false, bs)
	return end
}

// Crossings simulates a kind-free walk from strand at distance and returns
// the final strand with the bridges crossed in order.
// Complexity: O(M log M + H·M).
func Crossings(strand, distance int, outward bool, bs []bridges.Bridge) (int, []bridges.Bridge) {
	sorted := append([]bridges.Bridge(nil), bs...)
	if outward {
		bridges.SortAscending(sorted)
	} else {
		bridges.SortDescending(sorted)
	}
	var crossed []bridges.Bridge
	for {
		b, ok := firstEligible(sorted, strand, distance, outward)
		if !ok {
			return strand, crossed
		}
		crossed = append(crossed, b)
		strand, distance = b.Other(strand), b.Distance
	}
}

func firstEligible(sorted []bridges.Bridge, strand, distance int, outward bool) (bridges.Bridge, bool) {
	for _, b := range sorted {
		if !b.Touches(strand) {
			continue
		}
		if (outward && b.Distance > distance) || (!outward && b.Distance < distance) {
			return b, true
		}
	}
	return bridges.Bridge{}, false
}
