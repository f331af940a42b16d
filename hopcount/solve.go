package hopcount

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/katalvlaran/spiderweb/fenwick"
)

// Solve returns the per-strand hop counts for a web of n strands with the
// given favorite strand and bridges. specs is not modified.
//
// Steps:
//  1. Seed strand i with min(|F-i|, n-|F-i|).
//  2. Sort bridges by descending distance, stable.
//  3. For each bridge (t, t+1): skip when both counts are equal; otherwise
//     lower the higher side by one, lift the run behind it, and restore the
//     opposite neighbour.
//  4. Read every count.
func Solve(n, favorite int, specs []Spec) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStrandCount, n)
	}
	if favorite < 0 || favorite >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidFavorite, favorite, n)
	}
	for i, s := range specs {
		if s.Strand < 0 || s.Strand >= n {
			return nil, fmt.Errorf("%w: bridge %d on strand %d not in [0,%d)", ErrInvalidSpec, i, s.Strand, n)
		}
	}

	sv := &solver{n: n, tree: fenwick.New(n), top: bits.Len(uint(n))}
	for i := 0; i < n; i++ {
		sv.tree.RangeAdd(i, i, ringDistance(favorite, i, n))
	}

	sorted := append([]Spec(nil), specs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Distance > sorted[j].Distance })

	for _, s := range sorted {
		if err := sv.fold(s.Strand); err != nil {
			return nil, fmt.Errorf("%w: bridge at distance %d on strand %d", err, s.Distance, s.Strand)
		}
	}
	return sv.tree.Values(), nil
}

// ringDistance is the number of steps between a and b around an n-ring.
func ringDistance(a, b, n int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	return min(d, n-d)
}

type solver struct {
	n    int
	tree *fenwick.Tree
	top  int // highest bit worth trying in the lift
}

func (sv *solver) next(i, k int) int { return (i + k) % sv.n }
func (sv *solver) prev(i, k int) int { return (i - k + sv.n) % sv.n }

// fold applies one bridge between strands t and t+1.
func (sv *solver) fold(t int) error {
	nx := sv.next(t, 1)
	v1, v2 := sv.tree.At(t), sv.tree.At(nx)
	if v1-v2 > 1 || v2-v1 > 1 {
		return fmt.Errorf("%w: %d and %d", ErrInvariantViolated, v1, v2)
	}
	switch {
	case v1 == v2:
		return nil

	case v1 > v2:
		sv.tree.RangeAdd(t, t, -1)
		run := sv.lift(func(k int) int { return sv.prev(t, k) }, v1)
		if run != 0 {
			sv.decrement(sv.prev(t, run), sv.prev(t, 1))
		}
		if sv.tree.At(sv.next(nx, 1)) != v2-1 {
			sv.tree.RangeAdd(nx, nx, 1)
		}

	default:
		sv.tree.RangeAdd(nx, nx, -1)
		run := sv.lift(func(k int) int { return sv.next(nx, k) }, v2)
		if run != 0 {
			sv.decrement(sv.next(nx, 1), sv.next(nx, run))
		}
		if sv.tree.At(sv.prev(t, 1)) != v1-1 {
			sv.tree.RangeAdd(t, t, 1)
		}
	}
	return nil
}

// lift finds the longest run k ≤ n-2 such that the strand at(k) holds base+k,
// by binary lifting over k.
func (sv *solver) lift(at func(k int) int, base int) int {
	run := 0
	for i := sv.top; i >= 0; i-- {
		step := run + 1<<i
		if step <= sv.n-2 && sv.tree.At(at(step)) == base+step {
			run = step
		}
	}
	return run
}

// decrement lowers every strand in the ring interval [l, r] by one.
func (sv *solver) decrement(l, r int) {
	if l <= r {
		sv.tree.RangeAdd(l, r, -1)
		return
	}
	sv.tree.RangeAdd(l, sv.n-1, -1)
	sv.tree.RangeAdd(0, r, -1)
}
