package puzzle

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/hopcount"
	"github.com/katalvlaran/spiderweb/topology"
	"github.com/katalvlaran/spiderweb/traversal"
	"github.com/katalvlaran/spiderweb/web"
)

// Search returns bridges, as (distance, initial strand) pairs in insertion
// order, whose addition to the web described by n, favorite and specs makes
// an outward walk from start end on favorite. The web radius is the largest
// spec distance plus web.RadiusPadding. An empty result means the walk
// already ends there.
func Search(n, favorite int, specs []hopcount.Spec, start int, opts ...Option) ([]hopcount.Spec, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	counts, err := hopcount.Solve(n, favorite, specs)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidStart, start, n)
	}

	radius := web.RadiusPadding
	for _, sp := range specs {
		radius = max(radius, sp.Distance+web.RadiusPadding)
	}
	top, err := topology.New(n, radius)
	if err != nil {
		return nil, err
	}
	set := bridges.NewSet(top)
	for _, sp := range specs {
		if _, err := set.Add("", sp.Distance, sp.Strand, bridges.Normal); err != nil {
			return nil, fmt.Errorf("%w: %v", hopcount.ErrInvalidSpec, err)
		}
	}

	s := &searcher{o: o, set: set, start: start, target: favorite}
	found, err := s.dfs(counts[start], nil)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %d bridges from strand %d", ErrNoSolution, counts[start], start)
	}
	return found, nil
}

type searcher struct {
	o             Options
	set           *bridges.Set
	start, target int
	nodes         int
}

// dfs adds depth more bridges and reports the first path whose walk ends on
// the target. A nil path with nil error means this branch has no solution.
func (s *searcher) dfs(depth int, path []hopcount.Spec) ([]hopcount.Spec, error) {
	if err := s.o.Ctx.Err(); err != nil {
		return nil, err
	}
	s.nodes++
	if s.nodes > s.o.MaxNodes {
		return nil, fmt.Errorf("%w: %d", ErrNodeLimit, s.o.MaxNodes)
	}
	if depth == 0 {
		if traversal.FinalStrand(s.start, s.set.All()) == s.target {
			return append([]hopcount.Spec{}, path...), nil
		}
		return nil, nil
	}

	for _, c := range s.candidates() {
		b, err := s.set.Add("", c.Distance, c.Strand, bridges.Normal)
		if err != nil {
			continue
		}
		found, err := s.dfs(depth-1, append(path, c))
		_, _ = s.set.RemoveID(b.ID)
		if err != nil || found != nil {
			return found, err
		}
	}
	return nil, nil
}

// candidates lists placements for the next bridge, without duplicates.
// Placements that turn out invalid are skipped by the caller.
func (s *searcher) candidates() []hopcount.Spec {
	top := s.set.Topology()
	n, radius, gap := top.Count(), top.Radius(), s.o.Gap
	all := s.set.All()

	var out []hopcount.Spec
	if !slices.ContainsFunc(all, func(b bridges.Bridge) bool { return b.Touches(s.target) }) {
		out = append(out,
			hopcount.Spec{Distance: radius - gap, Strand: topology.Prev(s.target, n)},
			hopcount.Spec{Distance: radius - 2*gap, Strand: s.target},
		)
	}
	for _, b := range all {
		for _, strand := range [...]int{b.Initial, topology.Prev(b.Initial, n), b.Final} {
			out = append(out,
				hopcount.Spec{Distance: b.Distance - gap, Strand: strand},
				hopcount.Spec{Distance: b.Distance + gap, Strand: strand},
			)
		}
	}

	seen := make(map[hopcount.Spec]struct{}, len(out))
	uniq := out[:0]
	for _, c := range out {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		uniq = append(uniq, c)
	}
	return uniq
}

// Simulate builds the web with web.FromSpecs, searches for the missing
// bridges, adds them and walks the agent outward from start. The returned
// bridges are the ones added.
func Simulate(n, favorite int, specs []hopcount.Spec, start int, webOpts []web.Option, opts ...Option) (*web.Web, []hopcount.Spec, error) {
	found, err := Search(n, favorite, specs, start, opts...)
	if err != nil {
		return nil, nil, err
	}
	w, err := web.FromSpecs(n, favorite, specs, webOpts...)
	if err != nil {
		return nil, nil, err
	}
	for _, sp := range found {
		if err := w.AddBridge(bridges.ColorFor(sp.Strand, sp.Distance), sp.Distance, sp.Strand, bridges.Normal); err != nil {
			return nil, nil, err
		}
	}
	if err := w.MoveAgentFrom(start); err != nil {
		return nil, nil, err
	}
	return w, found, nil
}
