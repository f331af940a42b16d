package web

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/hopcount"
	"github.com/katalvlaran/spiderweb/topology"
	"github.com/katalvlaran/spiderweb/traversal"
)

// strandStyle is a strand customization that survives regeneration.
type strandStyle struct {
	color string
	kind  topology.Kind
}

// Web is a spider web with its single agent. It is not safe for concurrent use.
type Web struct {
	id       uuid.UUID
	top      *topology.Topology
	set      *bridges.Set
	eng      *traversal.Engine
	favorite int
	styles   map[int]strandStyle
	visible  bool
	lastOK   bool

	diag   Diagnostics
	render Renderer
	obs    MultiObserver
	log    *slog.Logger
	rng    *rand.Rand
	drawn  map[string]struct{} // owners currently on the renderer
}

// New builds an empty web of strandCount strands with the given radius.
// Returns topology.ErrInvalidStrandCount or topology.ErrInvalidRadius.
func New(strandCount, radius int, opts ...Option) (*Web, error) {
	cfg := newConfig(opts...)
	top, err := topology.New(strandCount, radius, topology.WithCenter(cfg.center))
	if err != nil {
		return nil, err
	}
	w := &Web{
		id:       cfg.id,
		top:      top,
		set:      bridges.NewSet(top),
		favorite: NoFavorite,
		styles:   make(map[int]strandStyle),
		visible:  cfg.visible,
		lastOK:   true,
		diag:     cfg.diag,
		render:   cfg.render,
		obs:      cfg.obs,
		rng:      cfg.rng,
		drawn:    make(map[string]struct{}),
	}
	w.log = cfg.log.With(slog.String("web", w.id.String()))

	w.eng, err = traversal.New(host{w},
		traversal.WithMaxHops(cfg.maxHops),
		traversal.WithOnHop(w.onHop),
		traversal.WithOnStop(w.onStop),
	)
	if err != nil {
		return nil, err
	}
	w.log.Info("web created", slog.Int("strands", strandCount), slog.Int("radius", radius))
	w.redraw()
	return w, nil
}

// FromSpecs builds a web from bulk bridge specs. The radius is the largest
// distance plus RadiusPadding; bridge colors are "{strand}-{distance}".
// favorite may be NoFavorite.
//
// A spec with a strand outside [0, strandCount) or a distance outside
// [1, MaxDistance], an invalid favorite, or a non-positive strand count is
// fatal: it is reported through Diagnostics.ReportFatal and the call
// returns ErrFatalConstructionInput with no web. Specs that conflict with an
// earlier one are reported and skipped.
func FromSpecs(strandCount, favorite int, specs []Spec, opts ...Option) (*Web, error) {
	cfg := newConfig(opts...)
	fatal := func(format string, args ...any) (*Web, error) {
		msg := fmt.Sprintf(format, args...)
		cfg.diag.ReportFatal(msg)
		return nil, fmt.Errorf("%w: %s", ErrFatalConstructionInput, msg)
	}

	if strandCount < 1 {
		return fatal("strand count %d must be positive", strandCount)
	}
	maxDistance := 0
	for i, s := range specs {
		if s.Strand < 0 || s.Strand >= strandCount {
			return fatal("bridge %d must be built on a valid strand, got %d", i+1, s.Strand)
		}
		if s.Distance < 1 || s.Distance > MaxDistance {
			return fatal("bridge %d has invalid distance %d", i+1, s.Distance)
		}
		maxDistance = max(maxDistance, s.Distance)
	}
	if favorite != NoFavorite && (favorite < 0 || favorite >= strandCount) {
		return fatal("favorite strand %d out of range", favorite)
	}

	w, err := New(strandCount, maxDistance+RadiusPadding, opts...)
	if err != nil {
		return fatal("%v", err)
	}
	ok := true
	if favorite != NoFavorite {
		ok = w.SetFavoriteStrand(favorite, FavoriteColor, topology.Normal) == nil
	}
	for _, s := range specs {
		if err := w.AddBridge(bridges.ColorFor(s.Strand, s.Distance), s.Distance, s.Strand, bridges.Normal); err != nil {
			ok = false
		}
	}
	w.lastOK = ok
	return w, nil
}

// ID returns the web id that prefixes every render owner.
func (w *Web) ID() uuid.UUID { return w.id }

// StrandCount returns N.
func (w *Web) StrandCount() int { return w.top.Count() }

// Radius returns the strand length.
func (w *Web) Radius() int { return w.top.Radius() }

// Strands returns a copy of the strands in index order.
func (w *Web) Strands() []topology.Strand { return w.top.Strands() }

// Bridges returns a copy of the bridges in insertion order.
func (w *Web) Bridges() []bridges.Bridge { return w.set.All() }

// Bridge returns the bridge with the given color.
func (w *Web) Bridge(color string) (bridges.Bridge, bool) { return w.set.FindByColor(color) }

// UsedBridges returns the bridges crossed by the last walk.
func (w *Web) UsedBridges() []bridges.Bridge { return w.eng.Used() }

// Agent returns a snapshot of the agent.
func (w *Web) Agent() traversal.Agent { return w.eng.Agent() }

// CurrentStrand returns the agent's strand, -1 at the center.
func (w *Web) CurrentStrand() int { return w.eng.Agent().Strand }

// CurrentDistance returns the agent's distance from the center.
func (w *Web) CurrentDistance() int { return w.eng.Agent().Distance }

// FavoriteStrand returns the favorite strand or NoFavorite.
func (w *Web) FavoriteStrand() int { return w.favorite }

// LastActionOK reports whether the last public operation succeeded.
func (w *Web) LastActionOK() bool { return w.lastOK }

// Visible reports whether the web is drawn and reports are shown.
func (w *Web) Visible() bool { return w.visible }

// Specs returns the bridges as (distance, initial strand) pairs in insertion order.
func (w *Web) Specs() []Spec {
	all := w.set.All()
	out := make([]Spec, len(all))
	for i, b := range all {
		out[i] = Spec{Distance: b.Distance, Strand: b.Initial}
	}
	return out
}

// HopCounts runs the hop-count solver on this web's bridges and favorite.
// Returns ErrNoFavorite when no favorite strand is set.
func (w *Web) HopCounts() ([]int, error) {
	if w.favorite == NoFavorite {
		return nil, ErrNoFavorite
	}
	return hopcount.Solve(w.top.Count(), w.favorite, w.Specs())
}
