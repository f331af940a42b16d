// File: options.go
// Role: functional options and deterministic defaults for a Web.
//
// Contract:
//   - Option constructors panic on meaningless inputs (nil collaborators,
//     negative limits). Web operations themselves never panic.
//   - Options apply in order; later ones override earlier ones.
//
// Defaults:
//   - diagnostics/renderer/observer: no-ops
//   - logger: discards everything
//   - rng: seeded with defaultRNGSeed
//   - center: DefaultCenter, invisible, no hop limit

package web

import (
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/spiderweb/geom"
)

// DefaultCenter is the hub position when WithCenter is not given.
var DefaultCenter = geom.Pt(300, 300)

// Option customizes a Web before its topology is built.
type Option func(*config)

type config struct {
	diag    Diagnostics
	render  Renderer
	obs     MultiObserver
	log     *slog.Logger
	rng     *rand.Rand
	id      uuid.UUID
	center  geom.Point
	visible bool
	maxHops int
}

func newConfig(opts ...Option) config {
	cfg := config{
		diag:   nopDiagnostics{},
		render: nopRenderer{},
		log:    slog.New(slog.DiscardHandler),
		center: DefaultCenter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	if cfg.id == uuid.Nil {
		cfg.id = uuid.New()
	}
	return cfg
}

// WithDiagnostics sets the report sink. Panics on nil.
func WithDiagnostics(d Diagnostics) Option {
	if d == nil {
		panic("web: WithDiagnostics(nil)")
	}
	return func(c *config) { c.diag = d }
}

// WithRenderer sets the draw sink. Panics on nil.
func WithRenderer(r Renderer) Option {
	if r == nil {
		panic("web: WithRenderer(nil)")
	}
	return func(c *config) { c.render = r }
}

// WithObserver adds an event observer; repeated calls fan out in order.
// Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("web: WithObserver(nil)")
	}
	return func(c *config) { c.obs = append(c.obs, o) }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("web: WithLogger(nil)")
	}
	return func(c *config) { c.log = l }
}

// WithRand sets the RNG used by Funny reshuffles. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("web: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds the reshuffle RNG; seed 0 maps to the default seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithID fixes the web id used to namespace render owners.
func WithID(id uuid.UUID) Option {
	return func(c *config) { c.id = id }
}

// WithCenter moves the hub.
func WithCenter(p geom.Point) Option {
	return func(c *config) { c.center = p }
}

// WithVisible starts the web visible.
func WithVisible(v bool) Option {
	return func(c *config) { c.visible = v }
}

// WithMaxHops bounds every walk; 0 means no limit. Panics on n < 0.
func WithMaxHops(n int) Option {
	if n < 0 {
		panic("web: WithMaxHops(negative)")
	}
	return func(c *config) { c.maxHops = n }
}

type nopDiagnostics struct{}

func (nopDiagnostics) ReportError(string, string) {}
func (nopDiagnostics) ReportInfo(string, string)  {}
func (nopDiagnostics) ReportFatal(string)         {}

type nopRenderer struct{}

func (nopRenderer) Draw(string, string, geom.Shape) {}
func (nopRenderer) Erase(string)                    {}
