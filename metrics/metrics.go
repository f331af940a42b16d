// Package metrics exports web activity as Prometheus metrics. A Registry is a
// web.Observer; attach it with web.WithObserver.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/spiderweb/web"
)

const namespace = "spiderweb"

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Registry owns the collectors for one or more webs.
type Registry struct {
	registry *prometheus.Registry

	ActionsTotal *prometheus.CounterVec
	EffectsTotal *prometheus.CounterVec
	HopsTotal    prometheus.Counter
	WalkHops     prometheus.Histogram
	DeathsTotal  prometheus.Counter
	Bridges      prometheus.Gauge

	pending int // hops seen since the last finished walk
}

// NewRegistry creates a Registry backed by a fresh prometheus.Registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.ActionsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Public web operations by name and outcome",
		},
		[]string{"op", "outcome"},
	)
	r.EffectsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "effects_total",
			Help:      "Bridge effects that changed the web",
		},
		[]string{"effect"},
	)
	r.HopsTotal = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hops_total",
		Help:      "Bridges crossed by the agent",
	})
	r.WalkHops = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "walk_hops",
		Help:      "Bridges crossed per walk",
		Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64, 128},
	})
	r.DeathsTotal = f.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deaths_total",
		Help:      "Walks that killed the agent",
	})
	r.Bridges = f.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "bridges",
		Help:      "Bridges in the web after the last event",
	})
	return r
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

// OnEvent implements web.Observer.
func (r *Registry) OnEvent(e web.Event) {
	r.Bridges.Set(float64(e.Bridges))
	switch e.Type {
	case web.EventHop:
		r.HopsTotal.Inc()
		r.pending++
	case web.EventEffect:
		r.EffectsTotal.WithLabelValues(e.Effect.Op.String()).Inc()
	case web.EventDeath:
		r.DeathsTotal.Inc()
	case web.EventAction:
		outcome := OutcomeOK
		if e.Err != nil {
			outcome = OutcomeError
		}
		r.ActionsTotal.WithLabelValues(e.Op, outcome).Inc()
		if isWalk(e.Op) && e.Err == nil {
			r.WalkHops.Observe(float64(r.pending))
		}
		r.pending = 0
	}
}

func isWalk(op string) bool {
	switch op {
	case web.OpMoveTo, web.OpMoveFrom, web.OpMoveToCenter:
		return true
	}
	return false
}

// WriteText writes every metric in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
