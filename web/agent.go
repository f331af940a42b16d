package web

import (
	"log/slog"
	"slices"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/effect"
	"github.com/katalvlaran/spiderweb/topology"
	"github.com/katalvlaran/spiderweb/traversal"
)

// MoveAgentTo walks the agent from the center so that it ends on strand
// target. The last-action flag is true once the walk ran, even if the agent
// died on the way.
func (w *Web) MoveAgentTo(target int) error {
	_, err := w.eng.MoveTo(target)
	return w.finish(OpMoveTo, err)
}

// MoveAgentFrom walks the agent outward starting directly on strand start.
func (w *Web) MoveAgentFrom(start int) error {
	_, err := w.eng.MoveFrom(start)
	return w.finish(OpMoveFrom, err)
}

// MoveAgentToCenter walks the agent inward from its rim to the hub.
func (w *Web) MoveAgentToCenter() error {
	_, err := w.eng.MoveToCenter()
	return w.finish(OpMoveToCenter, err)
}

// SitAgentAtCenter teleports the agent to the hub without firing effects.
func (w *Web) SitAgentAtCenter() {
	if w.eng.State() == traversal.AtCenter {
		w.info("Spider", "The spider is already on the center")
	}
	w.eng.SitAtCenter()
	_ = w.finish(OpSitAtCenter, nil)
}

// KillAgent kills the agent where it stands.
func (w *Web) KillAgent() {
	w.eng.Kill()
	_ = w.finish(OpKill, nil)
}

// RespawnAgent revives the agent on the hub.
func (w *Web) RespawnAgent() {
	w.eng.Respawn()
	w.info("Spider", "The spider has been respawned")
	_ = w.finish(OpRespawn, nil)
}

func (w *Web) onHop(h traversal.Hop) {
	w.log.Debug("hop",
		slog.String("bridge", h.Bridge.Color),
		slog.Int("from", h.From),
		slog.Int("to", h.To),
		slog.Int("distance", h.Distance),
		slog.String("bridge_effect", h.BridgeEffect.String()),
		slog.String("strand_effect", h.StrandEffect.String()),
	)
	w.emit(Event{Type: EventHop, Hop: h, Bridge: h.Bridge})
}

func (w *Web) onStop(r traversal.Result) {
	w.log.Debug("walk finished", slog.Int("start", r.Start), slog.Int("end", r.End),
		slog.Int("hops", len(r.Hops)), slog.Bool("alive", r.Alive))
	if !r.Alive {
		w.log.Info("agent died", slog.Int("strand", r.End))
		w.emit(Event{Type: EventDeath})
	}
}

// host exposes the web to the traversal engine without widening Web's API.
type host struct{ w *Web }

func (h host) Topology() *topology.Topology { return h.w.top }
func (h host) Bridges() *bridges.Set        { return h.w.set }

// Apply carries out a bridge effect on the web.
func (h host) Apply(e effect.Effect, b bridges.Bridge) {
	w := h.w
	switch e.Op {
	case effect.RemoveSelf:
		if _, err := w.set.RemoveID(b.ID); err != nil {
			w.log.Debug("self removal skipped", slog.String("bridge", b.Color), slog.Any("err", err))
			return
		}
		w.onRemoved(b)

	case effect.RelocateSelf:
		d, s, ok := effect.Outward(b, e.Factor, w.top.Radius())
		if !ok {
			w.log.Debug("relocation beyond the rim skipped", slog.String("bridge", b.Color))
			return
		}
		if _, err := w.set.Move(b.ID, d, s); err != nil {
			w.log.Debug("relocation skipped", slog.String("bridge", b.Color), slog.Any("err", err))
			return
		}

	case effect.ReshuffleAll:
		before := w.set.All()
		moved := w.set.Reshuffle(w.rng)
		w.log.Debug("bridges reshuffled", slog.Int("moved", len(moved)))
		// every moved bridge was taken out and put back
		for _, m := range moved {
			if i := slices.IndexFunc(before, func(o bridges.Bridge) bool { return o.ID == m.ID }); i >= 0 {
				w.onRemoved(before[i])
			}
		}

	default:
		return
	}
	w.emit(Event{Type: EventEffect, Effect: e, Bridge: b})
}
