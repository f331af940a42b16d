package web

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/effect"
	"github.com/katalvlaran/spiderweb/topology"
)

// finish records the outcome of a public operation: it sets the last-action
// flag, reports failures while visible, logs, notifies observers and redraws.
// err is returned unchanged.
func (w *Web) finish(op string, err error) error {
	w.lastOK = err == nil
	if err != nil {
		if w.visible {
			w.diag.ReportError(titleFor(err), err.Error())
		}
		w.log.Warn("operation failed", slog.String("op", op), slog.Any("err", err))
	} else {
		w.log.Debug("operation done", slog.String("op", op))
	}
	w.emit(Event{Type: EventAction, Op: op, Err: err})
	w.redraw()
	return err
}

// info sends an informational report while visible.
func (w *Web) info(title, msg string) {
	if w.visible {
		w.diag.ReportInfo(title, msg)
	}
}

func (w *Web) emit(e Event) {
	e.Bridges = w.set.Len()
	w.obs.OnEvent(e)
}

// titleFor picks the report title for an error kind.
func titleFor(err error) string {
	switch {
	case errors.Is(err, ErrInvalidStrand):
		return "Invalid strand"
	case errors.Is(err, ErrInvalidDistance):
		return "Invalid distance"
	case errors.Is(err, ErrDuplicateColor):
		return "The bridge already exists"
	case errors.Is(err, ErrConflictingBridge):
		return "Bridge in conflict"
	case errors.Is(err, ErrBridgeNotFound):
		return "Bridge not found"
	case errors.Is(err, ErrFixedBridgeImmutable):
		return "Fixed bridge"
	case errors.Is(err, ErrFavoriteStrandOutOfRange):
		return "Favorite strand out of range"
	case errors.Is(err, ErrFavoriteAlreadySet):
		return "The new favorite strand cannot be added"
	case errors.Is(err, ErrNoFavorite):
		return "Favorite strand not found"
	case errors.Is(err, ErrAgentDead):
		return "The spider is dead"
	case errors.Is(err, ErrNotAtCenter):
		return "The spider isn't on the center"
	case errors.Is(err, ErrAlreadyAtCenter):
		return "The spider is already on the center"
	case errors.Is(err, ErrHopLimit):
		return "Walk aborted"
	}
	return "Error"
}

// AddBridge adds a bridge of the given kind. An empty color falls back to
// "{initial}-{distance}".
func (w *Web) AddBridge(color string, distance, initial int, kind bridges.Kind) error {
	_, err := w.set.Add(color, distance, initial, kind)
	return w.finish(OpAddBridge, err)
}

// RemoveBridge removes the bridge with the given color. Fixed bridges are
// refused. Removing a Transformer bridge moves the favorite marking to the
// bridge's initial strand.
func (w *Web) RemoveBridge(color string) error {
	_, err := w.removeBridge(color)
	return w.finish(OpRemoveBridge, err)
}

func (w *Web) removeBridge(color string) (bridges.Bridge, error) {
	b, err := w.set.Remove(color)
	if err != nil {
		return bridges.Bridge{}, err
	}
	w.onRemoved(b)
	return b, nil
}

// onRemoved fires the removal effect of b.
func (w *Web) onRemoved(b bridges.Bridge) {
	if e := effect.RemovalEffect(b.Kind); e.Is(effect.ReassignFavorite) {
		w.reassignFavorite(b.Initial)
		w.emit(Event{Type: EventEffect, Effect: e, Bridge: b})
	}
}

// reassignFavorite clears the current favorite, if any, and marks strand s.
func (w *Web) reassignFavorite(s int) {
	if w.favorite != NoFavorite {
		w.clearFavorite()
	}
	if err := w.setFavorite(s, FavoriteColor, topology.Normal); err != nil {
		w.log.Warn("favorite reassignment failed", slog.Int("strand", s), slog.Any("err", err))
		return
	}
	w.log.Debug("favorite reassigned", slog.Int("strand", s))
}

// RelocateBridge moves the bridge with the given color to a new distance.
// The bridge is renamed "{initial}-{distance}" and keeps its kind; on
// failure the original stays in place. A relocation counts as a removal,
// so a Transformer bridge hands the favorite to its initial strand.
func (w *Web) RelocateBridge(color string, distance int) error {
	old, _, err := w.set.Relocate(color, distance)
	if err == nil {
		w.onRemoved(old)
	}
	return w.finish(OpRelocateBridge, err)
}

// AddStrand grows the web by one strand. Strand customizations, the
// favorite and every bridge are re-applied to the new layout; bridges that
// no longer fit are reported and dropped.
func (w *Web) AddStrand() error {
	return w.finish(OpAddStrand, w.regenerate(w.top.Count()+1, w.top.Radius()))
}

// ExpandRadius lengthens every strand by delta ∈ [0, MaxDistance].
func (w *Web) ExpandRadius(delta int) error {
	if delta < 0 || delta > MaxDistance {
		return w.finish(OpExpandRadius, fmt.Errorf("%w: radius growth %d not in [0,%d]", ErrInvalidDistance, delta, MaxDistance))
	}
	return w.finish(OpExpandRadius, w.regenerate(w.top.Count(), w.top.Radius()+delta))
}

func (w *Web) regenerate(n, radius int) error {
	if err := w.top.Resize(n, radius); err != nil {
		return err
	}
	for i, st := range w.styles {
		_ = w.top.SetKind(i, st.color, st.kind)
	}
	for _, b := range w.set.Reload() {
		w.log.Warn("bridge dropped on regeneration", slog.String("bridge", b.Color))
		if w.visible {
			w.diag.ReportError("Bridge dropped", b.String())
		}
	}
	w.eng.Resync()
	return nil
}

// SetFavoriteStrand marks strand s as the favorite with the given color and
// kind. Fails with ErrFavoriteStrandOutOfRange or, when a favorite already
// exists, ErrFavoriteAlreadySet.
func (w *Web) SetFavoriteStrand(s int, color string, kind topology.Kind) error {
	return w.finish(OpSetFavorite, w.setFavorite(s, color, kind))
}

func (w *Web) setFavorite(s int, color string, kind topology.Kind) error {
	if !w.top.Valid(s) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrFavoriteStrandOutOfRange, s, w.top.Count())
	}
	if w.favorite == s {
		return fmt.Errorf("%w: %d is already the favorite", ErrFavoriteAlreadySet, s)
	}
	if w.favorite != NoFavorite {
		return fmt.Errorf("%w: clear favorite %d first", ErrFavoriteAlreadySet, w.favorite)
	}
	if color == "" {
		color = FavoriteColor
	}
	if err := w.styleStrand(s, color, kind); err != nil {
		return err
	}
	w.favorite = s
	return nil
}

// ClearFavoriteStrand restores the favorite strand to a plain strand.
// Fails with ErrNoFavorite when none is set.
func (w *Web) ClearFavoriteStrand() error {
	if w.favorite == NoFavorite {
		return w.finish(OpClearFavorite, ErrNoFavorite)
	}
	w.clearFavorite()
	w.info("Favorite strand", "The favorite strand was deleted")
	return w.finish(OpClearFavorite, nil)
}

func (w *Web) clearFavorite() {
	delete(w.styles, w.favorite)
	_ = w.top.Reset(w.favorite)
	w.favorite = NoFavorite
}

// SetStrandKind changes the color and kind of any strand without touching
// the favorite marking. An empty color keeps the current one.
func (w *Web) SetStrandKind(s int, color string, kind topology.Kind) error {
	return w.finish(OpSetStrandKind, w.styleStrand(s, color, kind))
}

func (w *Web) styleStrand(s int, color string, kind topology.Kind) error {
	if err := w.top.SetKind(s, color, kind); err != nil {
		return err
	}
	st, _ := w.top.Strand(s)
	w.styles[s] = strandStyle{color: st.Color, kind: st.Kind}
	return nil
}

// MakeVisible turns drawing and reports on.
func (w *Web) MakeVisible() {
	w.visible = true
	_ = w.finish(OpMakeVisible, nil)
}

// MakeInvisible erases everything and silences error and info reports.
func (w *Web) MakeInvisible() {
	w.visible = false
	_ = w.finish(OpMakeInvisible, nil)
}

// ResetUsedBridges clears the used-bridge history.
func (w *Web) ResetUsedBridges() {
	w.eng.ResetUsed()
	_ = w.finish(OpResetUsed, nil)
}
