package web

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/spiderweb/geom"
)

const (
	agentSize       = 10
	agentColor      = "black"
	deadAgentColor  = "gray"
	traceColor      = "red"
	ownerStrand     = "strand"
	ownerBridge     = "bridge"
	ownerAgent      = "agent"
	ownerTraceShape = "trace"
)

// owner builds the render owner id "<web>/<kind>/<key>".
func (w *Web) owner(kind string, key any) string {
	return fmt.Sprintf("%s/%s/%v", w.id, kind, key)
}

// redraw sends the current frame to the renderer and erases every owner that
// is no longer part of it. An invisible web draws nothing, so everything
// drawn before is erased.
func (w *Web) redraw() {
	frame := make(map[string]struct{})
	draw := func(owner, color string, shape geom.Shape) {
		w.render.Draw(owner, color, shape)
		frame[owner] = struct{}{}
	}

	if w.visible {
		for _, s := range w.top.Strands() {
			draw(w.owner(ownerStrand, s.Index), s.Color, geom.Segment{From: s.Start, To: s.End})
		}
		for _, b := range w.set.All() {
			draw(w.owner(ownerBridge, b.ID), b.Color, b.Segment())
		}
		a := w.eng.Agent()
		for i, seg := range a.Trace {
			draw(w.owner(ownerTraceShape, i), traceColor, seg)
		}
		color := agentColor
		if !a.Alive {
			color = deadAgentColor
		}
		draw(w.id.String()+"/"+ownerAgent, color, geom.Ellipse{Center: a.Position, Width: agentSize, Height: agentSize})
	}

	for _, owner := range slices.Sorted(maps.Keys(w.drawn)) {
		if _, keep := frame[owner]; !keep {
			w.render.Erase(owner)
		}
	}
	w.drawn = frame
}
