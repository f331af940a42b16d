// Package spiderweb simulates an agent walking a circular spider web: N
// radial strands of equal length joined by bridges between neighbouring
// strands, each bridge at some distance from the center.
//
// 🕸 What is spiderweb?
//
//	A small, deterministic simulation library plus the tools around it:
//		• Geometry: points, segments, ellipses, strand end points
//		• Topology: strands, neighbour relations, strand kinds
//		• Bridges: typed bridges, conflict rules, color index
//		• Traversal: outward/inward walks with bridge effects
//		• Hop counts: least bridges to add so a walk ends on the favorite strand
//		• Web: the facade tying it all to drawing, diagnostics and events
//
// A walk goes outward along its strand and crosses every bridge it meets,
// nearest first. Crossing a bridge fires its effect (weak bridges vanish,
// mobile ones move on, funny ones reshuffle the web) and arriving on a strand
// fires the strand's effect (killer strands end the walk, bouncy ones push
// the agent one strand on).
//
// Packages:
//
//	geom/        points, segments, ellipses, strand geometry
//	topology/    strand count, radius, kinds, next/prev
//	bridges/     Bridge, Kind, the conflict-checked Set
//	effect/      bridge and strand effects as explicit mutations
//	traversal/   the walk engine and pure FinalStrand/InitialStrand
//	fenwick/     range-add, point-query tree for the solver
//	hopcount/    the O((n+m) log n) hop-count solver and contest I/O
//	web/         the Web facade
//	diag/        diagnostics sinks (slog, writer, recorder)
//	render/      scene graph and tcell terminal painter
//	metrics/     Prometheus observer
//	config/      YAML scenarios and action scripts
//	puzzle/      bounded search for bridges that reach the favorite strand
//
// Quick example:
//
//	w, _ := web.FromSpecs(7, 5, []web.Spec{{Distance: 20, Strand: 0}})
//	_ = w.MoveAgentTo(5)
//	counts, _ := w.HopCounts()
//
// The command line tool lives in cmd/spiderweb:
//
//	go install github.com/katalvlaran/spiderweb/cmd/spiderweb@latest
package spiderweb
