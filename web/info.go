package web

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/geom"
)

// Snapshot is a read-only report of a web.
type Snapshot struct {
	Position geom.Point
	Strand   int
	Distance int
	Alive    bool
	Visible  bool
	Strands  int
	Radius   int
	Bridges  []bridges.Bridge
	Favorite int
}

// String renders the human-readable report.
func (s Snapshot) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The spider is at the point %s\n", s.Position)
	fmt.Fprintf(&sb, "The spider is at the strand %d\n", s.Strand)
	if !s.Alive {
		sb.WriteString("The spider is dead\n")
	}
	visibility := "invisible"
	if s.Visible {
		visibility = "visible"
	}
	fmt.Fprintf(&sb, "The spider web is %s\n", visibility)
	fmt.Fprintf(&sb, "The spider web has %d strands\n", s.Strands)
	fmt.Fprintf(&sb, "The spider web has a radius of %d\n", s.Radius)
	fmt.Fprintf(&sb, "The spider web has %d bridges\n", len(s.Bridges))
	for i, b := range s.Bridges {
		fmt.Fprintf(&sb, "    + Bridge %d: %s\n", i+1, b)
	}
	fmt.Fprintf(&sb, "    + Favorite Strand: (%d)\n", s.Favorite)
	return sb.String()
}

// Info returns a snapshot of the web.
func (w *Web) Info() Snapshot {
	a := w.eng.Agent()
	return Snapshot{
		Position: a.Position,
		Strand:   a.Strand,
		Distance: a.Distance,
		Alive:    a.Alive,
		Visible:  w.visible,
		Strands:  w.top.Count(),
		Radius:   w.top.Radius(),
		Bridges:  w.set.All(),
		Favorite: w.favorite,
	}
}

// PrintInfo sends the snapshot report to the diagnostics sink while visible.
func (w *Web) PrintInfo() {
	w.info("Spider web", w.Info().String())
	_ = w.finish(OpPrintInfo, nil)
}
