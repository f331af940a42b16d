// Package render turns the draw requests of a web into pictures.
//
// Scene is a retained-mode web.Renderer: it keeps the latest shape per owner
// and forgets erased owners. Paint rasterizes a Scene onto a tcell.Screen.
package render

import (
	"slices"
	"strings"
	"sync"

	"github.com/katalvlaran/spiderweb/geom"
)

// Item is one drawn shape.
type Item struct {
	Owner string
	Color string
	Shape geom.Shape
}

// Layer orders items for painting; higher layers paint over lower ones.
type Layer int

const (
	LayerStrand Layer = iota
	LayerBridge
	LayerTrace
	LayerAgent
	LayerOther
)

// LayerOf derives the layer from an owner id "<web>/<kind>[/<key>]".
func LayerOf(owner string) Layer {
	parts := strings.SplitN(owner, "/", 3)
	if len(parts) < 2 {
		return LayerOther
	}
	switch parts[1] {
	case "strand":
		return LayerStrand
	case "bridge":
		return LayerBridge
	case "trace":
		return LayerTrace
	case "agent":
		return LayerAgent
	}
	return LayerOther
}

// Scene holds the current frame. Safe for concurrent use.
type Scene struct {
	mu    sync.RWMutex
	items map[string]Item
}

// NewScene returns an empty Scene.
func NewScene() *Scene {
	return &Scene{items: make(map[string]Item)}
}

// Draw implements web.Renderer.
func (s *Scene) Draw(owner, color string, shape geom.Shape) {
	s.mu.Lock()
	s.items[owner] = Item{Owner: owner, Color: color, Shape: shape}
	s.mu.Unlock()
}

// Erase implements web.Renderer.
func (s *Scene) Erase(owner string) {
	s.mu.Lock()
	delete(s.items, owner)
	s.mu.Unlock()
}

// Len returns the number of live owners.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the item drawn by owner.
func (s *Scene) Get(owner string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[owner]
	return it, ok
}

// Items returns the live items in paint order: by layer, then by owner.
func (s *Scene) Items() []Item {
	s.mu.RLock()
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b Item) int {
		if la, lb := LayerOf(a.Owner), LayerOf(b.Owner); la != lb {
			return int(la) - int(lb)
		}
		return strings.Compare(a.Owner, b.Owner)
	})
	return out
}

// Bounds returns the bounding box of every live item. ok is false for an
// empty scene.
func (s *Scene) Bounds() (lo, hi geom.Point, ok bool) {
	for i, it := range s.Items() {
		a, b := it.Shape.Bounds()
		if i == 0 {
			lo, hi = a, b
			continue
		}
		lo = geom.Pt(min(lo.X, a.X), min(lo.Y, a.Y))
		hi = geom.Pt(max(hi.X, b.X), max(hi.Y, b.Y))
	}
	return lo, hi, s.Len() > 0
}
