// File: set.go
// Role: Bridge lifecycle: Add/Remove/Relocate/Move/Reload/Reshuffle plus lookups
//       and the sorted views used by every traversal.
// Determinism:
//   - All() is insertion order; a remove-then-add appends at the end.
//   - Ascending()/Descending() are stable on distance.
//   - IDs are monotonic ("b1", "b2", ...) and never reused.

package bridges

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/spiderweb/topology"
)

// Set is the validated collection of bridges of one web.
// It is not safe for concurrent use.
type Set struct {
	top    *topology.Topology
	nextID uint64
	items  []Bridge // insertion order
}

// NewSet returns an empty Set validated against top.
// Complexity: O(1).
func NewSet(top *topology.Topology) *Set {
	return &Set{top: top}
}

// Topology returns the strand layout the Set validates against.
func (s *Set) Topology() *topology.Topology { return s.top }

// Len returns the number of bridges.
func (s *Set) Len() int { return len(s.items) }

// All returns a copy of the bridges in insertion order.
func (s *Set) All() []Bridge {
	out := make([]Bridge, len(s.items))
	copy(out, s.items)
	return out
}

// Ascending returns the bridges sorted by increasing distance; ties keep
// insertion order.
// Complexity: O(M log M).
func (s *Set) Ascending() []Bridge {
	out := s.All()
	SortAscending(out)
	return out
}

// Descending returns the bridges sorted by decreasing distance; ties keep
// insertion order.
// Complexity: O(M log M).
func (s *Set) Descending() []Bridge {
	out := s.All()
	SortDescending(out)
	return out
}

// SortAscending stable-sorts bs by increasing distance.
func SortAscending(bs []Bridge) {
	sort.SliceStable(bs, func(i, j int) bool { return bs[i].Distance < bs[j].Distance })
}

// SortDescending stable-sorts bs by decreasing distance.
func SortDescending(bs []Bridge) {
	sort.SliceStable(bs, func(i, j int) bool { return bs[i].Distance > bs[j].Distance })
}

// Get returns the bridge with the given ID.
func (s *Set) Get(id ID) (Bridge, bool) {
	if i := s.indexOfID(id); i >= 0 {
		return s.items[i], true
	}
	return Bridge{}, false
}

// FindByColor returns the bridge with the given color.
func (s *Set) FindByColor(color string) (Bridge, bool) {
	if i := s.indexOfColor(color); i >= 0 {
		return s.items[i], true
	}
	return Bridge{}, false
}

// Validate checks whether a bridge could be added, without adding it.
//
// Steps:
//  1. initial must address a strand.
//  2. distance must lie in [0, radius].
//  3. color must be unused.
//  4. no existing bridge may conflict at the same distance.
//
// Complexity: O(M).
func (s *Set) Validate(color string, distance, initial int) error {
	n := s.top.Count()
	if initial < 0 || initial >= n {
		return fmt.Errorf("%w: strand %d not in [0,%d)", ErrInvalidStrand, initial, n)
	}
	if r := s.top.Radius(); distance < 0 || distance > r {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrInvalidDistance, distance, r)
	}
	if s.indexOfColor(color) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateColor, color)
	}
	final := topology.Next(initial, n)
	for _, b := range s.items {
		if b.ConflictsWith(distance, initial, final) {
			return fmt.Errorf("%w: %q already at distance %d on strands %d-%d",
				ErrConflictingBridge, b.Color, distance, b.Initial, b.Final)
		}
	}
	return nil
}

// Add validates and appends a new bridge. An empty color falls back to
// ColorFor(initial, distance).
// Complexity: O(M).
func (s *Set) Add(color string, distance, initial int, kind Kind) (Bridge, error) {
	if color == "" {
		color = ColorFor(initial, distance)
	}
	if err := s.Validate(color, distance, initial); err != nil {
		return Bridge{}, err
	}
	s.nextID++
	b, err := s.place(Bridge{ID: ID(s.nextID), Color: color, Distance: distance, Initial: initial, Kind: kind})
	if err != nil {
		return Bridge{}, err
	}
	s.items = append(s.items, b)
	return b, nil
}

// Remove deletes the bridge with the given color. Fixed bridges are refused
// with ErrFixedBridgeImmutable and stay in place.
// Complexity: O(M).
func (s *Set) Remove(color string) (Bridge, error) {
	i := s.indexOfColor(color)
	if i < 0 {
		return Bridge{}, fmt.Errorf("%w: color %q", ErrBridgeNotFound, color)
	}
	return s.removeAt(i)
}

// RemoveID deletes the bridge with the given ID, with the same Fixed rule as Remove.
func (s *Set) RemoveID(id ID) (Bridge, error) {
	i := s.indexOfID(id)
	if i < 0 {
		return Bridge{}, fmt.Errorf("%w: id %s", ErrBridgeNotFound, id)
	}
	return s.removeAt(i)
}

// Relocate moves the bridge with the given color to a new distance. The
// bridge is re-added with the regenerated color ColorFor(initial, distance),
// its kind kept. On failure the original bridge is restored.
// Returns the removed original and the re-added bridge.
func (s *Set) Relocate(color string, distance int) (old, moved Bridge, err error) {
	i := s.indexOfColor(color)
	if i < 0 {
		return Bridge{}, Bridge{}, fmt.Errorf("%w: color %q", ErrBridgeNotFound, color)
	}
	old = s.items[i]
	moved, err = s.reinsert(i, ColorFor(old.Initial, distance), distance, old.Initial)
	return old, moved, err
}

// Move re-places the bridge with the given ID at a new distance and initial
// strand, keeping its ID, color and kind. On failure the original is restored.
func (s *Set) Move(id ID, distance, initial int) (Bridge, error) {
	i := s.indexOfID(id)
	if i < 0 {
		return Bridge{}, fmt.Errorf("%w: id %s", ErrBridgeNotFound, id)
	}
	return s.reinsert(i, s.items[i].Color, distance, initial)
}

// Reload re-validates every bridge against the current topology, in
// insertion order, keeping IDs, colors and kinds. Final strands and endpoints
// are recomputed. Bridges that no longer fit are dropped and returned.
// Complexity: O(M²).
func (s *Set) Reload() []Bridge {
	prev := s.items
	s.items = make([]Bridge, 0, len(prev))
	var dropped []Bridge
	for _, b := range prev {
		if err := s.Validate(b.Color, b.Distance, b.Initial); err != nil {
			dropped = append(dropped, b)
			continue
		}
		nb, err := s.place(b)
		if err != nil {
			dropped = append(dropped, b)
			continue
		}
		s.items = append(s.items, nb)
	}
	return dropped
}

// Clear removes every bridge, Fixed ones included. IDs are not reused.
func (s *Set) Clear() { s.items = s.items[:0] }

// reshuffleAttempts bounds the redraws for one bridge before it keeps its
// original placement.
const reshuffleAttempts = 32

// Reshuffle re-places every non-Fixed bridge on a random strand at a random
// distance derived from its old one: old·f with f ∈ [0.5,1.5), redrawn while
// the result is ≥ radius. Bridges keep ID, color and kind. A bridge whose
// draws all conflict keeps its original placement. Fixed bridges never move.
// Returns the bridges that actually moved, in processing order.
func (s *Set) Reshuffle(rng *rand.Rand) []Bridge {
	n, radius := s.top.Count(), s.top.Radius()
	snapshot := s.All()
	var moved []Bridge
	for _, b := range snapshot {
		if b.Kind == Fixed {
			continue
		}
		i := s.indexOfID(b.ID)
		if i < 0 {
			continue
		}
		for attempt := 0; attempt < reshuffleAttempts; attempt++ {
			initial := rng.Intn(n)
			distance := drawDistance(rng, b.Distance, radius)
			nb, err := s.reinsert(i, b.Color, distance, initial)
			if err == nil {
				moved = append(moved, nb)
				break
			}
			// reinsert restored the bridge at the same index
		}
	}
	return moved
}

// drawDistance returns ⌊old·f⌋ with f ∈ [0.5,1.5), redrawn while ≥ radius.
// After reshuffleAttempts failed draws it falls back to ⌊old/2⌋.
func drawDistance(rng *rand.Rand, old, radius int) int {
	for k := 0; k < reshuffleAttempts; k++ {
		d := int(float64(old) * (rng.Float64() + 0.5))
		if d < radius {
			return d
		}
	}
	return old / 2
}

// reinsert removes items[i] and tries to add it back with new placement
// parameters. The original is restored at index i on failure.
func (s *Set) reinsert(i int, color string, distance, initial int) (Bridge, error) {
	old := s.items[i]
	if old.Kind == Fixed {
		return Bridge{}, fmt.Errorf("%w: %q", ErrFixedBridgeImmutable, old.Color)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)

	err := s.Validate(color, distance, initial)
	var nb Bridge
	if err == nil {
		nb, err = s.place(Bridge{ID: old.ID, Color: color, Distance: distance, Initial: initial, Kind: old.Kind})
	}
	if err != nil {
		s.insertAt(i, old)
		return Bridge{}, err
	}
	s.items = append(s.items, nb)
	return nb, nil
}

// place fills in Final and endpoints for b from the topology.
func (s *Set) place(b Bridge) (Bridge, error) {
	b.Final = topology.Next(b.Initial, s.top.Count())
	from, err := s.top.PointAt(b.Initial, b.Distance)
	if err != nil {
		return Bridge{}, err
	}
	to, err := s.top.PointAt(b.Final, b.Distance)
	if err != nil {
		return Bridge{}, err
	}
	b.From, b.To = from, to
	return b, nil
}

func (s *Set) removeAt(i int) (Bridge, error) {
	b := s.items[i]
	if b.Kind == Fixed {
		return Bridge{}, fmt.Errorf("%w: %q", ErrFixedBridgeImmutable, b.Color)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return b, nil
}

func (s *Set) insertAt(i int, b Bridge) {
	s.items = append(s.items, Bridge{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = b
}

func (s *Set) indexOfColor(color string) int {
	for i, b := range s.items {
		if b.Color == color {
			return i
		}
	}
	return -1
}

func (s *Set) indexOfID(id ID) int {
	for i, b := range s.items {
		if b.ID == id {
			return i
		}
	}
	return -1
}
