package topology

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spiderweb/geom"
)

// Topology holds the strand layout of a web.
type Topology struct {
	center  geom.Point
	radius  int
	strands []Strand
}

// New builds a Topology with strandCount strands of the given radius.
// Returns ErrInvalidStrandCount or ErrInvalidRadius on bad sizes.
// Complexity: O(N).
func New(strandCount, radius int, opts ...Option) (*Topology, error) {
	t := &Topology{center: geom.Origin}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.Resize(strandCount, radius); err != nil {
		return nil, err
	}
	return t, nil
}

// Generate lays out strandCount strands around center. Strand i ends at
// angle 2π·i/strandCount on a circle of the given radius.
func Generate(center geom.Point, strandCount, radius int) []Strand {
	strands := make([]Strand, strandCount)
	for i := range strands {
		angle := 2 * math.Pi * float64(i) / float64(strandCount)
		strands[i] = Strand{
			Index: i,
			Start: center,
			End:   geom.Polar(center, float64(radius), angle),
			Color: DefaultColor,
			Kind:  Normal,
		}
	}
	return strands
}

// Resize regenerates every strand. Customizations are lost.
func (t *Topology) Resize(strandCount, radius int) error {
	if strandCount < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidStrandCount, strandCount)
	}
	if radius < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}
	t.radius = radius
	t.strands = Generate(t.center, strandCount, radius)
	return nil
}

// Count returns the number of strands.
func (t *Topology) Count() int { return len(t.strands) }

// Radius returns the strand length.
func (t *Topology) Radius() int { return t.radius }

// Center returns the point all strands start from.
func (t *Topology) Center() geom.Point { return t.center }

// Valid reports whether i addresses a real strand.
func (t *Topology) Valid(i int) bool { return i >= 0 && i < len(t.strands) }

// Strand returns a copy of strand i.
func (t *Topology) Strand(i int) (Strand, error) {
	if !t.Valid(i) {
		return Strand{}, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidStrand, i, len(t.strands))
	}
	return t.strands[i], nil
}

// Strands returns a copy of all strands in index order.
func (t *Topology) Strands() []Strand {
	out := make([]Strand, len(t.strands))
	copy(out, t.strands)
	return out
}

// SetKind changes the kind and color of strand i. An empty color keeps the
// current one.
func (t *Topology) SetKind(i int, color string, kind Kind) error {
	if !t.Valid(i) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidStrand, i, len(t.strands))
	}
	if color != "" {
		t.strands[i].Color = color
	}
	t.strands[i].Kind = kind
	return nil
}

// Reset restores strand i to a Normal strand with DefaultColor.
func (t *Topology) Reset(i int) error {
	return t.SetKind(i, DefaultColor, Normal)
}

// ScaledPoint returns the point at fraction scale along strand i, from the
// center (0) to the rim (1).
func (t *Topology) ScaledPoint(i int, scale float64) (geom.Point, error) {
	if !t.Valid(i) {
		return geom.Point{}, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidStrand, i, len(t.strands))
	}
	if scale < 0 || scale > 1 || math.IsNaN(scale) {
		return geom.Point{}, fmt.Errorf("%w: got %g", ErrInvalidScale, scale)
	}
	s := t.strands[i]
	return geom.Lerp(s.Start, s.End, scale), nil
}

// PointAt returns the point on strand i at the given distance from the center.
func (t *Topology) PointAt(i, distance int) (geom.Point, error) {
	return t.ScaledPoint(i, float64(distance)/float64(t.radius))
}

// Rim returns the rim endpoint of strand i.
func (t *Topology) Rim(i int) (geom.Point, error) {
	return t.ScaledPoint(i, 1)
}
