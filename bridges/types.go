package bridges

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/spiderweb/geom"
	"github.com/katalvlaran/spiderweb/topology"
)

// Sentinel errors for bridge placement and removal.
var (
	// ErrInvalidStrand is shared with topology so callers match a single value.
	ErrInvalidStrand = topology.ErrInvalidStrand

	// ErrInvalidDistance indicates a distance outside [0, radius].
	ErrInvalidDistance = errors.New("bridges: distance out of range")

	// ErrDuplicateColor indicates another bridge already uses the color.
	ErrDuplicateColor = errors.New("bridges: color already in use")

	// ErrConflictingBridge indicates a bridge at the same distance on a shared strand.
	ErrConflictingBridge = errors.New("bridges: conflicting bridge at the same distance")

	// ErrBridgeNotFound indicates no bridge matches the given color or ID.
	ErrBridgeNotFound = errors.New("bridges: bridge not found")

	// ErrFixedBridgeImmutable indicates an attempt to remove or move a Fixed bridge.
	ErrFixedBridgeImmutable = errors.New("bridges: fixed bridge cannot be removed")

	// ErrUnknownKind indicates a kind name that ParseKind does not recognize.
	ErrUnknownKind = errors.New("bridges: unknown bridge kind")
)

// ID is the opaque identity of a bridge within one Set.
type ID uint64

// String renders the handle as "b<n>".
func (id ID) String() string { return fmt.Sprintf("b%d", uint64(id)) }

// Kind selects the behavior a bridge exhibits when crossed or removed.
type Kind uint8

const (
	// Normal bridges have no effect.
	Normal Kind = iota
	// Fixed bridges refuse removal.
	Fixed
	// Weak bridges disappear after one crossing.
	Weak
	// Mobile bridges move outward after each crossing.
	Mobile
	// Transformer bridges hand the favorite marking to their initial strand when removed.
	Transformer
	// Funny bridges reshuffle every bridge in the web when crossed.
	Funny
)

var kindNames = [...]string{
	Normal:      "normal",
	Fixed:       "fixed",
	Weak:        "weak",
	Mobile:      "mobile",
	Transformer: "transformer",
	Funny:       "funny",
}

// Kinds lists every bridge kind in declaration order.
func Kinds() []Kind { return []Kind{Normal, Fixed, Weak, Mobile, Transformer, Funny} }

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a case-insensitive name back to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText lets kinds appear by name in YAML and flags.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText parses a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Bridge is one chord between strand Initial and strand Final.
type Bridge struct {
	ID       ID
	Color    string
	Distance int
	Initial  int
	Final    int
	Kind     Kind

	// From and To are the endpoints on Initial and Final respectively.
	From geom.Point
	To   geom.Point
}

// Touches reports whether the bridge has an endpoint on strand s.
func (b Bridge) Touches(s int) bool { return b.Initial == s || b.Final == s }

// Other returns the strand reached by crossing from s. A bridge entered from
// its final strand leads to its initial strand; anything else leads to Final.
func (b Bridge) Other(s int) int {
	if s == b.Final {
		return b.Initial
	}
	return b.Final
}

// Endpoints returns (departure, arrival) points when crossing from strand s.
func (b Bridge) Endpoints(s int) (geom.Point, geom.Point) {
	if s == b.Final {
		return b.To, b.From
	}
	return b.From, b.To
}

// Segment is the drawable form of the bridge.
func (b Bridge) Segment() geom.Segment { return geom.Segment{From: b.From, To: b.To} }

// ConflictsWith reports whether a bridge at distance d joining initial→final
// would collide with b.
func (b Bridge) ConflictsWith(d, initial, final int) bool {
	if b.Distance != d {
		return false
	}
	return b.Initial == initial ||
		b.Final == final ||
		b.Initial == final ||
		b.Final == initial
}

func (b Bridge) String() string {
	return fmt.Sprintf("Initial Strand: %d - Final Strand: %d - Distance: %d - Color: %s - Kind: %s",
		b.Initial, b.Final, b.Distance, b.Color, b.Kind)
}

// ColorFor builds the synthesized color "{strand}-{distance}" used for bridges
// created from bulk specs and for relocated bridges.
func ColorFor(strand, distance int) string {
	return fmt.Sprintf("%d-%d", strand, distance)
}
