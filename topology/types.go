package topology

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/spiderweb/geom"
)

// Sentinel errors for topology operations.
var (
	// ErrInvalidStrand indicates a strand index outside [0, N).
	ErrInvalidStrand = errors.New("topology: strand index out of range")

	// ErrInvalidScale indicates an interpolation factor outside [0, 1].
	ErrInvalidScale = errors.New("topology: scale must be within [0,1]")

	// ErrInvalidStrandCount indicates a web with fewer than one strand.
	ErrInvalidStrandCount = errors.New("topology: strand count must be positive")

	// ErrInvalidRadius indicates a non-positive radius.
	ErrInvalidRadius = errors.New("topology: radius must be positive")

	// ErrUnknownKind indicates a kind name that ParseKind does not recognize.
	ErrUnknownKind = errors.New("topology: unknown strand kind")
)

// DefaultColor is the display color of an uncustomized strand.
const DefaultColor = "gray"

// Kind selects the behavior a strand exhibits when the agent arrives on it.
type Kind uint8

const (
	// Normal strands have no effect.
	Normal Kind = iota
	// Killer strands kill the agent on arrival.
	Killer
	// Bouncy strands redirect the agent to the next strand.
	Bouncy
)

var kindNames = [...]string{Normal: "normal", Killer: "killer", Bouncy: "bouncy"}

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

// Strand is one radial spoke.
//
// Start is always the web center; End lies on the rim.
type Strand struct {
	Index int
	Start geom.Point
	End   geom.Point
	Color string
	Kind  Kind
}

// Next returns the strand following i on a web of n strands.
func Next(i, n int) int { return (i + 1) % n }

// Prev returns the strand preceding i on a web of n strands.
func Prev(i, n int) int { return (i - 1 + n) % n }

// Option configures a Topology at construction time.
type Option func(*Topology)

// WithCenter places the web center somewhere other than geom.Origin.
func WithCenter(c geom.Point) Option {
	return func(t *Topology) { t.center = c }
}
