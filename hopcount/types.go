package hopcount

import "errors"

// Sentinel errors for solver input.
var (
	// ErrInvalidStrandCount indicates n < 1.
	ErrInvalidStrandCount = errors.New("hopcount: strand count must be positive")

	// ErrInvalidFavorite indicates a favorite outside [0, n).
	ErrInvalidFavorite = errors.New("hopcount: favorite strand out of range")

	// ErrInvalidSpec indicates a bridge whose strand is outside [0, n).
	ErrInvalidSpec = errors.New("hopcount: bridge strand out of range")

	// ErrInvariantViolated indicates neighbouring counts more than one apart.
	ErrInvariantViolated = errors.New("hopcount: neighbouring counts differ by more than one")

	// ErrMalformedInput indicates contest input that cannot be parsed.
	ErrMalformedInput = errors.New("hopcount: malformed input")
)

// Spec is a bridge reduced to what the solver needs.
type Spec struct {
	Distance int
	Strand   int // initial strand; the bridge joins Strand and Strand+1 mod n
}

// Problem is one parsed contest instance.
type Problem struct {
	Strands  int
	Favorite int
	Specs    []Spec
}
