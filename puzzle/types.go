// Package puzzle searches for bridges to add to a web so that an outward
// walk from a chosen strand ends on the favorite strand.
//
// What:
//
//   - Search runs a depth-first search whose depth is the hop count the
//     hopcount solver reports for the start strand. Candidates are placed Gap
//     units around existing bridges (on their strand pair and both neighbour
//     pairs) plus, when no bridge touches the favorite, two bridges just
//     inside the rim next to it.
//   - Leaves are checked with traversal.FinalStrand; the first match wins.
//   - Simulate builds the web, adds the found bridges and walks the agent
//     from the start strand.
//
// The search is exponential in the depth; it is bounded by MaxNodes and by
// context cancellation.
//
// Errors:
//
//   - ErrInvalidStart: start strand outside [0, N).
//   - ErrNoSolution: the search space was exhausted.
//   - ErrNodeLimit: MaxNodes expansions were spent.
//   - ErrOptionViolation: invalid option values.
//   - hopcount errors for malformed instances; ctx.Err() on cancellation.
package puzzle

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrInvalidStart    = errors.New("puzzle: start strand out of range")
	ErrNoSolution      = errors.New("puzzle: no solution found")
	ErrNodeLimit       = errors.New("puzzle: node limit reached")
	ErrOptionViolation = errors.New("puzzle: invalid option")
)

const (
	// DefaultGap is the distance between a candidate and the bridge it is
	// derived from.
	DefaultGap = 5

	// DefaultMaxNodes bounds the number of search nodes.
	DefaultMaxNodes = 1_000_000
)

// Options configures Search.
type Options struct {
	Gap      int
	MaxNodes int
	Ctx      context.Context

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: DefaultGap, DefaultMaxNodes and
// context.Background().
func DefaultOptions() Options {
	return Options{Gap: DefaultGap, MaxNodes: DefaultMaxNodes, Ctx: context.Background()}
}

// WithGap sets the candidate spacing; g must be positive.
func WithGap(g int) Option {
	return func(o *Options) {
		if g < 1 {
			o.err = fmt.Errorf("%w: gap %d must be positive", ErrOptionViolation, g)
			return
		}
		o.Gap = g
	}
}

// WithMaxNodes bounds the search; n must be positive.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max nodes %d must be positive", ErrOptionViolation, n)
			return
		}
		o.MaxNodes = n
	}
}

// WithContext makes the search stop when ctx is done. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("puzzle: WithContext(nil)")
	}
	return func(o *Options) { o.Ctx = ctx }
}
