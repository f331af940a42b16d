package traversal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/effect"
	"github.com/katalvlaran/spiderweb/geom"
	"github.com/katalvlaran/spiderweb/topology"
)

// Sentinel errors for agent movement.
var (
	// ErrAgentDead is returned when a dead agent is asked to move.
	ErrAgentDead = errors.New("traversal: agent is dead")

	// ErrInvalidStrand is shared with topology.
	ErrInvalidStrand = topology.ErrInvalidStrand

	// ErrNotAtCenter is returned by MoveTo/MoveFrom when the agent is on a strand.
	ErrNotAtCenter = errors.New("traversal: agent is not at the center")

	// ErrAlreadyAtCenter is returned by MoveToCenter when there is nowhere to go.
	ErrAlreadyAtCenter = errors.New("traversal: agent is already at the center")

	// ErrHopLimit is returned when a walk exceeds the configured MaxHops.
	ErrHopLimit = errors.New("traversal: hop limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traversal: invalid option supplied")
)

// Center is the strand index of the hub.
const Center = -1

// State is the coarse position of the agent.
type State uint8

const (
	// AtCenter means the agent sits on the hub.
	AtCenter State = iota
	// AtStrand means the agent is on a strand, normally at its rim.
	AtStrand
)

func (s State) String() string {
	if s == AtCenter {
		return "at-center"
	}
	return "at-strand"
}

// Agent is a snapshot of the walker.
type Agent struct {
	Position geom.Point
	Strand   int // Center when on the hub
	Distance int // 0 at the hub, radius at the rim
	Alive    bool
	Trace    []geom.Segment // segments covered since the last reset
}

// Hop records one bridge crossing.
type Hop struct {
	Bridge   bridges.Bridge // as it was before its own effect fired
	From     int
	To       int // arrival strand, before any bounce
	Distance int

	BridgeEffect effect.Effect
	StrandEffect effect.Effect
}

// Result summarizes one walk.
type Result struct {
	Start int // strand the walk started on
	End   int // strand the agent stopped on, Center after MoveToCenter
	Hops  []Hop
	Alive bool
}

// Host owns the web-level state the engine reads and mutates through effects.
type Host interface {
	Topology() *topology.Topology
	Bridges() *bridges.Set
	// Apply carries out RemoveSelf, RelocateSelf or ReshuffleAll for b.
	Apply(e effect.Effect, b bridges.Bridge)
}

// Option configures an Engine.
type Option func(*Options)

// Options holds the engine parameters and hooks.
type Options struct {
	// MaxHops, if > 0, aborts a walk after that many crossings. The agent
	// is put back where the walk began.
	MaxHops int

	// OnHop is called after each crossing with its effects resolved.
	OnHop func(h Hop)

	// OnStop is called once a walk finishes, including walks that end in
	// death or hit MaxHops.
	OnStop func(r Result)

	err error
}

// DefaultOptions returns options with no hop limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		MaxHops: 0,
		OnHop:   func(Hop) {},
		OnStop:  func(Result) {},
	}
}

// WithMaxHops bounds the number of crossings per walk.
//
//	n > 0: abort with ErrHopLimit after n crossings
//	n == 0: no limit
//	n < 0: ErrOptionViolation
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithOnHop registers a crossing hook. Panics if fn is nil.
func WithOnHop(fn func(h Hop)) Option {
	if fn == nil {
		panic("traversal: WithOnHop(nil)")
	}
	return func(o *Options) { o.OnHop = fn }
}

// WithOnStop registers an end-of-walk hook. Panics if fn is nil.
func WithOnStop(fn func(r Result)) Option {
	if fn == nil {
		panic("traversal: WithOnStop(nil)")
	}
	return func(o *Options) { o.OnStop = fn }
}
