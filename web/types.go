package web

import (
	"errors"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/effect"
	"github.com/katalvlaran/spiderweb/geom"
	"github.com/katalvlaran/spiderweb/hopcount"
	"github.com/katalvlaran/spiderweb/topology"
	"github.com/katalvlaran/spiderweb/traversal"
)

// Error kinds. Most are shared with the package that detects them so a
// single errors.Is check works at every layer.
var (
	ErrInvalidStrand        = topology.ErrInvalidStrand
	ErrInvalidScale         = topology.ErrInvalidScale
	ErrInvalidDistance      = bridges.ErrInvalidDistance
	ErrDuplicateColor       = bridges.ErrDuplicateColor
	ErrConflictingBridge    = bridges.ErrConflictingBridge
	ErrBridgeNotFound       = bridges.ErrBridgeNotFound
	ErrFixedBridgeImmutable = bridges.ErrFixedBridgeImmutable
	ErrAgentDead            = traversal.ErrAgentDead
	ErrNotAtCenter          = traversal.ErrNotAtCenter
	ErrAlreadyAtCenter      = traversal.ErrAlreadyAtCenter
	ErrHopLimit             = traversal.ErrHopLimit

	// ErrFavoriteStrandOutOfRange indicates a favorite outside [0, N).
	ErrFavoriteStrandOutOfRange = errors.New("web: favorite strand out of range")

	// ErrFavoriteAlreadySet indicates a favorite exists and must be cleared first.
	ErrFavoriteAlreadySet = errors.New("web: favorite strand already set")

	// ErrNoFavorite indicates an operation that needs a favorite strand found none.
	ErrNoFavorite = errors.New("web: no favorite strand")

	// ErrFatalConstructionInput aborts FromSpecs; no web is returned.
	ErrFatalConstructionInput = errors.New("web: fatal construction input")
)

const (
	// NoFavorite is the favorite strand of a web without one.
	NoFavorite = -1

	// RadiusPadding is added to the largest bridge distance by FromSpecs.
	RadiusPadding = 20

	// MaxDistance bounds bridge distances in FromSpecs and radius growth.
	MaxDistance = 1_000_000_000

	// FavoriteColor is the default color of a favorite strand.
	FavoriteColor = effect.FavoriteColor
)

// Spec is a bridge given as (distance, initial strand).
type Spec = hopcount.Spec

// Diagnostics receives user-facing reports. Error and info reports are only
// sent while the web is visible; fatal reports always are.
type Diagnostics interface {
	ReportError(title, message string)
	ReportInfo(title, message string)
	ReportFatal(message string)
}

// Renderer receives draw and erase requests keyed by owner id. The web never
// reads anything back.
type Renderer interface {
	Draw(owner, color string, shape geom.Shape)
	Erase(owner string)
}

// EventType classifies observer events.
type EventType string

const (
	EventAction EventType = "action" // a public operation finished
	EventHop    EventType = "hop"    // the agent crossed a bridge
	EventEffect EventType = "effect" // a bridge effect changed the web
	EventDeath  EventType = "death"  // the agent died during a walk
)

// Event is one observation. Fields irrelevant to Type are zero.
type Event struct {
	Type    EventType
	Op      string // EventAction: operation name
	Err     error  // EventAction: nil on success
	Hop     traversal.Hop
	Effect  effect.Effect
	Bridge  bridges.Bridge
	Bridges int // bridge count after the event
}

// Observer receives events. Single-method so new event types never break it.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

// OnEvent calls f.
func (f ObserverFunc) OnEvent(e Event) { f(e) }

// MultiObserver fans events out in order.
type MultiObserver []Observer

// OnEvent forwards e to every observer.
func (m MultiObserver) OnEvent(e Event) {
	for _, o := range m {
		o.OnEvent(e)
	}
}

// Operation names carried by EventAction.
const (
	OpAddBridge      = "add_bridge"
	OpRemoveBridge   = "remove_bridge"
	OpRelocateBridge = "relocate_bridge"
	OpAddStrand      = "add_strand"
	OpExpandRadius   = "expand_radius"
	OpSetFavorite    = "set_favorite"
	OpClearFavorite  = "clear_favorite"
	OpSetStrandKind  = "set_strand_kind"
	OpMoveTo         = "move_to"
	OpMoveFrom       = "move_from"
	OpMoveToCenter   = "move_to_center"
	OpSitAtCenter    = "sit_at_center"
	OpKill           = "kill"
	OpRespawn        = "respawn"
	OpMakeVisible    = "make_visible"
	OpMakeInvisible  = "make_invisible"
	OpPrintInfo      = "print_info"
	OpResetUsed      = "reset_used"
)
