package effect

import (
	"fmt"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/topology"
)

// Op is the closed set of effects.
type Op uint8

const (
	// None does nothing.
	None Op = iota
	// Kill kills the agent and halts the walk.
	Kill
	// Bounce moves the agent to the next strand at the same distance.
	Bounce
	// RemoveSelf deletes the crossed bridge.
	RemoveSelf
	// RelocateSelf moves the crossed bridge outward by Factor.
	RelocateSelf
	// ReshuffleAll re-places every bridge of the web at random.
	ReshuffleAll
	// ReassignFavorite makes the removed bridge's initial strand the favorite.
	ReassignFavorite
)

var opNames = [...]string{
	None:             "none",
	Kill:             "kill",
	Bounce:           "bounce",
	RemoveSelf:       "remove-self",
	RelocateSelf:     "relocate-self",
	ReshuffleAll:     "reshuffle-all",
	ReassignFavorite: "reassign-favorite",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// MobileFactor is how far a Mobile bridge moves outward per crossing.
const MobileFactor = 1.2

// FavoriteColor is the color given to a strand that becomes the favorite.
const FavoriteColor = "green"

// Effect is one entry of the table.
type Effect struct {
	Op     Op
	Factor float64 // RelocateSelf only
}

// Is reports whether e carries op.
func (e Effect) Is(op Op) bool { return e.Op == op }

func (e Effect) String() string {
	if e.Op == RelocateSelf {
		return fmt.Sprintf("%s(x%g)", e.Op, e.Factor)
	}
	return e.Op.String()
}

// StrandEffect returns the effect of arriving on a strand of kind k.
func StrandEffect(k topology.Kind) Effect {
	switch k {
	case topology.Killer:
		return Effect{Op: Kill}
	case topology.Bouncy:
		return Effect{Op: Bounce}
	default:
		return Effect{Op: None}
	}
}

// BridgeEffect returns the effect of crossing a bridge of kind k.
func BridgeEffect(k bridges.Kind) Effect {
	switch k {
	case bridges.Weak:
		return Effect{Op: RemoveSelf}
	case bridges.Mobile:
		return Effect{Op: RelocateSelf, Factor: MobileFactor}
	case bridges.Funny:
		return Effect{Op: ReshuffleAll}
	default:
		return Effect{Op: None}
	}
}

// RemovalEffect returns the effect of removing a bridge of kind k.
func RemovalEffect(k bridges.Kind) Effect {
	if k == bridges.Transformer {
		return Effect{Op: ReassignFavorite}
	}
	return Effect{Op: None}
}

// Outward computes where a relocated bridge lands: distance ⌊d·factor⌋ on the
// higher strand of its pair. For the wraparound pair (N-1, 0) that is strand
// 0, which is b.Final in every case. ok is false when the new distance
// passes radius; the bridge then stays where it is.
func Outward(b bridges.Bridge, factor float64, radius int) (distance, initial int, ok bool) {
	distance = int(float64(b.Distance) * factor)
	if distance > radius {
		return b.Distance, b.Initial, false
	}
	return distance, b.Final, true
}
