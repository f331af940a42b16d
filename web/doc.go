// Package web is the facade over a whole spider web: one topology, one
// bridge set, one favorite strand and a single agent walking between them.
//
// What:
//
//   - New / FromSpecs build a web. FromSpecs takes bulk (distance, strand)
//     pairs, pads the radius by RadiusPadding and treats malformed input as
//     fatal.
//   - Bridge mutators: AddBridge, RemoveBridge, RelocateBridge.
//   - Web mutators: AddStrand, ExpandRadius, SetFavoriteStrand,
//     ClearFavoriteStrand, SetStrandKind.
//   - Agent: MoveAgentTo, MoveAgentFrom, MoveAgentToCenter, SitAgentAtCenter,
//     KillAgent, RespawnAgent.
//   - HopCounts runs the hop-count solver on the web's own bridges.
//
// Every public operation records its outcome in LastActionOK, reports a
// failure through Diagnostics while the web is visible, notifies observers
// with an EventAction and redraws. Walks additionally emit EventHop per
// crossed bridge, EventEffect when a bridge changes the web and EventDeath
// when the agent dies.
//
// Drawing:
//
//	Owners are "<id>/strand/<i>", "<id>/bridge/<bridgeID>", "<id>/trace/<k>"
//	and "<id>/agent". Each redraw draws the full frame and erases owners
//	that left it; an invisible web erases everything.
//
// Errors are the sentinels of the owning packages re-exported here, plus
// ErrFavoriteStrandOutOfRange, ErrFavoriteAlreadySet, ErrNoFavorite and
// ErrFatalConstructionInput. Compare with errors.Is.
//
// A Web is not safe for concurrent use.
package web
