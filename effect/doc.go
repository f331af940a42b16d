// Package effect maps strand and bridge kinds to the effects they trigger.
//
// The table is pure: StrandEffect, BridgeEffect and RemovalEffect return a
// closed Effect value and never touch a web. The traversal engine applies
// agent effects (Kill, Bounce) itself and hands the web-level ones
// (RemoveSelf, RelocateSelf, ReshuffleAll, ReassignFavorite) to its host.
//
//	Kind                Trigger   Effect
//	strand Normal       arrival   None
//	strand Killer       arrival   Kill
//	strand Bouncy       arrival   Bounce to (current+1) mod N, same distance
//	bridge Normal/Fixed crossing  None
//	bridge Weak         crossing  RemoveSelf
//	bridge Mobile       crossing  RelocateSelf by Factor, skipped beyond the rim
//	bridge Funny        crossing  ReshuffleAll
//	bridge Transformer  removal   ReassignFavorite to the bridge's initial strand
package effect
