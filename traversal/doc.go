// Package traversal walks the single agent of a web across its bridges.
//
// What:
//
//	The agent starts at the center (strand -1, distance 0). MoveTo(target)
//	picks the strand whose outward walk ends on target, walks it, and leaves
//	the agent on the rim. MoveToCenter walks inward from the rim and leaves
//	the agent at the center. SitAtCenter teleports without effects.
//
// Walk rule:
//
//	Outward, the next bridge is the first one in ascending distance order
//	that touches the current strand at a strictly greater distance. Inward,
//	the first in descending order at a strictly smaller distance. Ties keep
//	insertion order. Crossing a bridge from its final strand leads to its
//	initial strand; from anywhere else it leads to its final strand.
//
// Effects:
//
//	Departure fires the starting strand's effect. Each hop then fires the
//	bridge effect followed by the arrival strand's effect. Kill and Bounce
//	are handled here; the rest go to the Host. A dead agent halts the walk
//	where it stands.
//
// States:
//
//	AtCenter --MoveTo--> AtStrand(k) --MoveToCenter--> AtCenter
//	any      --SitAtCenter/Respawn--> AtCenter
//
// Complexity:
//
//	O(H·M log M) per walk for H hops over M bridges; bridges are re-sorted
//	after every hop because effects may move them.
//
// Errors:
//
//	ErrAgentDead       - the agent must be respawned first.
//	ErrInvalidStrand   - target strand outside [0, N).
//	ErrNotAtCenter     - MoveTo/MoveFrom require the agent at the center.
//	ErrAlreadyAtCenter - MoveToCenter from the center.
//	ErrHopLimit        - WithMaxHops bound exceeded.
//	ErrOptionViolation - invalid option value.
package traversal
