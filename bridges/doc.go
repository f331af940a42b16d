// Package bridges stores the chords that connect adjacent strands of a web
// and enforces the placement rules between them.
//
// A bridge sits at a fixed distance from the center and joins strand t to
// strand (t+1) mod N. Every bridge carries:
//
//   - ID: an opaque handle generated by the Set; identity never depends on color.
//   - Color: a display attribute, still unique within one Set.
//   - Kind: Normal, Fixed, Weak, Mobile, Transformer or Funny.
//
// Placement rules (Add):
//
//	initial ∉ [0,N)                        → ErrInvalidStrand
//	distance ∉ [0,radius]                  → ErrInvalidDistance
//	color already present                  → ErrDuplicateColor
//	same distance and a shared strand      → ErrConflictingBridge
//
// "Shared strand" means any of: same initial, same final, existing.initial ==
// new.final, existing.final == new.initial. Two bridges may therefore share a
// distance only when they touch four distinct strands.
//
// Ordering:
//
//	All() returns insertion order. Ascending()/Descending() sort by distance
//	with a stable sort, so equal distances keep insertion order. Every
//	traversal depends on this tie-break.
//
// Mutations that are "remove then add" (Relocate, Move, Reshuffle) restore the
// original bridge in place when the add half fails, leaving the Set unchanged.
//
// Complexity: Add/Remove/Find are O(M); sorted views are O(M log M).
package bridges
