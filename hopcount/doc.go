// Package hopcount computes, for every strand of a web, the minimum number of
// bridges that must be added so that an outward walk starting on that strand
// ends on the favorite strand.
//
// What:
//
//	Solve(n, favorite, specs) seeds every strand with its ring distance to the
//	favorite, min(|F-i|, n-|F-i|), then folds the bridges in from the rim
//	inward (descending distance, ties in input order). A bridge between t and
//	t+1 swaps the answers of its two strands; the counts on the higher side
//	are lowered along the maximal run that was counting through the bridge.
//	The counts live in a fenwick.Tree used as a range-add/point-query array.
//
// Invariant:
//
//	Neighbouring strands never differ by more than one. A violation is a
//	defect and is reported as ErrInvariantViolated.
//
// Complexity:
//
//	O(n log n + m log m + m log² n) time, O(n + m) memory.
//
// Input format (Read):
//
//	n m s
//	d1 t1
//	...
//	dm tm
//
// Strands t and the favorite s are 1-based unless ZeroBased is requested.
package hopcount
