// Package fenwick implements a binary indexed tree over int values.
//
// A Tree answers prefix sums and accepts point additions in O(log n). Used as
// a difference array it gives range-add / point-query: RangeAdd(l, r, x) adds x
// to every position in [l, r] and At(i) reads position i.
//
// Indices are 0-based. The tree keeps n+1 slots internally so that
// RangeAdd(l, n-1, x) can close its range without a bounds check.
//
// Complexity:
//
//	New       O(n)
//	Add, Sum  O(log n)
//	RangeAdd  O(log n)
//	At        O(log n)
package fenwick
