package fenwick

// Tree is a binary indexed tree over positions [0, n).
type Tree struct {
	data []int // 1-based, data[0] unused
}

// New returns a zeroed Tree for n positions. n < 0 is treated as 0.
func New(n int) *Tree {
	if n < 0 {
		n = 0
	}
	return &Tree{data: make([]int, n+1)}
}

// Len returns the number of positions.
func (t *Tree) Len() int { return len(t.data) - 1 }

// Add adds x at position i. Positions at or beyond Len are ignored.
func (t *Tree) Add(i, x int) {
	if i < 0 {
		return
	}
	for i++; i < len(t.data); i += i & -i {
		t.data[i] += x
	}
}

// Sum returns the sum of positions [0, i]. i is clamped to [−1, Len−1].
func (t *Tree) Sum(i int) int {
	if i >= t.Len() {
		i = t.Len() - 1
	}
	res := 0
	for i++; i > 0; i -= i & -i {
		res += t.data[i]
	}
	return res
}

// RangeAdd adds x to every position in [l, r] of the difference view.
func (t *Tree) RangeAdd(l, r, x int) {
	t.Add(l, x)
	t.Add(r+1, -x)
}

// At returns position i of the difference view.
func (t *Tree) At(i int) int { return t.Sum(i) }

// Values returns every position of the difference view.
// Complexity: O(n log n).
func (t *Tree) Values() []int {
	out := make([]int, t.Len())
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}
