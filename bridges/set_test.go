package bridges_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/topology"
)

func newSet(t *testing.T, n, radius int) *bridges.Set {
	t.Helper()
	top, err := topology.New(n, radius)
	require.NoError(t, err)
	return bridges.NewSet(top)
}

// SetSuite exercises placement, removal and relocation on a 7-strand web.
type SetSuite struct {
	suite.Suite
	set *bridges.Set
}

func (s *SetSuite) SetupTest() {
	s.set = newSet(s.T(), 7, 200)
}

// TestAdd_ComputesFinalAndEndpoints checks the derived fields of a new bridge.
func (s *SetSuite) TestAdd_ComputesFinalAndEndpoints() {
	b, err := s.set.Add("red", 100, 6, bridges.Normal)
	s.Require().NoError(err)
	s.Equal(0, b.Final, "wraparound final")
	s.Equal(bridges.ID(1), b.ID)

	from, _ := s.set.Topology().PointAt(6, 100)
	to, _ := s.set.Topology().PointAt(0, 100)
	s.Equal(from, b.From)
	s.Equal(to, b.To)
}

// TestAdd_Errors covers each rejection in validation order.
func (s *SetSuite) TestAdd_Errors() {
	_, err := s.set.Add("x", 10, -1, bridges.Normal)
	s.ErrorIs(err, bridges.ErrInvalidStrand)
	_, err = s.set.Add("x", 10, 7, bridges.Normal)
	s.ErrorIs(err, topology.ErrInvalidStrand)
	_, err = s.set.Add("x", -1, 0, bridges.Normal)
	s.ErrorIs(err, bridges.ErrInvalidDistance)
	_, err = s.set.Add("x", 201, 0, bridges.Normal)
	s.ErrorIs(err, bridges.ErrInvalidDistance)

	_, err = s.set.Add("x", 0, 0, bridges.Normal)
	s.Require().NoError(err, "distance 0 is allowed")
	_, err = s.set.Add("y", 200, 0, bridges.Normal)
	s.Require().NoError(err, "distance == radius is allowed")

	_, err = s.set.Add("x", 50, 3, bridges.Normal)
	s.ErrorIs(err, bridges.ErrDuplicateColor)
	s.Equal(2, s.set.Len())
}

// TestAdd_DefaultColor synthesizes "{strand}-{distance}" when no color is given.
func (s *SetSuite) TestAdd_DefaultColor() {
	b, err := s.set.Add("", 40, 2, bridges.Weak)
	s.Require().NoError(err)
	s.Equal("2-40", b.Color)
}

// TestRemove_FixedStays verifies that Fixed bridges refuse removal.
func (s *SetSuite) TestRemove_FixedStays() {
	_, err := s.set.Add("iron", 50, 1, bridges.Fixed)
	s.Require().NoError(err)

	_, err = s.set.Remove("iron")
	s.ErrorIs(err, bridges.ErrFixedBridgeImmutable)
	_, ok := s.set.FindByColor("iron")
	s.True(ok)

	_, err = s.set.Remove("nope")
	s.ErrorIs(err, bridges.ErrBridgeNotFound)
}

// TestRemoveID removes by handle.
func (s *SetSuite) TestRemoveID() {
	b, err := s.set.Add("a", 50, 1, bridges.Normal)
	s.Require().NoError(err)
	got, err := s.set.RemoveID(b.ID)
	s.Require().NoError(err)
	s.Equal(b, got)
	_, err = s.set.RemoveID(b.ID)
	s.ErrorIs(err, bridges.ErrBridgeNotFound)
}

// TestRelocate_RegeneratesColor checks the new color and preserved kind.
func (s *SetSuite) TestRelocate_RegeneratesColor() {
	_, err := s.set.Add("blue", 50, 3, bridges.Mobile)
	s.Require().NoError(err)

	old, moved, err := s.set.Relocate("blue", 80)
	s.Require().NoError(err)
	s.Equal("blue", old.Color)
	s.Equal("3-80", moved.Color)
	s.Equal(80, moved.Distance)
	s.Equal(bridges.Mobile, moved.Kind)
	s.Equal(old.ID, moved.ID)

	_, ok := s.set.FindByColor("blue")
	s.False(ok)
}

// TestRelocate_RestoresOnConflict leaves the set untouched when the target collides.
func (s *SetSuite) TestRelocate_RestoresOnConflict() {
	_, err := s.set.Add("a", 50, 3, bridges.Normal)
	s.Require().NoError(err)
	_, err = s.set.Add("b", 80, 4, bridges.Normal)
	s.Require().NoError(err)
	before := s.set.All()

	_, _, err = s.set.Relocate("a", 80)
	s.ErrorIs(err, bridges.ErrConflictingBridge)
	s.Equal(before, s.set.All())

	_, _, err = s.set.Relocate("a", 500)
	s.ErrorIs(err, bridges.ErrInvalidDistance)
	s.Equal(before, s.set.All())
}

// TestRelocate_Fixed refuses to move Fixed bridges.
func (s *SetSuite) TestRelocate_Fixed() {
	_, err := s.set.Add("iron", 50, 3, bridges.Fixed)
	s.Require().NoError(err)
	_, _, err = s.set.Relocate("iron", 60)
	s.ErrorIs(err, bridges.ErrFixedBridgeImmutable)
}

// TestMove keeps the color and ID.
func (s *SetSuite) TestMove() {
	b, err := s.set.Add("m", 50, 3, bridges.Mobile)
	s.Require().NoError(err)
	moved, err := s.set.Move(b.ID, 60, 4)
	s.Require().NoError(err)
	s.Equal(b.ID, moved.ID)
	s.Equal("m", moved.Color)
	s.Equal(4, moved.Initial)
	s.Equal(5, moved.Final)
}

// TestSortedViews checks the stable distance orderings.
func (s *SetSuite) TestSortedViews() {
	for _, c := range []struct {
		color    string
		distance int
		initial  int
	}{
		{"c", 30, 0}, {"a", 10, 2}, {"b", 30, 4}, {"d", 20, 6},
	} {
		_, err := s.set.Add(c.color, c.distance, c.initial, bridges.Normal)
		s.Require().NoError(err)
	}
	colors := func(bs []bridges.Bridge) []string {
		out := make([]string, len(bs))
		for i, b := range bs {
			out[i] = b.Color
		}
		return out
	}
	s.Equal([]string{"c", "a", "b", "d"}, colors(s.set.All()))
	s.Equal([]string{"a", "d", "c", "b"}, colors(s.set.Ascending()))
	s.Equal([]string{"c", "b", "d", "a"}, colors(s.set.Descending()))
}

// TestReload re-places bridges on a grown topology.
func (s *SetSuite) TestReload() {
	_, err := s.set.Add("wrap", 50, 6, bridges.Normal)
	s.Require().NoError(err)
	s.Require().NoError(s.set.Topology().Resize(8, 200))

	dropped := s.set.Reload()
	s.Empty(dropped)
	b, ok := s.set.FindByColor("wrap")
	s.Require().True(ok)
	s.Equal(7, b.Final, "final recomputed for the new count")
	s.Equal(bridges.ID(1), b.ID)
}

// TestReload_DropsOutOfRange drops bridges beyond a shrunken radius.
func (s *SetSuite) TestReload_DropsOutOfRange() {
	_, err := s.set.Add("far", 150, 1, bridges.Normal)
	s.Require().NoError(err)
	s.Require().NoError(s.set.Topology().Resize(7, 100))
	dropped := s.set.Reload()
	s.Len(dropped, 1)
	s.Zero(s.set.Len())
}

// TestReshuffle moves every non-Fixed bridge below the radius.
func (s *SetSuite) TestReshuffle() {
	_, err := s.set.Add("iron", 100, 0, bridges.Fixed)
	s.Require().NoError(err)
	for i, d := range []int{20, 60, 120, 190} {
		_, err := s.set.Add("", d, i+2, bridges.Funny)
		s.Require().NoError(err)
	}
	iron, _ := s.set.FindByColor("iron")

	s.set.Reshuffle(rand.New(rand.NewSource(7)))

	s.Equal(5, s.set.Len())
	got, ok := s.set.FindByColor("iron")
	s.Require().True(ok)
	s.Equal(iron, got, "fixed bridge untouched")
	for _, b := range s.set.All() {
		s.Less(b.Distance, 200)
		s.Equal((b.Initial+1)%7, b.Final)
		for _, o := range s.set.All() {
			if o.ID != b.ID {
				s.False(o.ConflictsWith(b.Distance, b.Initial, b.Final), "%s vs %s", o, b)
			}
		}
	}
}

// TestClear keeps IDs monotonic.
func (s *SetSuite) TestClear() {
	_, err := s.set.Add("iron", 100, 0, bridges.Fixed)
	s.Require().NoError(err)
	s.set.Clear()
	s.Zero(s.set.Len())
	b, err := s.set.Add("iron", 100, 0, bridges.Normal)
	s.Require().NoError(err)
	s.Equal(bridges.ID(2), b.ID)
}

func TestSetSuite(t *testing.T) {
	suite.Run(t, new(SetSuite))
}

// TestConflictMatrix checks every relation between an existing bridge on
// strand 2 and a new bridge at the same distance on each strand of a
// 7-strand web.
func TestConflictMatrix(t *testing.T) {
	cases := []struct {
		initial  int
		conflict bool
		relation string
	}{
		{0, false, "disjoint"},
		{1, true, "new.final == existing.initial"},
		{2, true, "same initial"},
		{3, true, "new.initial == existing.final"},
		{4, false, "disjoint"},
		{5, false, "disjoint"},
		{6, false, "disjoint, wraparound"},
	}
	for _, tc := range cases {
		set := newSet(t, 7, 100)
		_, err := set.Add("existing", 40, 2, bridges.Normal)
		require.NoError(t, err)

		_, err = set.Add("new", 40, tc.initial, bridges.Normal)
		if tc.conflict {
			assert.ErrorIs(t, err, bridges.ErrConflictingBridge, tc.relation)
		} else {
			assert.NoError(t, err, tc.relation)
		}

		_, err = set.Add("other-distance", 41, tc.initial, bridges.Normal)
		assert.NoError(t, err, "different distance never conflicts")
	}
}

// TestConflictMatrix_Wraparound covers the N-1 → 0 pair.
func TestConflictMatrix_Wraparound(t *testing.T) {
	set := newSet(t, 5, 100)
	_, err := set.Add("wrap", 40, 4, bridges.Normal)
	require.NoError(t, err)

	_, err = set.Add("a", 40, 0, bridges.Normal)
	assert.ErrorIs(t, err, bridges.ErrConflictingBridge)
	_, err = set.Add("b", 40, 3, bridges.Normal)
	assert.ErrorIs(t, err, bridges.ErrConflictingBridge)
	_, err = set.Add("c", 40, 1, bridges.Normal)
	assert.NoError(t, err)
}

// TestBridge_Other checks both crossing directions.
func TestBridge_Other(t *testing.T) {
	b := bridges.Bridge{Initial: 6, Final: 0}
	assert.Equal(t, 0, b.Other(6))
	assert.Equal(t, 6, b.Other(0))
	assert.True(t, b.Touches(0))
	assert.False(t, b.Touches(3))
}

// TestKind_Text round-trips kind names.
func TestKind_Text(t *testing.T) {
	for _, k := range bridges.Kinds() {
		txt, err := k.MarshalText()
		require.NoError(t, err)
		var got bridges.Kind
		require.NoError(t, got.UnmarshalText(txt))
		assert.Equal(t, k, got)
	}
	_, err := bridges.ParseKind("sticky")
	assert.ErrorIs(t, err, bridges.ErrUnknownKind)
	k, err := bridges.ParseKind(" Funny ")
	require.NoError(t, err)
	assert.Equal(t, bridges.Funny, k)
}
