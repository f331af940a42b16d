package web_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/effect"
	"github.com/katalvlaran/spiderweb/topology"
	"github.com/katalvlaran/spiderweb/web"
)

func TestMoveAgentTo_Example(t *testing.T) {
	w := newExample(t)

	require.NoError(t, w.MoveAgentTo(5))
	assert.Equal(t, 5, w.CurrentStrand())
	assert.Equal(t, 120, w.CurrentDistance())
	assert.Equal(t, []string{"4-100"}, colors(w.UsedBridges()))

	require.NoError(t, w.MoveAgentToCenter())
	assert.Equal(t, -1, w.CurrentStrand())
	assert.Equal(t, 0, w.CurrentDistance())
	assert.Equal(t, []string{"4-100"}, colors(w.UsedBridges()))
}

func TestMoveAgentTo_EveryTarget(t *testing.T) {
	w := newExample(t)
	for target := 0; target < w.StrandCount(); target++ {
		require.NoError(t, w.MoveAgentTo(target))
		assert.Equal(t, target, w.CurrentStrand(), "target %d", target)
		w.SitAgentAtCenter()
	}
}

func TestMoveAgentFrom_Example3(t *testing.T) {
	w := newExample(t)
	require.NoError(t, w.MoveAgentFrom(0))
	assert.Equal(t, 1, w.CurrentStrand())

	w.SitAgentAtCenter()
	require.NoError(t, w.MoveAgentFrom(6))
	assert.Equal(t, 0, w.CurrentStrand())
}

func TestMove_Preconditions(t *testing.T) {
	rec := &diagRecorder{}
	w := newExample(t, web.WithDiagnostics(rec), web.WithVisible(true))

	assert.ErrorIs(t, w.MoveAgentTo(7), web.ErrInvalidStrand)
	assert.ErrorIs(t, w.MoveAgentFrom(-2), web.ErrInvalidStrand)
	assert.ErrorIs(t, w.MoveAgentToCenter(), web.ErrAlreadyAtCenter)
	assert.False(t, w.LastActionOK())

	require.NoError(t, w.MoveAgentFrom(3))
	assert.ErrorIs(t, w.MoveAgentTo(1), web.ErrNotAtCenter)
	assert.ErrorIs(t, w.MoveAgentFrom(1), web.ErrNotAtCenter)

	titles := make([]string, len(rec.errors))
	for i, r := range rec.errors {
		titles[i] = r.title
	}
	assert.Equal(t, []string{
		"Invalid strand",
		"Invalid strand",
		"The spider is already on the center",
		"The spider isn't on the center",
		"The spider isn't on the center",
	}, titles)
}

func TestSitAgentAtCenter(t *testing.T) {
	rec := &diagRecorder{}
	w := newExample(t, web.WithDiagnostics(rec), web.WithVisible(true))

	require.NoError(t, w.MoveAgentFrom(2))
	w.SitAgentAtCenter()
	assert.Equal(t, -1, w.CurrentStrand())
	assert.Equal(t, web.DefaultCenter, w.Agent().Position)
	assert.Empty(t, w.Agent().Trace)
	assert.Empty(t, rec.infos)

	w.SitAgentAtCenter()
	assert.True(t, w.LastActionOK())
	require.Len(t, rec.infos, 1)
	assert.Equal(t, "The spider is already on the center", rec.infos[0].message)
}

func TestKillerStrand(t *testing.T) {
	obs := &eventRecorder{}
	w := newExample(t, web.WithObserver(obs))
	require.NoError(t, w.SetStrandKind(1, "red", topology.Killer))

	require.NoError(t, w.MoveAgentTo(1))
	assert.True(t, w.LastActionOK(), "a walk that kills the agent still ran")
	a := w.Agent()
	assert.False(t, a.Alive)
	assert.Equal(t, 1, a.Strand)
	assert.Equal(t, 20, a.Distance)
	assert.Equal(t, []string{"0-20"}, colors(w.UsedBridges()))
	assert.Len(t, obs.ofType(web.EventDeath), 1)

	assert.ErrorIs(t, w.MoveAgentTo(2), web.ErrAgentDead)
	assert.ErrorIs(t, w.MoveAgentToCenter(), web.ErrAgentDead)

	w.RespawnAgent()
	assert.True(t, w.Agent().Alive)
	assert.Equal(t, -1, w.CurrentStrand())
}

func TestKillAgent(t *testing.T) {
	w := newExample(t)
	w.KillAgent()
	assert.False(t, w.Agent().Alive)
	assert.True(t, w.LastActionOK())
	assert.ErrorIs(t, w.MoveAgentFrom(0), web.ErrAgentDead)
	assert.Contains(t, w.Info().String(), "The spider is dead")
}

func TestBouncyStrand(t *testing.T) {
	w := newExample(t)
	require.NoError(t, w.SetStrandKind(3, "", topology.Bouncy))

	// 2 -> 3 over 2-40 bounces to 4, then 4-100 leads to 5
	require.NoError(t, w.MoveAgentFrom(2))
	assert.Equal(t, 5, w.CurrentStrand())
	assert.Equal(t, []string{"2-40", "4-100"}, colors(w.UsedBridges()))
}

func TestWeakBridge(t *testing.T) {
	obs := &eventRecorder{}
	w, err := web.New(5, 100, web.WithObserver(obs))
	require.NoError(t, err)
	require.NoError(t, w.AddBridge("w", 50, 0, bridges.Weak))

	require.NoError(t, w.MoveAgentFrom(0))
	assert.Equal(t, 1, w.CurrentStrand())
	assert.Empty(t, w.Bridges())
	assert.Equal(t, []string{"w"}, colors(w.UsedBridges()))

	effects := obs.ofType(web.EventEffect)
	require.Len(t, effects, 1)
	assert.True(t, effects[0].Effect.Is(effect.RemoveSelf))
	assert.Equal(t, 0, effects[0].Bridges)
}

func TestMobileBridge(t *testing.T) {
	obs := &eventRecorder{}
	w, err := web.New(4, 100, web.WithObserver(obs))
	require.NoError(t, err)
	require.NoError(t, w.AddBridge("m", 50, 0, bridges.Mobile))

	require.NoError(t, w.MoveAgentFrom(0))
	hops := obs.ofType(web.EventHop)
	distances := make([]int, len(hops))
	for i, h := range hops {
		distances[i] = h.Hop.Distance
	}
	assert.Equal(t, []int{50, 60, 72, 86}, distances)
	assert.Equal(t, 0, w.CurrentStrand())

	b, ok := w.Bridge("m")
	require.True(t, ok)
	assert.Equal(t, 86, b.Distance)
	assert.Equal(t, 3, b.Initial)
	assert.Len(t, obs.ofType(web.EventEffect), 3, "the move past the rim is skipped")
}

func TestMoveAgentTo_BridgeOnTheRim(t *testing.T) {
	w, err := web.New(4, 100)
	require.NoError(t, err)
	require.NoError(t, w.AddBridge("rim", 100, 1, bridges.Normal))

	require.NoError(t, w.MoveAgentTo(1))
	assert.Equal(t, 1, w.CurrentStrand())
	assert.Equal(t, []string{"rim"}, colors(w.UsedBridges()))

	// the way back does not cross the rim bridge again
	require.NoError(t, w.MoveAgentToCenter())
	assert.Empty(t, w.UsedBridges())
}

func TestFunnyBridge(t *testing.T) {
	w, err := web.New(5, 100, web.WithSeed(7))
	require.NoError(t, err)
	require.NoError(t, w.AddBridge("f", 50, 0, bridges.Funny))
	require.NoError(t, w.AddBridge("x", 30, 2, bridges.Fixed))
	fixed, _ := w.Bridge("x")

	require.NoError(t, w.MoveAgentFrom(0))
	assert.True(t, w.Agent().Alive)
	assert.Len(t, w.Bridges(), 2)
	after, ok := w.Bridge("x")
	require.True(t, ok)
	assert.Equal(t, fixed, after)
	f, ok := w.Bridge("f")
	require.True(t, ok)
	assert.Equal(t, bridges.Funny, f.Kind)
}

func TestFunnyBridge_ReassignsFavoriteThroughTransformer(t *testing.T) {
	obs := &eventRecorder{}
	w, err := web.New(5, 100, web.WithSeed(7), web.WithObserver(obs))
	require.NoError(t, err)
	require.NoError(t, w.SetFavoriteStrand(4, "", topology.Normal))
	require.NoError(t, w.AddBridge("f", 50, 0, bridges.Funny))
	require.NoError(t, w.AddBridge("t", 30, 2, bridges.Transformer))
	// the walk stops right after the single reshuffle
	require.NoError(t, w.SetStrandKind(1, "", topology.Killer))

	require.NoError(t, w.MoveAgentFrom(0))
	require.False(t, w.Agent().Alive)
	assert.Equal(t, 2, w.FavoriteStrand())
	assert.Equal(t, web.FavoriteColor, w.Strands()[2].Color)
	assert.Equal(t, topology.DefaultColor, w.Strands()[4].Color)

	var reassigned []string
	for _, e := range obs.ofType(web.EventEffect) {
		if e.Effect.Is(effect.ReassignFavorite) {
			reassigned = append(reassigned, e.Bridge.Color)
		}
	}
	assert.Equal(t, []string{"t"}, reassigned)
}

func TestFunnyBridge_Deterministic(t *testing.T) {
	run := func() []bridges.Bridge {
		w, err := web.New(6, 100, web.WithSeed(42))
		require.NoError(t, err)
		require.NoError(t, w.AddBridge("f", 10, 0, bridges.Funny))
		require.NoError(t, w.AddBridge("a", 40, 3, bridges.Normal))
		require.NoError(t, w.AddBridge("b", 60, 4, bridges.Normal))
		require.NoError(t, w.MoveAgentFrom(0))
		return w.Bridges()
	}
	assert.Equal(t, run(), run())
}

func TestMaxHops(t *testing.T) {
	w := newExample(t, web.WithMaxHops(1))
	// from 1: 0-20 to 0, then 6-80 would be the second hop
	assert.ErrorIs(t, w.MoveAgentFrom(1), web.ErrHopLimit)
	assert.False(t, w.LastActionOK())
	assert.Equal(t, -1, w.CurrentStrand())
	assert.Equal(t, 0, w.CurrentDistance())
	assert.True(t, w.Agent().Alive)

	// the agent is back on the hub, so a new walk may start
	require.NoError(t, w.MoveAgentFrom(6))
	assert.Equal(t, 0, w.CurrentStrand())
	assert.Len(t, w.UsedBridges(), 1)
}

func TestResetUsedBridges(t *testing.T) {
	w := newExample(t)
	require.NoError(t, w.MoveAgentFrom(0))
	require.NotEmpty(t, w.UsedBridges())
	w.ResetUsedBridges()
	assert.Empty(t, w.UsedBridges())
}

func TestRegenerate_MovesAgentToRim(t *testing.T) {
	w := newExample(t)
	require.NoError(t, w.MoveAgentFrom(0))
	require.NoError(t, w.ExpandRadius(30))
	assert.Equal(t, 1, w.CurrentStrand())
	assert.Equal(t, 150, w.CurrentDistance())

	rim := w.Strands()[1].End
	assert.True(t, w.Agent().Position.Near(rim, 1e-9))
}

func TestHopEvents(t *testing.T) {
	obs := &eventRecorder{}
	w := newExample(t, web.WithObserver(obs))
	require.NoError(t, w.MoveAgentFrom(6))

	hops := obs.ofType(web.EventHop)
	require.Len(t, hops, 1)
	assert.Equal(t, "6-80", hops[0].Hop.Bridge.Color)
	assert.Equal(t, 6, hops[0].Hop.From)
	assert.Equal(t, 0, hops[0].Hop.To)
	assert.Empty(t, obs.ofType(web.EventDeath))

	last := obs.events[len(obs.events)-1]
	assert.Equal(t, web.EventAction, last.Type)
	assert.Equal(t, web.OpMoveFrom, last.Op)
}
