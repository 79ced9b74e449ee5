package attractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolnet/attractor"
	"github.com/katalvlaran/boolnet/core"
)

// TestAsynchronous_TrivialFixedPoints: with no parents no flip ever changes
// anything, so every state is a zero-successor singleton sink.
func TestAsynchronous_TrivialFixedPoints(t *testing.T) {
	st, err := attractor.Analyze(oneNodeNetwork(t), attractor.Asynchronous)
	require.NoError(t, err)

	assert.True(t, st.Complete())
	assert.Equal(t, [][]core.State{{0}, {1}}, st.Attractors())
}

// TestAsynchronous_ZeroSuccessorSingletons extends the trivial case to two
// parentless nodes: all four states are singleton attractors, ids following
// SCC pop order (here, ascending state order).
func TestAsynchronous_ZeroSuccessorSingletons(t *testing.T) {
	bn, err := core.New([]core.Node{
		{Truth: []bool{false}},
		{Truth: []bool{true}},
	})
	require.NoError(t, err)

	st, err := attractor.Analyze(bn, attractor.Asynchronous)
	require.NoError(t, err)
	assert.Equal(t, [][]core.State{{0}, {1}, {2}, {3}}, st.Attractors())
}

// TestAsynchronous_WorkedSixNode_MatchesBruteForce cross-checks the Tarjan
// classifier against an independent reachability-based terminal-SCC
// computation over all 64 states.
func TestAsynchronous_WorkedSixNode_MatchesBruteForce(t *testing.T) {
	bn := sixNodeNetwork(t)
	st, err := attractor.Analyze(bn, attractor.Asynchronous)
	require.NoError(t, err)
	require.True(t, st.Complete())

	want := bruteAsyncAttractors(t, bn)
	assert.ElementsMatch(t, want, st.Attractors())

	// Per-state flags agree with the brute-force attractor membership.
	inWant := map[core.State]bool{}
	for _, set := range want {
		for _, s := range set {
			inWant[s] = true
		}
	}
	for s := 0; s < bn.StateCount(); s++ {
		got, err := st.IsAttractor(core.State(s))
		require.NoError(t, err)
		assert.Equal(t, inWant[core.State(s)], got, "state %d", s)
	}
}

// TestAsynchronous_Closure: attractors are closed under the successor
// relation — every successor of an attractor state is an attractor state of
// the same id.
func TestAsynchronous_Closure(t *testing.T) {
	bn := sixNodeNetwork(t)
	st, err := attractor.Analyze(bn, attractor.Asynchronous)
	require.NoError(t, err)

	for s := 0; s < bn.StateCount(); s++ {
		isAttr, err := st.IsAttractor(core.State(s))
		require.NoError(t, err)
		if !isAttr {
			continue
		}
		id, err := st.AttractorID(core.State(s))
		require.NoError(t, err)

		succs, err := bn.Successors(core.State(s))
		require.NoError(t, err)
		for _, succ := range succs {
			succAttr, err := st.IsAttractor(succ)
			require.NoError(t, err)
			assert.True(t, succAttr, "successor %d of attractor state %d", succ, s)
			succID, err := st.AttractorID(succ)
			require.NoError(t, err)
			assert.Equal(t, id, succID)
		}
	}
}

// TestAsynchronous_TransientsUnassigned: transient states carry no attractor
// id, and no asynchronous state carries a distance.
func TestAsynchronous_TransientsUnassigned(t *testing.T) {
	bn := sixNodeNetwork(t)
	st, err := attractor.Analyze(bn, attractor.Asynchronous)
	require.NoError(t, err)

	for s := 0; s < bn.StateCount(); s++ {
		rec, err := st.Record(core.State(s))
		require.NoError(t, err)
		if !rec.IsAttractor {
			assert.Equal(t, attractor.Unassigned, rec.AttractorID, "state %d", s)
		}
		assert.Equal(t, attractor.Unassigned, rec.Distance, "state %d", s)
	}

	_, err = st.Distance(0)
	assert.ErrorIs(t, err, attractor.ErrModeMismatch)
}

// TestAsynchronous_Idempotence: the pass is deterministic end to end.
func TestAsynchronous_Idempotence(t *testing.T) {
	bn := sixNodeNetwork(t)
	first, err := attractor.Analyze(bn, attractor.Asynchronous)
	require.NoError(t, err)
	second, err := attractor.Analyze(bn, attractor.Asynchronous)
	require.NoError(t, err)

	for s := 0; s < first.StateCount(); s++ {
		a, err := first.Record(core.State(s))
		require.NoError(t, err)
		b, err := second.Record(core.State(s))
		require.NoError(t, err)
		assert.Equal(t, a, b, "state %d", s)
	}
	assert.Equal(t, first.Attractors(), second.Attractors())
}
