package attractor_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolnet/core"
)

// oneNodeNetwork is a single parentless node: its value never changes, so
// both states are fixed points under both update disciplines.
func oneNodeNetwork(t *testing.T) *core.Network {
	t.Helper()
	bn, err := core.New([]core.Node{{Truth: []bool{false}}})
	require.NoError(t, err)
	return bn
}

// threeNodeNetwork is the small worked example with three synchronous
// fixed points: states 1, 3 and 5.
func threeNodeNetwork(t *testing.T) *core.Network {
	t.Helper()
	bn, err := core.New([]core.Node{
		{Parents: []int{0, 1}, Truth: []bool{true, true, false, true}},
		{Parents: []int{0, 1}, Truth: []bool{false, false, false, true}},
		{Parents: []int{0, 1, 2}, Truth: []bool{false, false, false, false, true, true, true, false}},
	})
	require.NoError(t, err)
	return bn
}

// sixNodeNetwork is the worked 6-node example used to cross-check both
// classifiers against independent brute-force computation over all 64 states.
func sixNodeNetwork(t *testing.T) *core.Network {
	t.Helper()
	bn, err := core.New([]core.Node{
		{Parents: []int{0, 3, 5}, Truth: bits(1, 1, 1, 0, 1, 0, 1, 0)},
		{Parents: []int{2}, Truth: bits(1, 0)},
		{Parents: []int{1, 5}, Truth: bits(1, 1, 1, 0)},
		{Parents: []int{0, 3}, Truth: bits(1, 1, 0, 1)},
		{Parents: []int{0, 1, 3, 5}, Truth: bits(0, 0, 1, 1, 1, 0, 1, 0, 1, 1, 0, 0, 0, 0, 1, 0)},
		{Parents: []int{5}, Truth: bits(0, 1)},
	})
	require.NoError(t, err)
	return bn
}

// bits converts 0/1 literals into a truth table.
func bits(vs ...int) []bool {
	out := make([]bool, len(vs))
	for i, v := range vs {
		out[i] = v != 0
	}
	return out
}

// bruteSyncCycles enumerates the cycles of the synchronous functional graph
// by exhaustive iteration: from every state, 2^N applications of NextState
// are guaranteed to land inside a cycle, which is then walked until it
// closes. Returns each cycle as an ascending state set.
func bruteSyncCycles(t *testing.T, bn *core.Network) [][]core.State {
	t.Helper()
	total := bn.StateCount()

	step := func(s core.State) core.State {
		next, err := bn.NextState(s)
		require.NoError(t, err)
		return next
	}

	inCycle := make([]bool, total)
	var cycles [][]core.State
	for s := 0; s < total; s++ {
		cur := core.State(s)
		for i := 0; i < total; i++ {
			cur = step(cur)
		}
		if inCycle[cur] {
			continue // cycle already collected
		}
		var cycle []core.State
		for v := cur; ; {
			cycle = append(cycle, v)
			inCycle[v] = true
			v = step(v)
			if v == cur {
				break
			}
		}
		sortStates(cycle)
		cycles = append(cycles, cycle)
	}
	return cycles
}

// asyncReachable computes, per state, the set of states reachable through
// asynchronous successors (reflexive). Exponential in memory over 2^N — for
// test-sized networks only.
func asyncReachable(t *testing.T, bn *core.Network) []map[core.State]bool {
	t.Helper()
	total := bn.StateCount()
	reach := make([]map[core.State]bool, total)
	for s := 0; s < total; s++ {
		seen := map[core.State]bool{core.State(s): true}
		queue := []core.State{core.State(s)}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			succs, err := bn.Successors(u)
			require.NoError(t, err)
			for _, v := range succs {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		reach[s] = seen
	}
	return reach
}

// bruteAsyncAttractors derives the terminal SCCs directly from reachability:
// a state s is in an attractor iff every state reachable from s can reach s
// back; mutually reachable attractor states form one attractor. Returns
// ascending state sets.
func bruteAsyncAttractors(t *testing.T, bn *core.Network) [][]core.State {
	t.Helper()
	total := bn.StateCount()
	reach := asyncReachable(t, bn)

	isAttr := make([]bool, total)
	for s := 0; s < total; s++ {
		isAttr[s] = true
		for v := range reach[s] {
			if !reach[v][core.State(s)] {
				isAttr[s] = false
				break
			}
		}
	}

	claimed := make([]bool, total)
	var attractors [][]core.State
	for s := 0; s < total; s++ {
		if !isAttr[s] || claimed[s] {
			continue
		}
		var members []core.State
		for v := range reach[s] {
			if isAttr[v] && reach[v][core.State(s)] {
				members = append(members, v)
				claimed[v] = true
			}
		}
		sortStates(members)
		attractors = append(attractors, members)
	}
	return attractors
}

func sortStates(ss []core.State) {
	sort.Slice(ss, func(a, b int) bool { return ss[a] < ss[b] })
}
