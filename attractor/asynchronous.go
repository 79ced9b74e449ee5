package attractor

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/boolnet/core"
)

// tarjanFrame is one suspended visit on the explicit DFS stack. Instead of
// carrying a successor list, the frame remembers which node's single-flip
// update to try next and regenerates successors on demand — the
// multi-successor graph is never materialized.
type tarjanFrame struct {
	state core.State
	node  int
}

// asyncWalker owns the Tarjan bookkeeping for one asynchronous pass:
// dense arrays indexed by the state integer replace dictionary-keyed maps,
// and an explicit frame stack replaces recursion so the traversal survives
// DFS depths up to 2^N.
type asyncWalker struct {
	net *core.Network
	st  *Store

	index   []int32 // discovery index, -1 while unvisited
	low     []int32 // Tarjan low-link
	onStack []bool
	sccID   []int32 // component id in pop order, -1 until popped
	stack   []core.State
	frames  []tarjanFrame

	counter int32 // monotonically increasing discovery counter
	nextSCC int32
	o       Options
	ticks   int
}

// analyzeAsynchronous decomposes the implicit multi-successor graph into
// strongly connected components and marks the terminal (sink) components
// as attractors.
func analyzeAsynchronous(net *core.Network, o Options) (*Store, error) {
	total := net.StateCount()
	st := newStore(Asynchronous, total)

	w := &asyncWalker{
		net:     net,
		st:      st,
		index:   make([]int32, total),
		low:     make([]int32, total),
		onStack: make([]bool, total),
		sccID:   make([]int32, total),
		o:       o,
	}
	for i := 0; i < total; i++ {
		w.index[i] = -1
		w.sccID[i] = -1
	}

	for s := 0; s < total; s++ {
		if w.index[s] >= 0 {
			continue
		}
		if err := w.strongConnect(core.State(s)); err != nil {
			return st, fmt.Errorf("%w: %v", ErrAborted, err)
		}
	}

	st.complete = true
	return st, nil
}

// visit assigns discovery bookkeeping for s and suspends it on both stacks.
func (w *asyncWalker) visit(s core.State) {
	w.index[s] = w.counter
	w.low[s] = w.counter
	w.counter++
	w.stack = append(w.stack, s)
	w.onStack[s] = true
	w.frames = append(w.frames, tarjanFrame{state: s})
}

// strongConnect runs the iterative Tarjan traversal rooted at root.
func (w *asyncWalker) strongConnect(root core.State) error {
	w.visit(root)
	n := w.net.NodeCount()

	for len(w.frames) > 0 {
		if w.ticks&ctxCheckMask == 0 {
			select {
			case <-w.o.Ctx.Done():
				return w.o.Ctx.Err()
			default:
			}
		}
		w.ticks++

		fr := &w.frames[len(w.frames)-1]
		s := fr.state

		// Resume edge generation where the frame left off.
		descended := false
		for fr.node < n {
			i := fr.node
			fr.node++
			succ, err := w.net.NextNodeState(s, i)
			if err != nil {
				return err // unreachable for in-range states
			}
			if succ == s {
				continue // no-op flip: no edge
			}
			if w.index[succ] < 0 {
				w.visit(succ)
				descended = true
				break
			}
			if w.onStack[succ] && w.index[succ] < w.low[s] {
				w.low[s] = w.index[succ]
			}
		}
		if descended {
			continue
		}

		// Every successor of s explored: retire the frame.
		w.frames = w.frames[:len(w.frames)-1]
		if w.low[s] == w.index[s] {
			// s roots an SCC — pop the stack down to and including s.
			if err := w.popSCC(s); err != nil {
				return err
			}
		}
		if len(w.frames) > 0 {
			parent := w.frames[len(w.frames)-1].state
			if w.low[s] < w.low[parent] {
				w.low[parent] = w.low[s]
			}
		}
	}
	return nil
}

// popSCC extracts the component rooted at root and applies the attractor
// rule: the SCC is an attractor iff no member state has a successor outside
// it (a sink of the condensation DAG). A state with zero successors forms a
// trivial singleton SCC and passes the rule vacuously.
func (w *asyncWalker) popSCC(root core.State) error {
	id := w.nextSCC
	w.nextSCC++

	var members []core.State
	for {
		v := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.onStack[v] = false
		w.sccID[v] = id
		members = append(members, v)
		if v == root {
			break
		}
	}

	// Sink check. Components are popped in reverse topological order, so
	// every successor outside this SCC already carries its component id.
	n := w.net.NodeCount()
	for _, m := range members {
		for i := 0; i < n; i++ {
			succ, err := w.net.NextNodeState(m, i)
			if err != nil {
				return err
			}
			if succ != m && w.sccID[succ] != id {
				return nil // outgoing edge: transient component
			}
		}
	}

	// Attractor ids follow SCC pop order, 0-based.
	aid := len(w.st.attractors)
	sort.Slice(members, func(a, b int) bool { return members[a] < members[b] })
	for _, m := range members {
		w.st.records[m] = Record{IsAttractor: true, AttractorID: aid, Distance: Unassigned}
	}
	w.st.attractors = append(w.st.attractors, members)
	return nil
}
