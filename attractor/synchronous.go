package attractor

import (
	"fmt"

	"github.com/katalvlaran/boolnet/core"
)

// syncWalker encapsulates state during the synchronous classification pass.
// The successor relation is a total function, so every walk either closes a
// brand-new cycle or merges into a previously classified state; each edge of
// the functional graph is traversed at most once across all walks, which
// makes the whole pass O(2^N) amortized.
type syncWalker struct {
	net *core.Network
	st  *Store

	// pathPos[s] is s's position in the current walk's path, or -1 when s is
	// not on it. A dense array replaces the per-walk map; only the entries
	// actually touched by a walk are reset afterwards.
	pathPos []int32
	path    []core.State

	nextID int // next attractor id, assigned in discovery order
	o      Options
	ticks  int
}

// analyzeSynchronous classifies every state of the functional graph.
func analyzeSynchronous(net *core.Network, o Options) (*Store, error) {
	total := net.StateCount()
	st := newStore(Synchronous, total)

	w := &syncWalker{
		net:     net,
		st:      st,
		pathPos: make([]int32, total),
		o:       o,
	}
	for i := range w.pathPos {
		w.pathPos[i] = -1
	}

	// One walk per still-unclassified start state. In synchronous mode a
	// classified record always carries an attractor id, so Unassigned marks
	// exactly the unvisited states.
	for s := 0; s < total; s++ {
		if st.records[s].AttractorID != Unassigned {
			continue
		}
		if err := w.walk(core.State(s)); err != nil {
			return st, fmt.Errorf("%w: %v", ErrAborted, err)
		}
	}

	st.attractors = collectAttractors(st.records, w.nextID)
	st.complete = true
	return st, nil
}

// walk advances from start until it meets a classified state or closes a
// cycle within its own path, then writes records for the entire path.
func (w *syncWalker) walk(start core.State) error {
	w.path = w.path[:0]
	defer w.resetPath()

	cur := start
	for {
		// Periodic deadline poll; the loop body itself is allocation-free.
		if w.ticks&ctxCheckMask == 0 {
			select {
			case <-w.o.Ctx.Done():
				return w.o.Ctx.Err()
			default:
			}
		}
		w.ticks++

		// Case 1: merged into a previously classified state — propagate its
		// attractor id and distance backward over the local path.
		if w.st.records[cur].AttractorID != Unassigned {
			w.propagate(cur)
			return nil
		}

		// Case 2: cycle closure within this walk — the sub-path from the
		// first occurrence of cur to the end is a newly discovered attractor.
		if p := w.pathPos[cur]; p >= 0 {
			w.closeCycle(int(p))
			return nil
		}

		// Case 3: unseen state — extend the path and advance.
		w.pathPos[cur] = int32(len(w.path))
		w.path = append(w.path, cur)
		next, err := w.net.NextState(cur)
		if err != nil {
			return err // unreachable for in-range states
		}
		cur = next
	}
}

// propagate classifies the whole local path as transient states feeding the
// attractor already recorded for known.
func (w *syncWalker) propagate(known core.State) {
	rec := w.st.records[known]
	n := len(w.path)
	for i := n - 1; i >= 0; i-- {
		w.st.records[w.path[i]] = Record{
			IsAttractor: false,
			AttractorID: rec.AttractorID,
			Distance:    rec.Distance + (n - i),
		}
	}
}

// closeCycle registers path[cycleStart:] as a freshly discovered attractor
// and the earlier path states as its transient tail.
func (w *syncWalker) closeCycle(cycleStart int) {
	id := w.nextID
	w.nextID++

	for _, s := range w.path[cycleStart:] {
		w.st.records[s] = Record{IsAttractor: true, AttractorID: id, Distance: 0}
	}
	for i := cycleStart - 1; i >= 0; i-- {
		w.st.records[w.path[i]] = Record{
			IsAttractor: false,
			AttractorID: id,
			Distance:    cycleStart - i,
		}
	}
}

// resetPath clears pathPos entries touched by the last walk.
func (w *syncWalker) resetPath() {
	for _, s := range w.path {
		w.pathPos[s] = -1
	}
}

// collectAttractors groups attractor states by id. Iterating states in
// ascending order keeps each member list sorted without an explicit sort.
func collectAttractors(records []Record, count int) [][]core.State {
	out := make([][]core.State, count)
	for s, rec := range records {
		if rec.IsAttractor {
			out[rec.AttractorID] = append(out[rec.AttractorID], core.State(s))
		}
	}
	return out
}
