package attractor

import (
	"fmt"

	"github.com/katalvlaran/boolnet/core"
)

// Store is the classification artifact: one Record per state, held in a
// dense array indexed directly by the state integer (no hashing), plus the
// attractors as ordered sets of states. A Store is read-only once Analyze
// returns and safe for concurrent readers.
type Store struct {
	mode       Mode
	records    []Record
	attractors [][]core.State // id → ascending member states
	complete   bool
}

// newStore allocates a Store for total states with every record unassigned.
func newStore(mode Mode, total int) *Store {
	records := make([]Record, total)
	for i := range records {
		records[i] = Record{AttractorID: Unassigned, Distance: Unassigned}
	}
	return &Store{mode: mode, records: records}
}

// Mode reports the update discipline the Store was built under.
func (st *Store) Mode() Mode { return st.mode }

// StateCount returns the number of states the Store covers (2^N, or 0 for a
// store aborted before allocation).
func (st *Store) StateCount() int { return len(st.records) }

// Complete reports whether the pass classified every state. A Store returned
// alongside ErrAborted reports false and must not be treated as exhaustive.
func (st *Store) Complete() bool { return st.complete }

// checkState verifies s indexes a record.
func (st *Store) checkState(s core.State) error {
	if s < 0 || int(s) >= len(st.records) {
		return fmt.Errorf("%w: %d (want [0,%d))", ErrStateOutOfRange, s, len(st.records))
	}
	return nil
}

// Record returns the full classification record of state s.
func (st *Store) Record(s core.State) (Record, error) {
	if err := st.checkState(s); err != nil {
		return Record{}, err
	}
	return st.records[s], nil
}

// IsAttractor reports whether state s belongs to an attractor.
func (st *Store) IsAttractor(s core.State) (bool, error) {
	if err := st.checkState(s); err != nil {
		return false, err
	}
	return st.records[s].IsAttractor, nil
}

// AttractorID returns the attractor id recorded for state s. In synchronous
// mode every classified state has one; in asynchronous mode transient states
// report Unassigned.
func (st *Store) AttractorID(s core.State) (int, error) {
	if err := st.checkState(s); err != nil {
		return Unassigned, err
	}
	return st.records[s].AttractorID, nil
}

// Distance returns the synchronous distance-to-attractor of state s:
// 0 on the attractor, ≥1 for transient states. Querying an asynchronous
// Store fails with ErrModeMismatch — no distance is defined there.
func (st *Store) Distance(s core.State) (int, error) {
	if st.mode != Synchronous {
		return Unassigned, ErrModeMismatch
	}
	if err := st.checkState(s); err != nil {
		return Unassigned, err
	}
	return st.records[s].Distance, nil
}

// AttractorCount returns the number of attractors discovered.
func (st *Store) AttractorCount() int { return len(st.attractors) }

// AttractorMembers returns the states of attractor id in ascending order.
// The slice is a copy; callers may keep or mutate it.
func (st *Store) AttractorMembers(id int) ([]core.State, error) {
	if id < 0 || id >= len(st.attractors) {
		return nil, fmt.Errorf("%w: %d (want [0,%d))", ErrAttractorIndex, id, len(st.attractors))
	}
	return append([]core.State(nil), st.attractors[id]...), nil
}

// Attractors returns every attractor as an ascending state set, ordered by
// attractor id. The slices are copies.
func (st *Store) Attractors() [][]core.State {
	out := make([][]core.State, len(st.attractors))
	for i, members := range st.attractors {
		out[i] = append([]core.State(nil), members...)
	}
	return out
}
