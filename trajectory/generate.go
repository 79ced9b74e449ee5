package trajectory

import (
	"math/rand"

	"github.com/katalvlaran/boolnet/attractor"
	"github.com/katalvlaran/boolnet/core"
)

// checkStore validates that st is a complete classification of bn's state
// space.
func checkStore(bn *core.Network, st *attractor.Store) error {
	if bn == nil {
		return ErrNetworkNil
	}
	if st == nil {
		return ErrStoreNil
	}
	if !st.Complete() {
		return ErrStoreIncomplete
	}
	if st.StateCount() != bn.StateCount() {
		return ErrStoreMismatch
	}
	return nil
}

// GenerateLong runs one long trajectory (MaxLength states) from every state
// of the state space, stepping under the store's update mode, and counts how
// many recorded states were transient versus attractor-bound according to
// the store.
//
// Complexity: O(2^N · MaxLength) steps; the result holds 2^N trajectories.
func GenerateLong(bn *core.Network, st *attractor.Store, opts ...Option) ([]Trajectory, error) {
	if err := checkStore(bn, st); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MaxLength < 1 {
		return nil, ErrLength
	}
	rng := o.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}
	mode := st.Mode()

	total := bn.StateCount()
	out := make([]Trajectory, 0, total)
	for start := 0; start < total; start++ {
		tr := Trajectory{States: make([]core.State, 0, o.MaxLength)}
		cur := core.State(start)
		for i := 0; i < o.MaxLength; i++ {
			tr.States = append(tr.States, cur)
			isAttr, err := st.IsAttractor(cur)
			if err != nil {
				return nil, err
			}
			if isAttr {
				tr.AttractorCount++
			} else {
				tr.TransientCount++
			}
			next, err := step(bn, mode, cur, rng)
			if err != nil {
				return nil, err
			}
			cur = next
		}
		out = append(out, tr)
	}
	return out, nil
}
