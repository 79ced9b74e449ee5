package trajectory

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/boolnet/attractor"
	"github.com/katalvlaran/boolnet/core"
)

// step advances one simulation step under the given discipline. Synchronous
// steps apply the full update; asynchronous steps update one uniformly
// random node, which may leave the state unchanged.
func step(bn *core.Network, mode attractor.Mode, s core.State, rng *rand.Rand) (core.State, error) {
	if mode == attractor.Synchronous {
		return bn.NextState(s)
	}
	return bn.NextNodeState(s, rng.Intn(bn.NodeCount()))
}

// Simulate produces Count trajectories of Length recorded states each. The
// start state is always recorded; afterwards every SamplingFrequency-th
// simulated state is kept until the trajectory is full. Start states come
// from WithStartStates or are drawn uniformly at random.
//
// Complexity: O(Count · Length · SamplingFrequency) simulation steps.
func Simulate(bn *core.Network, mode attractor.Mode, opts ...Option) (*Dataset, error) {
	// 1. Validate inputs.
	if bn == nil {
		return nil, ErrNetworkNil
	}
	if mode != attractor.Synchronous && mode != attractor.Asynchronous {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Count < 1 {
		return nil, ErrCount
	}
	if o.Length < 1 {
		return nil, ErrLength
	}
	if o.SamplingFrequency < 1 {
		return nil, ErrSamplingFrequency
	}
	rng := o.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}

	// 2. Resolve start states.
	total := bn.StateCount()
	starts := o.StartStates
	if starts == nil {
		starts = make([]core.State, o.Count)
		for i := range starts {
			starts[i] = core.State(rng.Intn(total))
		}
	} else {
		if len(starts) != o.Count {
			return nil, fmt.Errorf("%w: got %d start states for count %d", ErrStartStates, len(starts), o.Count)
		}
		for _, s := range starts {
			if s < 0 || int(s) >= total {
				return nil, fmt.Errorf("%w: state %d outside [0,%d)", ErrStartStates, s, total)
			}
		}
	}

	// 3. Simulate.
	out := make([][]core.State, o.Count)
	for i := 0; i < o.Count; i++ {
		traj := make([]core.State, 0, o.Length)
		traj = append(traj, starts[i])
		cur := starts[i]
		skipped := 0
		for len(traj) < o.Length {
			next, err := step(bn, mode, cur, rng)
			if err != nil {
				return nil, err
			}
			cur = next
			if skipped == o.SamplingFrequency-1 {
				traj = append(traj, cur)
				skipped = 0
			} else {
				skipped++
			}
		}
		out[i] = traj
	}

	return &Dataset{Trajectories: out, SamplingFrequency: o.SamplingFrequency}, nil
}
