package trajectory

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/boolnet/attractor"
	"github.com/katalvlaran/boolnet/core"
)

// candidate addresses one acceptable fragment: a long trajectory plus the
// offset its subsampling starts at.
type candidate struct {
	traj   int
	offset int
}

// Sample draws Count dataset fragments of Length states out of long
// trajectories. For every trajectory and every offset in
// [0, SamplingFrequency), the subsampled fragment is a candidate iff it
// contains at least round(TransientFraction·Length) transient states and
// Length minus that many attractor states (per the store). Count candidates
// are then drawn without replacement, and each is trimmed deterministically:
// the LAST required transient states and the FIRST required attractor
// states, merged back into original order.
//
// Returns ErrInsufficientFragments when fewer than Count candidates exist.
func Sample(long []Trajectory, st *attractor.Store, opts ...Option) ([][]core.State, error) {
	// 1. Validate inputs.
	if st == nil {
		return nil, ErrStoreNil
	}
	if !st.Complete() {
		return nil, ErrStoreIncomplete
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
	if o.TransientFraction < 0 || o.TransientFraction > 1 {
		return nil, ErrTransientFraction
	}
	rng := o.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}

	requiredTransient := int(math.Round(o.TransientFraction * float64(o.Length)))
	requiredAttractor := o.Length - requiredTransient

	isAttr := func(s core.State) (bool, error) { return st.IsAttractor(s) }

	// 2. Collect acceptable (trajectory, offset) pairs.
	var candidates []candidate
	for ti := range long {
		for offset := 0; offset < o.SamplingFrequency; offset++ {
			transient, attr := 0, 0
			for i := offset; i < len(long[ti].States); i += o.SamplingFrequency {
				a, err := isAttr(long[ti].States[i])
				if err != nil {
					return nil, err
				}
				if a {
					attr++
				} else {
					transient++
				}
			}
			if transient >= requiredTransient && attr >= requiredAttractor {
				candidates = append(candidates, candidate{traj: ti, offset: offset})
			}
		}
	}
	if len(candidates) < o.Count {
		return nil, fmt.Errorf("%w: requested %d, found %d", ErrInsufficientFragments, o.Count, len(candidates))
	}

	// 3. Draw without replacement.
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	chosen := candidates[:o.Count]

	// 4. Trim each fragment to the exact composition.
	out := make([][]core.State, 0, o.Count)
	for _, c := range chosen {
		var fragment []core.State
		for i := c.offset; i < len(long[c.traj].States); i += o.SamplingFrequency {
			fragment = append(fragment, long[c.traj].States[i])
		}

		var transientPos, attractorPos []int
		for i, s := range fragment {
			a, err := isAttr(s)
			if err != nil {
				return nil, err
			}
			if a {
				attractorPos = append(attractorPos, i)
			} else {
				transientPos = append(transientPos, i)
			}
		}

		// Last transient states feed directly into the attractor segment;
		// first attractor states follow them in simulation order.
		keep := make([]bool, len(fragment))
		for _, i := range transientPos[len(transientPos)-requiredTransient:] {
			keep[i] = true
		}
		for _, i := range attractorPos[:requiredAttractor] {
			keep[i] = true
		}
		trimmed := make([]core.State, 0, o.Length)
		for i, s := range fragment {
			if keep[i] {
				trimmed = append(trimmed, s)
			}
		}
		out = append(out, trimmed)
	}
	return out, nil
}
