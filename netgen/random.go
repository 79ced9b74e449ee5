package netgen

import (
	"math/rand"

	"github.com/katalvlaran/boolnet/core"
)

// Random constructs a random n-node Boolean network. Per node it draws a
// parent count uniformly from [0, MaxParents], samples that many distinct
// parent indices (order random, duplicates impossible), and fills the
// 2^k-row truth table with independent fair bits.
//
// The returned network always passes core.New validation; n itself is
// validated here (at least 1) and by core (at most core.MaxNodes).
//
// Complexity: O(n² + T) time, where T is the total truth-table size.
func Random(n int, opts ...Option) (*core.Network, error) {
	// 1. Validate parameters.
	if n < 1 {
		return nil, ErrNodeCount
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MaxParents < 0 {
		return nil, ErrMaxParents
	}
	maxParents := o.MaxParents
	if maxParents > n {
		maxParents = n
	}
	rng := o.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}

	// 2. Draw each node's rule.
	nodes := make([]core.Node, n)
	for i := range nodes {
		k := rng.Intn(maxParents + 1)
		parents := rng.Perm(n)[:k]
		truth := make([]bool, 1<<k)
		for r := range truth {
			truth[r] = rng.Intn(2) == 1
		}
		nodes[i] = core.Node{Parents: parents, Truth: truth}
	}

	return core.New(nodes)
}
