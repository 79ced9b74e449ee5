package core

import "fmt"

// nextBit computes node i's next value directly from the packed state,
// without materializing a bit vector. Zero-parent nodes carry their
// current value.
func (bn *Network) nextBit(i int, s State) bool {
	nd := &bn.nodes[i]
	if len(nd.Parents) == 0 {
		return s&(1<<i) != 0
	}
	// Little-endian truth-table row index from the parents' current bits.
	row := 0
	for j, p := range nd.Parents {
		if s&(1<<p) != 0 {
			row |= 1 << j
		}
	}
	return nd.Truth[row]
}

// NextNodeValue computes node i's next value against a decoded bit vector.
// If node i has no parents, the current value bits[i] is returned unchanged;
// otherwise the parents' bits form a little-endian row index into the truth
// table.
//
// Complexity: O(|parents|) time, O(1) space.
func (bn *Network) NextNodeValue(i int, bits []bool) (bool, error) {
	if i < 0 || i >= bn.n {
		return false, fmt.Errorf("%w: %d", ErrNodeIndex, i)
	}
	if len(bits) != bn.n {
		return false, ErrBitLength
	}
	nd := &bn.nodes[i]
	if len(nd.Parents) == 0 {
		return bits[i], nil
	}
	row := 0
	for j, p := range nd.Parents {
		if bits[p] {
			row |= 1 << j
		}
	}
	return nd.Truth[row], nil
}

// NextState returns the single deterministic synchronous successor of s:
// every node's next value is computed against the same snapshot of s and
// the results are re-encoded. The synchronous successor relation is a
// total function, so every forward orbit eventually cycles.
//
// Complexity: O(T) time, O(1) space (T = total truth-table inputs).
func (bn *Network) NextState(s State) (State, error) {
	if err := bn.checkState(s); err != nil {
		return 0, err
	}
	var next State
	for i := 0; i < bn.n; i++ {
		if bn.nextBit(i, s) {
			next |= 1 << i
		}
	}
	return next, nil
}

// NextNodeState returns the state obtained from s by updating node i alone,
// leaving every other node's value untouched. The result may equal s when
// node i's computed next value matches its current one; Successors filters
// those self-transitions out, trajectory simulation keeps them.
//
// Complexity: O(|parents|) time, O(1) space.
func (bn *Network) NextNodeState(s State, i int) (State, error) {
	if err := bn.checkState(s); err != nil {
		return 0, err
	}
	if i < 0 || i >= bn.n {
		return 0, fmt.Errorf("%w: %d", ErrNodeIndex, i)
	}
	if bn.nextBit(i, s) {
		return s | 1<<i, nil
	}
	return s &^ (1 << i), nil
}

// Successors returns the distinct asynchronous successors of s: for each
// node i, the state reached by updating node i alone, keeping only results
// that differ from s. Each kept successor differs from s in exactly bit i,
// so the returned states are pairwise distinct by construction. A state
// where every flip is a no-op has no successors at all.
//
// Complexity: O(T) time; allocates the result slice.
func (bn *Network) Successors(s State) ([]State, error) {
	return bn.AppendSuccessors(nil, s)
}

// AppendSuccessors appends the distinct asynchronous successors of s to dst
// and returns the extended slice. It allocates nothing when dst has spare
// capacity, which keeps the implicit-graph traversals allocation-free.
func (bn *Network) AppendSuccessors(dst []State, s State) ([]State, error) {
	if err := bn.checkState(s); err != nil {
		return dst, err
	}
	for i := 0; i < bn.n; i++ {
		var next State
		if bn.nextBit(i, s) {
			next = s | 1<<i
		} else {
			next = s &^ (1 << i)
		}
		if next != s {
			dst = append(dst, next)
		}
	}
	return dst, nil
}
