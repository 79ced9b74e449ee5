package core

import "fmt"

// New validates nodes and constructs an immutable Network over them.
// Node i of the network is nodes[i]; indices referenced by parent lists
// therefore address positions in the input slice itself.
//
// Validation (all rejected eagerly, before any analysis can start):
//   - at least one node, at most MaxNodes;
//   - every parent index in [0, len(nodes));
//   - no duplicate parents within a node;
//   - truth-table length exactly 2^len(Parents) for every node.
//
// The node contents are copied; callers may reuse their slices afterwards.
//
// Complexity: O(T) time and space, where T is the total truth-table size.
func New(nodes []Node) (*Network, error) {
	// 1. Bound the node count.
	n := len(nodes)
	if n == 0 {
		return nil, ErrNoNodes
	}
	if n > MaxNodes {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyNodes, n, MaxNodes)
	}

	// 2. Validate and deep-copy each node.
	owned := make([]Node, n)
	var seen [MaxNodes]bool
	for i, nd := range nodes {
		for _, p := range nd.Parents {
			if p < 0 || p >= n {
				return nil, fmt.Errorf("%w: node %d parent %d (want [0,%d))", ErrParentIndex, i, p, n)
			}
			if seen[p] {
				return nil, fmt.Errorf("%w: node %d parent %d", ErrDuplicateParent, i, p)
			}
			seen[p] = true
		}
		for _, p := range nd.Parents {
			seen[p] = false // reset for the next node
		}
		if len(nd.Truth) != 1<<len(nd.Parents) {
			return nil, fmt.Errorf("%w: node %d has %d rows for %d parent(s)",
				ErrTruthTableLength, i, len(nd.Truth), len(nd.Parents))
		}
		owned[i] = Node{
			Parents: append([]int(nil), nd.Parents...),
			Truth:   append([]bool(nil), nd.Truth...),
		}
	}

	return &Network{nodes: owned, n: n}, nil
}

// NodeCount returns N, the number of nodes.
func (bn *Network) NodeCount() int { return bn.n }

// StateCount returns the size of the state space, 2^N.
func (bn *Network) StateCount() int { return 1 << bn.n }

// Node returns a copy of node i's definition.
func (bn *Network) Node(i int) (Node, error) {
	if i < 0 || i >= bn.n {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeIndex, i)
	}
	nd := bn.nodes[i]
	return Node{
		Parents: append([]int(nil), nd.Parents...),
		Truth:   append([]bool(nil), nd.Truth...),
	}, nil
}

// checkState verifies s lies in [0, 2^N).
func (bn *Network) checkState(s State) error {
	if s < 0 || int(s) >= bn.StateCount() {
		return fmt.Errorf("%w: %d (want [0,%d))", ErrStateOutOfRange, s, bn.StateCount())
	}
	return nil
}
