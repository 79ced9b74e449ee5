// Package core defines types and sentinel errors for the Boolean-network
// model: nodes, networks, and the integer state encoding.
package core

import "errors"

// MaxNodes bounds the network size so that the full state space 2^N stays
// addressable as a dense array index on every supported platform.
const MaxNodes = 30

// Sentinel errors for network construction and evaluation.
var (
	// ErrNoNodes indicates an attempt to build a network with zero nodes.
	ErrNoNodes = errors.New("core: network must have at least one node")
	// ErrTooManyNodes indicates the node count exceeds MaxNodes.
	ErrTooManyNodes = errors.New("core: node count exceeds MaxNodes")
	// ErrParentIndex indicates a parent index outside [0, N).
	ErrParentIndex = errors.New("core: parent index out of range")
	// ErrDuplicateParent indicates a node listing the same parent twice.
	ErrDuplicateParent = errors.New("core: duplicate parent index")
	// ErrTruthTableLength indicates a truth table whose length is not 2^|parents|.
	ErrTruthTableLength = errors.New("core: truth table length must equal 2^(number of parents)")
	// ErrNodeIndex indicates a node index outside [0, N).
	ErrNodeIndex = errors.New("core: node index out of range")
	// ErrStateOutOfRange indicates a state integer outside [0, 2^N).
	ErrStateOutOfRange = errors.New("core: state out of range")
	// ErrBitLength indicates a bit vector whose length differs from the node count.
	ErrBitLength = errors.New("core: bit vector length must equal node count")
)

// State is one configuration of an N-node network, encoded as an integer in
// [0, 2^N). The encoding is little-endian: bit i (weight 2^i) holds node i's
// value. State is an immutable value type; arithmetic on it is meaningful
// only through the Network codec and evaluators.
type State int

// Node describes one node's update rule.
//
// Parents is the ordered list of input node indices; the order fixes how
// truth-table rows are addressed. Truth holds the node's Boolean function,
// indexed by the little-endian encoding of the parents' current values
// (parents[0] contributes weight 1, parents[1] weight 2, and so on), and
// must have length exactly 2^len(Parents).
//
// A node with no parents keeps its current value across every transition;
// its (length-one) truth table is never consulted.
type Node struct {
	Parents []int
	Truth   []bool
}

// Network is an immutable ordered sequence of N nodes. Construct one with
// New; after that it is read-only and safe to share across goroutines
// without synchronization.
type Network struct {
	nodes []Node
	n     int
}
