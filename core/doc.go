// Package core defines the fundamental Boolean-network primitives shared by
// every other boolnet subpackage: Node, Network, the integer State type and
// its little-endian bit-vector codec, and the transition-function evaluator
// for both update disciplines.
//
// What:
//
//   - Node: ordered parent list + truth table of length 2^|parents|.
//   - Network: immutable ordered sequence of N nodes, validated on construction.
//   - State: integer in [0, 2^N); bit i carries node i's value (weight 2^i).
//   - Decode/Encode: total, mutually inverse state ↔ bit-vector conversions.
//   - NextState: the single deterministic synchronous successor.
//   - NextNodeState / Successors: single-node updates and the distinct
//     asynchronous successor set (self-transitions excluded).
//
// Why:
//
//   - The whole toolkit — classifiers, generators, samplers — evaluates
//     transitions through this one package, so its contracts are strict:
//     a Network is never mutated after New, and evaluation never allocates
//     beyond what the caller hands in.
//
// Complexity:
//
//   - Decode/Encode:     O(N) time, O(N) space for the bit vector.
//   - NextState:         O(T) time, O(1) space (T = total truth-table inputs).
//   - AppendSuccessors:  O(T) time, O(1) space beyond the destination slice.
//
// Errors:
//
//   - ErrNoNodes:          a network needs at least one node.
//   - ErrTooManyNodes:     node count exceeds MaxNodes.
//   - ErrParentIndex:      a parent index lies outside [0, N).
//   - ErrDuplicateParent:  a node lists the same parent twice.
//   - ErrTruthTableLength: truth-table length differs from 2^|parents|.
//   - ErrNodeIndex:        a node index lies outside [0, N).
//   - ErrStateOutOfRange:  a state integer lies outside [0, 2^N).
//   - ErrBitLength:        a bit vector's length differs from N.
//
// A node with zero parents has no truth-table role: its value is carried
// over unchanged by every transition, in both update disciplines.
package core
